package schema

// RecruitCandidateTable represents the 'recruit.candidate' table
type RecruitCandidateTable struct {
	Table           string
	ID              string
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Qualifications  string
	Experience      string
	CurrentPosition string
	CurrentCompany  string
	JobPreferences  string
	Status          string
	InterviewDate   string
	Feedback        string
	Resume          string
	AppliedJob      string
	CreatedAt       string
	UpdatedAt       string
}

// RecruitCandidate is the schema definition for recruit.candidate
var RecruitCandidate = RecruitCandidateTable{
	Table:           "recruit.candidate",
	ID:              "id",
	FirstName:       "firstname",
	LastName:        "lastname",
	Email:           "email",
	Phone:           "phone",
	Qualifications:  "qualifications",
	Experience:      "experience",
	CurrentPosition: "currentposition",
	CurrentCompany:  "currentcompany",
	JobPreferences:  "jobpreferences",
	Status:          "status",
	InterviewDate:   "interviewdate",
	Feedback:        "feedback",
	Resume:          "resume",
	AppliedJob:      "appliedjob",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

// Columns returns all standard column names
func (t RecruitCandidateTable) Columns() []string {
	return []string{
		t.ID, t.FirstName, t.LastName, t.Email, t.Phone, t.Qualifications,
		t.Experience, t.CurrentPosition, t.CurrentCompany, t.JobPreferences,
		t.Status, t.InterviewDate, t.Feedback, t.Resume, t.AppliedJob,
		t.CreatedAt, t.UpdatedAt,
	}
}
