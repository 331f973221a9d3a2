package schema

// RecruitJobTable represents the 'recruit.job' table
type RecruitJobTable struct {
	Table            string
	ID               string
	Title            string
	Description      string
	Requirements     string
	Responsibilities string
	Department       string
	Location         string
	EmploymentType   string
	ExperienceLevel  string
	SalaryMin        string
	SalaryMax        string
	Deadline         string
	IsActive         string
	PostedBy         string
	CreatedAt        string
	UpdatedAt        string
}

// RecruitJob is the schema definition for recruit.job
var RecruitJob = RecruitJobTable{
	Table:            "recruit.job",
	ID:               "id",
	Title:            "title",
	Description:      "description",
	Requirements:     "requirements",
	Responsibilities: "responsibilities",
	Department:       "department",
	Location:         "location",
	EmploymentType:   "employmenttype",
	ExperienceLevel:  "experiencelevel",
	SalaryMin:        "salarymin",
	SalaryMax:        "salarymax",
	Deadline:         "deadline",
	IsActive:         "isactive",
	PostedBy:         "postedby",
	CreatedAt:        "createdat",
	UpdatedAt:        "updatedat",
}

// Columns returns all standard column names
func (t RecruitJobTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Description, t.Requirements, t.Responsibilities,
		t.Department, t.Location, t.EmploymentType, t.ExperienceLevel,
		t.SalaryMin, t.SalaryMax, t.Deadline, t.IsActive, t.PostedBy,
		t.CreatedAt, t.UpdatedAt,
	}
}
