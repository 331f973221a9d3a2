package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table            string
	ID               string
	Name             string
	Email            string
	Role             string
	PasswordHash     string
	IsVerified       string
	ResetTokenDigest string
	ResetTokenExpiry string
	CreatedAt        string
	UpdatedAt        string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:            "users.account",
	ID:               "id",
	Name:             "name",
	Email:            "email",
	Role:             "role",
	PasswordHash:     "passwordhash",
	IsVerified:       "isverified",
	ResetTokenDigest: "resettokendigest",
	ResetTokenExpiry: "resettokenexpiry",
	CreatedAt:        "createdat",
	UpdatedAt:        "updatedat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Email, t.Role, t.PasswordHash, t.IsVerified,
		t.ResetTokenDigest, t.ResetTokenExpiry, t.CreatedAt, t.UpdatedAt,
	}
}
