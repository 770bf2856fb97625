package models

// Identity is a credential record. Its ID is shared with the Profile that
// provisioning creates for it.
type Identity struct {
	BaseModel
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255"` // stored lower-cased
	PasswordHash string `json:"-" gorm:"not null;size:100"`
}

// TableName returns the table name for Identity
func (Identity) TableName() string {
	return "identities"
}
