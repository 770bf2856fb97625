package models

// ProfileRole is the role a profile holds inside its organization
type ProfileRole string

const (
	ProfileRoleAdmin  ProfileRole = "admin"
	ProfileRoleMember ProfileRole = "member"
)

// LicenseStatus is the status column of an org_modules row
type LicenseStatus string

const (
	LicenseStatusActive    LicenseStatus = "active"
	LicenseStatusSuspended LicenseStatus = "suspended"
)

// IsValid checks if the ProfileRole is valid
func (r ProfileRole) IsValid() bool {
	switch r {
	case ProfileRoleAdmin, ProfileRoleMember:
		return true
	}
	return false
}

// IsActive reports whether the status grants the module. Anything but
// "active" counts as not entitled.
func (s LicenseStatus) IsActive() bool {
	return s == LicenseStatusActive
}
