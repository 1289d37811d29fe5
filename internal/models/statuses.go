package models

type UserRole string
type ApplicationStatus string
type Gender string

const (
	UserRoleStudent UserRole = "student"
	UserRoleCompany UserRole = "company"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// ValidRole reports whether role is one of the two account roles.
// Roles are fixed at registration time; there is no admin tier.
func ValidRole(role UserRole) bool {
	return role == UserRoleStudent || role == UserRoleCompany
}

// ValidGender reports whether g is an accepted profile gender value.
func ValidGender(g Gender) bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// TerminalStatus reports whether status is a decision a company can set.
// "pending" is the initial state only and is never a valid input.
func TerminalStatus(status ApplicationStatus) bool {
	return status == ApplicationStatusAccepted || status == ApplicationStatusRejected
}
