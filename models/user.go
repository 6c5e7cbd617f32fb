package models

import "time"

// Role is the court role held by a user account
type Role string

// Roles a user account may hold
const (
	RoleJudge      Role = "Judge"
	RoleLawyer     Role = "Lawyer"
	RoleCourtStaff Role = "CourtStaff"
	RoleLitigant   Role = "Litigant"
)

// Roles lists every recognized role in declaration order
var Roles = []Role{RoleJudge, RoleLawyer, RoleCourtStaff, RoleLitigant}

// Valid reports whether r is one of the recognized roles
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// User holds the structure for the users collection
type User struct {
	ID        string     `json:"id" bson:"_id"`
	Username  string     `json:"username" bson:"username"`
	Email     string     `json:"email" bson:"email"`
	Password  string     `json:"-" bson:"password"`
	Role      Role       `json:"role" bson:"role"`
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt" bson:"updatedAt"`
}

// HasRole reports whether the user holds the given role
func (u *User) HasRole(role Role) bool {
	return u != nil && u.Role == role
}
