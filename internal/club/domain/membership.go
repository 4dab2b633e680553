package domain

import "time"

// Role is a member's standing within a club. Exactly one membership per
// club holds RoleOwner.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}

// CanManageMembers reports whether the role may add, remove and re-role
// other members.
func (r Role) CanManageMembers() bool {
	return r == RoleOwner || r == RoleAdmin
}

type Membership struct {
	ID       string
	UserID   string
	ClubID   string
	Role     Role
	JoinedAt time.Time
}

// ClubMember is a membership joined with the member's username, as shown
// in roster listings.
type ClubMember struct {
	UserID   string
	Username string
	Role     Role
	JoinedAt time.Time
}

// UserClub is a membership joined with the club's details, as shown in a
// user's own club listing.
type UserClub struct {
	ClubID   string
	Name     string
	Synopsis string
	Role     Role
	JoinedAt time.Time
}
