// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// User is the cached profile of the signed-in account. The remote API owns the
// record; the frontend only keeps a copy for rendering and routing.
type User struct {
	ID          string     `json:"id"`
	Phone       string     `json:"phone"`
	Role        Role       `json:"role"`
	FirstName   string     `json:"firstName,omitempty"`
	LastName    string     `json:"lastName,omitempty"`
	Email       string     `json:"email,omitempty"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// FullName joins first and last name, falling back to the formatted phone.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return FormatPhoneDisplay(u.Phone)
	}

	return name
}

// ProfileUpdate holds the fields a user may change on their own profile.
type ProfileUpdate struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// UserUpdate holds the fields an administrator may change on any account.
type UserUpdate struct {
	ProfileUpdate
	Role     *Role `json:"role,omitempty"`
	IsActive *bool `json:"isActive,omitempty"`
}

// NewUser describes an account created from the admin console.
type NewUser struct {
	Phone     string `json:"phone"`
	Role      Role   `json:"role"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
}

// UserFilter narrows the admin user list.
type UserFilter struct {
	Role      Role
	IsActive  *bool
	Search    string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// UserPage is one page of the admin user list.
type UserPage struct {
	Data       []*User `json:"data"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"totalPages"`
}

// UserRoleStats counts accounts per role.
type UserRoleStats struct {
	Customer int `json:"customer"`
	Manager  int `json:"manager"`
	Admin    int `json:"admin"`
}

// UserStats is the dashboard summary returned by the remote API.
type UserStats struct {
	Total               int           `json:"total"`
	Active              int           `json:"active"`
	Inactive            int           `json:"inactive"`
	ByRole              UserRoleStats `json:"byRole"`
	RecentRegistrations int           `json:"recentRegistrations"`
}
