package domain

import "time"

// Organization is the tenant boundary. Users and notes belong to exactly
// one organization, fixed at creation.
type Organization struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

type User struct {
	ID             string
	OrganizationID string
	Email          string
	Name           string
	Role           Role
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

type Note struct {
	ID             string
	OrganizationID string
	CreatedBy      string
	Title          string
	Content        string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
