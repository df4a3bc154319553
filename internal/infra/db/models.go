package db

import "time"

type OrganizationModel struct {
	ID        string    `gorm:"type:char(24);primaryKey"`
	Name      string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (OrganizationModel) TableName() string { return "organizations" }

type UserModel struct {
	ID             string    `gorm:"type:char(24);primaryKey"`
	OrganizationID string    `gorm:"type:char(24);index;not null;uniqueIndex:idx_users_org_email,priority:1"`
	Email          string    `gorm:"not null;uniqueIndex:idx_users_org_email,priority:2"`
	Name           string    `gorm:"not null"`
	Role           string    `gorm:"not null"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      *time.Time
}

func (UserModel) TableName() string { return "users" }

type NoteModel struct {
	ID             string    `gorm:"type:char(24);primaryKey"`
	OrganizationID string    `gorm:"type:char(24);index;not null"`
	CreatedBy      string    `gorm:"type:char(24);not null"`
	Title          string    `gorm:"not null"`
	Content        string    `gorm:"type:text;not null"`
	CreatedAt      time.Time `gorm:"index;not null"`
	UpdatedAt      *time.Time
}

func (NoteModel) TableName() string { return "notes" }
