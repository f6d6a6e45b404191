package models

import "time"

// Mentor is a coach profile listed on the platform.
type Mentor struct {
	ID           string    `bson:"id" json:"id"`
	Photo        string    `bson:"photo" json:"photo"`
	Experience   int       `bson:"experience" json:"experience"` // years
	Field        string    `bson:"field" json:"field"`
	Course       string    `bson:"course" json:"course"`
	Company      string    `bson:"company" json:"company"`
	LinkedIn     string    `bson:"linkedIn" json:"linkedIn"`
	Email        string    `bson:"email,omitempty" json:"email,omitempty"`
	Password     string    `bson:"-" json:"password,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	IsActive     bool      `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
