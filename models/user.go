package models

import "time"

// User roles.
const (
	RoleStudent = "Student"
	RoleMentor  = "Mentor"
	RoleAdmin   = "Admin"
)

// StudentDetails carries the profile fields a student fills in over time.
type StudentDetails struct {
	Image           string   `bson:"image,omitempty" json:"image,omitempty"`
	Experience      string   `bson:"experience,omitempty" json:"experience,omitempty"`
	Company         string   `bson:"company,omitempty" json:"company,omitempty"`
	TechnicalSkills []string `bson:"technicalSkills,omitempty" json:"technicalSkills,omitempty"`
	SoftSkills      []string `bson:"softSkills,omitempty" json:"softSkills,omitempty"`
	Portfolio       string   `bson:"portfolio,omitempty" json:"portfolio,omitempty"`
	LinkedinURL     string   `bson:"linkedinUrl,omitempty" json:"linkedinUrl,omitempty"`
	Position        string   `bson:"position,omitempty" json:"position,omitempty"`
	JobRoleID       string   `bson:"jobRoleId,omitempty" json:"jobRoleId,omitempty"`
	Phone           string   `bson:"phone,omitempty" json:"phone,omitempty"`
	Whatsapp        string   `bson:"whatsapp,omitempty" json:"whatsapp,omitempty"`
	Education       string   `bson:"education,omitempty" json:"education,omitempty"`
	Working         bool     `bson:"working" json:"working"`
	Certifications  []string `bson:"certifications,omitempty" json:"certifications,omitempty"`
}

// User is a platform account (student or mentor).
type User struct {
	ID           string         `bson:"id" json:"id"`
	Name         string         `bson:"name" json:"name"`
	Email        string         `bson:"email" json:"email"`
	Password     string         `bson:"-" json:"password,omitempty"`
	PasswordHash string         `bson:"passwordHash" json:"-"`
	Role         string         `bson:"role" json:"role"`
	Profile      StudentDetails `bson:"profile,omitempty" json:"profile"`
	CreatedAt    time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// AuthResponse is returned by register/login.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}
