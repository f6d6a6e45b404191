package models

import "time"

// JobCard tracks a student's placement-readiness progress. One card per student.
type JobCard struct {
	ID                  string    `bson:"id" json:"id"`
	StudentID           string    `bson:"studentId" json:"studentId"`
	Rating              float64   `bson:"rating,omitempty" json:"rating,omitempty"`
	Feedback            string    `bson:"feedback,omitempty" json:"feedback,omitempty"`
	AcademicPerformance float64   `bson:"academicPerformance,omitempty" json:"academicPerformance,omitempty"`
	Attendance          float64   `bson:"attendance,omitempty" json:"attendance,omitempty"`
	Communication       float64   `bson:"communication,omitempty" json:"communication,omitempty"`
	Teamwork            float64   `bson:"teamwork,omitempty" json:"teamwork,omitempty"`
	TechnicalSkills     float64   `bson:"technicalSkills,omitempty" json:"technicalSkills,omitempty"`
	TotalProjects       int       `bson:"totalProjects,omitempty" json:"totalProjects,omitempty"`
	Progress            float64   `bson:"progress,omitempty" json:"progress,omitempty"`
	Mentor              string    `bson:"mentor,omitempty" json:"mentor,omitempty"`
	CreatedAt           time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time `bson:"updatedAt" json:"updatedAt"`
}

// JobCardView is a card joined with the owning student's display fields.
type JobCardView struct {
	JobCard  `bson:",inline"`
	Name     string `json:"name"`
	Photo    string `json:"photo,omitempty"`
	Subtitle string `json:"subtitle"`
}
