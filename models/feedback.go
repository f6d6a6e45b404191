package models

import "time"

// Feedback is a mentor's written assessment of a student.
type Feedback struct {
	ID        string    `bson:"id" json:"id"`
	MentorID  string    `bson:"mentorId" json:"mentorId"`
	StudentID string    `bson:"studentId" json:"studentId"`
	Feedback  string    `bson:"feedback" json:"feedback"`
	Score     float64   `bson:"score" json:"score"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
