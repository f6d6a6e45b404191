package models

import "time"

// Interview field categories.
var InterviewFields = []string{"Data Analyst", "Software Engineer", "DevOps", "Other"}

// Interview is a booked mock-interview record binding a requester to one
// (SelectDate, SelectTime) pair. The pair is unique across all records,
// enforced by a unique compound index.
type Interview struct {
	ID             string    `bson:"id" json:"id"`
	SelectDate     time.Time `bson:"selectDate" json:"selectDate"`
	SelectTime     string    `bson:"selectTime" json:"selectTime"`
	YourField      string    `bson:"yourField" json:"yourField"`
	Name           string    `bson:"name" json:"name"`
	Email          string    `bson:"email" json:"email"`
	WhatsappNumber string    `bson:"whatsappNumber" json:"whatsappNumber"`
	UserID         string    `bson:"userId,omitempty" json:"userId,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// InterviewRequest is the payload for scheduling a new interview.
type InterviewRequest struct {
	SelectDate     string `json:"selectDate"`
	SelectTime     string `json:"selectTime"`
	YourField      string `json:"yourField"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	WhatsappNumber string `json:"whatsappNumber"`
	UserID         string `json:"-"`
}

// InterviewPatch is a partial update. Nil fields are left untouched; a
// present field replaces the stored value even when it is empty.
type InterviewPatch struct {
	SelectDate     *string `json:"selectDate"`
	SelectTime     *string `json:"selectTime"`
	YourField      *string `json:"yourField"`
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	WhatsappNumber *string `json:"whatsappNumber"`
}

// InterviewPage is a paginated listing of interviews.
type InterviewPage struct {
	Data        []Interview `json:"data"`
	CurrentPage int         `json:"currentPage"`
	TotalPages  int         `json:"totalPages"`
	TotalItems  int64       `json:"totalItems"`
}
