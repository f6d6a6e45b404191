package models

import "time"

// Registration plans accepted for workshop participants.
var WorkshopPlans = []int64{19, 49, 99}

// Participant is a registered attendee embedded in a workshop document.
type Participant struct {
	ID        string    `bson:"id" json:"id"`
	FullName  string    `bson:"fullName" json:"fullName"`
	Email     string    `bson:"email" json:"email"`
	Whatsapp  string    `bson:"whatsapp" json:"whatsapp"`
	Payment   int64     `bson:"payment" json:"payment"`
	Confirmed bool      `bson:"confirmed" json:"confirmed"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Workshop is a paid group session.
type Workshop struct {
	ID              string        `bson:"id" json:"id"`
	WorkshopName    string        `bson:"workshopName" json:"workshopName"`
	DateTime        time.Time     `bson:"dateTime" json:"dateTime"`
	MeetingLink     string        `bson:"meetingLink" json:"meetingLink"`
	WorkshopLink    string        `bson:"workshopLink" json:"workshopLink"`
	WhatYoullLearn  []string      `bson:"whatYoullLearn" json:"whatYoullLearn"`
	Description     string        `bson:"description" json:"description"`
	Price           float64       `bson:"price" json:"price"`
	TotalRegistered int           `bson:"totalRegistered" json:"totalRegistered"`
	Participants    []Participant `bson:"participants" json:"participants"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// RegistrationRequest is the payload for registering a workshop participant.
type RegistrationRequest struct {
	WorkshopID   string `json:"workshopId"`
	WorkshopLink string `json:"workshopLink"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Whatsapp     string `json:"whatsapp"`
	Payment      int64  `json:"payment"`
}

// RegistrationResponse returns the registered participant together with the
// payment intent client secret the frontend completes the charge with.
type RegistrationResponse struct {
	WorkshopID   string      `json:"workshopId"`
	Participant  Participant `json:"participant"`
	ClientSecret string      `json:"clientSecret,omitempty"`
}
