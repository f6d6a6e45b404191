package models

import "time"

// JobRole is a named role students can be assigned to.
type JobRole struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// TemplateField is one input field in a job-role template.
type TemplateField struct {
	Name string `bson:"name" json:"name"`
	Type string `bson:"type" json:"type"` // text, number, select, boolean
}

// JobRoleTemplate defines the progress-tracking fields for one job role.
// At most one template exists per role.
type JobRoleTemplate struct {
	ID        string          `bson:"id" json:"id"`
	JobRoleID string          `bson:"jobRoleId" json:"jobRoleId"`
	Fields    []TemplateField `bson:"fields" json:"fields"`
	CreatedAt time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time       `bson:"updatedAt" json:"updatedAt"`
}
