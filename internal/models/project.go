package models

import "time"

// ProjectCode is the mutable part of a project. Absent fields are empty strings.
type ProjectCode struct {
	HTML string `json:"htmlCode"`
	CSS  string `json:"cssCode"`
	JS   string `json:"jsCode"`
}

// Project is an editor document owned by the user who created it.
// OwnerID and Name are fixed at creation.
type Project struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	OwnerID string `json:"ownerId"`
	ProjectCode
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
