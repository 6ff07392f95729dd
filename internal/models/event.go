package models

import "time"

type Event struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ImageURL       string    `json:"imageUrl"`
	Date           time.Time `json:"date"`
	Location       string    `json:"location"`
	Price          int       `json:"price"` // minor currency units (cents)
	Capacity       int       `json:"capacity"`
	OrganizerID    int       `json:"organizerId"`
	OrganizerName  string    `json:"organizerName"`
	OrganizerImage string    `json:"organizerImage"`
	CategoryID     int       `json:"categoryId"`
	IsFeatured     bool      `json:"isFeatured"`
}

// EventInput is the payload for creating an event.
type EventInput struct {
	Title          string    `json:"title" binding:"required" validate:"required"`
	Description    string    `json:"description" binding:"required" validate:"required"`
	ImageURL       string    `json:"imageUrl" binding:"required" validate:"required"`
	Date           time.Time `json:"date" binding:"required" validate:"required"`
	Location       string    `json:"location" binding:"required" validate:"required"`
	Price          int       `json:"price" binding:"min=0" validate:"min=0"`
	Capacity       int       `json:"capacity" binding:"required,gt=0" validate:"required,gt=0"`
	OrganizerID    int       `json:"organizerId"`
	OrganizerName  string    `json:"organizerName" binding:"required" validate:"required"`
	OrganizerImage string    `json:"organizerImage"`
	CategoryID     int       `json:"categoryId" binding:"required" validate:"required"`
	IsFeatured     bool      `json:"isFeatured"`
}

// EventPatch is a partial update; nil fields are left unchanged.
type EventPatch struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	ImageURL       *string    `json:"imageUrl"`
	Date           *time.Time `json:"date"`
	Location       *string    `json:"location"`
	Price          *int       `json:"price"`
	Capacity       *int       `json:"capacity"`
	OrganizerID    *int       `json:"organizerId"`
	OrganizerName  *string    `json:"organizerName"`
	OrganizerImage *string    `json:"organizerImage"`
	CategoryID     *int       `json:"categoryId"`
	IsFeatured     *bool      `json:"isFeatured"`
}
