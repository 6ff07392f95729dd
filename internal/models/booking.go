package models

import "time"

// MaxTicketsPerOrder caps the quantity of a single booking.
const MaxTicketsPerOrder = 10

type Booking struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	EventID     int       `json:"eventId"`
	Quantity    int       `json:"quantity"`
	TotalPrice  int       `json:"totalPrice"` // minor currency units
	BookingDate time.Time `json:"bookingDate"`
}

// BookingInput is the payload for creating a booking. The user id is
// never taken from the payload; handlers force it to the caller's id.
// TotalPrice may be zero: free events have a correct total of 0, so the
// price-verification step decides, not a positivity rule here.
type BookingInput struct {
	EventID    int `json:"eventId" binding:"required" validate:"required"`
	Quantity   int `json:"quantity" binding:"required,gte=1,lte=10" validate:"required,gte=1,lte=10"`
	TotalPrice int `json:"totalPrice" binding:"gte=0" validate:"gte=0"`
}
