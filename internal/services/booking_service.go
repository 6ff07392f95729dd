package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gatherly/api/internal/models"
)

// ErrPriceMismatch is returned when the client-supplied total does not
// equal event price times quantity.
var ErrPriceMismatch = errors.New("invalid price calculation")

type BookingService struct {
	store models.Store

	// Booking creation is serialized per event id so the capacity read
	// and the insert cannot interleave for the same event. Without this
	// two concurrent requests could both pass the capacity check and
	// oversell the event.
	mu         sync.Mutex
	eventLocks map[int]*sync.Mutex
}

func NewBookingService(store models.Store) *BookingService {
	return &BookingService{
		store:      store,
		eventLocks: make(map[int]*sync.Mutex),
	}
}

func (bs *BookingService) lockForEvent(eventID int) *sync.Mutex {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	lock, ok := bs.eventLocks[eventID]
	if !ok {
		lock = &sync.Mutex{}
		bs.eventLocks[eventID] = lock
	}
	return lock
}

// Create admits or rejects a prospective booking. Checks run in order
// and short-circuit: event exists, client total matches the recomputed
// price, remaining capacity covers the quantity. userID comes from the
// session, never from the payload.
func (bs *BookingService) Create(ctx context.Context, userID int, input models.BookingInput) (models.Booking, error) {
	if err := models.Validate.Struct(input); err != nil {
		return models.Booking{}, fmt.Errorf("invalid booking data: %w", err)
	}

	lock := bs.lockForEvent(input.EventID)
	lock.Lock()
	defer lock.Unlock()

	event, err := bs.store.GetEvent(ctx, input.EventID)
	if err != nil {
		return models.Booking{}, err
	}

	if input.TotalPrice != event.Price*input.Quantity {
		return models.Booking{}, ErrPriceMismatch
	}

	existing, err := bs.store.BookingsByEvent(ctx, input.EventID)
	if err != nil {
		return models.Booking{}, err
	}
	booked := 0
	for _, b := range existing {
		booked += b.Quantity
	}

	if booked+input.Quantity > event.Capacity {
		return models.Booking{}, &models.CapacityError{Available: event.Capacity - booked}
	}

	return bs.store.CreateBooking(ctx, models.Booking{
		UserID:     userID,
		EventID:    input.EventID,
		Quantity:   input.Quantity,
		TotalPrice: input.TotalPrice,
	})
}

func (bs *BookingService) Get(ctx context.Context, id int) (models.Booking, error) {
	return bs.store.GetBooking(ctx, id)
}

func (bs *BookingService) ListForUser(ctx context.Context, userID int) ([]models.Booking, error) {
	return bs.store.BookingsByUser(ctx, userID)
}

func (bs *BookingService) ListForEvent(ctx context.Context, eventID int) ([]models.Booking, error) {
	return bs.store.BookingsByEvent(ctx, eventID)
}

// Cancel removes a booking. Ownership is checked at the handler, where
// the caller's claims live.
func (bs *BookingService) Cancel(ctx context.Context, id int) error {
	return bs.store.DeleteBooking(ctx, id)
}
