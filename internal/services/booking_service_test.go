package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gatherly/api/internal/models"
)

func makeTicketedEvent(t *testing.T, store *models.MemStore, price, capacity int) models.Event {
	t.Helper()
	event, err := store.CreateEvent(context.Background(), models.Event{
		Title:       "Concert",
		Description: "desc",
		ImageURL:    "https://example.com/img.png",
		Date:        time.Now().Add(48 * time.Hour),
		Location:    "Arena",
		Price:       price,
		Capacity:    capacity,
		OrganizerID: 1,
		CategoryID:  1,
	})
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	return event
}

func TestCreateBookingUnknownEvent(t *testing.T) {
	store := models.NewMemStore()
	bs := NewBookingService(store)

	_, err := bs.Create(context.Background(), 1, models.BookingInput{EventID: 99, Quantity: 1, TotalPrice: 1000})
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateBookingRejectsTamperedPrice(t *testing.T) {
	store := models.NewMemStore()
	bs := NewBookingService(store)
	event := makeTicketedEvent(t, store, 1000, 10)

	_, err := bs.Create(context.Background(), 1, models.BookingInput{
		EventID:    event.ID,
		Quantity:   1,
		TotalPrice: 999,
	})
	if !errors.Is(err, ErrPriceMismatch) {
		t.Fatalf("expected ErrPriceMismatch, got %v", err)
	}

	// Nothing may be persisted after a rejection.
	bookings, err := store.BookingsByEvent(context.Background(), event.ID)
	if err != nil {
		t.Fatalf("BookingsByEvent failed: %v", err)
	}
	if len(bookings) != 0 {
		t.Errorf("rejected booking was persisted: %+v", bookings)
	}
}

func TestCreateBookingCapacityScenario(t *testing.T) {
	// Event priced at $15.00 with capacity 2: booking both tickets
	// succeeds, a follow-up for one more is rejected with 0 available.
	store := models.NewMemStore()
	bs := NewBookingService(store)
	event := makeTicketedEvent(t, store, 1500, 2)
	ctx := context.Background()

	booking, err := bs.Create(ctx, 1, models.BookingInput{EventID: event.ID, Quantity: 2, TotalPrice: 3000})
	if err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	if booking.TotalPrice != 3000 || booking.Quantity != 2 {
		t.Errorf("unexpected booking: %+v", booking)
	}

	_, err = bs.Create(ctx, 2, models.BookingInput{EventID: event.ID, Quantity: 1, TotalPrice: 1500})
	var capErr *models.CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected CapacityError, got %v", err)
	}
	if capErr.Available != 0 {
		t.Errorf("expected 0 available, got %d", capErr.Available)
	}
}

func TestCreateBookingFreeEvent(t *testing.T) {
	// A free event's only correct total is 0; the zero total must pass
	// validation and the price check.
	store := models.NewMemStore()
	bs := NewBookingService(store)
	event := makeTicketedEvent(t, store, 0, 10)

	booking, err := bs.Create(context.Background(), 1, models.BookingInput{
		EventID:    event.ID,
		Quantity:   1,
		TotalPrice: 0,
	})
	if err != nil {
		t.Fatalf("free-event booking rejected: %v", err)
	}
	if booking.TotalPrice != 0 {
		t.Errorf("unexpected total: %+v", booking)
	}

	// A nonzero total against a free event is still price tampering.
	_, err = bs.Create(context.Background(), 2, models.BookingInput{
		EventID:    event.ID,
		Quantity:   1,
		TotalPrice: 100,
	})
	if !errors.Is(err, ErrPriceMismatch) {
		t.Errorf("expected ErrPriceMismatch, got %v", err)
	}
}

func TestCreateBookingRejectsNegativeTotal(t *testing.T) {
	store := models.NewMemStore()
	bs := NewBookingService(store)
	event := makeTicketedEvent(t, store, 100, 10)

	_, err := bs.Create(context.Background(), 1, models.BookingInput{
		EventID:    event.ID,
		Quantity:   1,
		TotalPrice: -100,
	})
	if err == nil {
		t.Error("negative total was accepted")
	}
}

func TestCreateBookingQuantityBounds(t *testing.T) {
	store := models.NewMemStore()
	bs := NewBookingService(store)
	event := makeTicketedEvent(t, store, 100, 100)
	ctx := context.Background()

	for _, quantity := range []int{0, -1, models.MaxTicketsPerOrder + 1} {
		_, err := bs.Create(ctx, 1, models.BookingInput{
			EventID:    event.ID,
			Quantity:   quantity,
			TotalPrice: 100 * quantity,
		})
		if err == nil {
			t.Errorf("quantity %d was accepted", quantity)
		}
	}
}

func TestCreateBookingForcesCallerID(t *testing.T) {
	store := models.NewMemStore()
	bs := NewBookingService(store)
	event := makeTicketedEvent(t, store, 500, 10)

	booking, err := bs.Create(context.Background(), 7, models.BookingInput{EventID: event.ID, Quantity: 1, TotalPrice: 500})
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	if booking.UserID != 7 {
		t.Errorf("booking not attributed to caller: %+v", booking)
	}
}

func TestConcurrentBookingsNeverOversell(t *testing.T) {
	store := models.NewMemStore()
	bs := NewBookingService(store)
	event := makeTicketedEvent(t, store, 1000, 5)
	ctx := context.Background()

	const attempts = 20
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(userID int) {
			defer wg.Done()
			_, err := bs.Create(ctx, userID, models.BookingInput{
				EventID:    event.ID,
				Quantity:   1,
				TotalPrice: 1000,
			})
			results <- err
		}(i + 1)
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		var capErr *models.CapacityError
		if !errors.As(err, &capErr) {
			t.Errorf("unexpected failure: %v", err)
		}
	}
	if succeeded != event.Capacity {
		t.Errorf("expected exactly %d admitted bookings, got %d", event.Capacity, succeeded)
	}

	bookings, err := store.BookingsByEvent(ctx, event.ID)
	if err != nil {
		t.Fatalf("BookingsByEvent failed: %v", err)
	}
	total := 0
	for _, b := range bookings {
		total += b.Quantity
	}
	if total > event.Capacity {
		t.Errorf("event oversold: %d booked for capacity %d", total, event.Capacity)
	}
}
