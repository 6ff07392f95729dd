package models

import (
	"context"
	"errors"
	"testing"
	"time"
)

func makeEvent(t *testing.T, s *MemStore, title, description, location string, categoryID int, featured bool) Event {
	t.Helper()
	event, err := s.CreateEvent(context.Background(), Event{
		Title:       title,
		Description: description,
		ImageURL:    "https://example.com/img.png",
		Date:        time.Now().Add(24 * time.Hour),
		Location:    location,
		Price:       1000,
		Capacity:    50,
		OrganizerID: 1,
		CategoryID:  categoryID,
		IsFeatured:  featured,
	})
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	return event
}

func TestCategorySeeding(t *testing.T) {
	s := NewMemStore()

	categories, err := s.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if len(categories) != len(DefaultCategories) {
		t.Fatalf("expected %d seeded categories, got %d", len(DefaultCategories), len(categories))
	}
	if categories[0].ID != 1 || categories[0].Name != "Music" {
		t.Errorf("unexpected first category: %+v", categories[0])
	}
}

func TestIDsAreMonotonicAndNotReused(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	first := makeEvent(t, s, "First", "", "A", 1, false)
	second := makeEvent(t, s, "Second", "", "B", 1, false)
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}

	if err := s.DeleteEvent(ctx, second.ID); err != nil {
		t.Fatalf("DeleteEvent failed: %v", err)
	}
	third := makeEvent(t, s, "Third", "", "C", 1, false)
	if third.ID != 3 {
		t.Errorf("deleted id was reused: got %d, want 3", third.ID)
	}
}

func TestUpdateEventIsShallowMerge(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	event := makeEvent(t, s, "Original", "desc", "Berlin", 2, true)

	newTitle := "Edited"
	newCapacity := 10
	newOrganizer := 9
	updated, err := s.UpdateEvent(ctx, event.ID, EventPatch{Title: &newTitle, Capacity: &newCapacity, OrganizerID: &newOrganizer})
	if err != nil {
		t.Fatalf("UpdateEvent failed: %v", err)
	}

	if updated.Title != "Edited" || updated.Capacity != 10 {
		t.Errorf("patched fields not applied: %+v", updated)
	}
	if updated.OrganizerID != 9 {
		t.Errorf("organizer reassignment not applied: %+v", updated)
	}
	if updated.Description != "desc" || updated.Location != "Berlin" || updated.CategoryID != 2 || !updated.IsFeatured {
		t.Errorf("untouched fields were not retained: %+v", updated)
	}
}

func TestUpdateEventUnknownID(t *testing.T) {
	s := NewMemStore()

	title := "x"
	if _, err := s.UpdateEvent(context.Background(), 42, EventPatch{Title: &title}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListEventsPagination(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		makeEvent(t, s, "Event", "", "Town", 1, false)
	}

	page, err := s.ListEvents(ctx, 2, 1)
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(page) != 2 || page[0].ID != 2 || page[1].ID != 3 {
		t.Errorf("unexpected page: %+v", page)
	}

	// Out-of-range offset yields an empty page, not an error.
	empty, err := s.ListEvents(ctx, 100, 10)
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected empty page, got %d events", len(empty))
	}

	// Limit past the end is clamped.
	tail, err := s.ListEvents(ctx, 100, 3)
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(tail) != 2 {
		t.Errorf("expected 2 trailing events, got %d", len(tail))
	}
}

func TestFeaturedEventsTruncates(t *testing.T) {
	s := NewMemStore()

	makeEvent(t, s, "A", "", "X", 1, true)
	makeEvent(t, s, "B", "", "X", 1, false)
	makeEvent(t, s, "C", "", "X", 1, true)
	makeEvent(t, s, "D", "", "X", 1, true)

	featured, err := s.FeaturedEvents(context.Background(), 2)
	if err != nil {
		t.Fatalf("FeaturedEvents failed: %v", err)
	}
	if len(featured) != 2 {
		t.Fatalf("expected 2 featured events, got %d", len(featured))
	}
	for _, e := range featured {
		if !e.IsFeatured {
			t.Errorf("non-featured event returned: %+v", e)
		}
	}
}

func TestSearchEventsCaseInsensitive(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	makeEvent(t, s, "Jazz Night", "live music downtown", "Hamburg", 1, false)
	makeEvent(t, s, "Marathon", "city run", "Munich", 4, false)

	matches, err := s.SearchEvents(ctx, "MUSIC")
	if err != nil {
		t.Fatalf("SearchEvents failed: %v", err)
	}
	if len(matches) != 1 || matches[0].Title != "Jazz Night" {
		t.Errorf("case-insensitive search failed: %+v", matches)
	}

	// Location is searched too.
	matches, err = s.SearchEvents(ctx, "munich")
	if err != nil {
		t.Fatalf("SearchEvents failed: %v", err)
	}
	if len(matches) != 1 || matches[0].Title != "Marathon" {
		t.Errorf("location search failed: %+v", matches)
	}
}

func TestSearchEventsEmptyQueryReturnsAll(t *testing.T) {
	s := NewMemStore()

	makeEvent(t, s, "A", "", "X", 1, false)
	makeEvent(t, s, "B", "", "Y", 2, false)

	matches, err := s.SearchEvents(context.Background(), "")
	if err != nil {
		t.Fatalf("SearchEvents failed: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("empty query should match everything, got %d", len(matches))
	}
}

func TestEventsByCategoryUnknownIsEmpty(t *testing.T) {
	s := NewMemStore()
	makeEvent(t, s, "A", "", "X", 1, false)

	matches, err := s.EventsByCategory(context.Background(), 99)
	if err != nil {
		t.Fatalf("EventsByCategory failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("unknown category should match nothing, got %d", len(matches))
	}
}

func TestDeleteEventKeepsBookings(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	event := makeEvent(t, s, "Doomed", "", "X", 1, false)
	booking, err := s.CreateBooking(ctx, Booking{UserID: 1, EventID: event.ID, Quantity: 2, TotalPrice: 2000})
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	if err := s.DeleteEvent(ctx, event.ID); err != nil {
		t.Fatalf("DeleteEvent failed: %v", err)
	}
	if _, err := s.GetEvent(ctx, event.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("event should be gone, got %v", err)
	}

	kept, err := s.GetBooking(ctx, booking.ID)
	if err != nil {
		t.Fatalf("booking should survive event deletion: %v", err)
	}
	if kept.EventID != event.ID {
		t.Errorf("booking lost its event reference: %+v", kept)
	}
}

func TestCreateBookingAssignsTimestamp(t *testing.T) {
	s := NewMemStore()

	before := time.Now()
	booking, err := s.CreateBooking(context.Background(), Booking{UserID: 1, EventID: 1, Quantity: 1, TotalPrice: 1000})
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	if booking.BookingDate.Before(before) {
		t.Errorf("booking date not server-assigned: %v", booking.BookingDate)
	}
}

func TestUserLookups(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	created, err := s.CreateUser(ctx, User{Username: "alice", Password: "hash", Email: "alice@example.com", Name: "Alice"})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	byName, err := s.GetUserByUsername(ctx, "alice")
	if err != nil || byName.ID != created.ID {
		t.Errorf("GetUserByUsername: user %+v, err %v", byName, err)
	}
	byEmail, err := s.GetUserByEmail(ctx, "alice@example.com")
	if err != nil || byEmail.ID != created.ID {
		t.Errorf("GetUserByEmail: user %+v, err %v", byEmail, err)
	}
	if _, err := s.GetUserByUsername(ctx, "bob"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown username, got %v", err)
	}
}
