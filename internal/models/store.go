package models

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

var Validate = validator.New()

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// CapacityError is returned when a booking would exceed an event's
// capacity. Available is the quantity that could still be booked.
type CapacityError struct {
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("not enough tickets available (%d left)", e.Available)
}

// Store is the persistence contract for all domain entities. MemStore
// implements it in memory; a database-backed implementation can replace
// it without touching the services, which is why every method carries a
// context even where the in-memory version ignores it.
type Store interface {
	GetUser(ctx context.Context, id int) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	CreateUser(ctx context.Context, user User) (User, error)
	UpdateUser(ctx context.Context, id int, patch UserPatch) (User, error)

	GetEvent(ctx context.Context, id int) (Event, error)
	ListEvents(ctx context.Context, limit, offset int) ([]Event, error)
	FeaturedEvents(ctx context.Context, limit int) ([]Event, error)
	EventsByCategory(ctx context.Context, categoryID int) ([]Event, error)
	SearchEvents(ctx context.Context, query string) ([]Event, error)
	CreateEvent(ctx context.Context, event Event) (Event, error)
	UpdateEvent(ctx context.Context, id int, patch EventPatch) (Event, error)
	DeleteEvent(ctx context.Context, id int) error

	GetCategory(ctx context.Context, id int) (Category, error)
	ListCategories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, category Category) (Category, error)

	GetBooking(ctx context.Context, id int) (Booking, error)
	BookingsByUser(ctx context.Context, userID int) ([]Booking, error)
	BookingsByEvent(ctx context.Context, eventID int) ([]Booking, error)
	CreateBooking(ctx context.Context, booking Booking) (Booking, error)
	DeleteBooking(ctx context.Context, id int) error
}

// MemStore keeps every collection in a map keyed by id. Ids are
// per-kind monotonic counters starting at 1 and are never reused after
// deletion. All access goes through a single RWMutex so counters and
// maps stay consistent under parallel requests.
type MemStore struct {
	mu sync.RWMutex

	users      map[int]User
	events     map[int]Event
	categories map[int]Category
	bookings   map[int]Booking

	userID     int
	eventID    int
	categoryID int
	bookingID  int
}

// NewMemStore returns a store pre-seeded with the default categories.
func NewMemStore() *MemStore {
	s := &MemStore{
		users:      make(map[int]User),
		events:     make(map[int]Event),
		categories: make(map[int]Category),
		bookings:   make(map[int]Booking),
	}
	for _, c := range DefaultCategories {
		s.categoryID++
		c.ID = s.categoryID
		s.categories[c.ID] = c
	}
	return s
}

var _ Store = (*MemStore)(nil)

// User methods

func (s *MemStore) GetUser(_ context.Context, id int) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func (s *MemStore) GetUserByUsername(_ context.Context, username string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return User{}, ErrNotFound
}

func (s *MemStore) GetUserByEmail(_ context.Context, email string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return User{}, ErrNotFound
}

func (s *MemStore) CreateUser(_ context.Context, user User) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userID++
	user.ID = s.userID
	s.users[user.ID] = user
	return user, nil
}

func (s *MemStore) UpdateUser(_ context.Context, id int, patch UserPatch) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Password != nil {
		user.Password = *patch.Password
	}
	if patch.IsAdmin != nil {
		user.IsAdmin = *patch.IsAdmin
	}
	s.users[id] = user
	return user, nil
}

// Event methods

func (s *MemStore) GetEvent(_ context.Context, id int) (Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[id]
	if !ok {
		return Event{}, ErrNotFound
	}
	return event, nil
}

// eventsInOrder returns all events sorted by id, which matches
// insertion order because ids are monotonic.
func (s *MemStore) eventsInOrder() []Event {
	events := make([]Event, 0, len(s.events))
	for _, e := range s.events {
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events
}

func (s *MemStore) ListEvents(_ context.Context, limit, offset int) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := s.eventsInOrder()
	if offset >= len(events) {
		return []Event{}, nil
	}
	end := offset + limit
	if end > len(events) {
		end = len(events)
	}
	return events[offset:end], nil
}

func (s *MemStore) FeaturedEvents(_ context.Context, limit int) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	featured := []Event{}
	for _, e := range s.eventsInOrder() {
		if e.IsFeatured {
			featured = append(featured, e)
			if len(featured) == limit {
				break
			}
		}
	}
	return featured, nil
}

func (s *MemStore) EventsByCategory(_ context.Context, categoryID int) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []Event{}
	for _, e := range s.eventsInOrder() {
		if e.CategoryID == categoryID {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

func (s *MemStore) SearchEvents(_ context.Context, query string) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	matches := []Event{}
	for _, e := range s.eventsInOrder() {
		if strings.Contains(strings.ToLower(e.Title), q) ||
			strings.Contains(strings.ToLower(e.Description), q) ||
			strings.Contains(strings.ToLower(e.Location), q) {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

func (s *MemStore) CreateEvent(_ context.Context, event Event) (Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.eventID++
	event.ID = s.eventID
	s.events[event.ID] = event
	return event, nil
}

func (s *MemStore) UpdateEvent(_ context.Context, id int, patch EventPatch) (Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[id]
	if !ok {
		return Event{}, ErrNotFound
	}
	if patch.Title != nil {
		event.Title = *patch.Title
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		event.ImageURL = *patch.ImageURL
	}
	if patch.Date != nil {
		event.Date = *patch.Date
	}
	if patch.Location != nil {
		event.Location = *patch.Location
	}
	if patch.Price != nil {
		event.Price = *patch.Price
	}
	if patch.Capacity != nil {
		event.Capacity = *patch.Capacity
	}
	if patch.OrganizerID != nil {
		event.OrganizerID = *patch.OrganizerID
	}
	if patch.OrganizerName != nil {
		event.OrganizerName = *patch.OrganizerName
	}
	if patch.OrganizerImage != nil {
		event.OrganizerImage = *patch.OrganizerImage
	}
	if patch.CategoryID != nil {
		event.CategoryID = *patch.CategoryID
	}
	if patch.IsFeatured != nil {
		event.IsFeatured = *patch.IsFeatured
	}
	s.events[id] = event
	return event, nil
}

// DeleteEvent removes the event only. Bookings that reference it are
// intentionally left in place; see DESIGN.md for the cascade decision.
func (s *MemStore) DeleteEvent(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return ErrNotFound
	}
	delete(s.events, id)
	return nil
}

// Category methods

func (s *MemStore) GetCategory(_ context.Context, id int) (Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, ok := s.categories[id]
	if !ok {
		return Category{}, ErrNotFound
	}
	return category, nil
}

func (s *MemStore) ListCategories(_ context.Context) ([]Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]Category, 0, len(s.categories))
	for _, c := range s.categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (s *MemStore) CreateCategory(_ context.Context, category Category) (Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categoryID++
	category.ID = s.categoryID
	s.categories[category.ID] = category
	return category, nil
}

// Booking methods

func (s *MemStore) GetBooking(_ context.Context, id int) (Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.bookings[id]
	if !ok {
		return Booking{}, ErrNotFound
	}
	return booking, nil
}

func (s *MemStore) bookingsWhere(keep func(Booking) bool) []Booking {
	matches := []Booking{}
	for _, b := range s.bookings {
		if keep(b) {
			matches = append(matches, b)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches
}

func (s *MemStore) BookingsByUser(_ context.Context, userID int) ([]Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.bookingsWhere(func(b Booking) bool { return b.UserID == userID }), nil
}

func (s *MemStore) BookingsByEvent(_ context.Context, eventID int) ([]Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.bookingsWhere(func(b Booking) bool { return b.EventID == eventID }), nil
}

func (s *MemStore) CreateBooking(_ context.Context, booking Booking) (Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookingID++
	booking.ID = s.bookingID
	booking.BookingDate = time.Now()
	s.bookings[booking.ID] = booking
	return booking, nil
}

func (s *MemStore) DeleteBooking(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[id]; !ok {
		return ErrNotFound
	}
	delete(s.bookings, id)
	return nil
}
