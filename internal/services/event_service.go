package services

import (
	"context"
	"fmt"

	"github.com/gatherly/api/internal/models"
)

const (
	defaultListLimit     = 100
	defaultFeaturedLimit = 6
)

type EventService struct {
	store models.Store
}

func NewEventService(store models.Store) *EventService {
	return &EventService{store: store}
}

// List returns a page of the event collection in insertion order.
// Non-positive limit/offset fall back to the defaults (100 and 0);
// an offset past the end yields an empty page, never an error.
func (es *EventService) List(ctx context.Context, limit, offset int) ([]models.Event, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return es.store.ListEvents(ctx, limit, offset)
}

func (es *EventService) Featured(ctx context.Context, limit int) ([]models.Event, error) {
	if limit <= 0 {
		limit = defaultFeaturedLimit
	}
	return es.store.FeaturedEvents(ctx, limit)
}

func (es *EventService) ByCategory(ctx context.Context, categoryID int) ([]models.Event, error) {
	return es.store.EventsByCategory(ctx, categoryID)
}

// Search matches the query case-insensitively against title,
// description and location. An empty query matches every event.
func (es *EventService) Search(ctx context.Context, query string) ([]models.Event, error) {
	return es.store.SearchEvents(ctx, query)
}

func (es *EventService) Get(ctx context.Context, id int) (models.Event, error) {
	return es.store.GetEvent(ctx, id)
}

func (es *EventService) Create(ctx context.Context, input models.EventInput) (models.Event, error) {
	if err := models.Validate.Struct(input); err != nil {
		return models.Event{}, fmt.Errorf("invalid event data: %w", err)
	}

	return es.store.CreateEvent(ctx, models.Event{
		Title:          input.Title,
		Description:    input.Description,
		ImageURL:       input.ImageURL,
		Date:           input.Date,
		Location:       input.Location,
		Price:          input.Price,
		Capacity:       input.Capacity,
		OrganizerID:    input.OrganizerID,
		OrganizerName:  input.OrganizerName,
		OrganizerImage: input.OrganizerImage,
		CategoryID:     input.CategoryID,
		IsFeatured:     input.IsFeatured,
	})
}

// Update applies a partial edit. Existing bookings are not re-checked
// when capacity shrinks; see DESIGN.md.
func (es *EventService) Update(ctx context.Context, id int, patch models.EventPatch) (models.Event, error) {
	return es.store.UpdateEvent(ctx, id, patch)
}

func (es *EventService) Delete(ctx context.Context, id int) error {
	return es.store.DeleteEvent(ctx, id)
}
