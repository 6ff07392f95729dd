package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gatherly/api/internal/helpers"
	"github.com/gatherly/api/internal/models"
	"github.com/gatherly/api/internal/services"
	"github.com/gin-gonic/gin"
)

// ListEvents serves the combined listing endpoint. A search term wins
// over a category filter, which wins over plain pagination.
func ListEvents(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if search, ok := c.GetQuery("search"); ok {
			events, err := e.Search(ctx, search)
			if err != nil {
				c.Error(err)
				return
			}
			c.JSON(http.StatusOK, events)
			return
		}

		if category := c.Query("category"); category != "" {
			categoryID, err := strconv.Atoi(category)
			if err != nil {
				// Unparseable category filters match nothing.
				c.JSON(http.StatusOK, []models.Event{})
				return
			}
			events, err := e.ByCategory(ctx, categoryID)
			if err != nil {
				c.Error(err)
				return
			}
			c.JSON(http.StatusOK, events)
			return
		}

		limit, _ := strconv.Atoi(c.Query("limit"))
		offset, _ := strconv.Atoi(c.Query("offset"))
		events, err := e.List(ctx, limit, offset)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

func FeaturedEvents(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit"))
		events, err := e.Featured(c.Request.Context(), limit)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

func GetEvent(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// An unparseable id can never match an event, so it reads as a
		// miss rather than a malformed request.
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
			return
		}

		event, err := e.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
				return
			}
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, event)
	}
}

// CreateEvent is admin-only. Organizer self-service creation is shaped
// into the payload (organizerId) but not yet gated separately.
func CreateEvent(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}
		if !claims.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"message": "Permission denied"})
			return
		}

		var input models.EventInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid event data",
				"errors":  helpers.ValidationDetails(err),
			})
			return
		}
		if input.OrganizerID == 0 {
			input.OrganizerID = claims.UserID
		}

		event, err := e.Create(c.Request.Context(), input)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, event)
	}
}

// UpdateEvent allows the admin or the recorded organizer to edit.
func UpdateEvent(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
			return
		}

		event, err := e.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
				return
			}
			c.Error(err)
			return
		}

		if !claims.IsAdmin && event.OrganizerID != claims.UserID {
			c.JSON(http.StatusForbidden, gin.H{"message": "Permission denied"})
			return
		}

		var patch models.EventPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid event data",
				"errors":  helpers.ValidationDetails(err),
			})
			return
		}

		updated, err := e.Update(c.Request.Context(), id, patch)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteEvent allows the admin or the recorded organizer to delete.
// Bookings for the event survive deletion; see DESIGN.md.
func DeleteEvent(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
			return
		}

		event, err := e.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
				return
			}
			c.Error(err)
			return
		}

		if !claims.IsAdmin && event.OrganizerID != claims.UserID {
			c.JSON(http.StatusForbidden, gin.H{"message": "Permission denied"})
			return
		}

		if err := e.Delete(c.Request.Context(), id); err != nil {
			c.Error(err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
