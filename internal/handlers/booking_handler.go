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

// ListBookings returns the caller's own bookings. An admin supplying
// ?event=ID sees every booking for that event; an admin without the
// filter still only sees their own, matching the documented behavior.
func ListBookings(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		if event := c.Query("event"); claims.IsAdmin && event != "" {
			// A filter that doesn't parse falls through to the caller's
			// own bookings, same as any non-admin request.
			if eventID, err := strconv.Atoi(event); err == nil {
				bookings, err := b.ListForEvent(c.Request.Context(), eventID)
				if err != nil {
					c.Error(err)
					return
				}
				c.JSON(http.StatusOK, bookings)
				return
			}
		}

		bookings, err := b.ListForUser(c.Request.Context(), claims.UserID)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

// CreateBooking runs the booking checks and persists on success. The
// booking is always made for the caller, whatever the payload says.
func CreateBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		var input models.BookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid booking data",
				"errors":  helpers.ValidationDetails(err),
			})
			return
		}

		booking, err := b.Create(c.Request.Context(), claims.UserID, input)
		if err != nil {
			var capErr *models.CapacityError
			switch {
			case errors.Is(err, models.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
			case errors.Is(err, services.ErrPriceMismatch):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid price calculation"})
			case errors.As(err, &capErr):
				c.JSON(http.StatusBadRequest, gin.H{
					"message":   "Not enough tickets available",
					"available": capErr.Available,
				})
			default:
				c.Error(err)
			}
			return
		}

		c.JSON(http.StatusCreated, booking)
	}
}

// CancelBooking deletes a booking owned by the caller, or any booking
// when the caller is an admin.
func CancelBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
			return
		}

		booking, err := b.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
				return
			}
			c.Error(err)
			return
		}

		if !claims.IsAdmin && !claims.IsOwner(booking.UserID) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Permission denied"})
			return
		}

		if err := b.Cancel(c.Request.Context(), id); err != nil {
			c.Error(err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
