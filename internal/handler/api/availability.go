package api

import (
	"net/http"

	"meet-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability: availability,
	}
}

// @Summary Get available slots
// @Description List 10-minute slots for a date and meeting type with availability flags
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param meeting_type query string true "Meeting type ID"
// @Success 200 {array} schedule.Slot
// @Router /availability [get]
func (h *AvailabilityHandler) GetSlots(c *gin.Context) {
	date := c.Query("date")
	meetingType := c.Query("meeting_type")

	// Unknown types and malformed or out-of-range dates all come back as an
	// empty grid rather than an error; the slot picker simply shows nothing.
	slots := h.availability.Slots(c.Request.Context(), date, meetingType)
	c.JSON(http.StatusOK, slots)
}

// @Summary List meeting types
// @Description List the bookable meeting types with their durations
// @Tags availability
// @Produce json
// @Success 200 {array} queries.MeetingTypeSummary
// @Router /meeting-types [get]
func (h *AvailabilityHandler) GetMeetingTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.availability.MeetingTypes(c.Request.Context()))
}
