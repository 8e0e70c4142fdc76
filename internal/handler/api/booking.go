package api

import (
	"errors"
	"net/http"

	"meet-scheduler/internal/domain/booking"
	reqdto "meet-scheduler/internal/handler/dto/request"
	resdto "meet-scheduler/internal/handler/dto/response"
	"meet-scheduler/internal/usecase/commands"
	"meet-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	commands   commands.SchedulingCommands
	scheduling queries.SchedulingQueries
}

func NewBookingHandler(cmds commands.SchedulingCommands, scheduling queries.SchedulingQueries) *BookingHandler {
	return &BookingHandler{
		commands:   cmds,
		scheduling: scheduling,
	}
}

// @Summary Submit booking request
// @Description Submit an appointment request for admin review
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.BookRequest true "Booking request"
// @Success 200 {object} resdto.BookResponse
// @Failure 400 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /book [post]
func (h *BookingHandler) Book(c *gin.Context) {
	var req reqdto.BookRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.commands.Submit(c.Request.Context(), req)
	if err != nil {
		h.respondSubmitError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.BookResponse{Success: true, ID: id})
}

// @Summary Cancel booking
// @Description Cancel an approved booking with its cancellation token
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.CancelRequest true "Cancellation token"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	var req reqdto.CancelRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cancellation token is required",
		})
		return
	}

	err := h.commands.Cancel(c.Request.Context(), req.Token)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, booking.ErrAlreadyCancelled):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "This booking has already been cancelled",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.SuccessResponse{Success: true})
}

// @Summary Get booking
// @Description Look up a booking by its cancellation token
// @Tags booking
// @Produce json
// @Param token query string true "Cancellation token"
// @Success 200 {object} queries.BookingView
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /booking [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	tok := c.Query("token")
	if tok == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Token is required",
		})
		return
	}

	view, err := h.scheduling.BookingByCancellationToken(c.Request.Context(), tok)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, queries.ErrBookingCancelled):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "This booking has been cancelled",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *BookingHandler) respondSubmitError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrMissingFields),
		errors.Is(err, commands.ErrUnknownMeetingType),
		errors.Is(err, commands.ErrInvalidDate),
		errors.Is(err, commands.ErrInvalidTime),
		errors.Is(err, commands.ErrDateOutOfRange),
		errors.Is(err, commands.ErrOutsideDailyWindow),
		errors.Is(err, commands.ErrBlackoutOverlap):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, commands.ErrSlotConflict),
		errors.Is(err, commands.ErrBufferConflict),
		errors.Is(err, commands.ErrMealAlreadyBooked):
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
