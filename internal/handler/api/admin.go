package api

import (
	"errors"
	"net/http"

	"meet-scheduler/internal/domain/request"
	reqdto "meet-scheduler/internal/handler/dto/request"
	resdto "meet-scheduler/internal/handler/dto/response"
	"meet-scheduler/internal/usecase/commands"
	"meet-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the review surface. There is no session auth here; the
// unguessable per-request token in the review link is the credential.
type AdminHandler struct {
	commands   commands.SchedulingCommands
	scheduling queries.SchedulingQueries
}

func NewAdminHandler(cmds commands.SchedulingCommands, scheduling queries.SchedulingQueries) *AdminHandler {
	return &AdminHandler{
		commands:   cmds,
		scheduling: scheduling,
	}
}

// @Summary Approve request
// @Description Approve a pending request, optionally rescheduling or relocating it
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.ApproveRequest true "Approval payload"
// @Success 200 {object} resdto.ApproveResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /admin/approve [post]
func (h *AdminHandler) Approve(c *gin.Context) {
	var req reqdto.ApproveRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Token is required",
		})
		return
	}

	view, err := h.commands.Approve(c.Request.Context(), req)
	if err != nil {
		h.respondTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ApproveResponse{Success: true, Booking: view})
}

// @Summary Deny request
// @Description Deny a pending request with an optional reason
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.DenyRequest true "Denial payload"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /admin/deny [post]
func (h *AdminHandler) Deny(c *gin.Context) {
	var req reqdto.DenyRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Token is required",
		})
		return
	}

	if err := h.commands.Deny(c.Request.Context(), req); err != nil {
		h.respondTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.SuccessResponse{Success: true})
}

// @Summary Get request
// @Description Look up a request by its admin review token
// @Tags admin
// @Produce json
// @Param token query string true "Admin review token"
// @Success 200 {object} queries.RequestView
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /admin/request [get]
func (h *AdminHandler) GetRequest(c *gin.Context) {
	tok := c.Query("token")
	if tok == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Token is required",
		})
		return
	}

	view, err := h.scheduling.RequestByToken(c.Request.Context(), tok)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Request not found",
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

func (h *AdminHandler) respondTransitionError(c *gin.Context, err error) {
	var terminal *request.TerminalStateError
	switch {
	case errors.Is(err, commands.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Request not found",
		})
	case errors.As(err, &terminal):
		c.JSON(http.StatusConflict, gin.H{
			"error": terminal.Error(),
		})
	case errors.Is(err, commands.ErrInvalidDate),
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
