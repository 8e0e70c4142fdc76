package response

import "meet-scheduler/internal/usecase/queries"

type BookResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

type ApproveResponse struct {
	Success bool                 `json:"success"`
	Booking *queries.BookingView `json:"booking"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
