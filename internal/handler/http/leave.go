package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rotaworks/timeclock-backend-go/internal/domain/leave"
	"github.com/rotaworks/timeclock-backend-go/internal/handler/http/response"
	"github.com/rotaworks/timeclock-backend-go/internal/pkg/timeutil"
)

type LeaveHandler interface {
	Balance(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveRepo leave.Repository
}

func NewLeaveHandler(leaveRepo leave.Repository) LeaveHandler {
	return &leaveHandlerImpl{
		leaveRepo: leaveRepo,
	}
}

// Balance implements LeaveHandler. Year defaults to the current business year.
func (h *leaveHandlerImpl) Balance(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")

	year := timeutil.NowLocal().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Invalid year", nil)
			return
		}
		year = parsed
	}

	balance, err := h.leaveRepo.GetByStaffYear(r.Context(), staffID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance.ToResponse())
}
