package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rotaworks/timeclock-backend-go/internal/domain/noshow"
	"github.com/rotaworks/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/rotaworks/timeclock-backend-go/internal/handler/http/response"
	"github.com/rotaworks/timeclock-backend-go/internal/pkg/cron"
	"github.com/rotaworks/timeclock-backend-go/internal/pkg/timeutil"
	"github.com/rotaworks/timeclock-backend-go/internal/pkg/validator"
)

type NoShowHandler interface {
	TriggerScan(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
}

type noShowHandlerImpl struct {
	scanner    *cron.NoShowScanner
	noShowRepo noshow.Repository
}

func NewNoShowHandler(scanner *cron.NoShowScanner, noShowRepo noshow.Repository) NoShowHandler {
	return &noShowHandlerImpl{
		scanner:    scanner,
		noShowRepo: noShowRepo,
	}
}

// TriggerScan implements NoShowHandler. Runs one scan on demand, outside
// the recurring schedule.
func (h *noShowHandlerImpl) TriggerScan(w http.ResponseWriter, r *http.Request) {
	if err := h.scanner.DetectNoShows(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Scan completed", nil)
}

// List implements NoShowHandler.
func (h *noShowHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = timeutil.Today()
	} else if _, ok := validator.IsValidDate(date); !ok {
		response.BadRequest(w, "date must be YYYY-MM-DD", nil)
		return
	}

	records, err := h.noShowRepo.ListByDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

type resolveNoShowRequest struct {
	Notes *string `json:"notes,omitempty"`
}

// Resolve implements NoShowHandler.
func (h *noShowHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	var req resolveNoShowRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	resolvedBy := middleware.UserID(r)
	if resolvedBy == "" {
		response.Unauthorized(w, "Missing access token")
		return
	}

	if err := h.noShowRepo.Resolve(r.Context(), chi.URLParam(r, "id"), resolvedBy, req.Notes); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "No-show resolved", nil)
}
