package http

import (
	"net/http"

	"github.com/rotaworks/timeclock-backend-go/internal/domain/compliance"
	"github.com/rotaworks/timeclock-backend-go/internal/handler/http/response"
	"github.com/rotaworks/timeclock-backend-go/internal/pkg/validator"
)

type ComplianceHandler interface {
	CheckRestPeriods(w http.ResponseWriter, r *http.Request)
}

type complianceHandlerImpl struct {
	complianceService compliance.Service
}

func NewComplianceHandler(complianceService compliance.Service) ComplianceHandler {
	return &complianceHandlerImpl{
		complianceService: complianceService,
	}
}

// CheckRestPeriods implements ComplianceHandler.
func (h *complianceHandlerImpl) CheckRestPeriods(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	var errs validator.ValidationErrors
	if _, ok := validator.IsValidDate(from); !ok {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "from must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(to); !ok {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "to must be YYYY-MM-DD"})
	}
	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	warnings, err := h.complianceService.CheckRange(r.Context(), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, warnings)
}
