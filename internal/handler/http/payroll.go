package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rotaworks/timeclock-backend-go/internal/domain/payroll"
	"github.com/rotaworks/timeclock-backend-go/internal/handler/http/response"
	"github.com/rotaworks/timeclock-backend-go/internal/service/report"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	ApplyAccrual(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
	ExportXLSX(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// Generate implements PayrollHandler.
func (h *payrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	summaries, err := h.payrollService.GenerateSummaries(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]payroll.SummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		responses = append(responses, s.ToResponse())
	}
	response.Success(w, responses)
}

// ApplyAccrual implements PayrollHandler.
func (h *payrollHandlerImpl) ApplyAccrual(w http.ResponseWriter, r *http.Request) {
	var req payroll.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	credited, err := h.payrollService.ApplyAccrual(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("Credited %d leave ledgers", credited), map[string]int{
		"ledgers_credited": credited,
	})
}

func (h *payrollHandlerImpl) generateForExport(w http.ResponseWriter, r *http.Request) ([]payroll.Summary, bool) {
	req := payroll.GenerateRequest{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	summaries, err := h.payrollService.GenerateSummaries(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return nil, false
	}
	return summaries, true
}

// ExportCSV implements PayrollHandler.
func (h *payrollHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	summaries, ok := h.generateForExport(w, r)
	if !ok {
		return
	}

	filename := fmt.Sprintf("payroll_%s_%s.csv", r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := report.ExportPayrollCSV(w, summaries); err != nil {
		// Headers are already out; nothing useful left to send.
		return
	}
}

// ExportXLSX implements PayrollHandler.
func (h *payrollHandlerImpl) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	summaries, ok := h.generateForExport(w, r)
	if !ok {
		return
	}

	filename := fmt.Sprintf("payroll_%s_%s.xlsx", r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := report.ExportPayrollXLSX(w, summaries); err != nil {
		return
	}
}
