package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/nicfin/finhealth-service/internal/models"
	"github.com/nicfin/finhealth-service/internal/service"
)

// ReportMailer delivers a built dashboard to a recipient.
type ReportMailer interface {
	SendDashboardReport(to, username string, dash *models.Dashboard) error
}

type Handler struct {
	svc    *service.Service
	mailer ReportMailer
}

func NewHandler(svc *service.Service, mailer ReportMailer) *Handler {
	return &Handler{svc: svc, mailer: mailer}
}

// Analyze handles POST /analyze: numbers only, no external calls.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var in models.AnalysisInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	res, err := h.svc.Analyze(in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// BuildDashboard handles POST /dashboard: numbers plus narrative panels.
func (h *Handler) BuildDashboard(w http.ResponseWriter, r *http.Request) {
	var in models.AnalysisInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	dash, err := h.svc.BuildDashboard(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dash)
}

type emailReportRequest struct {
	To   string `json:"to"`
	Name string `json:"name"`
	models.AnalysisInput
}

// EmailDashboardReport handles POST /dashboard/email: builds the dashboard
// and mails it to the requested recipient.
func (h *Handler) EmailDashboardReport(w http.ResponseWriter, r *http.Request) {
	var req emailReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.To == "" {
		http.Error(w, "recipient email is required", http.StatusBadRequest)
		return
	}

	dash, err := h.svc.BuildDashboard(r.Context(), req.AnalysisInput)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.mailer.SendDashboardReport(req.To, req.Name, dash); err != nil {
		http.Error(w, fmt.Sprintf("failed to send report: %v", err), http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// writeError maps the validation failure to 400 and everything else
// (insight generator failures) to 502.
func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrInvalidNetIncome) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, err.Error(), http.StatusBadGateway)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
