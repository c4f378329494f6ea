package api

import (
	"net/http"
	"strconv"

	"rentaride/internal/service"
)

// ReportHandler serves the dashboard counters and the analytics report.
type ReportHandler struct {
	Service *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{Service: svc}
}

func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.DashboardStats()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// Analytics accepts ?months=N for the trailing window, defaulting to a year.
func (h *ReportHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	months, _ := strconv.Atoi(r.URL.Query().Get("months"))
	report, err := h.Service.Analytics(months)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}
