package http

import (
	"net/http"
	"time"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/service"
	"hotelier-backend/internal/utils"
)

type ReportHandler struct {
	reportSvc service.ReportService
}

func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

func (h *ReportHandler) Occupancy(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportSvc.OccupancySummary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Revenue defaults to the current month when no range is given.
func (h *ReportHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	from, err := queryDate(r, "from")
	if err != nil {
		writeError(w, err)
		return
	}
	to, err := queryDate(r, "to")
	if err != nil {
		writeError(w, err)
		return
	}
	if from == nil || to == nil {
		today := utils.DateOnly(time.Now())
		monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		monthEnd := monthStart.AddDate(0, 1, 0)
		from, to = &monthStart, &monthEnd
	}
	if !to.After(*from) {
		writeError(w, domain.ErrValidation)
		return
	}

	report, err := h.reportSvc.RevenueSummary(r.Context(), *from, *to)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) Movements(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportSvc.DailyMovements(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
