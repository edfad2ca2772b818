package http

import (
	"net/http"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/service"
)

type MaintenanceHandler struct {
	maintenanceSvc service.MaintenanceService
}

func NewMaintenanceHandler(maintenanceSvc service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceSvc: maintenanceSvc}
}

type openRequestBody struct {
	domain.MaintenanceRequest
	TakeRoomOffline bool `json:"take_room_offline"`
}

func (h *MaintenanceHandler) Open(w http.ResponseWriter, r *http.Request) {
	var body openRequestBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	if body.ReportedBy == "" {
		body.ReportedBy = actorFromContext(r)
	}
	req, err := h.maintenanceSvc.OpenRequest(r.Context(), &body.MaintenanceRequest, body.TakeRoomOffline)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

func (h *MaintenanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	req, err := h.maintenanceSvc.GetRequest(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

type maintenanceStatusRequest struct {
	Status domain.MaintenanceStatus `json:"status"`
	Note   string                   `json:"note"`
}

func (h *MaintenanceHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req maintenanceStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	updated, err := h.maintenanceSvc.UpdateRequestStatus(r.Context(), id, req.Status, actorFromContext(r), req.Note)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

type maintenancePriorityRequest struct {
	Priority domain.MaintenancePriority `json:"priority"`
}

func (h *MaintenanceHandler) UpdatePriority(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req maintenancePriorityRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	updated, err := h.maintenanceSvc.UpdateRequestPriority(r.Context(), id, req.Priority, actorFromContext(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *MaintenanceHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := domain.MaintenanceStatus(r.URL.Query().Get("status"))
	requests, total, err := h.maintenanceSvc.ListRequests(r.Context(), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: requests, Total: total, Page: page, PageSize: pageSize})
}
