package http

import (
	"net/http"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/service"
)

type HousekeepingHandler struct {
	housekeepingSvc service.HousekeepingService
}

func NewHousekeepingHandler(housekeepingSvc service.HousekeepingService) *HousekeepingHandler {
	return &HousekeepingHandler{housekeepingSvc: housekeepingSvc}
}

func (h *HousekeepingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var task domain.HousekeepingTask
	if err := decodeBody(r, &task); err != nil {
		writeError(w, err)
		return
	}
	created, err := h.housekeepingSvc.CreateTask(r.Context(), &task, actorFromContext(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *HousekeepingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	task, err := h.housekeepingSvc.GetTask(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

type taskStatusRequest struct {
	Status domain.HousekeepingStatus `json:"status"`
	Note   string                    `json:"note"`
}

func (h *HousekeepingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req taskStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	task, err := h.housekeepingSvc.UpdateTaskStatus(r.Context(), id, req.Status, actorFromContext(r), req.Note)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

type assignRequest struct {
	AssignedTo string `json:"assigned_to"`
}

func (h *HousekeepingHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req assignRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	task, err := h.housekeepingSvc.AssignTask(r.Context(), id, req.AssignedTo, actorFromContext(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *HousekeepingHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := domain.HousekeepingStatus(r.URL.Query().Get("status"))
	scheduledFor, err := queryDate(r, "scheduled_for")
	if err != nil {
		writeError(w, err)
		return
	}
	tasks, total, err := h.housekeepingSvc.ListTasks(r.Context(), status, scheduledFor, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: tasks, Total: total, Page: page, PageSize: pageSize})
}

// actorFromContext names the authenticated staff member for task
// history entries, falling back to "system" on unauthenticated paths.
func actorFromContext(r *http.Request) string {
	if claims, ok := StaffClaimsFromContext(r.Context()); ok {
		return claims.Email
	}
	return "system"
}
