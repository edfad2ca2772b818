package http

import (
	"net/http"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/service"
)

type RoomHandler struct {
	roomSvc service.RoomService
}

func NewRoomHandler(roomSvc service.RoomService) *RoomHandler {
	return &RoomHandler{roomSvc: roomSvc}
}

func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var room domain.Room
	if err := decodeBody(r, &room); err != nil {
		writeError(w, err)
		return
	}
	created, err := h.roomSvc.CreateRoom(r.Context(), &room)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	room, err := h.roomSvc.GetRoom(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *RoomHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var room domain.Room
	if err := decodeBody(r, &room); err != nil {
		writeError(w, err)
		return
	}
	room.ID = id
	updated, err := h.roomSvc.UpdateRoom(r.Context(), &room)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

type roomStatusRequest struct {
	Status domain.RoomStatus `json:"status"`
}

func (h *RoomHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req roomStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	room, err := h.roomSvc.UpdateRoomStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := domain.RoomStatus(r.URL.Query().Get("status"))
	rooms, total, err := h.roomSvc.ListRooms(r.Context(), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: rooms, Total: total, Page: page, PageSize: pageSize})
}

func (h *RoomHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	checkIn, err := queryDate(r, "check_in")
	if err != nil || checkIn == nil {
		writeError(w, domain.ErrValidation)
		return
	}
	checkOut, err := queryDate(r, "check_out")
	if err != nil || checkOut == nil {
		writeError(w, domain.ErrValidation)
		return
	}
	rooms, err := h.roomSvc.ListAvailableRooms(r.Context(), *checkIn, *checkOut)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}
