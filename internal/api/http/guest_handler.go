package http

import (
	"net/http"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/service"
)

type GuestHandler struct {
	guestSvc service.GuestService
}

func NewGuestHandler(guestSvc service.GuestService) *GuestHandler {
	return &GuestHandler{guestSvc: guestSvc}
}

func (h *GuestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var guest domain.Guest
	if err := decodeBody(r, &guest); err != nil {
		writeError(w, err)
		return
	}
	created, err := h.guestSvc.CreateGuest(r.Context(), &guest)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *GuestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	guest, err := h.guestSvc.GetGuest(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, guest)
}

func (h *GuestHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var guest domain.Guest
	if err := decodeBody(r, &guest); err != nil {
		writeError(w, err)
		return
	}
	guest.ID = id
	updated, err := h.guestSvc.UpdateGuest(r.Context(), &guest)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *GuestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.guestSvc.DeleteGuest(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *GuestHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	query := r.URL.Query().Get("q")
	guests, total, err := h.guestSvc.ListGuests(r.Context(), query, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: guests, Total: total, Page: page, PageSize: pageSize})
}

func (h *GuestHandler) Bookings(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	bookings, err := h.guestSvc.ListGuestBookings(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

// Categorize returns the front-desk day sheet buckets.
func (h *GuestHandler) Categorize(w http.ResponseWriter, r *http.Request) {
	buckets, err := h.guestSvc.CategorizeGuests(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, buckets)
}

func (h *GuestHandler) Presence(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	presence, err := h.guestSvc.GetGuestPresence(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]domain.GuestPresence{"presence": presence})
}
