package handler

import (
	"fmt"
	"net/http"

	"github.com/NickyVHDP/pokertracker/internal/model"
	"github.com/NickyVHDP/pokertracker/internal/service"
)

// SessionHandler handles the /api/sessions routes.
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// List handles GET /api/sessions.
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)
	sessions, err := h.sessions.List(r.Context(), limit, offset)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

// Get handles GET /api/sessions/{id}.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// Create handles POST /api/sessions.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.SessionInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validateSessionInput(in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.sessions.Create(r.Context(), in)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

// Update handles PUT /api/sessions/{id}.
func (h *SessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in model.SessionUpdate
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validateSessionUpdate(in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.sessions.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// Delete handles DELETE /api/sessions/{id}.
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	existed, err := h.sessions.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if !existed {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Search handles GET /api/sessions/search.
func (h *SessionHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	dateFrom, err := parseTimeParam(q.Get("dateFrom"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid dateFrom")
		return
	}
	dateTo, err := parseTimeParam(q.Get("dateTo"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid dateTo")
		return
	}

	filters := model.SearchFilters{
		Location:  q.Get("location"),
		GameType:  q.Get("gameType"),
		TableType: q.Get("tableType"),
		DateFrom:  dateFrom,
		DateTo:    dateTo,
		Result:    q.Get("result"),
	}

	sessions, err := h.sessions.Search(r.Context(), q.Get("q"), filters)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

func validateSessionInput(in model.SessionInput) error {
	if in.Location == "" {
		return fmt.Errorf("location is required")
	}
	if in.Stakes == "" {
		return fmt.Errorf("stakes is required")
	}
	if in.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if !model.ValidGameType(in.GameType) {
		return fmt.Errorf("invalid gameType %q", in.GameType)
	}
	if !model.ValidTableType(in.TableType) {
		return fmt.Errorf("invalid tableType %q", in.TableType)
	}
	if in.Hours < 0 {
		return fmt.Errorf("hours must not be negative")
	}
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	return nil
}

func validateSessionUpdate(in model.SessionUpdate) error {
	if in.Location != nil && *in.Location == "" {
		return fmt.Errorf("location must not be empty")
	}
	if in.Stakes != nil && *in.Stakes == "" {
		return fmt.Errorf("stakes must not be empty")
	}
	if in.GameType != nil && !model.ValidGameType(*in.GameType) {
		return fmt.Errorf("invalid gameType %q", *in.GameType)
	}
	if in.TableType != nil && !model.ValidTableType(*in.TableType) {
		return fmt.Errorf("invalid tableType %q", *in.TableType)
	}
	if in.Hours != nil && *in.Hours < 0 {
		return fmt.Errorf("hours must not be negative")
	}
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	return nil
}
