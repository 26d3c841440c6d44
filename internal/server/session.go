package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/corpeats/lunchbot/internal/repository"
	"github.com/corpeats/lunchbot/internal/session"
	"github.com/corpeats/lunchbot/internal/storage"
)

// The dialogue endpoints are a thin gateway over the session engine: each
// request carries the acting user's id and maps one-to-one onto an engine
// action, so any chat frontend can drive the same flow.

func (s *Server) handleSessionStart(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.sessionUser(w, r)
	if !ok {
		return
	}

	choices, err := s.sessions.Start(r.Context(), userID)
	if err != nil {
		s.respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"venues": choices})
}

func (s *Server) handleSessionSelectVenue(w http.ResponseWriter, r *http.Request) {
	var selectRequest struct {
		UserID  int64 `json:"user_id"`
		VenueID int64 `json:"venue_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&selectRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	venue, err := s.sessions.SelectVenue(r.Context(), selectRequest.UserID, selectRequest.VenueID)
	if err != nil {
		s.respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"venue": venue.Name,
		"menu":  venue.Menu,
	})
}

func (s *Server) handleSessionAddItem(w http.ResponseWriter, r *http.Request) {
	var itemRequest struct {
		UserID int64 `json:"user_id"`
		Index  int   `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&itemRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := s.sessions.AddItem(r.Context(), itemRequest.UserID, itemRequest.Index)
	if err != nil {
		s.respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"added": item})
}

func (s *Server) handleSessionFinish(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.sessionUser(w, r)
	if !ok {
		return
	}

	summary, err := s.sessions.Finish(r.Context(), userID)
	if err != nil {
		s.respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (s *Server) handleSessionConfirm(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.sessionUser(w, r)
	if !ok {
		return
	}

	orderID, err := s.sessions.Confirm(r.Context(), userID)
	if err != nil {
		s.respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"order_id": orderID.String()})
}

func (s *Server) handleSessionCancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.sessionUser(w, r)
	if !ok {
		return
	}

	s.sessions.Cancel(userID)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Session cancelled"})
}

func (s *Server) handleListUserOrders(w http.ResponseWriter, r *http.Request) {
	userID, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	orders, err := s.sessions.History(r.Context(), userID)
	if err != nil {
		s.respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (s *Server) handleCancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}
	userID, err := parseID(r.URL.Query().Get("user_id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := s.sessions.CancelOrder(r.Context(), userID, orderID); err != nil {
		s.respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Order cancelled"})
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

func (s *Server) sessionUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	var userRequest struct {
		UserID int64 `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&userRequest); err != nil || userRequest.UserID == 0 {
		respondError(w, http.StatusBadRequest, "Missing user_id")
		return 0, false
	}
	return userRequest.UserID, true
}

func (s *Server) respondSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrUnauthorized):
		respondError(w, http.StatusForbidden, "User is not a registered employee")
	case errors.Is(err, session.ErrNoVenuesAvailable):
		respondError(w, http.StatusNotFound, "No venues are open for orders")
	case errors.Is(err, session.ErrInvalidState):
		respondError(w, http.StatusConflict, "Action is not valid in the current session state")
	case errors.Is(err, session.ErrVenueClosed), errors.Is(err, storage.ErrDeadlinePassed):
		respondError(w, http.StatusConflict, "Venue is closed for orders")
	case errors.Is(err, session.ErrEmptyMenu):
		respondError(w, http.StatusConflict, "Venue has no menu")
	case errors.Is(err, session.ErrInvalidIndex):
		respondError(w, http.StatusBadRequest, "No such menu position")
	case errors.Is(err, session.ErrEmptyOrder):
		respondError(w, http.StatusBadRequest, "No items selected")
	case errors.Is(err, repository.ErrObjectNotFound):
		respondError(w, http.StatusNotFound, "Not found")
	default:
		s.respondPlaceOrderError(w, err)
	}
}
