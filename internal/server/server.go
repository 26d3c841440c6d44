//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/corpeats/lunchbot/internal/repository"
	"github.com/corpeats/lunchbot/internal/session"
	"github.com/corpeats/lunchbot/internal/storage"
)

type Catalog interface {
	CreateVenue(ctx context.Context, in storage.VenueInput) (int64, error)
	GetVenue(ctx context.Context, id int64) (*storage.Venue, error)
	GetVenueByName(ctx context.Context, name string) (*storage.Venue, error)
	ListVenues(ctx context.Context, activeOnly bool) ([]storage.Venue, error)
	SetActive(ctx context.Context, id int64, active bool) error
	AppendMenuItem(ctx context.Context, id int64, title string, price float64) error
	RemoveMenuItem(ctx context.Context, id int64, index int) error
	DeleteVenue(ctx context.Context, id int64) error
}

type Orders interface {
	PlaceOrder(ctx context.Context, userID, venueID int64, items []storage.MenuItem, mode storage.DeliveryMode, comment string) (uuid.UUID, error)
}

// Sessions drives the step-by-step ordering dialogue on behalf of a chat
// frontend: one in-flight session per user, advanced one action at a time.
type Sessions interface {
	Start(ctx context.Context, userID int64) ([]session.VenueChoice, error)
	SelectVenue(ctx context.Context, userID, venueID int64) (*storage.Venue, error)
	AddItem(ctx context.Context, userID int64, index int) (storage.MenuItem, error)
	Finish(ctx context.Context, userID int64) (*session.Summary, error)
	Confirm(ctx context.Context, userID int64) (uuid.UUID, error)
	Cancel(userID int64)
	History(ctx context.Context, userID int64) ([]storage.Order, error)
	CancelOrder(ctx context.Context, userID int64, orderID uuid.UUID) error
}

type Staff interface {
	AddEmployee(ctx context.Context, employee *repository.Employee) (bool, error)
	AddManager(ctx context.Context, id int64) error
}

type AuthRepo interface {
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}

type Roster interface {
	IsEmployee(id int64) bool
	SetEmployee(employee repository.Employee)
	SetManager(id int64)
}

// Server is the HTTP surface: the mini-app menu payload and order
// submission, plus the admin endpoints behind basic auth.
type Server struct {
	catalog  Catalog
	orders   Orders
	sessions Sessions
	staff    Staff
	auth     AuthRepo
	roster   Roster
	logger   *zap.Logger
	server   *http.Server
}

func New(catalog Catalog, orders Orders, sessions Sessions, staff Staff, auth AuthRepo, roster Roster, logger *zap.Logger) *Server {
	return &Server{
		catalog:  catalog,
		orders:   orders,
		sessions: sessions,
		staff:    staff,
		auth:     auth,
		roster:   roster,
		logger:   logger,
	}
}

func (s *Server) Run(port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.logger.Info("HTTP server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()
	router.Use(s.requestLogMiddleware)

	router.HandleFunc("/", s.handleMenu).Methods(http.MethodGet)
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/api/orders", s.handleSubmitOrder).Methods(http.MethodPost)
	router.HandleFunc("/api/orders/{id}", s.handleCancelOrder).Methods(http.MethodDelete)
	router.HandleFunc("/api/users/{id}/orders", s.handleListUserOrders).Methods(http.MethodGet)

	dialogue := router.PathPrefix("/api/session").Subrouter()
	dialogue.HandleFunc("/start", s.handleSessionStart).Methods(http.MethodPost)
	dialogue.HandleFunc("/venue", s.handleSessionSelectVenue).Methods(http.MethodPost)
	dialogue.HandleFunc("/items", s.handleSessionAddItem).Methods(http.MethodPost)
	dialogue.HandleFunc("/finish", s.handleSessionFinish).Methods(http.MethodPost)
	dialogue.HandleFunc("/confirm", s.handleSessionConfirm).Methods(http.MethodPost)
	dialogue.HandleFunc("/cancel", s.handleSessionCancel).Methods(http.MethodPost)

	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(s.basicAuthMiddleware)
	admin.HandleFunc("/venues", s.handleCreateVenue).Methods(http.MethodPost)
	admin.HandleFunc("/venues", s.handleListVenues).Methods(http.MethodGet)
	admin.HandleFunc("/venues/{id}", s.handleDeleteVenue).Methods(http.MethodDelete)
	admin.HandleFunc("/venues/{id}/active", s.handleSetActive).Methods(http.MethodPut)
	admin.HandleFunc("/venues/{id}/items", s.handleAddMenuItem).Methods(http.MethodPost)
	admin.HandleFunc("/venues/{id}/items/{index}", s.handleRemoveMenuItem).Methods(http.MethodDelete)
	admin.HandleFunc("/employees", s.handleAddEmployee).Methods(http.MethodPost)
	admin.HandleFunc("/managers", s.handleAddManager).Methods(http.MethodPost)

	return router
}

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		valid, err := s.auth.ValidateUser(r.Context(), username, password)
		if err != nil || !valid {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleMenu renders the mini-app payload: every active venue with its
// items, item ids being "venueID_index" (positional, ephemeral).
func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	venues, err := s.catalog.ListVenues(r.Context(), true)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	type menuEntry struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		Price       float64 `json:"price"`
		Description string  `json:"description"`
	}
	type cafe struct {
		ID       int64       `json:"id"`
		Title    string      `json:"title"`
		Subtitle string      `json:"subtitle"`
		Items    []menuEntry `json:"items"`
	}

	cafes := make(map[string]cafe, len(venues))
	for _, v := range venues {
		items := make([]menuEntry, len(v.Menu))
		for i, it := range v.Menu {
			items[i] = menuEntry{
				ID:    fmt.Sprintf("%d_%d", v.ID, i),
				Name:  it.Title,
				Price: it.Price,
			}
		}
		cafes[strconv.FormatInt(v.ID, 10)] = cafe{
			ID:       v.ID,
			Title:    v.Name,
			Subtitle: v.Address,
			Items:    items,
		}
	}

	respondJSON(w, http.StatusOK, cafes)
}

// handleSubmitOrder is the external mini-app entry path: a complete order
// payload, bypassing the dialogue state machine but going through the same
// deadline-checked PlaceOrder as a session confirmation.
func (s *Server) handleSubmitOrder(w http.ResponseWriter, r *http.Request) {
	var orderRequest struct {
		UserID       int64  `json:"user_id"`
		VenueID      int64  `json:"venue_id"`
		Venue        string `json:"venue"`
		DeliveryMode string `json:"delivery_mode"`
		Comment      string `json:"comment"`
		Items        []struct {
			Name     string  `json:"name"`
			Price    float64 `json:"price"`
			Quantity int     `json:"quantity"`
		} `json:"items"`
	}

	if err := json.NewDecoder(r.Body).Decode(&orderRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !s.roster.IsEmployee(orderRequest.UserID) {
		respondError(w, http.StatusForbidden, "User is not a registered employee")
		return
	}
	if len(orderRequest.Items) == 0 {
		respondError(w, http.StatusBadRequest, "Order has no items")
		return
	}

	mode, err := storage.ParseDeliveryMode(orderRequest.DeliveryMode)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Error: "+err.Error())
		return
	}

	var items []storage.MenuItem
	for _, it := range orderRequest.Items {
		qty := it.Quantity
		if qty == 0 {
			qty = 1
		}
		if qty < 0 || qty > 50 {
			respondError(w, http.StatusBadRequest, "Invalid item quantity")
			return
		}
		for i := 0; i < qty; i++ {
			items = append(items, storage.MenuItem{Title: it.Name, Price: it.Price})
		}
	}

	venueID := orderRequest.VenueID
	if venueID == 0 {
		venue, err := s.catalog.GetVenueByName(r.Context(), orderRequest.Venue)
		if err != nil {
			respondError(w, http.StatusNotFound, "Venue not found")
			return
		}
		venueID = venue.ID
	}

	orderID, err := s.orders.PlaceOrder(r.Context(), orderRequest.UserID, venueID, items, mode, orderRequest.Comment)
	if err != nil {
		s.respondPlaceOrderError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"message":  "Order accepted successfully",
		"order_id": orderID.String(),
	})
}

func (s *Server) respondPlaceOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrDeadlinePassed):
		respondError(w, http.StatusConflict, "Venue is closed for orders")
	case errors.Is(err, repository.ErrObjectNotFound):
		respondError(w, http.StatusNotFound, "Venue not found")
	case errors.Is(err, storage.ErrEmptyItems), errors.Is(err, storage.ErrValidation):
		respondError(w, http.StatusBadRequest, "Error: "+err.Error())
	default:
		s.logger.Error("failed to place order", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to place order")
	}
}

func (s *Server) handleCreateVenue(w http.ResponseWriter, r *http.Request) {
	var venueRequest struct {
		Name           string             `json:"name"`
		Address        string             `json:"address"`
		Menu           []storage.MenuItem `json:"menu"`
		TimeText       string             `json:"time_available"`
		DayText        string             `json:"day_available"`
		ReportDeadline string             `json:"report_deadline"`
	}

	if err := json.NewDecoder(r.Body).Decode(&venueRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := s.catalog.CreateVenue(r.Context(), storage.VenueInput{
		Name:           venueRequest.Name,
		Address:        venueRequest.Address,
		Menu:           venueRequest.Menu,
		TimeText:       venueRequest.TimeText,
		DayText:        venueRequest.DayText,
		ReportDeadline: venueRequest.ReportDeadline,
	})
	if err != nil {
		if errors.Is(err, storage.ErrValidation) {
			respondError(w, http.StatusBadRequest, "Error: "+err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Venue created successfully",
		"id":      id,
	})
}

func (s *Server) handleListVenues(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	venues, err := s.catalog.ListVenues(r.Context(), activeOnly)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, venues)
}

func (s *Server) venueID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func (s *Server) handleSetActive(w http.ResponseWriter, r *http.Request) {
	id, err := s.venueID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid venue ID")
		return
	}

	var activeRequest struct {
		Active bool `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&activeRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.catalog.SetActive(r.Context(), id, activeRequest.Active); err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			respondError(w, http.StatusNotFound, "Venue not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Venue state updated"})
}

func (s *Server) handleAddMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := s.venueID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid venue ID")
		return
	}

	var itemRequest struct {
		Title string  `json:"title"`
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&itemRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.catalog.AppendMenuItem(r.Context(), id, itemRequest.Title, itemRequest.Price); err != nil {
		switch {
		case errors.Is(err, repository.ErrObjectNotFound):
			respondError(w, http.StatusNotFound, "Venue not found")
		case errors.Is(err, storage.ErrValidation):
			respondError(w, http.StatusBadRequest, "Error: "+err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"message": "Menu item added"})
}

func (s *Server) handleRemoveMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := s.venueID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid venue ID")
		return
	}
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid item index")
		return
	}

	if err := s.catalog.RemoveMenuItem(r.Context(), id, index); err != nil {
		switch {
		case errors.Is(err, repository.ErrObjectNotFound):
			respondError(w, http.StatusNotFound, "Venue not found")
		case errors.Is(err, storage.ErrInvalidMenuIndex):
			respondError(w, http.StatusBadRequest, "Menu index out of range")
		default:
			respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Menu item removed"})
}

func (s *Server) handleDeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, err := s.venueID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid venue ID")
		return
	}

	if err := s.catalog.DeleteVenue(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			respondError(w, http.StatusNotFound, "Venue not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Venue and its orders deleted"})
}

func (s *Server) handleAddEmployee(w http.ResponseWriter, r *http.Request) {
	var employeeRequest struct {
		ID     int64  `json:"id"`
		Name   string `json:"name"`
		Office string `json:"office"`
		Card   string `json:"card"`
	}
	if err := json.NewDecoder(r.Body).Decode(&employeeRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if employeeRequest.ID == 0 || employeeRequest.Name == "" {
		respondError(w, http.StatusBadRequest, "Missing id or name")
		return
	}

	employee := repository.Employee{
		ID:     employeeRequest.ID,
		Name:   employeeRequest.Name,
		Office: employeeRequest.Office,
		Card:   employeeRequest.Card,
	}
	added, err := s.staff.AddEmployee(r.Context(), &employee)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}
	if !added {
		respondError(w, http.StatusConflict, "Employee already exists")
		return
	}

	s.roster.SetEmployee(employee)
	respondJSON(w, http.StatusCreated, map[string]string{"message": "Employee added"})
}

func (s *Server) handleAddManager(w http.ResponseWriter, r *http.Request) {
	var managerRequest struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&managerRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if managerRequest.ID == 0 {
		respondError(w, http.StatusBadRequest, "Missing id")
		return
	}

	if err := s.staff.AddManager(r.Context(), managerRequest.ID); err != nil {
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	s.roster.SetManager(managerRequest.ID)
	respondJSON(w, http.StatusCreated, map[string]string{"message": "Manager added"})
}
