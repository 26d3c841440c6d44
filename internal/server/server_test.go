package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/corpeats/lunchbot/internal/repository"
	mock_server "github.com/corpeats/lunchbot/internal/server/mocks"
	"github.com/corpeats/lunchbot/internal/storage"
)

type serverMocks struct {
	catalog  *mock_server.MockCatalog
	orders   *mock_server.MockOrders
	sessions *mock_server.MockSessions
	staff    *mock_server.MockStaff
	auth     *mock_server.MockAuthRepo
	roster   *mock_server.MockRoster
}

func newTestServer(ctrl *gomock.Controller) (*Server, serverMocks) {
	m := serverMocks{
		catalog:  mock_server.NewMockCatalog(ctrl),
		orders:   mock_server.NewMockOrders(ctrl),
		sessions: mock_server.NewMockSessions(ctrl),
		staff:    mock_server.NewMockStaff(ctrl),
		auth:     mock_server.NewMockAuthRepo(ctrl),
		roster:   mock_server.NewMockRoster(ctrl),
	}
	return New(m.catalog, m.orders, m.sessions, m.staff, m.auth, m.roster, zap.NewNop()), m
}

func TestHandleSubmitOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, m := newTestServer(ctrl)
	orderID := uuid.New()

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func()
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "successful submission",
			requestBody: map[string]interface{}{
				"user_id":  1,
				"venue_id": 10,
				"items": []map[string]interface{}{
					{"name": "Борщ", "price": 150, "quantity": 2},
				},
				"delivery_mode": "office",
				"comment":       "без лука",
			},
			setupMocks: func() {
				m.roster.EXPECT().IsEmployee(int64(1)).Return(true)
				m.orders.EXPECT().
					PlaceOrder(gomock.Any(), int64(1), int64(10), gomock.Any(), storage.DeliveryOffice, "без лука").
					DoAndReturn(func(_ context.Context, _, _ int64, items []storage.MenuItem, _ storage.DeliveryMode, _ string) (uuid.UUID, error) {
						require.Len(t, items, 2)
						assert.Equal(t, "Борщ", items[0].Title)
						return orderID, nil
					})
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, orderID.String())
			},
		},
		{
			name: "not a registered employee",
			requestBody: map[string]interface{}{
				"user_id":  99,
				"venue_id": 10,
				"items":    []map[string]interface{}{{"name": "Борщ", "price": 150}},
			},
			setupMocks: func() {
				m.roster.EXPECT().IsEmployee(int64(99)).Return(false)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "no items",
			requestBody: map[string]interface{}{
				"user_id":  1,
				"venue_id": 10,
			},
			setupMocks: func() {
				m.roster.EXPECT().IsEmployee(int64(1)).Return(true)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown delivery mode",
			requestBody: map[string]interface{}{
				"user_id":       1,
				"venue_id":      10,
				"items":         []map[string]interface{}{{"name": "Борщ", "price": 150}},
				"delivery_mode": "teleport",
			},
			setupMocks: func() {
				m.roster.EXPECT().IsEmployee(int64(1)).Return(true)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "quantity over the cap",
			requestBody: map[string]interface{}{
				"user_id":  1,
				"venue_id": 10,
				"items":    []map[string]interface{}{{"name": "Борщ", "price": 150, "quantity": 51}},
			},
			setupMocks: func() {
				m.roster.EXPECT().IsEmployee(int64(1)).Return(true)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "venue resolved by name",
			requestBody: map[string]interface{}{
				"user_id": 1,
				"venue":   "Столовая №1",
				"items":   []map[string]interface{}{{"name": "Борщ", "price": 150}},
			},
			setupMocks: func() {
				m.roster.EXPECT().IsEmployee(int64(1)).Return(true)
				m.catalog.EXPECT().GetVenueByName(gomock.Any(), "Столовая №1").
					Return(&storage.Venue{ID: 10, Name: "Столовая №1"}, nil)
				m.orders.EXPECT().
					PlaceOrder(gomock.Any(), int64(1), int64(10), gomock.Any(), storage.DeliveryUnspecified, "").
					Return(orderID, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "deadline passed",
			requestBody: map[string]interface{}{
				"user_id":  1,
				"venue_id": 10,
				"items":    []map[string]interface{}{{"name": "Борщ", "price": 150}},
			},
			setupMocks: func() {
				m.roster.EXPECT().IsEmployee(int64(1)).Return(true)
				m.orders.EXPECT().
					PlaceOrder(gomock.Any(), int64(1), int64(10), gomock.Any(), storage.DeliveryUnspecified, "").
					Return(uuid.Nil, storage.ErrDeadlinePassed)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "venue not found",
			requestBody: map[string]interface{}{
				"user_id":  1,
				"venue_id": 77,
				"items":    []map[string]interface{}{{"name": "Борщ", "price": 150}},
			},
			setupMocks: func() {
				m.roster.EXPECT().IsEmployee(int64(1)).Return(true)
				m.orders.EXPECT().
					PlaceOrder(gomock.Any(), int64(1), int64(77), gomock.Any(), storage.DeliveryUnspecified, "").
					Return(uuid.Nil, repository.ErrObjectNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "store failure",
			requestBody: map[string]interface{}{
				"user_id":  1,
				"venue_id": 10,
				"items":    []map[string]interface{}{{"name": "Борщ", "price": 150}},
			},
			setupMocks: func() {
				m.roster.EXPECT().IsEmployee(int64(1)).Return(true)
				m.orders.EXPECT().
					PlaceOrder(gomock.Any(), int64(1), int64(10), gomock.Any(), storage.DeliveryUnspecified, "").
					Return(uuid.Nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			server.handleSubmitOrder(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestHandleMenu(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, m := newTestServer(ctrl)

	m.catalog.EXPECT().ListVenues(gomock.Any(), true).Return([]storage.Venue{
		{
			ID:      10,
			Name:    "Столовая №1",
			Address: "ул. Ленина, 1",
			Menu: []storage.MenuItem{
				{Title: "Борщ", Price: 150},
				{Title: "Пюре", Price: 100},
			},
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	server.handleMenu(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var cafes map[string]struct {
		ID       int64  `json:"id"`
		Title    string `json:"title"`
		Subtitle string `json:"subtitle"`
		Items    []struct {
			ID    string  `json:"id"`
			Name  string  `json:"name"`
			Price float64 `json:"price"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cafes))

	cafe, ok := cafes["10"]
	require.True(t, ok)
	assert.Equal(t, "Столовая №1", cafe.Title)
	require.Len(t, cafe.Items, 2)
	assert.Equal(t, "10_0", cafe.Items[0].ID)
	assert.Equal(t, "10_1", cafe.Items[1].ID)
}

func TestBasicAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, m := newTestServer(ctrl)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := server.basicAuthMiddleware(next)

	t.Run("no credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/venues", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		m.auth.EXPECT().ValidateUser(gomock.Any(), "admin", "wrong").Return(false, nil)

		req := httptest.NewRequest(http.MethodGet, "/admin/venues", nil)
		req.SetBasicAuth("admin", "wrong")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid credentials", func(t *testing.T) {
		m.auth.EXPECT().ValidateUser(gomock.Any(), "admin", "secret").Return(true, nil)

		req := httptest.NewRequest(http.MethodGet, "/admin/venues", nil)
		req.SetBasicAuth("admin", "secret")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestHandleCreateVenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, m := newTestServer(ctrl)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func()
		expectedStatus int
	}{
		{
			name: "success",
			requestBody: map[string]interface{}{
				"name":            "Столовая №1",
				"address":         "ул. Ленина, 1",
				"menu":            []map[string]interface{}{{"title": "Борщ", "price": 150}},
				"report_deadline": "11:00",
			},
			setupMocks: func() {
				m.catalog.EXPECT().CreateVenue(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in storage.VenueInput) (int64, error) {
						assert.Equal(t, "Столовая №1", in.Name)
						assert.Equal(t, "11:00", in.ReportDeadline)
						return 10, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "validation error",
			requestBody: map[string]interface{}{
				"name":    "",
				"address": "ул. Ленина, 1",
			},
			setupMocks: func() {
				m.catalog.EXPECT().CreateVenue(gomock.Any(), gomock.Any()).
					Return(int64(0), storage.ErrValidation)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodPost, "/admin/venues", bytes.NewReader(body))
			rr := httptest.NewRecorder()

			server.handleCreateVenue(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

func TestHandleAddEmployee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, m := newTestServer(ctrl)

	t.Run("success writes through to the roster", func(t *testing.T) {
		m.staff.EXPECT().AddEmployee(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, employee *repository.Employee) (bool, error) {
				assert.Equal(t, int64(1), employee.ID)
				assert.Equal(t, "Иван", employee.Name)
				return true, nil
			})
		m.roster.EXPECT().SetEmployee(gomock.Any())

		body := []byte(`{"id":1,"name":"Иван","office":"A-101"}`)
		req := httptest.NewRequest(http.MethodPost, "/admin/employees", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		server.handleAddEmployee(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("duplicate employee", func(t *testing.T) {
		m.staff.EXPECT().AddEmployee(gomock.Any(), gomock.Any()).Return(false, nil)

		body := []byte(`{"id":1,"name":"Иван"}`)
		req := httptest.NewRequest(http.MethodPost, "/admin/employees", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		server.handleAddEmployee(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("missing id", func(t *testing.T) {
		body := []byte(`{"name":"Иван"}`)
		req := httptest.NewRequest(http.MethodPost, "/admin/employees", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		server.handleAddEmployee(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleAddManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, m := newTestServer(ctrl)

	t.Run("success", func(t *testing.T) {
		m.staff.EXPECT().AddManager(gomock.Any(), int64(5)).Return(nil)
		m.roster.EXPECT().SetManager(int64(5))

		req := httptest.NewRequest(http.MethodPost, "/admin/managers", bytes.NewReader([]byte(`{"id":5}`)))
		rr := httptest.NewRecorder()

		server.handleAddManager(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("missing id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/managers", bytes.NewReader([]byte(`{}`)))
		rr := httptest.NewRecorder()

		server.handleAddManager(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleRemoveMenuItemRouting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, m := newTestServer(ctrl)
	router := server.setupRoutes()

	m.auth.EXPECT().ValidateUser(gomock.Any(), "admin", "secret").Return(true, nil).AnyTimes()

	t.Run("out of range index", func(t *testing.T) {
		m.catalog.EXPECT().RemoveMenuItem(gomock.Any(), int64(10), 5).
			Return(storage.ErrInvalidMenuIndex)

		req := httptest.NewRequest(http.MethodDelete, "/admin/venues/10/items/5", nil)
		req.SetBasicAuth("admin", "secret")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("success", func(t *testing.T) {
		m.catalog.EXPECT().RemoveMenuItem(gomock.Any(), int64(10), 0).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/admin/venues/10/items/0", nil)
		req.SetBasicAuth("admin", "secret")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
