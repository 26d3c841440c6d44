package server

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/corpeats/lunchbot/internal/repository"
	"github.com/corpeats/lunchbot/internal/session"
	"github.com/corpeats/lunchbot/internal/storage"
)

func TestHandleSessionStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, m := newTestServer(ctrl)

	tests := []struct {
		name           string
		body           string
		setupMocks     func()
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "lists open venues",
			body: `{"user_id": 1}`,
			setupMocks: func() {
				m.sessions.EXPECT().Start(gomock.Any(), int64(1)).Return([]session.VenueChoice{
					{ID: 10, Name: "Столовая №1", Address: "башня А"},
					{ID: 11, Name: "Пекарня", Address: "башня Б"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Столовая №1")
				assert.Contains(t, body, "башня Б")
			},
		},
		{
			name: "not an employee",
			body: `{"user_id": 99}`,
			setupMocks: func() {
				m.sessions.EXPECT().Start(gomock.Any(), int64(99)).
					Return(nil, session.ErrUnauthorized)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "nothing open",
			body: `{"user_id": 1}`,
			setupMocks: func() {
				m.sessions.EXPECT().Start(gomock.Any(), int64(1)).
					Return(nil, session.ErrNoVenuesAvailable)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing user id",
			body:           `{}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			req := httptest.NewRequest(http.MethodPost, "/api/session/start", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			server.handleSessionStart(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.checkBody != nil {
				tt.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestHandleSessionSelectVenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, m := newTestServer(ctrl)

	t.Run("returns menu", func(t *testing.T) {
		m.sessions.EXPECT().SelectVenue(gomock.Any(), int64(1), int64(10)).Return(&storage.Venue{
			ID:   10,
			Name: "Столовая №1",
			Menu: []storage.MenuItem{{Title: "Борщ", Price: 150}},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/session/venue",
			bytes.NewBufferString(`{"user_id": 1, "venue_id": 10}`))
		rr := httptest.NewRecorder()

		server.handleSessionSelectVenue(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Борщ")
	})

	t.Run("venue closed between listing and pick", func(t *testing.T) {
		m.sessions.EXPECT().SelectVenue(gomock.Any(), int64(1), int64(10)).
			Return(nil, session.ErrVenueClosed)

		req := httptest.NewRequest(http.MethodPost, "/api/session/venue",
			bytes.NewBufferString(`{"user_id": 1, "venue_id": 10}`))
		rr := httptest.NewRecorder()

		server.handleSessionSelectVenue(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("wrong phase", func(t *testing.T) {
		m.sessions.EXPECT().SelectVenue(gomock.Any(), int64(1), int64(10)).
			Return(nil, session.ErrInvalidState)

		req := httptest.NewRequest(http.MethodPost, "/api/session/venue",
			bytes.NewBufferString(`{"user_id": 1, "venue_id": 10}`))
		rr := httptest.NewRecorder()

		server.handleSessionSelectVenue(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestHandleSessionAddItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, m := newTestServer(ctrl)

	t.Run("adds by index", func(t *testing.T) {
		m.sessions.EXPECT().AddItem(gomock.Any(), int64(1), 0).
			Return(storage.MenuItem{Title: "Борщ", Price: 150}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/session/items",
			bytes.NewBufferString(`{"user_id": 1, "index": 0}`))
		rr := httptest.NewRecorder()

		server.handleSessionAddItem(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Борщ")
	})

	t.Run("index out of range", func(t *testing.T) {
		m.sessions.EXPECT().AddItem(gomock.Any(), int64(1), 7).
			Return(storage.MenuItem{}, session.ErrInvalidIndex)

		req := httptest.NewRequest(http.MethodPost, "/api/session/items",
			bytes.NewBufferString(`{"user_id": 1, "index": 7}`))
		rr := httptest.NewRecorder()

		server.handleSessionAddItem(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleSessionFinish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, m := newTestServer(ctrl)

	t.Run("returns summary", func(t *testing.T) {
		m.sessions.EXPECT().Finish(gomock.Any(), int64(1)).Return(&session.Summary{
			VenueName: "Столовая №1",
			Items:     []storage.MenuItem{{Title: "Борщ", Price: 150}},
			Total:     150,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/session/finish",
			bytes.NewBufferString(`{"user_id": 1}`))
		rr := httptest.NewRecorder()

		server.handleSessionFinish(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "150")
	})

	t.Run("nothing selected", func(t *testing.T) {
		m.sessions.EXPECT().Finish(gomock.Any(), int64(1)).
			Return(nil, session.ErrEmptyOrder)

		req := httptest.NewRequest(http.MethodPost, "/api/session/finish",
			bytes.NewBufferString(`{"user_id": 1}`))
		rr := httptest.NewRecorder()

		server.handleSessionFinish(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleSessionConfirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, m := newTestServer(ctrl)
	orderID := uuid.New()

	t.Run("places the order", func(t *testing.T) {
		m.sessions.EXPECT().Confirm(gomock.Any(), int64(1)).Return(orderID, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/session/confirm",
			bytes.NewBufferString(`{"user_id": 1}`))
		rr := httptest.NewRecorder()

		server.handleSessionConfirm(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), orderID.String())
	})

	t.Run("deadline passed at confirmation", func(t *testing.T) {
		m.sessions.EXPECT().Confirm(gomock.Any(), int64(1)).
			Return(uuid.Nil, storage.ErrDeadlinePassed)

		req := httptest.NewRequest(http.MethodPost, "/api/session/confirm",
			bytes.NewBufferString(`{"user_id": 1}`))
		rr := httptest.NewRecorder()

		server.handleSessionConfirm(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestHandleSessionCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, m := newTestServer(ctrl)
	m.sessions.EXPECT().Cancel(int64(1))

	req := httptest.NewRequest(http.MethodPost, "/api/session/cancel",
		bytes.NewBufferString(`{"user_id": 1}`))
	rr := httptest.NewRecorder()

	server.handleSessionCancel(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestOrderHistoryRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, m := newTestServer(ctrl)
	router := server.setupRoutes()
	orderID := uuid.New()

	t.Run("lists user orders", func(t *testing.T) {
		m.sessions.EXPECT().History(gomock.Any(), int64(1)).Return([]storage.Order{
			{ID: orderID, UserID: 1, VenueID: 10, Items: []storage.MenuItem{{Title: "Борщ", Price: 150}}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/users/1/orders", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), orderID.String())
	})

	t.Run("cancels own order", func(t *testing.T) {
		m.sessions.EXPECT().CancelOrder(gomock.Any(), int64(1), orderID).Return(nil)

		url := fmt.Sprintf("/api/orders/%s?user_id=1", orderID)
		req := httptest.NewRequest(http.MethodDelete, url, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("cancel after deadline", func(t *testing.T) {
		m.sessions.EXPECT().CancelOrder(gomock.Any(), int64(1), orderID).
			Return(storage.ErrDeadlinePassed)

		url := fmt.Sprintf("/api/orders/%s?user_id=1", orderID)
		req := httptest.NewRequest(http.MethodDelete, url, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("someone else's order", func(t *testing.T) {
		m.sessions.EXPECT().CancelOrder(gomock.Any(), int64(2), orderID).
			Return(repository.ErrObjectNotFound)

		url := fmt.Sprintf("/api/orders/%s?user_id=2", orderID)
		req := httptest.NewRequest(http.MethodDelete, url, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("malformed order id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/orders/not-a-uuid?user_id=1", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
