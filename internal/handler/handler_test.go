package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stpnv0/EventBackend/internal/domain"
	"github.com/stpnv0/EventBackend/internal/handler/dto"
	hmocks "github.com/stpnv0/EventBackend/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

const (
	eventID   = "65f1a0c2b3d4e5f6a7b8c9d0"
	bookingID = "65f1a0c2b3d4e5f6a7b8c9d1"
)

type testDeps struct {
	events   *hmocks.MockEventSvc
	bookings *hmocks.MockBookingSvc
	capacity *hmocks.MockCapacitySvc
}

func setupRouter(t *testing.T, exposeDetail bool) (testDeps, http.Handler) {
	t.Helper()
	deps := testDeps{
		events:   hmocks.NewMockEventSvc(t),
		bookings: hmocks.NewMockBookingSvc(t),
		capacity: hmocks.NewMockCapacitySvc(t),
	}

	h := NewHandler(deps.events, deps.bookings, deps.capacity, exposeDetail)

	r := ginext.New("test")
	r.HandleMethodNotAllowed = true
	r.NoRoute(h.MethodNotAllowed)
	r.NoMethod(h.MethodNotAllowed)
	api := r.Group("/api/v1")
	{
		api.GET("/events", h.ListEvents)
		api.POST("/events", h.CreateEvent)
		api.GET("/events/:eventId", h.GetEvent)
		api.DELETE("/events/:eventId", h.DeleteEvent)
		api.GET("/events/:eventId/capacity", h.GetCapacity)
		api.GET("/events/:eventId/bookings", h.ListBookings)
		api.POST("/events/:eventId/bookings", h.CreateBooking)
		api.GET("/events/:eventId/bookings/:bookingId", h.GetBooking)
		api.DELETE("/events/:eventId/bookings/:bookingId", h.DeleteBooking)
	}

	return deps, r
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func testEvent() *domain.Event {
	start := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	return &domain.Event{
		ID:          eventID,
		Name:        "Concert",
		Capacity:    10,
		StartDate:   start,
		EndDate:     start.Add(2 * time.Hour),
		Description: "Live music",
		Location:    "Main hall",
		Version:     4,
		CreatedAt:   start,
	}
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	deps, r := setupRouter(t, false)

	deps.events.EXPECT().
		CreateEvent(mock.Anything, mock.MatchedBy(func(in domain.CreateEventInput) bool {
			return in.Name == "Concert" && *in.Capacity == 10 &&
				in.StartDate.Equal(time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC))
		})).
		Return(testEvent(), nil)

	w := doRequest(r, http.MethodPost, "/api/v1/events",
		`{"name":"Concert","capacity":10,"startDate":"2025-06-01T18:00:00Z","endDate":1748808000000}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{
		"_id": "65f1a0c2b3d4e5f6a7b8c9d0",
		"name": "Concert",
		"capacity": 10,
		"startDate": "2025-06-01T18:00:00.000Z",
		"endDate": "2025-06-01T20:00:00.000Z",
		"description": "Live music",
		"location": "Main hall",
		"bookings": []
	}`, w.Body.String())
}

func TestHandler_CreateEvent_MalformedBody(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantError string
	}{
		{"capacity as string", `{"name":"x","capacity":"ten"}`, "incorrect format of request body: capacity must be an integer"},
		{"capacity beyond int64", `{"name":"x","capacity":1e30}`, "incorrect format of request body: capacity must be an integer"},
		{"name as number", `{"name":1}`, "incorrect format of request body: name must be a string"},
		{"start date too late", `{"name":"x","capacity":1,"startDate":253402300800000}`, "incorrect format of request body: " + dto.ErrInvalidTimestamp.Error()},
		{"end date unparsable", `{"name":"x","capacity":1,"endDate":"soon"}`, "incorrect format of request body: " + dto.ErrInvalidTimestamp.Error()},
		{"truncated json", `{"name":"x"`, "incorrect format of request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, r := setupRouter(t, false)

			w := doRequest(r, http.MethodPost, "/api/v1/events", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantError, errorBody(t, w).Error)
			assert.NotContains(t, w.Body.String(), "Go struct field")
		})
	}
}

func TestHandler_CreateEvent_ValidationError(t *testing.T) {
	deps, r := setupRouter(t, false)

	deps.events.EXPECT().CreateEvent(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: name is required", domain.ErrValidation))

	w := doRequest(r, http.MethodPost, "/api/v1/events", `{"capacity":1}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "incorrect format of request body: name is required", errorBody(t, w).Error)
}

func TestHandler_ListEvents(t *testing.T) {
	deps, r := setupRouter(t, false)

	deps.events.EXPECT().List(mock.Anything).Return([]*domain.Event{testEvent()}, nil)

	w := doRequest(r, http.MethodGet, "/api/v1/events", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{
		"_id": "65f1a0c2b3d4e5f6a7b8c9d0",
		"name": "Concert",
		"capacity": 10,
		"startDate": "2025-06-01T18:00:00.000Z",
		"endDate": "2025-06-01T20:00:00.000Z"
	}]`, w.Body.String())
}

func TestHandler_ListEvents_Empty(t *testing.T) {
	deps, r := setupRouter(t, false)

	deps.events.EXPECT().List(mock.Anything).Return(nil, nil)

	w := doRequest(r, http.MethodGet, "/api/v1/events", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_GetEvent(t *testing.T) {
	deps, r := setupRouter(t, false)

	deps.events.EXPECT().GetDetails(mock.Anything, eventID).
		Return(&domain.EventDetails{Event: *testEvent(), BookingIDs: []string{bookingID}}, nil)

	w := doRequest(r, http.MethodGet, "/api/v1/events/"+eventID, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{bookingID}, resp.Bookings)
	assert.NotContains(t, w.Body.String(), "version")
	assert.NotContains(t, w.Body.String(), "createdAt")
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	deps, r := setupRouter(t, false)

	deps.events.EXPECT().GetDetails(mock.Anything, "nope").Return(nil, domain.ErrEventNotFound)

	w := doRequest(r, http.MethodGet, "/api/v1/events/nope", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "event not found", errorBody(t, w).Error)
}

func TestHandler_DeleteEvent_HasBookings(t *testing.T) {
	deps, r := setupRouter(t, false)

	deps.events.EXPECT().Delete(mock.Anything, eventID).Return(nil, domain.ErrEventHasBookings)

	w := doRequest(r, http.MethodDelete, "/api/v1/events/"+eventID, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "cannot delete an event with existing bookings", errorBody(t, w).Error)
}

func TestHandler_DeleteEvent_Success(t *testing.T) {
	deps, r := setupRouter(t, false)

	deps.events.EXPECT().Delete(mock.Anything, eventID).Return(testEvent(), nil)

	w := doRequest(r, http.MethodDelete, "/api/v1/events/"+eventID, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, eventID, resp.ID)
	assert.Empty(t, resp.Bookings)
}

func TestHandler_GetCapacity(t *testing.T) {
	deps, r := setupRouter(t, false)

	deps.capacity.EXPECT().Usage(mock.Anything, eventID).
		Return(&domain.CapacityUsage{EventID: eventID, Capacity: 10, Reserved: 7}, nil)

	w := doRequest(r, http.MethodGet, "/api/v1/events/"+eventID+"/capacity", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"eventId":"65f1a0c2b3d4e5f6a7b8c9d0","capacity":10,"reserved":7,"remaining":3}`, w.Body.String())
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	deps, r := setupRouter(t, false)

	booking := &domain.Booking{ID: bookingID, EventID: eventID, FirstName: "Ada", Email: "ada@example.com", Spots: 2}
	deps.bookings.EXPECT().
		Book(mock.Anything, eventID, mock.MatchedBy(func(in domain.CreateBookingInput) bool {
			return in.Email != nil && *in.Email == "ada@example.com" && in.Tel == nil && *in.Spots == 2
		})).
		Return(booking, nil)

	w := doRequest(r, http.MethodPost, "/api/v1/events/"+eventID+"/bookings",
		`{"firstName":"Ada","email":"ada@example.com","spots":2}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{
		"_id": "65f1a0c2b3d4e5f6a7b8c9d1",
		"eventId": "65f1a0c2b3d4e5f6a7b8c9d0",
		"firstName": "Ada",
		"email": "ada@example.com",
		"spots": 2
	}`, w.Body.String())
}

func TestHandler_CreateBooking_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"event not found", fmt.Errorf("check event: %w", domain.ErrEventNotFound), http.StatusNotFound, "event not found"},
		{"no contact", domain.ErrContactRequired, http.StatusBadRequest, "email or tel is required for a booking"},
		{"no spots", domain.ErrSpotsRequired, http.StatusBadRequest, "spots is required for a booking"},
		{"bad spots", domain.ErrInvalidSpots, http.StatusBadRequest, "spots must be a positive integer"},
		{"full", fmt.Errorf("create booking: %w", domain.ErrNotEnoughSpots), http.StatusBadRequest, "not enough spots available for this event"},
		{"store", errors.New("connection reset"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, r := setupRouter(t, false)
			deps.bookings.EXPECT().Book(mock.Anything, eventID, mock.Anything).Return(nil, tt.err)

			w := doRequest(r, http.MethodPost, "/api/v1/events/"+eventID+"/bookings", `{"spots":1}`)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := errorBody(t, w)
			assert.Equal(t, tt.wantError, resp.Error)
			assert.Empty(t, resp.Detail)
		})
	}
}

func TestHandler_CreateBooking_MalformedBody(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantError string
	}{
		{"fractional spots", `{"email":"a@b.c","spots":1.5}`, "incorrect format of request body: spots must be an integer"},
		{"email as number", `{"email":5,"spots":1}`, "incorrect format of request body: email must be a string"},
		{"not an object", `[1,2]`, "incorrect format of request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, r := setupRouter(t, false)

			w := doRequest(r, http.MethodPost, "/api/v1/events/"+eventID+"/bookings", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantError, errorBody(t, w).Error)
		})
	}
}

func TestHandler_InternalErrorDetail(t *testing.T) {
	deps, r := setupRouter(t, true)

	deps.bookings.EXPECT().ListByEvent(mock.Anything, eventID).Return(nil, errors.New("connection reset"))

	w := doRequest(r, http.MethodGet, "/api/v1/events/"+eventID+"/bookings", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := errorBody(t, w)
	assert.Equal(t, "internal server error", resp.Error)
	assert.Equal(t, "connection reset", resp.Detail)
}

func TestHandler_ListBookings_OmitsEventID(t *testing.T) {
	deps, r := setupRouter(t, false)

	deps.bookings.EXPECT().ListByEvent(mock.Anything, eventID).
		Return([]*domain.Booking{{ID: bookingID, EventID: eventID, Tel: "+100", Spots: 1}}, nil)

	w := doRequest(r, http.MethodGet, "/api/v1/events/"+eventID+"/bookings", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"_id":"65f1a0c2b3d4e5f6a7b8c9d1","tel":"+100","spots":1}]`, w.Body.String())
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	deps, r := setupRouter(t, false)

	deps.bookings.EXPECT().Get(mock.Anything, eventID, bookingID).
		Return(nil, fmt.Errorf("get booking: %w", domain.ErrBookingNotFound))

	w := doRequest(r, http.MethodGet, "/api/v1/events/"+eventID+"/bookings/"+bookingID, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "booking not found", errorBody(t, w).Error)
}

func TestHandler_DeleteBooking(t *testing.T) {
	deps, r := setupRouter(t, false)

	deps.bookings.EXPECT().Delete(mock.Anything, eventID, bookingID).
		Return(&domain.Booking{ID: bookingID, EventID: eventID, Email: "a@b.c", Spots: 3}, nil)

	w := doRequest(r, http.MethodDelete, "/api/v1/events/"+eventID+"/bookings/"+bookingID, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, eventID, resp.EventID)
	assert.Equal(t, 3, resp.Spots)
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	_, r := setupRouter(t, false)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPatch, "/api/v1/events/" + eventID},
		{http.MethodGet, "/api/v1/nothing"},
	} {
		w := doRequest(r, tc.method, tc.path, "")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, tc.method+" "+tc.path)
	}
}
