package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/stpnv0/EventBackend/internal/domain"
	"github.com/stpnv0/EventBackend/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context) ([]*domain.Event, error)
	Delete(ctx context.Context, id string) (*domain.Event, error)
}

type BookingSvc interface {
	Book(ctx context.Context, eventID string, input domain.CreateBookingInput) (*domain.Booking, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error)
	Get(ctx context.Context, eventID, bookingID string) (*domain.Booking, error)
	Delete(ctx context.Context, eventID, bookingID string) (*domain.Booking, error)
}

type CapacitySvc interface {
	Usage(ctx context.Context, eventID string) (*domain.CapacityUsage, error)
}

type Handler struct {
	eventService    EventSvc
	bookingService  BookingSvc
	capacityService CapacitySvc
	exposeDetail    bool
}

// NewHandler builds the HTTP handlers. With exposeDetail set, 500 responses
// carry the underlying error.
func NewHandler(eventService EventSvc, bookingService BookingSvc, capacityService CapacitySvc, exposeDetail bool) *Handler {
	return &Handler{
		eventService:    eventService,
		bookingService:  bookingService,
		capacityService: capacityService,
		exposeDetail:    exposeDetail,
	}
}

// Events

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventListItemResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventListItemResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetEvent(c *ginext.Context) {
	details, err := h.eventService.GetDetails(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, bindError(err))
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event, nil))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	event, err := h.eventService.Delete(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event, nil))
}

func (h *Handler) GetCapacity(c *ginext.Context) {
	usage, err := h.capacityService.Usage(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCapacityResponse(usage))
}

// Bookings

func (h *Handler) ListBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListByEvent(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToEventBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBooking(c *ginext.Context) {
	booking, err := h.bookingService.Get(c.Request.Context(), c.Param("eventId"), c.Param("bookingId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventBookingResponse(booking))
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, bindError(err))
		return
	}

	booking, err := h.bookingService.Book(c.Request.Context(), c.Param("eventId"), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) DeleteBooking(c *ginext.Context) {
	booking, err := h.bookingService.Delete(c.Request.Context(), c.Param("eventId"), c.Param("bookingId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) MethodNotAllowed(c *ginext.Context) {
	c.JSON(http.StatusMethodNotAllowed, dto.ErrorResponse{Error: "method not allowed"})
}

var badRequestErrors = []error{
	domain.ErrEventHasBookings,
	domain.ErrNotEnoughSpots,
	domain.ErrContactRequired,
	domain.ErrSpotsRequired,
	domain.ErrInvalidSpots,
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: domain.ErrEventNotFound.Error()})
		return

	case errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: domain.ErrBookingNotFound.Error()})
		return

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: target.Error()})
			return
		}
	}

	resp := dto.ErrorResponse{Error: "internal server error"}
	if h.exposeDetail {
		resp.Detail = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}

// bindError turns a request decoding failure into a validation error that
// names the offending field without exposing Go types.
func bindError(err error) error {
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.Is(err, dto.ErrInvalidTimestamp):
		return fmt.Errorf("%w: %s", domain.ErrValidation, dto.ErrInvalidTimestamp.Error())
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return fmt.Errorf("%w: %s must be %s", domain.ErrValidation, typeErr.Field, describeKind(typeErr.Type))
	default:
		return domain.ErrValidation
	}
}

func describeKind(t reflect.Type) string {
	if t == nil {
		return "of a different type"
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	default:
		return "of a different type"
	}
}
