package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/bookline/bookline/internal/domain/errors"
	"github.com/bookline/bookline/internal/domain/model"
	"github.com/bookline/bookline/internal/server/http/dto"
)

// BookingHandler manages reservation endpoints.
type BookingHandler struct {
	facade BookingFacade
}

// NewBookingHandler constructs BookingHandler.
func NewBookingHandler(facade BookingFacade) *BookingHandler {
	return &BookingHandler{facade: facade}
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	interval := model.NewInterval(req.From, req.To)
	booking, err := h.facade.AdmitBooking(c.Request.Context(), req.ISBN, CurrentUserEmail(c), interval)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidInterval):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrBookingOverlap):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrBookNotFound), errors.Is(err, domainErrors.ErrUserNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(*booking))
}

// List handles GET /api/bookings.
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.facade.Bookings(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	h.respondList(c, bookings)
}

// ListMine handles GET /api/bookings/my.
func (h *BookingHandler) ListMine(c *gin.Context) {
	bookings, err := h.facade.UserBookings(c.Request.Context(), CurrentUserEmail(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrUserNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	h.respondList(c, bookings)
}

// ListForBook handles GET /api/bookings/book/:isbn.
func (h *BookingHandler) ListForBook(c *gin.Context) {
	bookings, err := h.facade.BookBookings(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrBookNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	h.respondList(c, bookings)
}

func (h *BookingHandler) respondList(c *gin.Context, bookings []model.Booking) {
	if len(bookings) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	response := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		response = append(response, toBookingResponse(b))
	}
	c.JSON(http.StatusOK, response)
}

func toBookingResponse(b model.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:        b.ID,
		BookID:    b.BookID,
		UserID:    b.UserID,
		From:      b.Interval.From,
		To:        b.Interval.To,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
	}
}
