package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/bookline/bookline/internal/domain/errors"
	"github.com/bookline/bookline/internal/domain/model"
	"github.com/bookline/bookline/internal/server/http/dto"
	"github.com/bookline/bookline/internal/usecase"
)

// BookHandler manages catalog endpoints.
type BookHandler struct {
	facade CatalogFacade
}

// NewBookHandler constructs BookHandler.
func NewBookHandler(facade CatalogFacade) *BookHandler {
	return &BookHandler{facade: facade}
}

// Add handles POST /api/books.
func (h *BookHandler) Add(c *gin.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	book, err := h.facade.AddBook(c.Request.Context(), toBookInput(req))
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			c.Status(http.StatusConflict)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, toBookResponse(*book))
}

// AddBatch handles POST /api/books/batch.
func (h *BookHandler) AddBatch(c *gin.Context) {
	var req dto.BookBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	inputs := make([]usecase.BookInput, 0, len(req.Books))
	for _, b := range req.Books {
		inputs = append(inputs, toBookInput(b))
	}

	books, err := h.facade.AddBooks(c.Request.Context(), inputs)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			c.Status(http.StatusConflict)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.BookResponse, 0, len(books))
	for _, b := range books {
		response = append(response, toBookResponse(b))
	}
	c.JSON(http.StatusCreated, response)
}

// List handles GET /api/books.
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.facade.Books(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toBookResponses(books))
}

// Get handles GET /api/books/:isbn.
func (h *BookHandler) Get(c *gin.Context) {
	book, err := h.facade.Book(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrBookNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toBookResponse(*book))
}

// ListByAuthor handles GET /api/authors/:author/books.
func (h *BookHandler) ListByAuthor(c *gin.Context) {
	books, err := h.facade.BooksByAuthor(c.Request.Context(), c.Param("author"))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toBookResponses(books))
}

// UpdateTitle handles PUT /api/books/:isbn/title.
func (h *BookHandler) UpdateTitle(c *gin.Context) {
	var req dto.UpdateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	book, err := h.facade.RenameBook(c.Request.Context(), c.Param("isbn"), req.Title)
	if err != nil {
		if errors.Is(err, domainErrors.ErrBookNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toBookResponse(*book))
}

// Delete handles DELETE /api/books/:isbn.
func (h *BookHandler) Delete(c *gin.Context) {
	if err := h.facade.RemoveBook(c.Request.Context(), c.Param("isbn")); err != nil {
		if errors.Is(err, domainErrors.ErrBookNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}

func toBookInput(req dto.BookRequest) usecase.BookInput {
	return usecase.BookInput{ISBN: req.ISBN, Title: req.Title, Author: req.Author}
}

func toBookResponse(b model.Book) dto.BookResponse {
	return dto.BookResponse{
		ID:        b.ID,
		ISBN:      b.ISBN,
		Title:     b.Title,
		Author:    b.Author,
		CreatedAt: b.CreatedAt,
	}
}

func toBookResponses(books []model.Book) []dto.BookResponse {
	response := make([]dto.BookResponse, 0, len(books))
	for _, b := range books {
		response = append(response, toBookResponse(b))
	}
	return response
}
