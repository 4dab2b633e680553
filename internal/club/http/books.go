package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/chapterhouse/pageturn/internal/club/service"
	"github.com/chapterhouse/pageturn/pkg/clubsdk"
	"github.com/chapterhouse/pageturn/pkg/httpx"
	"github.com/chapterhouse/pageturn/pkg/slogx"
)

type BooksHandler struct {
	BookService *service.BookService
}

// HandleAdd godoc
//
//	@Summary		Book Catalogue Addition Endpoint
//	@Description	Add a book to the shared catalogue. Title and author are required; ISBN is optional.
//	@Tags			Books
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clubsdk.AddBookRequest	true	"Book details"
//	@Success		201		{object}	clubsdk.BookResponse	"book_id, title, author, isbn, created_at"
//	@Failure		400		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/books [post].
func (h *BooksHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req clubsdk.AddBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		clubsdk.NewAPIError(http.StatusBadRequest, clubsdk.ErrorCodeInvalidRequest, "Invalid JSON body").WriteError(w)
		return
	}

	book, err := h.BookService.AddBook(ctx, req.Title, req.Author, req.ISBN)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidBook):
			clubsdk.NewAPIError(http.StatusBadRequest, clubsdk.ErrorCodeInvalidRequest,
				"title and author are required").WriteError(w)
		default:
			log.Error("failed to add book", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, renderBook(book))
}

// HandleGet godoc
//
//	@Summary		Book Lookup Endpoint
//	@Description	Fetch a single catalogue book by id.
//	@Tags			Books
//	@Produce		json
//	@Param			bookID	path		string					true	"Book ID"
//	@Success		200		{object}	clubsdk.BookResponse	"book_id, title, author, isbn, created_at"
//	@Failure		401		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/books/{bookID} [get].
func (h *BooksHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	book, err := h.BookService.GetBook(ctx, r.PathValue("bookID"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookNotFound):
			clubsdk.ErrNotFound.WriteError(w)
		default:
			log.Error("failed to fetch book", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, renderBook(book))
}
