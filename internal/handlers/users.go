package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/alfagnish/users-api/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// UsersHandler provides the user CRUD endpoints backed by the in-memory store.
type UsersHandler struct {
	store    *store.Store
	validate *validator.Validate
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(s *store.Store) *UsersHandler {
	return &UsersHandler{
		store:    s,
		validate: validator.New(),
	}
}

// Routes registers the user routes on the given chi router.
func (h *UsersHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
}

// createUserRequest is the POST /users body. The store assigns ids, so the
// body carries name and email only.
type createUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// Create validates the request body, stores the new user, and returns the
// full record including its assigned id.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFieldErrors(w, []fieldError{{Field: "body", Error: "invalid JSON body"}})
		return
	}

	// Whitespace-only names count as missing.
	req.Name = strings.TrimSpace(req.Name)

	if errs := h.validateCreate(req); len(errs) > 0 {
		writeFieldErrors(w, errs)
		return
	}

	u := h.store.Create(req.Name, req.Email)
	writeJSON(w, http.StatusCreated, u)
}

// List returns all users as a JSON array, in insertion order.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.List())
}

// Get returns a single user by id. A non-integer path segment is a
// validation error; an unknown id is a structured 404.
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeFieldErrors(w, []fieldError{{Field: "id", Error: "must be an integer"}})
		return
	}

	u, ok := h.store.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// validateCreate runs struct validation and maps each failure to a
// field-level error message.
func (h *UsersHandler) validateCreate(req createUserRequest) []fieldError {
	err := h.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []fieldError{{Field: "body", Error: err.Error()}}
	}

	out := make([]fieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out = append(out, fieldError{Field: field, Error: field + " is required"})
		case "email":
			out = append(out, fieldError{Field: field, Error: "must be a valid email address"})
		default:
			out = append(out, fieldError{Field: field, Error: "is invalid"})
		}
	}
	return out
}
