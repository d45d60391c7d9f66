package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alfagnish/users-api/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUsersRouter(s *store.Store) http.Handler {
	r := chi.NewRouter()
	r.Route("/users", NewUsersHandler(s).Routes)
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCreateUser_Success(t *testing.T) {
	s := store.New()
	r := newUsersRouter(s)

	rec := doRequest(t, r, http.MethodPost, "/users", `{"name":"John","email":"john@test.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var u store.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
	assert.Equal(t, 1, u.ID)
	assert.Equal(t, "John", u.Name)
	assert.Equal(t, "john@test.com", u.Email)
}

func TestCreateUser_EmptyNameRejected(t *testing.T) {
	s := store.New()
	r := newUsersRouter(s)

	for _, body := range []string{
		`{"name":"","email":"john@test.com"}`,
		`{"name":"   ","email":"john@test.com"}`,
		`{"email":"john@test.com"}`,
	} {
		rec := doRequest(t, r, http.MethodPost, "/users", body)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code, "body: %s", body)

		var resp struct {
			Detail []fieldError `json:"detail"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Detail)
		assert.Equal(t, "name", resp.Detail[0].Field)
	}

	// Failed creates must not mutate the collection.
	assert.Equal(t, 0, s.Count())
}

func TestCreateUser_MalformedEmailRejected(t *testing.T) {
	s := store.New()
	r := newUsersRouter(s)

	rec := doRequest(t, r, http.MethodPost, "/users", `{"name":"John","email":"johntest.com"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Detail []fieldError `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Detail)
	assert.Equal(t, "email", resp.Detail[0].Field)
	assert.Equal(t, 0, s.Count())
}

func TestCreateUser_InvalidJSONRejected(t *testing.T) {
	s := store.New()
	r := newUsersRouter(s)

	rec := doRequest(t, r, http.MethodPost, "/users", `{"name": `)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, 0, s.Count())
}

func TestCreateUser_IDNotClientControlled(t *testing.T) {
	s := store.New()
	r := newUsersRouter(s)

	// A supplied id field is ignored; the store assigns its own.
	rec := doRequest(t, r, http.MethodPost, "/users", `{"id":42,"name":"John","email":"john@test.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var u store.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
	assert.Equal(t, 1, u.ID)
}

func TestListUsers(t *testing.T) {
	s := store.New()
	r := newUsersRouter(s)

	rec := doRequest(t, r, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	s.Create("John", "john@test.com")
	s.Create("Jane", "jane@test.com")

	rec = doRequest(t, r, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var users []store.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 2)
	assert.Equal(t, "John", users[0].Name)
	assert.Equal(t, "Jane", users[1].Name)
}

func TestGetUser_Found(t *testing.T) {
	s := store.New()
	r := newUsersRouter(s)
	created := s.Create("John", "john@test.com")

	rec := doRequest(t, r, http.MethodGet, "/users/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var u store.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
	assert.Equal(t, created, u)
}

func TestGetUser_NotFoundIsStructured(t *testing.T) {
	s := store.New()
	r := newUsersRouter(s)

	rec := doRequest(t, r, http.MethodGet, "/users/99", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"User not found"}`, rec.Body.String())
}

func TestGetUser_NonIntegerID(t *testing.T) {
	s := store.New()
	r := newUsersRouter(s)

	rec := doRequest(t, r, http.MethodGet, "/users/abc", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Detail []fieldError `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Detail)
	assert.Equal(t, "id", resp.Detail[0].Field)
}
