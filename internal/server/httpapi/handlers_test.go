package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/tutorbook/internal/logging"
	"github.com/dmitrijs2005/tutorbook/internal/server/sessions"
	"github.com/dmitrijs2005/tutorbook/internal/server/shared/db"
	"github.com/dmitrijs2005/tutorbook/internal/server/users"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	m := db.NewInMemoryRepositoryManager()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	us := users.NewService(m.Users())
	ss := sessions.NewService(m.Sessions(), m.Users())

	return NewServer(":0", time.Second, logger, us, ss).Router()
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec.Code, decoded
}

func registerUser(t *testing.T, router *mux.Router, username, email, role string) string {
	t.Helper()

	body := map[string]any{"username": username, "email": email}
	if role != "" {
		body["role"] = role
	}
	status, resp := doJSON(t, router, http.MethodPost, "/api/user/register", body)
	require.Equal(t, http.StatusCreated, status, "register %s: %v", username, resp)

	user := resp["user"].(map[string]any)
	return user["id"].(string)
}

func futureDate() string {
	return time.Now().Add(24 * time.Hour).Format(time.RFC3339)
}

func TestIndex(t *testing.T) {
	router := newTestRouter(t)

	status, resp := doJSON(t, router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Welcome to Home Tutor Booking System API", resp["message"])
	assert.Contains(t, resp, "endpoints")
}

func TestRegisterUser(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
	}{
		{
			name:       "valid request",
			body:       map[string]any{"username": "alice", "email": "a@x.com"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing username",
			body:       map[string]any{"email": "a@x.com"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing email",
			body:       map[string]any{"username": "alice"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown role",
			body:       map[string]any{"username": "alice", "email": "a@x.com", "role": "admin"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "tutor role accepted",
			body:       map[string]any{"username": "carol", "email": "c@x.com", "role": "tutor"},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(t)
			status, resp := doJSON(t, router, http.MethodPost, "/api/user/register", tc.body)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, resp, "message")
		})
	}
}

func TestRegisterUser_DefaultsRole(t *testing.T) {
	router := newTestRouter(t)

	status, resp := doJSON(t, router, http.MethodPost, "/api/user/register",
		map[string]any{"username": "alice", "email": "a@x.com"})
	require.Equal(t, http.StatusCreated, status)

	user := resp["user"].(map[string]any)
	assert.Equal(t, "student", user["role"])
	assert.NotEmpty(t, user["id"])
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	router := newTestRouter(t)

	registerUser(t, router, "alice", "a@x.com", "")

	status, resp := doJSON(t, router, http.MethodPost, "/api/user/register",
		map[string]any{"username": "bob", "email": " A@x.com "})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "user with this email already exists", resp["message"])
}

func TestUpdateUser(t *testing.T) {
	router := newTestRouter(t)
	id := registerUser(t, router, "alice", "a@x.com", "")

	t.Run("partial update", func(t *testing.T) {
		status, resp := doJSON(t, router, http.MethodPut, "/api/user/"+id,
			map[string]any{"username": "alicia"})
		require.Equal(t, http.StatusOK, status)

		user := resp["user"].(map[string]any)
		assert.Equal(t, "alicia", user["username"])
		assert.Equal(t, "a@x.com", user["email"])
	})

	t.Run("empty fields object", func(t *testing.T) {
		status, resp := doJSON(t, router, http.MethodPut, "/api/user/"+id, map[string]any{})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "no fields to update", resp["message"])
	})

	t.Run("unknown id", func(t *testing.T) {
		status, _ := doJSON(t, router, http.MethodPut, "/api/user/no-such-id",
			map[string]any{"username": "x"})
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestDeleteUser(t *testing.T) {
	router := newTestRouter(t)
	id := registerUser(t, router, "alice", "a@x.com", "")

	status, resp := doJSON(t, router, http.MethodDelete, "/api/user/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	user := resp["user"].(map[string]any)
	assert.Equal(t, "alice", user["username"], "delete must return the prior state")

	status, _ = doJSON(t, router, http.MethodDelete, "/api/user/"+id, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCreateSession(t *testing.T) {
	router := newTestRouter(t)
	studentID := registerUser(t, router, "alice", "a@x.com", "")
	tutorID := registerUser(t, router, "carol", "c@x.com", "tutor")

	t.Run("missing fields", func(t *testing.T) {
		status, _ := doJSON(t, router, http.MethodPost, "/api/session",
			map[string]any{"subject": "Math"})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("past date", func(t *testing.T) {
		status, resp := doJSON(t, router, http.MethodPost, "/api/session", map[string]any{
			"subject":   "Math",
			"date":      time.Now().Add(-time.Hour).Format(time.RFC3339),
			"studentId": studentID,
			"tutorId":   tutorID,
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Session date must be in the future", resp["message"])
		assert.Contains(t, resp, "providedDate")
		assert.Contains(t, resp, "currentDate")
	})

	t.Run("both users missing", func(t *testing.T) {
		status, resp := doJSON(t, router, http.MethodPost, "/api/session", map[string]any{
			"subject":   "Math",
			"date":      futureDate(),
			"studentId": "ghost1",
			"tutorId":   "ghost2",
		})
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, false, resp["studentExists"])
		assert.Equal(t, false, resp["tutorExists"])
	})

	t.Run("one user missing", func(t *testing.T) {
		status, resp := doJSON(t, router, http.MethodPost, "/api/session", map[string]any{
			"subject":   "Math",
			"date":      futureDate(),
			"studentId": studentID,
			"tutorId":   "ghost",
		})
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, true, resp["studentExists"])
		assert.Equal(t, false, resp["tutorExists"])
	})

	t.Run("role mismatch", func(t *testing.T) {
		status, resp := doJSON(t, router, http.MethodPost, "/api/session", map[string]any{
			"subject":   "Math",
			"date":      futureDate(),
			"studentId": tutorID,
			"tutorId":   tutorID,
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "the provided studentId does not belong to a student", resp["message"])
	})

	t.Run("valid booking", func(t *testing.T) {
		status, resp := doJSON(t, router, http.MethodPost, "/api/session", map[string]any{
			"subject":   "Math",
			"date":      futureDate(),
			"studentId": studentID,
			"tutorId":   tutorID,
		})
		require.Equal(t, http.StatusCreated, status)

		session := resp["session"].(map[string]any)
		assert.Equal(t, "Math", session["subject"])
		assert.Equal(t, studentID, session["studentId"])
		assert.Equal(t, tutorID, session["tutorId"])
	})
}

// TestBookingScenario walks through a full registration and booking flow.
func TestBookingScenario(t *testing.T) {
	router := newTestRouter(t)

	aliceID := registerUser(t, router, "alice", "a@x.com", "")

	status, resp := doJSON(t, router, http.MethodPost, "/api/user/register",
		map[string]any{"username": "bob", "email": "a@x.com"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "user with this email already exists", resp["message"])

	carolID := registerUser(t, router, "carol", "c@x.com", "tutor")

	booking := map[string]any{
		"subject":   "Math",
		"date":      futureDate(),
		"studentId": aliceID,
		"tutorId":   carolID,
	}

	status, _ = doJSON(t, router, http.MethodPost, "/api/session", booking)
	assert.Equal(t, http.StatusCreated, status)

	status, resp = doJSON(t, router, http.MethodPost, "/api/session", booking)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "session with this subject already exists", resp["message"])
}
