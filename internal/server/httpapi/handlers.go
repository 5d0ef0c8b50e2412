package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/tutorbook/internal/common"
	"github.com/dmitrijs2005/tutorbook/internal/server/sessions"
	"github.com/dmitrijs2005/tutorbook/internal/server/users"
	"github.com/gorilla/mux"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// updateRequest distinguishes an omitted field (nil) from an empty one.
type updateRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
}

type sessionRequest struct {
	Subject   string `json:"subject"`
	Date      string `json:"date"`
	StudentID string `json:"studentId"`
	TutorID   string `json:"tutorId"`
}

func renderJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Index describes the service and its endpoints.
func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, map[string]any{
		"message": "Welcome to Home Tutor Booking System API",
		"endpoints": map[string]string{
			"register": "POST /api/user/register - Register a new user",
			"update":   "PUT /api/user/{id} - Update a user",
			"delete":   "DELETE /api/user/{id} - Delete a user",
			"sessions": "POST /api/session - Create a new tutoring session",
		},
	})
}

func (s *Server) RegisterUser(w http.ResponseWriter, r *http.Request) {

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid JSON body"})
		return
	}

	user, err := s.users.Register(r.Context(), req.Username, req.Email, req.Role)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "user registered", "id", user.ID, "role", user.Role)
	renderJSON(w, http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"user":    user,
	})
}

func (s *Server) UpdateUser(w http.ResponseWriter, r *http.Request) {

	id := mux.Vars(r)["id"]

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid JSON body"})
		return
	}

	user, err := s.users.Update(r.Context(), id, users.UpdateParams{
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "user updated", "id", user.ID)
	renderJSON(w, http.StatusOK, map[string]any{
		"message": "User updated successfully",
		"user":    user,
	})
}

func (s *Server) DeleteUser(w http.ResponseWriter, r *http.Request) {

	id := mux.Vars(r)["id"]

	user, err := s.users.Delete(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "user deleted", "id", user.ID)
	renderJSON(w, http.StatusOK, map[string]any{
		"message": "User deleted successfully",
		"user":    user,
	})
}

func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {

	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid JSON body"})
		return
	}

	session, err := s.sessions.Create(r.Context(), sessions.CreateParams{
		Subject:   req.Subject,
		Date:      req.Date,
		StudentID: req.StudentID,
		TutorID:   req.TutorID,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "session created", "id", session.ID,
		"student_id", session.StudentID, "tutor_id", session.TutorID)
	renderJSON(w, http.StatusCreated, map[string]any{
		"message": "Session created successfully",
		"session": session,
	})
}

// writeError converts service errors to the JSON error shapes: validation
// and conflict errors map to 400, missing entities to 404, everything else
// to 500 with the message passed through.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {

	var usersNotFound *sessions.UsersNotFoundError
	var dateNotFuture *sessions.DateNotFutureError

	switch {
	case errors.As(err, &usersNotFound):
		renderJSON(w, http.StatusNotFound, map[string]any{
			"message":       "One or both users do not exist",
			"studentExists": usersNotFound.StudentExists,
			"tutorExists":   usersNotFound.TutorExists,
		})

	case errors.As(err, &dateNotFuture):
		renderJSON(w, http.StatusBadRequest, map[string]any{
			"message":      "Session date must be in the future",
			"providedDate": dateNotFuture.Provided,
			"currentDate":  dateNotFuture.Current,
		})

	case errors.Is(err, common.ErrorNotFound):
		renderJSON(w, http.StatusNotFound, map[string]any{"message": "User not found"})

	case errors.Is(err, users.ErrUsernameAndEmailRequired),
		errors.Is(err, users.ErrInvalidRole),
		errors.Is(err, users.ErrNoFieldsToUpdate),
		errors.Is(err, users.ErrEmailExists),
		errors.Is(err, sessions.ErrAllFieldsRequired),
		errors.Is(err, sessions.ErrInvalidDate),
		errors.Is(err, sessions.ErrStudentRoleMismatch),
		errors.Is(err, sessions.ErrTutorRoleMismatch),
		errors.Is(err, sessions.ErrSubjectExists):
		renderJSON(w, http.StatusBadRequest, map[string]any{"message": err.Error()})

	default:
		s.logger.Error(r.Context(), "unexpected error", "err", err.Error())
		renderJSON(w, http.StatusInternalServerError, map[string]any{
			"message": "Server error",
			"error":   err.Error(),
		})
	}
}
