package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/lexacus/exercise-tracker/internal/error_values"
	"github.com/lexacus/exercise-tracker/internal/service"
	"github.com/lexacus/exercise-tracker/pkg/entity"
	"github.com/lexacus/exercise-tracker/pkg/httputil"
)

const (
	msgInvalidUsername = "Invalid username"
	msgUserNotFound    = "No user found with provided id."
	msgInvalidDate     = "Invalid date"
)

type CreateUserRequest struct {
	Username string `json:"username"`
}

type LogExerciseRequest struct {
	Description string  `json:"description"`
	Duration    flexInt `json:"duration"`
	Date        string  `json:"date"`
}

type ExerciseResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type LogResponse struct {
	ID       string            `json:"id"`
	Username string            `json:"username"`
	Count    int               `json:"count"`
	Log      []entity.LogEntry `json:"log"`
}

type ResetResponse struct {
	Reset string `json:"reset"`
}

// flexInt decodes a JSON number as well as its string form: the reference
// test harness submits urlencoded forms, so numeric fields arrive quoted
// when proxied as JSON.
type flexInt int

func (fi *flexInt) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*fi = 0
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return err
	}
	*fi = flexInt(n)
	return nil
}

func (s *Server) CreateUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateUserRequest
	defer r.Body.Close()
	if isForm(r) {
		r.ParseForm()
		req.Username = r.PostFormValue("username")
	} else if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		// Undecodable body is handled like a missing username
		logger.Warn("create user: undecodable body")
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.tracker.CreateUser(ctx, &service.CreateUserRequest{
		Username: req.Username,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidUsername) {
			logger.Error("create user error: empty username")
			httputil.WriteClientError(w, msgInvalidUsername)
			return
		}
		logger.Error("create user error: service error", slog.String("error", err.Error()))
		httputil.WriteFaultResponse(w, http.StatusInternalServerError, "internal error while creating user", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
	logger.Info("user created")
}

func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	users, err := s.tracker.ListUsers(ctx)
	if err != nil {
		logger.Error("listing users error", slog.String("error", err.Error()))
		httputil.WriteFaultResponse(w, http.StatusInternalServerError, "internal error while listing users", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, users)
	logger.Info("users provided")
}

func (s *Server) LogExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LogExerciseRequest
	defer r.Body.Close()
	if isForm(r) {
		r.ParseForm()
		duration, _ := strconv.Atoi(r.PostFormValue("duration"))
		req = LogExerciseRequest{
			Description: r.PostFormValue("description"),
			Duration:    flexInt(duration),
			Date:        r.PostFormValue("date"),
		}
	} else if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("log exercise: undecodable body")
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	logged, err := s.tracker.LogExercise(ctx, r.PathValue("id"), &service.LogExerciseRequest{
		Description: req.Description,
		Duration:    int(req.Duration),
		Date:        req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("log exercise error: unexist user")
			httputil.WriteClientError(w, msgUserNotFound)
		case errors.Is(err, errorvalues.ErrInvalidDate):
			logger.Error("log exercise error: unparseable date")
			httputil.WriteClientError(w, msgInvalidDate)
		default:
			logger.Error("log exercise error: service error", slog.String("error", err.Error()))
			httputil.WriteFaultResponse(w, http.StatusInternalServerError, "internal error while logging exercise", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ExerciseResponse{
		ID:          logged.User.ID.String(),
		Username:    logged.User.Username,
		Description: logged.Description,
		Duration:    logged.Duration,
		Date:        logged.Date,
	})
	logger.Info("exercise logged")
}

func (s *Server) GetLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = 0
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	userLog, err := s.tracker.GetLog(ctx, r.PathValue("id"), service.LogQuery{
		From:  r.URL.Query().Get("from"),
		To:    r.URL.Query().Get("to"),
		Limit: limit,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("get log error: unexist user")
			httputil.WriteClientError(w, msgUserNotFound)
			return
		}
		logger.Error("get log error: service error", slog.String("error", err.Error()))
		httputil.WriteFaultResponse(w, http.StatusInternalServerError, "internal error while getting log", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, LogResponse{
		ID:       userLog.User.ID.String(),
		Username: userLog.User.Username,
		Count:    userLog.Count,
		Log:      userLog.Entries,
	})
	logger.Info("log provided")
}

func (s *Server) Reset(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err := s.tracker.Reset(ctx); err != nil {
		logger.Error("reset error", slog.String("error", err.Error()))
		httputil.WriteFaultResponse(w, http.StatusInternalServerError, "internal error while resetting", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ResetResponse{Reset: "reset"})
	logger.Info("store reset")
}

func isForm(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
}
