package service

import (
	"context"

	"github.com/lexacus/exercise-tracker/pkg/entity"
)

type CreateUserRequest struct {
	Username string `validate:"required"`
}

type LogExerciseRequest struct {
	Description string
	Duration    int
	Date        string
}

// LogQuery carries the optional log-narrowing parameters as they arrived
// on the wire. Unparseable From/To values and non-positive Limit are
// treated as absent.
type LogQuery struct {
	From  string
	To    string
	Limit int
}

// LoggedExercise combines the owner with the freshly stored exercise,
// which is the shape the exercise endpoint responds with.
type LoggedExercise struct {
	User        entity.User
	Description string
	Duration    int
	Date        string
}

type UserLog struct {
	User    entity.User
	Count   int
	Entries []entity.LogEntry
}

type TrackerServiceI interface {
	// Validates username and creates new user record. Returns user's data with ID
	CreateUser(ctx context.Context, req *CreateUserRequest) (*entity.User, error)
	// Lists every registered user
	ListUsers(ctx context.Context) ([]entity.User, error)
	// Looks up the owner, resolves and normalizes the date, stores the exercise
	LogExercise(ctx context.Context, userID string, req *LogExerciseRequest) (*LoggedExercise, error)
	// Aggregates the owner's exercises into the log view
	GetLog(ctx context.Context, userID string, query LogQuery) (*UserLog, error)
	// Wipes both collections unconditionally
	Reset(ctx context.Context) error
}
