package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lexacus/exercise-tracker/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user, identifier is assigned by the store
	Create(ctx context.Context, username string) (*entity.User, error)
	// Looks up user by id. Used before logging an exercise
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Lists every user in insertion order
	FindAll(ctx context.Context) ([]entity.User, error)
	// Removes all users. Used by reset only
	DeleteAll(ctx context.Context) error
}

// LogFilter narrows FindByOwner results. Zero value means no filtering.
// From and To are inclusive YYYY-MM-DD date keys, Limit <= 0 means unlimited.
type LogFilter struct {
	From  string
	To    string
	Limit int
}

type ExercisesRepositoryI interface {
	// Creates new exercise, identifier is assigned by the store
	Create(ctx context.Context, exercise *entity.Exercise) (*entity.Exercise, error)
	// Lists exercises owned by uid, earliest-first, narrowed by filter
	FindByOwner(ctx context.Context, ownerID uuid.UUID, filter LogFilter) ([]entity.Exercise, error)
	// Removes all exercises. Used by reset only
	DeleteAll(ctx context.Context) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
