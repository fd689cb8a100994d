package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lexacus/exercise-tracker/pkg/cleanup"
	"github.com/lexacus/exercise-tracker/pkg/entity"
)

type ExercisesRepository struct {
	conn PgConnection
}

func NewExercisesRepo(cfg DBConfig) *ExercisesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for exercisesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for exercisesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ExercisesRepository{
		conn: pool,
	}
}

func NewExercisesRepoWithConn(conn PgConnection) *ExercisesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for exercisesRepo: " + err.Error())
	}
	return &ExercisesRepository{
		conn: conn,
	}
}

func (er *ExercisesRepository) Create(ctx context.Context, exercise *entity.Exercise) (*entity.Exercise, error) {
	if exercise == nil {
		return nil, errors.New("exercise is nil")
	}
	created := *exercise
	row := er.conn.QueryRow(ctx,
		`INSERT INTO exercises (owner_id, description, duration, date, date_key) VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		exercise.OwnerID,
		exercise.Description,
		exercise.Duration,
		exercise.Date,
		exercise.DateKey,
	)
	if err := row.Scan(&created.ID); err != nil {
		return nil, errors.New("creating exercise db error: " + err.Error())
	}
	return &created, nil
}

func (er *ExercisesRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, filter LogFilter) ([]entity.Exercise, error) {
	query := `SELECT id, owner_id, description, duration, date, date_key FROM exercises WHERE owner_id = $1`
	args := []any{ownerID}
	if filter.From != "" {
		args = append(args, filter.From)
		query += fmt.Sprintf(` AND date_key >= $%d`, len(args))
	}
	if filter.To != "" {
		args = append(args, filter.To)
		query += fmt.Sprintf(` AND date_key <= $%d`, len(args))
	}
	query += ` ORDER BY date_key, created_at`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}
	query += `;`
	exercises := make([]entity.Exercise, 0)
	rows, err := er.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("getting exercises by owner error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		e := entity.Exercise{}
		err = rows.Scan(&e.ID, &e.OwnerID, &e.Description, &e.Duration, &e.Date, &e.DateKey)
		if err != nil {
			return nil, errors.New("unmarshalling exercise error: " + err.Error())
		}
		exercises = append(exercises, e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return exercises, nil
}

func (er *ExercisesRepository) DeleteAll(ctx context.Context) error {
	_, err := er.conn.Exec(ctx, `DELETE FROM exercises;`)
	if err != nil {
		return errors.New("deleting exercises error: " + err.Error())
	}
	return nil
}
