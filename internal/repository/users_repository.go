package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/lexacus/exercise-tracker/internal/error_values"
	"github.com/lexacus/exercise-tracker/pkg/cleanup"
	"github.com/lexacus/exercise-tracker/pkg/entity"
)

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(cfg DBConfig) *UsersRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for usersRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &UsersRepository{
		conn: pool,
	}
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, username string) (*entity.User, error) {
	user := entity.User{
		Username: username,
	}
	row := ur.conn.QueryRow(ctx, `INSERT INTO users (username) VALUES ($1) RETURNING id;`, username)
	if err := row.Scan(&user.ID); err != nil {
		return nil, errors.New("creating user db error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, username FROM users WHERE id = $1;`, uid)
	if err := row.Scan(&user.ID, &user.Username); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	users := make([]entity.User, 0)
	rows, err := ur.conn.Query(ctx, `SELECT id, username FROM users ORDER BY created_at;`)
	if err != nil {
		return nil, errors.New("listing users error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		u := entity.User{}
		err = rows.Scan(&u.ID, &u.Username)
		if err != nil {
			return nil, errors.New("unmarshalling user error: " + err.Error())
		}
		users = append(users, u)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return users, nil
}

func (ur *UsersRepository) DeleteAll(ctx context.Context) error {
	_, err := ur.conn.Exec(ctx, `DELETE FROM users;`)
	if err != nil {
		return errors.New("deleting users error: " + err.Error())
	}
	return nil
}
