package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/lexacus/exercise-tracker/internal/error_values"
	"github.com/lexacus/exercise-tracker/internal/repository"
	"github.com/lexacus/exercise-tracker/internal/service"
	"github.com/lexacus/exercise-tracker/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type usersRepoMock struct {
	user    *entity.User
	users   []entity.User
	err     error
	created string
	deleted bool
}

func (m *usersRepoMock) Create(ctx context.Context, username string) (*entity.User, error) {
	m.created = username
	if m.err != nil {
		return nil, m.err
	}
	return &entity.User{ID: uuid.New(), Username: username}, nil
}

func (m *usersRepoMock) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func (m *usersRepoMock) FindAll(ctx context.Context) ([]entity.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.users, nil
}

func (m *usersRepoMock) DeleteAll(ctx context.Context) error {
	m.deleted = true
	return m.err
}

type exercisesRepoMock struct {
	exercises  []entity.Exercise
	err        error
	created    *entity.Exercise
	gotFilter  repository.LogFilter
	deleted    bool
	usersAlive *usersRepoMock
}

func (m *exercisesRepoMock) Create(ctx context.Context, exercise *entity.Exercise) (*entity.Exercise, error) {
	m.created = exercise
	if m.err != nil {
		return nil, m.err
	}
	created := *exercise
	created.ID = uuid.New()
	return &created, nil
}

func (m *exercisesRepoMock) FindByOwner(ctx context.Context, ownerID uuid.UUID, filter repository.LogFilter) ([]entity.Exercise, error) {
	m.gotFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	return m.exercises, nil
}

func (m *exercisesRepoMock) DeleteAll(ctx context.Context) error {
	m.deleted = true
	// Reset must clear exercises before users
	if m.usersAlive != nil && m.usersAlive.deleted {
		return context.Canceled
	}
	return m.err
}

func TestCreateUserService(t *testing.T) {
	ctx := context.Background()
	t.Run("empty username rejected without store call", func(t *testing.T) {
		usersRepo := &usersRepoMock{}
		serv := service.NewTrackerService(usersRepo, &exercisesRepoMock{})
		_, err := serv.CreateUser(ctx, &service.CreateUserRequest{Username: ""})
		assert.ErrorIs(t, err, errorvalues.ErrInvalidUsername)
		assert.Empty(t, usersRepo.created)
	})
	t.Run("created with echoed username", func(t *testing.T) {
		usersRepo := &usersRepoMock{}
		serv := service.NewTrackerService(usersRepo, &exercisesRepoMock{})
		user, err := serv.CreateUser(ctx, &service.CreateUserRequest{Username: "fcc_test"})
		require.NoError(t, err)
		assert.Equal(t, "fcc_test", user.Username)
		assert.NotEqual(t, uuid.Nil, user.ID)
	})
	t.Run("duplicate usernames accepted", func(t *testing.T) {
		usersRepo := &usersRepoMock{}
		serv := service.NewTrackerService(usersRepo, &exercisesRepoMock{})
		first, err := serv.CreateUser(ctx, &service.CreateUserRequest{Username: "fcc_test"})
		require.NoError(t, err)
		second, err := serv.CreateUser(ctx, &service.CreateUserRequest{Username: "fcc_test"})
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})
}

func TestListUsersService(t *testing.T) {
	ctx := context.Background()
	users := []entity.User{
		{ID: uuid.New(), Username: "first"},
		{ID: uuid.New(), Username: "second"},
	}
	serv := service.NewTrackerService(&usersRepoMock{users: users}, &exercisesRepoMock{})
	result, err := serv.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, users, result)
}

func TestLogExerciseService(t *testing.T) {
	ctx := context.Background()
	owner := &entity.User{ID: uuid.New(), Username: "fcc_test"}
	t.Run("unknown user id creates nothing", func(t *testing.T) {
		exercisesRepo := &exercisesRepoMock{}
		serv := service.NewTrackerService(&usersRepoMock{err: errorvalues.ErrUserNotFound}, exercisesRepo)
		_, err := serv.LogExercise(ctx, uuid.NewString(), &service.LogExerciseRequest{Description: "test run", Duration: 30})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
		assert.Nil(t, exercisesRepo.created)
	})
	t.Run("malformed user id treated as not found", func(t *testing.T) {
		serv := service.NewTrackerService(&usersRepoMock{user: owner}, &exercisesRepoMock{})
		_, err := serv.LogExercise(ctx, "not-a-uuid", &service.LogExerciseRequest{Description: "test run", Duration: 30})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("explicit date normalized", func(t *testing.T) {
		exercisesRepo := &exercisesRepoMock{}
		serv := service.NewTrackerService(&usersRepoMock{user: owner}, exercisesRepo)
		logged, err := serv.LogExercise(ctx, owner.ID.String(), &service.LogExerciseRequest{
			Description: "test run",
			Duration:    30,
			Date:        "2023-01-15",
		})
		require.NoError(t, err)
		assert.Equal(t, "Sun Jan 15 2023", logged.Date)
		assert.Equal(t, owner.ID, logged.User.ID)
		assert.Equal(t, "fcc_test", logged.User.Username)
		assert.Equal(t, "test run", logged.Description)
		assert.Equal(t, 30, logged.Duration)
		require.NotNil(t, exercisesRepo.created)
		assert.Equal(t, "2023-01-15", exercisesRepo.created.DateKey)
		assert.Equal(t, owner.ID, exercisesRepo.created.OwnerID)
	})
	t.Run("normalized form itself accepted", func(t *testing.T) {
		serv := service.NewTrackerService(&usersRepoMock{user: owner}, &exercisesRepoMock{})
		logged, err := serv.LogExercise(ctx, owner.ID.String(), &service.LogExerciseRequest{
			Date: "Sun Jan 15 2023",
		})
		require.NoError(t, err)
		assert.Equal(t, "Sun Jan 15 2023", logged.Date)
	})
	t.Run("missing date falls back to today", func(t *testing.T) {
		serv := service.NewTrackerService(&usersRepoMock{user: owner}, &exercisesRepoMock{})
		logged, err := serv.LogExercise(ctx, owner.ID.String(), &service.LogExerciseRequest{
			Description: "test run",
			Duration:    30,
		})
		require.NoError(t, err)
		assert.Equal(t, time.Now().Format("Mon Jan 02 2006"), logged.Date)
	})
	t.Run("unparseable date rejected without store call", func(t *testing.T) {
		exercisesRepo := &exercisesRepoMock{}
		serv := service.NewTrackerService(&usersRepoMock{user: owner}, exercisesRepo)
		_, err := serv.LogExercise(ctx, owner.ID.String(), &service.LogExerciseRequest{
			Description: "test run",
			Duration:    30,
			Date:        "not a date",
		})
		assert.ErrorIs(t, err, errorvalues.ErrInvalidDate)
		assert.Nil(t, exercisesRepo.created)
	})
}

func TestGetLogService(t *testing.T) {
	ctx := context.Background()
	owner := &entity.User{ID: uuid.New(), Username: "fcc_test"}
	exercises := []entity.Exercise{
		{ID: uuid.New(), OwnerID: owner.ID, Description: "test run", Duration: 30, Date: "Sun Jan 15 2023", DateKey: "2023-01-15"},
		{ID: uuid.New(), OwnerID: owner.ID, Description: "swimming", Duration: 45, Date: "Mon Jan 16 2023", DateKey: "2023-01-16"},
	}
	t.Run("unknown user", func(t *testing.T) {
		serv := service.NewTrackerService(&usersRepoMock{err: errorvalues.ErrUserNotFound}, &exercisesRepoMock{})
		_, err := serv.GetLog(ctx, uuid.NewString(), service.LogQuery{})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("projected log with count", func(t *testing.T) {
		serv := service.NewTrackerService(&usersRepoMock{user: owner}, &exercisesRepoMock{exercises: exercises})
		userLog, err := serv.GetLog(ctx, owner.ID.String(), service.LogQuery{})
		require.NoError(t, err)
		assert.Equal(t, owner.ID, userLog.User.ID)
		assert.Equal(t, 2, userLog.Count)
		require.Len(t, userLog.Entries, 2)
		assert.Equal(t, entity.LogEntry{Description: "test run", Duration: 30, Date: "Sun Jan 15 2023"}, userLog.Entries[0])
	})
	t.Run("empty log", func(t *testing.T) {
		serv := service.NewTrackerService(&usersRepoMock{user: owner}, &exercisesRepoMock{})
		userLog, err := serv.GetLog(ctx, owner.ID.String(), service.LogQuery{})
		require.NoError(t, err)
		assert.Equal(t, 0, userLog.Count)
		assert.NotNil(t, userLog.Entries)
	})
	t.Run("range and limit forwarded to store", func(t *testing.T) {
		exercisesRepo := &exercisesRepoMock{exercises: exercises[:1]}
		serv := service.NewTrackerService(&usersRepoMock{user: owner}, exercisesRepo)
		_, err := serv.GetLog(ctx, owner.ID.String(), service.LogQuery{
			From:  "2023-01-15",
			To:    "Mon Jan 16 2023",
			Limit: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, repository.LogFilter{From: "2023-01-15", To: "2023-01-16", Limit: 1}, exercisesRepo.gotFilter)
	})
	t.Run("unparseable range values ignored", func(t *testing.T) {
		exercisesRepo := &exercisesRepoMock{exercises: exercises}
		serv := service.NewTrackerService(&usersRepoMock{user: owner}, exercisesRepo)
		_, err := serv.GetLog(ctx, owner.ID.String(), service.LogQuery{
			From: "yesterday",
			To:   "tomorrow",
		})
		require.NoError(t, err)
		assert.Equal(t, repository.LogFilter{}, exercisesRepo.gotFilter)
	})
}

func TestResetService(t *testing.T) {
	ctx := context.Background()
	usersRepo := &usersRepoMock{}
	exercisesRepo := &exercisesRepoMock{usersAlive: usersRepo}
	serv := service.NewTrackerService(usersRepo, exercisesRepo)
	err := serv.Reset(ctx)
	require.NoError(t, err)
	assert.True(t, usersRepo.deleted)
	assert.True(t, exercisesRepo.deleted)
}
