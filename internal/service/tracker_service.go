package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/lexacus/exercise-tracker/internal/error_values"
	"github.com/lexacus/exercise-tracker/internal/repository"
	"github.com/lexacus/exercise-tracker/pkg/entity"
)

type TrackerService struct {
	usersRepo     repository.UsersRepositoryI
	exercisesRepo repository.ExercisesRepositoryI
}

func NewTrackerService(usersRepo repository.UsersRepositoryI, exercisesRepo repository.ExercisesRepositoryI) *TrackerService {
	if usersRepo == nil || exercisesRepo == nil {
		log.Fatal("on tracker service provided nil repos")
	}
	return &TrackerService{
		usersRepo:     usersRepo,
		exercisesRepo: exercisesRepo,
	}
}

func (ts *TrackerService) CreateUser(ctx context.Context, req *CreateUserRequest) (*entity.User, error) {
	err := validate.Struct(*req)
	if err != nil {
		return nil, errorvalues.ErrInvalidUsername
	}
	user, err := ts.usersRepo.Create(ctx, req.Username)
	if err != nil {
		return nil, errors.New("users repository error: " + err.Error())
	}
	return user, nil
}

func (ts *TrackerService) ListUsers(ctx context.Context) ([]entity.User, error) {
	users, err := ts.usersRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.New("users repository error: " + err.Error())
	}
	return users, nil
}

func (ts *TrackerService) LogExercise(ctx context.Context, userID string, req *LogExerciseRequest) (*LoggedExercise, error) {
	owner, err := ts.findOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	date, dateKey, err := resolveDate(req.Date)
	if err != nil {
		return nil, err
	}
	exercise, err := ts.exercisesRepo.Create(ctx, &entity.Exercise{
		OwnerID:     owner.ID,
		Description: req.Description,
		Duration:    req.Duration,
		Date:        date,
		DateKey:     dateKey,
	})
	if err != nil {
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	return &LoggedExercise{
		User:        *owner,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date,
	}, nil
}

func (ts *TrackerService) GetLog(ctx context.Context, userID string, query LogQuery) (*UserLog, error) {
	owner, err := ts.findOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	filter := repository.LogFilter{
		From: dateKeyOf(query.From),
		To:   dateKeyOf(query.To),
	}
	if query.Limit > 0 {
		filter.Limit = query.Limit
	}
	exercises, err := ts.exercisesRepo.FindByOwner(ctx, owner.ID, filter)
	if err != nil {
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	entries := make([]entity.LogEntry, 0, len(exercises))
	for _, e := range exercises {
		entries = append(entries, entity.LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.Date,
		})
	}
	return &UserLog{
		User:    *owner,
		Count:   len(entries),
		Entries: entries,
	}, nil
}

func (ts *TrackerService) Reset(ctx context.Context) error {
	if err := ts.exercisesRepo.DeleteAll(ctx); err != nil {
		return errors.New("exercises repository error: " + err.Error())
	}
	if err := ts.usersRepo.DeleteAll(ctx); err != nil {
		return errors.New("users repository error: " + err.Error())
	}
	return nil
}

// findOwner resolves the path identifier to a stored user. An id that is
// not a well-formed uuid cannot match any record, so it reports the same
// not-found error the caller maps to the wire.
func (ts *TrackerService) findOwner(ctx context.Context, userID string) (*entity.User, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, errorvalues.ErrUserNotFound
	}
	owner, err := ts.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	return owner, nil
}
