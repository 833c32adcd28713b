package api

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"github.com/repset/repset-api/internal/domain"
	"github.com/repset/repset-api/internal/service"
	"github.com/repset/repset-api/internal/service/auth"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockUserService is a testify mock for service.UserService.
type mockUserService struct {
	mock.Mock
}

var _ service.UserService = (*mockUserService)(nil)

func (m *mockUserService) Register(ctx context.Context, email, username, password string) (*domain.User, error) {
	args := m.Called(ctx, email, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserService) UpdateUserEmail(ctx context.Context, userID, newEmail string) error {
	args := m.Called(ctx, userID, newEmail)
	return args.Error(0)
}

func (m *mockUserService) UpdateUserPassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	args := m.Called(ctx, userID, oldPassword, newPassword)
	return args.Error(0)
}

func (m *mockUserService) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// mockJWTService is a testify mock for auth.JWTService.
type mockJWTService struct {
	mock.Mock
}

var _ auth.JWTService = (*mockJWTService)(nil)

func (m *mockJWTService) GenerateToken(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *mockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Claims), args.Error(1)
}

func (m *mockJWTService) GenerateRefreshToken(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *mockJWTService) ValidateRefreshToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Claims), args.Error(1)
}

// mockBodyPartService is a testify mock for service.BodyPartService.
type mockBodyPartService struct {
	mock.Mock
}

var _ service.BodyPartService = (*mockBodyPartService)(nil)

func (m *mockBodyPartService) ListBodyParts(ctx context.Context, userID string) ([]*domain.BodyPart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BodyPart), args.Error(1)
}

func (m *mockBodyPartService) CreateBodyPart(ctx context.Context, userID, name string) (*domain.BodyPart, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BodyPart), args.Error(1)
}

func (m *mockBodyPartService) RenameBodyPart(ctx context.Context, userID string, id int64, name string) (*domain.BodyPart, error) {
	args := m.Called(ctx, userID, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BodyPart), args.Error(1)
}

func (m *mockBodyPartService) DeleteBodyPart(ctx context.Context, userID string, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *mockBodyPartService) DeleteAllBodyParts(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// mockExerciseService is a testify mock for service.ExerciseService.
type mockExerciseService struct {
	mock.Mock
}

var _ service.ExerciseService = (*mockExerciseService)(nil)

func (m *mockExerciseService) ListExercises(ctx context.Context, userID string) ([]*domain.Exercise, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Exercise), args.Error(1)
}

func (m *mockExerciseService) ListExercisesByBodyParts(ctx context.Context, userID string, bodyPartIDs []int64) ([]*domain.Exercise, error) {
	args := m.Called(ctx, userID, bodyPartIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Exercise), args.Error(1)
}

func (m *mockExerciseService) CreateExercise(ctx context.Context, userID, name, description string, bodyPartID int64) (*domain.Exercise, error) {
	args := m.Called(ctx, userID, name, description, bodyPartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exercise), args.Error(1)
}

func (m *mockExerciseService) RenameExercise(ctx context.Context, userID string, id int64, name string) (*domain.Exercise, error) {
	args := m.Called(ctx, userID, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exercise), args.Error(1)
}

func (m *mockExerciseService) DeleteExercise(ctx context.Context, userID string, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *mockExerciseService) DeleteAllExercises(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// mockWorkoutService is a testify mock for service.WorkoutService.
type mockWorkoutService struct {
	mock.Mock
}

var _ service.WorkoutService = (*mockWorkoutService)(nil)

func (m *mockWorkoutService) ListWorkouts(ctx context.Context, userID string) ([]*domain.Workout, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Workout), args.Error(1)
}

func (m *mockWorkoutService) GetWorkoutByDate(ctx context.Context, userID, date string) (*domain.Workout, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workout), args.Error(1)
}

func (m *mockWorkoutService) CreateWorkout(ctx context.Context, userID, date string) (*domain.Workout, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workout), args.Error(1)
}

func (m *mockWorkoutService) CreateOrGetWorkout(ctx context.Context, userID, date string) (*domain.Workout, bool, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Workout), args.Bool(1), args.Error(2)
}

func (m *mockWorkoutService) EndWorkout(ctx context.Context, userID, date string) (*domain.Workout, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workout), args.Error(1)
}

func (m *mockWorkoutService) AddBodyPartsToWorkout(ctx context.Context, userID, date string, names []string) (*domain.Workout, []*domain.BodyPart, error) {
	args := m.Called(ctx, userID, date, names)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Workout), args.Get(1).([]*domain.BodyPart), args.Error(2)
}

func (m *mockWorkoutService) RemoveBodyPartsFromWorkout(ctx context.Context, userID, date string, names []string) (*domain.Workout, []*domain.BodyPart, error) {
	args := m.Called(ctx, userID, date, names)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Workout), args.Get(1).([]*domain.BodyPart), args.Error(2)
}

func (m *mockWorkoutService) ListWorkoutBodyParts(ctx context.Context, userID, date string) ([]*domain.BodyPart, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BodyPart), args.Error(1)
}

func (m *mockWorkoutService) DeleteWorkout(ctx context.Context, userID, date string) error {
	args := m.Called(ctx, userID, date)
	return args.Error(0)
}

func (m *mockWorkoutService) DeleteAllWorkouts(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockWorkoutService) ListExerciseBlocks(ctx context.Context, userID, date string, filter service.BlockFilter) ([]*domain.ExerciseBlock, error) {
	args := m.Called(ctx, userID, date, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ExerciseBlock), args.Error(1)
}

func (m *mockWorkoutService) CreateExerciseBlock(ctx context.Context, userID, date, exerciseName string, sets []service.SetInput) (*domain.ExerciseBlock, bool, error) {
	args := m.Called(ctx, userID, date, exerciseName, sets)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.ExerciseBlock), args.Bool(1), args.Error(2)
}

func (m *mockWorkoutService) UpdateExerciseBlockSets(ctx context.Context, userID, date, exerciseName string, sets []service.SetInput) (*domain.ExerciseBlock, error) {
	args := m.Called(ctx, userID, date, exerciseName, sets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExerciseBlock), args.Error(1)
}

func (m *mockWorkoutService) DeleteExerciseBlock(ctx context.Context, userID, date, exerciseName string) error {
	args := m.Called(ctx, userID, date, exerciseName)
	return args.Error(0)
}

func (m *mockWorkoutService) DeleteAllExerciseBlocks(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockWorkoutService) GetBlockSets(ctx context.Context, userID, date, exerciseName string) ([]domain.Set, error) {
	args := m.Called(ctx, userID, date, exerciseName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Set), args.Error(1)
}

func (m *mockWorkoutService) UpdateSet(ctx context.Context, userID string, setID int64, weight float64, reps int) (domain.Set, error) {
	args := m.Called(ctx, userID, setID, weight, reps)
	return args.Get(0).(domain.Set), args.Error(1)
}

func (m *mockWorkoutService) DeleteSet(ctx context.Context, userID string, setID int64) error {
	args := m.Called(ctx, userID, setID)
	return args.Error(0)
}
