package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/repset/repset-api/internal/domain"
	"github.com/repset/repset-api/internal/store"
)

// passthroughTxRunner runs the function directly with a nil transaction.
// The mock stores ignore the transaction handle, so services under test
// exercise their transactional flow without a database.
func passthroughTxRunner(ctx context.Context, fn store.TxFn) error {
	return fn(ctx, nil)
}

// mockUserStore is a testify mock for store.UserStore.
type mockUserStore struct {
	mock.Mock
}

var _ store.UserStore = (*mockUserStore)(nil)

func (m *mockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserStore) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}

// mockBodyPartStore is a testify mock for store.BodyPartStore.
type mockBodyPartStore struct {
	mock.Mock
}

var _ store.BodyPartStore = (*mockBodyPartStore)(nil)

func (m *mockBodyPartStore) Create(ctx context.Context, userID, name string) (*domain.BodyPart, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BodyPart), args.Error(1)
}

func (m *mockBodyPartStore) GetByID(ctx context.Context, id int64, userID string) (*domain.BodyPart, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BodyPart), args.Error(1)
}

func (m *mockBodyPartStore) GetByName(ctx context.Context, userID, name string) (*domain.BodyPart, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BodyPart), args.Error(1)
}

func (m *mockBodyPartStore) List(ctx context.Context, userID string) ([]*domain.BodyPart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BodyPart), args.Error(1)
}

func (m *mockBodyPartStore) UpdateName(ctx context.Context, id int64, userID, name string) (*domain.BodyPart, error) {
	args := m.Called(ctx, id, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BodyPart), args.Error(1)
}

func (m *mockBodyPartStore) Delete(ctx context.Context, id int64, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *mockBodyPartStore) DeleteAll(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockBodyPartStore) WithTx(tx *sql.Tx) store.BodyPartStore {
	return m
}

// mockExerciseStore is a testify mock for store.ExerciseStore.
type mockExerciseStore struct {
	mock.Mock
}

var _ store.ExerciseStore = (*mockExerciseStore)(nil)

func (m *mockExerciseStore) Create(ctx context.Context, userID, name, description string, bodyPartID int64) (*domain.Exercise, error) {
	args := m.Called(ctx, userID, name, description, bodyPartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exercise), args.Error(1)
}

func (m *mockExerciseStore) GetByID(ctx context.Context, id int64, userID string) (*domain.Exercise, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exercise), args.Error(1)
}

func (m *mockExerciseStore) GetByName(ctx context.Context, userID, name string) (*domain.Exercise, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exercise), args.Error(1)
}

func (m *mockExerciseStore) List(ctx context.Context, userID string) ([]*domain.Exercise, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Exercise), args.Error(1)
}

func (m *mockExerciseStore) ListByBodyPartIDs(ctx context.Context, userID string, bodyPartIDs []int64) ([]*domain.Exercise, error) {
	args := m.Called(ctx, userID, bodyPartIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Exercise), args.Error(1)
}

func (m *mockExerciseStore) UpdateName(ctx context.Context, id int64, userID, name string) (*domain.Exercise, error) {
	args := m.Called(ctx, id, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exercise), args.Error(1)
}

func (m *mockExerciseStore) Delete(ctx context.Context, id int64, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *mockExerciseStore) DeleteAll(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockExerciseStore) WithTx(tx *sql.Tx) store.ExerciseStore {
	return m
}

// mockWorkoutStore is a testify mock for store.WorkoutStore.
type mockWorkoutStore struct {
	mock.Mock
}

var _ store.WorkoutStore = (*mockWorkoutStore)(nil)

func (m *mockWorkoutStore) Create(ctx context.Context, userID, date string, startTime time.Time) (*domain.Workout, error) {
	args := m.Called(ctx, userID, date, startTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workout), args.Error(1)
}

func (m *mockWorkoutStore) GetByID(ctx context.Context, id int64, userID string) (*domain.Workout, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workout), args.Error(1)
}

func (m *mockWorkoutStore) GetByDate(ctx context.Context, userID, date string) (*domain.Workout, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workout), args.Error(1)
}

func (m *mockWorkoutStore) List(ctx context.Context, userID string) ([]*domain.Workout, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Workout), args.Error(1)
}

func (m *mockWorkoutStore) SetEndTime(ctx context.Context, id int64, userID string, endTime time.Time) (*domain.Workout, error) {
	args := m.Called(ctx, id, userID, endTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workout), args.Error(1)
}

func (m *mockWorkoutStore) DeleteByDate(ctx context.Context, userID, date string) error {
	args := m.Called(ctx, userID, date)
	return args.Error(0)
}

func (m *mockWorkoutStore) DeleteAll(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockWorkoutStore) AddBodyParts(ctx context.Context, workoutID int64, bodyPartIDs []int64) error {
	args := m.Called(ctx, workoutID, bodyPartIDs)
	return args.Error(0)
}

func (m *mockWorkoutStore) RemoveBodyParts(ctx context.Context, workoutID int64, bodyPartIDs []int64) error {
	args := m.Called(ctx, workoutID, bodyPartIDs)
	return args.Error(0)
}

func (m *mockWorkoutStore) ListBodyParts(ctx context.Context, workoutID int64) ([]*domain.BodyPart, error) {
	args := m.Called(ctx, workoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BodyPart), args.Error(1)
}

func (m *mockWorkoutStore) WithTx(tx *sql.Tx) store.WorkoutStore {
	return m
}

// mockBlockStore is a testify mock for store.ExerciseBlockStore.
type mockBlockStore struct {
	mock.Mock
}

var _ store.ExerciseBlockStore = (*mockBlockStore)(nil)

func (m *mockBlockStore) Create(ctx context.Context, userID string, workoutID, exerciseID int64) (*domain.ExerciseBlock, error) {
	args := m.Called(ctx, userID, workoutID, exerciseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExerciseBlock), args.Error(1)
}

func (m *mockBlockStore) GetByWorkoutAndExercise(ctx context.Context, userID string, workoutID, exerciseID int64) (*domain.ExerciseBlock, error) {
	args := m.Called(ctx, userID, workoutID, exerciseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExerciseBlock), args.Error(1)
}

func (m *mockBlockStore) ListByWorkout(ctx context.Context, userID string, workoutID int64) ([]*domain.ExerciseBlock, error) {
	args := m.Called(ctx, userID, workoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ExerciseBlock), args.Error(1)
}

func (m *mockBlockStore) ListByWorkoutAndExercises(ctx context.Context, userID string, workoutID int64, exerciseIDs []int64) ([]*domain.ExerciseBlock, error) {
	args := m.Called(ctx, userID, workoutID, exerciseIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ExerciseBlock), args.Error(1)
}

func (m *mockBlockStore) Delete(ctx context.Context, id int64, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *mockBlockStore) DeleteByWorkoutAndExercise(ctx context.Context, userID string, workoutID, exerciseID int64) error {
	args := m.Called(ctx, userID, workoutID, exerciseID)
	return args.Error(0)
}

func (m *mockBlockStore) DeleteAll(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockBlockStore) WithTx(tx *sql.Tx) store.ExerciseBlockStore {
	return m
}

// mockSetStore is a testify mock for store.SetStore.
type mockSetStore struct {
	mock.Mock
}

var _ store.SetStore = (*mockSetStore)(nil)

func (m *mockSetStore) Create(ctx context.Context, set domain.Set) (domain.Set, error) {
	args := m.Called(ctx, set)
	return args.Get(0).(domain.Set), args.Error(1)
}

func (m *mockSetStore) GetByID(ctx context.Context, id int64, userID string) (domain.Set, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(domain.Set), args.Error(1)
}

func (m *mockSetStore) ListByBlock(ctx context.Context, exerciseBlockID int64) ([]domain.Set, error) {
	args := m.Called(ctx, exerciseBlockID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Set), args.Error(1)
}

func (m *mockSetStore) GetByBlockAndReps(ctx context.Context, exerciseBlockID int64, reps int) (domain.Set, error) {
	args := m.Called(ctx, exerciseBlockID, reps)
	return args.Get(0).(domain.Set), args.Error(1)
}

func (m *mockSetStore) Update(ctx context.Context, id int64, weight float64, reps int) (domain.Set, error) {
	args := m.Called(ctx, id, weight, reps)
	return args.Get(0).(domain.Set), args.Error(1)
}

func (m *mockSetStore) UpdateNumber(ctx context.Context, id int64, setNumber int) error {
	args := m.Called(ctx, id, setNumber)
	return args.Error(0)
}

func (m *mockSetStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockSetStore) WithTx(tx *sql.Tx) store.SetStore {
	return m
}

// mockHasher is a testify mock for auth.PasswordHasher.
type mockHasher struct {
	mock.Mock
}

func (m *mockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

// mockVerifier is a testify mock for auth.PasswordVerifier.
type mockVerifier struct {
	mock.Mock
}

func (m *mockVerifier) Compare(hashedPassword, password string) error {
	args := m.Called(hashedPassword, password)
	return args.Error(0)
}
