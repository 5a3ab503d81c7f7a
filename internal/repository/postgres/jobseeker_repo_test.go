package postgres_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go-jobseeker-backend/internal/domain"
	"go-jobseeker-backend/internal/repository/postgres"
	"go-jobseeker-backend/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockQuerier records every statement handed to the data access layer.
type MockQuerier struct {
	mock.Mock
}

func (m *MockQuerier) Select(ctx context.Context, dst any, sql string, args ...any) error {
	return m.Called(ctx, dst, sql, args).Error(0)
}

func (m *MockQuerier) Get(ctx context.Context, dst any, sql string, args ...any) error {
	return m.Called(ctx, dst, sql, args).Error(0)
}

func (m *MockQuerier) Exec(ctx context.Context, sql string, args ...any) (database.WriteResult, error) {
	ret := m.Called(ctx, sql, args)
	return ret.Get(0).(database.WriteResult), ret.Error(1)
}

func (m *MockQuerier) Insert(ctx context.Context, sql string, args ...any) (database.WriteResult, error) {
	ret := m.Called(ctx, sql, args)
	return ret.Get(0).(database.WriteResult), ret.Error(1)
}

func (m *MockQuerier) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func sqlContaining(fragment string) any {
	return mock.MatchedBy(func(sql string) bool { return strings.Contains(sql, fragment) })
}

func intPtr(i int) *int { return &i }

func TestJobseekerList(t *testing.T) {
	ctx := context.Background()

	t.Run("Should select all rows without filters", func(t *testing.T) {
		db := new(MockQuerier)
		db.On("Select", ctx, mock.Anything,
			"SELECT id, full_name, email, phone, skills, location, experience_years FROM jobseekers",
			[]any(nil),
		).Return(nil).Run(func(args mock.Arguments) {
			dst := args.Get(1).(*[]domain.Jobseeker)
			*dst = append(*dst, domain.Jobseeker{ID: 1, FullName: "Alice"}, domain.Jobseeker{ID: 2, FullName: "Bob"})
		})

		got, err := postgres.NewJobseekerRepository(db).List(ctx, domain.JobseekerFilter{})
		require.NoError(t, err)
		assert.Len(t, got, 2)
		db.AssertExpectations(t)
	})

	t.Run("Should bind every filter in order", func(t *testing.T) {
		db := new(MockQuerier)
		db.On("Select", ctx, mock.Anything,
			"SELECT id, full_name, email, phone, skills, location, experience_years FROM jobseekers"+
				" WHERE full_name LIKE $1 AND skills LIKE $2 AND location = $3"+
				" AND experience_years >= $4 AND experience_years <= $5",
			[]any{"%Ali%", "%Go%", "NYC", 1, 5},
		).Return(nil)

		filter := domain.JobseekerFilter{Name: "Ali", Skill: "Go", Location: "NYC", MinExp: intPtr(1), MaxExp: intPtr(5)}
		got, err := postgres.NewJobseekerRepository(db).List(ctx, filter)
		require.NoError(t, err)
		assert.NotNil(t, got, "empty result must be a non-nil slice")
		assert.Empty(t, got)
		db.AssertExpectations(t)
	})

	t.Run("Should keep the experience bound of zero", func(t *testing.T) {
		db := new(MockQuerier)
		db.On("Select", ctx, mock.Anything, sqlContaining("WHERE experience_years >= $1"), []any{0}).Return(nil)

		_, err := postgres.NewJobseekerRepository(db).List(ctx, domain.JobseekerFilter{MinExp: intPtr(0)})
		require.NoError(t, err)
		db.AssertExpectations(t)
	})

	t.Run("Should return no partial rows on failure", func(t *testing.T) {
		db := new(MockQuerier)
		db.On("Select", ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("conn reset"))

		got, err := postgres.NewJobseekerRepository(db).List(ctx, domain.JobseekerFilter{})
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestJobseekerGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Should map no rows to ErrNotFound", func(t *testing.T) {
		db := new(MockQuerier)
		db.On("Get", ctx, mock.Anything, sqlContaining("WHERE id = $1"), []any{int64(99)}).Return(database.ErrNoRows)

		got, err := postgres.NewJobseekerRepository(db).GetByID(ctx, 99)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Should return the scanned row", func(t *testing.T) {
		db := new(MockQuerier)
		db.On("Get", ctx, mock.Anything, mock.Anything, []any{int64(1)}).Return(nil).Run(func(args mock.Arguments) {
			dst := args.Get(1).(*domain.Jobseeker)
			*dst = domain.Jobseeker{ID: 1, FullName: "Alice", Email: "alice@example.com"}
		})

		got, err := postgres.NewJobseekerRepository(db).GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", got.Email)
	})
}

func TestJobseekerCreate(t *testing.T) {
	ctx := context.Background()
	skills := "Go,SQL"
	js := &domain.Jobseeker{FullName: "Alice", Email: "alice@example.com", Skills: &skills, ExperienceYears: 3}

	t.Run("Should insert with bound values and keep the generated id", func(t *testing.T) {
		db := new(MockQuerier)
		id := int64(17)
		db.On("Insert", ctx, sqlContaining("RETURNING id"),
			[]any{"Alice", "alice@example.com", (*string)(nil), &skills, (*string)(nil), 3},
		).Return(database.WriteResult{AffectedRows: 1, InsertID: &id}, nil)

		got, err := postgres.NewJobseekerRepository(db).Create(ctx, js)
		require.NoError(t, err)
		assert.Equal(t, int64(17), got)
		assert.Equal(t, int64(17), js.ID)
	})

	t.Run("Should translate a unique violation", func(t *testing.T) {
		db := new(MockQuerier)
		db.On("Insert", ctx, mock.Anything, mock.Anything).
			Return(database.WriteResult{}, &pgconn.PgError{Code: "23505", ConstraintName: "jobseekers_email_key"})

		_, err := postgres.NewJobseekerRepository(db).Create(ctx, js)
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})

	t.Run("Should not treat other unique constraints as a duplicate email", func(t *testing.T) {
		db := new(MockQuerier)
		db.On("Insert", ctx, mock.Anything, mock.Anything).
			Return(database.WriteResult{}, &pgconn.PgError{Code: "23505", ConstraintName: "jobseekers_pkey"})

		_, err := postgres.NewJobseekerRepository(db).Create(ctx, js)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrDuplicateEmail)
	})

	t.Run("Should pass other errors through", func(t *testing.T) {
		db := new(MockQuerier)
		cause := errors.New("disk full")
		db.On("Insert", ctx, mock.Anything, mock.Anything).Return(database.WriteResult{}, cause)

		_, err := postgres.NewJobseekerRepository(db).Create(ctx, js)
		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, domain.ErrDuplicateEmail)
	})
}

func TestJobseekerUpdate(t *testing.T) {
	ctx := context.Background()
	js := &domain.Jobseeker{ID: 5, FullName: "Alice", Email: "alice@example.com", ExperienceYears: 4}

	t.Run("Should rewrite every column including nulls", func(t *testing.T) {
		db := new(MockQuerier)
		db.On("Exec", ctx, sqlContaining("UPDATE jobseekers SET"),
			[]any{int64(5), "Alice", "alice@example.com", (*string)(nil), (*string)(nil), (*string)(nil), 4},
		).Return(database.WriteResult{AffectedRows: 1}, nil)

		require.NoError(t, postgres.NewJobseekerRepository(db).Update(ctx, js))
		db.AssertExpectations(t)
	})

	t.Run("Should report zero affected rows as not found", func(t *testing.T) {
		db := new(MockQuerier)
		db.On("Exec", ctx, mock.Anything, mock.Anything).Return(database.WriteResult{AffectedRows: 0}, nil)

		assert.ErrorIs(t, postgres.NewJobseekerRepository(db).Update(ctx, js), domain.ErrNotFound)
	})

	t.Run("Should translate a unique violation", func(t *testing.T) {
		db := new(MockQuerier)
		db.On("Exec", ctx, mock.Anything, mock.Anything).
			Return(database.WriteResult{}, &pgconn.PgError{Code: "23505", ConstraintName: "jobseekers_email_key"})

		assert.ErrorIs(t, postgres.NewJobseekerRepository(db).Update(ctx, js), domain.ErrDuplicateEmail)
	})
}

func TestJobseekerDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Should delete by id", func(t *testing.T) {
		db := new(MockQuerier)
		db.On("Exec", ctx, "DELETE FROM jobseekers WHERE id = $1", []any{int64(3)}).
			Return(database.WriteResult{AffectedRows: 1}, nil)

		require.NoError(t, postgres.NewJobseekerRepository(db).Delete(ctx, 3))
	})

	t.Run("Should report zero affected rows as not found", func(t *testing.T) {
		db := new(MockQuerier)
		db.On("Exec", ctx, mock.Anything, mock.Anything).Return(database.WriteResult{}, nil)

		assert.ErrorIs(t, postgres.NewJobseekerRepository(db).Delete(ctx, 3), domain.ErrNotFound)
	})
}
