package postgres

import (
	"context"
	"errors"

	"go-jobseeker-backend/internal/domain"
	"go-jobseeker-backend/pkg/database"
	"go-jobseeker-backend/pkg/sqlbuilder"
)

const jobseekerColumns = `id, full_name, email, phone, skills, location, experience_years`

type jobseekerRepo struct {
	db database.Querier
}

func NewJobseekerRepository(db database.Querier) domain.JobseekerRepository {
	return &jobseekerRepo{db: db}
}

// List returns every row matching the filter in the store's natural order.
func (r *jobseekerRepo) List(ctx context.Context, filter domain.JobseekerFilter) ([]domain.Jobseeker, error) {
	where := sqlbuilder.NewWhere().
		AndIf(filter.Name != "", `full_name LIKE ?`, sqlbuilder.Contains(filter.Name)).
		AndIf(filter.Skill != "", `skills LIKE ?`, sqlbuilder.Contains(filter.Skill)).
		AndIf(filter.Location != "", `location = ?`, filter.Location)
	if filter.MinExp != nil {
		where.And(`experience_years >= ?`, *filter.MinExp)
	}
	if filter.MaxExp != nil {
		where.And(`experience_years <= ?`, *filter.MaxExp)
	}

	clause, args := where.Build(1)
	query := `SELECT ` + jobseekerColumns + ` FROM jobseekers` + clause

	jobseekers := []domain.Jobseeker{}
	if err := r.db.Select(ctx, &jobseekers, query, args...); err != nil {
		return nil, err
	}
	return jobseekers, nil
}

func (r *jobseekerRepo) GetByID(ctx context.Context, id int64) (*domain.Jobseeker, error) {
	query := `SELECT ` + jobseekerColumns + ` FROM jobseekers WHERE id = $1`

	var js domain.Jobseeker
	if err := r.db.Get(ctx, &js, query, id); err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &js, nil
}

func (r *jobseekerRepo) Create(ctx context.Context, js *domain.Jobseeker) (int64, error) {
	query := `INSERT INTO jobseekers (full_name, email, phone, skills, location, experience_years)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	res, err := r.db.Insert(ctx, query,
		js.FullName, js.Email, js.Phone, js.Skills, js.Location, js.ExperienceYears,
	)
	if err != nil {
		if isDuplicateEmail(err) {
			return 0, domain.ErrDuplicateEmail
		}
		return 0, err
	}
	js.ID = *res.InsertID
	return js.ID, nil
}

// Update overwrites every column. Zero affected rows is reported as ErrNotFound.
func (r *jobseekerRepo) Update(ctx context.Context, js *domain.Jobseeker) error {
	query := `UPDATE jobseekers SET
		full_name = $2,
		email = $3,
		phone = $4,
		skills = $5,
		location = $6,
		experience_years = $7
	WHERE id = $1`

	res, err := r.db.Exec(ctx, query,
		js.ID, js.FullName, js.Email, js.Phone, js.Skills, js.Location, js.ExperienceYears,
	)
	if err != nil {
		if isDuplicateEmail(err) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	if res.AffectedRows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobseekerRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM jobseekers WHERE id = $1`
	res, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if res.AffectedRows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// emailUniqueConstraint is declared in pkg/database/schema.sql.
const emailUniqueConstraint = "jobseekers_email_key"

// isDuplicateEmail matches only the email constraint; other unique
// violations (such as the primary key) stay internal errors.
func isDuplicateEmail(err error) bool {
	return database.IsUniqueViolation(err) && database.ConstraintName(err) == emailUniqueConstraint
}
