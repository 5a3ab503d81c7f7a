package domain

import (
	"context"
	"errors"
)

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// Jobseeker is a candidate profile row in the jobseekers table.
type Jobseeker struct {
	ID              int64   `json:"id" db:"id"`
	FullName        string  `json:"fullName" db:"full_name"`
	Email           string  `json:"email" db:"email"`
	Phone           *string `json:"phone" db:"phone"`
	Skills          *string `json:"skills" db:"skills"` // comma-delimited
	Location        *string `json:"location" db:"location"`
	ExperienceYears int     `json:"experienceYears" db:"experience_years"`
}

// JobseekerInput is the body of both create and update. Update applies it as a
// full replacement: omitted optional fields are cleared, not kept.
type JobseekerInput struct {
	FullName        string  `json:"fullName" validate:"required"`
	Email           string  `json:"email" validate:"required"`
	Phone           string  `json:"phone"`
	Skills          string  `json:"skills"`
	Location        string  `json:"location"`
	ExperienceYears FlexInt `json:"experienceYears"`
}

// ToJobseeker applies the storage defaults: empty optional strings become NULL
// and experienceYears falls back to 0.
func (in *JobseekerInput) ToJobseeker(id int64) *Jobseeker {
	return &Jobseeker{
		ID:              id,
		FullName:        in.FullName,
		Email:           in.Email,
		Phone:           nullable(in.Phone),
		Skills:          nullable(in.Skills),
		Location:        nullable(in.Location),
		ExperienceYears: int(in.ExperienceYears),
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// JobseekerFilter narrows a list query. Zero values impose no constraint.
type JobseekerFilter struct {
	Name     string // substring of full_name
	Skill    string // substring of skills
	Location string // exact match
	MinExp   *int   // inclusive
	MaxExp   *int   // inclusive
}

type JobseekerRepository interface {
	List(ctx context.Context, filter JobseekerFilter) ([]Jobseeker, error)
	GetByID(ctx context.Context, id int64) (*Jobseeker, error)
	Create(ctx context.Context, js *Jobseeker) (int64, error)
	Update(ctx context.Context, js *Jobseeker) error
	Delete(ctx context.Context, id int64) error
}

type JobseekerUsecase interface {
	ListJobseekers(ctx context.Context, filter JobseekerFilter) ([]Jobseeker, error)
	GetJobseeker(ctx context.Context, id int64) (*Jobseeker, error)
	CreateJobseeker(ctx context.Context, input *JobseekerInput) (*Jobseeker, error)
	UpdateJobseeker(ctx context.Context, id int64, input *JobseekerInput) error
	DeleteJobseeker(ctx context.Context, id int64) error
}
