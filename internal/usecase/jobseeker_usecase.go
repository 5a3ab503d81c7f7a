package usecase

import (
	"context"
	"errors"

	"go-jobseeker-backend/internal/domain"
	"go-jobseeker-backend/pkg/apperror"
	"go-jobseeker-backend/pkg/metrics"
	"go-jobseeker-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// Client-facing messages. Store failures never leak their cause.
const (
	msgMissingFields = "Missing required fields"
	msgNotFound      = "Jobseeker not found"
	msgDuplicate     = "Email already exists"
	msgFetchList     = "Failed to fetch jobseekers"
	msgFetchOne      = "Failed to fetch jobseeker"
	msgCreate        = "Failed to create jobseeker"
	msgUpdate        = "Failed to update jobseeker"
	msgDelete        = "Failed to delete jobseeker"
)

type jobseekerUsecase struct {
	repo     domain.JobseekerRepository
	validate *validator.Validate
}

func NewJobseekerUsecase(repo domain.JobseekerRepository, validate *validator.Validate) domain.JobseekerUsecase {
	if validate == nil {
		validate = validation.New()
	}
	return &jobseekerUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *jobseekerUsecase) ListJobseekers(ctx context.Context, filter domain.JobseekerFilter) ([]domain.Jobseeker, error) {
	jobseekers, err := u.repo.List(ctx, filter)
	if err != nil {
		metrics.ObserveOp("list", metrics.OutcomeError)
		return nil, apperror.InternalMsg(msgFetchList, err)
	}
	metrics.ObserveOp("list", metrics.OutcomeOK)
	return jobseekers, nil
}

func (u *jobseekerUsecase) GetJobseeker(ctx context.Context, id int64) (*domain.Jobseeker, error) {
	js, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, u.translate("get", err, msgFetchOne)
	}
	metrics.ObserveOp("get", metrics.OutcomeOK)
	return js, nil
}

func (u *jobseekerUsecase) CreateJobseeker(ctx context.Context, input *domain.JobseekerInput) (*domain.Jobseeker, error) {
	if err := u.validateInput(input); err != nil {
		metrics.ObserveOp("create", metrics.OutcomeInvalid)
		return nil, err
	}

	js := input.ToJobseeker(0)
	if _, err := u.repo.Create(ctx, js); err != nil {
		return nil, u.translate("create", err, msgCreate)
	}
	metrics.ObserveOp("create", metrics.OutcomeOK)
	return js, nil
}

// UpdateJobseeker replaces the whole row. Optional fields missing from input
// are stored as NULL and experienceYears as 0; nothing is merged with the
// existing record.
func (u *jobseekerUsecase) UpdateJobseeker(ctx context.Context, id int64, input *domain.JobseekerInput) error {
	if err := u.validateInput(input); err != nil {
		metrics.ObserveOp("update", metrics.OutcomeInvalid)
		return err
	}

	if err := u.repo.Update(ctx, input.ToJobseeker(id)); err != nil {
		return u.translate("update", err, msgUpdate)
	}
	metrics.ObserveOp("update", metrics.OutcomeOK)
	return nil
}

func (u *jobseekerUsecase) DeleteJobseeker(ctx context.Context, id int64) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return u.translate("delete", err, msgDelete)
	}
	metrics.ObserveOp("delete", metrics.OutcomeOK)
	return nil
}

func (u *jobseekerUsecase) validateInput(input *domain.JobseekerInput) error {
	if input == nil {
		return apperror.BadRequest(msgMissingFields)
	}
	if err := u.validate.Struct(input); err != nil {
		if validation.HasMissingRequired(err) {
			return apperror.BadRequest(msgMissingFields)
		}
		return apperror.BadRequest(validation.Message(err))
	}
	return nil
}

// translate maps repository sentinels onto the API error taxonomy.
func (u *jobseekerUsecase) translate(op string, err error, internalMsg string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		metrics.ObserveOp(op, metrics.OutcomeNotFound)
		return apperror.NotFound(msgNotFound)
	case errors.Is(err, domain.ErrDuplicateEmail):
		metrics.ObserveOp(op, metrics.OutcomeConflict)
		return apperror.Conflict(msgDuplicate)
	default:
		metrics.ObserveOp(op, metrics.OutcomeError)
		return apperror.InternalMsg(internalMsg, err)
	}
}
