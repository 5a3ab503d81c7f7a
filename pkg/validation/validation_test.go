package validation_test

import (
	"errors"
	"testing"

	"go-jobseeker-backend/internal/domain"
	"go-jobseeker-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	FullName string `json:"fullName" validate:"required"`
	Nickname string `json:"nickname" validate:"omitempty,min=3"`
}

func TestJobseekerInputOnlyRequiresNameAndEmail(t *testing.T) {
	v := validation.New()

	accepted := []domain.JobseekerInput{
		{FullName: "A", Email: "a@x.io"},
		{FullName: "A", Email: "a@x.io", Phone: "12345"},
		{FullName: "A", Email: "a@x.io", Phone: "ext. 42"},
		{FullName: "A", Email: "a@x.io", ExperienceYears: 150},
		{FullName: "A", Email: "a@x.io", ExperienceYears: -1},
		{FullName: "A", Email: "not-an-email", Location: string(make([]byte, 500))},
	}
	for _, in := range accepted {
		assert.NoError(t, v.Struct(in), "%+v", in)
	}

	err := v.Struct(domain.JobseekerInput{Phone: "555"})
	require.Error(t, err)
	assert.True(t, validation.HasMissingRequired(err))
	assert.ElementsMatch(t, []string{"Full name is required", "Email is required"}, validation.FormatValidationErrors(err))
}

func TestFormatUsesJSONFieldNames(t *testing.T) {
	v := validation.New()

	err := v.Struct(sample{FullName: "Alice", Nickname: "ab"})
	require.Error(t, err)
	assert.False(t, validation.HasMissingRequired(err))
	assert.Equal(t, "nickname failed validation (min=3)", validation.Message(err))
}

func TestFormatNonValidationError(t *testing.T) {
	assert.Equal(t, []string{"boom"}, validation.FormatValidationErrors(errors.New("boom")))
	assert.False(t, validation.HasMissingRequired(errors.New("boom")))
}
