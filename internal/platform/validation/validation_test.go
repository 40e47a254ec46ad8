package validation

import (
	"errors"
	"testing"

	"pet-shelter/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Name   string   `json:"name" validate:"required"`
	Email  string   `json:"email" validate:"required,email"`
	Age    int      `json:"age" validate:"gt=0"`
	Intake string   `json:"intake_date" validate:"omitempty,calendar_date"`
	Kind   string   `json:"kind" validate:"omitempty,sample_kind"`
	Tags   []string `json:"tags" validate:"dive,sample_kind"`
}

func TestStruct_CollectsFieldErrors(t *testing.T) {
	v := New()
	v.RegisterSet("sample_kind", []string{"Meet & Greet", "Walking"})

	err := v.Struct(sampleInput{
		Email:  "not-an-email",
		Age:    0,
		Intake: "2024/01/01",
		Kind:   "Swimming",
		Tags:   []string{"Walking", "Nope"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	var ve *apperr.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "is required", ve.Fields["name"])
	assert.Equal(t, "must be a valid email", ve.Fields["email"])
	assert.Equal(t, "must be greater than 0", ve.Fields["age"])
	assert.Equal(t, "must be YYYY-MM-DD", ve.Fields["intake_date"])
	assert.Equal(t, "must be one of: Meet & Greet, Walking", ve.Fields["kind"])
	assert.Contains(t, ve.Fields, "tags[1]")
}

func TestStruct_AcceptsValues(t *testing.T) {
	v := New()
	v.RegisterSet("sample_kind", []string{"Meet & Greet", "Walking"})

	err := v.Struct(sampleInput{
		Name:   "Buddy",
		Email:  "john@example.com",
		Age:    2,
		Intake: "2024-01-15",
		Kind:   "Meet & Greet",
	})
	assert.NoError(t, err)
}
