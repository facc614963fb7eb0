package validators

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/MKhiriev/go-recipe-book/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 54 characters once trimmed
var longInstructions = strings.Repeat("stir ", 11)

func TestRecipeBookValidator_NewUser(t *testing.T) {
	v := NewRecipeBookValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		user    models.NewUser
		wantErr error
	}{
		{name: "valid", user: models.NewUser{Username: "ana"}},
		{name: "valid with surrounding spaces", user: models.NewUser{Username: "  ana "}},
		{name: "empty", user: models.NewUser{Username: ""}, wantErr: ErrEmptyUsername},
		{name: "whitespace only", user: models.NewUser{Username: " \t\n "}, wantErr: ErrEmptyUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.user)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)

			// pointer variant behaves the same
			require.ErrorIs(t, v.Validate(ctx, &tt.user), tt.wantErr)
		})
	}
}

func TestRecipeBookValidator_SignupRequest(t *testing.T) {
	v := NewRecipeBookValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.SignupRequest
		wantErr error
	}{
		{name: "valid", req: models.SignupRequest{Username: "ana", Password: "secret"}},
		{name: "missing username", req: models.SignupRequest{Password: "secret"}, wantErr: ErrEmptyUsername},
		{name: "missing password", req: models.SignupRequest{Username: "ana"}, wantErr: ErrEmptyPassword},
		{name: "both missing reports username first", req: models.SignupRequest{}, wantErr: ErrEmptyUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecipeBookValidator_RecipeDraft(t *testing.T) {
	v := NewRecipeBookValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		draft   models.RecipeDraft
		wantErr error
	}{
		{
			name:  "valid",
			draft: models.RecipeDraft{Title: "Soup", Instructions: longInstructions},
		},
		{
			name:    "blank title",
			draft:   models.RecipeDraft{Title: "   ", Instructions: longInstructions},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "exactly 49 characters",
			draft:   models.RecipeDraft{Title: "Soup", Instructions: strings.Repeat("a", 49)},
			wantErr: ErrShortInstructions,
		},
		{
			name:  "exactly 50 characters",
			draft: models.RecipeDraft{Title: "Soup", Instructions: strings.Repeat("a", 50)},
		},
		{
			name:    "padding does not count",
			draft:   models.RecipeDraft{Title: "Soup", Instructions: "   " + strings.Repeat("a", 49) + "\n\t "},
			wantErr: ErrShortInstructions,
		},
		{
			name:  "characters not bytes",
			draft: models.RecipeDraft{Title: "Суп", Instructions: strings.Repeat("щ", 50)},
		},
		{
			name:    "multibyte short instructions",
			draft:   models.RecipeDraft{Title: "Суп", Instructions: strings.Repeat("щ", 30)},
			wantErr: ErrShortInstructions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.draft)
			if tt.wantErr == nil {
				require.NoError(t, err)
				require.NoError(t, v.Validate(ctx, tt.draft.OwnedBy(1)))
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorIs(t, v.Validate(ctx, tt.draft.OwnedBy(1)), tt.wantErr)
		})
	}
}

func TestRecipeBookValidator_MinutesToComplete(t *testing.T) {
	v := NewRecipeBookValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		minutes *int
		wantErr error
	}{
		{name: "not set"},
		{name: "usual", minutes: ptr(45)},
		{name: "largest 32-bit value", minutes: ptr(math.MaxInt32)},
		{name: "smallest 32-bit value", minutes: ptr(math.MinInt32)},
		{name: "too large", minutes: ptr(3_000_000_000), wantErr: ErrMinutesOutOfRange},
		{name: "too small", minutes: ptr(math.MinInt32 - 1), wantErr: ErrMinutesOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := models.RecipeDraft{Title: "Soup", Instructions: longInstructions, MinutesToComplete: tt.minutes}

			err := v.Validate(ctx, draft)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
			require.ErrorIs(t, v.Validate(ctx, draft.OwnedBy(1)), tt.wantErr)
			require.ErrorIs(t, v.Validate(ctx, draft, FieldMinutesToComplete), tt.wantErr)
		})
	}
}

func ptr(i int) *int { return &i }

func TestRecipeBookValidator_FieldScoping(t *testing.T) {
	v := NewRecipeBookValidator()
	ctx := context.Background()

	draft := models.RecipeDraft{Title: "", Instructions: longInstructions}

	require.NoError(t, v.Validate(ctx, draft, FieldInstructions))
	require.NoError(t, v.Validate(ctx, draft, FieldInstructions, FieldMinutesToComplete))
	require.ErrorIs(t, v.Validate(ctx, draft, FieldTitle), ErrEmptyTitle)
	require.ErrorIs(t, v.Validate(ctx, draft, "calories"), ErrUnknownField)
}

func TestRecipeBookValidator_UnsupportedType(t *testing.T) {
	v := NewRecipeBookValidator()

	err := v.Validate(context.Background(), 42)
	require.ErrorIs(t, err, ErrUnsupportedType)
	assert.False(t, errors.Is(err, ErrValidation))
}

func TestFieldError_Message(t *testing.T) {
	assert.Equal(t, "Instructions must be at least 50 characters long", ErrShortInstructions.Error())
	assert.Equal(t, FieldInstructions, ErrShortInstructions.Field)

	var fieldErr *FieldError
	require.True(t, errors.As(ErrEmptyTitle, &fieldErr))
	assert.Equal(t, FieldTitle, fieldErr.Field)
}
