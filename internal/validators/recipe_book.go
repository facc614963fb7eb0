package validators

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-recipe-book/models"
)

const (
	FieldUsername     = "username"
	FieldPassword     = "password"
	FieldTitle        = "title"
	FieldInstructions = "instructions"

	FieldMinutesToComplete = "minutes_to_complete"
)

// MinInstructionsLength is the minimal number of characters of trimmed
// recipe instructions.
const MinInstructionsLength = 50

type RecipeBookValidator struct {
}

func NewRecipeBookValidator() Validator {
	return &RecipeBookValidator{}
}

// Validate checks models.NewUser, models.SignupRequest, models.NewRecipe and
// models.RecipeDraft values. With no fields given every rule of the type is
// applied; otherwise only the named fields are checked.
func (v *RecipeBookValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewUser:
		return v.validateNewUser(value, fields...)
	case *models.NewUser:
		return v.validateNewUser(*value, fields...)

	case models.SignupRequest:
		return v.validateSignupRequest(value, fields...)
	case *models.SignupRequest:
		return v.validateSignupRequest(*value, fields...)

	case models.RecipeDraft:
		return v.validateRecipeDraft(value, fields...)
	case *models.RecipeDraft:
		return v.validateRecipeDraft(*value, fields...)

	case models.NewRecipe:
		return v.validateRecipeDraft(value.RecipeDraft, fields...)
	case *models.NewRecipe:
		return v.validateRecipeDraft(value.RecipeDraft, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RecipeBookValidator) validateNewUser(user models.NewUser, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername}
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			if isBlank(user.Username) {
				return ErrEmptyUsername
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *RecipeBookValidator) validateSignupRequest(req models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			if err := v.validateNewUser(req.Profile(), FieldUsername); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *RecipeBookValidator) validateRecipeDraft(draft models.RecipeDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldInstructions, FieldMinutesToComplete}
	}

	for _, field := range fields {
		switch field {
		case FieldTitle:
			if isBlank(draft.Title) {
				return ErrEmptyTitle
			}
		case FieldInstructions:
			if utf8.RuneCountInString(strings.TrimSpace(draft.Instructions)) < MinInstructionsLength {
				return ErrShortInstructions
			}
		case FieldMinutesToComplete:
			// the column is a 32-bit integer
			if m := draft.MinutesToComplete; m != nil && (*m > math.MaxInt32 || *m < math.MinInt32) {
				return ErrMinutesOutOfRange
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
