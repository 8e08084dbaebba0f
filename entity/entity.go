// Package entity defines the record that flows from ingestion into the graph
// builder: an identifier, a group label and a numeric feature vector.
package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid is returned (wrapped) when an Entity fails validation.
var ErrInvalid = errors.New("entity: invalid record")

var validate = validator.New()

// Entity is one analyzed unit, e.g. a team-season.
// It is treated as immutable once constructed.
type Entity struct {
	// ID uniquely identifies the entity within one run; it becomes the vertex ID.
	ID string `json:"id" yaml:"id" validate:"required"`

	// Group is the cohort label (e.g. the season).
	Group string `json:"group" yaml:"group"`

	// Features is the ordered numeric vector compared by cosine similarity.
	Features []float64 `json:"features" yaml:"features" validate:"required,min=1"`
}

// Dim returns the feature-vector length.
func (e Entity) Dim() int { return len(e.Features) }

// IsZero reports whether every feature is exactly zero (or there are none).
func (e Entity) IsZero() bool {
	for _, x := range e.Features {
		if x != 0 {
			return false
		}
	}

	return true
}

// Validate checks the struct tags and wraps failures with ErrInvalid.
func (e Entity) Validate() error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, formatValidationError(err))
	}

	return nil
}

// formatValidationError flattens validator errors into one readable line.
func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must have at least %s values", field, fe.Param()))
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}

	return strings.Join(msgs, "; ")
}
