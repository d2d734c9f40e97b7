// Package cohort loads and validates the player cohort for an event.
package cohort

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/yourusername/fairway-edge/internal/models"
	"github.com/yourusername/fairway-edge/internal/odds"
)

// File is the on-disk cohort document
type File struct {
	Event   string           `json:"event"`
	Players []*models.Player `json:"players" validate:"required,min=1,dive,required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("moneyline", func(fl validator.FieldLevel) bool {
		return odds.IsValidAmerican(int(fl.Field().Int()))
	})
	return v
}

// Load reads a cohort file from disk
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cohort file: %w", err)
	}
	defer f.Close()

	file, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("cohort %s: %w", path, err)
	}
	return file, nil
}

// Parse decodes and validates a cohort document. Players without an id get
// one derived from their name.
func Parse(r io.Reader) (*File, error) {
	var file File
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode cohort: %w", err)
	}

	for _, p := range file.Players {
		if p != nil && p.ID == "" && p.Name != "" {
			p.ID = models.StablePlayerID(p.Name)
		}
	}

	if err := Validate(file.Players); err != nil {
		return nil, err
	}
	return &file, nil
}

// Validate checks a cohort for required fields, well formed odds and unique ids
func Validate(players []*models.Player) error {
	if len(players) == 0 {
		return models.ErrEmptyCohort
	}

	if err := validate.Struct(&File{Players: players}); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	seen := make(map[string]int, len(players))
	for i, p := range players {
		if j, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: %q at positions %d and %d", models.ErrDuplicatePlayer, p.ID, j, i)
		}
		seen[p.ID] = i
	}
	return nil
}

func formatValidationErrors(validationErrors validator.ValidationErrors) error {
	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		switch fe.Tag() {
		case "moneyline":
			msgs = append(msgs, fmt.Sprintf("%s: %v", fe.Namespace(), fe.Value()))
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Namespace()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
		}
	}

	err := fmt.Errorf("invalid cohort: %s", strings.Join(msgs, "; "))
	for _, fe := range validationErrors {
		if fe.Tag() == "moneyline" {
			return fmt.Errorf("%w: %s", models.ErrInvalidOdds, err)
		}
	}
	return err
}
