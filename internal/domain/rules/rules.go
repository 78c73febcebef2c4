// Package rules holds the field level checks shared by the portfolio entities.
// Every check is pure and reports failures keyed by the JSON field name.
package rules

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidRange     = errors.New("invalid range")
	ErrConflictingState = errors.New("conflicting state")
	ErrOutOfRange       = errors.New("out of range")
	ErrRequired         = errors.New("required")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidChoice    = errors.New("invalid choice")
)

type FieldError struct {
	Field   string
	Kind    error
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

// Errors collects field failures. A nil or empty Errors is not an error; use Err.
type Errors []*FieldError

func (es Errors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

func (es Errors) Unwrap() []error {
	out := make([]error, len(es))
	for i, e := range es {
		out[i] = e
	}
	return out
}

// Fields groups messages by field name.
func (es Errors) Fields() map[string][]string {
	fields := make(map[string][]string, len(es))
	for _, e := range es {
		fields[e.Field] = append(fields[e.Field], e.Message)
	}
	return fields
}

// Add appends err when it is non-nil.
func (es *Errors) Add(err *FieldError) {
	if err != nil {
		*es = append(*es, err)
	}
}

func (es Errors) Err() error {
	if len(es) == 0 {
		return nil
	}
	return es
}

// DateRange fails when end is set and falls before start.
func DateRange(start time.Time, end *time.Time) *FieldError {
	if end != nil && end.Before(start) {
		return &FieldError{Field: "end_date", Kind: ErrInvalidRange, Message: "End date must be after start date."}
	}
	return nil
}

// CurrentPosition fails when a position is marked current and also has an end date.
func CurrentPosition(isCurrent bool, end *time.Time) *FieldError {
	if isCurrent && end != nil {
		return &FieldError{Field: "end_date", Kind: ErrConflictingState, Message: "Current position cannot have an end date."}
	}
	return nil
}

func LevelBounds(level int) *FieldError {
	if level < 1 || level > 10 {
		return &FieldError{Field: "level", Kind: ErrOutOfRange, Message: "Level must be between 1 and 10."}
	}
	return nil
}

// DecimalBounds checks an optional value against [min, max].
func DecimalBounds(field string, v *float64, min, max float64) *FieldError {
	if v != nil && (*v < min || *v > max) {
		return &FieldError{Field: field, Kind: ErrOutOfRange, Message: fmt.Sprintf("Ensure this value is between %g and %g.", min, max)}
	}
	return nil
}

// DecimalPlaces fails when an optional value carries more fractional digits than places.
func DecimalPlaces(field string, v *float64, places int) *FieldError {
	if v == nil {
		return nil
	}
	scaled := *v * math.Pow10(places)
	if math.Abs(scaled-math.Round(scaled)) > 1e-6 {
		return &FieldError{Field: field, Kind: ErrInvalidFormat, Message: fmt.Sprintf("Ensure that there are no more than %d decimal places.", places)}
	}
	return nil
}

func Required(field, value string) *FieldError {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Kind: ErrRequired, Message: "This field may not be blank."}
	}
	return nil
}

// MaxLength counts runes, not bytes.
func MaxLength(field, value string, max int) *FieldError {
	if len([]rune(value)) > max {
		return &FieldError{Field: field, Kind: ErrOutOfRange, Message: fmt.Sprintf("Ensure this field has no more than %d characters.", max)}
	}
	return nil
}

// Choice fails when value is not one of the allowed codes.
func Choice[T ~string](field string, value T, labels map[T]string) *FieldError {
	if _, ok := labels[value]; !ok {
		return &FieldError{Field: field, Kind: ErrInvalidChoice, Message: fmt.Sprintf("%q is not a valid choice.", string(value))}
	}
	return nil
}

var (
	slugPattern  = regexp.MustCompile(`^[a-z0-9_-]+$`)
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
)

// NormalizeSlug lower-cases the slug, or derives one from fallback when it is blank.
func NormalizeSlug(slug, fallback string) string {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return Slugify(fallback)
	}
	return slug
}

// Slugify turns free text into a lower-case, hyphen separated slug.
func Slugify(s string) string {
	s = nonSlugChars.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}

func Slug(slug string) *FieldError {
	if slug == "" {
		return &FieldError{Field: "slug", Kind: ErrRequired, Message: "This field may not be blank."}
	}
	if !slugPattern.MatchString(slug) {
		return &FieldError{Field: "slug", Kind: ErrInvalidFormat, Message: "Enter a valid slug consisting of letters, numbers, underscores or hyphens."}
	}
	return nil
}
