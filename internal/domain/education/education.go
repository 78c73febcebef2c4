package education

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/internal/domain/listing"
	"github.com/khoahotran/portfolio-api/internal/domain/rules"
)

type Education struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user"`
	UserName       string     `json:"user_name"`
	Institution    string     `json:"institution"`
	Degree         string     `json:"degree"`
	FieldOfStudy   string     `json:"field_of_study"`
	Location       string     `json:"location"`
	Description    string     `json:"description"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Grade          string     `json:"grade"`
	InstitutionURL string     `json:"institution_url"`
	Order          int        `json:"order"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (e *Education) Validate() error {
	var errs rules.Errors
	errs.Add(rules.Required("institution", e.Institution))
	errs.Add(rules.MaxLength("institution", e.Institution, 200))
	errs.Add(rules.Required("degree", e.Degree))
	errs.Add(rules.MaxLength("degree", e.Degree, 200))
	errs.Add(rules.Required("field_of_study", e.FieldOfStudy))
	errs.Add(rules.MaxLength("field_of_study", e.FieldOfStudy, 200))
	errs.Add(rules.MaxLength("location", e.Location, 200))
	errs.Add(rules.MaxLength("grade", e.Grade, 50))
	errs.Add(rules.URL("institution_url", e.InstitutionURL))
	if e.StartDate.IsZero() {
		errs.Add(&rules.FieldError{Field: "start_date", Kind: rules.ErrRequired, Message: "This field is required."})
	}
	errs.Add(rules.DateRange(e.StartDate, e.EndDate))
	return errs.Err()
}

var ListSpec = listing.Spec{
	Filters: map[string]listing.FieldKind{
		"institution": listing.Text,
		"degree":      listing.Text,
		"user":        listing.UUID,
	},
	Orderings: []string{"start_date", "end_date", "order"},
}

type Repository interface {
	Save(ctx context.Context, e *Education) error
	Update(ctx context.Context, e *Education) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Education, error)
	List(ctx context.Context, q listing.Query) ([]*Education, int, error)
}
