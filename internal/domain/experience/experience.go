package experience

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/internal/domain/listing"
	"github.com/khoahotran/portfolio-api/internal/domain/rules"
	"github.com/khoahotran/portfolio-api/pkg/commalist"
)

type Experience struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user"`
	UserName     string     `json:"user_name"`
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	Location     string     `json:"location"`
	Description  string     `json:"description"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	IsCurrent    bool       `json:"is_current"`
	CompanyURL   string     `json:"company_url"`
	Technologies string     `json:"technologies"`
	Order        int        `json:"order"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (e *Experience) TechnologyList() []string {
	return commalist.Split(e.Technologies)
}

func (e *Experience) Validate() error {
	var errs rules.Errors
	errs.Add(rules.Required("company", e.Company))
	errs.Add(rules.MaxLength("company", e.Company, 200))
	errs.Add(rules.Required("position", e.Position))
	errs.Add(rules.MaxLength("position", e.Position, 200))
	errs.Add(rules.MaxLength("location", e.Location, 200))
	errs.Add(rules.Required("description", e.Description))
	errs.Add(rules.MaxLength("technologies", e.Technologies, 500))
	errs.Add(rules.URL("company_url", e.CompanyURL))
	if e.StartDate.IsZero() {
		errs.Add(&rules.FieldError{Field: "start_date", Kind: rules.ErrRequired, Message: "This field is required."})
	}
	errs.Add(rules.DateRange(e.StartDate, e.EndDate))
	errs.Add(rules.CurrentPosition(e.IsCurrent, e.EndDate))
	return errs.Err()
}

var ListSpec = listing.Spec{
	Filters: map[string]listing.FieldKind{
		"is_current": listing.Bool,
		"company":    listing.Text,
		"user":       listing.UUID,
	},
	Orderings: []string{"start_date", "end_date", "order"},
}

type Repository interface {
	Save(ctx context.Context, e *Experience) error
	Update(ctx context.Context, e *Experience) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Experience, error)
	List(ctx context.Context, q listing.Query) ([]*Experience, int, error)
}
