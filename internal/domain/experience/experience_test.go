package experience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-api/internal/domain/rules"
)

func validExperience() *Experience {
	return &Experience{
		Company:     "Acme",
		Position:    "Engineer",
		Description: "Built things",
		StartDate:   time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestExperience_Validate(t *testing.T) {
	assert.NoError(t, validExperience().Validate())

	t.Run("end before start", func(t *testing.T) {
		e := validExperience()
		end := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
		e.EndDate = &end

		err := e.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, rules.ErrInvalidRange)
	})

	t.Run("current with end date", func(t *testing.T) {
		e := validExperience()
		end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		e.EndDate = &end
		e.IsCurrent = true

		err := e.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, rules.ErrConflictingState)
	})

	t.Run("missing required fields", func(t *testing.T) {
		var errs rules.Errors
		require.ErrorAs(t, (&Experience{}).Validate(), &errs)
		fields := errs.Fields()
		for _, f := range []string{"company", "position", "description", "start_date"} {
			assert.Contains(t, fields, f)
		}
	})
}

func TestExperience_TechnologyList(t *testing.T) {
	e := &Experience{Technologies: "Go, PostgreSQL,,Redis "}
	assert.Equal(t, []string{"Go", "PostgreSQL", "Redis"}, e.TechnologyList())
}
