package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-api/internal/domain/rules"
)

func TestSkill_NormalizeAppliesDefaults(t *testing.T) {
	years := 3.5
	s := &Skill{Name: " Go ", Level: DefaultLevel, YearsOfExperience: &years}
	s.Normalize()

	assert.Equal(t, "Go", s.Name)
	assert.Equal(t, CategoryOther, s.Category)
	assert.Equal(t, ProficiencyIntermediate, s.Proficiency)
	assert.Equal(t, 3.5, *s.YearsOfExperience)
	assert.NoError(t, s.Validate())
}

func TestSkill_ValidateLevel(t *testing.T) {
	s := &Skill{Name: "Go", Category: CategoryProgramming, Proficiency: ProficiencyExpert, Level: 11}

	err := s.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, rules.ErrOutOfRange)

	var errs rules.Errors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.Fields(), "level")
}

func TestSkill_ValidateChoices(t *testing.T) {
	s := &Skill{Name: "Go", Category: "wizardry", Proficiency: "guru", Level: 5}
	var errs rules.Errors
	require.ErrorAs(t, s.Validate(), &errs)
	assert.Contains(t, errs.Fields(), "category")
	assert.Contains(t, errs.Fields(), "proficiency")
}

func TestGroupByCategory(t *testing.T) {
	skills := []*Skill{
		{Name: "Python", Category: CategoryProgramming, Order: 2},
		{Name: "Docker", Category: CategoryTool},
		{Name: "Go", Category: CategoryProgramming, Order: 2},
		{Name: "Rust", Category: CategoryProgramming, Order: 1},
		{Name: "Teamwork", Category: CategorySoftSkill, IsFeatured: true},
		{Name: "Zig", Category: CategoryProgramming, Order: 9, IsFeatured: true},
	}

	groups := GroupByCategory(skills)
	require.Len(t, groups, 3)

	assert.Equal(t, "Programming", groups[0].Label)
	names := make([]string, 0, len(groups[0].Skills))
	for _, s := range groups[0].Skills {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Zig", "Rust", "Go", "Python"}, names)

	assert.Equal(t, "Soft Skill", groups[1].Label)
	assert.Equal(t, "Tool", groups[2].Label)
}

func TestSkill_ValidateYearsOfExperience(t *testing.T) {
	for _, tc := range []struct {
		years float64
		ok    bool
	}{
		{years: 3.5, ok: true},
		{years: 0, ok: true},
		{years: -2.5, ok: true},
		{years: 999.9, ok: true},
		{years: 3.46, ok: false},
		{years: 1000, ok: false},
	} {
		years := tc.years
		s := &Skill{Name: "Go", Category: CategoryProgramming, Proficiency: ProficiencyExpert, Level: 5, YearsOfExperience: &years}
		err := s.Validate()
		if tc.ok {
			assert.NoError(t, err, "years=%v", tc.years)
			continue
		}
		var errs rules.Errors
		require.ErrorAs(t, err, &errs, "years=%v", tc.years)
		assert.Contains(t, errs.Fields(), "years_of_experience")
	}
}
