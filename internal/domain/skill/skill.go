package skill

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/internal/domain/listing"
	"github.com/khoahotran/portfolio-api/internal/domain/rules"
)

type Category string

const (
	CategoryProgramming Category = "programming"
	CategoryFramework   Category = "framework"
	CategoryDatabase    Category = "database"
	CategoryTool        Category = "tool"
	CategoryLanguage    Category = "language"
	CategorySoftSkill   Category = "soft_skill"
	CategoryOther       Category = "other"
)

var CategoryLabels = map[Category]string{
	CategoryProgramming: "Programming",
	CategoryFramework:   "Framework",
	CategoryDatabase:    "Database",
	CategoryTool:        "Tool",
	CategoryLanguage:    "Language",
	CategorySoftSkill:   "Soft Skill",
	CategoryOther:       "Other",
}

type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

var ProficiencyLabels = map[Proficiency]string{
	ProficiencyBeginner:     "Beginner",
	ProficiencyIntermediate: "Intermediate",
	ProficiencyAdvanced:     "Advanced",
	ProficiencyExpert:       "Expert",
}

const (
	DefaultLevel       = 5
	MaxYearsExperience = 999.9
)

type Skill struct {
	ID                uuid.UUID   `json:"id"`
	UserID            uuid.UUID   `json:"user"`
	UserName          string      `json:"user_name"`
	Name              string      `json:"name"`
	Category          Category    `json:"category"`
	Proficiency       Proficiency `json:"proficiency"`
	Level             int         `json:"level"`
	Description       string      `json:"description"`
	YearsOfExperience *float64    `json:"years_of_experience"`
	Icon              string      `json:"icon"`
	Order             int         `json:"order"`
	IsFeatured        bool        `json:"is_featured"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

func (s *Skill) CategoryDisplay() string {
	return CategoryLabels[s.Category]
}

func (s *Skill) ProficiencyDisplay() string {
	return ProficiencyLabels[s.Proficiency]
}

// Normalize fills enum defaults.
func (s *Skill) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	if s.Category == "" {
		s.Category = CategoryOther
	}
	if s.Proficiency == "" {
		s.Proficiency = ProficiencyIntermediate
	}
}

func (s *Skill) Validate() error {
	var errs rules.Errors
	errs.Add(rules.Required("name", s.Name))
	errs.Add(rules.MaxLength("name", s.Name, 100))
	errs.Add(rules.Choice("category", s.Category, CategoryLabels))
	errs.Add(rules.Choice("proficiency", s.Proficiency, ProficiencyLabels))
	errs.Add(rules.LevelBounds(s.Level))
	errs.Add(rules.DecimalBounds("years_of_experience", s.YearsOfExperience, -MaxYearsExperience, MaxYearsExperience))
	errs.Add(rules.DecimalPlaces("years_of_experience", s.YearsOfExperience, 1))
	errs.Add(rules.MaxLength("icon", s.Icon, 100))
	return errs.Err()
}

// Group is one category bucket of GroupByCategory.
type Group struct {
	Label  string
	Skills []*Skill
}

// GroupByCategory buckets skills by category label, buckets sorted by label.
// Inside a bucket skills are sorted featured first, then by order, then by name.
func GroupByCategory(skills []*Skill) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, s := range skills {
		label := s.CategoryDisplay()
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, Group{Label: label})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Label < groups[j].Label })
	for _, g := range groups {
		sort.SliceStable(g.Skills, func(i, j int) bool {
			a, b := g.Skills[i], g.Skills[j]
			if a.IsFeatured != b.IsFeatured {
				return a.IsFeatured
			}
			if a.Order != b.Order {
				return a.Order < b.Order
			}
			return a.Name < b.Name
		})
	}
	return groups
}

var ListSpec = listing.Spec{
	Filters: map[string]listing.FieldKind{
		"category":    listing.Text,
		"proficiency": listing.Text,
		"is_featured": listing.Bool,
		"user":        listing.UUID,
	},
	Orderings: []string{"name", "level", "order", "years_of_experience"},
}

type Repository interface {
	Save(ctx context.Context, s *Skill) error
	Update(ctx context.Context, s *Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Skill, error)
	List(ctx context.Context, q listing.Query) ([]*Skill, int, error)
}
