package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/adapters/persistence"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/internal/domain/blog"
	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/internal/domain/user"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// Seeds a demo account with a small portfolio. The account is upserted; rows
// guarded by a unique key are skipped when present, the rest are added again.
func main() {
	fmt.Println("seeding demo portfolio...")

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	appLogger := logger.NewZapLogger(cfg.App.Env)
	ctx := context.Background()

	username := envOr("SEED_USERNAME", "demo_user")
	password := envOr("SEED_PASSWORD", "demo123")

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	pool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	owner := &user.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        envOr("SEED_EMAIL", "demo@example.com"),
		FirstName:    "Demo",
		LastName:     "User",
		PasswordHash: hash,
		IsAdmin:      true,
	}
	if err := persistence.NewPostgresUserRepo(pool, appLogger).Save(ctx, owner); err != nil {
		log.Fatalf("cannot add user: %v", err)
	}

	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }
	end := day(2021, time.December, 31)
	years := 4.5

	steps := []struct {
		name string
		run  func() error
	}{
		{"profile", func() error {
			return persistence.NewPostgresProfileRepo(pool, appLogger).Save(ctx, &profile.Profile{
				ID: uuid.New(), UserID: owner.ID, FirstName: "Demo", LastName: "User",
				Bio: "Backend engineer who likes boring, reliable systems.", Email: owner.Email,
				Location: "Ho Chi Minh City", JobTitle: "Software Engineer", Company: "Acme",
				GithubURL: "https://github.com/demo", IsActive: true,
			})
		}},
		{"project", func() error {
			start := day(2023, time.March, 1)
			return persistence.NewPostgresProjectRepo(pool, appLogger).Save(ctx, &project.Project{
				ID: uuid.New(), UserID: owner.ID, Title: "Portfolio API", Slug: "portfolio-api",
				Description: "The API serving this portfolio.", ShortDescription: "Portfolio backend",
				Tags: "api, backend", Technologies: "Go, PostgreSQL, Redis", StartDate: &start,
				IsFeatured: true, IsPublished: true,
			})
		}},
		{"current experience", func() error {
			return persistence.NewPostgresExperienceRepo(pool, appLogger).Save(ctx, &experience.Experience{
				ID: uuid.New(), UserID: owner.ID, Company: "Acme", Position: "Software Engineer",
				Description: "Building the platform team's services.", StartDate: day(2022, time.January, 10),
				IsCurrent: true, Technologies: "Go, Kafka",
			})
		}},
		{"past experience", func() error {
			return persistence.NewPostgresExperienceRepo(pool, appLogger).Save(ctx, &experience.Experience{
				ID: uuid.New(), UserID: owner.ID, Company: "Initech", Position: "Junior Developer",
				Description: "Maintained reporting tools.", StartDate: day(2019, time.June, 1), EndDate: &end,
				Technologies: "Python, SQL", Order: 1,
			})
		}},
		{"education", func() error {
			graduated := day(2019, time.May, 31)
			return persistence.NewPostgresEducationRepo(pool, appLogger).Save(ctx, &education.Education{
				ID: uuid.New(), UserID: owner.ID, Institution: "University of Science", Degree: "Bachelor",
				FieldOfStudy: "Computer Science", StartDate: day(2015, time.September, 1), EndDate: &graduated,
			})
		}},
		{"skill", func() error {
			return persistence.NewPostgresSkillRepo(pool, appLogger).Save(ctx, &skill.Skill{
				ID: uuid.New(), UserID: owner.ID, Name: "Go", Category: skill.CategoryProgramming,
				Proficiency: skill.ProficiencyAdvanced, Level: 8, YearsOfExperience: &years, IsFeatured: true,
			})
		}},
		{"blog post", func() error {
			published := time.Now().UTC()
			return persistence.NewPostgresBlogRepo(pool, appLogger).Save(ctx, &blog.Post{
				ID: uuid.New(), AuthorID: owner.ID, Title: "Hello World", Slug: "hello-world",
				Excerpt: "First post.", Content: "Welcome to the blog.", Status: blog.StatusPublished,
				PublishedAt: &published, Tags: "intro", ReadTime: blog.DefaultReadTime,
			})
		}},
	}

	for _, step := range steps {
		err := step.run()
		switch {
		case err == nil:
			fmt.Printf("  added %s\n", step.name)
		case errors.Is(err, apperror.ErrConflict):
			fmt.Printf("  %s already present, skipped\n", step.name)
		default:
			log.Fatalf("cannot add %s: %v", step.name, err)
		}
	}

	fmt.Printf("seeded portfolio for '%s' successfully!\n", owner.Username)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
