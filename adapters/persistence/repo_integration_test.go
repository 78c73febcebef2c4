package persistence

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/khoahotran/portfolio-api/internal/domain/blog"
	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/listing"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/internal/domain/user"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type RepoIntegrationTestSuite struct {
	suite.Suite
	dbPool         *pgxpool.Pool
	pgContainer    *postgres.PostgresContainer
	testLogger     logger.Logger
	userRepo       user.Repository
	profileRepo    profile.Repository
	projectRepo    project.Repository
	experienceRepo experience.Repository
	educationRepo  education.Repository
	skillRepo      skill.Repository
	blogRepo       blog.Repository
	testOwner      *user.User
}

func (s *RepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	s.testLogger = logger.NewNopLogger()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.userRepo = NewPostgresUserRepo(s.dbPool, s.testLogger)
	s.profileRepo = NewPostgresProfileRepo(s.dbPool, s.testLogger)
	s.projectRepo = NewPostgresProjectRepo(s.dbPool, s.testLogger)
	s.experienceRepo = NewPostgresExperienceRepo(s.dbPool, s.testLogger)
	s.educationRepo = NewPostgresEducationRepo(s.dbPool, s.testLogger)
	s.skillRepo = NewPostgresSkillRepo(s.dbPool, s.testLogger)
	s.blogRepo = NewPostgresBlogRepo(s.dbPool, s.testLogger)

	s.testOwner = &user.User{
		ID:           uuid.New(),
		Username:     "testowner",
		Email:        "testowner@example.com",
		PasswordHash: "hashedpassword",
	}
	if err := s.userRepo.Save(ctx, s.testOwner); err != nil {
		s.T().Fatalf("Failed to seed owner: %s", err)
	}
}

func (s *RepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(RepoIntegrationTestSuite))
}

func (s *RepoIntegrationTestSuite) newProject(slug string, published, featured bool) *project.Project {
	return &project.Project{
		ID: uuid.New(), UserID: s.testOwner.ID, Title: slug, Slug: slug,
		Description: "desc", Tags: "go, api", Technologies: "Go",
		IsPublished: published, IsFeatured: featured,
	}
}

func (s *RepoIntegrationTestSuite) Test_Project_SaveFindAndConflict() {
	ctx := context.Background()

	p := s.newProject("repo-project", true, false)
	s.Require().NoError(s.projectRepo.Save(ctx, p))
	s.False(p.CreatedAt.IsZero())

	found, err := s.projectRepo.FindBySlug(ctx, "repo-project")
	s.Require().NoError(err)
	s.Equal(p.ID, found.ID)
	s.Equal("testowner", found.UserName)

	dup := s.newProject("repo-project", true, false)
	err = s.projectRepo.Save(ctx, dup)
	s.ErrorIs(err, apperror.ErrConflict)

	_, err = s.projectRepo.FindBySlug(ctx, "missing")
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *RepoIntegrationTestSuite) Test_Project_UpdateRefreshesUpdatedAt() {
	ctx := context.Background()

	p := s.newProject("touch-me", true, false)
	s.Require().NoError(s.projectRepo.Save(ctx, p))
	created, before := p.CreatedAt, p.UpdatedAt

	time.Sleep(10 * time.Millisecond)
	p.Title = "Touched"
	s.Require().NoError(s.projectRepo.Update(ctx, p))
	s.True(p.UpdatedAt.After(before))

	found, err := s.projectRepo.FindBySlug(ctx, "touch-me")
	s.Require().NoError(err)
	s.Equal("Touched", found.Title)
	s.True(found.CreatedAt.Equal(created))
}

func (s *RepoIntegrationTestSuite) Test_Project_ListFiltersSearchAndOrdering() {
	ctx := context.Background()

	s.Require().NoError(s.projectRepo.Save(ctx, s.newProject("list-a-published", true, true)))
	s.Require().NoError(s.projectRepo.Save(ctx, s.newProject("list-b-hidden", false, false)))

	q := listing.Query{Search: "list-"}.With("is_published", true)
	items, total, err := s.projectRepo.List(ctx, q)
	s.Require().NoError(err)
	s.Equal(1, total)
	s.Require().Len(items, 1)
	s.Equal("list-a-published", items[0].Slug)

	q = listing.Query{Search: "list-", Ordering: []listing.Order{{Field: "title", Desc: true}}, Limit: 1}
	items, total, err = s.projectRepo.List(ctx, q)
	s.Require().NoError(err)
	s.Equal(2, total)
	s.Require().Len(items, 1)
	s.Equal("list-b-hidden", items[0].Slug)
}

func (s *RepoIntegrationTestSuite) Test_Profile_OnePerAccount() {
	ctx := context.Background()

	p := &profile.Profile{
		ID: uuid.New(), UserID: s.testOwner.ID, FirstName: "Test", LastName: "Owner",
		Email: "hello@example.com", JobTitle: "Backend Engineer", Company: "Acme",
		GithubURL: "https://github.com/testowner", IsActive: true,
	}
	s.Require().NoError(s.profileRepo.Save(ctx, p))
	s.False(p.CreatedAt.IsZero())

	found, err := s.profileRepo.FindByID(ctx, p.ID)
	s.Require().NoError(err)
	s.Equal("testowner", found.UserName)
	s.Equal("testowner@example.com", found.UserEmail)
	s.Equal("Test Owner", found.FullName())
	s.Equal("https://github.com/testowner", found.GithubURL)
	s.True(found.IsActive)

	items, total, err := s.profileRepo.List(ctx, listing.Query{Search: "backend"}.With("is_active", true))
	s.Require().NoError(err)
	s.Equal(1, total)
	s.Require().Len(items, 1)
	s.Equal(p.ID, items[0].ID)

	second := &profile.Profile{ID: uuid.New(), UserID: s.testOwner.ID, FirstName: "Dup", LastName: "Licate", Email: "dup@example.com"}
	s.ErrorIs(s.profileRepo.Save(ctx, second), apperror.ErrConflict)
}

func (s *RepoIntegrationTestSuite) Test_Education_SaveFindAndList() {
	ctx := context.Background()
	start := time.Date(2014, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2018, 6, 30, 0, 0, 0, 0, time.UTC)

	older := &education.Education{
		ID: uuid.New(), UserID: s.testOwner.ID, Institution: "State University", Degree: "BSc",
		FieldOfStudy: "Computer Science", StartDate: start, EndDate: &end, Grade: "3.8",
	}
	newer := &education.Education{
		ID: uuid.New(), UserID: s.testOwner.ID, Institution: "Tech Institute", Degree: "MSc",
		FieldOfStudy: "Distributed Systems", StartDate: end.AddDate(0, 3, 0),
	}
	s.Require().NoError(s.educationRepo.Save(ctx, older))
	s.Require().NoError(s.educationRepo.Save(ctx, newer))

	found, err := s.educationRepo.FindByID(ctx, older.ID)
	s.Require().NoError(err)
	s.Equal("testowner", found.UserName)
	s.True(found.StartDate.Equal(start))
	s.Require().NotNil(found.EndDate)
	s.True(found.EndDate.Equal(end))

	ongoing, err := s.educationRepo.FindByID(ctx, newer.ID)
	s.Require().NoError(err)
	s.Nil(ongoing.EndDate)

	items, total, err := s.educationRepo.List(ctx, listing.Query{}.With("user", s.testOwner.ID))
	s.Require().NoError(err)
	s.Equal(2, total)
	s.Require().Len(items, 2)
	s.Equal(newer.ID, items[0].ID)

	items, _, err = s.educationRepo.List(ctx, listing.Query{}.With("degree", "BSc"))
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal(older.ID, items[0].ID)
}

func (s *RepoIntegrationTestSuite) Test_Experience_DatabaseRejectsInvertedDates() {
	ctx := context.Background()
	end := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	e := &experience.Experience{
		ID: uuid.New(), UserID: s.testOwner.ID, Company: "Acme", Position: "Dev", Description: "d",
		StartDate: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), EndDate: &end,
	}
	s.ErrorIs(s.experienceRepo.Save(ctx, e), apperror.ErrInvalidInput)
}

func (s *RepoIntegrationTestSuite) Test_Skill_UniquePerUserAndDecimal() {
	ctx := context.Background()
	years := 2.5

	first := &skill.Skill{
		ID: uuid.New(), UserID: s.testOwner.ID, Name: "Go", Category: skill.CategoryProgramming,
		Proficiency: skill.ProficiencyExpert, Level: 9, YearsOfExperience: &years,
	}
	s.Require().NoError(s.skillRepo.Save(ctx, first))

	found, err := s.skillRepo.FindByID(ctx, first.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found.YearsOfExperience)
	s.Equal(2.5, *found.YearsOfExperience)

	second := *first
	second.ID = uuid.New()
	err = s.skillRepo.Save(ctx, &second)
	s.ErrorIs(err, apperror.ErrConflict)
}

func (s *RepoIntegrationTestSuite) Test_Blog_ConcurrentIncrementViews() {
	ctx := context.Background()
	now := time.Now().UTC()

	post := &blog.Post{
		ID: uuid.New(), AuthorID: s.testOwner.ID, Title: "Counted", Slug: "counted", Content: "c",
		Status: blog.StatusPublished, PublishedAt: &now, ReadTime: 5, ViewsCount: 5,
	}
	s.Require().NoError(s.blogRepo.Save(ctx, post))

	views, err := s.blogRepo.IncrementViews(ctx, "counted", true)
	s.Require().NoError(err)
	s.Equal(6, views)

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.blogRepo.IncrementViews(ctx, "counted", true)
			s.NoError(err)
		}()
	}
	wg.Wait()

	found, err := s.blogRepo.FindBySlug(ctx, "counted")
	s.Require().NoError(err)
	s.Equal(6+n, found.ViewsCount)
	s.True(found.UpdatedAt.Equal(post.UpdatedAt))
}

func (s *RepoIntegrationTestSuite) Test_Blog_IncrementHiddenFromAnonymous() {
	ctx := context.Background()

	draft := &blog.Post{
		ID: uuid.New(), AuthorID: s.testOwner.ID, Title: "Draft", Slug: "draft-only", Content: "c",
		Status: blog.StatusDraft, ReadTime: 5,
	}
	s.Require().NoError(s.blogRepo.Save(ctx, draft))

	_, err := s.blogRepo.IncrementViews(ctx, "draft-only", true)
	s.ErrorIs(err, apperror.ErrNotFound)

	views, err := s.blogRepo.IncrementViews(ctx, "draft-only", false)
	s.Require().NoError(err)
	s.Equal(1, views)
}
