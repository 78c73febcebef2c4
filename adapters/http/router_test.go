package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	authUC "github.com/khoahotran/portfolio-api/internal/application/usecase/auth"
	blogUC "github.com/khoahotran/portfolio-api/internal/application/usecase/blog"
	educationUC "github.com/khoahotran/portfolio-api/internal/application/usecase/education"
	experienceUC "github.com/khoahotran/portfolio-api/internal/application/usecase/experience"
	healthUC "github.com/khoahotran/portfolio-api/internal/application/usecase/health"
	profileUC "github.com/khoahotran/portfolio-api/internal/application/usecase/profile"
	projectUC "github.com/khoahotran/portfolio-api/internal/application/usecase/project"
	skillUC "github.com/khoahotran/portfolio-api/internal/application/usecase/skill"
	"github.com/khoahotran/portfolio-api/internal/domain/blog"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/internal/domain/user"
	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type RouterTestSuite struct {
	suite.Suite
	router *gin.Engine

	profiles    fakeProfileRepo
	projects    fakeProjectRepo
	experiences fakeExperienceRepo
	education   fakeEducationRepo
	skills      fakeSkillRepo
	posts       fakeBlogRepo
	users       *fakeUserRepo
	uploader    *fakeUploader
	dbErr       error

	jwtSvc *auth.JWTService
	owner  user.User
	other  user.User
	admin  user.User
}

func TestRouter(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	log := logger.NewNopLogger()
	events := service.NewNopPublisher()

	s.profiles = newFakeProfileRepo()
	s.projects = newFakeProjectRepo()
	s.experiences = newFakeExperienceRepo()
	s.education = newFakeEducationRepo()
	s.skills = newFakeSkillRepo()
	s.posts = newFakeBlogRepo()
	s.users = newFakeUserRepo()
	s.uploader = &fakeUploader{}
	s.dbErr = nil

	hash, err := auth.HashPassword("demo123")
	s.Require().NoError(err)
	s.owner = user.User{ID: uuid.New(), Username: "demo_user", Email: "demo@example.com", PasswordHash: hash}
	s.other = user.User{ID: uuid.New(), Username: "someone_else", Email: "else@example.com", PasswordHash: hash}
	s.admin = user.User{ID: uuid.New(), Username: "admin", Email: "admin@example.com", PasswordHash: hash, IsAdmin: true}
	for _, u := range []user.User{s.owner, s.other, s.admin} {
		u := u
		s.Require().NoError(s.users.Save(context.Background(), &u))
	}

	s.jwtSvc = auth.NewJWTService("test-secret", time.Hour)
	sessions := newMemorySessions()

	blogUseCase := blogUC.NewBlogUseCase(s.posts, events, nil, "portfolio", log)
	prober := proberFunc(func(context.Context) error { return s.dbErr })

	handlers := Handlers{
		Auth: NewAuthHandler(
			authUC.NewLoginUseCase(s.users, s.jwtSvc, log),
			authUC.NewLogoutUseCase(sessions, log),
			log,
		),
		Profile:    NewProfileHandler(profileUC.NewProfileUseCase(s.profiles, s.users, events, nil, "portfolio", log), log),
		Project:    NewProjectHandler(projectUC.NewProjectUseCase(s.projects, events, s.uploader, "portfolio", log), log),
		Experience: NewExperienceHandler(experienceUC.NewExperienceUseCase(s.experiences, events, log), log),
		Education:  NewEducationHandler(educationUC.NewEducationUseCase(s.education, events, log), log),
		Skill:      NewSkillHandler(skillUC.NewSkillUseCase(s.skills, events, log), log),
		Blog:       NewBlogHandler(blogUseCase, log),
		RSS:        NewRSSHandler(blogUC.NewRSSUseCase(blogUseCase, nil, "Portfolio Blog", "http://localhost:3000", log), log),
		Health:     NewHealthHandler(healthUC.NewHealthUseCase(prober, "1.0.0", log)),
	}
	s.router = NewRouter(RouterConfig{ServiceName: "portfolio-api-test", Verbose: true}, handlers, s.jwtSvc, sessions, log)
}

func (s *RouterTestSuite) token(u user.User) string {
	tok, err := s.jwtSvc.GenerateToken(auth.TokenSubject{OwnerID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin})
	s.Require().NoError(err)
	return tok
}

func (s *RouterTestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func (s *RouterTestSuite) decode(rr *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), v), rr.Body.String())
}

func (s *RouterTestSuite) seedProject(slug string, published bool, owner uuid.UUID) {
	s.Require().NoError(s.projects.Save(context.Background(), &project.Project{
		ID: uuid.New(), UserID: owner, Title: slug, Slug: slug, Description: "d",
		Tags: "go", Technologies: "go", IsPublished: published,
	}))
}

func (s *RouterTestSuite) seedPost(slug string, status blog.Status, views int) {
	s.Require().NoError(s.posts.Save(context.Background(), &blog.Post{
		ID: uuid.New(), AuthorID: s.owner.ID, AuthorName: s.owner.Username, Title: slug, Slug: slug,
		Content: "body", Status: status, ViewsCount: views, ReadTime: 5,
	}))
}

func (s *RouterTestSuite) TestLogin() {
	rr := s.do(http.MethodPost, "/api/auth/login", "", gin.H{"username": "demo_user", "password": "wrong"})
	s.Equal(http.StatusUnauthorized, rr.Code)

	rr = s.do(http.MethodPost, "/api/auth/login", "", gin.H{"username": "demo_user"})
	s.Equal(http.StatusBadRequest, rr.Code)
	var errBody struct {
		Fields map[string][]string `json:"fields"`
	}
	s.decode(rr, &errBody)
	s.Contains(errBody.Fields, "password")

	rr = s.do(http.MethodPost, "/api/auth/login", "", gin.H{"username": "demo_user", "password": "demo123"})
	s.Require().Equal(http.StatusOK, rr.Code)
	var out map[string]string
	s.decode(rr, &out)
	s.NotEmpty(out["access_token"])
}

func (s *RouterTestSuite) TestLogoutRevokesToken() {
	tok := s.token(s.owner)

	rr := s.do(http.MethodPost, "/api/auth/logout", tok, nil)
	s.Require().Equal(http.StatusNoContent, rr.Code)

	rr = s.do(http.MethodGet, "/api/projects/", tok, nil)
	s.Equal(http.StatusUnauthorized, rr.Code)
}

func (s *RouterTestSuite) TestMalformedTokenIsRejected() {
	rr := s.do(http.MethodGet, "/api/projects/", "not-a-jwt", nil)
	s.Equal(http.StatusUnauthorized, rr.Code)
}

func (s *RouterTestSuite) TestCreateProject_LowercasesSlug() {
	rr := s.do(http.MethodPost, "/api/projects/", s.token(s.owner), gin.H{
		"title":        "New Project",
		"slug":         "NEW-PROJECT",
		"description":  "A thing",
		"tags":         "go, api ,,web",
		"technologies": "Go, PostgreSQL",
		"user":         s.other.ID,
	})
	s.Require().Equal(http.StatusCreated, rr.Code, rr.Body.String())

	var dto ProjectDTO
	s.decode(rr, &dto)
	s.Equal("new-project", dto.Slug)
	s.Equal([]string{"go", "api", "web"}, dto.TagList)
	s.Equal([]string{"Go", "PostgreSQL"}, dto.TechnologyList)
	s.True(dto.IsPublished)
	s.Equal(s.owner.ID, dto.User)
	s.Equal("demo_user", dto.UserName)

	rr = s.do(http.MethodGet, "/api/projects/new-project/", "", nil)
	s.Equal(http.StatusOK, rr.Code)
}

func (s *RouterTestSuite) TestCreateProject_DuplicateSlugConflicts() {
	s.seedProject("taken", true, s.owner.ID)

	rr := s.do(http.MethodPost, "/api/projects/", s.token(s.owner), gin.H{
		"title": "Other", "slug": "taken", "description": "d", "tags": "a", "technologies": "b",
	})
	s.Equal(http.StatusConflict, rr.Code)
}

func (s *RouterTestSuite) TestCreateProject_RequiresAuthentication() {
	rr := s.do(http.MethodPost, "/api/projects/", "", gin.H{"title": "x"})
	s.Equal(http.StatusUnauthorized, rr.Code)
}

func (s *RouterTestSuite) TestAnonymousSeesOnlyPublishedProjects() {
	s.seedProject("public-one", true, s.owner.ID)
	s.seedProject("hidden-one", false, s.owner.ID)

	var page PageResponse[ProjectSummaryDTO]
	rr := s.do(http.MethodGet, "/api/projects/", "", nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.decode(rr, &page)
	s.Equal(1, page.Count)
	s.Equal("public-one", page.Results[0].Slug)

	rr = s.do(http.MethodGet, "/api/projects/", s.token(s.owner), nil)
	s.decode(rr, &page)
	s.Equal(2, page.Count)

	rr = s.do(http.MethodGet, "/api/projects/hidden-one/", "", nil)
	s.Equal(http.StatusNotFound, rr.Code)
	rr = s.do(http.MethodGet, "/api/projects/hidden-one/", s.token(s.owner), nil)
	s.Equal(http.StatusOK, rr.Code)
}

func (s *RouterTestSuite) TestPatchProject_KeepsOmittedFields() {
	s.seedProject("patch-me", true, s.owner.ID)

	rr := s.do(http.MethodPatch, "/api/projects/patch-me/", s.token(s.owner), gin.H{"is_featured": true})
	s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())

	var dto ProjectDTO
	s.decode(rr, &dto)
	s.True(dto.IsFeatured)
	s.Equal("patch-me", dto.Title)
	s.Equal("go", dto.Tags)
}

func (s *RouterTestSuite) TestUpdateProject_Ownership() {
	s.seedProject("owned", true, s.owner.ID)
	body := gin.H{"is_featured": true}

	rr := s.do(http.MethodPatch, "/api/projects/owned/", "", body)
	s.Equal(http.StatusUnauthorized, rr.Code)

	rr = s.do(http.MethodPatch, "/api/projects/missing/", s.token(s.other), body)
	s.Equal(http.StatusNotFound, rr.Code)

	rr = s.do(http.MethodPatch, "/api/projects/owned/", s.token(s.other), body)
	s.Equal(http.StatusForbidden, rr.Code)

	rr = s.do(http.MethodDelete, "/api/projects/owned/", s.token(s.other), nil)
	s.Equal(http.StatusForbidden, rr.Code)

	rr = s.do(http.MethodPatch, "/api/projects/owned/", s.token(s.admin), body)
	s.Equal(http.StatusOK, rr.Code)

	rr = s.do(http.MethodDelete, "/api/projects/owned/", s.token(s.owner), nil)
	s.Equal(http.StatusNoContent, rr.Code)
	rr = s.do(http.MethodGet, "/api/projects/owned/", s.token(s.owner), nil)
	s.Equal(http.StatusNotFound, rr.Code)
}

func (s *RouterTestSuite) TestFeaturedProjects_AreAlwaysPublished() {
	for _, p := range []*project.Project{
		{ID: uuid.New(), UserID: s.owner.ID, Title: "a", Slug: "a", Description: "d", Tags: "t", Technologies: "t", IsFeatured: true, IsPublished: true},
		{ID: uuid.New(), UserID: s.owner.ID, Title: "b", Slug: "b", Description: "d", Tags: "t", Technologies: "t", IsFeatured: true},
		{ID: uuid.New(), UserID: s.owner.ID, Title: "c", Slug: "c", Description: "d", Tags: "t", Technologies: "t", IsPublished: true},
	} {
		s.Require().NoError(s.projects.Save(context.Background(), p))
	}

	rr := s.do(http.MethodGet, "/api/projects/featured/", s.token(s.owner), nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	var items []ProjectDTO
	s.decode(rr, &items)
	s.Require().Len(items, 1)
	s.Equal("a", items[0].Slug)
}

func (s *RouterTestSuite) TestUploadProjectImage() {
	s.seedProject("with-image", true, s.owner.ID)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "cover.png")
	s.Require().NoError(err)
	_, _ = part.Write([]byte("\x89PNG fake"))
	s.Require().NoError(w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/projects/with-image/image/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.token(s.owner))
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)

	s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())
	var dto ProjectDTO
	s.decode(rr, &dto)
	s.True(strings.HasPrefix(dto.Image, "https://res.cloudinary.com/"))
	s.Len(s.uploader.uploaded, 1)
}

func (s *RouterTestSuite) TestUploadProjectImage_MissingFile() {
	s.seedProject("no-file", true, s.owner.ID)
	rr := s.do(http.MethodPost, "/api/projects/no-file/image/", s.token(s.owner), nil)
	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *RouterTestSuite) TestCreateExperience_InvertedDates() {
	rr := s.do(http.MethodPost, "/api/experiences/", s.token(s.owner), gin.H{
		"company":     "Acme",
		"position":    "Engineer",
		"description": "Built things",
		"start_date":  "2023-01-01",
		"end_date":    "2022-01-01",
	})
	s.Require().Equal(http.StatusBadRequest, rr.Code)

	var body struct {
		Fields map[string][]string `json:"fields"`
	}
	s.decode(rr, &body)
	s.Contains(body.Fields, "end_date")
	s.Empty(s.experiences.rows)
}

func (s *RouterTestSuite) TestCreateExperience_CurrentWithEndDate() {
	rr := s.do(http.MethodPost, "/api/experiences/", s.token(s.owner), gin.H{
		"company": "Acme", "position": "Engineer", "description": "d",
		"start_date": "2020-01-01", "end_date": "2021-01-01", "is_current": true,
	})
	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *RouterTestSuite) TestCreateExperience_BadDateFormat() {
	rr := s.do(http.MethodPost, "/api/experiences/", s.token(s.owner), gin.H{
		"company": "Acme", "position": "Engineer", "description": "d", "start_date": "01/02/2020",
	})
	s.Require().Equal(http.StatusBadRequest, rr.Code)

	var body struct {
		Fields map[string][]string `json:"fields"`
	}
	s.decode(rr, &body)
	s.Contains(body.Fields, "start_date")
}

func (s *RouterTestSuite) TestCreateProfile_OnePerAccount() {
	body := gin.H{"first_name": "Demo", "last_name": "User", "email": "hello@example.com", "job_title": "Engineer"}

	rr := s.do(http.MethodPost, "/api/profiles/", s.token(s.owner), body)
	s.Require().Equal(http.StatusCreated, rr.Code, rr.Body.String())
	var dto ProfileDTO
	s.decode(rr, &dto)
	s.Equal("Demo User", dto.FullName)
	s.True(dto.IsActive)
	s.Equal(s.owner.ID, dto.User.ID)
	s.Equal("demo_user", dto.User.Username)
	s.Equal("demo@example.com", dto.User.Email)

	rr = s.do(http.MethodPost, "/api/profiles/", s.token(s.owner), body)
	s.Equal(http.StatusConflict, rr.Code, rr.Body.String())
	s.Len(s.profiles.rows, 1)

	rr = s.do(http.MethodPost, "/api/profiles/", s.token(s.other), body)
	s.Equal(http.StatusCreated, rr.Code, rr.Body.String())

	rr = s.do(http.MethodGet, "/api/profiles/"+dto.ID.String()+"/", "", nil)
	s.Equal(http.StatusOK, rr.Code)
}

func (s *RouterTestSuite) TestCreateEducation_InvertedDates() {
	rr := s.do(http.MethodPost, "/api/education/", s.token(s.owner), gin.H{
		"institution": "State University", "degree": "BSc", "field_of_study": "Computer Science",
		"start_date": "2018-09-01", "end_date": "2017-06-30",
	})
	s.Require().Equal(http.StatusBadRequest, rr.Code)

	var body struct {
		Fields map[string][]string `json:"fields"`
	}
	s.decode(rr, &body)
	s.Contains(body.Fields, "end_date")
	s.Empty(s.education.rows)

	rr = s.do(http.MethodPost, "/api/education/", s.token(s.owner), gin.H{
		"institution": "State University", "degree": "BSc", "field_of_study": "Computer Science",
		"start_date": "2014-09-01", "end_date": "2018-06-30",
	})
	s.Require().Equal(http.StatusCreated, rr.Code, rr.Body.String())
	var dto EducationDTO
	s.decode(rr, &dto)
	s.Equal("2014-09-01", dto.StartDate.Format(dateLayout))
	s.Equal(s.owner.ID, dto.User)
}

func (s *RouterTestSuite) TestNegativeOrderIsAccepted() {
	rr := s.do(http.MethodPost, "/api/experiences/", s.token(s.owner), gin.H{
		"company": "Acme", "position": "Engineer", "description": "d", "start_date": "2020-01-01", "order": -1,
	})
	s.Require().Equal(http.StatusCreated, rr.Code, rr.Body.String())
	var dto ExperienceDTO
	s.decode(rr, &dto)
	s.Equal(-1, dto.Order)
}

func (s *RouterTestSuite) TestExperiencePagination() {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		s.Require().NoError(s.experiences.Save(context.Background(), &experience.Experience{
			ID: uuid.New(), UserID: s.owner.ID, Company: "Acme", Position: "Dev", Description: "d",
			StartDate: start.AddDate(0, i, 0),
		}))
	}

	var page PageResponse[ExperienceDTO]
	rr := s.do(http.MethodGet, "/api/experiences/?page=2&page_size=10", "", nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.decode(rr, &page)
	s.Equal(25, page.Count)
	s.Len(page.Results, 10)
	s.Require().NotNil(page.Next)
	s.Contains(*page.Next, "page=3")
	s.Require().NotNil(page.Previous)
	s.NotContains(*page.Previous, "page=")
	s.Contains(*page.Previous, "page_size=10")

	rr = s.do(http.MethodGet, "/api/experiences/?page=3&page_size=10", "", nil)
	s.decode(rr, &page)
	s.Len(page.Results, 5)
	s.Nil(page.Next)

	rr = s.do(http.MethodGet, "/api/experiences/?page=4&page_size=10", "", nil)
	s.Equal(http.StatusNotFound, rr.Code)

	rr = s.do(http.MethodGet, "/api/experiences/?page_size=500", "", nil)
	s.decode(rr, &page)
	s.Len(page.Results, 25)
}

func (s *RouterTestSuite) TestCurrentExperiences() {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	s.Require().NoError(s.experiences.Save(context.Background(), &experience.Experience{
		ID: uuid.New(), UserID: s.owner.ID, Company: "Now", Position: "Dev", Description: "d", StartDate: start, IsCurrent: true,
	}))
	s.Require().NoError(s.experiences.Save(context.Background(), &experience.Experience{
		ID: uuid.New(), UserID: s.owner.ID, Company: "Then", Position: "Dev", Description: "d", StartDate: start, EndDate: &end,
	}))

	rr := s.do(http.MethodGet, "/api/experiences/current/", "", nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	var items []ExperienceDTO
	s.decode(rr, &items)
	s.Require().Len(items, 1)
	s.Equal("Now", items[0].Company)
	s.Equal("2020-01-01", items[0].StartDate.Format(dateLayout))
}

func (s *RouterTestSuite) TestInvalidFilterValue() {
	rr := s.do(http.MethodGet, "/api/experiences/?is_current=maybe", "", nil)
	s.Require().Equal(http.StatusBadRequest, rr.Code)

	var body struct {
		Fields map[string][]string `json:"fields"`
	}
	s.decode(rr, &body)
	s.Contains(body.Fields, "is_current")
}

func (s *RouterTestSuite) TestCreateSkill_LevelOutOfRange() {
	rr := s.do(http.MethodPost, "/api/skills/", s.token(s.owner), gin.H{"name": "Go", "level": 11})
	s.Require().Equal(http.StatusBadRequest, rr.Code)

	var body struct {
		Fields map[string][]string `json:"fields"`
	}
	s.decode(rr, &body)
	s.Equal([]string{"Level must be between 1 and 10."}, body.Fields["level"])
}

func (s *RouterTestSuite) TestCreateSkill_Defaults() {
	rr := s.do(http.MethodPost, "/api/skills/", s.token(s.owner), gin.H{"name": "Go", "years_of_experience": 3.46})
	s.Require().Equal(http.StatusBadRequest, rr.Code, rr.Body.String())
	var errBody struct {
		Fields map[string][]string `json:"fields"`
	}
	s.decode(rr, &errBody)
	s.Contains(errBody.Fields, "years_of_experience")

	rr = s.do(http.MethodPost, "/api/skills/", s.token(s.owner), gin.H{"name": "Go", "years_of_experience": 3.5})
	s.Require().Equal(http.StatusCreated, rr.Code, rr.Body.String())

	var dto SkillDTO
	s.decode(rr, &dto)
	s.Equal(skill.CategoryOther, dto.Category)
	s.Equal("Other", dto.CategoryDisplay)
	s.Equal(skill.ProficiencyIntermediate, dto.Proficiency)
	s.Equal(5, dto.Level)
	s.Require().NotNil(dto.YearsOfExperience)
	s.InDelta(3.5, *dto.YearsOfExperience, 1e-9)
}

func (s *RouterTestSuite) TestSkillsByCategory() {
	for _, sk := range []*skill.Skill{
		{ID: uuid.New(), UserID: s.owner.ID, Name: "Rust", Category: skill.CategoryProgramming, Proficiency: skill.ProficiencyBeginner, Level: 3, Order: 2},
		{ID: uuid.New(), UserID: s.owner.ID, Name: "Go", Category: skill.CategoryProgramming, Proficiency: skill.ProficiencyExpert, Level: 9, Order: 2, IsFeatured: true},
		{ID: uuid.New(), UserID: s.owner.ID, Name: "Postgres", Category: skill.CategoryDatabase, Proficiency: skill.ProficiencyAdvanced, Level: 7},
	} {
		s.Require().NoError(s.skills.Save(context.Background(), sk))
	}

	for _, path := range []string{"/api/skills/by-category/", "/api/skills/by_category/"} {
		rr := s.do(http.MethodGet, path, "", nil)
		s.Require().Equal(http.StatusOK, rr.Code)

		var groups map[string][]SkillSummaryDTO
		s.decode(rr, &groups)
		s.Len(groups, 2)
		s.Require().Len(groups["Programming"], 2)
		s.Equal("Go", groups["Programming"][0].Name)
		s.Equal("Rust", groups["Programming"][1].Name)
		s.Len(groups["Database"], 1)
		s.Less(strings.Index(rr.Body.String(), `"Database"`), strings.Index(rr.Body.String(), `"Programming"`))
	}
}

func (s *RouterTestSuite) TestIncrementViews() {
	s.seedPost("hello", blog.StatusPublished, 5)

	rr := s.do(http.MethodPost, "/api/blog/hello/increment-views/", "", nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	var out map[string]int
	s.decode(rr, &out)
	s.Equal(6, out["views_count"])

	rr = s.do(http.MethodPost, "/api/blog/hello/increment_views/", "", nil)
	s.decode(rr, &out)
	s.Equal(7, out["views_count"])
}

func (s *RouterTestSuite) TestIncrementViews_DraftHiddenFromAnonymous() {
	s.seedPost("draft", blog.StatusDraft, 0)

	rr := s.do(http.MethodPost, "/api/blog/draft/increment-views/", "", nil)
	s.Equal(http.StatusNotFound, rr.Code)

	rr = s.do(http.MethodPost, "/api/blog/draft/increment-views/", s.token(s.owner), nil)
	s.Equal(http.StatusOK, rr.Code)
}

func (s *RouterTestSuite) TestBlogPost_PublishStampsDate() {
	tok := s.token(s.owner)
	rr := s.do(http.MethodPost, "/api/blog/", tok, gin.H{"title": "Hello World", "content": "body"})
	s.Require().Equal(http.StatusCreated, rr.Code, rr.Body.String())

	var dto BlogPostDTO
	s.decode(rr, &dto)
	s.Equal("hello-world", dto.Slug)
	s.Equal(blog.StatusDraft, dto.Status)
	s.Equal("Draft", dto.StatusDisplay)
	s.Nil(dto.PublishedAt)
	s.Equal(5, dto.ReadTime)

	rr = s.do(http.MethodGet, "/api/blog/", "", nil)
	var page PageResponse[BlogPostSummaryDTO]
	s.decode(rr, &page)
	s.Equal(0, page.Count)

	rr = s.do(http.MethodPatch, "/api/blog/hello-world/", tok, gin.H{"status": "published", "views_count": 1000})
	s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())
	s.decode(rr, &dto)
	s.NotNil(dto.PublishedAt)
	s.Equal(0, dto.ViewsCount)

	rr = s.do(http.MethodGet, "/api/blog/", "", nil)
	s.decode(rr, &page)
	s.Equal(1, page.Count)
}

func (s *RouterTestSuite) TestRSSFeed() {
	s.seedPost("visible", blog.StatusPublished, 0)
	s.seedPost("invisible", blog.StatusDraft, 0)

	rr := s.do(http.MethodGet, "/api/blog/feed/", "", nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.Contains(rr.Header().Get("Content-Type"), "rss+xml")
	s.Contains(rr.Body.String(), "/blog/visible")
	s.NotContains(rr.Body.String(), "/blog/invisible")
}

func (s *RouterTestSuite) TestHealth() {
	rr := s.do(http.MethodGet, "/health/", "", nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	var report map[string]any
	s.decode(rr, &report)
	s.Equal("healthy", report["status"])
	s.Equal("connected", report["database"])

	s.dbErr = errors.New("connection refused")
	rr = s.do(http.MethodGet, "/health/", "", nil)
	s.Require().Equal(http.StatusServiceUnavailable, rr.Code)
	s.decode(rr, &report)
	s.Equal("unhealthy", report["status"])
	s.Equal("error", report["database"])
}

func (s *RouterTestSuite) TestMalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/skills/", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token(s.owner))
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	s.Equal(http.StatusBadRequest, rr.Code)

	rr = s.do(http.MethodPost, "/api/skills/", s.token(s.owner), gin.H{"name": "Go", "level": "high"})
	s.Require().Equal(http.StatusBadRequest, rr.Code)
	var body struct {
		Fields map[string][]string `json:"fields"`
	}
	s.decode(rr, &body)
	s.Contains(body.Fields, "level")
}
