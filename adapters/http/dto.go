package http

import (
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/internal/domain/blog"
	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
)

// Profile DTOs

type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

type ProfileDTO struct {
	ID           uuid.UUID `json:"id"`
	User         UserDTO   `json:"user"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	FullName     string    `json:"full_name"`
	Bio          string    `json:"bio"`
	ProfilePhoto string    `json:"profile_photo"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Location     string    `json:"location"`
	LinkedinURL  string    `json:"linkedin_url"`
	GithubURL    string    `json:"github_url"`
	TwitterURL   string    `json:"twitter_url"`
	WebsiteURL   string    `json:"website_url"`
	JobTitle     string    `json:"job_title"`
	Company      string    `json:"company"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ProfileSummaryDTO struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	FullName     string    `json:"full_name"`
	Bio          string    `json:"bio"`
	ProfilePhoto string    `json:"profile_photo"`
	JobTitle     string    `json:"job_title"`
	Company      string    `json:"company"`
}

// The account's own names are not carried on the profile row, so the nested
// user mirrors the profile's names.
func ToProfileDTO(p *profile.Profile) ProfileDTO {
	return ProfileDTO{
		ID: p.ID,
		User: UserDTO{
			ID:        p.UserID,
			Username:  p.UserName,
			Email:     p.UserEmail,
			FirstName: p.FirstName,
			LastName:  p.LastName,
		},
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		FullName:     p.FullName(),
		Bio:          p.Bio,
		ProfilePhoto: p.ProfilePhoto,
		Email:        p.Email,
		Phone:        p.Phone,
		Location:     p.Location,
		LinkedinURL:  p.LinkedinURL,
		GithubURL:    p.GithubURL,
		TwitterURL:   p.TwitterURL,
		WebsiteURL:   p.WebsiteURL,
		JobTitle:     p.JobTitle,
		Company:      p.Company,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func ToProfileSummaryDTO(p *profile.Profile) ProfileSummaryDTO {
	return ProfileSummaryDTO{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		FullName:     p.FullName(),
		Bio:          p.Bio,
		ProfilePhoto: p.ProfilePhoto,
		JobTitle:     p.JobTitle,
		Company:      p.Company,
	}
}

type ProfileRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Bio          string `json:"bio"`
	ProfilePhoto string `json:"profile_photo"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	LinkedinURL  string `json:"linkedin_url"`
	GithubURL    string `json:"github_url"`
	TwitterURL   string `json:"twitter_url"`
	WebsiteURL   string `json:"website_url"`
	JobTitle     string `json:"job_title"`
	Company      string `json:"company"`
	IsActive     bool   `json:"is_active"`
}

func newProfileRequest() ProfileRequest {
	return ProfileRequest{IsActive: true}
}

func profileRequestFrom(p *profile.Profile) ProfileRequest {
	return ProfileRequest{
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Bio:          p.Bio,
		ProfilePhoto: p.ProfilePhoto,
		Email:        p.Email,
		Phone:        p.Phone,
		Location:     p.Location,
		LinkedinURL:  p.LinkedinURL,
		GithubURL:    p.GithubURL,
		TwitterURL:   p.TwitterURL,
		WebsiteURL:   p.WebsiteURL,
		JobTitle:     p.JobTitle,
		Company:      p.Company,
		IsActive:     p.IsActive,
	}
}

func (r ProfileRequest) apply(p *profile.Profile) {
	p.FirstName = r.FirstName
	p.LastName = r.LastName
	p.Bio = r.Bio
	p.ProfilePhoto = r.ProfilePhoto
	p.Email = r.Email
	p.Phone = r.Phone
	p.Location = r.Location
	p.LinkedinURL = r.LinkedinURL
	p.GithubURL = r.GithubURL
	p.TwitterURL = r.TwitterURL
	p.WebsiteURL = r.WebsiteURL
	p.JobTitle = r.JobTitle
	p.Company = r.Company
	p.IsActive = r.IsActive
}

// Project DTOs

type ProjectDTO struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"short_description"`
	Image            string    `json:"image"`
	ProjectURL       string    `json:"project_url"`
	GithubURL        string    `json:"github_url"`
	DemoURL          string    `json:"demo_url"`
	Tags             string    `json:"tags"`
	TagList          []string  `json:"tag_list"`
	Technologies     string    `json:"technologies"`
	TechnologyList   []string  `json:"technology_list"`
	StartDate        *Date     `json:"start_date"`
	EndDate          *Date     `json:"end_date"`
	IsFeatured       bool      `json:"is_featured"`
	IsPublished      bool      `json:"is_published"`
	Order            int       `json:"order"`
	User             uuid.UUID `json:"user"`
	UserName         string    `json:"user_name"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type ProjectSummaryDTO struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	ShortDescription string    `json:"short_description"`
	Image            string    `json:"image"`
	TagList          []string  `json:"tag_list"`
	TechnologyList   []string  `json:"technology_list"`
	IsFeatured       bool      `json:"is_featured"`
	IsPublished      bool      `json:"is_published"`
	StartDate        *Date     `json:"start_date"`
	CreatedAt        time.Time `json:"created_at"`
}

func ToProjectDTO(p *project.Project) ProjectDTO {
	return ProjectDTO{
		ID:               p.ID,
		Title:            p.Title,
		Slug:             p.Slug,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Image:            p.Image,
		ProjectURL:       p.ProjectURL,
		GithubURL:        p.GithubURL,
		DemoURL:          p.DemoURL,
		Tags:             p.Tags,
		TagList:          p.TagList(),
		Technologies:     p.Technologies,
		TechnologyList:   p.TechnologyList(),
		StartDate:        OptionalDate(p.StartDate),
		EndDate:          OptionalDate(p.EndDate),
		IsFeatured:       p.IsFeatured,
		IsPublished:      p.IsPublished,
		Order:            p.Order,
		User:             p.UserID,
		UserName:         p.UserName,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func ToProjectSummaryDTO(p *project.Project) ProjectSummaryDTO {
	return ProjectSummaryDTO{
		ID:               p.ID,
		Title:            p.Title,
		Slug:             p.Slug,
		ShortDescription: p.ShortDescription,
		Image:            p.Image,
		TagList:          p.TagList(),
		TechnologyList:   p.TechnologyList(),
		IsFeatured:       p.IsFeatured,
		IsPublished:      p.IsPublished,
		StartDate:        OptionalDate(p.StartDate),
		CreatedAt:        p.CreatedAt,
	}
}

type ProjectRequest struct {
	Title            string `json:"title"`
	Slug             string `json:"slug"`
	Description      string `json:"description"`
	ShortDescription string `json:"short_description"`
	Image            string `json:"image"`
	ProjectURL       string `json:"project_url"`
	GithubURL        string `json:"github_url"`
	DemoURL          string `json:"demo_url"`
	Tags             string `json:"tags"`
	Technologies     string `json:"technologies"`
	StartDate        *Date  `json:"start_date"`
	EndDate          *Date  `json:"end_date"`
	IsFeatured       bool   `json:"is_featured"`
	IsPublished      bool   `json:"is_published"`
	Order            int    `json:"order"`
}

func newProjectRequest() ProjectRequest {
	return ProjectRequest{IsPublished: true}
}

func projectRequestFrom(p *project.Project) ProjectRequest {
	return ProjectRequest{
		Title:            p.Title,
		Slug:             p.Slug,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Image:            p.Image,
		ProjectURL:       p.ProjectURL,
		GithubURL:        p.GithubURL,
		DemoURL:          p.DemoURL,
		Tags:             p.Tags,
		Technologies:     p.Technologies,
		StartDate:        OptionalDate(p.StartDate),
		EndDate:          OptionalDate(p.EndDate),
		IsFeatured:       p.IsFeatured,
		IsPublished:      p.IsPublished,
		Order:            p.Order,
	}
}

func (r ProjectRequest) apply(p *project.Project) {
	p.Title = r.Title
	p.Slug = r.Slug
	p.Description = r.Description
	p.ShortDescription = r.ShortDescription
	p.Image = r.Image
	p.ProjectURL = r.ProjectURL
	p.GithubURL = r.GithubURL
	p.DemoURL = r.DemoURL
	p.Tags = r.Tags
	p.Technologies = r.Technologies
	p.StartDate = r.StartDate.TimePtr()
	p.EndDate = r.EndDate.TimePtr()
	p.IsFeatured = r.IsFeatured
	p.IsPublished = r.IsPublished
	p.Order = r.Order
}

// Experience DTOs

type ExperienceDTO struct {
	ID             uuid.UUID `json:"id"`
	Company        string    `json:"company"`
	Position       string    `json:"position"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	StartDate      Date      `json:"start_date"`
	EndDate        *Date     `json:"end_date"`
	IsCurrent      bool      `json:"is_current"`
	CompanyURL     string    `json:"company_url"`
	Technologies   string    `json:"technologies"`
	TechnologyList []string  `json:"technology_list"`
	Order          int       `json:"order"`
	User           uuid.UUID `json:"user"`
	UserName       string    `json:"user_name"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToExperienceDTO(e *experience.Experience) ExperienceDTO {
	return ExperienceDTO{
		ID:             e.ID,
		Company:        e.Company,
		Position:       e.Position,
		Location:       e.Location,
		Description:    e.Description,
		StartDate:      NewDate(e.StartDate),
		EndDate:        OptionalDate(e.EndDate),
		IsCurrent:      e.IsCurrent,
		CompanyURL:     e.CompanyURL,
		Technologies:   e.Technologies,
		TechnologyList: e.TechnologyList(),
		Order:          e.Order,
		User:           e.UserID,
		UserName:       e.UserName,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

type ExperienceRequest struct {
	Company      string `json:"company"`
	Position     string `json:"position"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	StartDate    *Date  `json:"start_date"`
	EndDate      *Date  `json:"end_date"`
	IsCurrent    bool   `json:"is_current"`
	CompanyURL   string `json:"company_url"`
	Technologies string `json:"technologies"`
	Order        int    `json:"order"`
}

func experienceRequestFrom(e *experience.Experience) ExperienceRequest {
	start := NewDate(e.StartDate)
	return ExperienceRequest{
		Company:      e.Company,
		Position:     e.Position,
		Location:     e.Location,
		Description:  e.Description,
		StartDate:    &start,
		EndDate:      OptionalDate(e.EndDate),
		IsCurrent:    e.IsCurrent,
		CompanyURL:   e.CompanyURL,
		Technologies: e.Technologies,
		Order:        e.Order,
	}
}

func (r ExperienceRequest) apply(e *experience.Experience) {
	e.Company = r.Company
	e.Position = r.Position
	e.Location = r.Location
	e.Description = r.Description
	e.StartDate = time.Time{}
	if r.StartDate != nil {
		e.StartDate = r.StartDate.Time
	}
	e.EndDate = r.EndDate.TimePtr()
	e.IsCurrent = r.IsCurrent
	e.CompanyURL = r.CompanyURL
	e.Technologies = r.Technologies
	e.Order = r.Order
}

// Education DTOs

type EducationDTO struct {
	ID             uuid.UUID `json:"id"`
	Institution    string    `json:"institution"`
	Degree         string    `json:"degree"`
	FieldOfStudy   string    `json:"field_of_study"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	StartDate      Date      `json:"start_date"`
	EndDate        *Date     `json:"end_date"`
	Grade          string    `json:"grade"`
	InstitutionURL string    `json:"institution_url"`
	Order          int       `json:"order"`
	User           uuid.UUID `json:"user"`
	UserName       string    `json:"user_name"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToEducationDTO(e *education.Education) EducationDTO {
	return EducationDTO{
		ID:             e.ID,
		Institution:    e.Institution,
		Degree:         e.Degree,
		FieldOfStudy:   e.FieldOfStudy,
		Location:       e.Location,
		Description:    e.Description,
		StartDate:      NewDate(e.StartDate),
		EndDate:        OptionalDate(e.EndDate),
		Grade:          e.Grade,
		InstitutionURL: e.InstitutionURL,
		Order:          e.Order,
		User:           e.UserID,
		UserName:       e.UserName,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

type EducationRequest struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	FieldOfStudy   string `json:"field_of_study"`
	Location       string `json:"location"`
	Description    string `json:"description"`
	StartDate      *Date  `json:"start_date"`
	EndDate        *Date  `json:"end_date"`
	Grade          string `json:"grade"`
	InstitutionURL string `json:"institution_url"`
	Order          int    `json:"order"`
}

func educationRequestFrom(e *education.Education) EducationRequest {
	start := NewDate(e.StartDate)
	return EducationRequest{
		Institution:    e.Institution,
		Degree:         e.Degree,
		FieldOfStudy:   e.FieldOfStudy,
		Location:       e.Location,
		Description:    e.Description,
		StartDate:      &start,
		EndDate:        OptionalDate(e.EndDate),
		Grade:          e.Grade,
		InstitutionURL: e.InstitutionURL,
		Order:          e.Order,
	}
}

func (r EducationRequest) apply(e *education.Education) {
	e.Institution = r.Institution
	e.Degree = r.Degree
	e.FieldOfStudy = r.FieldOfStudy
	e.Location = r.Location
	e.Description = r.Description
	e.StartDate = time.Time{}
	if r.StartDate != nil {
		e.StartDate = r.StartDate.Time
	}
	e.EndDate = r.EndDate.TimePtr()
	e.Grade = r.Grade
	e.InstitutionURL = r.InstitutionURL
	e.Order = r.Order
}

// Skill DTOs

type SkillDTO struct {
	ID                 uuid.UUID         `json:"id"`
	Name               string            `json:"name"`
	Category           skill.Category    `json:"category"`
	CategoryDisplay    string            `json:"category_display"`
	Proficiency        skill.Proficiency `json:"proficiency"`
	ProficiencyDisplay string            `json:"proficiency_display"`
	Level              int               `json:"level"`
	Description        string            `json:"description"`
	YearsOfExperience  *float64          `json:"years_of_experience"`
	Icon               string            `json:"icon"`
	Order              int               `json:"order"`
	IsFeatured         bool              `json:"is_featured"`
	User               uuid.UUID         `json:"user"`
	UserName           string            `json:"user_name"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

type SkillSummaryDTO struct {
	ID                 uuid.UUID         `json:"id"`
	Name               string            `json:"name"`
	Category           skill.Category    `json:"category"`
	Proficiency        skill.Proficiency `json:"proficiency"`
	ProficiencyDisplay string            `json:"proficiency_display"`
	Level              int               `json:"level"`
	Icon               string            `json:"icon"`
	IsFeatured         bool              `json:"is_featured"`
}

func ToSkillDTO(s *skill.Skill) SkillDTO {
	return SkillDTO{
		ID:                 s.ID,
		Name:               s.Name,
		Category:           s.Category,
		CategoryDisplay:    s.CategoryDisplay(),
		Proficiency:        s.Proficiency,
		ProficiencyDisplay: s.ProficiencyDisplay(),
		Level:              s.Level,
		Description:        s.Description,
		YearsOfExperience:  s.YearsOfExperience,
		Icon:               s.Icon,
		Order:              s.Order,
		IsFeatured:         s.IsFeatured,
		User:               s.UserID,
		UserName:           s.UserName,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

func ToSkillSummaryDTO(s *skill.Skill) SkillSummaryDTO {
	return SkillSummaryDTO{
		ID:                 s.ID,
		Name:               s.Name,
		Category:           s.Category,
		Proficiency:        s.Proficiency,
		ProficiencyDisplay: s.ProficiencyDisplay(),
		Level:              s.Level,
		Icon:               s.Icon,
		IsFeatured:         s.IsFeatured,
	}
}

type SkillRequest struct {
	Name              string            `json:"name"`
	Category          skill.Category    `json:"category"`
	Proficiency       skill.Proficiency `json:"proficiency"`
	Level             int               `json:"level"`
	Description       string            `json:"description"`
	YearsOfExperience *float64          `json:"years_of_experience"`
	Icon              string            `json:"icon"`
	Order             int               `json:"order"`
	IsFeatured        bool              `json:"is_featured"`
}

func newSkillRequest() SkillRequest {
	return SkillRequest{
		Category:    skill.CategoryOther,
		Proficiency: skill.ProficiencyIntermediate,
		Level:       skill.DefaultLevel,
	}
}

func skillRequestFrom(s *skill.Skill) SkillRequest {
	return SkillRequest{
		Name:              s.Name,
		Category:          s.Category,
		Proficiency:       s.Proficiency,
		Level:             s.Level,
		Description:       s.Description,
		YearsOfExperience: s.YearsOfExperience,
		Icon:              s.Icon,
		Order:             s.Order,
		IsFeatured:        s.IsFeatured,
	}
}

func (r SkillRequest) apply(s *skill.Skill) {
	s.Name = r.Name
	s.Category = r.Category
	s.Proficiency = r.Proficiency
	s.Level = r.Level
	s.Description = r.Description
	s.YearsOfExperience = r.YearsOfExperience
	s.Icon = r.Icon
	s.Order = r.Order
	s.IsFeatured = r.IsFeatured
}

// Blog DTOs

type BlogPostDTO struct {
	ID              uuid.UUID   `json:"id"`
	Title           string      `json:"title"`
	Slug            string      `json:"slug"`
	Excerpt         string      `json:"excerpt"`
	Content         string      `json:"content"`
	FeaturedImage   string      `json:"featured_image"`
	Status          blog.Status `json:"status"`
	StatusDisplay   string      `json:"status_display"`
	PublishedAt     *time.Time  `json:"published_at"`
	Tags            string      `json:"tags"`
	TagList         []string    `json:"tag_list"`
	ViewsCount      int         `json:"views_count"`
	ReadTime        int         `json:"read_time"`
	IsFeatured      bool        `json:"is_featured"`
	MetaDescription string      `json:"meta_description"`
	MetaKeywords    string      `json:"meta_keywords"`
	Author          uuid.UUID   `json:"author"`
	AuthorName      string      `json:"author_name"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type BlogPostSummaryDTO struct {
	ID            uuid.UUID   `json:"id"`
	Title         string      `json:"title"`
	Slug          string      `json:"slug"`
	Excerpt       string      `json:"excerpt"`
	FeaturedImage string      `json:"featured_image"`
	Status        blog.Status `json:"status"`
	PublishedAt   *time.Time  `json:"published_at"`
	TagList       []string    `json:"tag_list"`
	ViewsCount    int         `json:"views_count"`
	ReadTime      int         `json:"read_time"`
	IsFeatured    bool        `json:"is_featured"`
	AuthorName    string      `json:"author_name"`
	CreatedAt     time.Time   `json:"created_at"`
}

func ToBlogPostDTO(p *blog.Post) BlogPostDTO {
	return BlogPostDTO{
		ID:              p.ID,
		Title:           p.Title,
		Slug:            p.Slug,
		Excerpt:         p.Excerpt,
		Content:         p.Content,
		FeaturedImage:   p.FeaturedImage,
		Status:          p.Status,
		StatusDisplay:   p.StatusDisplay(),
		PublishedAt:     p.PublishedAt,
		Tags:            p.Tags,
		TagList:         p.TagList(),
		ViewsCount:      p.ViewsCount,
		ReadTime:        p.ReadTime,
		IsFeatured:      p.IsFeatured,
		MetaDescription: p.MetaDescription,
		MetaKeywords:    p.MetaKeywords,
		Author:          p.AuthorID,
		AuthorName:      p.AuthorName,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func ToBlogPostSummaryDTO(p *blog.Post) BlogPostSummaryDTO {
	return BlogPostSummaryDTO{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Excerpt:       p.Excerpt,
		FeaturedImage: p.FeaturedImage,
		Status:        p.Status,
		PublishedAt:   p.PublishedAt,
		TagList:       p.TagList(),
		ViewsCount:    p.ViewsCount,
		ReadTime:      p.ReadTime,
		IsFeatured:    p.IsFeatured,
		AuthorName:    p.AuthorName,
		CreatedAt:     p.CreatedAt,
	}
}

type BlogPostRequest struct {
	Title           string      `json:"title"`
	Slug            string      `json:"slug"`
	Excerpt         string      `json:"excerpt"`
	Content         string      `json:"content"`
	FeaturedImage   string      `json:"featured_image"`
	Status          blog.Status `json:"status"`
	PublishedAt     *time.Time  `json:"published_at"`
	Tags            string      `json:"tags"`
	ReadTime        int         `json:"read_time"`
	IsFeatured      bool        `json:"is_featured"`
	MetaDescription string      `json:"meta_description"`
	MetaKeywords    string      `json:"meta_keywords"`
}

func newBlogPostRequest() BlogPostRequest {
	return BlogPostRequest{Status: blog.StatusDraft, ReadTime: blog.DefaultReadTime}
}

func blogPostRequestFrom(p *blog.Post) BlogPostRequest {
	return BlogPostRequest{
		Title:           p.Title,
		Slug:            p.Slug,
		Excerpt:         p.Excerpt,
		Content:         p.Content,
		FeaturedImage:   p.FeaturedImage,
		Status:          p.Status,
		PublishedAt:     p.PublishedAt,
		Tags:            p.Tags,
		ReadTime:        p.ReadTime,
		IsFeatured:      p.IsFeatured,
		MetaDescription: p.MetaDescription,
		MetaKeywords:    p.MetaKeywords,
	}
}

func (r BlogPostRequest) apply(p *blog.Post) {
	p.Title = r.Title
	p.Slug = r.Slug
	p.Excerpt = r.Excerpt
	p.Content = r.Content
	p.FeaturedImage = r.FeaturedImage
	p.Status = r.Status
	p.PublishedAt = r.PublishedAt
	p.Tags = r.Tags
	p.ReadTime = r.ReadTime
	p.IsFeatured = r.IsFeatured
	p.MetaDescription = r.MetaDescription
	p.MetaKeywords = r.MetaKeywords
}
