package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth       *AuthHandler
	Profile    *ProfileHandler
	Project    *ProjectHandler
	Experience *ExperienceHandler
	Education  *EducationHandler
	Skill      *SkillHandler
	Blog       *BlogHandler
	RSS        *RSSHandler
	Health     *HealthHandler
}

type RouterConfig struct {
	ServiceName string
	// Verbose exposes internal error details in responses.
	Verbose bool
}

func NewRouter(cfg RouterConfig, h Handlers, jwtSvc *auth.JWTService, sessions service.SessionStore, log logger.Logger) *gin.Engine {
	registerJSONFieldNames()

	router := gin.New()
	router.Use(
		gin.Recovery(),
		TracingMiddleware(cfg.ServiceName),
		MetricsMiddleware(),
		RequestLogger(log),
		ErrorMiddleware(log, cfg.Verbose),
	)

	router.GET("/health/", h.Health.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.Use(AuthMiddleware(jwtSvc, sessions, log))
	requireAuth := RequireAuth()

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/login", h.Auth.Login)
		authRoutes.POST("/logout", requireAuth, h.Auth.Logout)
	}

	profiles := api.Group("/profiles")
	{
		profiles.GET("/", h.Profile.ListProfiles)
		profiles.POST("/", requireAuth, h.Profile.CreateProfile)
		profiles.GET("/:id/", h.Profile.GetProfile)
		profiles.PUT("/:id/", requireAuth, h.Profile.UpdateProfile)
		profiles.PATCH("/:id/", requireAuth, h.Profile.PatchProfile)
		profiles.DELETE("/:id/", requireAuth, h.Profile.DeleteProfile)
		profiles.POST("/:id/photo/", requireAuth, h.Profile.UploadPhoto)
	}

	projects := api.Group("/projects")
	{
		projects.GET("/", h.Project.ListProjects)
		projects.POST("/", requireAuth, h.Project.CreateProject)
		projects.GET("/featured/", h.Project.FeaturedProjects)
		projects.GET("/:slug/", h.Project.GetProject)
		projects.PUT("/:slug/", requireAuth, h.Project.UpdateProject)
		projects.PATCH("/:slug/", requireAuth, h.Project.PatchProject)
		projects.DELETE("/:slug/", requireAuth, h.Project.DeleteProject)
		projects.POST("/:slug/image/", requireAuth, h.Project.UploadImage)
	}

	experiences := api.Group("/experiences")
	{
		experiences.GET("/", h.Experience.ListExperiences)
		experiences.POST("/", requireAuth, h.Experience.CreateExperience)
		experiences.GET("/current/", h.Experience.CurrentExperiences)
		experiences.GET("/:id/", h.Experience.GetExperience)
		experiences.PUT("/:id/", requireAuth, h.Experience.UpdateExperience)
		experiences.PATCH("/:id/", requireAuth, h.Experience.PatchExperience)
		experiences.DELETE("/:id/", requireAuth, h.Experience.DeleteExperience)
	}

	educationRoutes := api.Group("/education")
	{
		educationRoutes.GET("/", h.Education.ListEducation)
		educationRoutes.POST("/", requireAuth, h.Education.CreateEducation)
		educationRoutes.GET("/:id/", h.Education.GetEducation)
		educationRoutes.PUT("/:id/", requireAuth, h.Education.UpdateEducation)
		educationRoutes.PATCH("/:id/", requireAuth, h.Education.PatchEducation)
		educationRoutes.DELETE("/:id/", requireAuth, h.Education.DeleteEducation)
	}

	skills := api.Group("/skills")
	{
		skills.GET("/", h.Skill.ListSkills)
		skills.POST("/", requireAuth, h.Skill.CreateSkill)
		skills.GET("/featured/", h.Skill.FeaturedSkills)
		skills.GET("/by-category/", h.Skill.SkillsByCategory)
		skills.GET("/by_category/", h.Skill.SkillsByCategory)
		skills.GET("/:id/", h.Skill.GetSkill)
		skills.PUT("/:id/", requireAuth, h.Skill.UpdateSkill)
		skills.PATCH("/:id/", requireAuth, h.Skill.PatchSkill)
		skills.DELETE("/:id/", requireAuth, h.Skill.DeleteSkill)
	}

	posts := api.Group("/blog")
	{
		posts.GET("/", h.Blog.ListPosts)
		posts.POST("/", requireAuth, h.Blog.CreatePost)
		posts.GET("/featured/", h.Blog.FeaturedPosts)
		posts.GET("/feed/", h.RSS.GenerateRSS)
		posts.GET("/:slug/", h.Blog.GetPost)
		posts.PUT("/:slug/", requireAuth, h.Blog.UpdatePost)
		posts.PATCH("/:slug/", requireAuth, h.Blog.PatchPost)
		posts.DELETE("/:slug/", requireAuth, h.Blog.DeletePost)
		posts.POST("/:slug/increment-views/", h.Blog.IncrementViews)
		posts.POST("/:slug/increment_views/", h.Blog.IncrementViews)
		posts.POST("/:slug/featured-image/", requireAuth, h.Blog.UploadFeaturedImage)
	}

	return router
}
