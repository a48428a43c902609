package routes

import (
	"context"
	"fmt"

	"xgrowth-backend/internal/api/handlers"
	"xgrowth-backend/internal/api/middleware"
	"xgrowth-backend/internal/auth"
	"xgrowth-backend/internal/authz"
	"xgrowth-backend/internal/config"
	"xgrowth-backend/internal/events"
	"xgrowth-backend/internal/repository"
	"xgrowth-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Server is the wired HTTP layer plus the services background workers need
type Server struct {
	Router        *gin.Engine
	Notifications service.NotificationServiceInterface
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, publisher events.Publisher) (*Server, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	// Initialize repositories
	orgTypeRepo := repository.NewOrganizationTypeRepository(db)
	organizationRepo := repository.NewOrganizationRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	relationRepo := repository.NewCompanyRelationRepository(db)
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	lookupRepo := repository.NewLookupValueRepository(db)
	postRepo := repository.NewPostRepository(db)
	ratingRepo := repository.NewPostRatingRepository(db)
	pinRepo := repository.NewPostPinRepository(db)
	briefRepo := repository.NewBriefRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	aggregateRepo, err := repository.NewAggregateRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize aggregate repository: %w", err)
	}

	// Initialize services
	service.SetDefaultPageSize(cfg.DefaultPageSize)
	resolver := service.NewRelationshipResolver(relationRepo, companyRepo, organizationRepo)
	visibility := service.NewVisibilityFilterBuilder(organizationRepo, orgTypeRepo, companyRepo, resolver)
	orgTypeService := service.NewOrganizationTypeService(orgTypeRepo, validator)
	organizationService := service.NewOrganizationService(organizationRepo, orgTypeRepo, companyRepo, aggregateRepo, resolver, validator)
	companyService := service.NewCompanyService(companyRepo, organizationRepo, resolver, validator)
	relationService := service.NewCompanyRelationService(relationRepo, companyRepo, publisher, validator)
	userService := service.NewUserService(userRepo, companyRepo, lookupRepo, validator)
	categoryService := service.NewCategoryService(categoryRepo, validator)
	lookupService := service.NewLookupService(lookupRepo, validator)
	briefService := service.NewBriefService(briefRepo, validator)
	notificationService := service.NewNotificationService(notificationRepo, userRepo)
	postService := service.NewPostService(service.PostServiceDeps{
		Posts:         postRepo,
		Ratings:       ratingRepo,
		Pins:          pinRepo,
		Briefs:        briefRepo,
		Companies:     companyRepo,
		Aggregates:    aggregateRepo,
		Organizations: organizationService,
		Visibility:    visibility,
		Publisher:     publisher,
	}, validator)

	// Initialize auth
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTLMinutes))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService, userRepo)
	authMiddleware := auth.NewAuthMiddleware(authService, userRepo)

	enforcer, err := authz.NewEnforcer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize authorization: %w", err)
	}
	can := enforcer.RequirePermission

	// Initialize handlers
	checks := []handlers.HealthCheck{handlers.DatabaseCheck(db)}
	if bus, ok := publisher.(interface{ Check() error }); ok {
		checks = append(checks, handlers.HealthCheck{Name: "events", Check: func(context.Context) error { return bus.Check() }})
	}
	healthHandler := handlers.NewHealthHandler(checks...)
	orgTypeHandler := handlers.NewOrganizationTypeHandler(orgTypeService)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	companyHandler := handlers.NewCompanyHandler(companyService, relationService)
	relationHandler := handlers.NewCompanyRelationHandler(relationService)
	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	lookupHandler := handlers.NewLookupHandler(lookupService)
	postHandler := handlers.NewPostHandler(postService)
	briefHandler := handlers.NewBriefHandler(briefService, postService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authGroup := router.Group("/api/auth")
	{
		// Token issuance trusts the email it is given, so it only exists outside production
		if cfg.IsDevelopment() {
			authGroup.POST("/token", middleware.RateLimit(cfg.RateLimitPerMinute), authHandler.IssueToken)
		}
		authGroup.POST("/validate", authHandler.ValidateToken)
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		orgTypes := v1.Group("/organization-types")
		{
			orgTypes.GET("", can("organization-types", authz.ActionRead), orgTypeHandler.ListOrganizationTypes)
			orgTypes.POST("", can("organization-types", authz.ActionWrite), orgTypeHandler.CreateOrganizationType)
			orgTypes.GET("/:id", can("organization-types", authz.ActionRead), orgTypeHandler.GetOrganizationType)
			orgTypes.PUT("/:id", can("organization-types", authz.ActionWrite), orgTypeHandler.UpdateOrganizationType)
			orgTypes.DELETE("/:id", can("organization-types", authz.ActionWrite), orgTypeHandler.DeleteOrganizationType)
		}

		organizations := v1.Group("/organizations")
		{
			organizations.GET("", can("organizations", authz.ActionRead), organizationHandler.ListOrganizations)
			organizations.POST("", can("organizations", authz.ActionWrite), organizationHandler.CreateOrganization)
			organizations.GET("/discover", can("organizations", authz.ActionRead), organizationHandler.DiscoverOrganizations)
			organizations.GET("/:id", can("organizations", authz.ActionRead), organizationHandler.GetOrganization)
			organizations.PUT("/:id", can("organizations", authz.ActionWrite), organizationHandler.UpdateOrganization)
			organizations.DELETE("/:id", can("organizations", authz.ActionWrite), organizationHandler.DeleteOrganization)
			organizations.GET("/:id/related", can("organizations", authz.ActionRead), organizationHandler.GetRelatedOrganizations)
			organizations.GET("/:id/companies", can("companies", authz.ActionRead), organizationHandler.GetOrganizationCompanies)
		}

		companies := v1.Group("/companies")
		{
			companies.POST("", can("companies", authz.ActionWrite), companyHandler.CreateCompany)
			companies.GET("/by-domain/:domain", can("companies", authz.ActionRead), companyHandler.GetCompanyByDomain)
			companies.GET("/:id", can("companies", authz.ActionRead), companyHandler.GetCompany)
			companies.PUT("/:id", can("companies", authz.ActionWrite), companyHandler.UpdateCompany)
			companies.DELETE("/:id", can("companies", authz.ActionWrite), companyHandler.DeleteCompany)
			companies.GET("/:id/related", can("companies", authz.ActionRead), companyHandler.GetRelatedCompanies)
			companies.GET("/:id/relations", can("company-relations", authz.ActionRead), companyHandler.GetCompanyRelations)
			companies.GET("/:id/briefs", can("briefs", authz.ActionRead), briefHandler.GetCompanyBriefs)
		}

		relations := v1.Group("/company-relations")
		{
			relations.POST("", can("company-relations", authz.ActionWrite), relationHandler.ConnectCompanies)
			relations.PUT("/:id/disable", can("company-relations", authz.ActionWrite), relationHandler.DisableRelation)
			relations.PUT("/:id/enable", can("company-relations", authz.ActionWrite), relationHandler.EnableRelation)
			relations.DELETE("/:id", can("company-relations", authz.ActionDelete), relationHandler.DeleteRelation)
		}

		users := v1.Group("/users")
		{
			users.GET("", can("users", authz.ActionRead), userHandler.ListUsers)
			users.POST("", can("users", authz.ActionWrite), userHandler.CreateUser)
			users.GET("/me", userHandler.GetCurrentUser)
			users.GET("/:id", can("users", authz.ActionRead), userHandler.GetUser)
			users.PUT("/:id", can("users", authz.ActionWrite), userHandler.UpdateUser)
			users.DELETE("/:id", can("users", authz.ActionWrite), userHandler.DeleteUser)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", can("categories", authz.ActionRead), categoryHandler.ListCategories)
			categories.POST("", can("categories", authz.ActionWrite), categoryHandler.CreateCategory)
			categories.PUT("/:id", can("categories", authz.ActionWrite), categoryHandler.UpdateCategory)
			categories.DELETE("/:id", can("categories", authz.ActionWrite), categoryHandler.DeleteCategory)
		}

		lookups := v1.Group("/lookups")
		{
			lookups.GET("/:kind", can("lookups", authz.ActionRead), lookupHandler.ListLookupValues)
			lookups.POST("", can("lookups", authz.ActionWrite), lookupHandler.CreateLookupValue)
			lookups.PUT("/:id", can("lookups", authz.ActionWrite), lookupHandler.RenameLookupValue)
			lookups.DELETE("/:id", can("lookups", authz.ActionWrite), lookupHandler.DeleteLookupValue)
		}

		// Ownership of posts and briefs is checked by the services
		posts := v1.Group("/posts")
		{
			posts.GET("", can("posts", authz.ActionRead), postHandler.GetFeed)
			posts.POST("", can("posts", authz.ActionWrite), postHandler.CreatePost)
			posts.GET("/:id", can("posts", authz.ActionRead), postHandler.GetPostDetail)
			posts.PUT("/:id", can("posts", authz.ActionWrite), postHandler.UpdatePost)
			posts.DELETE("/:id", can("posts", authz.ActionWrite), postHandler.DeletePost)
			posts.POST("/:id/ratings", can("ratings", authz.ActionWrite), postHandler.RatePost)
			posts.POST("/:id/pin", can("pins", authz.ActionWrite), postHandler.PinPost)
			posts.DELETE("/:id/pin", can("pins", authz.ActionWrite), postHandler.UnpinPost)
		}

		briefs := v1.Group("/briefs")
		{
			briefs.POST("", can("briefs", authz.ActionWrite), briefHandler.CreateBrief)
			briefs.GET("/:id", can("briefs", authz.ActionRead), briefHandler.GetBrief)
			briefs.PUT("/:id", can("briefs", authz.ActionWrite), briefHandler.UpdateBrief)
			briefs.DELETE("/:id", can("briefs", authz.ActionWrite), briefHandler.DeleteBrief)
			briefs.POST("/:id/close", can("briefs", authz.ActionWrite), briefHandler.CloseBrief)
			briefs.GET("/:id/posts", can("posts", authz.ActionRead), briefHandler.GetBriefPosts)
		}

		notifications := v1.Group("/notifications")
		{
			notifications.GET("", can("notifications", authz.ActionRead), notificationHandler.ListNotifications)
			notifications.POST("/read-all", can("notifications", authz.ActionWrite), notificationHandler.MarkAllNotificationsRead)
			notifications.POST("/:id/read", can("notifications", authz.ActionWrite), notificationHandler.MarkNotificationRead)
		}
	}

	return &Server{Router: router, Notifications: notificationService}, nil
}
