package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/sportsconnect/sportsconnect-api/internal/application"
	"github.com/sportsconnect/sportsconnect-api/internal/container"
	"github.com/sportsconnect/sportsconnect-api/internal/domain/entity"
	"github.com/sportsconnect/sportsconnect-api/internal/infrastructure/postgres"
	"github.com/sportsconnect/sportsconnect-api/internal/infrastructure/redisstore"
	"github.com/sportsconnect/sportsconnect-api/internal/infrastructure/search"
	handlers "github.com/sportsconnect/sportsconnect-api/internal/interface/http"
	"github.com/sportsconnect/sportsconnect-api/internal/interface/middleware"
	"github.com/sportsconnect/sportsconnect-api/internal/router/modules"
	"github.com/sportsconnect/sportsconnect-api/pkg/helpers"
)

// InitModules builds repositories, services and handlers from the container
// and adds every route module to the registry.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	rdb := container.GetRedis()

	// repositories
	users := postgres.NewUserRepository(pool)
	experiences := postgres.NewExperienceRepository(pool)
	educations := postgres.NewEducationRepository(pool)
	universities := postgres.NewUniversityRepository(pool)
	interests := postgres.NewInterestRepository(pool)
	photos := postgres.NewProfilePhotoRepository(pool)
	links := postgres.NewUniversityLinkRepository(pool)

	// services
	authSvc := application.NewAuthService(users, redisstore.NewSessionStore(rdb, cfg.SessionTTL), container.GetJWT(), logger)
	userSvc := &application.UserService{
		Users:        users,
		Experiences:  experiences,
		Educations:   educations,
		Photos:       photos,
		Universities: universities,
		Interests:    interests,
		Logger:       logger,
	}
	uniSvc := &application.UniversityService{
		Universities: universities,
		Interests:    interests,
		Links:        links,
		Cache:        redisstore.NewLinkCache(rdb, cfg.LinkCacheTTL),
		Logger:       logger,
	}
	if es := container.GetES(); es != nil {
		uniSvc.Index = search.NewUniversityIndex(es, cfg.ESUniversitiesIdx)
	}
	photoSvc := &application.PhotoService{Photos: photos, Storage: container.GetStorage(), Logger: logger}
	emailSvc := &application.EmailService{
		Mailer:  container.GetMailer(),
		To:      cfg.MailTo,
		AppName: cfg.AppName,
		Enabled: cfg.MailSendEnabled,
		Logger:  logger,
	}

	var allow middleware.AllowFunc
	if !cfg.IsProduction() {
		allow = middleware.AllowPrivateIP()
	}
	var scripter redis.Scripter
	if rdb != nil {
		scripter = rdb
	}
	// Plain-HTTP deployments cannot carry Secure cookies.
	csrfGuard := middleware.CSRF(middleware.CSRFOptions{
		Secret:         cfg.CSRFSecretKey,
		MaxAge:         cfg.CSRFMaxAge,
		Domain:         cfg.CookieDomain,
		SameSite:       cfg.CSRFSameSite(),
		Secure:         cfg.CSRFCookieSecure,
		HTTPOnly:       cfg.CSRFHTTPOnly,
		TrustedOrigins: cfg.CORSOrigins(),
		Plaintext:      !cfg.CSRFCookieSecure,
	})
	guards := modules.Guards{
		Session: middleware.Auth(authSvc),
		CSRF:    csrfGuard,
		Admin:   middleware.RequireRole(users, entity.RoleAdmin),
		Limit: func(max int, window time.Duration, key middleware.KeyFunc) gin.HandlerFunc {
			return middleware.RateLimit(scripter, max, window, key, allow, logger)
		},
	}

	// handlers
	authH := &handlers.AuthHandler{
		Svc:     authSvc,
		Cookies: helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure, cfg.SessionSameSite()),
		AppURL:  cfg.AppURL,
		Logger:  logger,
	}
	if g := container.GetGoogle(); g != nil {
		authH.Google = g
	}
	userH := &handlers.UserHandler{Svc: userSvc, Photos: photoSvc, MaxUploadBytes: cfg.UploadMaxBytes, Logger: logger}
	uniH := &handlers.UniversityHandler{Svc: uniSvc, Logger: logger}
	adminH := &handlers.AdminHandler{Users: userSvc, Universities: uniSvc, Logger: logger}
	emailH := &handlers.EmailHandler{Svc: emailSvc, Logger: logger}

	r.Add(
		modules.NewHealthModule(),
		modules.NewAuthModule(authH, guards),
		modules.NewUserModule(userH, guards),
		modules.NewTimelineModule("/experiences", &handlers.TimelineHandler{
			Svc:    application.NewTimelineService(entity.KindExperience, experiences, users, logger),
			Logger: logger,
		}, guards),
		modules.NewTimelineModule("/educations", &handlers.TimelineHandler{
			Svc:    application.NewTimelineService(entity.KindEducation, educations, users, logger),
			Logger: logger,
		}, guards),
		modules.NewUniversityModule(uniH, guards),
		modules.NewAdminModule(adminH, guards),
		modules.NewEmailModule(emailH, guards),
	)
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(guards))
	}
}
