package api

import (
	"os"
	"strconv"
	"time"

	"ellp/voluntariado/internal/auth"
	"ellp/voluntariado/internal/common"
	"ellp/voluntariado/internal/db"
	"ellp/voluntariado/internal/db/repositories"
	"ellp/voluntariado/internal/logging"
	"ellp/voluntariado/internal/metrics"
	"ellp/voluntariado/internal/services"
)

type Repositories struct {
	Users       *repositories.UserRepository
	Voluntarios *repositories.VoluntarioRepository
	Oficinas    *repositories.OficinaRepository
	Termos      *repositories.TermoLogRepository
}

type Services struct {
	Cache       common.CacheInterface
	Auth        *services.AuthService
	Voluntarios *services.VoluntarioService
	Oficinas    *services.OficinaService
	Exports     *services.ExportService
	Dashboard   *services.DashboardService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Issuer   *auth.Issuer
	Metrics  *metrics.MetricsRegistry
}

const defaultTokenValidityHours = 168

// tokenValidity reads JWT_EXPIRES_HOURS; the default is one week.
func tokenValidity() time.Duration {
	raw := os.Getenv("JWT_EXPIRES_HOURS")
	if raw == "" {
		return defaultTokenValidityHours * time.Hour
	}
	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		logging.Warn("Invalid JWT_EXPIRES_HOURS, using default", "value", raw)
		return defaultTokenValidityHours * time.Hour
	}
	return time.Duration(hours) * time.Hour
}

// InitDependencies wires repositories and services off the shared GORM
// connection. The cache backend is chosen by CACHE_BACKEND (redis or
// memory); a redis failure falls back to the in-memory cache.
func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	repos := &Repositories{
		Users:       repositories.NewUserRepository(db.PgDB),
		Voluntarios: repositories.NewVoluntarioRepository(db.PgDB),
		Oficinas:    repositories.NewOficinaRepository(db.PgDB),
		Termos:      repositories.NewTermoLogRepository(db.PgDB),
	}

	var cache common.CacheInterface
	if os.Getenv("CACHE_BACKEND") == "redis" {
		redisCache, err := common.NewRedisCacheService()
		if err != nil {
			logging.Warn("Redis cache unavailable, falling back to in-memory", "error", err.Error())
			cache = common.NewCacheService(60, 120)
		} else {
			cache = redisCache
		}
	} else {
		logging.Debug("Using in-memory cache backend")
		cache = common.NewCacheService(60, 120)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
		logging.Warn("JWT_SECRET not set, using development secret")
	}
	issuer := auth.NewIssuer([]byte(secret), tokenValidity())

	svcs := &Services{
		Cache:       cache,
		Auth:        services.NewAuthService(repos.Users, issuer),
		Voluntarios: services.NewVoluntarioService(repos.Voluntarios),
		Oficinas:    services.NewOficinaService(repos.Oficinas),
		Exports:     services.NewExportService(repos.Voluntarios, repos.Termos),
		Dashboard:   services.NewDashboardService(repos.Voluntarios, repos.Oficinas, repos.Termos, cache),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Issuer:   issuer,
		Metrics:  metricsReg,
	}, nil
}
