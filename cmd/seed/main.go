package main

import (
	"context"
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/sportsconnect/sportsconnect-api/config"
	"github.com/sportsconnect/sportsconnect-api/internal/application"
	"github.com/sportsconnect/sportsconnect-api/internal/domain/entity"
	repo "github.com/sportsconnect/sportsconnect-api/internal/domain/repository"
	pginfra "github.com/sportsconnect/sportsconnect-api/internal/infrastructure/postgres"
	"github.com/sportsconnect/sportsconnect-api/internal/infrastructure/search"
	"github.com/sportsconnect/sportsconnect-api/pkg/helpers"
)

var sampleUniversities = []entity.University{
	{Name: "Stanford University", City: "Stanford", State: "CA", Conference: "ACC", Division: "I", Category: "Private", Region: "West"},
	{Name: "University of Michigan", City: "Ann Arbor", State: "MI", Conference: "Big Ten", Division: "I", Category: "Public", Region: "Midwest"},
	{Name: "Duke University", City: "Durham", State: "NC", Conference: "ACC", Division: "I", Category: "Private", Region: "South"},
	{Name: "Williams College", City: "Williamstown", State: "MA", Conference: "NESCAC", Division: "III", Category: "Private", Region: "Northeast"},
}

var sampleLinks = []entity.UniversityLink{
	{Name: "Stanford University", Link: "https://gostanford.com"},
	{Name: "University of Michigan", Link: "https://mgoblue.com"},
	{Name: "Duke University", Link: "https://goduke.com"},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := pginfra.NewPool(ctx, pginfra.PoolConfig{DSN: cfg.PostgresDSN(), MaxConns: 2})
	if err != nil {
		logger.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	users := pginfra.NewUserRepository(pool)
	universities := pginfra.NewUniversityRepository(pool)
	userSvc := &application.UserService{Users: users, Logger: logger}
	uniSvc := &application.UniversityService{
		Universities: universities,
		Interests:    pginfra.NewInterestRepository(pool),
		Links:        pginfra.NewUniversityLinkRepository(pool),
		Logger:       logger,
	}

	es, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		logger.Fatalf("failed to init elasticsearch client: %v", err)
	}
	if es != nil {
		uniSvc.Index = search.NewUniversityIndex(es, cfg.ESUniversitiesIdx)
	}

	if err := seedAdmin(ctx, users, userSvc, cfg.SeedAdminEmail, cfg.SeedAdminPassword, logger); err != nil {
		logger.Fatalf("seed admin: %v", err)
	}

	existing, err := universities.Browse(ctx, "", 1, 0)
	if err != nil {
		logger.Fatalf("read universities: %v", err)
	}
	if len(existing) == 0 {
		for _, u := range sampleUniversities {
			if _, err := uniSvc.CreateUniversity(ctx, u); err != nil {
				logger.Fatalf("seed university %q: %v", u.Name, err)
			}
		}
		logger.Infof("seeded %d universities", len(sampleUniversities))
	} else {
		logger.Info("universities already present; skipping sample rows")
	}

	for _, l := range sampleLinks {
		_, err := uniSvc.CreateLink(ctx, l)
		if err != nil && application.KindOf(err) == application.KindUnprocessable {
			continue // already linked
		}
		if err != nil {
			logger.Fatalf("seed link %q: %v", l.Name, err)
		}
	}

	if uniSvc.Index != nil {
		n, err := uniSvc.Reindex(ctx)
		if err != nil {
			logger.Fatalf("reindex universities: %v", err)
		}
		logger.Infof("indexed %d universities into %s", n, cfg.ESUniversitiesIdx)
	}
}

// seedAdmin creates the admin account, or promotes an existing user with that email.
func seedAdmin(ctx context.Context, users repo.UserRepository, svc *application.UserService, email, password string, logger *logrus.Logger) error {
	u, err := users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		created, err := svc.CreateUser(ctx, entity.User{Email: email, Name: "Administrator", Role: entity.RoleAdmin}, password)
		if err != nil {
			return err
		}
		logger.WithField("user_id", created.ID).Infof("seeded admin %s", created.Email)
		return nil
	case err != nil:
		return err
	}
	if u.Role == entity.RoleAdmin {
		logger.WithField("user_id", u.ID).Info("admin already present")
		return nil
	}
	u.Role = entity.RoleAdmin
	if err := users.Update(ctx, u); err != nil {
		return err
	}
	logger.WithField("user_id", u.ID).Infof("promoted %s to admin", u.Email)
	return nil
}
