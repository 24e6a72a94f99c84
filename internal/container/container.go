package container

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/sportsconnect/sportsconnect-api/config"
	"github.com/sportsconnect/sportsconnect-api/internal/application"
	"github.com/sportsconnect/sportsconnect-api/internal/infrastructure/googleauth"
	"github.com/sportsconnect/sportsconnect-api/pkg/helpers"
)

// app-level container to share constructed components across packages.
// The router wires modules from these singletons; optional clients stay nil
// when their feature is not configured.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client

	jwtManager *helpers.JWTManager

	storage  application.ObjectStorage
	mailer   application.Mailer
	esClient *elasticsearch.Client
	google   *googleauth.Google
)

func SetConfig(c *config.Config)   { cfg = c }
func GetConfig() *config.Config    { return cfg }
func SetLogger(l *logrus.Logger)   { logger = l }
func GetLogger() *logrus.Logger    { return logger }
func SetPGPool(p *pgxpool.Pool)    { pgPool = p }
func GetPGPool() *pgxpool.Pool     { return pgPool }
func SetRedis(r *redis.Client)     { redisClient = r }
func GetRedis() *redis.Client      { return redisClient }
func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager  { return jwtManager }

func SetStorage(s application.ObjectStorage) { storage = s }
func GetStorage() application.ObjectStorage  { return storage }
func SetMailer(m application.Mailer)         { mailer = m }
func GetMailer() application.Mailer          { return mailer }
func SetES(c *elasticsearch.Client)          { esClient = c }
func GetES() *elasticsearch.Client           { return esClient }
func SetGoogle(g *googleauth.Google)         { google = g }
func GetGoogle() *googleauth.Google          { return google }
