package integration_test

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
)

const (
	dbName         = "lesson_booking"
	dbUser         = "test_user"
	dbPassword     = "test_password"
	dbImageName    = "postgres:17-alpine"
	cacheImageName = "redis:7"
)

// BaseSuite starts a migrated Postgres and a Redis container once per suite.
type BaseSuite struct {
	suite.Suite
	dbContainer    *PostgresContainer
	cacheContainer *RedisContainer
	db             *pgxpool.Pool
	redis          *redis.Client
}

func (s *BaseSuite) SetupSuite() {
	ctx := context.Background()

	postgresContainer, err := getDbContainer(ctx)
	if err != nil {
		s.T().Fatalf("failed to start container: %s", err)
	}
	s.dbContainer = postgresContainer

	redisContainer, err := getCacheContainer(ctx)
	if err != nil {
		s.T().Fatalf("failed to start container: %s", err)
	}
	s.cacheContainer = redisContainer

	poolCfg, err := pgxpool.ParseConfig(postgresContainer.ConnectionString)
	if err != nil {
		s.T().Fatalf("cannot parse database config: %s", err)
	}
	poolCfg.MaxConns = 5
	poolCfg.MaxConnIdleTime = 2 * time.Minute

	s.db, err = pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		s.T().Fatalf("cannot open database pool: %s", err)
	}

	s.redis = redis.NewClient(&redis.Options{
		Addr:     redisContainer.ConnectionString,
		PoolSize: 5,
	})

	err = s.redis.Ping(ctx).Err()
	if err != nil {
		s.T().Fatalf("cannot reach redis: %s", err)
	}
}

func (s *BaseSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.redis != nil {
		s.redis.Close()
	}

	if s.dbContainer != nil {
		if err := testcontainers.TerminateContainer(s.dbContainer.Container); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
	if s.cacheContainer != nil {
		if err := testcontainers.TerminateContainer(s.cacheContainer.Container); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
}

func (s *BaseSuite) SetupTest() {
	truncateLessonPayments(s.T(), s.db)
	flushCache(s.T(), s.redis)
}
