package postgres

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/cache"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/repositories"
)

// PostgreSQLRepository implements the main Repository interface.
type PostgreSQLRepository struct {
	db           *gorm.DB
	redisClient  *redis.Client
	cacheManager *cache.CacheManager

	account        repositories.AccountRepository
	taxonomy       repositories.TaxonomyRepository
	staticResource repositories.StaticResourceRepository
	qa             repositories.QARepository
	mcq            repositories.MCQRepository
	legacyResource repositories.LegacyResourceRepository
}

// RepositoryConfig holds configuration for repository initialization.
type RepositoryConfig struct {
	DB          *gorm.DB
	RedisClient *redis.Client
}

// NewPostgreSQLRepository creates a repository manager with all
// sub-repositories wired to the shared connection and cache.
func NewPostgreSQLRepository(config RepositoryConfig) repositories.Repository {
	return newWithDB(config.DB, config.RedisClient)
}

func newWithDB(db *gorm.DB, redisClient *redis.Client) *PostgreSQLRepository {
	cacheManager := cache.NewCacheManager(redisClient)

	repo := &PostgreSQLRepository{
		db:           db,
		redisClient:  redisClient,
		cacheManager: cacheManager,
	}

	repo.account = NewAccountPostgreSQL(db, cacheManager)
	repo.taxonomy = NewTaxonomyPostgreSQL(db, cacheManager)
	repo.staticResource = NewStaticResourcePostgreSQL(db)
	repo.qa = NewQAPostgreSQL(db)
	repo.mcq = NewMCQPostgreSQL(db)
	repo.legacyResource = NewLegacyResourcePostgreSQL(db)

	return repo
}

func (r *PostgreSQLRepository) Account() repositories.AccountRepository { return r.account }

func (r *PostgreSQLRepository) Taxonomy() repositories.TaxonomyRepository { return r.taxonomy }

func (r *PostgreSQLRepository) StaticResource() repositories.StaticResourceRepository {
	return r.staticResource
}

func (r *PostgreSQLRepository) QA() repositories.QARepository { return r.qa }

func (r *PostgreSQLRepository) MCQ() repositories.MCQRepository { return r.mcq }

func (r *PostgreSQLRepository) LegacyResource() repositories.LegacyResourceRepository {
	return r.legacyResource
}

// WithTransaction executes fn within a database transaction, handing it a
// repository bound to the transaction connection.
func (r *PostgreSQLRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newWithDB(tx, r.redisClient))
	})
}

// Ping checks the health of database and cache connections.
func (r *PostgreSQLRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	if r.redisClient != nil {
		if err := r.redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis ping failed: %w", err)
		}
	}

	return nil
}

// Close closes the underlying connections.
func (r *PostgreSQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Close(); err != nil {
		return err
	}
	if r.redisClient != nil {
		return r.redisClient.Close()
	}
	return nil
}

// ===== REPOSITORY MANAGER =====

type repositoryManager struct {
	config RepositoryConfig
	repo   repositories.Repository
}

func NewRepositoryManager(config RepositoryConfig) repositories.RepositoryManager {
	return &repositoryManager{config: config}
}

func (m *repositoryManager) Initialize() error {
	if m.config.DB == nil {
		return fmt.Errorf("database connection is required")
	}
	m.repo = NewPostgreSQLRepository(m.config)
	return nil
}

func (m *repositoryManager) GetRepository() repositories.Repository {
	return m.repo
}

func (m *repositoryManager) HealthCheck(ctx context.Context) error {
	if m.repo == nil {
		return fmt.Errorf("repositories not initialized")
	}
	return m.repo.Ping(ctx)
}

func (m *repositoryManager) Shutdown(ctx context.Context) error {
	if m.repo == nil {
		return nil
	}
	return m.repo.Close()
}
