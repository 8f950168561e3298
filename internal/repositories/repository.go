package repositories

import "context"

// Repository aggregates all collection-level repositories.
type Repository interface {
	// Account domain
	Account() AccountRepository

	// Taxonomy singleton
	Taxonomy() TaxonomyRepository

	// Content domain
	StaticResource() StaticResourceRepository
	QA() QARepository
	MCQ() MCQRepository
	LegacyResource() LegacyResourceRepository

	// Transaction support
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}

// RepositoryManager manages repository lifecycle.
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
