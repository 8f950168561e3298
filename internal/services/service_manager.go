package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/ai"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/events"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/repositories"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/validator"
)

// ServiceManagerDeps bundles everything the services need. The solver may
// be nil when no AI key is configured; search then degrades to the fixed
// unavailable message.
type ServiceManagerDeps struct {
	Repo      repositories.Repository
	Publisher events.EventPublisher
	Solver    *ai.Solver
	Logger    *slog.Logger
	Validator *validator.Validator
}

// serviceManager implements ServiceManager
type serviceManager struct {
	deps ServiceManagerDeps

	accountService  AccountService
	taxonomyService TaxonomyService
	contentService  ContentService
	quizService     QuizService
	searchService   SearchService
	exportService   ExportService

	// Lifecycle management
	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

func NewServiceManager(deps ServiceManagerDeps) ServiceManager {
	return &serviceManager{deps: deps}
}

// Initialize wires up all services. Getters panic until this has run.
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.deps.Logger.Info("Initializing service manager")

	sm.accountService = NewAccountService(sm.deps.Repo, sm.deps.Publisher, sm.deps.Logger, sm.deps.Validator)
	sm.deps.Logger.Info("Account service initialized")

	sm.taxonomyService = NewTaxonomyService(sm.deps.Repo, sm.deps.Logger, sm.deps.Validator)
	sm.deps.Logger.Info("Taxonomy service initialized")

	sm.contentService = NewContentService(sm.deps.Repo, sm.deps.Publisher, sm.deps.Logger, sm.deps.Validator)
	sm.deps.Logger.Info("Content service initialized")

	sm.quizService = NewQuizService(sm.deps.Repo, sm.deps.Logger)
	sm.deps.Logger.Info("Quiz service initialized")

	sm.searchService = NewSearchService(sm.deps.Repo, sm.deps.Solver, sm.deps.Logger, sm.deps.Validator)
	sm.deps.Logger.Info("Search service initialized")

	sm.exportService = NewExportService(sm.deps.Repo, sm.deps.Logger)
	sm.deps.Logger.Info("Export service initialized")

	sm.initialized = true
	sm.deps.Logger.Info("Service manager initialized successfully")

	return nil
}

// ===== SERVICE GETTERS =====

func (sm *serviceManager) Account() AccountService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized || sm.accountService == nil {
		panic("account service not initialized")
	}
	return sm.accountService
}

func (sm *serviceManager) Taxonomy() TaxonomyService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized || sm.taxonomyService == nil {
		panic("taxonomy service not initialized")
	}
	return sm.taxonomyService
}

func (sm *serviceManager) Content() ContentService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized || sm.contentService == nil {
		panic("content service not initialized")
	}
	return sm.contentService
}

func (sm *serviceManager) Quiz() QuizService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized || sm.quizService == nil {
		panic("quiz service not initialized")
	}
	return sm.quizService
}

func (sm *serviceManager) Search() SearchService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized || sm.searchService == nil {
		panic("search service not initialized")
	}
	return sm.searchService
}

func (sm *serviceManager) Export() ExportService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized || sm.exportService == nil {
		panic("export service not initialized")
	}
	return sm.exportService
}

// ===== HEALTH & LIFECYCLE =====

func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("service manager not initialized")
	}
	if sm.shutdown {
		return fmt.Errorf("service manager is shut down")
	}

	if err := sm.deps.Repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}

	return nil
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.deps.Logger.Info("Shutting down service manager")

	if sm.deps.Publisher != nil {
		if err := sm.deps.Publisher.Close(); err != nil {
			sm.deps.Logger.Warn("failed to close event publisher", "error", err)
		}
	}

	if err := sm.deps.Repo.Close(); err != nil {
		sm.deps.Logger.Warn("failed to close repository", "error", err)
	}

	sm.shutdown = true
	sm.deps.Logger.Info("Service manager shut down")

	return nil
}
