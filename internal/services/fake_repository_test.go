package services

import (
	"context"
	"strings"
	"sync"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/models"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/repositories"
)

// fakeRepository is an in-memory repositories.Repository for service tests.
type fakeRepository struct {
	mu sync.Mutex

	accounts  map[uint]*models.Account
	nextID    uint
	structure *models.TaxonomyStructure

	staticResources []*models.StaticResource
	qaEntries       []*models.QAEntry
	mcqs            map[uint]*models.MCQEntry
	legacy          []*models.LegacyResource

	// qaFetchCount counts ListByTag calls against the Q&A store.
	qaFetchCount int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		accounts: make(map[uint]*models.Account),
		mcqs:     make(map[uint]*models.MCQEntry),
		nextID:   1,
	}
}

func (f *fakeRepository) Account() repositories.AccountRepository       { return &fakeAccountRepo{f} }
func (f *fakeRepository) Taxonomy() repositories.TaxonomyRepository     { return &fakeTaxonomyRepo{f} }
func (f *fakeRepository) StaticResource() repositories.StaticResourceRepository {
	return &fakeStaticRepo{f}
}
func (f *fakeRepository) QA() repositories.QARepository   { return &fakeQARepo{f} }
func (f *fakeRepository) MCQ() repositories.MCQRepository { return &fakeMCQRepo{f} }
func (f *fakeRepository) LegacyResource() repositories.LegacyResourceRepository {
	return &fakeLegacyRepo{f}
}

func (f *fakeRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(f)
}

func (f *fakeRepository) Ping(ctx context.Context) error { return nil }
func (f *fakeRepository) Close() error                   { return nil }

// seedAccount inserts an account directly, bypassing Create.
func (f *fakeRepository) seedAccount(account *models.Account) *models.Account {
	f.mu.Lock()
	defer f.mu.Unlock()
	if account.ID == 0 {
		account.ID = f.nextID
		f.nextID++
	}
	f.accounts[account.ID] = account
	return account
}

// ===== ACCOUNT =====

type fakeAccountRepo struct{ f *fakeRepository }

func (r *fakeAccountRepo) Create(ctx context.Context, account *models.Account) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	for _, existing := range r.f.accounts {
		if strings.EqualFold(existing.Email, account.Email) {
			return repositories.ErrDuplicateEmail
		}
	}
	account.ID = r.f.nextID
	r.f.nextID++
	r.f.accounts[account.ID] = account
	return nil
}

func (r *fakeAccountRepo) GetByID(ctx context.Context, id uint) (*models.Account, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	account, ok := r.f.accounts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *account
	return &copied, nil
}

func (r *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	for _, account := range r.f.accounts {
		if strings.EqualFold(account.Email, email) {
			copied := *account
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeAccountRepo) List(ctx context.Context, filters repositories.AccountFilters) ([]*models.Account, int64, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	var out []*models.Account
	for _, account := range r.f.accounts {
		if filters.PaymentStatus != nil && account.PaymentStatus != *filters.PaymentStatus {
			continue
		}
		if filters.Role != nil && account.Role != *filters.Role {
			continue
		}
		copied := *account
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *fakeAccountRepo) UpdatePaymentStatus(ctx context.Context, id uint, status models.PaymentStatus, txnID *string) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	account, ok := r.f.accounts[id]
	if !ok {
		return repositories.ErrNotFound
	}
	account.PaymentStatus = status
	if txnID != nil {
		account.TransactionID = txnID
	} else if status == models.PaymentPending {
		account.TransactionID = nil
	}
	return nil
}

func (r *fakeAccountRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ===== TAXONOMY =====

type fakeTaxonomyRepo struct{ f *fakeRepository }

func (r *fakeTaxonomyRepo) Get(ctx context.Context) (*models.TaxonomyStructure, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if r.f.structure == nil {
		return nil, repositories.ErrNotFound
	}
	copied := *r.f.structure
	return &copied, nil
}

func (r *fakeTaxonomyRepo) AppendOption(ctx context.Context, field models.TaxonomyField, value string) (bool, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if r.f.structure == nil {
		r.f.structure = &models.TaxonomyStructure{Key: models.StructureKey}
	}
	options := r.f.structure.Options(field)
	for _, existing := range options {
		if existing == value {
			return false, nil
		}
	}
	r.f.structure.SetOptions(field, append(options, value))
	return true, nil
}

// ===== CONTENT =====

func matchesTag(tag models.ContentTag, filters repositories.TagFilters) bool {
	if filters.Course != nil && tag.Course != *filters.Course {
		return false
	}
	if filters.Board != nil && tag.Board != *filters.Board {
		return false
	}
	if filters.Year != nil && tag.Year != *filters.Year {
		return false
	}
	if filters.Paper != nil && tag.Paper != *filters.Paper {
		return false
	}
	if filters.Block != nil && tag.Block != *filters.Block {
		return false
	}
	if filters.Topic != nil && tag.Topic != *filters.Topic {
		return false
	}
	return true
}

type fakeStaticRepo struct{ f *fakeRepository }

func (r *fakeStaticRepo) Create(ctx context.Context, resource *models.StaticResource) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	resource.ID = r.f.nextID
	r.f.nextID++
	r.f.staticResources = append(r.f.staticResources, resource)
	return nil
}

func (r *fakeStaticRepo) ListByTag(ctx context.Context, filters repositories.StaticResourceFilters) ([]*models.StaticResource, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	var out []*models.StaticResource
	for _, res := range r.f.staticResources {
		if !matchesTag(res.Tag, filters.TagFilters) {
			continue
		}
		if filters.Type != nil && res.Type != *filters.Type {
			continue
		}
		out = append(out, res)
	}
	return out, nil
}

type fakeQARepo struct{ f *fakeRepository }

func (r *fakeQARepo) Create(ctx context.Context, entry *models.QAEntry) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	entry.ID = r.f.nextID
	r.f.nextID++
	r.f.qaEntries = append(r.f.qaEntries, entry)
	return nil
}

func (r *fakeQARepo) ListByTag(ctx context.Context, filters repositories.QAFilters) ([]*models.QAEntry, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	r.f.qaFetchCount++
	var out []*models.QAEntry
	for _, entry := range r.f.qaEntries {
		if !matchesTag(entry.Tag, filters.TagFilters) {
			continue
		}
		if filters.Type != nil && entry.Type != *filters.Type {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

type fakeMCQRepo struct{ f *fakeRepository }

func (r *fakeMCQRepo) Create(ctx context.Context, entry *models.MCQEntry) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	entry.ID = r.f.nextID
	r.f.nextID++
	r.f.mcqs[entry.ID] = entry
	return nil
}

func (r *fakeMCQRepo) GetByID(ctx context.Context, id uint) (*models.MCQEntry, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	entry, ok := r.f.mcqs[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return entry, nil
}

func (r *fakeMCQRepo) ListByTag(ctx context.Context, filters repositories.MCQFilters) ([]*models.MCQEntry, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	var out []*models.MCQEntry
	for _, entry := range r.f.mcqs {
		if !matchesTag(entry.Tag, filters.TagFilters) {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

type fakeLegacyRepo struct{ f *fakeRepository }

func (r *fakeLegacyRepo) Create(ctx context.Context, resource *models.LegacyResource) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	resource.ID = r.f.nextID
	r.f.nextID++
	r.f.legacy = append(r.f.legacy, resource)
	return nil
}

func (r *fakeLegacyRepo) List(ctx context.Context) ([]*models.LegacyResource, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	return append([]*models.LegacyResource{}, r.f.legacy...), nil
}
