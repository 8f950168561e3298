package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/ai"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/models"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/validator"
)

var mechanicsTag = models.ContentTag{
	Course: "Class 12",
	Board:  "CBSE",
	Year:   "2025",
	Paper:  "Paper 1",
	Block:  "Mechanics",
	Topic:  "Lagrangian Mechanics",
}

func seedQABank(repo *fakeRepository) {
	ctx := context.Background()
	entries := []*models.QAEntry{
		{Tag: mechanicsTag, Type: models.QuestionSAQ, QuestionText: "Define the Hamiltonian of a system.", AnswerLatex: `$H = \sum p_i \dot{q}_i - L$`},
		{Tag: mechanicsTag, Type: models.QuestionSAQ, QuestionText: "State the principle of least action.", AnswerLatex: `$\delta S = 0$`},
		{Tag: mechanicsTag, Type: models.QuestionSAQ, QuestionText: "When does the hamiltonian equal total energy?", AnswerLatex: `$H = T + V$`},
	}
	for _, entry := range entries {
		_ = repo.QA().Create(ctx, entry)
	}
}

func newSearchFixture(t *testing.T) (SearchService, *fakeRepository) {
	t.Helper()
	repo := newFakeRepository()
	svc := NewSearchService(repo, nil, testLogger(), validator.New())
	return svc, repo
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	svc, repo := newSearchFixture(t)
	seedQABank(repo)

	result, err := svc.Search(context.Background(), mechanicsTag, models.QuestionSAQ, "Hamiltonian")
	require.NoError(t, err)
	assert.Len(t, result.Entries, 2, "matching ignores letter case in both keyword and question")
	assert.False(t, result.Fallback)

	result, err = svc.Search(context.Background(), mechanicsTag, models.QuestionSAQ, "hamiltonian")
	require.NoError(t, err)
	assert.Len(t, result.Entries, 2)
}

func TestSearchNoMatchesOffersFallback(t *testing.T) {
	svc, repo := newSearchFixture(t)
	seedQABank(repo)

	result, err := svc.Search(context.Background(), mechanicsTag, models.QuestionSAQ, "electrostatics")
	require.NoError(t, err)
	assert.Empty(t, result.Entries)
	assert.True(t, result.Fallback, "an empty match set invites the AI fallback")
}

func TestSearchBlankKeywordSkipsStore(t *testing.T) {
	svc, repo := newSearchFixture(t)
	seedQABank(repo)

	for _, keyword := range []string{"", "   ", "\t"} {
		result, err := svc.Search(context.Background(), mechanicsTag, models.QuestionSAQ, keyword)
		require.NoError(t, err)
		assert.Empty(t, result.Entries)
		assert.False(t, result.Fallback)
	}

	assert.Equal(t, 0, repo.qaFetchCount, "a blank keyword must not reach the store")
}

func TestSearchScopedToType(t *testing.T) {
	svc, repo := newSearchFixture(t)
	seedQABank(repo)
	_ = repo.QA().Create(context.Background(), &models.QAEntry{
		Tag:          mechanicsTag,
		Type:         models.QuestionPYQ,
		QuestionText: "Derive the Hamiltonian from the Lagrangian.",
		AnswerLatex:  `$H = p\dot{q} - L$`,
	})

	result, err := svc.Search(context.Background(), mechanicsTag, models.QuestionPYQ, "hamiltonian")
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, models.QuestionPYQ, result.Entries[0].Type)
}

func TestSearchMatchesAcrossTaxonomyPaths(t *testing.T) {
	svc, repo := newSearchFixture(t)
	seedQABank(repo)
	_ = repo.QA().Create(context.Background(), &models.QAEntry{
		Tag: models.ContentTag{
			Course: "BSc Physics",
			Board:  "University",
			Year:   "2024",
			Paper:  "Semester 3",
			Block:  "Classical Mechanics",
			Topic:  "Lagrangian Mechanics",
		},
		Type:         models.QuestionSAQ,
		QuestionText: "Write the Hamiltonian for a free particle.",
		AnswerLatex:  `$H = \frac{p^2}{2m}$`,
	})

	result, err := svc.Search(context.Background(), mechanicsTag, models.QuestionSAQ, "free particle")
	require.NoError(t, err)
	require.Len(t, result.Entries, 1, "candidates are scoped by topic and type, not the full tag")
	assert.Equal(t, "BSc Physics", result.Entries[0].Tag.Course)
	assert.False(t, result.Fallback)
}

func TestSolveWithoutSolver(t *testing.T) {
	svc, _ := newSearchFixture(t)

	answer := svc.Solve(context.Background(), &SolveRequest{Question: "What is torque?"})
	assert.Equal(t, ai.UnavailableMessage, answer)
}

type staticCompleter struct{ text string }

func (c staticCompleter) Complete(ctx context.Context, req ai.CompletionRequest) (string, error) {
	return c.text, nil
}

func TestSolveDelegatesToSolver(t *testing.T) {
	repo := newFakeRepository()
	solver := ai.NewSolver(staticCompleter{text: `$\tau = r \times F$`}, 0, testLogger())
	svc := NewSearchService(repo, solver, testLogger(), validator.New())

	answer := svc.Solve(context.Background(), &SolveRequest{Question: "What is torque?"})
	assert.Equal(t, `$\tau = r \times F$`, answer)
}
