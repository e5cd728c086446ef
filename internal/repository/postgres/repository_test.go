package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// newTestPool connects to the database named by TRIVIA_TEST_POSTGRES_DSN
// and empties it. Tests are skipped when the variable is unset.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TRIVIA_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TRIVIA_TEST_POSTGRES_DSN not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, EnsureSchema(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE questions, categories RESTART IDENTITY`)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, `INSERT INTO categories (type) VALUES ('Science'), ('Art'), ('Geography')`)
	require.NoError(t, err)

	return pool
}

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(newTestPool(t))

	categories, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "Science", 2: "Art", 3: "Geography"}, domain.CategoryMap(categories))

	category, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Art", category.Type)

	_, err = repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestQuestionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewQuestionRepository(newTestPool(t))

	first := &domain.Question{Question: "What is H2O?", Answer: "Water", Category: domain.IntPtr(1), Difficulty: 1}
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, 1, first.ID)

	require.NoError(t, repo.BulkCreate(ctx, []*domain.Question{
		{Question: "Who painted Guernica?", Answer: "Picasso", Category: domain.IntPtr(2), Difficulty: 2},
		{Question: "Scored 100% on the TITLE test?", Answer: "Nobody", Difficulty: 3},
	}))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	got, err := repo.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Nil(t, got.Category)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{all[0].ID, all[1].ID, all[2].ID})

	found, err := repo.Search(ctx, "title")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, 3, found[0].ID)

	found, err = repo.Search(ctx, "0%")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	found, err = repo.Search(ctx, "_")
	require.NoError(t, err)
	assert.Empty(t, found)

	byCategory, err := repo.ListByCategory(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)

	remaining, err := repo.ListByCategoryExcluding(ctx, 1, nil)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	remaining, err = repo.ListByCategoryExcluding(ctx, 1, []int{1})
	require.NoError(t, err)
	assert.Empty(t, remaining)

	require.NoError(t, repo.Delete(ctx, 1))
	assert.ErrorIs(t, repo.Delete(ctx, 1), domain.ErrQuestionNotFound)
	_, err = repo.GetByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
}
