package serviceImp

import (
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"raitha/entities"
	"raitha/pkg/kb/repositoryImp"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Article{}, &entities.ArticleChunk{}))
	return db
}

func TestChunkTextSplitsOnNewlines(t *testing.T) {
	para := strings.Repeat("x", 600) + "\n"
	parts := chunkText(para+para+para, 1000)
	require.Len(t, parts, 2)
	// a chunk closes at the first newline after the rune budget
	assert.Equal(t, 1202, len([]rune(parts[0])))
}

func TestChunkTextEmpty(t *testing.T) {
	assert.Nil(t, chunkText("", 1000))
}

func TestUpsertArticleWithoutEmbedder(t *testing.T) {
	svc := New(repositoryImp.New(openTestDB(t)), nil)

	a, n, err := svc.UpsertArticle("Alley cropping basics", "agroforestry", "Trees in rows.\nCrops between.", "https://example.org/a")
	require.NoError(t, err)
	assert.NotZero(t, a.ArticleID)
	assert.Equal(t, 1, n)
}

func TestSearchKeywordFallback(t *testing.T) {
	svc := New(repositoryImp.New(openTestDB(t)), nil)

	_, _, err := svc.UpsertArticle("Sandy soils", "", "Sandy soil drains fast and suits boundary planting with drought hardy trees.", "")
	require.NoError(t, err)
	_, _, err = svc.UpsertArticle("Paddy water", "", "Paddy needs standing water and poorly drained clay fields.", "")
	require.NoError(t, err)

	hits, err := svc.Search("sandy boundary planting", 5)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Contains(t, strings.ToLower(hits[0].Text), "sandy")

	none, err := svc.Search("quantum chromodynamics", 5)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := New(repositoryImp.New(openTestDB(t)), nil)
	hits, err := svc.Search("  ", 5)
	require.NoError(t, err)
	assert.Nil(t, hits)
}

func TestArticlesMeta(t *testing.T) {
	svc := New(repositoryImp.New(openTestDB(t)), nil)
	a, _, err := svc.UpsertArticle("Title A", "", "some text", "https://example.org")
	require.NoError(t, err)

	meta, err := svc.ArticlesMeta([]uint{a.ArticleID})
	require.NoError(t, err)
	assert.Equal(t, "Title A", meta[a.ArticleID].Title)
}
