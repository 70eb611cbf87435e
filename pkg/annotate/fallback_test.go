package annotate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackSummarize_TruncationBoundary(t *testing.T) {
	exact := strings.Repeat("a", 50)
	assert.Equal(t, exact, FallbackSummarize(exact).Summary,
		"content of exactly 50 chars is returned unmodified")

	over := strings.Repeat("a", 51)
	assert.Equal(t, exact+"...", FallbackSummarize(over).Summary,
		"content over 50 chars is cut to 50 plus the ellipsis marker")
}

func TestFallbackSummarize_TruncatesRunesNotBytes(t *testing.T) {
	content := strings.Repeat("あ", 51)
	got := FallbackSummarize(content).Summary
	assert.Equal(t, strings.Repeat("あ", 50)+"...", got)
}

func TestFallbackSummarize_DefaultCategories(t *testing.T) {
	got := FallbackSummarize("nothing here matches any rule")
	assert.Equal(t, []string{"一般", "テキスト生成", "その他"}, got.SuggestedCategories)
}

func TestFallbackSummarize_KeywordMatch(t *testing.T) {
	got := FallbackSummarize("ブログ記事の下書きを作って")
	assert.Equal(t, []string{"ライティング", "ブログ", "コンテンツ作成"}, got.SuggestedCategories)
}

func TestFallbackSummarize_KeywordCaseFolded(t *testing.T) {
	got := FallbackSummarize("Write idiomatic PYTHON for me")
	assert.Equal(t, []string{"プログラミング", "Python", "開発"}, got.SuggestedCategories)
}

func TestFallbackSummarize_KeywordPrecedenceIsListOrder(t *testing.T) {
	// "翻訳" appears first in the text, but "python" is earlier in the rule
	// list, so the python triple wins.
	got := FallbackSummarize("翻訳してから python で処理する")
	assert.Equal(t, []string{"プログラミング", "Python", "開発"}, got.SuggestedCategories)
}

func TestFallbackSummarize_Deterministic(t *testing.T) {
	content := "コードを要約してメールで送る"
	first := FallbackSummarize(content)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, FallbackSummarize(content))
	}
}

func TestFallbackSummarize_DoesNotShareCategorySlice(t *testing.T) {
	a := FallbackSummarize("no keyword")
	a.SuggestedCategories[0] = "mutated"
	b := FallbackSummarize("no keyword")
	assert.Equal(t, "一般", b.SuggestedCategories[0])
}

func TestFallbackTitleTags_TruncationBoundary(t *testing.T) {
	exact := strings.Repeat("b", 30)
	got := FallbackTitleTags(exact)
	assert.Equal(t, exact, got.Title, "content of exactly 30 chars keeps no marker")
	assert.Equal(t, "", got.Tags)

	over := strings.Repeat("b", 31)
	got = FallbackTitleTags(over)
	// The marker pushes the title past 30 chars. That overshoot is the
	// documented behavior, not something to normalize away.
	assert.Equal(t, exact+"...", got.Title)
	assert.Equal(t, "", got.Tags)
}
