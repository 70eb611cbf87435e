package annotate

import "strings"

// keywordRule pairs a trigger keyword with the category triple it selects.
type keywordRule struct {
	keyword    string
	categories []string
}

// keywordRules is scanned in order and the first keyword found as a substring
// of the case-folded content wins. The list order is part of the contract:
// content matching several keywords always resolves to the earliest rule, so
// reordering entries changes results for existing data. Keywords are kept in
// the library's original Japanese/English mix.
var keywordRules = []keywordRule{
	{"コード", []string{"プログラミング", "コード生成", "開発"}},
	{"python", []string{"プログラミング", "Python", "開発"}},
	{"翻訳", []string{"翻訳", "言語", "ローカライゼーション"}},
	{"要約", []string{"要約", "テキスト処理", "分析"}},
	{"メール", []string{"ビジネス", "メール作成", "コミュニケーション"}},
	{"ブログ", []string{"ライティング", "ブログ", "コンテンツ作成"}},
	{"マーケティング", []string{"マーケティング", "広告", "ビジネス"}},
	{"教育", []string{"教育", "学習", "チュートリアル"}},
}

// defaultCategories is returned when no keyword matches.
var defaultCategories = []string{"一般", "テキスト生成", "その他"}

const (
	fallbackSummaryLimit = 50
	fallbackTitleLimit   = 30
)

// truncate cuts s to at most limit runes, appending an ellipsis marker when
// anything was cut. The marker is appended even though it pushes the result
// past the limit; stored data depends on that exact shape.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// FallbackSummarize produces a deterministic summary and category triple
// without calling any model. It is the terminal path whenever the AI path is
// unavailable or fails.
func FallbackSummarize(content string) CategorySuggestion {
	categories := defaultCategories
	folded := strings.ToLower(content)
	for _, rule := range keywordRules {
		if strings.Contains(folded, strings.ToLower(rule.keyword)) {
			categories = rule.categories
			break
		}
	}
	return CategorySuggestion{
		Summary:             truncate(content, fallbackSummaryLimit),
		SuggestedCategories: append([]string(nil), categories...),
	}
}

// FallbackTitleTags produces a deterministic title from the content itself.
// No tags are inferred heuristically; the tag field stays empty.
func FallbackTitleTags(content string) TitleTagSuggestion {
	return TitleTagSuggestion{
		Title: truncate(content, fallbackTitleLimit),
		Tags:  "",
	}
}
