package suggest

import (
	"context"
	"strings"

	"moneybook/ledger/internal/models"

	"github.com/sirupsen/logrus"
)

// keywordTable maps note keywords to default category names, ordered from
// specific to general within each kind.
var keywordTable = map[models.Kind][]struct {
	Keyword  string
	Category string
}{
	models.KindIncome: {
		{"工资", "工资"},
		{"薪", "工资"},
		{"奖金", "奖金"},
		{"年终", "奖金"},
		{"分红", "投资"},
		{"利息", "投资"},
		{"股票", "投资"},
		{"基金", "投资"},
	},
	models.KindExpense: {
		{"早餐", "餐饮"},
		{"午餐", "餐饮"},
		{"晚餐", "餐饮"},
		{"外卖", "餐饮"},
		{"聚餐", "餐饮"},
		{"咖啡", "餐饮"},
		{"地铁", "交通"},
		{"公交", "交通"},
		{"打车", "交通"},
		{"加油", "交通"},
		{"高铁", "交通"},
		{"机票", "交通"},
		{"电影", "娱乐"},
		{"游戏", "娱乐"},
		{"房租", "住房"},
		{"水电", "住房"},
		{"物业", "住房"},
		{"药", "医疗"},
		{"医院", "医疗"},
		{"挂号", "医疗"},
		{"学费", "教育"},
		{"书", "教育"},
		{"课程", "教育"},
		{"网购", "购物"},
		{"超市", "购物"},
		{"商场", "购物"},
	},
}

// KeywordSuggester matches the note against a built-in keyword table and
// against the registry's category names. It works offline and is the
// default strategy.
type KeywordSuggester struct {
	source CategorySource
}

// NewKeywordSuggester creates a keyword-based suggester backed by the given
// category source.
func NewKeywordSuggester(source CategorySource) *KeywordSuggester {
	return &KeywordSuggester{source: source}
}

// Suggest proposes a category for the note, preferring a category name that
// literally appears in the note, then the keyword table.
func (s *KeywordSuggester) Suggest(_ context.Context, kind models.Kind, note string) (string, bool, error) {
	if strings.TrimSpace(note) == "" {
		return "", false, nil
	}

	// A category named in the note wins outright
	for _, name := range s.source.Categories(kind) {
		if strings.Contains(note, name) {
			log.WithField("category", name).Debug("Suggested category named in note")
			return name, true, nil
		}
	}

	for _, entry := range keywordTable[kind] {
		if strings.Contains(note, entry.Keyword) {
			log.WithFields(logrus.Fields{
				"keyword":  entry.Keyword,
				"category": entry.Category,
			}).Debug("Suggested category from keyword table")
			return entry.Category, true, nil
		}
	}

	return "", false, nil
}
