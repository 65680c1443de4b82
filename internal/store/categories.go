package store

import (
	"os"

	"moneybook/ledger/internal/fileutils"
	"moneybook/ledger/internal/models"

	"gopkg.in/yaml.v3"
)

// defaultCategories is the fixed baseline per transaction kind. It is never
// persisted; only user additions go to disk.
var defaultCategories = map[models.Kind][]string{
	models.KindIncome:  {"工资", "奖金", "投资", "其他收入"},
	models.KindExpense: {"餐饮", "交通", "购物", "娱乐", "住房", "医疗", "教育", "其他支出"},
}

// CategoryRegistry combines the fixed default categories with a user-added,
// append-only list per kind. The two sets are merged only at read time.
type CategoryRegistry struct {
	path string
	user map[models.Kind][]string
}

// NewCategoryRegistry opens the registry backed by the given YAML file.
// A missing or corrupt file yields empty user lists.
func NewCategoryRegistry(path string) *CategoryRegistry {
	r := &CategoryRegistry{
		path: path,
		user: map[models.Kind][]string{
			models.KindIncome:  {},
			models.KindExpense: {},
		},
	}
	r.load()
	return r
}

func (r *CategoryRegistry) load() {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).WithField("file", r.path).Error("Failed to read categories file")
		}
		return
	}

	loaded := map[string][]string{}
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		log.WithError(err).WithField("file", r.path).Error("Failed to parse categories file, using defaults only")
		return
	}

	for _, kind := range models.Kinds() {
		if names, ok := loaded[string(kind)]; ok {
			r.user[kind] = names
		}
	}
	log.WithField("file", r.path).Debug("Loaded user categories")
}

func (r *CategoryRegistry) save() {
	out := map[string][]string{}
	for kind, names := range r.user {
		out[string(kind)] = names
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		log.WithError(err).WithField("file", r.path).Error("Failed to save categories")
		return
	}
	if err := fileutils.WriteFile(r.path, data, 0644); err != nil {
		log.WithError(err).WithField("file", r.path).Error("Failed to save categories")
	}
}

// Categories returns the defaults followed by the user additions for a kind.
// The returned slice is a copy.
func (r *CategoryRegistry) Categories(kind models.Kind) []string {
	defaults := defaultCategories[kind]
	user := r.user[kind]

	out := make([]string, 0, len(defaults)+len(user))
	out = append(out, defaults...)
	out = append(out, user...)
	return out
}

// AllCategories returns the categories of both kinds, income first.
func (r *CategoryRegistry) AllCategories() []string {
	out := r.Categories(models.KindIncome)
	return append(out, r.Categories(models.KindExpense)...)
}

// Add appends a user category for a kind and persists the user lists.
// Empty names, unknown kinds and duplicates (against defaults or prior
// additions) are rejected silently with a false return.
func (r *CategoryRegistry) Add(kind models.Kind, name string) bool {
	if name == "" || !kind.Valid() {
		return false
	}
	for _, existing := range r.Categories(kind) {
		if existing == name {
			return false
		}
	}

	r.user[kind] = append(r.user[kind], name)
	r.save()
	log.WithField("category", name).Info("Added user category")
	return true
}
