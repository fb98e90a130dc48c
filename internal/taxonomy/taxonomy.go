package taxonomy

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed taxonomy.yaml
var embeddedTaxonomy []byte

// Topic is one classification bucket with its keyword phrases.
type Topic struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Taxonomy bundles all reference tables used during normalization and
// classification.
type Taxonomy struct {
	Topics               []Topic           `yaml:"topics"`
	NameCorrections      map[string]string `yaml:"name_corrections"`
	ExcludedColumns      []string          `yaml:"excluded_columns"`
	ShortNameOverrides   map[string]string `yaml:"short_name_overrides"`
	GenerationalSuffixes []string          `yaml:"generational_suffixes"`

	excluded map[string]struct{}
	suffixes map[string]struct{}
}

// Default returns the embedded reference tables.
func Default() (*Taxonomy, error) {
	return parse(embeddedTaxonomy)
}

// Load reads reference tables from path, or the embedded defaults when
// path is empty.
func Load(path string) (*Taxonomy, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Taxonomy, error) {
	var tax Taxonomy
	if err := yaml.Unmarshal(data, &tax); err != nil {
		return nil, fmt.Errorf("parse taxonomy: %w", err)
	}
	if len(tax.Topics) == 0 {
		return nil, errors.New("taxonomy declares no topics")
	}
	seen := make(map[string]struct{}, len(tax.Topics))
	for _, topic := range tax.Topics {
		name := strings.TrimSpace(topic.Name)
		if name == "" {
			return nil, errors.New("taxonomy topic with empty name")
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("taxonomy topic %q declared twice", name)
		}
		seen[name] = struct{}{}
		if len(topic.Keywords) == 0 {
			return nil, fmt.Errorf("taxonomy topic %q has no keywords", name)
		}
	}

	tax.excluded = make(map[string]struct{}, len(tax.ExcludedColumns))
	for _, col := range tax.ExcludedColumns {
		tax.excluded[col] = struct{}{}
	}
	tax.suffixes = make(map[string]struct{}, len(tax.GenerationalSuffixes))
	for _, suffix := range tax.GenerationalSuffixes {
		tax.suffixes[suffix] = struct{}{}
	}
	return &tax, nil
}

// CorrectName maps a source column header to the canonical member name.
func (t *Taxonomy) CorrectName(name string) string {
	if corrected, ok := t.NameCorrections[name]; ok {
		return corrected
	}
	return name
}

// IsExcludedColumn reports whether a header names a pseudo-member column
// that must never become a roster entry.
func (t *Taxonomy) IsExcludedColumn(name string) bool {
	_, ok := t.excluded[name]
	return ok
}

// ShortNameOverride returns the explicit short name for members whose
// natural last token is ambiguous or a compound surname.
func (t *Taxonomy) ShortNameOverride(fullName string) (string, bool) {
	short, ok := t.ShortNameOverrides[fullName]
	return short, ok
}

// IsGenerationalSuffix reports whether a name token is a suffix that stays
// attached to the preceding token in short names.
func (t *Taxonomy) IsGenerationalSuffix(token string) bool {
	_, ok := t.suffixes[token]
	return ok
}
