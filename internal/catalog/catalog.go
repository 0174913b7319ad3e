// Package catalog provides the read-only set of categories and words the
// game draws secret words from.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/aaronzipp/impostor/internal/models"
)

// MaxWordLength is the maximum length of a word or pair entry, in characters
const MaxWordLength = 40

//go:embed data/catalog.yaml
var defaultCatalog []byte

// ErrInvalidCatalog matches every load-time validation failure
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is an immutable, ordered collection of categories
type Catalog struct {
	categories []models.Category
	byID       map[string]int
	avatars    []string
}

type catalogFile struct {
	Avatars    []string          `yaml:"avatars"`
	Categories []models.Category `yaml:"categories"`
}

// Default returns the catalog bundled with the binary
func Default() *Catalog {
	c, err := Load(bytes.NewReader(defaultCatalog))
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded catalog is invalid: %v", err))
	}
	return c
}

// LoadFile reads a catalog from a YAML file
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load decodes and validates a YAML catalog. Words and pairs are trimmed.
func Load(r io.Reader) (*Catalog, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidCatalog)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("%w: no categories", ErrInvalidCatalog)
	}

	c := &Catalog{
		categories: make([]models.Category, 0, len(file.Categories)),
		byID:       make(map[string]int, len(file.Categories)),
	}
	for i, cat := range file.Categories {
		cat, err := normalizeCategory(cat)
		if err != nil {
			return nil, fmt.Errorf("%w: category %d: %v", ErrInvalidCatalog, i+1, err)
		}
		if _, dup := c.byID[cat.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate category id %q", ErrInvalidCatalog, cat.ID)
		}
		c.byID[cat.ID] = len(c.categories)
		c.categories = append(c.categories, cat)
	}

	for _, a := range file.Avatars {
		if a = strings.TrimSpace(a); a != "" {
			c.avatars = append(c.avatars, a)
		}
	}
	return c, nil
}

func normalizeCategory(cat models.Category) (models.Category, error) {
	cat.ID = strings.TrimSpace(cat.ID)
	cat.Name = strings.TrimSpace(cat.Name)
	cat.Emoji = strings.TrimSpace(cat.Emoji)
	cat.Description = strings.TrimSpace(cat.Description)
	if cat.ID == "" {
		return cat, errors.New("id is required")
	}
	if cat.Name == "" {
		return cat, fmt.Errorf("%s: name is required", cat.ID)
	}

	words := make([]string, 0, len(cat.Words))
	for _, w := range cat.Words {
		w, err := normalizeWord(w)
		if err != nil {
			return cat, fmt.Errorf("%s: word: %v", cat.ID, err)
		}
		words = append(words, w)
	}
	pairs := make([]models.WordPair, 0, len(cat.Pairs))
	for _, p := range cat.Pairs {
		crew, err := normalizeWord(p.Crew)
		if err != nil {
			return cat, fmt.Errorf("%s: pair crew: %v", cat.ID, err)
		}
		impostor, err := normalizeWord(p.Impostor)
		if err != nil {
			return cat, fmt.Errorf("%s: pair impostor: %v", cat.ID, err)
		}
		pairs = append(pairs, models.WordPair{Crew: crew, Impostor: impostor})
	}
	if len(words) == 0 && len(pairs) == 0 {
		return cat, fmt.Errorf("%s: needs words or pairs", cat.ID)
	}

	cat.Words = nil
	if len(words) > 0 {
		cat.Words = words
	}
	cat.Pairs = nil
	if len(pairs) > 0 {
		cat.Pairs = pairs
	}
	return cat, nil
}

func normalizeWord(w string) (string, error) {
	w = strings.TrimSpace(w)
	if n := utf8.RuneCountInString(w); n < 1 || n > MaxWordLength {
		return "", fmt.Errorf("%q must be 1-%d characters", w, MaxWordLength)
	}
	return w, nil
}

// Category returns the category with the given id
func (c *Catalog) Category(id string) (models.Category, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Category{}, false
	}
	return cloneCategory(c.categories[i]), true
}

// Categories returns every category in file order
func (c *Catalog) Categories() []models.Category {
	out := make([]models.Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = cloneCategory(cat)
	}
	return out
}

// IDs returns every category id in file order
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.categories))
	for i, cat := range c.categories {
		ids[i] = cat.ID
	}
	return ids
}

// Avatars returns the avatar pool
func (c *Catalog) Avatars() []string {
	return slices.Clone(c.avatars)
}

func cloneCategory(cat models.Category) models.Category {
	cat.Words = slices.Clone(cat.Words)
	cat.Pairs = slices.Clone(cat.Pairs)
	return cat
}
