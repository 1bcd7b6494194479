package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/mod/semver"
)

//go:embed data/catalog.json
var builtinJSON []byte

// SupportedMajor is the only catalog document major version this build reads.
const SupportedMajor = "v1"

// ErrUnsupportedVersion is returned for catalog documents with an unknown major version.
var ErrUnsupportedVersion = errors.New("unsupported catalog version")

// Catalog is a validated, read-only question catalog.
type Catalog struct {
	title      string
	categories []Category
	byID       map[string]int
}

// Builtin returns the catalog embedded in the binary.
func Builtin() (*Catalog, error) {
	return Parse(builtinJSON)
}

// LoadFile reads and validates a catalog document from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse validates raw JSON against the catalog schema, checks the document
// version, and builds a Catalog.
func Parse(data []byte) (*Catalog, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}

	return New(doc.Title, doc.Categories)
}

// New builds a Catalog from in-memory categories after structural validation.
func New(title string, categories []Category) (*Catalog, error) {
	if err := validateCategories(categories); err != nil {
		return nil, err
	}

	c := &Catalog{
		title:      title,
		categories: categories,
		byID:       make(map[string]int, len(categories)),
	}
	for i, cat := range categories {
		c.byID[cat.ID] = i
	}
	return c, nil
}

func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	if semver.Major(v) != SupportedMajor {
		return fmt.Errorf("%w: %s (want %s.x)", ErrUnsupportedVersion, v, SupportedMajor)
	}
	return nil
}

// Title returns the catalog display title.
func (c *Catalog) Title() string {
	return c.title
}

// Categories returns all categories in catalog order.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// Category looks up a category by ID.
func (c *Catalog) Category(id string) (Category, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// TotalQuestions returns the number of questions across all categories.
func (c *Catalog) TotalQuestions() int {
	n := 0
	for _, cat := range c.categories {
		n += len(cat.Questions)
	}
	return n
}
