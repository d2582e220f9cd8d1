// ABOUTME: YAML/JSON fixture documents of entity wire arrays
// ABOUTME: Loads fixtures into an EntityCollection and dumps collections back out

package fixture

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/trakhound/entitystore/pkg/collection"
	"github.com/trakhound/entitystore/pkg/entity"
)

// Document holds wire arrays grouped by category and class name. JSON is
// accepted too since it parses as YAML.
type Document struct {
	Objects     map[string][][]any `yaml:"objects,omitempty"`
	Sources     map[string][][]any `yaml:"sources,omitempty"`
	Definitions map[string][][]any `yaml:"definitions,omitempty"`
	Targets     []string           `yaml:"targets,omitempty"`
}

// Report summarizes what applying a document did
type Report struct {
	Decoded int
	Added   int
	Skipped int
	Targets int
}

// Parse decodes a fixture document
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parse fixture")
	}
	return &doc, nil
}

// ReadFile parses the fixture at path
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read fixture %s", path)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "fixture %s", path)
	}
	return doc, nil
}

// LoadFile reads the fixture at path and applies it to c
func LoadFile(path string, c *collection.EntityCollection) (*Report, error) {
	doc, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return doc.Apply(c)
}

// Apply decodes every array and adds it to c. Sources go first, then
// definitions, then objects; within a category classes are applied in class
// id order so objects land before the content that points at them. Arrays
// that fail to decode are skipped; an unknown class name is an error.
func (d *Document) Apply(c *collection.EntityCollection) (*Report, error) {
	report := &Report{}
	groups := []struct {
		category entity.Category
		classes  map[string][][]any
	}{
		{entity.CategorySources, d.Sources},
		{entity.CategoryDefinitions, d.Definitions},
		{entity.CategoryObjects, d.Objects},
	}

	for _, g := range groups {
		entities, err := decodeCategory(g.category, g.classes, report)
		if err != nil {
			return nil, err
		}
		report.Added += c.AddEntities(entities, false)
	}

	before := c.TargetCount()
	c.AddTargets(d.Targets)
	report.Targets = c.TargetCount() - before
	return report, nil
}

func decodeCategory(category entity.Category, classes map[string][][]any, report *Report) ([]entity.Entity, error) {
	if len(classes) == 0 {
		return nil, nil
	}
	for name := range classes {
		if _, err := entity.ParseKind(category, name); err != nil {
			return nil, err
		}
	}

	var out []entity.Entity
	for _, kind := range entity.Kinds(category) {
		arrays, ok := classes[kind.ClassName()]
		if !ok {
			continue
		}
		entities, skipped, err := entity.DecodeArrays(kind, arrays)
		if err != nil {
			return nil, err
		}
		report.Decoded += len(entities)
		report.Skipped += skipped
		out = append(out, entities...)
	}
	return out, nil
}

// FromCollection captures every entity and target of c as a document
func FromCollection(c *collection.EntityCollection) *Document {
	return &Document{
		Objects:     c.Objects().EntityArrays(),
		Sources:     c.Sources().EntityArrays(),
		Definitions: c.Definitions().EntityArrays(),
		Targets:     c.TargetUUIDs(),
	}
}

// Marshal encodes the document as YAML
func (d *Document) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, errors.Wrap(err, "encode fixture")
	}
	return data, nil
}
