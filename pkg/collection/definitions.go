// ABOUTME: DefinitionCollection holds definitions and their descriptive entities
// ABOUTME: Definitions are indexed by parent; metadata, descriptions and wikis by definition

package collection

import (
	"github.com/trakhound/entitystore/pkg/entity"
	"github.com/trakhound/entitystore/pkg/store"
)

// DefinitionCollection holds the definition vocabulary. Not safe for concurrent use.
type DefinitionCollection struct {
	definitions  *store.Store[entity.Definition, *entity.Definition]
	metadata     *store.Store[entity.DefinitionMetadata, *entity.DefinitionMetadata]
	descriptions *store.Store[entity.DefinitionDescription, *entity.DefinitionDescription]
	wikis        *store.Store[entity.DefinitionWiki, *entity.DefinitionWiki]

	all components
}

func NewDefinitionCollection() *DefinitionCollection {
	c := &DefinitionCollection{
		definitions:  store.New[entity.Definition](store.Multi(IndexParent, func(e *entity.Definition) string { return e.ParentUUID })),
		metadata:     store.New[entity.DefinitionMetadata](store.Multi(IndexDefinition, func(e *entity.DefinitionMetadata) string { return e.DefinitionUUID })),
		descriptions: store.New[entity.DefinitionDescription](store.Multi(IndexDefinition, func(e *entity.DefinitionDescription) string { return e.DefinitionUUID })),
		wikis:        store.New[entity.DefinitionWiki](store.Multi(IndexDefinition, func(e *entity.DefinitionWiki) string { return e.DefinitionUUID })),
	}
	c.all = components{
		componentOf(entity.Kind{Category: entity.CategoryDefinitions, Class: entity.ClassDefinition}, c.definitions),
		componentOf(entity.Kind{Category: entity.CategoryDefinitions, Class: entity.ClassDefinitionMetadata}, c.metadata),
		componentOf(entity.Kind{Category: entity.CategoryDefinitions, Class: entity.ClassDefinitionDescription}, c.descriptions),
		componentOf(entity.Kind{Category: entity.CategoryDefinitions, Class: entity.ClassDefinitionWiki}, c.wikis),
	}
	return c
}

func (c *DefinitionCollection) Add(e entity.Entity) bool {
	switch v := e.(type) {
	case *entity.Definition:
		return c.definitions.Add(v)
	case *entity.DefinitionMetadata:
		return c.metadata.Add(v)
	case *entity.DefinitionDescription:
		return c.descriptions.Add(v)
	case *entity.DefinitionWiki:
		return c.wikis.Add(v)
	}
	return false
}

func (c *DefinitionCollection) AddEntities(es []entity.Entity) int {
	changed := 0
	for _, e := range es {
		if c.Add(e) {
			changed++
		}
	}
	return changed
}

func (c *DefinitionCollection) GetEntity(uuid string) entity.Entity { return c.all.get(uuid) }
func (c *DefinitionCollection) Entities() []entity.Entity           { return c.all.entities() }
func (c *DefinitionCollection) EntityArrays() map[string][][]any    { return c.all.arrays() }
func (c *DefinitionCollection) QueryIndex(kind entity.Kind, index, key string) []entity.Entity {
	return c.all.query(kind, index, key)
}
func (c *DefinitionCollection) Count() int    { return c.all.count() }
func (c *DefinitionCollection) IsEmpty() bool { return c.Count() == 0 }
func (c *DefinitionCollection) Stats() Stats  { return c.all.stats() }
func (c *DefinitionCollection) Clear()        { c.all.clear() }

// Definitions

func (c *DefinitionCollection) AddDefinition(e *entity.Definition) bool { return c.definitions.Add(e) }
func (c *DefinitionCollection) AddDefinitions(es []*entity.Definition) int {
	return c.definitions.AddMany(es)
}
func (c *DefinitionCollection) GetDefinition(uuid string) *entity.Definition {
	return c.definitions.Get(uuid)
}
func (c *DefinitionCollection) GetDefinitions(uuids []string) []*entity.Definition {
	return c.definitions.GetMany(uuids)
}
func (c *DefinitionCollection) GetDefinitionArrays() [][]any      { return c.definitions.Arrays() }
func (c *DefinitionCollection) Definitions() []*entity.Definition { return c.definitions.All() }

// QueryDefinitionByID looks a definition up by its case-insensitive id
func (c *DefinitionCollection) QueryDefinitionByID(id string) *entity.Definition {
	return c.definitions.Get(entity.GenerateDefinitionUUID(id))
}

func (c *DefinitionCollection) QueryDefinitionsByParentUUID(parentUUID string) []*entity.Definition {
	return c.definitions.Query(IndexParent, parentUUID)
}

// Metadata

func (c *DefinitionCollection) AddMetadata(e *entity.DefinitionMetadata) bool {
	return c.metadata.Add(e)
}
func (c *DefinitionCollection) GetMetadata(uuid string) *entity.DefinitionMetadata {
	return c.metadata.Get(uuid)
}
func (c *DefinitionCollection) GetMetadataArrays() [][]any { return c.metadata.Arrays() }

func (c *DefinitionCollection) QueryMetadataByDefinitionUUID(definitionUUID string) []*entity.DefinitionMetadata {
	return c.metadata.Query(IndexDefinition, definitionUUID)
}

// QueryMetadataByName returns the metadata named name on a definition
func (c *DefinitionCollection) QueryMetadataByName(definitionUUID, name string) *entity.DefinitionMetadata {
	return c.metadata.Get(entity.GenerateDefinitionMetadataUUID(definitionUUID, name))
}

// Descriptions

func (c *DefinitionCollection) AddDescription(e *entity.DefinitionDescription) bool {
	return c.descriptions.Add(e)
}
func (c *DefinitionCollection) GetDescription(uuid string) *entity.DefinitionDescription {
	return c.descriptions.Get(uuid)
}
func (c *DefinitionCollection) GetDescriptionArrays() [][]any { return c.descriptions.Arrays() }

func (c *DefinitionCollection) QueryDescriptionsByDefinitionUUID(definitionUUID string) []*entity.DefinitionDescription {
	return c.descriptions.Query(IndexDefinition, definitionUUID)
}

// QueryDescriptionByLanguage returns the description of a definition in one language
func (c *DefinitionCollection) QueryDescriptionByLanguage(definitionUUID, languageCode string) *entity.DefinitionDescription {
	return c.descriptions.Get(entity.GenerateDefinitionDescriptionUUID(definitionUUID, languageCode))
}

// Wikis

func (c *DefinitionCollection) AddWiki(e *entity.DefinitionWiki) bool { return c.wikis.Add(e) }
func (c *DefinitionCollection) GetWiki(uuid string) *entity.DefinitionWiki {
	return c.wikis.Get(uuid)
}
func (c *DefinitionCollection) GetWikiArrays() [][]any { return c.wikis.Arrays() }

func (c *DefinitionCollection) QueryWikisByDefinitionUUID(definitionUUID string) []*entity.DefinitionWiki {
	return c.wikis.Query(IndexDefinition, definitionUUID)
}

func (c *DefinitionCollection) QueryWikiBySection(definitionUUID, section string) *entity.DefinitionWiki {
	return c.wikis.Get(entity.GenerateDefinitionWikiUUID(definitionUUID, section))
}
