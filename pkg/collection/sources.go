// ABOUTME: SourceCollection holds source entities and their metadata
// ABOUTME: Sources are indexed by parent, metadata by owning source

package collection

import (
	"github.com/trakhound/entitystore/pkg/entity"
	"github.com/trakhound/entitystore/pkg/store"
)

// SourceCollection holds sources and source metadata. Not safe for concurrent use.
type SourceCollection struct {
	sources  *store.Store[entity.Source, *entity.Source]
	metadata *store.Store[entity.SourceMetadata, *entity.SourceMetadata]

	all components

	onAddSource func(*entity.Source)
}

// SourceOption configures a SourceCollection
type SourceOption func(*SourceCollection)

// WithSourceHook registers fn to run after a Source is stored. fn receives a copy.
func WithSourceHook(fn func(*entity.Source)) SourceOption {
	return func(c *SourceCollection) {
		c.onAddSource = fn
	}
}

func NewSourceCollection(opts ...SourceOption) *SourceCollection {
	c := &SourceCollection{
		sources:  store.New[entity.Source](store.Multi(IndexParent, func(e *entity.Source) string { return e.ParentUUID })),
		metadata: store.New[entity.SourceMetadata](store.Multi(IndexSource, func(e *entity.SourceMetadata) string { return e.SourceUUID })),
	}
	c.all = components{
		componentOf(entity.Kind{Category: entity.CategorySources, Class: entity.ClassSource}, c.sources),
		componentOf(entity.Kind{Category: entity.CategorySources, Class: entity.ClassSourceMetadata}, c.metadata),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add routes a source-category entity to its store
func (c *SourceCollection) Add(e entity.Entity) bool {
	switch v := e.(type) {
	case *entity.Source:
		return c.AddSource(v)
	case *entity.SourceMetadata:
		return c.AddMetadata(v)
	}
	return false
}

func (c *SourceCollection) AddEntities(es []entity.Entity) int {
	changed := 0
	for _, e := range es {
		if c.Add(e) {
			changed++
		}
	}
	return changed
}

func (c *SourceCollection) GetEntity(uuid string) entity.Entity { return c.all.get(uuid) }
func (c *SourceCollection) Entities() []entity.Entity           { return c.all.entities() }
func (c *SourceCollection) EntityArrays() map[string][][]any    { return c.all.arrays() }
func (c *SourceCollection) QueryIndex(kind entity.Kind, index, key string) []entity.Entity {
	return c.all.query(kind, index, key)
}
func (c *SourceCollection) Count() int    { return c.all.count() }
func (c *SourceCollection) IsEmpty() bool { return c.Count() == 0 }
func (c *SourceCollection) Stats() Stats  { return c.all.stats() }
func (c *SourceCollection) Clear()        { c.all.clear() }

// Sources

func (c *SourceCollection) AddSource(e *entity.Source) bool {
	if !c.sources.Add(e) {
		return false
	}
	if c.onAddSource != nil {
		c.onAddSource(e.Clone())
	}
	return true
}

func (c *SourceCollection) AddSources(es []*entity.Source) int {
	changed := 0
	for _, e := range es {
		if c.AddSource(e) {
			changed++
		}
	}
	return changed
}

func (c *SourceCollection) GetSource(uuid string) *entity.Source { return c.sources.Get(uuid) }
func (c *SourceCollection) GetSources(uuids []string) []*entity.Source {
	return c.sources.GetMany(uuids)
}
func (c *SourceCollection) GetSourceArrays() [][]any  { return c.sources.Arrays() }
func (c *SourceCollection) Sources() []*entity.Source { return c.sources.All() }

func (c *SourceCollection) QuerySourcesByParentUUID(parentUUID string) []*entity.Source {
	return c.sources.Query(IndexParent, parentUUID)
}

func (c *SourceCollection) QuerySourcesByParentUUIDs(parentUUIDs []string) []*entity.Source {
	return c.sources.QueryMany(IndexParent, parentUUIDs)
}

// QuerySourceChain returns the source and its ancestors, nearest first
func (c *SourceCollection) QuerySourceChain(uuid string) []*entity.Source {
	var chain []*entity.Source
	seen := make(map[string]bool)
	for uuid != "" && !seen[uuid] {
		s := c.sources.Get(uuid)
		if s == nil {
			break
		}
		seen[uuid] = true
		chain = append(chain, s)
		uuid = s.ParentUUID
	}
	return chain
}

// Metadata

func (c *SourceCollection) AddMetadata(e *entity.SourceMetadata) bool { return c.metadata.Add(e) }
func (c *SourceCollection) AddMetadataEntries(es []*entity.SourceMetadata) int {
	return c.metadata.AddMany(es)
}
func (c *SourceCollection) GetMetadata(uuid string) *entity.SourceMetadata {
	return c.metadata.Get(uuid)
}
func (c *SourceCollection) GetMetadataEntries(uuids []string) []*entity.SourceMetadata {
	return c.metadata.GetMany(uuids)
}
func (c *SourceCollection) GetMetadataArrays() [][]any         { return c.metadata.Arrays() }
func (c *SourceCollection) Metadata() []*entity.SourceMetadata { return c.metadata.All() }

func (c *SourceCollection) QueryMetadataBySourceUUID(sourceUUID string) []*entity.SourceMetadata {
	return c.metadata.Query(IndexSource, sourceUUID)
}

func (c *SourceCollection) QueryMetadataBySourceUUIDs(sourceUUIDs []string) []*entity.SourceMetadata {
	return c.metadata.QueryMany(IndexSource, sourceUUIDs)
}

// QueryMetadataByEntityUUID returns the metadata named name on a source
func (c *SourceCollection) QueryMetadataByEntityUUID(sourceUUID, name string) *entity.SourceMetadata {
	return c.metadata.Get(entity.GenerateSourceMetadataUUID(sourceUUID, name))
}
