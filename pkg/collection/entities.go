// ABOUTME: EntityCollection bundles object, source and definition collections
// ABOUTME: Tracks the target uuids a query or publish was about

package collection

import (
	"github.com/trakhound/entitystore/pkg/entity"
)

// EntityCollection is the complete result of a query or publish: every
// entity involved plus the uuids that were its targets. Not safe for
// concurrent use.
type EntityCollection struct {
	objects     *ObjectCollection
	sources     *SourceCollection
	definitions *DefinitionCollection

	targets    []string
	targetSeen map[string]struct{}
}

// Options configures the collections created by NewEntityCollection
type Options struct {
	ObjectHook func(*entity.Object)
	SourceHook func(*entity.Source)
}

func NewEntityCollection(opts Options) *EntityCollection {
	var objectOpts []ObjectOption
	if opts.ObjectHook != nil {
		objectOpts = append(objectOpts, WithObjectHook(opts.ObjectHook))
	}
	var sourceOpts []SourceOption
	if opts.SourceHook != nil {
		sourceOpts = append(sourceOpts, WithSourceHook(opts.SourceHook))
	}
	return &EntityCollection{
		objects:     NewObjectCollection(objectOpts...),
		sources:     NewSourceCollection(sourceOpts...),
		definitions: NewDefinitionCollection(),
		targetSeen:  make(map[string]struct{}),
	}
}

func (c *EntityCollection) Objects() *ObjectCollection         { return c.objects }
func (c *EntityCollection) Sources() *SourceCollection         { return c.sources }
func (c *EntityCollection) Definitions() *DefinitionCollection { return c.definitions }

// Add stores an entity in the collection for its category and, when
// asTarget is set, records its uuid as a target.
func (c *EntityCollection) Add(e entity.Entity, asTarget bool) bool {
	if isNil(e) {
		return false
	}
	if asTarget {
		c.AddTarget(e.GetUUID())
	}
	switch e.Kind().Category {
	case entity.CategoryObjects:
		return c.objects.Add(e)
	case entity.CategorySources:
		return c.sources.Add(e)
	case entity.CategoryDefinitions:
		return c.definitions.Add(e)
	}
	return false
}

// AddEntities adds each entity and returns how many changed the collection
func (c *EntityCollection) AddEntities(es []entity.Entity, asTarget bool) int {
	changed := 0
	for _, e := range es {
		if c.Add(e, asTarget) {
			changed++
		}
	}
	return changed
}

// AddReport breaks down the outcome of AddReported
type AddReport struct {
	// Added changed the collection (new uuid or new hash)
	Added int
	// Deduplicated matched the stored hash and were dropped
	Deduplicated int
	// Rejected carried a new hash but lost to the stored entity, e.g. an
	// Object with lower priority
	Rejected int
}

// AddReported adds each entity like AddEntities and reports why the ones
// that did not change the collection were dropped.
func (c *EntityCollection) AddReported(es []entity.Entity, asTarget bool) AddReport {
	var report AddReport
	for _, e := range es {
		if isNil(e) {
			continue
		}
		switch {
		case c.unchanged(e):
			if asTarget {
				c.AddTarget(e.GetUUID())
			}
			report.Deduplicated++
		case c.Add(e, asTarget):
			report.Added++
		default:
			report.Rejected++
		}
	}
	return report
}

// unchanged reports whether e's store already holds e's uuid with the same hash
func (c *EntityCollection) unchanged(e entity.Entity) bool {
	switch e.Kind().Category {
	case entity.CategoryObjects:
		return c.objects.all.unchanged(e)
	case entity.CategorySources:
		return c.sources.all.unchanged(e)
	case entity.CategoryDefinitions:
		return c.definitions.all.unchanged(e)
	}
	return false
}

// AddCollection merges other into c, including its targets
func (c *EntityCollection) AddCollection(other *EntityCollection) {
	if other == nil {
		return
	}
	c.AddTargets(other.targets)
	c.AddEntities(other.Entities(), false)
}

// AddTarget records uuid as a target. Empty and repeated uuids are ignored.
func (c *EntityCollection) AddTarget(uuid string) {
	if uuid == "" {
		return
	}
	if _, ok := c.targetSeen[uuid]; ok {
		return
	}
	c.targetSeen[uuid] = struct{}{}
	c.targets = append(c.targets, uuid)
}

func (c *EntityCollection) AddTargets(uuids []string) {
	for _, uuid := range uuids {
		c.AddTarget(uuid)
	}
}

// TargetUUIDs returns the targets in the order they were first added
func (c *EntityCollection) TargetUUIDs() []string {
	if len(c.targets) == 0 {
		return nil
	}
	out := make([]string, len(c.targets))
	copy(out, c.targets)
	return out
}

func (c *EntityCollection) TargetCount() int { return len(c.targets) }

// TargetEntities resolves every target uuid that is present in the collection
func (c *EntityCollection) TargetEntities() []entity.Entity {
	var out []entity.Entity
	for _, uuid := range c.targets {
		if e := c.GetEntity(uuid); e != nil {
			out = append(out, e)
		}
	}
	return out
}

// GetTargetEntity returns the entity for uuid only if uuid is a target
func (c *EntityCollection) GetTargetEntity(uuid string) entity.Entity {
	if _, ok := c.targetSeen[uuid]; !ok {
		return nil
	}
	return c.GetEntity(uuid)
}

// GetEntity looks uuid up in sources, then definitions, then objects
func (c *EntityCollection) GetEntity(uuid string) entity.Entity {
	if uuid == "" {
		return nil
	}
	if e := c.sources.GetEntity(uuid); e != nil {
		return e
	}
	if e := c.definitions.GetEntity(uuid); e != nil {
		return e
	}
	return c.objects.GetEntity(uuid)
}

// QueryIndex looks key up in a named index of the store holding kind.
// Unknown kinds and indexes return nil.
func (c *EntityCollection) QueryIndex(kind entity.Kind, index, key string) []entity.Entity {
	switch kind.Category {
	case entity.CategoryObjects:
		return c.objects.QueryIndex(kind, index, key)
	case entity.CategorySources:
		return c.sources.QueryIndex(kind, index, key)
	case entity.CategoryDefinitions:
		return c.definitions.QueryIndex(kind, index, key)
	}
	return nil
}

// Entities lists sources, then definitions, then objects
func (c *EntityCollection) Entities() []entity.Entity {
	var out []entity.Entity
	out = append(out, c.sources.Entities()...)
	out = append(out, c.definitions.Entities()...)
	out = append(out, c.objects.Entities()...)
	return out
}

func (c *EntityCollection) Count() int {
	return c.objects.Count() + c.sources.Count() + c.definitions.Count()
}

func (c *EntityCollection) IsEmpty() bool { return c.Count() == 0 }

// Stats counts stored entities per kind across all categories
func (c *EntityCollection) Stats() Stats {
	s := c.objects.Stats()
	s.Merge(c.sources.Stats())
	s.Merge(c.definitions.Stats())
	return s
}

// Clear empties every collection and forgets all targets
func (c *EntityCollection) Clear() {
	c.objects.Clear()
	c.sources.Clear()
	c.definitions.Clear()
	c.targets = nil
	c.targetSeen = make(map[string]struct{})
}
