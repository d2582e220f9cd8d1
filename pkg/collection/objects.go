// ABOUTME: ObjectCollection aggregates the object entity and every content type attached to it
// ABOUTME: Routes adds and lookups to per-class stores and answers path and hierarchy queries

package collection

import (
	"strings"
	"sync"

	"github.com/trakhound/entitystore/pkg/entity"
	"github.com/trakhound/entitystore/pkg/store"
)

// Secondary index names
const (
	IndexObject     = "object"
	IndexParent     = "parent"
	IndexEntity     = "entity"
	IndexAssignee   = "assignee"
	IndexMember     = "member"
	IndexGroup      = "group"
	IndexQueue      = "queue"
	IndexSource     = "source"
	IndexDefinition = "definition"
)

// ObjectCollection holds objects and their content entities. Writes must not
// run concurrently with anything else; any number of readers may run together.
type ObjectCollection struct {
	objects        *store.Store[entity.Object, *entity.Object]
	metadata       *store.Store[entity.Metadata, *entity.Metadata]
	assignments    *store.Store[entity.Assignment, *entity.Assignment]
	blobs          *store.Store[entity.Blob, *entity.Blob]
	booleans       *store.Store[entity.Boolean, *entity.Boolean]
	durations      *store.Store[entity.Duration, *entity.Duration]
	events         *store.Store[entity.Event, *entity.Event]
	groups         *store.Store[entity.Group, *entity.Group]
	hashes         *store.Store[entity.Hash, *entity.Hash]
	logs           *store.Store[entity.Log, *entity.Log]
	messages       *store.Store[entity.Message, *entity.Message]
	messageQueues  *store.Store[entity.MessageQueue, *entity.MessageQueue]
	numbers        *store.Store[entity.Number, *entity.Number]
	observations   *store.Store[entity.Observation, *entity.Observation]
	queues         *store.Store[entity.Queue, *entity.Queue]
	references     *store.Store[entity.Reference, *entity.Reference]
	sets           *store.Store[entity.Set, *entity.Set]
	states         *store.Store[entity.State, *entity.State]
	statistics     *store.Store[entity.Statistic, *entity.Statistic]
	stringValues   *store.Store[entity.String, *entity.String]
	timeRanges     *store.Store[entity.TimeRange, *entity.TimeRange]
	timestamps     *store.Store[entity.Timestamp, *entity.Timestamp]
	vocabularies   *store.Store[entity.Vocabulary, *entity.Vocabulary]
	vocabularySets *store.Store[entity.VocabularySet, *entity.VocabularySet]

	all components

	onAddObject func(*entity.Object)

	// path expression -> matching object uuids; an empty slice caches a miss.
	// Filled by readers, so guarded separately.
	exprMu      sync.Mutex
	expressions map[string][]string
}

// ObjectOption configures an ObjectCollection
type ObjectOption func(*ObjectCollection)

// WithObjectHook registers fn to run after an Object is stored, whether new
// or replaced. fn receives a copy.
func WithObjectHook(fn func(*entity.Object)) ObjectOption {
	return func(c *ObjectCollection) {
		c.onAddObject = fn
	}
}

// NewObjectCollection creates an empty collection
func NewObjectCollection(opts ...ObjectOption) *ObjectCollection {
	c := &ObjectCollection{
		objects: store.New[entity.Object](
			store.Multi(IndexParent, func(e *entity.Object) string { return e.ParentUUID }),
			store.WithAccept(func(existing, incoming *entity.Object) bool {
				return incoming.Priority >= existing.Priority
			}),
		),
		metadata: store.New[entity.Metadata](
			store.Multi(IndexEntity, func(e *entity.Metadata) string { return e.EntityUUID }),
		),
		assignments: store.New[entity.Assignment](
			store.Multi(IndexAssignee, func(e *entity.Assignment) string { return e.AssigneeUUID }),
			store.Multi(IndexMember, func(e *entity.Assignment) string { return e.MemberUUID }),
		),
		blobs:         store.New[entity.Blob](store.Unique(IndexObject, func(e *entity.Blob) string { return e.ObjectUUID })),
		booleans:      store.New[entity.Boolean](store.Unique(IndexObject, func(e *entity.Boolean) string { return e.ObjectUUID })),
		durations:     store.New[entity.Duration](store.Unique(IndexObject, func(e *entity.Duration) string { return e.ObjectUUID })),
		events:        store.New[entity.Event](store.Multi(IndexObject, func(e *entity.Event) string { return e.ObjectUUID })),
		groups: store.New[entity.Group](
			store.Multi(IndexGroup, func(e *entity.Group) string { return e.GroupUUID }),
			store.Multi(IndexMember, func(e *entity.Group) string { return e.MemberUUID }),
		),
		hashes:        store.New[entity.Hash](store.Multi(IndexObject, func(e *entity.Hash) string { return e.ObjectUUID })),
		logs:          store.New[entity.Log](store.Multi(IndexObject, func(e *entity.Log) string { return e.ObjectUUID })),
		messages:      store.New[entity.Message](store.Multi(IndexObject, func(e *entity.Message) string { return e.ObjectUUID })),
		messageQueues: store.New[entity.MessageQueue](store.Unique(IndexObject, func(e *entity.MessageQueue) string { return e.ObjectUUID })),
		numbers:       store.New[entity.Number](store.Unique(IndexObject, func(e *entity.Number) string { return e.ObjectUUID })),
		observations:  store.New[entity.Observation](store.Multi(IndexObject, func(e *entity.Observation) string { return e.ObjectUUID })),
		queues: store.New[entity.Queue](
			store.Multi(IndexQueue, func(e *entity.Queue) string { return e.QueueUUID }),
			store.Multi(IndexMember, func(e *entity.Queue) string { return e.MemberUUID }),
		),
		references:     store.New[entity.Reference](store.Unique(IndexObject, func(e *entity.Reference) string { return e.ObjectUUID })),
		sets:           store.New[entity.Set](store.Multi(IndexObject, func(e *entity.Set) string { return e.ObjectUUID })),
		states:         store.New[entity.State](store.Multi(IndexObject, func(e *entity.State) string { return e.ObjectUUID })),
		statistics:     store.New[entity.Statistic](store.Multi(IndexObject, func(e *entity.Statistic) string { return e.ObjectUUID })),
		stringValues:   store.New[entity.String](store.Unique(IndexObject, func(e *entity.String) string { return e.ObjectUUID })),
		timeRanges:     store.New[entity.TimeRange](store.Unique(IndexObject, func(e *entity.TimeRange) string { return e.ObjectUUID })),
		timestamps:     store.New[entity.Timestamp](store.Unique(IndexObject, func(e *entity.Timestamp) string { return e.ObjectUUID })),
		vocabularies:   store.New[entity.Vocabulary](store.Unique(IndexObject, func(e *entity.Vocabulary) string { return e.ObjectUUID })),
		vocabularySets: store.New[entity.VocabularySet](store.Multi(IndexObject, func(e *entity.VocabularySet) string { return e.ObjectUUID })),
		expressions:    make(map[string][]string),
	}

	c.all = components{
		componentOf(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassObject}, c.objects),
		componentOf(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassMetadata}, c.metadata),
		componentOf(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassAssignment}, c.assignments),
		componentOf(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassBlob}, c.blobs),
		componentOf(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassBoolean}, c.booleans),
		componentOf(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassDuration}, c.durations),
		componentOf(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassEvent}, c.events),
		componentOf(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassGroup}, c.groups),
		componentOf(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassHash}, c.hashes),
		componentOf(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassLog}, c.logs),
		componentOf(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassMessage}, c.messages),
		componentOf(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassMessageQueue}, c.messageQueues),
		componentOf(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassNumber}, c.numbers),
		componentOf(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassObservation}, c.observations),
		componentOf(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassQueue}, c.queues),
		componentOf(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassReference}, c.references),
		componentOf(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassSet}, c.sets),
		componentOf(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassState}, c.states),
		componentOf(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassStatistic}, c.statistics),
		componentOf(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassString}, c.stringValues),
		componentOf(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassTimeRange}, c.timeRanges),
		componentOf(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassTimestamp}, c.timestamps),
		componentOf(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassVocabulary}, c.vocabularies),
		componentOf(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassVocabularySet}, c.vocabularySets),
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add routes an entity to the store for its class. Entities from other
// categories are ignored. Reports whether the collection changed.
func (c *ObjectCollection) Add(e entity.Entity) bool {
	switch v := e.(type) {
	case *entity.Object:
		return c.AddObject(v)
	case *entity.Metadata:
		return c.AddMetadata(v)
	case *entity.Assignment:
		return c.AddAssignment(v)
	case *entity.Blob:
		return c.AddBlob(v)
	case *entity.Boolean:
		return c.AddBoolean(v)
	case *entity.Duration:
		return c.AddDuration(v)
	case *entity.Event:
		return c.AddEvent(v)
	case *entity.Group:
		return c.AddGroup(v)
	case *entity.Hash:
		return c.AddHash(v)
	case *entity.Log:
		return c.AddLog(v)
	case *entity.Message:
		return c.AddMessage(v)
	case *entity.MessageQueue:
		return c.AddMessageQueue(v)
	case *entity.Number:
		return c.AddNumber(v)
	case *entity.Observation:
		return c.AddObservation(v)
	case *entity.Queue:
		return c.AddQueue(v)
	case *entity.Reference:
		return c.AddReference(v)
	case *entity.Set:
		return c.AddSet(v)
	case *entity.State:
		return c.AddState(v)
	case *entity.Statistic:
		return c.AddStatistic(v)
	case *entity.String:
		return c.AddString(v)
	case *entity.TimeRange:
		return c.AddTimeRange(v)
	case *entity.Timestamp:
		return c.AddTimestamp(v)
	case *entity.Vocabulary:
		return c.AddVocabulary(v)
	case *entity.VocabularySet:
		return c.AddVocabularySet(v)
	}
	return false
}

// AddEntities adds each entity and returns how many changed the collection
func (c *ObjectCollection) AddEntities(es []entity.Entity) int {
	changed := 0
	for _, e := range es {
		if c.Add(e) {
			changed++
		}
	}
	return changed
}

// GetEntity finds uuid in any store of the collection
func (c *ObjectCollection) GetEntity(uuid string) entity.Entity {
	return c.all.get(uuid)
}

// Entities lists every stored entity, grouped by class in class order
func (c *ObjectCollection) Entities() []entity.Entity {
	return c.all.entities()
}

// EntityArrays returns the wire arrays of every non-empty store keyed by class name
func (c *ObjectCollection) EntityArrays() map[string][][]any {
	return c.all.arrays()
}

// QueryIndex returns the entities of kind listed under key in a named index
func (c *ObjectCollection) QueryIndex(kind entity.Kind, index, key string) []entity.Entity {
	return c.all.query(kind, index, key)
}

// Count returns the number of stored entities across all classes
func (c *ObjectCollection) Count() int {
	return c.all.count()
}

// IsEmpty reports whether no entity of any class is stored
func (c *ObjectCollection) IsEmpty() bool {
	return c.Count() == 0
}

// Stats counts stored entities per class
func (c *ObjectCollection) Stats() Stats {
	return c.all.stats()
}

// Clear empties every store and the path expression cache
func (c *ObjectCollection) Clear() {
	c.all.clear()
	c.resetExpressions()
}

// Objects

func (c *ObjectCollection) AddObject(e *entity.Object) bool {
	if !c.objects.Add(e) {
		return false
	}
	c.resetExpressions()
	if c.onAddObject != nil {
		c.onAddObject(e.Clone())
	}
	return true
}

func (c *ObjectCollection) AddObjects(es []*entity.Object) int {
	changed := 0
	for _, e := range es {
		if c.AddObject(e) {
			changed++
		}
	}
	return changed
}

func (c *ObjectCollection) GetObject(uuid string) *entity.Object { return c.objects.Get(uuid) }
func (c *ObjectCollection) GetObjects(uuids []string) []*entity.Object {
	return c.objects.GetMany(uuids)
}
func (c *ObjectCollection) GetObjectArrays() [][]any  { return c.objects.Arrays() }
func (c *ObjectCollection) Objects() []*entity.Object { return c.objects.All() }

// QueryObjectsByParentUUID returns the direct children of an object
func (c *ObjectCollection) QueryObjectsByParentUUID(parentUUID string) []*entity.Object {
	return c.objects.Query(IndexParent, parentUUID)
}

func (c *ObjectCollection) QueryObjectsByParentUUIDs(parentUUIDs []string) []*entity.Object {
	return c.objects.QueryMany(IndexParent, parentUUIDs)
}

// QueryChildUUIDsByRootUUID walks the parent index breadth-first and returns
// the uuids of every descendant of rootUUID.
func (c *ObjectCollection) QueryChildUUIDsByRootUUID(rootUUID string) []string {
	if rootUUID == "" {
		return nil
	}
	var out []string
	seen := map[string]bool{rootUUID: true}
	queue := []string{rootUUID}
	for len(queue) > 0 {
		parent := queue[0]
		queue = queue[1:]
		for _, child := range c.objects.Keys(IndexParent, parent) {
			if seen[child] {
				continue
			}
			seen[child] = true
			out = append(out, child)
			queue = append(queue, child)
		}
	}
	return out
}

// QueryRootByChildUUID follows ParentUUID links up to the topmost object
// present in the collection
func (c *ObjectCollection) QueryRootByChildUUID(childUUID string) *entity.Object {
	current := c.objects.Get(childUUID)
	if current == nil {
		return nil
	}
	seen := map[string]bool{current.UUID: true}
	for current.ParentUUID != "" && !seen[current.ParentUUID] {
		parent := c.objects.Get(current.ParentUUID)
		if parent == nil {
			break
		}
		seen[parent.UUID] = true
		current = parent
	}
	return current
}

// QueryObjectsByPath resolves an absolute path or a wildcard expression
// ("ns:/a/*/c", "/a/**") to the matching objects. Expression results are
// cached until the next object is stored.
func (c *ObjectCollection) QueryObjectsByPath(p string) []*entity.Object {
	if p == "" {
		return nil
	}
	if !entity.IsPathExpression(p) {
		if o := c.objects.Get(entity.PathUUID(p)); o != nil {
			return []*entity.Object{o}
		}
		return nil
	}

	c.exprMu.Lock()
	uuids, ok := c.expressions[p]
	c.exprMu.Unlock()
	if !ok {
		uuids = c.matchExpression(p)
		c.exprMu.Lock()
		c.expressions[p] = uuids
		c.exprMu.Unlock()
	}
	if len(uuids) == 0 {
		return nil
	}
	return c.objects.GetMany(uuids)
}

// QueryObjectsByPaths concatenates QueryObjectsByPath over paths
func (c *ObjectCollection) QueryObjectsByPaths(paths []string) []*entity.Object {
	var out []*entity.Object
	for _, p := range paths {
		out = append(out, c.QueryObjectsByPath(p)...)
	}
	return out
}

func (c *ObjectCollection) resetExpressions() {
	c.exprMu.Lock()
	if len(c.expressions) > 0 {
		c.expressions = make(map[string][]string)
	}
	c.exprMu.Unlock()
}

func (c *ObjectCollection) matchExpression(expr string) []string {
	ns, p := entity.SplitAbsolutePath(expr)
	uuids := []string{}
	for _, o := range c.objects.All() {
		if strings.EqualFold(o.Namespace, ns) && entity.MatchPath(p, o.Path) {
			uuids = append(uuids, o.UUID)
		}
	}
	return uuids
}
