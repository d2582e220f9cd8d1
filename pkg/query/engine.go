// ABOUTME: Query engine over an entity collection
// ABOUTME: Resolves paths, walks the object hierarchy and assembles content results

package query

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/trakhound/entitystore/pkg/collection"
	"github.com/trakhound/entitystore/pkg/entity"
)

var (
	// ErrUnsupportedQuery is returned for unknown query types
	ErrUnsupportedQuery = errors.New("unsupported query type")
	// ErrMissingFilter is returned when a query lacks a required filter
	ErrMissingFilter = errors.New("missing required filter")
)

// Engine answers queries against one collection. Concurrent Execute calls
// are safe while nothing writes to the collection; the only state they touch
// is the collection's path expression cache, which has its own lock.
type Engine struct {
	entities *collection.EntityCollection
}

// NewEngine creates a new query engine
func NewEngine(entities *collection.EntityCollection) *Engine {
	return &Engine{entities: entities}
}

// Execute runs a query and returns results
func (e *Engine) Execute(q Query) (*Result, error) {
	if q.Offset < 0 {
		q.Offset = 0
	}
	switch q.Type {
	case QueryObjects:
		return e.executeObjectQuery(q)
	case QueryChildren:
		return e.executeChildrenQuery(q)
	case QueryRoot:
		return e.executeRootQuery(q)
	case QueryContent:
		return e.executeContentQuery(q)
	case QueryMetadata:
		return e.executeMetadataQuery(q)
	default:
		return nil, errors.Wrapf(ErrUnsupportedQuery, "type %d", q.Type)
	}
}

// ObjectsByPath resolves an absolute path, uuid= path or wildcard expression
func (e *Engine) ObjectsByPath(path string) []*entity.Object {
	return e.entities.Objects().QueryObjectsByPath(path)
}

// Children returns the descendants of an object breadth-first, or only its
// direct children when recursive is false
func (e *Engine) Children(uuid string, recursive bool) []*entity.Object {
	objects := e.entities.Objects()
	if !recursive {
		return objects.QueryObjectsByParentUUID(uuid)
	}
	uuids := objects.QueryChildUUIDsByRootUUID(uuid)
	if len(uuids) == 0 {
		return nil
	}
	return objects.GetObjects(uuids)
}

// Root returns the topmost ancestor of an object present in the collection
func (e *Engine) Root(uuid string) *entity.Object {
	return e.entities.Objects().QueryRootByChildUUID(uuid)
}

// ContentResults gathers the content of each object. A zero kind uses each
// object's own content type.
func (e *Engine) ContentResults(kind entity.Kind, objects []*entity.Object) []ContentResult {
	var results []ContentResult
	for _, o := range objects {
		k := kind
		if k.Class == 0 {
			parsed, err := entity.ParseKind(entity.CategoryObjects, strings.ToLower(o.ContentType))
			if err != nil {
				continue
			}
			k = parsed
		}
		content := e.content(k, o.UUID)
		if len(content) == 0 {
			continue
		}
		results = append(results, ContentResult{Object: o, Kind: k, Entities: content})
	}
	return results
}

// GetEnrichedObject returns an object with its metadata, content and child count
func (e *Engine) GetEnrichedObject(uuid string) (*EnrichedObject, error) {
	objects := e.entities.Objects()
	o := objects.GetObject(uuid)
	if o == nil {
		return nil, errors.Newf("object %q not found", uuid)
	}

	enriched := &EnrichedObject{
		Object:   o,
		Metadata: make(map[string]string),
		Children: len(objects.QueryObjectsByParentUUID(uuid)),
	}
	for _, m := range objects.QueryAllMetadataByEntityUUID(uuid) {
		enriched.Metadata[m.Name] = m.Value
	}
	if k, err := entity.ParseKind(entity.CategoryObjects, strings.ToLower(o.ContentType)); err == nil {
		enriched.Content = e.content(k, uuid)
	}
	return enriched, nil
}

// content returns the entities of one content class attached to an object
func (e *Engine) content(kind entity.Kind, objectUUID string) []entity.Entity {
	c := e.entities.Objects()
	switch kind.Class {
	case entity.ClassBlob:
		return one(c.QueryBlobByObjectUUID(objectUUID))
	case entity.ClassBoolean:
		return one(c.QueryBooleanByObjectUUID(objectUUID))
	case entity.ClassDuration:
		return one(c.QueryDurationByObjectUUID(objectUUID))
	case entity.ClassMessageQueue:
		return one(c.QueryMessageQueueByObjectUUID(objectUUID))
	case entity.ClassNumber:
		return one(c.QueryNumberByObjectUUID(objectUUID))
	case entity.ClassReference:
		return one(c.QueryReferenceByObjectUUID(objectUUID))
	case entity.ClassString:
		return one(c.QueryStringByObjectUUID(objectUUID))
	case entity.ClassTimeRange:
		return one(c.QueryTimeRangeByObjectUUID(objectUUID))
	case entity.ClassTimestamp:
		return one(c.QueryTimestampByObjectUUID(objectUUID))
	case entity.ClassVocabulary:
		return one(c.QueryVocabularyByObjectUUID(objectUUID))
	case entity.ClassEvent:
		return many(c.QueryEventsByObjectUUID(objectUUID))
	case entity.ClassHash:
		return many(c.QueryHashesByObjectUUID(objectUUID))
	case entity.ClassLog:
		return many(c.QueryLogsByObjectUUID(objectUUID))
	case entity.ClassMessage:
		return many(c.QueryMessagesByObjectUUID(objectUUID))
	case entity.ClassObservation:
		return many(c.QueryObservationsByObjectUUID(objectUUID))
	case entity.ClassSet:
		return many(c.QuerySetsByObjectUUID(objectUUID))
	case entity.ClassState:
		return many(c.QueryStatesByObjectUUID(objectUUID))
	case entity.ClassStatistic:
		return many(c.QueryStatisticsByObjectUUID(objectUUID))
	case entity.ClassVocabularySet:
		return many(c.QueryVocabularySetsByObjectUUID(objectUUID))
	case entity.ClassGroup:
		return many(c.QueryGroupsByGroupUUID(objectUUID))
	case entity.ClassQueue:
		return many(c.QueryQueuesByQueueUUID(objectUUID))
	case entity.ClassAssignment:
		return many(c.QueryAssignmentsByAssigneeUUID(objectUUID))
	}
	return nil
}

func one[P interface {
	comparable
	entity.Entity
}](p P) []entity.Entity {
	var zero P
	if p == zero {
		return nil
	}
	return []entity.Entity{p}
}

func many[P entity.Entity](ps []P) []entity.Entity {
	if len(ps) == 0 {
		return nil
	}
	out := make([]entity.Entity, len(ps))
	for i, p := range ps {
		out[i] = p
	}
	return out
}

// Internal query executors

func (e *Engine) executeObjectQuery(q Query) (*Result, error) {
	path, ok := getStringFilter(FilterPath, q.Filters)
	if !ok {
		return nil, errors.Wrap(ErrMissingFilter, "path required for object query")
	}
	return objectResult(e.ObjectsByPath(path), q), nil
}

func (e *Engine) executeChildrenQuery(q Query) (*Result, error) {
	uuid, ok := e.resolveUUID(q)
	if !ok {
		return nil, errors.Wrap(ErrMissingFilter, "uuid or path required for children query")
	}
	recursive := true
	if r, ok := q.Filters[FilterRecursive].(bool); ok {
		recursive = r
	}
	return objectResult(e.Children(uuid, recursive), q), nil
}

func (e *Engine) executeRootQuery(q Query) (*Result, error) {
	uuid, ok := e.resolveUUID(q)
	if !ok {
		return nil, errors.Wrap(ErrMissingFilter, "uuid or path required for root query")
	}
	result := &Result{}
	if root := e.Root(uuid); root != nil {
		result.Objects = []*entity.Object{root}
		result.Total = 1
	}
	return result, nil
}

func (e *Engine) executeContentQuery(q Query) (*Result, error) {
	path, ok := getStringFilter(FilterPath, q.Filters)
	if !ok {
		return nil, errors.Wrap(ErrMissingFilter, "path required for content query")
	}
	var kind entity.Kind
	if class, ok := getStringFilter(FilterClass, q.Filters); ok {
		k, err := entity.ParseKind(entity.CategoryObjects, strings.ToLower(class))
		if err != nil {
			return nil, err
		}
		kind = k
	}

	objects := sortObjects(e.ObjectsByPath(path), q.OrderBy, q.Descending)
	content := e.ContentResults(kind, objects)

	result := &Result{Total: len(content)}
	result.Content = applyPagination(content, q.Limit, q.Offset)
	result.HasMore = result.Total > (q.Offset + len(result.Content))
	return result, nil
}

func (e *Engine) executeMetadataQuery(q Query) (*Result, error) {
	uuid, ok := e.resolveUUID(q)
	if !ok {
		return nil, errors.Wrap(ErrMissingFilter, "uuid or path required for metadata query")
	}
	objects := e.entities.Objects()

	result := &Result{}
	if name, ok := getStringFilter(FilterName, q.Filters); ok {
		if m := objects.QueryMetadataByEntityUUID(uuid, name); m != nil {
			result.Metadata = []*entity.Metadata{m}
		}
	} else {
		result.Metadata = objects.QueryAllMetadataByEntityUUID(uuid)
	}
	result.Total = len(result.Metadata)
	return result, nil
}

// resolveUUID takes the uuid filter, falling back to resolving the path filter
func (e *Engine) resolveUUID(q Query) (string, bool) {
	if uuid, ok := getStringFilter(FilterUUID, q.Filters); ok && uuid != "" {
		return uuid, true
	}
	if path, ok := getStringFilter(FilterPath, q.Filters); ok {
		if uuid := entity.PathUUID(path); uuid != "" {
			return uuid, true
		}
	}
	return "", false
}

func objectResult(objects []*entity.Object, q Query) *Result {
	objects = sortObjects(objects, q.OrderBy, q.Descending)
	result := &Result{Total: len(objects)}
	result.Objects = applyPagination(objects, q.Limit, q.Offset)
	result.HasMore = result.Total > (q.Offset + len(result.Objects))
	return result
}

func sortObjects(objects []*entity.Object, field string, descending bool) []*entity.Object {
	var less func(a, b *entity.Object) bool
	switch field {
	case "path":
		less = func(a, b *entity.Object) bool { return strings.ToLower(a.Path) < strings.ToLower(b.Path) }
	case "name":
		less = func(a, b *entity.Object) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case "created":
		less = func(a, b *entity.Object) bool { return a.Created < b.Created }
	default:
		return objects
	}
	sort.SliceStable(objects, func(i, j int) bool {
		if descending {
			return less(objects[j], objects[i])
		}
		return less(objects[i], objects[j])
	})
	return objects
}

// Helper functions

func getStringFilter(key string, filters map[string]interface{}) (string, bool) {
	val, ok := filters[key]
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

func applyPagination[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		if len(items) == 0 {
			return nil
		}
		return []T{}
	}

	start := offset
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return items[start:end]
}
