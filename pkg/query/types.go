// ABOUTME: Query types for reading an entity collection
// ABOUTME: Path, hierarchy, content and metadata queries and their results

package query

import (
	"github.com/trakhound/entitystore/pkg/entity"
)

// QueryType defines the type of query
type QueryType int

const (
	QueryObjects  QueryType = iota // objects matching a path or expression
	QueryChildren                  // descendants (or direct children) of an object
	QueryRoot                      // topmost ancestor of an object
	QueryContent                   // content entities attached to objects matching a path
	QueryMetadata                  // metadata attached to an entity
)

// Filter keys understood by Execute
const (
	FilterPath      = "path"
	FilterUUID      = "uuid"
	FilterClass     = "class"
	FilterName      = "name"
	FilterRecursive = "recursive"
)

// Query represents a read against a collection
type Query struct {
	Type       QueryType
	Filters    map[string]interface{}
	Limit      int
	Offset     int
	OrderBy    string
	Descending bool
}

// Result represents a query result. Only the slice matching the query type is set.
type Result struct {
	Objects  []*entity.Object
	Content  []ContentResult
	Metadata []*entity.Metadata
	Total    int
	HasMore  bool
}

// ContentResult pairs an object with the content entities attached to it
type ContentResult struct {
	Object   *entity.Object
	Kind     entity.Kind
	Entities []entity.Entity
}

// EnrichedObject combines an object with its metadata and content
type EnrichedObject struct {
	Object   *entity.Object
	Metadata map[string]string
	Content  []entity.Entity
	Children int
}

// QueryBuilder provides fluent interface for building queries
type QueryBuilder struct {
	query Query
}

// NewQueryBuilder creates a new query builder
func NewQueryBuilder(qtype QueryType) *QueryBuilder {
	return &QueryBuilder{
		query: Query{
			Type:    qtype,
			Filters: make(map[string]interface{}),
			Limit:   100,
		},
	}
}

// Where adds a filter condition
func (qb *QueryBuilder) Where(key string, value interface{}) *QueryBuilder {
	qb.query.Filters[key] = value
	return qb
}

// Limit sets the result limit
func (qb *QueryBuilder) Limit(limit int) *QueryBuilder {
	qb.query.Limit = limit
	return qb
}

// Offset sets the result offset. Negative offsets become 0.
func (qb *QueryBuilder) Offset(offset int) *QueryBuilder {
	qb.query.Offset = max(offset, 0)
	return qb
}

// OrderBy sets ordering field ("path", "name" or "created")
func (qb *QueryBuilder) OrderBy(field string, descending bool) *QueryBuilder {
	qb.query.OrderBy = field
	qb.query.Descending = descending
	return qb
}

// Build returns the constructed query
func (qb *QueryBuilder) Build() Query {
	return qb.query
}
