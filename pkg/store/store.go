// ABOUTME: Generic per-type entity store with hash-based dedup and secondary indexes
// ABOUTME: One Store instance backs each entity class inside a collection

package store

import (
	"bytes"

	"github.com/trakhound/entitystore/pkg/entity"
	"github.com/trakhound/entitystore/pkg/listdict"
)

// Record is the constraint every stored type satisfies: a pointer to an
// entity struct that can copy itself.
type Record[T any] interface {
	*T
	entity.Entity
	Clone() *T
}

// Store holds the current value of each entity by uuid plus its secondary
// indexes. Values are cloned on the way in and on the way out. A Store is
// not safe for concurrent use.
type Store[T any, P Record[T]] struct {
	items  map[string]P
	order  []string
	unique map[string]*uniqueIndex[P]
	multi  map[string]*multiIndex[P]
	accept func(existing, incoming P) bool
}

// uniqueIndex maps a foreign key to the single uuid that currently holds it
type uniqueIndex[P any] struct {
	key     func(P) string
	entries map[string]string
}

// multiIndex maps a foreign key to every uuid added under it. Entries are
// never pruned when an entity is replaced.
type multiIndex[P any] struct {
	key     func(P) string
	entries *listdict.ListDictionary[string, string]
}

// Option configures a Store
type Option[P any] func(*options[P])

type options[P any] struct {
	unique map[string]func(P) string
	multi  map[string]func(P) string
	accept func(existing, incoming P) bool
}

// Unique adds a single-valued index: each key resolves to at most one uuid
func Unique[P any](name string, key func(P) string) Option[P] {
	return func(o *options[P]) {
		o.unique[name] = key
	}
}

// Multi adds a multi-valued index: each key resolves to every uuid added under it
func Multi[P any](name string, key func(P) string) Option[P] {
	return func(o *options[P]) {
		o.multi[name] = key
	}
}

// WithAccept installs a gate consulted before an existing entity is replaced
func WithAccept[P any](fn func(existing, incoming P) bool) Option[P] {
	return func(o *options[P]) {
		o.accept = fn
	}
}

// New creates an empty store
func New[T any, P Record[T]](opts ...Option[P]) *Store[T, P] {
	o := &options[P]{
		unique: make(map[string]func(P) string),
		multi:  make(map[string]func(P) string),
	}
	for _, opt := range opts {
		opt(o)
	}

	s := &Store[T, P]{
		items:  make(map[string]P),
		unique: make(map[string]*uniqueIndex[P], len(o.unique)),
		multi:  make(map[string]*multiIndex[P], len(o.multi)),
		accept: o.accept,
	}
	for name, key := range o.unique {
		s.unique[name] = &uniqueIndex[P]{key: key, entries: make(map[string]string)}
	}
	for name, key := range o.multi {
		s.multi[name] = &multiIndex[P]{key: key, entries: listdict.New[string, string]()}
	}
	return s
}

// Add stores a copy of e unless an entity with the same uuid and identical
// hash bytes is already present. Nil entities and empty uuids are ignored.
// Reports whether the store changed.
func (s *Store[T, P]) Add(e P) bool {
	if e == nil {
		return false
	}
	uuid := e.GetUUID()
	if uuid == "" {
		return false
	}

	existing, exists := s.items[uuid]
	if exists {
		if bytes.Equal(existing.GetHash(), e.GetHash()) {
			return false
		}
		if s.accept != nil && !s.accept(existing, e) {
			return false
		}
	}

	stored := P(e.Clone())

	for _, idx := range s.unique {
		if exists {
			if old := idx.key(existing); old != "" && idx.entries[old] == uuid {
				delete(idx.entries, old)
			}
		}
		if key := idx.key(stored); key != "" {
			idx.entries[key] = uuid
		}
	}
	for _, idx := range s.multi {
		if key := idx.key(stored); key != "" && !idx.entries.Contains(key, uuid) {
			idx.entries.Add(key, uuid)
		}
	}

	if !exists {
		s.order = append(s.order, uuid)
	}
	s.items[uuid] = stored
	return true
}

// Unchanged reports whether e's uuid is stored with identical hash bytes,
// meaning Add(e) would be a no-op
func (s *Store[T, P]) Unchanged(e P) bool {
	if e == nil {
		return false
	}
	existing, ok := s.items[e.GetUUID()]
	return ok && bytes.Equal(existing.GetHash(), e.GetHash())
}

// AddMany adds each entity and returns how many changed the store
func (s *Store[T, P]) AddMany(es []P) int {
	changed := 0
	for _, e := range es {
		if s.Add(e) {
			changed++
		}
	}
	return changed
}

// Get returns a copy of the entity with uuid, or nil
func (s *Store[T, P]) Get(uuid string) P {
	if uuid == "" {
		return nil
	}
	if e, ok := s.items[uuid]; ok {
		return P(e.Clone())
	}
	return nil
}

// Contains reports whether uuid is stored
func (s *Store[T, P]) Contains(uuid string) bool {
	_, ok := s.items[uuid]
	return ok
}

// GetMany returns copies of the entities that exist for uuids. Nil or empty
// input returns nil; otherwise the result is non-nil even when nothing matched.
func (s *Store[T, P]) GetMany(uuids []string) []P {
	if len(uuids) == 0 {
		return nil
	}
	out := make([]P, 0, len(uuids))
	for _, uuid := range uuids {
		if e := s.Get(uuid); e != nil {
			out = append(out, e)
		}
	}
	return out
}

// QueryOne returns the entity currently holding key in a single-valued index
func (s *Store[T, P]) QueryOne(index, key string) P {
	if key == "" {
		return nil
	}
	idx, ok := s.unique[index]
	if !ok {
		return nil
	}
	return s.Get(idx.entries[key])
}

// Query returns the entities listed under key, in insertion order, or nil
func (s *Store[T, P]) Query(index, key string) []P {
	uuids := s.Keys(index, key)
	if len(uuids) == 0 {
		return nil
	}
	out := make([]P, 0, len(uuids))
	for _, uuid := range uuids {
		if e := s.Get(uuid); e != nil {
			out = append(out, e)
		}
	}
	return out
}

// QueryMany concatenates Query over keys. Returns nil when nothing matched.
func (s *Store[T, P]) QueryMany(index string, keys []string) []P {
	var out []P
	for _, key := range keys {
		out = append(out, s.Query(index, key)...)
	}
	return out
}

// Keys returns the raw uuids indexed under key
func (s *Store[T, P]) Keys(index, key string) []string {
	if key == "" {
		return nil
	}
	if idx, ok := s.multi[index]; ok {
		return idx.entries.Get(key)
	}
	if idx, ok := s.unique[index]; ok {
		if uuid, ok := idx.entries[key]; ok {
			return []string{uuid}
		}
	}
	return nil
}

// IndexKeys lists the distinct keys present in an index
func (s *Store[T, P]) IndexKeys(index string) []string {
	if idx, ok := s.multi[index]; ok {
		return idx.entries.Keys()
	}
	if idx, ok := s.unique[index]; ok {
		keys := make([]string, 0, len(idx.entries))
		for k := range idx.entries {
			keys = append(keys, k)
		}
		return keys
	}
	return nil
}

// All returns copies of every entity in first-insertion order
func (s *Store[T, P]) All() []P {
	if len(s.order) == 0 {
		return nil
	}
	out := make([]P, 0, len(s.order))
	for _, uuid := range s.order {
		out = append(out, P(s.items[uuid].Clone()))
	}
	return out
}

// Entities returns every entity as the common interface
func (s *Store[T, P]) Entities() []entity.Entity {
	if len(s.order) == 0 {
		return nil
	}
	out := make([]entity.Entity, 0, len(s.order))
	for _, uuid := range s.order {
		out = append(out, P(s.items[uuid].Clone()))
	}
	return out
}

// Arrays returns the wire arrays of every entity, or nil when empty
func (s *Store[T, P]) Arrays() [][]any {
	if len(s.order) == 0 {
		return nil
	}
	out := make([][]any, 0, len(s.order))
	for _, uuid := range s.order {
		out = append(out, s.items[uuid].ToArray())
	}
	return out
}

// Len returns the number of stored entities
func (s *Store[T, P]) Len() int {
	return len(s.items)
}

// Empty reports whether nothing is stored
func (s *Store[T, P]) Empty() bool {
	return len(s.items) == 0
}

// Clear removes all entities and index entries
func (s *Store[T, P]) Clear() {
	s.items = make(map[string]P)
	s.order = nil
	for _, idx := range s.unique {
		idx.entries = make(map[string]string)
	}
	for _, idx := range s.multi {
		idx.entries.Clear()
	}
}
