// ABOUTME: Type-erased view over a typed store used for collection-wide operations
// ABOUTME: Lets a collection look up, list, count and clear every sub-store uniformly

package collection

import (
	"reflect"

	"github.com/trakhound/entitystore/pkg/entity"
	"github.com/trakhound/entitystore/pkg/store"
)

type component struct {
	kind      entity.Kind
	get       func(uuid string) entity.Entity
	unchanged func(e entity.Entity) bool
	entities  func() []entity.Entity
	arrays    func() [][]any
	query     func(index, key string) []entity.Entity
	count     func() int
	clear     func()
}

func componentOf[T any, P store.Record[T]](kind entity.Kind, s *store.Store[T, P]) component {
	return component{
		kind: kind,
		get: func(uuid string) entity.Entity {
			if e := s.Get(uuid); e != nil {
				return e
			}
			return nil
		},
		unchanged: func(e entity.Entity) bool {
			p, ok := e.(P)
			return ok && s.Unchanged(p)
		},
		entities: s.Entities,
		arrays:   s.Arrays,
		query: func(index, key string) []entity.Entity {
			found := s.Query(index, key)
			if len(found) == 0 {
				return nil
			}
			out := make([]entity.Entity, len(found))
			for i, e := range found {
				out[i] = e
			}
			return out
		},
		count: s.Len,
		clear: s.Clear,
	}
}

type components []component

func (cs components) get(uuid string) entity.Entity {
	if uuid == "" {
		return nil
	}
	for _, c := range cs {
		if e := c.get(uuid); e != nil {
			return e
		}
	}
	return nil
}

// unchanged reports whether the store for e's kind already holds e's hash
func (cs components) unchanged(e entity.Entity) bool {
	for _, c := range cs {
		if c.kind == e.Kind() {
			return c.unchanged(e)
		}
	}
	return false
}

func (cs components) entities() []entity.Entity {
	var out []entity.Entity
	for _, c := range cs {
		out = append(out, c.entities()...)
	}
	return out
}

func (cs components) arrays() map[string][][]any {
	out := make(map[string][][]any)
	for _, c := range cs {
		if arrays := c.arrays(); arrays != nil {
			out[c.kind.ClassName()] = arrays
		}
	}
	return out
}

// query looks key up in a named index of the store holding kind
func (cs components) query(kind entity.Kind, index, key string) []entity.Entity {
	for _, c := range cs {
		if c.kind == kind {
			return c.query(index, key)
		}
	}
	return nil
}

func (cs components) count() int {
	n := 0
	for _, c := range cs {
		n += c.count()
	}
	return n
}

func (cs components) stats() Stats {
	s := make(Stats, len(cs))
	for _, c := range cs {
		if n := c.count(); n > 0 {
			s[c.kind] = n
		}
	}
	return s
}

func (cs components) clear() {
	for _, c := range cs {
		c.clear()
	}
}

// Stats counts stored entities per kind. Kinds with no entities are omitted.
type Stats map[entity.Kind]int

// Total sums every kind
func (s Stats) Total() int {
	n := 0
	for _, c := range s {
		n += c
	}
	return n
}

// Merge adds the counts of other into s
func (s Stats) Merge(other Stats) {
	for k, c := range other {
		s[k] += c
	}
}

// ByName renders the counts keyed by "category/class"
func (s Stats) ByName() map[string]int {
	out := make(map[string]int, len(s))
	for k, c := range s {
		out[k.String()] = c
	}
	return out
}

// isNil catches typed nil pointers wrapped in the Entity interface
func isNil(e entity.Entity) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
