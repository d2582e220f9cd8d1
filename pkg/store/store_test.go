// ABOUTME: Tests for the generic entity store
// ABOUTME: Dedup, replacement, nil safety and index consistency

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trakhound/entitystore/pkg/entity"
)

const byObject = "object"

func booleanStore() *Store[entity.Boolean, *entity.Boolean] {
	return New[entity.Boolean](Unique(byObject, func(e *entity.Boolean) string { return e.ObjectUUID }))
}

func eventStore() *Store[entity.Event, *entity.Event] {
	return New[entity.Event](Multi(byObject, func(e *entity.Event) string { return e.ObjectUUID }))
}

func TestBooleanScenario(t *testing.T) {
	s := booleanStore()

	s.Add(&entity.Boolean{UUID: "b1", ObjectUUID: "o1", Hash: []byte{1, 2, 3}, Value: true})

	got := s.Get("b1")
	require.NotNil(t, got)
	assert.True(t, got.Value)

	q := s.QueryOne(byObject, "o1")
	require.NotNil(t, q)
	assert.Equal(t, "b1", q.UUID)

	// same hash, different value: dedup compares hash bytes only
	changed := s.Add(&entity.Boolean{UUID: "b1", ObjectUUID: "o1", Hash: []byte{1, 2, 3}, Value: false})
	assert.False(t, changed)
	assert.True(t, s.Get("b1").Value)
}

func TestEventScenario(t *testing.T) {
	s := eventStore()
	s.Add(&entity.Event{UUID: "e1", ObjectUUID: "o5", Hash: []byte{1}})
	s.Add(&entity.Event{UUID: "e2", ObjectUUID: "o5", Hash: []byte{2}})

	events := s.Query(byObject, "o5")
	require.Len(t, events, 2)
	assert.Equal(t, "e1", events[0].UUID)
	assert.Equal(t, "e2", events[1].UUID)
}

func TestDedupIdempotence(t *testing.T) {
	s := eventStore()
	e := entity.NewEvent("o1", "t1", "s1", 10, 1)

	assert.True(t, s.Add(e))
	before := s.Arrays()
	keysBefore := s.Keys(byObject, "o1")

	for i := 0; i < 3; i++ {
		assert.False(t, s.Add(e))
	}
	assert.Equal(t, before, s.Arrays())
	assert.Equal(t, keysBefore, s.Keys(byObject, "o1"))
	assert.Equal(t, 1, s.Len())
}

func TestReplaceOnHashChangeMovesSingleValuedKey(t *testing.T) {
	s := booleanStore()
	s.Add(&entity.Boolean{UUID: "b1", ObjectUUID: "A", Hash: []byte{1}, Value: true})
	s.Add(&entity.Boolean{UUID: "b1", ObjectUUID: "B", Hash: []byte{2}, Value: false})

	got := s.Get("b1")
	require.NotNil(t, got)
	assert.False(t, got.Value)
	assert.Equal(t, "B", got.ObjectUUID)

	assert.Nil(t, s.QueryOne(byObject, "A"))
	require.NotNil(t, s.QueryOne(byObject, "B"))
	assert.Equal(t, 1, s.Len())
}

func TestSingleValuedIndexHoldsLatest(t *testing.T) {
	s := booleanStore()
	s.Add(&entity.Boolean{UUID: "b1", ObjectUUID: "A", Hash: []byte{1}})
	s.Add(&entity.Boolean{UUID: "b2", ObjectUUID: "A", Hash: []byte{2}})

	got := s.QueryOne(byObject, "A")
	require.NotNil(t, got)
	assert.Equal(t, "b2", got.UUID)
	assert.Equal(t, []string{"b2"}, s.Keys(byObject, "A"))

	// replacing the old holder must not steal the key back
	s.Add(&entity.Boolean{UUID: "b1", ObjectUUID: "C", Hash: []byte{3}})
	assert.Equal(t, "b2", s.QueryOne(byObject, "A").UUID)
	assert.Equal(t, "b1", s.QueryOne(byObject, "C").UUID)
}

func TestMultiValuedIndexIsAppendOnly(t *testing.T) {
	s := eventStore()
	s.Add(&entity.Event{UUID: "e1", ObjectUUID: "A", Hash: []byte{1}})
	s.Add(&entity.Event{UUID: "e1", ObjectUUID: "B", Hash: []byte{2}})

	// the stale A entry is kept and still resolves to the current value
	a := s.Query(byObject, "A")
	require.Len(t, a, 1)
	assert.Equal(t, "B", a[0].ObjectUUID)
	require.Len(t, s.Query(byObject, "B"), 1)

	// re-adding under the same key does not list the uuid twice
	s.Add(&entity.Event{UUID: "e1", ObjectUUID: "B", Hash: []byte{3}})
	assert.Equal(t, []string{"e1"}, s.Keys(byObject, "B"))
}

func TestNilSafety(t *testing.T) {
	s := booleanStore()

	assert.False(t, s.Add(nil))
	assert.False(t, s.Add(&entity.Boolean{ObjectUUID: "o", Hash: []byte{1}}))
	assert.Equal(t, 0, s.AddMany(nil))
	assert.Equal(t, 0, s.AddMany([]*entity.Boolean{}))
	assert.Equal(t, 1, s.AddMany([]*entity.Boolean{nil, {UUID: "b1", ObjectUUID: "o", Hash: []byte{1}}, {}}))

	assert.Nil(t, s.Get(""))
	assert.Nil(t, s.Get("missing"))
	assert.Nil(t, s.GetMany(nil))
	assert.Nil(t, s.GetMany([]string{}))
	assert.Nil(t, s.QueryOne(byObject, ""))
	assert.Nil(t, s.QueryOne("no-such-index", "o"))
	assert.Nil(t, s.Query(byObject, "missing"))
	assert.Nil(t, s.QueryMany(byObject, nil))
}

func TestGetManyOmitsMissing(t *testing.T) {
	s := booleanStore()
	s.Add(&entity.Boolean{UUID: "b1", ObjectUUID: "o1", Hash: []byte{1}})

	got := s.GetMany([]string{"b1", "nope"})
	require.Len(t, got, 1)
	assert.Equal(t, "b1", got[0].UUID)

	none := s.GetMany([]string{"nope"})
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestEmptyForeignKeyIsNotIndexed(t *testing.T) {
	s := eventStore()
	s.Add(&entity.Event{UUID: "e1", Hash: []byte{1}})
	assert.Equal(t, 1, s.Len())
	assert.Empty(t, s.IndexKeys(byObject))
}

func TestStoredValuesAreCopies(t *testing.T) {
	s := booleanStore()
	b := &entity.Boolean{UUID: "b1", ObjectUUID: "o1", Hash: []byte{1}, Value: true}
	s.Add(b)

	b.Value = false
	b.Hash[0] = 9
	assert.True(t, s.Get("b1").Value)

	got := s.Get("b1")
	got.Value = false
	assert.True(t, s.Get("b1").Value)
}

func TestAcceptGate(t *testing.T) {
	s := New[entity.Object](WithAccept(func(existing, incoming *entity.Object) bool {
		return incoming.Priority >= existing.Priority
	}))

	high := entity.NewObject("main", "/a", "string", "", 5, "s1", 1)
	low := entity.NewObject("main", "/a", "number", "", 2, "s2", 2)
	require.Equal(t, high.UUID, low.UUID)

	s.Add(high)
	assert.False(t, s.Add(low))
	assert.Equal(t, "string", s.Get(high.UUID).ContentType)

	higher := entity.NewObject("main", "/a", "boolean", "", 5, "s3", 3)
	assert.True(t, s.Add(higher))
	assert.Equal(t, "boolean", s.Get(high.UUID).ContentType)
}

func TestArraysRoundTrip(t *testing.T) {
	s := eventStore()
	s.Add(entity.NewEvent("o1", "t1", "s", 10, 1))
	s.Add(entity.NewEvent("o1", "t2", "s", 11, 1))
	s.Add(entity.NewEvent("o2", "t1", "s", 12, 1))

	assert.Nil(t, eventStore().Arrays())

	fresh := eventStore()
	for _, values := range s.Arrays() {
		e, err := entity.EventFromArray(values)
		require.NoError(t, err)
		fresh.Add(e)
	}

	assert.Equal(t, s.All(), fresh.All())
	assert.Equal(t, s.Query(byObject, "o1"), fresh.Query(byObject, "o1"))
	assert.Equal(t, s.Query(byObject, "o2"), fresh.Query(byObject, "o2"))
}

func TestClear(t *testing.T) {
	s := eventStore()
	s.Add(entity.NewEvent("o1", "t1", "s", 10, 1))
	s.Clear()

	assert.True(t, s.Empty())
	assert.Nil(t, s.Query(byObject, "o1"))
	assert.Nil(t, s.All())
}

func TestQueryMany(t *testing.T) {
	s := eventStore()
	a := entity.NewEvent("o1", "t", "s", 1, 1)
	b := entity.NewEvent("o2", "t", "s", 2, 1)
	s.AddMany([]*entity.Event{a, b})

	got := s.QueryMany(byObject, []string{"o2", "o1", "o3"})
	require.Len(t, got, 2)
	assert.Equal(t, b.UUID, got[0].UUID)
	assert.Equal(t, a.UUID, got[1].UUID)
}
