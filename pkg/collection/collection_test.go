// ABOUTME: Tests for object, source, definition and entity collections
// ABOUTME: Covers routing, hooks, hierarchy and path queries, stats and targets

package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trakhound/entitystore/pkg/entity"
)

const src = "source-1"

func TestBooleanScenario(t *testing.T) {
	c := NewObjectCollection()
	c.AddBoolean(&entity.Boolean{UUID: "b1", ObjectUUID: "o1", Hash: []byte{1, 2, 3}, Value: true})

	got := c.GetBoolean("b1")
	require.NotNil(t, got)
	assert.True(t, got.Value)

	byObj := c.QueryBooleanByObjectUUID("o1")
	require.NotNil(t, byObj)
	assert.Equal(t, "b1", byObj.UUID)

	c.AddBoolean(&entity.Boolean{UUID: "b1", ObjectUUID: "o1", Hash: []byte{1, 2, 3}, Value: false})
	assert.True(t, c.GetBoolean("b1").Value)
}

func TestEventScenario(t *testing.T) {
	c := NewObjectCollection()
	c.AddEvent(&entity.Event{UUID: "e1", ObjectUUID: "o5", Hash: []byte{1}})
	c.AddEvent(&entity.Event{UUID: "e2", ObjectUUID: "o5", Hash: []byte{2}})

	events := c.QueryEventsByObjectUUID("o5")
	require.Len(t, events, 2)
	assert.Equal(t, "e1", events[0].UUID)
	assert.Equal(t, "e2", events[1].UUID)
}

func TestSingleVersusMultiValued(t *testing.T) {
	c := NewObjectCollection()
	c.AddString(&entity.String{UUID: "s1", ObjectUUID: "A", Hash: []byte{1}})
	c.AddString(&entity.String{UUID: "s2", ObjectUUID: "A", Hash: []byte{2}})
	c.AddLog(&entity.Log{UUID: "l1", ObjectUUID: "A", Hash: []byte{1}})
	c.AddLog(&entity.Log{UUID: "l2", ObjectUUID: "A", Hash: []byte{2}})

	assert.Equal(t, "s2", c.QueryStringByObjectUUID("A").UUID)
	assert.Len(t, c.QueryLogsByObjectUUID("A"), 2)
}

func TestNullSafety(t *testing.T) {
	c := NewObjectCollection()

	assert.False(t, c.AddBoolean(nil))
	assert.Equal(t, 0, c.AddBooleans(nil))
	assert.Equal(t, 0, c.AddEvents([]*entity.Event{}))
	assert.False(t, c.Add(nil))
	assert.False(t, c.Add((*entity.Object)(nil)))

	assert.Nil(t, c.GetBoolean(""))
	assert.Nil(t, c.GetBooleans(nil))
	assert.Nil(t, c.QueryEventsByObjectUUID(""))
	assert.Nil(t, c.GetBooleanArrays())
	assert.Nil(t, c.GetEntity(""))
	assert.True(t, c.IsEmpty())
}

func TestRelationIndexes(t *testing.T) {
	c := NewObjectCollection()
	a1 := entity.NewAssignment("station", "part-1", 10, src, 0, "", 1)
	a2 := entity.NewAssignment("station", "part-2", 20, src, 0, "", 1)
	c.AddAssignments([]*entity.Assignment{a1, a2})

	assert.Len(t, c.QueryAssignmentsByAssigneeUUID("station"), 2)
	byMember := c.QueryAssignmentsByMemberUUID("part-2")
	require.Len(t, byMember, 1)
	assert.Equal(t, a2.UUID, byMember[0].UUID)
	assert.True(t, byMember[0].Open())

	g := entity.NewGroup("line", "cell", src, 1)
	c.AddGroup(g)
	assert.Len(t, c.QueryGroupsByGroupUUID("line"), 1)
	assert.Len(t, c.QueryGroupsByMemberUUID("cell"), 1)

	q := entity.NewQueue("jobs", "job-1", 0, 5, src, 1)
	c.AddQueue(q)
	assert.Len(t, c.Queues(), 1)
	assert.Len(t, c.QueryQueuesByQueueUUID("jobs"), 1)
	assert.Len(t, c.QueryQueuesByMemberUUIDs([]string{"job-1", "job-2"}), 1)
}

func TestMetadataLookup(t *testing.T) {
	c := NewObjectCollection()
	m := entity.NewMetadata("obj-1", "units", "", "mm", "", src, 1)
	c.AddMetadata(m)
	c.AddMetadata(entity.NewMetadata("obj-1", "scale", "", "2", "", src, 1))

	got := c.QueryMetadataByEntityUUID("obj-1", "units")
	require.NotNil(t, got)
	assert.Equal(t, "mm", got.Value)
	assert.Nil(t, c.QueryMetadataByEntityUUID("obj-1", "missing"))
	assert.Nil(t, c.QueryMetadataByEntityUUID("", "units"))

	assert.Len(t, c.QueryAllMetadataByEntityUUID("obj-1"), 2)
}

func TestObjectHook(t *testing.T) {
	var seen []string
	c := NewObjectCollection(WithObjectHook(func(o *entity.Object) {
		seen = append(seen, o.Path)
	}))

	a := entity.NewObject("main", "/a", "directory", "", 1, src, 1)
	b := entity.NewObject("main", "/a/b", "string", "", 1, src, 1)
	c.AddObject(a)
	c.AddObject(a)
	c.AddObjects([]*entity.Object{b})

	assert.Equal(t, []string{"/a", "/a/b"}, seen)
}

func TestObjectPriority(t *testing.T) {
	c := NewObjectCollection()
	c.AddObject(entity.NewObject("main", "/a", "string", "", 3, src, 1))
	c.AddObject(entity.NewObject("main", "/a", "number", "", 1, src, 2))

	assert.Equal(t, "string", c.GetObject(entity.GenerateObjectUUID("main", "/a")).ContentType)
}

func buildTree(c *ObjectCollection) {
	for _, p := range []string{"/plant", "/plant/line1", "/plant/line1/cnc", "/plant/line1/cnc/status", "/plant/line2", "/office"} {
		c.AddObject(entity.NewObject("main", p, "directory", "", 1, src, 1))
	}
	c.AddObject(entity.NewObject("other", "/plant/line1", "directory", "", 1, src, 1))
}

func TestHierarchyQueries(t *testing.T) {
	c := NewObjectCollection()
	buildTree(c)

	plant := entity.GenerateObjectUUID("main", "/plant")
	children := c.QueryObjectsByParentUUID(plant)
	require.Len(t, children, 2)
	assert.Equal(t, "line1", children[0].Name)

	descendants := c.QueryChildUUIDsByRootUUID(plant)
	assert.Len(t, descendants, 4)
	assert.Nil(t, c.QueryChildUUIDsByRootUUID(entity.GenerateObjectUUID("main", "/office")))

	root := c.QueryRootByChildUUID(entity.GenerateObjectUUID("main", "/plant/line1/cnc/status"))
	require.NotNil(t, root)
	assert.Equal(t, plant, root.UUID)
	assert.Nil(t, c.QueryRootByChildUUID("missing"))
}

func TestQueryObjectsByPath(t *testing.T) {
	c := NewObjectCollection()
	buildTree(c)

	exact := c.QueryObjectsByPath("main:/plant/line1")
	require.Len(t, exact, 1)
	assert.Equal(t, "main", exact[0].Namespace)

	assert.Len(t, c.QueryObjectsByPath("/plant/line1"), 1)
	assert.Len(t, c.QueryObjectsByPath("other:/plant/line1"), 1)

	byUUID := c.QueryObjectsByPath("uuid=" + exact[0].UUID)
	require.Len(t, byUUID, 1)
	assert.Equal(t, exact[0].UUID, byUUID[0].UUID)

	assert.Len(t, c.QueryObjectsByPath("/plant/*"), 2)
	// "**" also matches zero segments, so the root itself is included
	assert.Len(t, c.QueryObjectsByPath("/plant/**"), 5)
	assert.Len(t, c.QueryObjectsByPath("/PLANT/LINE*"), 2)
	assert.Nil(t, c.QueryObjectsByPath("/nothing/*"))
	assert.Nil(t, c.QueryObjectsByPath(""))

	// the cached miss is dropped once a matching object arrives
	c.AddObject(entity.NewObject("main", "/nothing/here", "string", "", 1, src, 1))
	assert.Len(t, c.QueryObjectsByPath("/nothing/*"), 1)

	assert.Len(t, c.QueryObjectsByPaths([]string{"/plant", "/office"}), 2)
}

func TestCollectionWideOperations(t *testing.T) {
	c := NewObjectCollection()
	obj := entity.NewObject("main", "/a", "string", "", 1, src, 1)
	str := entity.NewString(obj.UUID, "hello", src, 1)
	ev := entity.NewEvent(obj.UUID, "t", src, 5, 1)

	assert.Equal(t, 3, c.AddEntities([]entity.Entity{obj, str, ev, entity.NewSource("x", "y", "", 1)}))
	assert.Equal(t, 3, c.Count())
	assert.False(t, c.IsEmpty())

	assert.Equal(t, str.UUID, c.GetEntity(str.UUID).GetUUID())

	stats := c.Stats()
	assert.Equal(t, 1, stats[entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassString}])
	assert.Equal(t, 3, stats.Total())

	arrays := c.EntityArrays()
	assert.Len(t, arrays, 3)
	assert.Equal(t, [][]any{str.ToArray()}, arrays["string"])

	assert.Len(t, c.Entities(), 3)

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Nil(t, c.QueryStringByObjectUUID(obj.UUID))
}

func TestSourceCollection(t *testing.T) {
	var hooked int
	c := NewSourceCollection(WithSourceHook(func(*entity.Source) { hooked++ }))

	root := entity.NewSource("Agent", "host", "", 1)
	child := entity.NewSource("Adapter", "mtc", root.UUID, 1)
	c.AddSources([]*entity.Source{root, child, root})
	assert.Equal(t, 2, hooked)

	kids := c.QuerySourcesByParentUUID(root.UUID)
	require.Len(t, kids, 1)
	assert.Equal(t, child.UUID, kids[0].UUID)

	chain := c.QuerySourceChain(child.UUID)
	require.Len(t, chain, 2)
	assert.Equal(t, root.UUID, chain[1].UUID)

	c.AddMetadata(entity.NewSourceMetadata(root.UUID, "version", "2.1", 1))
	assert.Len(t, c.QueryMetadataBySourceUUID(root.UUID), 1)
	require.NotNil(t, c.QueryMetadataByEntityUUID(root.UUID, "version"))
	assert.Equal(t, "2.1", c.QueryMetadataByEntityUUID(root.UUID, "version").Value)
	assert.Equal(t, 3, c.Count())
}

func TestDefinitionCollection(t *testing.T) {
	c := NewDefinitionCollection()
	parent := entity.NewDefinition("Machine", "", src, 1)
	def := entity.NewDefinition("Machine.Status", parent.UUID, src, 1)
	c.AddDefinitions([]*entity.Definition{parent, def})
	c.Add(entity.NewDefinitionDescription(def.UUID, "en", "Status of a machine", src, 1))
	c.Add(entity.NewDefinitionMetadata(def.UUID, "unit", "none", src, 1))
	c.Add(entity.NewDefinitionWiki(def.UUID, "usage", "See manual", src, 1))

	assert.Equal(t, def.UUID, c.QueryDefinitionByID("machine.status").UUID)
	assert.Len(t, c.QueryDefinitionsByParentUUID(parent.UUID), 1)
	assert.Equal(t, "Status of a machine", c.QueryDescriptionByLanguage(def.UUID, "en").Text)
	assert.Equal(t, "none", c.QueryMetadataByName(def.UUID, "unit").Value)
	assert.Len(t, c.QueryWikisByDefinitionUUID(def.UUID), 1)
	assert.Equal(t, 5, c.Stats().Total())
}

func TestEntityCollectionTargets(t *testing.T) {
	c := NewEntityCollection(Options{})
	obj := entity.NewObject("main", "/a", "string", "", 1, src, 1)
	s := entity.NewSource("Agent", "host", "", 1)
	def := entity.NewDefinition("Status", "", s.UUID, 1)
	str := entity.NewString(obj.UUID, "v", s.UUID, 1)

	c.Add(obj, true)
	c.Add(obj, true)
	c.Add(s, false)
	c.Add(def, false)
	c.Add(str, true)
	c.AddTarget("not-present")
	assert.False(t, c.Add(nil, true))
	assert.False(t, c.Add((*entity.String)(nil), true))

	assert.Equal(t, []string{obj.UUID, str.UUID, "not-present"}, c.TargetUUIDs())
	assert.Equal(t, 3, c.TargetCount())
	assert.Len(t, c.TargetEntities(), 2)
	assert.Nil(t, c.GetTargetEntity(s.UUID))
	assert.NotNil(t, c.GetTargetEntity(obj.UUID))

	assert.Equal(t, s.UUID, c.GetEntity(s.UUID).GetUUID())
	assert.Equal(t, def.UUID, c.GetEntity(def.UUID).GetUUID())
	assert.Equal(t, 4, c.Count())
	assert.Equal(t, 4, c.Stats().Total())

	entities := c.Entities()
	require.Len(t, entities, 4)
	assert.Equal(t, entity.CategorySources, entities[0].Kind().Category)

	merged := NewEntityCollection(Options{})
	merged.AddCollection(c)
	assert.Equal(t, c.TargetUUIDs(), merged.TargetUUIDs())
	assert.Equal(t, 4, merged.Count())

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Nil(t, c.TargetUUIDs())
}

func TestEntityCollectionHooks(t *testing.T) {
	var objects, sources int
	c := NewEntityCollection(Options{
		ObjectHook: func(*entity.Object) { objects++ },
		SourceHook: func(*entity.Source) { sources++ },
	})
	c.Add(entity.NewObject("main", "/a", "string", "", 1, src, 1), false)
	c.Add(entity.NewSource("Agent", "host", "", 1), false)
	c.Add(entity.NewString("o", "v", src, 1), false)

	assert.Equal(t, 1, objects)
	assert.Equal(t, 1, sources)
}

func TestQueryIndex(t *testing.T) {
	c := NewEntityCollection(Options{})
	o := entity.NewObject("", "/m", "event", "", 0, "s1", 1)
	c.Add(o, false)
	c.Add(entity.NewEvent(o.UUID, "t", "s1", 10, 2), false)
	c.Add(entity.NewEvent(o.UUID, "t", "s1", 11, 3), false)
	c.Add(entity.NewSourceMetadata("src", "host", "h1", 4), false)

	events := c.QueryIndex(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassEvent}, IndexObject, o.UUID)
	require.Len(t, events, 2)
	assert.Equal(t, int64(10), events[0].(*entity.Event).Timestamp)

	meta := c.QueryIndex(entity.Kind{Category: entity.CategorySources, Class: entity.ClassSourceMetadata}, IndexSource, "src")
	require.Len(t, meta, 1)

	assert.Nil(t, c.QueryIndex(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassEvent}, "nope", o.UUID))
	assert.Nil(t, c.QueryIndex(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassEvent}, IndexObject, ""))
	assert.Nil(t, c.QueryIndex(entity.Kind{Category: 9, Class: 1}, IndexObject, o.UUID))
}

func TestAddReported(t *testing.T) {
	c := NewEntityCollection(Options{})
	high := entity.NewObject("main", "/a", "string", "", 3, src, 1)
	low := entity.NewObject("main", "/a", "number", "", 1, src, 2)
	source := entity.NewSource("agent", "host", "", 1)

	report := c.AddReported([]entity.Entity{high, source, high, low, nil}, true)

	assert.Equal(t, AddReport{Added: 2, Deduplicated: 1, Rejected: 1}, report)
	assert.Equal(t, "string", c.Objects().GetObject(high.UUID).ContentType)
	assert.Equal(t, 2, c.TargetCount())
}

func TestStoreUnchangedMatchesKind(t *testing.T) {
	c := NewObjectCollection()
	o := entity.NewObject("main", "/a", "boolean", "", 1, src, 1)
	c.AddObject(o)
	b := entity.NewBoolean(o.UUID, true, src, 2)

	assert.True(t, c.all.unchanged(o))
	assert.False(t, c.all.unchanged(b))
	c.AddBoolean(b)
	assert.True(t, c.all.unchanged(b))
}
