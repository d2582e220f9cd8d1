package snapshot

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trakhound/entitystore/pkg/collection"
	"github.com/trakhound/entitystore/pkg/entity"
)

func sampleCollection() (*collection.EntityCollection, *entity.Object) {
	c := collection.NewEntityCollection(collection.Options{})
	machine := entity.NewObject("", "/machine", "directory", "", 0, "s1", 1)
	axis := entity.NewObject("", "/machine/axis", "event", "", 0, "s1", 2)
	c.Add(machine, true)
	c.Add(axis, false)
	c.Add(entity.NewEvent(axis.UUID, "t1", "s1", 10, 3), false)
	c.Add(entity.NewEvent(axis.UUID, "t1", "s1", 11, 4), false)
	c.Add(entity.NewMetadata(machine.UUID, "vendor", "", "acme", "", "s1", 5), false)
	c.Add(entity.NewSource("agent", "host-1", "", 6), false)
	c.Add(entity.NewDefinition("Machine", "", "s1", 7), false)
	return c, machine
}

func TestPublishCopiesEntities(t *testing.T) {
	c, machine := sampleCollection()

	s, err := Publish(c)
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, c.Count(), s.Len())
	assert.Equal(t, []string{machine.UUID}, s.Targets())

	got := s.Get(machine.UUID)
	require.NotNil(t, got)
	assert.Equal(t, machine.UUID, got.GetUUID())
	assert.Nil(t, s.Get(""))
	assert.Nil(t, s.Get("missing"))
}

func TestSnapshotIsIsolatedFromLaterWrites(t *testing.T) {
	c, _ := sampleCollection()
	s, err := Publish(c)
	require.NoError(t, err)
	before := s.Len()

	c.Add(entity.NewObject("", "/other", "string", "", 0, "s1", 9), false)
	c.Clear()

	assert.Equal(t, before, s.Len())
	assert.Len(t, s.ByClass(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassObject}), 2)
}

func TestByClassKeepsInsertionOrder(t *testing.T) {
	c, _ := sampleCollection()
	s, err := Publish(c)
	require.NoError(t, err)

	events := s.ByClass(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassEvent})
	require.Len(t, events, 2)
	assert.Equal(t, int64(10), events[0].(*entity.Event).Timestamp)
	assert.Equal(t, int64(11), events[1].(*entity.Event).Timestamp)

	assert.Len(t, s.ByClass(entity.Kind{Category: entity.CategorySources, Class: entity.ClassSource}), 1)
	assert.Nil(t, s.ByClass(entity.Kind{Category: entity.CategoryObjects, Class: entity.ClassBlob}))
}

func TestByOwner(t *testing.T) {
	c, machine := sampleCollection()
	s, err := Publish(c)
	require.NoError(t, err)

	// the child object and the metadata both point at the machine
	owned := s.ByOwner(machine.UUID)
	require.Len(t, owned, 2)
	assert.Equal(t, entity.ClassObject, owned[0].Kind().Class)
	assert.Equal(t, entity.ClassMetadata, owned[1].Kind().Class)

	assert.Nil(t, s.ByOwner(""))
	assert.Nil(t, s.ByOwner("nobody"))
}

func TestPublishNilAndEmpty(t *testing.T) {
	s, err := Publish(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Targets())

	s, err = Publish(collection.NewEntityCollection(collection.Options{}))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestConcurrentReads(t *testing.T) {
	c, machine := sampleCollection()
	s, err := Publish(c)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.NotNil(t, s.Get(machine.UUID))
				assert.Len(t, s.ByOwner(machine.UUID), 2)
			}
		}()
	}
	wg.Wait()
}

func TestOwners(t *testing.T) {
	a := entity.NewAssignment("assignee", "member", 1, "s", 0, "", 1)
	assert.Equal(t, []string{"assignee", "member"}, Owners(a))

	root := entity.NewObject("", "/root", "", "", 0, "s", 1)
	assert.Nil(t, Owners(root))
}
