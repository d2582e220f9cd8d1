// ABOUTME: Tests for entity identity, hashing and wire arrays
// ABOUTME: Covers path-chain uuids, deterministic hashes and array round trips

package entity

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectIdentity(t *testing.T) {
	o := NewObject("", "machines/cnc-01/status", "string", "", 0, "src", 100)

	assert.Equal(t, DefaultNamespace, o.Namespace)
	assert.Equal(t, DefaultPriority, o.Priority)
	assert.Equal(t, "/machines/cnc-01/status", o.Path)
	assert.Equal(t, "status", o.Name)
	assert.Equal(t, GenerateObjectUUID("main", "/machines/cnc-01"), o.ParentUUID)
	assert.Equal(t, "main:/machines/cnc-01/status", o.AbsolutePath())
	assert.Len(t, o.UUID, 64)
	assert.True(t, o.Valid())
}

func TestObjectUUIDIsCaseInsensitive(t *testing.T) {
	a := GenerateObjectUUID("Main", "/Machines/CNC")
	b := GenerateObjectUUID("main", "/machines/cnc")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, GenerateObjectUUID("other", "/machines/cnc"))
}

func TestObjectUUIDChain(t *testing.T) {
	parent := GenerateObjectUUID("main", "/a")
	child := GenerateObjectUUID("main", "/a/b")

	// a uuid= segment pins the chain so children resolve the same either way
	pinned := GenerateObjectUUID("main", "/uuid="+parent+"/b")
	assert.Equal(t, child, pinned)

	assert.Equal(t, "", GenerateObjectUUID("main", ""))
	assert.Equal(t, "", GenerateObjectUUID("main", "/"))
}

func TestRootObjectHasNoParent(t *testing.T) {
	o := NewObject("main", "/plant", "directory", "", 1, "src", 1)
	assert.Empty(t, o.ParentUUID)
	assert.Equal(t, "plant", o.Name)
}

func TestPathHelpers(t *testing.T) {
	assert.Equal(t, "/a/b", ToRootPath("a/b"))
	assert.Equal(t, "/a", ParentPath("/a/b"))
	assert.Equal(t, "", ParentPath("/a"))
	assert.Equal(t, "b", PathObjectName("/a/b"))

	ns, path := SplitAbsolutePath("plant:/line/1")
	assert.Equal(t, "plant", ns)
	assert.Equal(t, "/line/1", path)

	ns, path = SplitAbsolutePath("/line/1")
	assert.Equal(t, DefaultNamespace, ns)
	assert.Equal(t, "/line/1", path)
}

func TestBooleanHashUsesCapitalizedBools(t *testing.T) {
	b := NewBoolean("o1", true, "s1", 5)
	assert.Equal(t, HashBytes("o1:True:s1:5"), b.Hash)
	assert.Equal(t, HashString("o1:boolean"), b.UUID)

	f := NewBoolean("o1", false, "s1", 5)
	assert.Equal(t, b.UUID, f.UUID)
	assert.False(t, bytes.Equal(b.Hash, f.Hash))
}

func TestMetadataUUIDIsDeterministic(t *testing.T) {
	m := NewMetadata("ent", "units", "", "mm", "", "src", 1)
	assert.Equal(t, GenerateMetadataUUID("ent", "units"), m.UUID)
	assert.Empty(t, GenerateMetadataUUID("", "units"))
	assert.Empty(t, GenerateMetadataUUID("ent", ""))
}

func TestSourceUUIDChainsParent(t *testing.T) {
	root := NewSource("Agent", "host-1", "", 1)
	child := NewSource("Adapter", "mtconnect", root.UUID, 1)
	assert.NotEqual(t, GenerateSourceUUID("Adapter", "mtconnect", ""), child.UUID)
	assert.Equal(t, GenerateSourceUUID("Adapter", "mtconnect", root.UUID), child.UUID)
}

func TestDefinitionUUIDIgnoresCase(t *testing.T) {
	assert.Equal(t, GenerateDefinitionUUID("Machine.Status"), NewDefinition("machine.status", "", "s", 1).UUID)
}

func TestCreatedDefaultsToNow(t *testing.T) {
	s := NewString("o", "v", "s", 0)
	assert.Greater(t, s.Created, int64(0))
}

func TestCloneIsIndependent(t *testing.T) {
	e := NewEvent("o", "t", "s", 10, 1)
	c := e.Clone()
	c.Hash[0] ^= 0xff
	c.TargetUUID = "other"
	assert.Equal(t, "t", e.TargetUUID)
	assert.NotEqual(t, e.Hash[0], c.Hash[0])
}

func sampleEntities() []Entity {
	obj := NewObject("main", "/a/b", "string", "def", 2, "src", 11)
	src := NewSource("Agent", "host", "", 12)
	def := NewDefinition("Status", "", src.UUID, 13)
	return []Entity{
		obj,
		NewMetadata(obj.UUID, "units", "d1", "mm", "d2", src.UUID, 14),
		NewAssignment("assignee", "member", 100, src.UUID, 200, src.UUID, 15),
		NewBlob(obj.UUID, "blob-1", "image/png", 1024, "a.png", src.UUID, 16),
		NewBoolean(obj.UUID, true, src.UUID, 17),
		NewDuration(obj.UUID, 5000, src.UUID, 18),
		NewEvent(obj.UUID, "target", src.UUID, 300, 19),
		NewGroup("group", obj.UUID, src.UUID, 20),
		NewHash(obj.UUID, "k", "v", src.UUID, 21),
		NewLog(obj.UUID, LogLevelWarn, "spindle hot", "W01", src.UUID, 400, 22),
		NewMessage(obj.UUID, "broker", "topic/a", "application/json", true, 1, src.UUID, 23),
		NewMessageQueue(obj.UUID, "queue-1", "text/plain", src.UUID, 24),
		NewNumber(obj.UUID, 3, "42.5", src.UUID, 25),
		NewObservation(obj.UUID, 3, "1.5", 7, 8, 500, src.UUID, 26),
		NewQueue("queue", obj.UUID, 2, 600, src.UUID, 27),
		NewReference(obj.UUID, "target", src.UUID, 28),
		NewSet(obj.UUID, "red", src.UUID, 29),
		NewState(obj.UUID, def.UUID, 60, src.UUID, 700, 30),
		NewStatistic(obj.UUID, 100, 200, 3, "9", src.UUID, 800, 31),
		NewString(obj.UUID, "hello", src.UUID, 32),
		NewTimeRange(obj.UUID, 100, 200, src.UUID, 33),
		NewTimestamp(obj.UUID, 900, src.UUID, 34),
		NewVocabulary(obj.UUID, def.UUID, src.UUID, 35),
		NewVocabularySet(obj.UUID, def.UUID, src.UUID, 36),
		src,
		NewSourceMetadata(src.UUID, "version", "1.0", 37),
		def,
		NewDefinitionMetadata(def.UUID, "unit", "none", src.UUID, 38),
		NewDefinitionDescription(def.UUID, "en", "Machine status", src.UUID, 39),
		NewDefinitionWiki(def.UUID, "usage", "Text", src.UUID, 40),
	}
}

func TestArrayRoundTrip(t *testing.T) {
	for _, e := range sampleEntities() {
		t.Run(e.Kind().String(), func(t *testing.T) {
			require.True(t, e.Valid())

			decoded, err := DecodeArray(e.Kind(), e.ToArray())
			require.NoError(t, err)
			assert.Equal(t, e.GetUUID(), decoded.GetUUID())
			assert.Equal(t, e.GetHash(), decoded.GetHash())
		})
	}
}

func TestArrayRoundTripThroughJSON(t *testing.T) {
	for _, e := range sampleEntities() {
		raw, err := json.Marshal(e.ToArray())
		require.NoError(t, err)

		var values []any
		require.NoError(t, json.Unmarshal(raw, &values))

		decoded, err := DecodeArray(e.Kind(), values)
		require.NoError(t, err, e.Kind().String())
		assert.Equal(t, e.GetHash(), decoded.GetHash(), e.Kind().String())
	}
}

func TestEveryKindHasDecoder(t *testing.T) {
	for _, c := range []Category{CategoryObjects, CategorySources, CategoryDefinitions} {
		for _, k := range Kinds(c) {
			_, ok := decoders[k]
			assert.True(t, ok, k.String())
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := DecodeArray(Kind{CategoryObjects, ClassBoolean}, []any{"o1"})
	assert.True(t, errors.Is(err, ErrShortArray))

	_, err = DecodeArray(Kind{CategoryObjects, ClassBoolean}, []any{"o1", map[string]any{}, "s", 1})
	assert.True(t, errors.Is(err, ErrInvalidField))

	_, err = DecodeArray(Kind{CategoryObjects, 99}, nil)
	assert.True(t, errors.Is(err, ErrUnknownClass))
}

func TestDecodeRejectsNonIntegralNumbers(t *testing.T) {
	kind := Kind{CategoryObjects, ClassBoolean}
	for _, created := range []float64{1.5, math.NaN(), math.Inf(1), math.Inf(-1), 1e19, -1e19} {
		_, err := DecodeArray(kind, []any{"o1", true, "s", created})
		assert.True(t, errors.Is(err, ErrInvalidField), "created %v", created)
	}

	e, err := DecodeArray(kind, []any{"o1", true, "s", 2.0})
	require.NoError(t, err)
	assert.Equal(t, int64(2), e.(*Boolean).Created)
}

func TestDecodeArraysSkipsInvalid(t *testing.T) {
	kind := Kind{CategoryObjects, ClassString}
	entities, skipped, err := DecodeArrays(kind, [][]any{
		{"o1", "a", "s", 1},
		{"o1"},
		{"", "b", "s", 1},
		{"o2", "c", "s", 2},
	})
	require.NoError(t, err)
	assert.Len(t, entities, 2)
	assert.Equal(t, 2, skipped)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(CategoryObjects, "time-range")
	require.NoError(t, err)
	assert.Equal(t, ClassTimeRange, k.Class)

	k, err = ParseKind(CategorySources, "metadata")
	require.NoError(t, err)
	assert.Equal(t, ClassSourceMetadata, k.Class)

	_, err = ParseKind(CategoryObjects, "nope")
	assert.True(t, errors.Is(err, ErrUnknownClass))

	_, err = ParseCategory("things")
	assert.True(t, errors.Is(err, ErrUnknownCategory))

	assert.Len(t, Kinds(CategoryObjects), 24)
	assert.Equal(t, "objects/vocabulary-set", Kind{CategoryObjects, ClassVocabularySet}.String())
}
