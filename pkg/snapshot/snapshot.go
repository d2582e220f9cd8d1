// ABOUTME: Immutable snapshots of an entity collection backed by go-memdb
// ABOUTME: Published once, then readable from any number of goroutines

package snapshot

import (
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"

	"github.com/trakhound/entitystore/pkg/collection"
	"github.com/trakhound/entitystore/pkg/entity"
)

const (
	table = "entities"

	indexID    = "id"
	indexClass = "class"
	indexOwner = "owner"
)

// Record is one entity as stored in a snapshot
type Record struct {
	UUID   string
	Class  string
	Owners []string
	Seq    int
	Entity entity.Entity
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			table: {
				Name: table,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "UUID"},
					},
					indexClass: {
						Name:    indexClass,
						Indexer: &memdb.StringFieldIndex{Field: "Class"},
					},
					indexOwner: {
						Name:         indexOwner,
						AllowMissing: true,
						Indexer:      &memdb.StringSliceFieldIndex{Field: "Owners"},
					},
				},
			},
		},
	}
}

// Snapshot is a read-only copy of a collection taken at publish time
type Snapshot struct {
	ID      string
	Created time.Time

	db      *memdb.MemDB
	count   int
	targets []string
}

// Publish copies every entity and target of c into a new snapshot. Later
// changes to c are not visible in the snapshot.
func Publish(c *collection.EntityCollection) (*Snapshot, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, errors.Wrap(err, "create snapshot database")
	}

	s := &Snapshot{
		ID:      uuid.NewString(),
		Created: time.Now(),
		db:      db,
	}
	if c == nil {
		return s, nil
	}

	txn := db.Txn(true)
	defer txn.Abort()

	seen := make(map[string]struct{})
	for seq, e := range c.Entities() {
		r := &Record{
			UUID:   e.GetUUID(),
			Class:  e.Kind().String(),
			Owners: Owners(e),
			Seq:    seq,
			Entity: e,
		}
		if err := txn.Insert(table, r); err != nil {
			return nil, errors.Wrapf(err, "insert %s %s", r.Class, r.UUID)
		}
		seen[r.UUID] = struct{}{}
	}
	txn.Commit()

	s.count = len(seen)
	s.targets = c.TargetUUIDs()
	return s, nil
}

// Get returns the entity stored under uuid, or nil
func (s *Snapshot) Get(uuid string) entity.Entity {
	if uuid == "" {
		return nil
	}
	raw, err := s.db.Txn(false).First(table, indexID, uuid)
	if err != nil || raw == nil {
		return nil
	}
	return raw.(*Record).Entity
}

// ByClass returns every entity of a kind in insertion order
func (s *Snapshot) ByClass(kind entity.Kind) []entity.Entity {
	return s.list(indexClass, kind.String())
}

// ByOwner returns every entity whose foreign keys include uuid, in insertion order
func (s *Snapshot) ByOwner(uuid string) []entity.Entity {
	if uuid == "" {
		return nil
	}
	return s.list(indexOwner, uuid)
}

// Targets returns the target uuids of the published collection
func (s *Snapshot) Targets() []string {
	if len(s.targets) == 0 {
		return nil
	}
	out := make([]string, len(s.targets))
	copy(out, s.targets)
	return out
}

func (s *Snapshot) Len() int { return s.count }

func (s *Snapshot) list(index, key string) []entity.Entity {
	it, err := s.db.Txn(false).Get(table, index, key)
	if err != nil {
		return nil
	}

	var records []*Record
	for raw := it.Next(); raw != nil; raw = it.Next() {
		records = append(records, raw.(*Record))
	}
	if len(records) == 0 {
		return nil
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Seq < records[j].Seq })

	out := make([]entity.Entity, len(records))
	for i, r := range records {
		out[i] = r.Entity
	}
	return out
}

// Owners lists the non-empty foreign keys an entity points at
func Owners(e entity.Entity) []string {
	var keys []string
	switch v := e.(type) {
	case *entity.Object:
		keys = []string{v.ParentUUID}
	case *entity.Metadata:
		keys = []string{v.EntityUUID}
	case *entity.Assignment:
		keys = []string{v.AssigneeUUID, v.MemberUUID}
	case *entity.Group:
		keys = []string{v.GroupUUID, v.MemberUUID}
	case *entity.Queue:
		keys = []string{v.QueueUUID, v.MemberUUID}
	case *entity.Blob:
		keys = []string{v.ObjectUUID}
	case *entity.Boolean:
		keys = []string{v.ObjectUUID}
	case *entity.Duration:
		keys = []string{v.ObjectUUID}
	case *entity.MessageQueue:
		keys = []string{v.ObjectUUID}
	case *entity.Number:
		keys = []string{v.ObjectUUID}
	case *entity.Reference:
		keys = []string{v.ObjectUUID}
	case *entity.String:
		keys = []string{v.ObjectUUID}
	case *entity.TimeRange:
		keys = []string{v.ObjectUUID}
	case *entity.Timestamp:
		keys = []string{v.ObjectUUID}
	case *entity.Vocabulary:
		keys = []string{v.ObjectUUID}
	case *entity.Event:
		keys = []string{v.ObjectUUID}
	case *entity.Hash:
		keys = []string{v.ObjectUUID}
	case *entity.Log:
		keys = []string{v.ObjectUUID}
	case *entity.Message:
		keys = []string{v.ObjectUUID}
	case *entity.Observation:
		keys = []string{v.ObjectUUID}
	case *entity.Set:
		keys = []string{v.ObjectUUID}
	case *entity.State:
		keys = []string{v.ObjectUUID}
	case *entity.Statistic:
		keys = []string{v.ObjectUUID}
	case *entity.VocabularySet:
		keys = []string{v.ObjectUUID}
	case *entity.Source:
		keys = []string{v.ParentUUID}
	case *entity.SourceMetadata:
		keys = []string{v.SourceUUID}
	case *entity.Definition:
		keys = []string{v.ParentUUID}
	case *entity.DefinitionMetadata:
		keys = []string{v.DefinitionUUID}
	case *entity.DefinitionDescription:
		keys = []string{v.DefinitionUUID}
	case *entity.DefinitionWiki:
		keys = []string{v.DefinitionUUID}
	}

	out := keys[:0]
	for _, k := range keys {
		if k != "" {
			out = append(out, k)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
