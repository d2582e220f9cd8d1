// ABOUTME: Object entities that relate other entities to each other
// ABOUTME: Metadata, Assignment, Group and Queue

package entity

// Metadata attaches a named value to any entity. Its identity is the
// (entity, name) pair so a given name has exactly one slot per entity.
type Metadata struct {
	UUID                string
	EntityUUID          string
	Name                string
	DefinitionUUID      string
	Value               string
	ValueDefinitionUUID string
	SourceUUID          string
	Created             int64
	Hash                []byte
}

func NewMetadata(entityUUID, name, definitionUUID, value, valueDefinitionUUID, sourceUUID string, created int64) *Metadata {
	e := &Metadata{EntityUUID: entityUUID, Name: name, DefinitionUUID: definitionUUID, Value: value, ValueDefinitionUUID: valueDefinitionUUID, SourceUUID: sourceUUID, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

// GenerateMetadataUUID returns the uuid of the metadata slot named name on entityUUID
func GenerateMetadataUUID(entityUUID, name string) string {
	if entityUUID == "" || name == "" {
		return ""
	}
	return identity(entityUUID, name)
}

func (e *Metadata) Refresh() {
	e.UUID = GenerateMetadataUUID(e.EntityUUID, e.Name)
	e.Hash = e.ComputeHash()
}

func (e *Metadata) ComputeHash() []byte {
	return content(e.EntityUUID, e.Name, e.DefinitionUUID, e.Value, e.ValueDefinitionUUID, e.SourceUUID, e.Created)
}

func (e *Metadata) GetUUID() string { return e.UUID }
func (e *Metadata) GetHash() []byte { return e.Hash }
func (e *Metadata) Kind() Kind      { return Kind{CategoryObjects, ClassMetadata} }
func (e *Metadata) Valid() bool {
	return e.UUID != "" && e.EntityUUID != "" && e.Name != "" && e.SourceUUID != "" && e.Created > 0
}

func (e *Metadata) Clone() *Metadata {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *Metadata) ToArray() []any {
	return []any{e.EntityUUID, e.Name, e.DefinitionUUID, e.Value, e.ValueDefinitionUUID, e.SourceUUID, e.Created}
}

func MetadataFromArray(values []any) (*Metadata, error) {
	r, err := newFieldReader(Kind{CategoryObjects, ClassMetadata}, values, 7)
	if err != nil {
		return nil, err
	}
	e := &Metadata{EntityUUID: r.str(0), Name: r.str(1), DefinitionUUID: r.str(2), Value: r.str(3), ValueDefinitionUUID: r.str(4), SourceUUID: r.str(5), Created: r.int64(6)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}

// Assignment records a member being assigned to an assignee for a span of time.
// A zero RemoveTimestamp means the assignment is still open.
type Assignment struct {
	UUID             string
	AssigneeUUID     string
	MemberUUID       string
	AddTimestamp     int64
	AddSourceUUID    string
	RemoveTimestamp  int64
	RemoveSourceUUID string
	Created          int64
	Hash             []byte
}

func NewAssignment(assigneeUUID, memberUUID string, addTimestamp int64, addSourceUUID string, removeTimestamp int64, removeSourceUUID string, created int64) *Assignment {
	e := &Assignment{AssigneeUUID: assigneeUUID, MemberUUID: memberUUID, AddTimestamp: addTimestamp, AddSourceUUID: addSourceUUID, RemoveTimestamp: removeTimestamp, RemoveSourceUUID: removeSourceUUID, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

func GenerateAssignmentUUID(assigneeUUID, memberUUID string, addTimestamp int64) string {
	return identity(assigneeUUID, memberUUID, addTimestamp)
}

func (e *Assignment) Refresh() {
	e.UUID = GenerateAssignmentUUID(e.AssigneeUUID, e.MemberUUID, e.AddTimestamp)
	e.Hash = e.ComputeHash()
}

func (e *Assignment) ComputeHash() []byte {
	return content(e.AssigneeUUID, e.MemberUUID, e.AddTimestamp, e.AddSourceUUID, e.RemoveTimestamp, e.RemoveSourceUUID, e.Created)
}

func (e *Assignment) GetUUID() string { return e.UUID }
func (e *Assignment) GetHash() []byte { return e.Hash }
func (e *Assignment) Kind() Kind      { return Kind{CategoryObjects, ClassAssignment} }
func (e *Assignment) Valid() bool {
	return e.UUID != "" && e.AssigneeUUID != "" && e.MemberUUID != "" && e.AddSourceUUID != "" && e.AddTimestamp > 0
}

// Open reports whether the assignment has not been removed
func (e *Assignment) Open() bool { return e.RemoveTimestamp <= 0 }

func (e *Assignment) Clone() *Assignment {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *Assignment) ToArray() []any {
	return []any{e.AssigneeUUID, e.MemberUUID, e.AddTimestamp, e.AddSourceUUID, e.RemoveTimestamp, e.RemoveSourceUUID, e.Created}
}

func AssignmentFromArray(values []any) (*Assignment, error) {
	r, err := newFieldReader(Kind{CategoryObjects, ClassAssignment}, values, 7)
	if err != nil {
		return nil, err
	}
	e := &Assignment{AssigneeUUID: r.str(0), MemberUUID: r.str(1), AddTimestamp: r.int64(2), AddSourceUUID: r.str(3), RemoveTimestamp: r.int64(4), RemoveSourceUUID: r.str(5), Created: r.int64(6)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}

// Group makes an entity a member of a group object
type Group struct {
	UUID       string
	GroupUUID  string
	MemberUUID string
	SourceUUID string
	Created    int64
	Hash       []byte
}

func NewGroup(groupUUID, memberUUID, sourceUUID string, created int64) *Group {
	e := &Group{GroupUUID: groupUUID, MemberUUID: memberUUID, SourceUUID: sourceUUID, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

func GenerateGroupUUID(groupUUID, memberUUID string) string { return identity(groupUUID, memberUUID) }

func (e *Group) Refresh() {
	e.UUID = GenerateGroupUUID(e.GroupUUID, e.MemberUUID)
	e.Hash = e.ComputeHash()
}

func (e *Group) ComputeHash() []byte {
	return content(e.GroupUUID, e.MemberUUID, e.SourceUUID, e.Created)
}

func (e *Group) GetUUID() string { return e.UUID }
func (e *Group) GetHash() []byte { return e.Hash }
func (e *Group) Kind() Kind      { return Kind{CategoryObjects, ClassGroup} }
func (e *Group) Valid() bool {
	return e.UUID != "" && e.GroupUUID != "" && e.MemberUUID != "" && e.SourceUUID != "" && e.Created > 0
}

func (e *Group) Clone() *Group {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *Group) ToArray() []any {
	return []any{e.GroupUUID, e.MemberUUID, e.SourceUUID, e.Created}
}

func GroupFromArray(values []any) (*Group, error) {
	r, err := newFieldReader(Kind{CategoryObjects, ClassGroup}, values, 4)
	if err != nil {
		return nil, err
	}
	e := &Group{GroupUUID: r.str(0), MemberUUID: r.str(1), SourceUUID: r.str(2), Created: r.int64(3)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}

// Queue places an entity at a position within a queue object
type Queue struct {
	UUID       string
	QueueUUID  string
	MemberUUID string
	Index      int
	Timestamp  int64
	SourceUUID string
	Created    int64
	Hash       []byte
}

func NewQueue(queueUUID, memberUUID string, index int, timestamp int64, sourceUUID string, created int64) *Queue {
	e := &Queue{QueueUUID: queueUUID, MemberUUID: memberUUID, Index: index, Timestamp: timestamp, SourceUUID: sourceUUID, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

func GenerateQueueUUID(queueUUID, memberUUID string) string { return identity(queueUUID, memberUUID) }

func (e *Queue) Refresh() {
	e.UUID = GenerateQueueUUID(e.QueueUUID, e.MemberUUID)
	e.Hash = e.ComputeHash()
}

func (e *Queue) ComputeHash() []byte {
	return content(e.QueueUUID, e.MemberUUID, e.Index, e.Timestamp, e.SourceUUID, e.Created)
}

func (e *Queue) GetUUID() string { return e.UUID }
func (e *Queue) GetHash() []byte { return e.Hash }
func (e *Queue) Kind() Kind      { return Kind{CategoryObjects, ClassQueue} }
func (e *Queue) Valid() bool {
	return e.UUID != "" && e.QueueUUID != "" && e.MemberUUID != "" && e.SourceUUID != "" && e.Created > 0
}

func (e *Queue) Clone() *Queue {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *Queue) ToArray() []any {
	return []any{e.QueueUUID, e.MemberUUID, e.Index, e.Timestamp, e.SourceUUID, e.Created}
}

func QueueFromArray(values []any) (*Queue, error) {
	r, err := newFieldReader(Kind{CategoryObjects, ClassQueue}, values, 6)
	if err != nil {
		return nil, err
	}
	e := &Queue{QueueUUID: r.str(0), MemberUUID: r.str(1), Index: r.int(2), Timestamp: r.int64(3), SourceUUID: r.str(4), Created: r.int64(5)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}
