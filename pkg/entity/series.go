// ABOUTME: Content entities that accumulate many values per object
// ABOUTME: Event, Hash, Log, Message, Observation, Set, State, Statistic, VocabularySet

package entity

// Event records that a target occurred on an object at a point in time
type Event struct {
	UUID       string
	ObjectUUID string
	TargetUUID string
	SourceUUID string
	Timestamp  int64
	Created    int64
	Hash       []byte
}

func NewEvent(objectUUID, targetUUID, sourceUUID string, timestamp, created int64) *Event {
	e := &Event{ObjectUUID: objectUUID, TargetUUID: targetUUID, SourceUUID: sourceUUID, Timestamp: timestamp, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

func GenerateEventUUID(objectUUID, targetUUID string, timestamp int64) string {
	return identity(objectUUID, targetUUID, timestamp)
}

func (e *Event) Refresh() {
	e.UUID = GenerateEventUUID(e.ObjectUUID, e.TargetUUID, e.Timestamp)
	e.Hash = e.ComputeHash()
}

func (e *Event) ComputeHash() []byte {
	return content(e.ObjectUUID, e.TargetUUID, e.SourceUUID, e.Timestamp, e.Created)
}

func (e *Event) GetUUID() string { return e.UUID }
func (e *Event) GetHash() []byte { return e.Hash }
func (e *Event) Kind() Kind      { return Kind{CategoryObjects, ClassEvent} }
func (e *Event) Valid() bool {
	return e.UUID != "" && e.ObjectUUID != "" && e.TargetUUID != "" && e.SourceUUID != "" && e.Timestamp > 0
}

func (e *Event) Clone() *Event {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *Event) ToArray() []any {
	return []any{e.ObjectUUID, e.TargetUUID, e.SourceUUID, e.Timestamp, e.Created}
}

func EventFromArray(values []any) (*Event, error) {
	r, err := newFieldReader(Kind{CategoryObjects, ClassEvent}, values, 5)
	if err != nil {
		return nil, err
	}
	e := &Event{ObjectUUID: r.str(0), TargetUUID: r.str(1), SourceUUID: r.str(2), Timestamp: r.int64(3), Created: r.int64(4)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}

// Hash is one key/value entry of an object's dictionary content
type Hash struct {
	UUID       string
	ObjectUUID string
	Key        string
	Value      string
	SourceUUID string
	Created    int64
	Hash       []byte
}

func NewHash(objectUUID, key, value, sourceUUID string, created int64) *Hash {
	e := &Hash{ObjectUUID: objectUUID, Key: key, Value: value, SourceUUID: sourceUUID, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

func GenerateHashUUID(objectUUID, key string) string { return identity(objectUUID, key) }

func (e *Hash) Refresh() {
	e.UUID = GenerateHashUUID(e.ObjectUUID, e.Key)
	e.Hash = e.ComputeHash()
}

func (e *Hash) ComputeHash() []byte {
	return content(e.ObjectUUID, e.Key, e.Value, e.SourceUUID, e.Created)
}

func (e *Hash) GetUUID() string { return e.UUID }
func (e *Hash) GetHash() []byte { return e.Hash }
func (e *Hash) Kind() Kind      { return Kind{CategoryObjects, ClassHash} }
func (e *Hash) Valid() bool {
	return e.UUID != "" && e.ObjectUUID != "" && e.Key != "" && e.SourceUUID != "" && e.Created > 0
}

func (e *Hash) Clone() *Hash {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *Hash) ToArray() []any {
	return []any{e.ObjectUUID, e.Key, e.Value, e.SourceUUID, e.Created}
}

func HashFromArray(values []any) (*Hash, error) {
	r, err := newFieldReader(Kind{CategoryObjects, ClassHash}, values, 5)
	if err != nil {
		return nil, err
	}
	e := &Hash{ObjectUUID: r.str(0), Key: r.str(1), Value: r.str(2), SourceUUID: r.str(3), Created: r.int64(4)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}

// Log levels
const (
	LogLevelTrace = 0
	LogLevelDebug = 1
	LogLevelInfo  = 2
	LogLevelWarn  = 3
	LogLevelError = 4
	LogLevelFatal = 5
)

// Log is a leveled message written against an object
type Log struct {
	UUID       string
	ObjectUUID string
	LogLevel   int
	Message    string
	Code       string
	SourceUUID string
	Timestamp  int64
	Created    int64
	Hash       []byte
}

func NewLog(objectUUID string, logLevel int, message, code, sourceUUID string, timestamp, created int64) *Log {
	e := &Log{ObjectUUID: objectUUID, LogLevel: logLevel, Message: message, Code: code, SourceUUID: sourceUUID, Timestamp: timestamp, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

func GenerateLogUUID(objectUUID string, logLevel int, message string, timestamp int64) string {
	return identity(objectUUID, logLevel, message, timestamp)
}

func (e *Log) Refresh() {
	e.UUID = GenerateLogUUID(e.ObjectUUID, e.LogLevel, e.Message, e.Timestamp)
	e.Hash = e.ComputeHash()
}

func (e *Log) ComputeHash() []byte {
	return content(e.ObjectUUID, e.LogLevel, e.Message, e.Code, e.SourceUUID, e.Timestamp, e.Created)
}

func (e *Log) GetUUID() string { return e.UUID }
func (e *Log) GetHash() []byte { return e.Hash }
func (e *Log) Kind() Kind      { return Kind{CategoryObjects, ClassLog} }
func (e *Log) Valid() bool {
	return e.UUID != "" && e.ObjectUUID != "" && e.SourceUUID != "" && e.Timestamp > 0
}

func (e *Log) Clone() *Log {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *Log) ToArray() []any {
	return []any{e.ObjectUUID, e.LogLevel, e.Message, e.Code, e.SourceUUID, e.Timestamp, e.Created}
}

func LogFromArray(values []any) (*Log, error) {
	r, err := newFieldReader(Kind{CategoryObjects, ClassLog}, values, 7)
	if err != nil {
		return nil, err
	}
	e := &Log{ObjectUUID: r.str(0), LogLevel: r.int(1), Message: r.str(2), Code: r.str(3), SourceUUID: r.str(4), Timestamp: r.int64(5), Created: r.int64(6)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}

// Message binds an object to a topic on a messaging broker
type Message struct {
	UUID        string
	ObjectUUID  string
	BrokerID    string
	Topic       string
	ContentType string
	Retain      bool
	Qos         int
	SourceUUID  string
	Created     int64
	Hash        []byte
}

func NewMessage(objectUUID, brokerID, topic, contentType string, retain bool, qos int, sourceUUID string, created int64) *Message {
	e := &Message{ObjectUUID: objectUUID, BrokerID: brokerID, Topic: topic, ContentType: contentType, Retain: retain, Qos: qos, SourceUUID: sourceUUID, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

func GenerateMessageUUID(objectUUID string) string { return identity(objectUUID, "message") }

func (e *Message) Refresh() {
	e.UUID = GenerateMessageUUID(e.ObjectUUID)
	e.Hash = e.ComputeHash()
}

func (e *Message) ComputeHash() []byte {
	return content(e.UUID, e.ObjectUUID, e.BrokerID, e.Topic, e.ContentType, e.Retain, e.Qos, e.SourceUUID, e.Created)
}

func (e *Message) GetUUID() string { return e.UUID }
func (e *Message) GetHash() []byte { return e.Hash }
func (e *Message) Kind() Kind      { return Kind{CategoryObjects, ClassMessage} }
func (e *Message) Valid() bool {
	return e.UUID != "" && e.ObjectUUID != "" && e.BrokerID != "" && e.Topic != "" && e.SourceUUID != "" && e.Created > 0
}

func (e *Message) Clone() *Message {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *Message) ToArray() []any {
	return []any{e.ObjectUUID, e.BrokerID, e.Topic, e.ContentType, e.Retain, e.Qos, e.SourceUUID, e.Created}
}

func MessageFromArray(values []any) (*Message, error) {
	r, err := newFieldReader(Kind{CategoryObjects, ClassMessage}, values, 8)
	if err != nil {
		return nil, err
	}
	e := &Message{ObjectUUID: r.str(0), BrokerID: r.str(1), Topic: r.str(2), ContentType: r.str(3), Retain: r.bool(4), Qos: r.int(5), SourceUUID: r.str(6), Created: r.int64(7)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}

// Observation is a timestamped sample of an object's value
type Observation struct {
	UUID       string
	ObjectUUID string
	DataType   int
	Value      string
	BatchID    uint64
	Sequence   uint64
	Timestamp  int64
	SourceUUID string
	Created    int64
	Hash       []byte
}

func NewObservation(objectUUID string, dataType int, value string, batchID, sequence uint64, timestamp int64, sourceUUID string, created int64) *Observation {
	e := &Observation{ObjectUUID: objectUUID, DataType: dataType, Value: value, BatchID: batchID, Sequence: sequence, Timestamp: timestamp, SourceUUID: sourceUUID, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

func GenerateObservationUUID(objectUUID string, timestamp int64) string {
	return identity(objectUUID, timestamp)
}

func (e *Observation) Refresh() {
	e.UUID = GenerateObservationUUID(e.ObjectUUID, e.Timestamp)
	e.Hash = e.ComputeHash()
}

func (e *Observation) ComputeHash() []byte {
	return content(e.ObjectUUID, e.DataType, e.Value, e.BatchID, e.Sequence, e.Timestamp, e.SourceUUID, e.Created)
}

func (e *Observation) GetUUID() string { return e.UUID }
func (e *Observation) GetHash() []byte { return e.Hash }
func (e *Observation) Kind() Kind      { return Kind{CategoryObjects, ClassObservation} }
func (e *Observation) Valid() bool {
	return e.UUID != "" && e.ObjectUUID != "" && e.SourceUUID != "" && e.Timestamp > 0
}

func (e *Observation) Clone() *Observation {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *Observation) ToArray() []any {
	return []any{e.ObjectUUID, e.DataType, e.Value, e.BatchID, e.Sequence, e.Timestamp, e.SourceUUID, e.Created}
}

func ObservationFromArray(values []any) (*Observation, error) {
	r, err := newFieldReader(Kind{CategoryObjects, ClassObservation}, values, 8)
	if err != nil {
		return nil, err
	}
	e := &Observation{ObjectUUID: r.str(0), DataType: r.int(1), Value: r.str(2), BatchID: r.uint64(3), Sequence: r.uint64(4), Timestamp: r.int64(5), SourceUUID: r.str(6), Created: r.int64(7)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}

// Set is one member value of an object's set content
type Set struct {
	UUID       string
	ObjectUUID string
	Value      string
	SourceUUID string
	Created    int64
	Hash       []byte
}

func NewSet(objectUUID, value, sourceUUID string, created int64) *Set {
	e := &Set{ObjectUUID: objectUUID, Value: value, SourceUUID: sourceUUID, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

func GenerateSetUUID(objectUUID, value string) string { return identity(objectUUID, value) }

func (e *Set) Refresh() {
	e.UUID = GenerateSetUUID(e.ObjectUUID, e.Value)
	e.Hash = e.ComputeHash()
}

func (e *Set) ComputeHash() []byte {
	return content(e.ObjectUUID, e.Value, e.SourceUUID, e.Created)
}

func (e *Set) GetUUID() string { return e.UUID }
func (e *Set) GetHash() []byte { return e.Hash }
func (e *Set) Kind() Kind      { return Kind{CategoryObjects, ClassSet} }
func (e *Set) Valid() bool {
	return e.UUID != "" && e.ObjectUUID != "" && e.Value != "" && e.SourceUUID != "" && e.Created > 0
}

func (e *Set) Clone() *Set {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *Set) ToArray() []any {
	return []any{e.ObjectUUID, e.Value, e.SourceUUID, e.Created}
}

func SetFromArray(values []any) (*Set, error) {
	r, err := newFieldReader(Kind{CategoryObjects, ClassSet}, values, 4)
	if err != nil {
		return nil, err
	}
	e := &Set{ObjectUUID: r.str(0), Value: r.str(1), SourceUUID: r.str(2), Created: r.int64(3)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}

// State is a timestamped definition-valued state of an object with an optional time to live
type State struct {
	UUID           string
	ObjectUUID     string
	DefinitionUUID string
	TTL            int
	SourceUUID     string
	Timestamp      int64
	Created        int64
	Hash           []byte
}

func NewState(objectUUID, definitionUUID string, ttl int, sourceUUID string, timestamp, created int64) *State {
	e := &State{ObjectUUID: objectUUID, DefinitionUUID: definitionUUID, TTL: ttl, SourceUUID: sourceUUID, Timestamp: timestamp, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

func GenerateStateUUID(objectUUID string, timestamp int64) string {
	return identity(objectUUID, timestamp)
}

func (e *State) Refresh() {
	e.UUID = GenerateStateUUID(e.ObjectUUID, e.Timestamp)
	e.Hash = e.ComputeHash()
}

func (e *State) ComputeHash() []byte {
	return content(e.ObjectUUID, e.DefinitionUUID, e.TTL, e.SourceUUID, e.Timestamp, e.Created)
}

func (e *State) GetUUID() string { return e.UUID }
func (e *State) GetHash() []byte { return e.Hash }
func (e *State) Kind() Kind      { return Kind{CategoryObjects, ClassState} }
func (e *State) Valid() bool {
	return e.UUID != "" && e.ObjectUUID != "" && e.DefinitionUUID != "" && e.SourceUUID != "" && e.Timestamp > 0
}

func (e *State) Clone() *State {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *State) ToArray() []any {
	return []any{e.ObjectUUID, e.DefinitionUUID, e.TTL, e.SourceUUID, e.Timestamp, e.Created}
}

func StateFromArray(values []any) (*State, error) {
	r, err := newFieldReader(Kind{CategoryObjects, ClassState}, values, 6)
	if err != nil {
		return nil, err
	}
	e := &State{ObjectUUID: r.str(0), DefinitionUUID: r.str(1), TTL: r.int(2), SourceUUID: r.str(3), Timestamp: r.int64(4), Created: r.int64(5)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}

// Statistic is an aggregate value computed over a time range of an object
type Statistic struct {
	UUID           string
	ObjectUUID     string
	TimeRangeStart int64
	TimeRangeEnd   int64
	DataType       int
	Value          string
	SourceUUID     string
	Timestamp      int64
	Created        int64
	Hash           []byte
}

func NewStatistic(objectUUID string, start, end int64, dataType int, value, sourceUUID string, timestamp, created int64) *Statistic {
	e := &Statistic{ObjectUUID: objectUUID, TimeRangeStart: start, TimeRangeEnd: end, DataType: dataType, Value: value, SourceUUID: sourceUUID, Timestamp: timestamp, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

func GenerateStatisticUUID(objectUUID string, start, end int64) string {
	return identity(objectUUID, start, end)
}

func (e *Statistic) Refresh() {
	e.UUID = GenerateStatisticUUID(e.ObjectUUID, e.TimeRangeStart, e.TimeRangeEnd)
	e.Hash = e.ComputeHash()
}

func (e *Statistic) ComputeHash() []byte {
	return content(e.ObjectUUID, e.TimeRangeStart, e.TimeRangeEnd, e.DataType, e.Value, e.SourceUUID, e.Timestamp, e.Created)
}

func (e *Statistic) GetUUID() string { return e.UUID }
func (e *Statistic) GetHash() []byte { return e.Hash }
func (e *Statistic) Kind() Kind      { return Kind{CategoryObjects, ClassStatistic} }
func (e *Statistic) Valid() bool {
	return e.UUID != "" && e.ObjectUUID != "" && e.SourceUUID != "" && e.TimeRangeEnd >= e.TimeRangeStart && e.Created > 0
}

func (e *Statistic) Clone() *Statistic {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *Statistic) ToArray() []any {
	return []any{e.ObjectUUID, e.TimeRangeStart, e.TimeRangeEnd, e.DataType, e.Value, e.SourceUUID, e.Timestamp, e.Created}
}

func StatisticFromArray(values []any) (*Statistic, error) {
	r, err := newFieldReader(Kind{CategoryObjects, ClassStatistic}, values, 8)
	if err != nil {
		return nil, err
	}
	e := &Statistic{ObjectUUID: r.str(0), TimeRangeStart: r.int64(1), TimeRangeEnd: r.int64(2), DataType: r.int(3), Value: r.str(4), SourceUUID: r.str(5), Timestamp: r.int64(6), Created: r.int64(7)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}

// VocabularySet is one definition member of an object's vocabulary set
type VocabularySet struct {
	UUID           string
	ObjectUUID     string
	DefinitionUUID string
	SourceUUID     string
	Created        int64
	Hash           []byte
}

func NewVocabularySet(objectUUID, definitionUUID, sourceUUID string, created int64) *VocabularySet {
	e := &VocabularySet{ObjectUUID: objectUUID, DefinitionUUID: definitionUUID, SourceUUID: sourceUUID, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

func GenerateVocabularySetUUID(objectUUID, definitionUUID string) string {
	return identity(objectUUID, definitionUUID)
}

func (e *VocabularySet) Refresh() {
	e.UUID = GenerateVocabularySetUUID(e.ObjectUUID, e.DefinitionUUID)
	e.Hash = e.ComputeHash()
}

func (e *VocabularySet) ComputeHash() []byte {
	return content(e.ObjectUUID, e.DefinitionUUID, e.SourceUUID, e.Created)
}

func (e *VocabularySet) GetUUID() string { return e.UUID }
func (e *VocabularySet) GetHash() []byte { return e.Hash }
func (e *VocabularySet) Kind() Kind      { return Kind{CategoryObjects, ClassVocabularySet} }
func (e *VocabularySet) Valid() bool {
	return e.UUID != "" && e.ObjectUUID != "" && e.DefinitionUUID != "" && e.SourceUUID != "" && e.Created > 0
}

func (e *VocabularySet) Clone() *VocabularySet {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *VocabularySet) ToArray() []any {
	return []any{e.ObjectUUID, e.DefinitionUUID, e.SourceUUID, e.Created}
}

func VocabularySetFromArray(values []any) (*VocabularySet, error) {
	r, err := newFieldReader(Kind{CategoryObjects, ClassVocabularySet}, values, 4)
	if err != nil {
		return nil, err
	}
	e := &VocabularySet{ObjectUUID: r.str(0), DefinitionUUID: r.str(1), SourceUUID: r.str(2), Created: r.int64(3)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}
