// ABOUTME: Content entities that hold a single current value per object
// ABOUTME: Blob, Boolean, Duration, MessageQueue, Number, Reference, String, TimeRange, Timestamp, Vocabulary

package entity

// Blob points at binary content stored outside the entity graph
type Blob struct {
	UUID        string
	ObjectUUID  string
	BlobID      string
	ContentType string
	Size        int64
	Filename    string
	SourceUUID  string
	Created     int64
	Hash        []byte
}

func NewBlob(objectUUID, blobID, contentType string, size int64, filename, sourceUUID string, created int64) *Blob {
	e := &Blob{ObjectUUID: objectUUID, BlobID: blobID, ContentType: contentType, Size: size, Filename: filename, SourceUUID: sourceUUID, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

func GenerateBlobUUID(objectUUID string) string { return identity(objectUUID, "blob") }

func (e *Blob) Refresh() {
	e.UUID = GenerateBlobUUID(e.ObjectUUID)
	e.Hash = e.ComputeHash()
}

func (e *Blob) ComputeHash() []byte {
	return content(e.UUID, e.ObjectUUID, e.BlobID, e.ContentType, e.Filename, e.Size, e.SourceUUID, e.Created)
}

func (e *Blob) GetUUID() string { return e.UUID }
func (e *Blob) GetHash() []byte { return e.Hash }
func (e *Blob) Kind() Kind      { return Kind{CategoryObjects, ClassBlob} }
func (e *Blob) Valid() bool {
	return e.UUID != "" && e.ObjectUUID != "" && e.BlobID != "" && e.SourceUUID != "" && e.Created > 0
}

func (e *Blob) Clone() *Blob {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *Blob) ToArray() []any {
	return []any{e.ObjectUUID, e.BlobID, e.ContentType, e.Size, e.Filename, e.SourceUUID, e.Created}
}

func BlobFromArray(values []any) (*Blob, error) {
	r, err := newFieldReader(Kind{CategoryObjects, ClassBlob}, values, 7)
	if err != nil {
		return nil, err
	}
	e := &Blob{ObjectUUID: r.str(0), BlobID: r.str(1), ContentType: r.str(2), Size: r.int64(3), Filename: r.str(4), SourceUUID: r.str(5), Created: r.int64(6)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}

// Boolean holds a true/false value for an object
type Boolean struct {
	UUID       string
	ObjectUUID string
	Value      bool
	SourceUUID string
	Created    int64
	Hash       []byte
}

func NewBoolean(objectUUID string, value bool, sourceUUID string, created int64) *Boolean {
	e := &Boolean{ObjectUUID: objectUUID, Value: value, SourceUUID: sourceUUID, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

func GenerateBooleanUUID(objectUUID string) string { return identity(objectUUID, "boolean") }

func (e *Boolean) Refresh() {
	e.UUID = GenerateBooleanUUID(e.ObjectUUID)
	e.Hash = e.ComputeHash()
}

func (e *Boolean) ComputeHash() []byte {
	return content(e.ObjectUUID, e.Value, e.SourceUUID, e.Created)
}

func (e *Boolean) GetUUID() string { return e.UUID }
func (e *Boolean) GetHash() []byte { return e.Hash }
func (e *Boolean) Kind() Kind      { return Kind{CategoryObjects, ClassBoolean} }
func (e *Boolean) Valid() bool {
	return e.UUID != "" && e.ObjectUUID != "" && e.SourceUUID != "" && e.Created > 0
}

func (e *Boolean) Clone() *Boolean {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *Boolean) ToArray() []any {
	return []any{e.ObjectUUID, e.Value, e.SourceUUID, e.Created}
}

func BooleanFromArray(values []any) (*Boolean, error) {
	r, err := newFieldReader(Kind{CategoryObjects, ClassBoolean}, values, 4)
	if err != nil {
		return nil, err
	}
	e := &Boolean{ObjectUUID: r.str(0), Value: r.bool(1), SourceUUID: r.str(2), Created: r.int64(3)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}

// Duration holds an elapsed time value for an object
type Duration struct {
	UUID       string
	ObjectUUID string
	Value      uint64
	SourceUUID string
	Created    int64
	Hash       []byte
}

func NewDuration(objectUUID string, value uint64, sourceUUID string, created int64) *Duration {
	e := &Duration{ObjectUUID: objectUUID, Value: value, SourceUUID: sourceUUID, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

func GenerateDurationUUID(objectUUID string) string { return identity(objectUUID, "duration") }

func (e *Duration) Refresh() {
	e.UUID = GenerateDurationUUID(e.ObjectUUID)
	e.Hash = e.ComputeHash()
}

func (e *Duration) ComputeHash() []byte {
	return content(e.ObjectUUID, e.Value, e.SourceUUID, e.Created)
}

func (e *Duration) GetUUID() string { return e.UUID }
func (e *Duration) GetHash() []byte { return e.Hash }
func (e *Duration) Kind() Kind      { return Kind{CategoryObjects, ClassDuration} }
func (e *Duration) Valid() bool {
	return e.UUID != "" && e.ObjectUUID != "" && e.SourceUUID != "" && e.Created > 0
}

func (e *Duration) Clone() *Duration {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *Duration) ToArray() []any {
	return []any{e.ObjectUUID, e.Value, e.SourceUUID, e.Created}
}

func DurationFromArray(values []any) (*Duration, error) {
	r, err := newFieldReader(Kind{CategoryObjects, ClassDuration}, values, 4)
	if err != nil {
		return nil, err
	}
	e := &Duration{ObjectUUID: r.str(0), Value: r.uint64(1), SourceUUID: r.str(2), Created: r.int64(3)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}

// MessageQueue binds an object to a queue on an external broker
type MessageQueue struct {
	UUID        string
	ObjectUUID  string
	QueueID     string
	ContentType string
	SourceUUID  string
	Created     int64
	Hash        []byte
}

func NewMessageQueue(objectUUID, queueID, contentType, sourceUUID string, created int64) *MessageQueue {
	e := &MessageQueue{ObjectUUID: objectUUID, QueueID: queueID, ContentType: contentType, SourceUUID: sourceUUID, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

func GenerateMessageQueueUUID(objectUUID string) string { return identity(objectUUID, "message-queue") }

func (e *MessageQueue) Refresh() {
	e.UUID = GenerateMessageQueueUUID(e.ObjectUUID)
	e.Hash = e.ComputeHash()
}

func (e *MessageQueue) ComputeHash() []byte {
	return content(e.UUID, e.ObjectUUID, e.QueueID, e.ContentType, e.SourceUUID, e.Created)
}

func (e *MessageQueue) GetUUID() string { return e.UUID }
func (e *MessageQueue) GetHash() []byte { return e.Hash }
func (e *MessageQueue) Kind() Kind      { return Kind{CategoryObjects, ClassMessageQueue} }
func (e *MessageQueue) Valid() bool {
	return e.UUID != "" && e.ObjectUUID != "" && e.QueueID != "" && e.SourceUUID != "" && e.Created > 0
}

func (e *MessageQueue) Clone() *MessageQueue {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *MessageQueue) ToArray() []any {
	return []any{e.ObjectUUID, e.QueueID, e.ContentType, e.SourceUUID, e.Created}
}

func MessageQueueFromArray(values []any) (*MessageQueue, error) {
	r, err := newFieldReader(Kind{CategoryObjects, ClassMessageQueue}, values, 5)
	if err != nil {
		return nil, err
	}
	e := &MessageQueue{ObjectUUID: r.str(0), QueueID: r.str(1), ContentType: r.str(2), SourceUUID: r.str(3), Created: r.int64(4)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}

// Number holds a numeric value, kept as its string form with a data type hint
type Number struct {
	UUID       string
	ObjectUUID string
	DataType   int
	Value      string
	SourceUUID string
	Created    int64
	Hash       []byte
}

func NewNumber(objectUUID string, dataType int, value, sourceUUID string, created int64) *Number {
	e := &Number{ObjectUUID: objectUUID, DataType: dataType, Value: value, SourceUUID: sourceUUID, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

func GenerateNumberUUID(objectUUID string) string { return identity(objectUUID, "number") }

func (e *Number) Refresh() {
	e.UUID = GenerateNumberUUID(e.ObjectUUID)
	e.Hash = e.ComputeHash()
}

func (e *Number) ComputeHash() []byte {
	return content(e.ObjectUUID, e.DataType, e.Value, e.SourceUUID, e.Created)
}

func (e *Number) GetUUID() string { return e.UUID }
func (e *Number) GetHash() []byte { return e.Hash }
func (e *Number) Kind() Kind      { return Kind{CategoryObjects, ClassNumber} }
func (e *Number) Valid() bool {
	return e.UUID != "" && e.ObjectUUID != "" && e.SourceUUID != "" && e.Created > 0
}

func (e *Number) Clone() *Number {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *Number) ToArray() []any {
	return []any{e.ObjectUUID, e.DataType, e.Value, e.SourceUUID, e.Created}
}

func NumberFromArray(values []any) (*Number, error) {
	r, err := newFieldReader(Kind{CategoryObjects, ClassNumber}, values, 5)
	if err != nil {
		return nil, err
	}
	e := &Number{ObjectUUID: r.str(0), DataType: r.int(1), Value: r.str(2), SourceUUID: r.str(3), Created: r.int64(4)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}

// Reference points an object at another entity
type Reference struct {
	UUID       string
	ObjectUUID string
	TargetUUID string
	SourceUUID string
	Created    int64
	Hash       []byte
}

func NewReference(objectUUID, targetUUID, sourceUUID string, created int64) *Reference {
	e := &Reference{ObjectUUID: objectUUID, TargetUUID: targetUUID, SourceUUID: sourceUUID, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

func GenerateReferenceUUID(objectUUID string) string { return identity(objectUUID, "reference") }

func (e *Reference) Refresh() {
	e.UUID = GenerateReferenceUUID(e.ObjectUUID)
	e.Hash = e.ComputeHash()
}

func (e *Reference) ComputeHash() []byte {
	return content(e.ObjectUUID, e.TargetUUID, e.SourceUUID, e.Created)
}

func (e *Reference) GetUUID() string { return e.UUID }
func (e *Reference) GetHash() []byte { return e.Hash }
func (e *Reference) Kind() Kind      { return Kind{CategoryObjects, ClassReference} }
func (e *Reference) Valid() bool {
	return e.UUID != "" && e.ObjectUUID != "" && e.TargetUUID != "" && e.SourceUUID != "" && e.Created > 0
}

func (e *Reference) Clone() *Reference {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *Reference) ToArray() []any {
	return []any{e.ObjectUUID, e.TargetUUID, e.SourceUUID, e.Created}
}

func ReferenceFromArray(values []any) (*Reference, error) {
	r, err := newFieldReader(Kind{CategoryObjects, ClassReference}, values, 4)
	if err != nil {
		return nil, err
	}
	e := &Reference{ObjectUUID: r.str(0), TargetUUID: r.str(1), SourceUUID: r.str(2), Created: r.int64(3)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}

// String holds a text value for an object
type String struct {
	UUID       string
	ObjectUUID string
	Value      string
	SourceUUID string
	Created    int64
	Hash       []byte
}

func NewString(objectUUID, value, sourceUUID string, created int64) *String {
	e := &String{ObjectUUID: objectUUID, Value: value, SourceUUID: sourceUUID, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

func GenerateStringUUID(objectUUID string) string { return identity(objectUUID, "string") }

func (e *String) Refresh() {
	e.UUID = GenerateStringUUID(e.ObjectUUID)
	e.Hash = e.ComputeHash()
}

func (e *String) ComputeHash() []byte {
	return content(e.ObjectUUID, e.Value, e.SourceUUID, e.Created)
}

func (e *String) GetUUID() string { return e.UUID }
func (e *String) GetHash() []byte { return e.Hash }
func (e *String) Kind() Kind      { return Kind{CategoryObjects, ClassString} }
func (e *String) Valid() bool {
	return e.UUID != "" && e.ObjectUUID != "" && e.SourceUUID != "" && e.Created > 0
}

func (e *String) Clone() *String {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *String) ToArray() []any {
	return []any{e.ObjectUUID, e.Value, e.SourceUUID, e.Created}
}

func StringFromArray(values []any) (*String, error) {
	r, err := newFieldReader(Kind{CategoryObjects, ClassString}, values, 4)
	if err != nil {
		return nil, err
	}
	e := &String{ObjectUUID: r.str(0), Value: r.str(1), SourceUUID: r.str(2), Created: r.int64(3)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}

// TimeRange holds a start/end pair for an object
type TimeRange struct {
	UUID       string
	ObjectUUID string
	Start      int64
	End        int64
	SourceUUID string
	Created    int64
	Hash       []byte
}

func NewTimeRange(objectUUID string, start, end int64, sourceUUID string, created int64) *TimeRange {
	e := &TimeRange{ObjectUUID: objectUUID, Start: start, End: end, SourceUUID: sourceUUID, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

func GenerateTimeRangeUUID(objectUUID string) string { return identity(objectUUID, "time-range") }

func (e *TimeRange) Refresh() {
	e.UUID = GenerateTimeRangeUUID(e.ObjectUUID)
	e.Hash = e.ComputeHash()
}

func (e *TimeRange) ComputeHash() []byte {
	return content(e.ObjectUUID, e.Start, e.End, e.SourceUUID, e.Created)
}

func (e *TimeRange) GetUUID() string { return e.UUID }
func (e *TimeRange) GetHash() []byte { return e.Hash }
func (e *TimeRange) Kind() Kind      { return Kind{CategoryObjects, ClassTimeRange} }
func (e *TimeRange) Valid() bool {
	return e.UUID != "" && e.ObjectUUID != "" && e.SourceUUID != "" && e.Created > 0
}

func (e *TimeRange) Clone() *TimeRange {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *TimeRange) ToArray() []any {
	return []any{e.ObjectUUID, e.Start, e.End, e.SourceUUID, e.Created}
}

func TimeRangeFromArray(values []any) (*TimeRange, error) {
	r, err := newFieldReader(Kind{CategoryObjects, ClassTimeRange}, values, 5)
	if err != nil {
		return nil, err
	}
	e := &TimeRange{ObjectUUID: r.str(0), Start: r.int64(1), End: r.int64(2), SourceUUID: r.str(3), Created: r.int64(4)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}

// Timestamp holds a point in time for an object
type Timestamp struct {
	UUID       string
	ObjectUUID string
	Value      int64
	SourceUUID string
	Created    int64
	Hash       []byte
}

func NewTimestamp(objectUUID string, value int64, sourceUUID string, created int64) *Timestamp {
	e := &Timestamp{ObjectUUID: objectUUID, Value: value, SourceUUID: sourceUUID, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

func GenerateTimestampUUID(objectUUID string) string { return identity(objectUUID, "timestamp") }

func (e *Timestamp) Refresh() {
	e.UUID = GenerateTimestampUUID(e.ObjectUUID)
	e.Hash = e.ComputeHash()
}

func (e *Timestamp) ComputeHash() []byte {
	return content(e.ObjectUUID, e.Value, e.SourceUUID, e.Created)
}

func (e *Timestamp) GetUUID() string { return e.UUID }
func (e *Timestamp) GetHash() []byte { return e.Hash }
func (e *Timestamp) Kind() Kind      { return Kind{CategoryObjects, ClassTimestamp} }
func (e *Timestamp) Valid() bool {
	return e.UUID != "" && e.ObjectUUID != "" && e.SourceUUID != "" && e.Created > 0
}

func (e *Timestamp) Clone() *Timestamp {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *Timestamp) ToArray() []any {
	return []any{e.ObjectUUID, e.Value, e.SourceUUID, e.Created}
}

func TimestampFromArray(values []any) (*Timestamp, error) {
	r, err := newFieldReader(Kind{CategoryObjects, ClassTimestamp}, values, 4)
	if err != nil {
		return nil, err
	}
	e := &Timestamp{ObjectUUID: r.str(0), Value: r.int64(1), SourceUUID: r.str(2), Created: r.int64(3)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}

// Vocabulary assigns a definition as the current value of an object
type Vocabulary struct {
	UUID           string
	ObjectUUID     string
	DefinitionUUID string
	SourceUUID     string
	Created        int64
	Hash           []byte
}

func NewVocabulary(objectUUID, definitionUUID, sourceUUID string, created int64) *Vocabulary {
	e := &Vocabulary{ObjectUUID: objectUUID, DefinitionUUID: definitionUUID, SourceUUID: sourceUUID, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

func GenerateVocabularyUUID(objectUUID string) string { return identity(objectUUID, "vocabulary") }

func (e *Vocabulary) Refresh() {
	e.UUID = GenerateVocabularyUUID(e.ObjectUUID)
	e.Hash = e.ComputeHash()
}

func (e *Vocabulary) ComputeHash() []byte {
	return content(e.ObjectUUID, e.DefinitionUUID, e.SourceUUID, e.Created)
}

func (e *Vocabulary) GetUUID() string { return e.UUID }
func (e *Vocabulary) GetHash() []byte { return e.Hash }
func (e *Vocabulary) Kind() Kind      { return Kind{CategoryObjects, ClassVocabulary} }
func (e *Vocabulary) Valid() bool {
	return e.UUID != "" && e.ObjectUUID != "" && e.DefinitionUUID != "" && e.SourceUUID != "" && e.Created > 0
}

func (e *Vocabulary) Clone() *Vocabulary {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *Vocabulary) ToArray() []any {
	return []any{e.ObjectUUID, e.DefinitionUUID, e.SourceUUID, e.Created}
}

func VocabularyFromArray(values []any) (*Vocabulary, error) {
	r, err := newFieldReader(Kind{CategoryObjects, ClassVocabulary}, values, 4)
	if err != nil {
		return nil, err
	}
	e := &Vocabulary{ObjectUUID: r.str(0), DefinitionUUID: r.str(1), SourceUUID: r.str(2), Created: r.int64(3)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}
