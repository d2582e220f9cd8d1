// ABOUTME: Source entities describing where published data came from
// ABOUTME: Sources form a chain through ParentUUID; SourceMetadata annotates them

package entity

// Source identifies a producer (type + sender) optionally nested under a parent source
type Source struct {
	UUID       string
	Type       string
	Sender     string
	ParentUUID string
	Created    int64
	Hash       []byte
}

func NewSource(sourceType, sender, parentUUID string, created int64) *Source {
	e := &Source{Type: sourceType, Sender: sender, ParentUUID: parentUUID, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

// GenerateSourceUUID chains the parent uuid into the identity when present
func GenerateSourceUUID(sourceType, sender, parentUUID string) string {
	if parentUUID != "" {
		return identity(parentUUID, sourceType, sender)
	}
	return identity(sourceType, sender)
}

func (e *Source) Refresh() {
	e.UUID = GenerateSourceUUID(e.Type, e.Sender, e.ParentUUID)
	e.Hash = e.ComputeHash()
}

func (e *Source) ComputeHash() []byte {
	return content(e.UUID, e.ParentUUID, e.Type, e.Sender, e.Created)
}

func (e *Source) GetUUID() string { return e.UUID }
func (e *Source) GetHash() []byte { return e.Hash }
func (e *Source) Kind() Kind      { return Kind{CategorySources, ClassSource} }
func (e *Source) Valid() bool {
	return e.UUID != "" && e.Type != "" && e.Sender != "" && e.Created > 0
}

func (e *Source) Clone() *Source {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *Source) ToArray() []any {
	return []any{e.Type, e.Sender, e.ParentUUID, e.Created}
}

func SourceFromArray(values []any) (*Source, error) {
	r, err := newFieldReader(Kind{CategorySources, ClassSource}, values, 4)
	if err != nil {
		return nil, err
	}
	e := &Source{Type: r.str(0), Sender: r.str(1), ParentUUID: r.str(2), Created: r.int64(3)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}

// SourceMetadata attaches a named value to a source
type SourceMetadata struct {
	UUID       string
	SourceUUID string
	Name       string
	Value      string
	Created    int64
	Hash       []byte
}

func NewSourceMetadata(sourceUUID, name, value string, created int64) *SourceMetadata {
	e := &SourceMetadata{SourceUUID: sourceUUID, Name: name, Value: value, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

func GenerateSourceMetadataUUID(sourceUUID, name string) string {
	if sourceUUID == "" || name == "" {
		return ""
	}
	return identity(sourceUUID, name)
}

func (e *SourceMetadata) Refresh() {
	e.UUID = GenerateSourceMetadataUUID(e.SourceUUID, e.Name)
	e.Hash = e.ComputeHash()
}

func (e *SourceMetadata) ComputeHash() []byte {
	return content(e.SourceUUID, e.Name, e.Value, e.Created)
}

func (e *SourceMetadata) GetUUID() string { return e.UUID }
func (e *SourceMetadata) GetHash() []byte { return e.Hash }
func (e *SourceMetadata) Kind() Kind      { return Kind{CategorySources, ClassSourceMetadata} }
func (e *SourceMetadata) Valid() bool {
	return e.UUID != "" && e.SourceUUID != "" && e.Name != "" && e.Created > 0
}

func (e *SourceMetadata) Clone() *SourceMetadata {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *SourceMetadata) ToArray() []any {
	return []any{e.SourceUUID, e.Name, e.Value, e.Created}
}

func SourceMetadataFromArray(values []any) (*SourceMetadata, error) {
	r, err := newFieldReader(Kind{CategorySources, ClassSourceMetadata}, values, 4)
	if err != nil {
		return nil, err
	}
	e := &SourceMetadata{SourceUUID: r.str(0), Name: r.str(1), Value: r.str(2), Created: r.int64(3)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}
