// ABOUTME: Object entity, the root of the object graph
// ABOUTME: Path-derived identity, parent linkage and priority

package entity

import (
	"encoding/hex"
	"strings"
)

// PathSeparator separates object path segments
const PathSeparator = "/"

// uuidSegmentPrefix marks a path segment that carries an explicit uuid
const uuidSegmentPrefix = "uuid="

// ObjectArraySize is the number of fields in an Object wire array
const ObjectArraySize = 7

// Object is a node in the namespace/path hierarchy that content entities attach to
type Object struct {
	UUID           string
	Namespace      string
	Path           string
	Name           string
	ParentUUID     string
	ContentType    string
	DefinitionUUID string
	Priority       byte
	SourceUUID     string
	Created        int64
	Hash           []byte
}

// NewObject creates an object with identity and hash derived from its fields.
// An empty namespace selects DefaultNamespace; priority 0 selects DefaultPriority.
func NewObject(namespace, path, contentType, definitionUUID string, priority byte, sourceUUID string, created int64) *Object {
	o := &Object{
		Namespace:      namespace,
		Path:           path,
		ContentType:    contentType,
		DefinitionUUID: definitionUUID,
		Priority:       priority,
		SourceUUID:     sourceUUID,
		Created:        createdOrNow(created),
	}
	o.Refresh()
	return o
}

// Refresh recomputes the derived fields (UUID, Name, ParentUUID, Hash)
func (o *Object) Refresh() {
	if o.Namespace == "" {
		o.Namespace = DefaultNamespace
	}
	if o.Priority == 0 {
		o.Priority = DefaultPriority
	}
	o.Path = ToRootPath(o.Path)
	o.UUID = GenerateObjectUUID(o.Namespace, o.Path)
	o.ParentUUID = GenerateObjectUUID(o.Namespace, ParentPath(o.Path))
	o.Name = PathObjectName(o.Path)
	o.Hash = o.ComputeHash()
}

// ComputeHash returns the content hash of the object's fields
func (o *Object) ComputeHash() []byte {
	return content(o.Namespace, o.Path, o.ContentType, o.DefinitionUUID, o.Priority, o.SourceUUID, o.Created)
}

func (o *Object) GetUUID() string { return o.UUID }
func (o *Object) GetHash() []byte { return o.Hash }
func (o *Object) Kind() Kind      { return Kind{CategoryObjects, ClassObject} }

// Valid reports whether the object has the fields required for publishing
func (o *Object) Valid() bool {
	return o.Path != "" && o.Namespace != "" && o.ContentType != "" && o.SourceUUID != ""
}

// AbsolutePath returns "namespace:/path"
func (o *Object) AbsolutePath() string {
	return o.Namespace + ":" + o.Path
}

func (o *Object) Clone() *Object {
	c := *o
	c.Hash = cloneBytes(o.Hash)
	return &c
}

func (o *Object) ToArray() []any {
	return []any{o.Namespace, o.Path, o.ContentType, o.DefinitionUUID, o.Priority, o.SourceUUID, o.Created}
}

// ObjectFromArray decodes an Object wire array
func ObjectFromArray(values []any) (*Object, error) {
	r, err := newFieldReader(Kind{CategoryObjects, ClassObject}, values, ObjectArraySize)
	if err != nil {
		return nil, err
	}
	o := &Object{
		Namespace:      r.str(0),
		Path:           r.str(1),
		ContentType:    r.str(2),
		DefinitionUUID: r.str(3),
		Priority:       r.byte(4),
		SourceUUID:     r.str(5),
		Created:        r.int64(6),
	}
	if err := r.err(); err != nil {
		return nil, err
	}
	o.Refresh()
	return o, nil
}

// ToRootPath makes sure a path starts with the separator
func ToRootPath(path string) string {
	if path == "" || strings.HasPrefix(path, PathSeparator) {
		return path
	}
	return PathSeparator + path
}

// ParentPath returns the path without its last segment, or "" for root objects
func ParentPath(path string) string {
	i := strings.LastIndex(path, PathSeparator)
	if i > 0 && i < len(path)-1 {
		return path[:i]
	}
	return ""
}

// PathObjectName returns the last segment of a path
func PathObjectName(path string) string {
	if path == "" {
		return ""
	}
	i := strings.LastIndex(path, PathSeparator)
	if i > 0 && i < len(path)-1 {
		return strings.Trim(path[i+1:], PathSeparator)
	}
	return strings.Trim(path, PathSeparator)
}

// SplitAbsolutePath splits "namespace:/path" into its parts. Paths without a
// namespace resolve to DefaultNamespace.
func SplitAbsolutePath(absolute string) (namespace, path string) {
	if i := strings.Index(absolute, ":"); i >= 0 && !strings.Contains(absolute[:i], PathSeparator) {
		namespace, path = absolute[:i], absolute[i+1:]
	} else {
		path = absolute
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return namespace, ToRootPath(path)
}

// GenerateObjectUUID derives an object's uuid by hashing its path segments as a
// chain rooted in the namespace. A "uuid=<hex>" segment pins the chain.
func GenerateObjectUUID(namespace, path string) string {
	b := objectUUIDBytes(namespace, path)
	if b == nil {
		return ""
	}
	return hex.EncodeToString(b)
}

func objectUUIDBytes(namespace, path string) []byte {
	path = strings.Trim(path, PathSeparator)
	if path == "" {
		return nil
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	var current []byte
	for _, part := range strings.Split(path, PathSeparator) {
		if strings.HasPrefix(part, uuidSegmentPrefix) {
			if b, err := hex.DecodeString(part[len(uuidSegmentPrefix):]); err == nil {
				current = b
				continue
			}
		}
		current = segmentUUIDBytes(namespace, part, current)
	}
	return current
}

func segmentUUIDBytes(namespace, name string, parent []byte) []byte {
	if parent != nil {
		return chainHash(HashBytes(strings.ToLower(name)), parent)
	}
	return chainHash(HashBytes(strings.ToLower(namespace)), HashBytes(strings.ToLower(name)))
}
