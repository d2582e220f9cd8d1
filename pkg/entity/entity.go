// ABOUTME: Entity model shared by all collections
// ABOUTME: Categories, classes and the Entity contract every record satisfies

package entity

import (
	"fmt"
	"time"
)

// Category groups entity classes into families
type Category byte

const (
	CategoryObjects     Category = 1
	CategoryDefinitions Category = 2
	CategorySources     Category = 3
)

// Class identifies an entity type within its category
type Class byte

// Object classes
const (
	ClassObject        Class = 1
	ClassMetadata      Class = 2
	ClassAssignment    Class = 3
	ClassBlob          Class = 4
	ClassBoolean       Class = 5
	ClassDuration      Class = 6
	ClassEvent         Class = 7
	ClassGroup         Class = 8
	ClassHash          Class = 9
	ClassLog           Class = 10
	ClassMessage       Class = 11
	ClassMessageQueue  Class = 12
	ClassNumber        Class = 13
	ClassObservation   Class = 14
	ClassQueue         Class = 15
	ClassReference     Class = 16
	ClassSet           Class = 17
	ClassState         Class = 18
	ClassStatistic     Class = 19
	ClassString        Class = 20
	ClassTimeRange     Class = 21
	ClassTimestamp     Class = 22
	ClassVocabulary    Class = 23
	ClassVocabularySet Class = 24
)

// Source classes
const (
	ClassSource         Class = 1
	ClassSourceMetadata Class = 2
)

// Definition classes
const (
	ClassDefinition            Class = 1
	ClassDefinitionMetadata    Class = 2
	ClassDefinitionDescription Class = 3
	ClassDefinitionWiki        Class = 4
)

// Kind is the (category, class) pair that fully identifies an entity type
type Kind struct {
	Category Category
	Class    Class
}

// Entity is implemented by every stored record
type Entity interface {
	GetUUID() string
	GetHash() []byte
	Kind() Kind
	ToArray() []any
	Valid() bool
}

// DefaultNamespace is used for objects without an explicit namespace
const DefaultNamespace = "main"

// DefaultPriority is assigned to objects created without a priority
const DefaultPriority byte = 1

var objectClassNames = map[Class]string{
	ClassObject:        "object",
	ClassMetadata:      "metadata",
	ClassAssignment:    "assignment",
	ClassBlob:          "blob",
	ClassBoolean:       "boolean",
	ClassDuration:      "duration",
	ClassEvent:         "event",
	ClassGroup:         "group",
	ClassHash:          "hash",
	ClassLog:           "log",
	ClassMessage:       "message",
	ClassMessageQueue:  "message-queue",
	ClassNumber:        "number",
	ClassObservation:   "observation",
	ClassQueue:         "queue",
	ClassReference:     "reference",
	ClassSet:           "set",
	ClassState:         "state",
	ClassStatistic:     "statistic",
	ClassString:        "string",
	ClassTimeRange:     "time-range",
	ClassTimestamp:     "timestamp",
	ClassVocabulary:    "vocabulary",
	ClassVocabularySet: "vocabulary-set",
}

var sourceClassNames = map[Class]string{
	ClassSource:         "source",
	ClassSourceMetadata: "metadata",
}

var definitionClassNames = map[Class]string{
	ClassDefinition:            "definition",
	ClassDefinitionMetadata:    "metadata",
	ClassDefinitionDescription: "description",
	ClassDefinitionWiki:        "wiki",
}

func classNames(c Category) map[Class]string {
	switch c {
	case CategoryObjects:
		return objectClassNames
	case CategorySources:
		return sourceClassNames
	case CategoryDefinitions:
		return definitionClassNames
	}
	return nil
}

// String returns the lower-case category name
func (c Category) String() string {
	switch c {
	case CategoryObjects:
		return "objects"
	case CategorySources:
		return "sources"
	case CategoryDefinitions:
		return "definitions"
	}
	return fmt.Sprintf("category(%d)", byte(c))
}

// ClassName returns the lower-case class name, e.g. "time-range"
func (k Kind) ClassName() string {
	if name, ok := classNames(k.Category)[k.Class]; ok {
		return name
	}
	return fmt.Sprintf("class(%d)", byte(k.Class))
}

// String renders the kind as "category/class"
func (k Kind) String() string {
	return k.Category.String() + "/" + k.ClassName()
}

// ParseCategory resolves a category name
func ParseCategory(name string) (Category, error) {
	switch name {
	case "objects", "object":
		return CategoryObjects, nil
	case "sources", "source":
		return CategorySources, nil
	case "definitions", "definition":
		return CategoryDefinitions, nil
	}
	return 0, newUnknownCategory(name)
}

// ParseKind resolves a class name within a category
func ParseKind(category Category, class string) (Kind, error) {
	for c, name := range classNames(category) {
		if name == class {
			return Kind{Category: category, Class: c}, nil
		}
	}
	return Kind{}, newUnknownClass(category, class)
}

// Kinds lists every known kind of a category in class order
func Kinds(category Category) []Kind {
	names := classNames(category)
	kinds := make([]Kind, 0, len(names))
	for c := Class(1); int(c) <= len(names); c++ {
		kinds = append(kinds, Kind{Category: category, Class: c})
	}
	return kinds
}

// Now returns the current time in Unix nanoseconds, the resolution used for Created
func Now() int64 {
	return time.Now().UnixNano()
}

func createdOrNow(created int64) int64 {
	if created > 0 {
		return created
	}
	return Now()
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
