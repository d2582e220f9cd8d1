// ABOUTME: Definition entities, the vocabulary objects and states refer to
// ABOUTME: Definition plus its metadata, localized descriptions and wiki sections

package entity

import "strings"

// Definition names a type or value in the vocabulary. Its identity is the
// lower-cased id so lookups are case-insensitive.
type Definition struct {
	UUID       string
	ID         string
	ParentUUID string
	SourceUUID string
	Created    int64
	Hash       []byte
}

func NewDefinition(id, parentUUID, sourceUUID string, created int64) *Definition {
	e := &Definition{ID: id, ParentUUID: parentUUID, SourceUUID: sourceUUID, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

func GenerateDefinitionUUID(id string) string {
	if id == "" {
		return ""
	}
	return HashString(strings.ToLower(id))
}

func (e *Definition) Refresh() {
	e.UUID = GenerateDefinitionUUID(e.ID)
	e.Hash = e.ComputeHash()
}

func (e *Definition) ComputeHash() []byte {
	return content(e.UUID, e.ParentUUID, e.SourceUUID, e.Created)
}

func (e *Definition) GetUUID() string { return e.UUID }
func (e *Definition) GetHash() []byte { return e.Hash }
func (e *Definition) Kind() Kind      { return Kind{CategoryDefinitions, ClassDefinition} }
func (e *Definition) Valid() bool {
	return e.UUID != "" && e.ID != "" && e.SourceUUID != "" && e.Created > 0
}

func (e *Definition) Clone() *Definition {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *Definition) ToArray() []any {
	return []any{e.ID, e.ParentUUID, e.SourceUUID, e.Created}
}

func DefinitionFromArray(values []any) (*Definition, error) {
	r, err := newFieldReader(Kind{CategoryDefinitions, ClassDefinition}, values, 4)
	if err != nil {
		return nil, err
	}
	e := &Definition{ID: r.str(0), ParentUUID: r.str(1), SourceUUID: r.str(2), Created: r.int64(3)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}

// DefinitionMetadata attaches a named value to a definition
type DefinitionMetadata struct {
	UUID           string
	DefinitionUUID string
	Name           string
	Value          string
	SourceUUID     string
	Created        int64
	Hash           []byte
}

func NewDefinitionMetadata(definitionUUID, name, value, sourceUUID string, created int64) *DefinitionMetadata {
	e := &DefinitionMetadata{DefinitionUUID: definitionUUID, Name: name, Value: value, SourceUUID: sourceUUID, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

func GenerateDefinitionMetadataUUID(definitionUUID, name string) string {
	if definitionUUID == "" || name == "" {
		return ""
	}
	return identity(definitionUUID, name)
}

func (e *DefinitionMetadata) Refresh() {
	e.UUID = GenerateDefinitionMetadataUUID(e.DefinitionUUID, e.Name)
	e.Hash = e.ComputeHash()
}

func (e *DefinitionMetadata) ComputeHash() []byte {
	return content(e.DefinitionUUID, e.Name, e.Value, e.SourceUUID, e.Created)
}

func (e *DefinitionMetadata) GetUUID() string { return e.UUID }
func (e *DefinitionMetadata) GetHash() []byte { return e.Hash }
func (e *DefinitionMetadata) Kind() Kind {
	return Kind{CategoryDefinitions, ClassDefinitionMetadata}
}
func (e *DefinitionMetadata) Valid() bool {
	return e.UUID != "" && e.DefinitionUUID != "" && e.Name != "" && e.SourceUUID != "" && e.Created > 0
}

func (e *DefinitionMetadata) Clone() *DefinitionMetadata {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *DefinitionMetadata) ToArray() []any {
	return []any{e.DefinitionUUID, e.Name, e.Value, e.SourceUUID, e.Created}
}

func DefinitionMetadataFromArray(values []any) (*DefinitionMetadata, error) {
	r, err := newFieldReader(Kind{CategoryDefinitions, ClassDefinitionMetadata}, values, 5)
	if err != nil {
		return nil, err
	}
	e := &DefinitionMetadata{DefinitionUUID: r.str(0), Name: r.str(1), Value: r.str(2), SourceUUID: r.str(3), Created: r.int64(4)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}

// DefinitionDescription is the description of a definition in one language
type DefinitionDescription struct {
	UUID           string
	DefinitionUUID string
	LanguageCode   string
	Text           string
	SourceUUID     string
	Created        int64
	Hash           []byte
}

func NewDefinitionDescription(definitionUUID, languageCode, text, sourceUUID string, created int64) *DefinitionDescription {
	e := &DefinitionDescription{DefinitionUUID: definitionUUID, LanguageCode: languageCode, Text: text, SourceUUID: sourceUUID, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

func GenerateDefinitionDescriptionUUID(definitionUUID, languageCode string) string {
	if definitionUUID == "" || languageCode == "" {
		return ""
	}
	return identity(definitionUUID, languageCode)
}

func (e *DefinitionDescription) Refresh() {
	e.UUID = GenerateDefinitionDescriptionUUID(e.DefinitionUUID, e.LanguageCode)
	e.Hash = e.ComputeHash()
}

func (e *DefinitionDescription) ComputeHash() []byte {
	return content(e.DefinitionUUID, e.LanguageCode, e.Text, e.SourceUUID, e.Created)
}

func (e *DefinitionDescription) GetUUID() string { return e.UUID }
func (e *DefinitionDescription) GetHash() []byte { return e.Hash }
func (e *DefinitionDescription) Kind() Kind {
	return Kind{CategoryDefinitions, ClassDefinitionDescription}
}
func (e *DefinitionDescription) Valid() bool {
	return e.UUID != "" && e.DefinitionUUID != "" && e.LanguageCode != "" && e.SourceUUID != "" && e.Created > 0
}

func (e *DefinitionDescription) Clone() *DefinitionDescription {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *DefinitionDescription) ToArray() []any {
	return []any{e.DefinitionUUID, e.LanguageCode, e.Text, e.SourceUUID, e.Created}
}

func DefinitionDescriptionFromArray(values []any) (*DefinitionDescription, error) {
	r, err := newFieldReader(Kind{CategoryDefinitions, ClassDefinitionDescription}, values, 5)
	if err != nil {
		return nil, err
	}
	e := &DefinitionDescription{DefinitionUUID: r.str(0), LanguageCode: r.str(1), Text: r.str(2), SourceUUID: r.str(3), Created: r.int64(4)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}

// DefinitionWiki is one documentation section of a definition
type DefinitionWiki struct {
	UUID           string
	DefinitionUUID string
	Section        string
	Text           string
	SourceUUID     string
	Created        int64
	Hash           []byte
}

func NewDefinitionWiki(definitionUUID, section, text, sourceUUID string, created int64) *DefinitionWiki {
	e := &DefinitionWiki{DefinitionUUID: definitionUUID, Section: section, Text: text, SourceUUID: sourceUUID, Created: createdOrNow(created)}
	e.Refresh()
	return e
}

func GenerateDefinitionWikiUUID(definitionUUID, section string) string {
	if definitionUUID == "" || section == "" {
		return ""
	}
	return identity(definitionUUID, section)
}

func (e *DefinitionWiki) Refresh() {
	e.UUID = GenerateDefinitionWikiUUID(e.DefinitionUUID, e.Section)
	e.Hash = e.ComputeHash()
}

func (e *DefinitionWiki) ComputeHash() []byte {
	return content(e.DefinitionUUID, e.Section, e.Text, e.SourceUUID, e.Created)
}

func (e *DefinitionWiki) GetUUID() string { return e.UUID }
func (e *DefinitionWiki) GetHash() []byte { return e.Hash }
func (e *DefinitionWiki) Kind() Kind      { return Kind{CategoryDefinitions, ClassDefinitionWiki} }
func (e *DefinitionWiki) Valid() bool {
	return e.UUID != "" && e.DefinitionUUID != "" && e.Section != "" && e.SourceUUID != "" && e.Created > 0
}

func (e *DefinitionWiki) Clone() *DefinitionWiki {
	c := *e
	c.Hash = cloneBytes(e.Hash)
	return &c
}

func (e *DefinitionWiki) ToArray() []any {
	return []any{e.DefinitionUUID, e.Section, e.Text, e.SourceUUID, e.Created}
}

func DefinitionWikiFromArray(values []any) (*DefinitionWiki, error) {
	r, err := newFieldReader(Kind{CategoryDefinitions, ClassDefinitionWiki}, values, 5)
	if err != nil {
		return nil, err
	}
	e := &DefinitionWiki{DefinitionUUID: r.str(0), Section: r.str(1), Text: r.str(2), SourceUUID: r.str(3), Created: r.int64(4)}
	if err := r.err(); err != nil {
		return nil, err
	}
	e.Refresh()
	return e, nil
}
