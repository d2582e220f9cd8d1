package entity

import (
	"github.com/cockroachdb/errors"
)

// Decoder builds an entity from its wire array
type Decoder func(values []any) (Entity, error)

func decoder[T Entity](fn func([]any) (T, error)) Decoder {
	return func(values []any) (Entity, error) {
		e, err := fn(values)
		if err != nil {
			return nil, err
		}
		return e, nil
	}
}

var decoders = map[Kind]Decoder{
	{CategoryObjects, ClassObject}:        decoder(ObjectFromArray),
	{CategoryObjects, ClassMetadata}:      decoder(MetadataFromArray),
	{CategoryObjects, ClassAssignment}:    decoder(AssignmentFromArray),
	{CategoryObjects, ClassBlob}:          decoder(BlobFromArray),
	{CategoryObjects, ClassBoolean}:       decoder(BooleanFromArray),
	{CategoryObjects, ClassDuration}:      decoder(DurationFromArray),
	{CategoryObjects, ClassEvent}:         decoder(EventFromArray),
	{CategoryObjects, ClassGroup}:         decoder(GroupFromArray),
	{CategoryObjects, ClassHash}:          decoder(HashFromArray),
	{CategoryObjects, ClassLog}:           decoder(LogFromArray),
	{CategoryObjects, ClassMessage}:       decoder(MessageFromArray),
	{CategoryObjects, ClassMessageQueue}:  decoder(MessageQueueFromArray),
	{CategoryObjects, ClassNumber}:        decoder(NumberFromArray),
	{CategoryObjects, ClassObservation}:   decoder(ObservationFromArray),
	{CategoryObjects, ClassQueue}:         decoder(QueueFromArray),
	{CategoryObjects, ClassReference}:     decoder(ReferenceFromArray),
	{CategoryObjects, ClassSet}:           decoder(SetFromArray),
	{CategoryObjects, ClassState}:         decoder(StateFromArray),
	{CategoryObjects, ClassStatistic}:     decoder(StatisticFromArray),
	{CategoryObjects, ClassString}:        decoder(StringFromArray),
	{CategoryObjects, ClassTimeRange}:     decoder(TimeRangeFromArray),
	{CategoryObjects, ClassTimestamp}:     decoder(TimestampFromArray),
	{CategoryObjects, ClassVocabulary}:    decoder(VocabularyFromArray),
	{CategoryObjects, ClassVocabularySet}: decoder(VocabularySetFromArray),

	{CategorySources, ClassSource}:         decoder(SourceFromArray),
	{CategorySources, ClassSourceMetadata}: decoder(SourceMetadataFromArray),

	{CategoryDefinitions, ClassDefinition}:            decoder(DefinitionFromArray),
	{CategoryDefinitions, ClassDefinitionMetadata}:    decoder(DefinitionMetadataFromArray),
	{CategoryDefinitions, ClassDefinitionDescription}: decoder(DefinitionDescriptionFromArray),
	{CategoryDefinitions, ClassDefinitionWiki}:        decoder(DefinitionWikiFromArray),
}

// DecodeArray decodes a single wire array of the given kind
func DecodeArray(kind Kind, values []any) (Entity, error) {
	dec, ok := decoders[kind]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownClass, "%s", kind)
	}
	return dec(values)
}

// DecodeArrays decodes every array of a kind. Arrays that fail to decode or
// decode to an invalid entity are skipped and counted.
func DecodeArrays(kind Kind, arrays [][]any) (entities []Entity, skipped int, err error) {
	dec, ok := decoders[kind]
	if !ok {
		return nil, len(arrays), errors.Wrapf(ErrUnknownClass, "%s", kind)
	}
	for _, values := range arrays {
		e, derr := dec(values)
		if derr != nil || !e.Valid() {
			skipped++
			continue
		}
		entities = append(entities, e)
	}
	return entities, skipped, nil
}
