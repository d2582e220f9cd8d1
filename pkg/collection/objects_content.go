// ABOUTME: Typed accessors for each content store of an ObjectCollection
// ABOUTME: Add, Get, Query and array export per entity class

package collection

import (
	"github.com/trakhound/entitystore/pkg/entity"
)

// Metadata

func (c *ObjectCollection) AddMetadata(e *entity.Metadata) bool { return c.metadata.Add(e) }
func (c *ObjectCollection) AddMetadataEntries(es []*entity.Metadata) int {
	return c.metadata.AddMany(es)
}
func (c *ObjectCollection) GetMetadata(uuid string) *entity.Metadata { return c.metadata.Get(uuid) }
func (c *ObjectCollection) GetMetadataEntries(uuids []string) []*entity.Metadata {
	return c.metadata.GetMany(uuids)
}
func (c *ObjectCollection) GetMetadataArrays() [][]any   { return c.metadata.Arrays() }
func (c *ObjectCollection) Metadata() []*entity.Metadata { return c.metadata.All() }

// QueryMetadataByEntityUUID returns the metadata named name on an entity.
// The slot uuid is derived from (entityUUID, name) so no index is consulted.
func (c *ObjectCollection) QueryMetadataByEntityUUID(entityUUID, name string) *entity.Metadata {
	return c.metadata.Get(entity.GenerateMetadataUUID(entityUUID, name))
}

// QueryAllMetadataByEntityUUID returns every metadata entry attached to an entity
func (c *ObjectCollection) QueryAllMetadataByEntityUUID(entityUUID string) []*entity.Metadata {
	return c.metadata.Query(IndexEntity, entityUUID)
}

func (c *ObjectCollection) QueryAllMetadataByEntityUUIDs(entityUUIDs []string) []*entity.Metadata {
	return c.metadata.QueryMany(IndexEntity, entityUUIDs)
}

// Assignments

func (c *ObjectCollection) AddAssignment(e *entity.Assignment) bool { return c.assignments.Add(e) }
func (c *ObjectCollection) AddAssignments(es []*entity.Assignment) int {
	return c.assignments.AddMany(es)
}
func (c *ObjectCollection) GetAssignment(uuid string) *entity.Assignment {
	return c.assignments.Get(uuid)
}
func (c *ObjectCollection) GetAssignments(uuids []string) []*entity.Assignment {
	return c.assignments.GetMany(uuids)
}
func (c *ObjectCollection) GetAssignmentArrays() [][]any      { return c.assignments.Arrays() }
func (c *ObjectCollection) Assignments() []*entity.Assignment { return c.assignments.All() }

func (c *ObjectCollection) QueryAssignmentsByAssigneeUUID(assigneeUUID string) []*entity.Assignment {
	return c.assignments.Query(IndexAssignee, assigneeUUID)
}

func (c *ObjectCollection) QueryAssignmentsByAssigneeUUIDs(assigneeUUIDs []string) []*entity.Assignment {
	return c.assignments.QueryMany(IndexAssignee, assigneeUUIDs)
}

func (c *ObjectCollection) QueryAssignmentsByMemberUUID(memberUUID string) []*entity.Assignment {
	return c.assignments.Query(IndexMember, memberUUID)
}

func (c *ObjectCollection) QueryAssignmentsByMemberUUIDs(memberUUIDs []string) []*entity.Assignment {
	return c.assignments.QueryMany(IndexMember, memberUUIDs)
}

// Groups

func (c *ObjectCollection) AddGroup(e *entity.Group) bool            { return c.groups.Add(e) }
func (c *ObjectCollection) AddGroups(es []*entity.Group) int         { return c.groups.AddMany(es) }
func (c *ObjectCollection) GetGroup(uuid string) *entity.Group       { return c.groups.Get(uuid) }
func (c *ObjectCollection) GetGroups(uuids []string) []*entity.Group { return c.groups.GetMany(uuids) }
func (c *ObjectCollection) GetGroupArrays() [][]any                  { return c.groups.Arrays() }
func (c *ObjectCollection) Groups() []*entity.Group                  { return c.groups.All() }

func (c *ObjectCollection) QueryGroupsByGroupUUID(groupUUID string) []*entity.Group {
	return c.groups.Query(IndexGroup, groupUUID)
}

func (c *ObjectCollection) QueryGroupsByGroupUUIDs(groupUUIDs []string) []*entity.Group {
	return c.groups.QueryMany(IndexGroup, groupUUIDs)
}

func (c *ObjectCollection) QueryGroupsByMemberUUID(memberUUID string) []*entity.Group {
	return c.groups.Query(IndexMember, memberUUID)
}

func (c *ObjectCollection) QueryGroupsByMemberUUIDs(memberUUIDs []string) []*entity.Group {
	return c.groups.QueryMany(IndexMember, memberUUIDs)
}

// Queues

func (c *ObjectCollection) AddQueue(e *entity.Queue) bool            { return c.queues.Add(e) }
func (c *ObjectCollection) AddQueues(es []*entity.Queue) int         { return c.queues.AddMany(es) }
func (c *ObjectCollection) GetQueue(uuid string) *entity.Queue       { return c.queues.Get(uuid) }
func (c *ObjectCollection) GetQueues(uuids []string) []*entity.Queue { return c.queues.GetMany(uuids) }
func (c *ObjectCollection) GetQueueArrays() [][]any                  { return c.queues.Arrays() }
func (c *ObjectCollection) Queues() []*entity.Queue                  { return c.queues.All() }

func (c *ObjectCollection) QueryQueuesByQueueUUID(queueUUID string) []*entity.Queue {
	return c.queues.Query(IndexQueue, queueUUID)
}

func (c *ObjectCollection) QueryQueuesByQueueUUIDs(queueUUIDs []string) []*entity.Queue {
	return c.queues.QueryMany(IndexQueue, queueUUIDs)
}

func (c *ObjectCollection) QueryQueuesByMemberUUID(memberUUID string) []*entity.Queue {
	return c.queues.Query(IndexMember, memberUUID)
}

func (c *ObjectCollection) QueryQueuesByMemberUUIDs(memberUUIDs []string) []*entity.Queue {
	return c.queues.QueryMany(IndexMember, memberUUIDs)
}

// Blobs

func (c *ObjectCollection) AddBlob(e *entity.Blob) bool            { return c.blobs.Add(e) }
func (c *ObjectCollection) AddBlobs(es []*entity.Blob) int         { return c.blobs.AddMany(es) }
func (c *ObjectCollection) GetBlob(uuid string) *entity.Blob       { return c.blobs.Get(uuid) }
func (c *ObjectCollection) GetBlobs(uuids []string) []*entity.Blob { return c.blobs.GetMany(uuids) }
func (c *ObjectCollection) GetBlobArrays() [][]any                 { return c.blobs.Arrays() }
func (c *ObjectCollection) Blobs() []*entity.Blob                  { return c.blobs.All() }

// QueryBlobByObjectUUID returns the Blob currently attached to an object
func (c *ObjectCollection) QueryBlobByObjectUUID(objectUUID string) *entity.Blob {
	return c.blobs.QueryOne(IndexObject, objectUUID)
}

func (c *ObjectCollection) QueryBlobsByObjectUUIDs(objectUUIDs []string) []*entity.Blob {
	return c.blobs.QueryMany(IndexObject, objectUUIDs)
}

// Booleans

func (c *ObjectCollection) AddBoolean(e *entity.Boolean) bool      { return c.booleans.Add(e) }
func (c *ObjectCollection) AddBooleans(es []*entity.Boolean) int   { return c.booleans.AddMany(es) }
func (c *ObjectCollection) GetBoolean(uuid string) *entity.Boolean { return c.booleans.Get(uuid) }
func (c *ObjectCollection) GetBooleans(uuids []string) []*entity.Boolean {
	return c.booleans.GetMany(uuids)
}
func (c *ObjectCollection) GetBooleanArrays() [][]any   { return c.booleans.Arrays() }
func (c *ObjectCollection) Booleans() []*entity.Boolean { return c.booleans.All() }

// QueryBooleanByObjectUUID returns the Boolean currently attached to an object
func (c *ObjectCollection) QueryBooleanByObjectUUID(objectUUID string) *entity.Boolean {
	return c.booleans.QueryOne(IndexObject, objectUUID)
}

func (c *ObjectCollection) QueryBooleansByObjectUUIDs(objectUUIDs []string) []*entity.Boolean {
	return c.booleans.QueryMany(IndexObject, objectUUIDs)
}

// Durations

func (c *ObjectCollection) AddDuration(e *entity.Duration) bool      { return c.durations.Add(e) }
func (c *ObjectCollection) AddDurations(es []*entity.Duration) int   { return c.durations.AddMany(es) }
func (c *ObjectCollection) GetDuration(uuid string) *entity.Duration { return c.durations.Get(uuid) }
func (c *ObjectCollection) GetDurations(uuids []string) []*entity.Duration {
	return c.durations.GetMany(uuids)
}
func (c *ObjectCollection) GetDurationArrays() [][]any    { return c.durations.Arrays() }
func (c *ObjectCollection) Durations() []*entity.Duration { return c.durations.All() }

// QueryDurationByObjectUUID returns the Duration currently attached to an object
func (c *ObjectCollection) QueryDurationByObjectUUID(objectUUID string) *entity.Duration {
	return c.durations.QueryOne(IndexObject, objectUUID)
}

func (c *ObjectCollection) QueryDurationsByObjectUUIDs(objectUUIDs []string) []*entity.Duration {
	return c.durations.QueryMany(IndexObject, objectUUIDs)
}

// MessageQueues

func (c *ObjectCollection) AddMessageQueue(e *entity.MessageQueue) bool { return c.messageQueues.Add(e) }
func (c *ObjectCollection) AddMessageQueues(es []*entity.MessageQueue) int {
	return c.messageQueues.AddMany(es)
}
func (c *ObjectCollection) GetMessageQueue(uuid string) *entity.MessageQueue {
	return c.messageQueues.Get(uuid)
}
func (c *ObjectCollection) GetMessageQueues(uuids []string) []*entity.MessageQueue {
	return c.messageQueues.GetMany(uuids)
}
func (c *ObjectCollection) GetMessageQueueArrays() [][]any        { return c.messageQueues.Arrays() }
func (c *ObjectCollection) MessageQueues() []*entity.MessageQueue { return c.messageQueues.All() }

// QueryMessageQueueByObjectUUID returns the MessageQueue currently attached to an object
func (c *ObjectCollection) QueryMessageQueueByObjectUUID(objectUUID string) *entity.MessageQueue {
	return c.messageQueues.QueryOne(IndexObject, objectUUID)
}

func (c *ObjectCollection) QueryMessageQueuesByObjectUUIDs(objectUUIDs []string) []*entity.MessageQueue {
	return c.messageQueues.QueryMany(IndexObject, objectUUIDs)
}

// Numbers

func (c *ObjectCollection) AddNumber(e *entity.Number) bool      { return c.numbers.Add(e) }
func (c *ObjectCollection) AddNumbers(es []*entity.Number) int   { return c.numbers.AddMany(es) }
func (c *ObjectCollection) GetNumber(uuid string) *entity.Number { return c.numbers.Get(uuid) }
func (c *ObjectCollection) GetNumbers(uuids []string) []*entity.Number {
	return c.numbers.GetMany(uuids)
}
func (c *ObjectCollection) GetNumberArrays() [][]any  { return c.numbers.Arrays() }
func (c *ObjectCollection) Numbers() []*entity.Number { return c.numbers.All() }

// QueryNumberByObjectUUID returns the Number currently attached to an object
func (c *ObjectCollection) QueryNumberByObjectUUID(objectUUID string) *entity.Number {
	return c.numbers.QueryOne(IndexObject, objectUUID)
}

func (c *ObjectCollection) QueryNumbersByObjectUUIDs(objectUUIDs []string) []*entity.Number {
	return c.numbers.QueryMany(IndexObject, objectUUIDs)
}

// References

func (c *ObjectCollection) AddReference(e *entity.Reference) bool      { return c.references.Add(e) }
func (c *ObjectCollection) AddReferences(es []*entity.Reference) int   { return c.references.AddMany(es) }
func (c *ObjectCollection) GetReference(uuid string) *entity.Reference { return c.references.Get(uuid) }
func (c *ObjectCollection) GetReferences(uuids []string) []*entity.Reference {
	return c.references.GetMany(uuids)
}
func (c *ObjectCollection) GetReferenceArrays() [][]any     { return c.references.Arrays() }
func (c *ObjectCollection) References() []*entity.Reference { return c.references.All() }

// QueryReferenceByObjectUUID returns the Reference currently attached to an object
func (c *ObjectCollection) QueryReferenceByObjectUUID(objectUUID string) *entity.Reference {
	return c.references.QueryOne(IndexObject, objectUUID)
}

func (c *ObjectCollection) QueryReferencesByObjectUUIDs(objectUUIDs []string) []*entity.Reference {
	return c.references.QueryMany(IndexObject, objectUUIDs)
}

// Strings

func (c *ObjectCollection) AddString(e *entity.String) bool      { return c.stringValues.Add(e) }
func (c *ObjectCollection) AddStrings(es []*entity.String) int   { return c.stringValues.AddMany(es) }
func (c *ObjectCollection) GetString(uuid string) *entity.String { return c.stringValues.Get(uuid) }
func (c *ObjectCollection) GetStrings(uuids []string) []*entity.String {
	return c.stringValues.GetMany(uuids)
}
func (c *ObjectCollection) GetStringArrays() [][]any  { return c.stringValues.Arrays() }
func (c *ObjectCollection) Strings() []*entity.String { return c.stringValues.All() }

// QueryStringByObjectUUID returns the String currently attached to an object
func (c *ObjectCollection) QueryStringByObjectUUID(objectUUID string) *entity.String {
	return c.stringValues.QueryOne(IndexObject, objectUUID)
}

func (c *ObjectCollection) QueryStringsByObjectUUIDs(objectUUIDs []string) []*entity.String {
	return c.stringValues.QueryMany(IndexObject, objectUUIDs)
}

// TimeRanges

func (c *ObjectCollection) AddTimeRange(e *entity.TimeRange) bool      { return c.timeRanges.Add(e) }
func (c *ObjectCollection) AddTimeRanges(es []*entity.TimeRange) int   { return c.timeRanges.AddMany(es) }
func (c *ObjectCollection) GetTimeRange(uuid string) *entity.TimeRange { return c.timeRanges.Get(uuid) }
func (c *ObjectCollection) GetTimeRanges(uuids []string) []*entity.TimeRange {
	return c.timeRanges.GetMany(uuids)
}
func (c *ObjectCollection) GetTimeRangeArrays() [][]any     { return c.timeRanges.Arrays() }
func (c *ObjectCollection) TimeRanges() []*entity.TimeRange { return c.timeRanges.All() }

// QueryTimeRangeByObjectUUID returns the TimeRange currently attached to an object
func (c *ObjectCollection) QueryTimeRangeByObjectUUID(objectUUID string) *entity.TimeRange {
	return c.timeRanges.QueryOne(IndexObject, objectUUID)
}

func (c *ObjectCollection) QueryTimeRangesByObjectUUIDs(objectUUIDs []string) []*entity.TimeRange {
	return c.timeRanges.QueryMany(IndexObject, objectUUIDs)
}

// Timestamps

func (c *ObjectCollection) AddTimestamp(e *entity.Timestamp) bool      { return c.timestamps.Add(e) }
func (c *ObjectCollection) AddTimestamps(es []*entity.Timestamp) int   { return c.timestamps.AddMany(es) }
func (c *ObjectCollection) GetTimestamp(uuid string) *entity.Timestamp { return c.timestamps.Get(uuid) }
func (c *ObjectCollection) GetTimestamps(uuids []string) []*entity.Timestamp {
	return c.timestamps.GetMany(uuids)
}
func (c *ObjectCollection) GetTimestampArrays() [][]any     { return c.timestamps.Arrays() }
func (c *ObjectCollection) Timestamps() []*entity.Timestamp { return c.timestamps.All() }

// QueryTimestampByObjectUUID returns the Timestamp currently attached to an object
func (c *ObjectCollection) QueryTimestampByObjectUUID(objectUUID string) *entity.Timestamp {
	return c.timestamps.QueryOne(IndexObject, objectUUID)
}

func (c *ObjectCollection) QueryTimestampsByObjectUUIDs(objectUUIDs []string) []*entity.Timestamp {
	return c.timestamps.QueryMany(IndexObject, objectUUIDs)
}

// Vocabularies

func (c *ObjectCollection) AddVocabulary(e *entity.Vocabulary) bool { return c.vocabularies.Add(e) }
func (c *ObjectCollection) AddVocabularies(es []*entity.Vocabulary) int {
	return c.vocabularies.AddMany(es)
}
func (c *ObjectCollection) GetVocabulary(uuid string) *entity.Vocabulary {
	return c.vocabularies.Get(uuid)
}
func (c *ObjectCollection) GetVocabularies(uuids []string) []*entity.Vocabulary {
	return c.vocabularies.GetMany(uuids)
}
func (c *ObjectCollection) GetVocabularyArrays() [][]any       { return c.vocabularies.Arrays() }
func (c *ObjectCollection) Vocabularies() []*entity.Vocabulary { return c.vocabularies.All() }

// QueryVocabularyByObjectUUID returns the Vocabulary currently attached to an object
func (c *ObjectCollection) QueryVocabularyByObjectUUID(objectUUID string) *entity.Vocabulary {
	return c.vocabularies.QueryOne(IndexObject, objectUUID)
}

func (c *ObjectCollection) QueryVocabulariesByObjectUUIDs(objectUUIDs []string) []*entity.Vocabulary {
	return c.vocabularies.QueryMany(IndexObject, objectUUIDs)
}

// Events

func (c *ObjectCollection) AddEvent(e *entity.Event) bool            { return c.events.Add(e) }
func (c *ObjectCollection) AddEvents(es []*entity.Event) int         { return c.events.AddMany(es) }
func (c *ObjectCollection) GetEvent(uuid string) *entity.Event       { return c.events.Get(uuid) }
func (c *ObjectCollection) GetEvents(uuids []string) []*entity.Event { return c.events.GetMany(uuids) }
func (c *ObjectCollection) GetEventArrays() [][]any                  { return c.events.Arrays() }
func (c *ObjectCollection) Events() []*entity.Event                  { return c.events.All() }

func (c *ObjectCollection) QueryEventsByObjectUUID(objectUUID string) []*entity.Event {
	return c.events.Query(IndexObject, objectUUID)
}

func (c *ObjectCollection) QueryEventsByObjectUUIDs(objectUUIDs []string) []*entity.Event {
	return c.events.QueryMany(IndexObject, objectUUIDs)
}

// Hashes

func (c *ObjectCollection) AddHash(e *entity.Hash) bool             { return c.hashes.Add(e) }
func (c *ObjectCollection) AddHashes(es []*entity.Hash) int         { return c.hashes.AddMany(es) }
func (c *ObjectCollection) GetHash(uuid string) *entity.Hash        { return c.hashes.Get(uuid) }
func (c *ObjectCollection) GetHashes(uuids []string) []*entity.Hash { return c.hashes.GetMany(uuids) }
func (c *ObjectCollection) GetHashArrays() [][]any                  { return c.hashes.Arrays() }
func (c *ObjectCollection) Hashes() []*entity.Hash                  { return c.hashes.All() }

func (c *ObjectCollection) QueryHashesByObjectUUID(objectUUID string) []*entity.Hash {
	return c.hashes.Query(IndexObject, objectUUID)
}

func (c *ObjectCollection) QueryHashesByObjectUUIDs(objectUUIDs []string) []*entity.Hash {
	return c.hashes.QueryMany(IndexObject, objectUUIDs)
}

// Logs

func (c *ObjectCollection) AddLog(e *entity.Log) bool            { return c.logs.Add(e) }
func (c *ObjectCollection) AddLogs(es []*entity.Log) int         { return c.logs.AddMany(es) }
func (c *ObjectCollection) GetLog(uuid string) *entity.Log       { return c.logs.Get(uuid) }
func (c *ObjectCollection) GetLogs(uuids []string) []*entity.Log { return c.logs.GetMany(uuids) }
func (c *ObjectCollection) GetLogArrays() [][]any                { return c.logs.Arrays() }
func (c *ObjectCollection) Logs() []*entity.Log                  { return c.logs.All() }

func (c *ObjectCollection) QueryLogsByObjectUUID(objectUUID string) []*entity.Log {
	return c.logs.Query(IndexObject, objectUUID)
}

func (c *ObjectCollection) QueryLogsByObjectUUIDs(objectUUIDs []string) []*entity.Log {
	return c.logs.QueryMany(IndexObject, objectUUIDs)
}

// Messages

func (c *ObjectCollection) AddMessage(e *entity.Message) bool      { return c.messages.Add(e) }
func (c *ObjectCollection) AddMessages(es []*entity.Message) int   { return c.messages.AddMany(es) }
func (c *ObjectCollection) GetMessage(uuid string) *entity.Message { return c.messages.Get(uuid) }
func (c *ObjectCollection) GetMessages(uuids []string) []*entity.Message {
	return c.messages.GetMany(uuids)
}
func (c *ObjectCollection) GetMessageArrays() [][]any   { return c.messages.Arrays() }
func (c *ObjectCollection) Messages() []*entity.Message { return c.messages.All() }

func (c *ObjectCollection) QueryMessagesByObjectUUID(objectUUID string) []*entity.Message {
	return c.messages.Query(IndexObject, objectUUID)
}

func (c *ObjectCollection) QueryMessagesByObjectUUIDs(objectUUIDs []string) []*entity.Message {
	return c.messages.QueryMany(IndexObject, objectUUIDs)
}

// Observations

func (c *ObjectCollection) AddObservation(e *entity.Observation) bool { return c.observations.Add(e) }
func (c *ObjectCollection) AddObservations(es []*entity.Observation) int {
	return c.observations.AddMany(es)
}
func (c *ObjectCollection) GetObservation(uuid string) *entity.Observation {
	return c.observations.Get(uuid)
}
func (c *ObjectCollection) GetObservations(uuids []string) []*entity.Observation {
	return c.observations.GetMany(uuids)
}
func (c *ObjectCollection) GetObservationArrays() [][]any       { return c.observations.Arrays() }
func (c *ObjectCollection) Observations() []*entity.Observation { return c.observations.All() }

func (c *ObjectCollection) QueryObservationsByObjectUUID(objectUUID string) []*entity.Observation {
	return c.observations.Query(IndexObject, objectUUID)
}

func (c *ObjectCollection) QueryObservationsByObjectUUIDs(objectUUIDs []string) []*entity.Observation {
	return c.observations.QueryMany(IndexObject, objectUUIDs)
}

// Sets

func (c *ObjectCollection) AddSet(e *entity.Set) bool            { return c.sets.Add(e) }
func (c *ObjectCollection) AddSets(es []*entity.Set) int         { return c.sets.AddMany(es) }
func (c *ObjectCollection) GetSet(uuid string) *entity.Set       { return c.sets.Get(uuid) }
func (c *ObjectCollection) GetSets(uuids []string) []*entity.Set { return c.sets.GetMany(uuids) }
func (c *ObjectCollection) GetSetArrays() [][]any                { return c.sets.Arrays() }
func (c *ObjectCollection) Sets() []*entity.Set                  { return c.sets.All() }

func (c *ObjectCollection) QuerySetsByObjectUUID(objectUUID string) []*entity.Set {
	return c.sets.Query(IndexObject, objectUUID)
}

func (c *ObjectCollection) QuerySetsByObjectUUIDs(objectUUIDs []string) []*entity.Set {
	return c.sets.QueryMany(IndexObject, objectUUIDs)
}

// States

func (c *ObjectCollection) AddState(e *entity.State) bool            { return c.states.Add(e) }
func (c *ObjectCollection) AddStates(es []*entity.State) int         { return c.states.AddMany(es) }
func (c *ObjectCollection) GetState(uuid string) *entity.State       { return c.states.Get(uuid) }
func (c *ObjectCollection) GetStates(uuids []string) []*entity.State { return c.states.GetMany(uuids) }
func (c *ObjectCollection) GetStateArrays() [][]any                  { return c.states.Arrays() }
func (c *ObjectCollection) States() []*entity.State                  { return c.states.All() }

func (c *ObjectCollection) QueryStatesByObjectUUID(objectUUID string) []*entity.State {
	return c.states.Query(IndexObject, objectUUID)
}

func (c *ObjectCollection) QueryStatesByObjectUUIDs(objectUUIDs []string) []*entity.State {
	return c.states.QueryMany(IndexObject, objectUUIDs)
}

// Statistics

func (c *ObjectCollection) AddStatistic(e *entity.Statistic) bool      { return c.statistics.Add(e) }
func (c *ObjectCollection) AddStatistics(es []*entity.Statistic) int   { return c.statistics.AddMany(es) }
func (c *ObjectCollection) GetStatistic(uuid string) *entity.Statistic { return c.statistics.Get(uuid) }
func (c *ObjectCollection) GetStatistics(uuids []string) []*entity.Statistic {
	return c.statistics.GetMany(uuids)
}
func (c *ObjectCollection) GetStatisticArrays() [][]any     { return c.statistics.Arrays() }
func (c *ObjectCollection) Statistics() []*entity.Statistic { return c.statistics.All() }

func (c *ObjectCollection) QueryStatisticsByObjectUUID(objectUUID string) []*entity.Statistic {
	return c.statistics.Query(IndexObject, objectUUID)
}

func (c *ObjectCollection) QueryStatisticsByObjectUUIDs(objectUUIDs []string) []*entity.Statistic {
	return c.statistics.QueryMany(IndexObject, objectUUIDs)
}

// VocabularySets

func (c *ObjectCollection) AddVocabularySet(e *entity.VocabularySet) bool {
	return c.vocabularySets.Add(e)
}
func (c *ObjectCollection) AddVocabularySets(es []*entity.VocabularySet) int {
	return c.vocabularySets.AddMany(es)
}
func (c *ObjectCollection) GetVocabularySet(uuid string) *entity.VocabularySet {
	return c.vocabularySets.Get(uuid)
}
func (c *ObjectCollection) GetVocabularySets(uuids []string) []*entity.VocabularySet {
	return c.vocabularySets.GetMany(uuids)
}
func (c *ObjectCollection) GetVocabularySetArrays() [][]any         { return c.vocabularySets.Arrays() }
func (c *ObjectCollection) VocabularySets() []*entity.VocabularySet { return c.vocabularySets.All() }

func (c *ObjectCollection) QueryVocabularySetsByObjectUUID(objectUUID string) []*entity.VocabularySet {
	return c.vocabularySets.Query(IndexObject, objectUUID)
}

func (c *ObjectCollection) QueryVocabularySetsByObjectUUIDs(objectUUIDs []string) []*entity.VocabularySet {
	return c.vocabularySets.QueryMany(IndexObject, objectUUIDs)
}
