// Package server implements the gRPC entity service
package server

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/trakhound/entitystore/internal/fixture"
	"github.com/trakhound/entitystore/internal/logger"
	"github.com/trakhound/entitystore/internal/metrics"
	"github.com/trakhound/entitystore/pkg/collection"
	"github.com/trakhound/entitystore/pkg/entity"
	"github.com/trakhound/entitystore/pkg/query"
	"github.com/trakhound/entitystore/pkg/snapshot"
)

// Version is reported by Health and the CLI
var Version = "1.0.0"

// Options configures a Server
type Options struct {
	Metrics *metrics.Metrics
	Logger  *logger.Logger
	// Snapshots republishes a read snapshot after every write and serves Get from it
	Snapshots bool
}

// Server implements EntityServiceServer over one EntityCollection guarded by
// a read/write lock
type Server struct {
	mu       sync.RWMutex
	entities *collection.EntityCollection
	engine   *query.Engine

	snapshots bool
	current   atomic.Pointer[snapshot.Snapshot]

	metrics   *metrics.Metrics
	log       *logger.Logger
	startTime time.Time
}

// NewServer creates a server with an empty collection
func NewServer(opts Options) *Server {
	if opts.Metrics == nil {
		opts.Metrics = metrics.NewMetrics(prometheus.NewRegistry())
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	entities := collection.NewEntityCollection(collection.Options{})
	s := &Server{
		entities:  entities,
		engine:    query.NewEngine(entities),
		snapshots: opts.Snapshots,
		metrics:   opts.Metrics,
		log:       opts.Logger,
		startTime: time.Now(),
	}
	s.mu.Lock()
	s.refreshLocked()
	s.mu.Unlock()
	return s
}

// Seed loads fixture files into the collection
func (s *Server) Seed(paths []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.refreshLocked()

	for _, path := range paths {
		report, err := fixture.LoadFile(path, s.entities)
		if err != nil {
			return errors.Wrapf(err, "seed %s", path)
		}
		s.log.LogSeed(path, report.Added, report.Skipped)
	}
	return nil
}

// Snapshot returns the latest published snapshot, or nil when snapshots are disabled
func (s *Server) Snapshot() *snapshot.Snapshot {
	return s.current.Load()
}

// refreshLocked updates the entity gauge and republishes the snapshot.
// The write lock must be held.
func (s *Server) refreshLocked() {
	s.metrics.UpdateEntityCounts(s.entities.Stats().ByName())
	if !s.snapshots {
		return
	}
	snap, err := snapshot.Publish(s.entities)
	if err != nil {
		s.log.Error("Snapshot publish failed").Err(err).Send()
		return
	}
	s.current.Store(snap)
	s.metrics.RecordSnapshot()
}

// Publish decodes {category, class, arrays[, targets]} and adds the entities.
// Returns {added, deduplicated, rejected, skipped}.
func (s *Server) Publish(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	start := time.Now()
	resp, kind, added, skipped, err := s.publish(req)

	statusLabel := "success"
	if err != nil {
		statusLabel = "error"
	}
	s.metrics.RecordPublish(statusLabel, time.Since(start))
	s.log.LogPublish(kind.String(), added, skipped, time.Since(start), err)
	return resp, err
}

func (s *Server) publish(req *structpb.Struct) (*structpb.Struct, entity.Kind, int, int, error) {
	kind, err := kindField(req)
	if err != nil {
		return nil, kind, 0, 0, status.Error(codes.InvalidArgument, err.Error())
	}
	arrays, err := arraysField(req, "arrays")
	if err != nil {
		return nil, kind, 0, 0, status.Error(codes.InvalidArgument, err.Error())
	}
	decoded, skipped, err := entity.DecodeArrays(kind, arrays)
	if err != nil {
		return nil, kind, 0, 0, status.Error(codes.InvalidArgument, err.Error())
	}
	asTargets := boolField(req, "targets")

	s.mu.Lock()
	report := s.entities.AddReported(decoded, asTargets)
	if report.Added > 0 {
		s.refreshLocked()
	}
	s.mu.Unlock()

	s.metrics.RecordEntities(kind.Category.String(), kind.ClassName(), report.Added, report.Deduplicated, report.Rejected)
	if report.Deduplicated > 0 || report.Rejected > 0 {
		s.log.CollectionLogger("publish").Debug("Entities dropped").
			Str("kind", kind.String()).
			Int("deduplicated", report.Deduplicated).
			Int("rejected", report.Rejected).
			Send()
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"added":        structpb.NewNumberValue(float64(report.Added)),
		"deduplicated": structpb.NewNumberValue(float64(report.Deduplicated)),
		"rejected":     structpb.NewNumberValue(float64(report.Rejected)),
		"skipped":      structpb.NewNumberValue(float64(skipped)),
	}}, kind, report.Added, skipped, nil
}

// Get returns {entities} for {uuids}. Missing uuids are omitted; NotFound
// when none exist.
func (s *Server) Get(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	s.metrics.RecordQuery("get")

	uuids := stringsField(req, "uuids")
	if len(uuids) == 0 {
		return nil, status.Error(codes.InvalidArgument, "uuids is required")
	}

	var found []entity.Entity
	if snap := s.Snapshot(); snap != nil {
		for _, uuid := range uuids {
			if e := snap.Get(uuid); e != nil {
				found = append(found, e)
			}
		}
	} else {
		s.mu.RLock()
		for _, uuid := range uuids {
			if e := s.entities.GetEntity(uuid); e != nil {
				found = append(found, e)
			}
		}
		s.mu.RUnlock()
	}

	if len(found) == 0 {
		return nil, status.Error(codes.NotFound, "no entities found")
	}
	return encodeEntities(found)
}

// Query returns {entities} of {category, class} listed under {key} in {index}
func (s *Server) Query(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	s.metrics.RecordQuery("query")

	kind, err := kindField(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	index := stringField(req, "index")
	key := stringField(req, "key")
	if index == "" || key == "" {
		return nil, status.Error(codes.InvalidArgument, "index and key are required")
	}

	s.mu.RLock()
	found := s.entities.QueryIndex(kind, index, key)
	s.mu.RUnlock()

	if len(found) == 0 {
		return nil, status.Errorf(codes.NotFound, "no %s under %s=%s", kind, index, key)
	}
	return encodeEntities(found)
}

// Objects returns {entities, total, has_more} for objects matching {path},
// with optional {limit, offset, order_by, descending}
func (s *Server) Objects(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	s.metrics.RecordQuery("objects")

	path := stringField(req, "path")
	if path == "" {
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}
	qb := query.NewQueryBuilder(query.QueryObjects).
		Where(query.FilterPath, path).
		Offset(intField(req, "offset")).
		OrderBy(stringField(req, "order_by"), boolField(req, "descending"))
	if _, ok := req.GetFields()["limit"]; ok {
		qb.Limit(intField(req, "limit"))
	}
	q := qb.Build()

	s.mu.RLock()
	result, err := s.engine.Execute(q)
	s.mu.RUnlock()
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	objects := make([]entity.Entity, len(result.Objects))
	for i, o := range result.Objects {
		objects[i] = o
	}
	resp, err := encodeEntities(objects)
	if err != nil {
		return nil, err
	}
	resp.Fields["total"] = structpb.NewNumberValue(float64(result.Total))
	resp.Fields["has_more"] = structpb.NewBoolValue(result.HasMore)
	return resp, nil
}

// Stats returns {counts, total, targets, uptime_seconds[, snapshot_id]}
func (s *Server) Stats(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	s.mu.RLock()
	stats := s.entities.Stats()
	targets := s.entities.TargetCount()
	s.mu.RUnlock()

	counts := make(map[string]any, len(stats))
	for name, n := range stats.ByName() {
		counts[name] = n
	}
	countsValue, err := structpb.NewStruct(counts)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode stats: %v", err)
	}

	resp := &structpb.Struct{Fields: map[string]*structpb.Value{
		"counts":         structpb.NewStructValue(countsValue),
		"total":          structpb.NewNumberValue(float64(stats.Total())),
		"targets":        structpb.NewNumberValue(float64(targets)),
		"uptime_seconds": structpb.NewNumberValue(time.Since(s.startTime).Seconds()),
	}}
	if snap := s.Snapshot(); snap != nil {
		resp.Fields["snapshot_id"] = structpb.NewStringValue(snap.ID)
	}
	return resp, nil
}

func (s *Server) Health(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"healthy":        structpb.NewBoolValue(true),
		"version":        structpb.NewStringValue(Version),
		"uptime_seconds": structpb.NewNumberValue(time.Since(s.startTime).Seconds()),
	}}, nil
}

func encodeEntities(es []entity.Entity) (*structpb.Struct, error) {
	resp, err := entitiesStruct(es)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode entities: %v", err)
	}
	return resp, nil
}
