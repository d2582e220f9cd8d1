package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordEntities(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordEntities("objects", "boolean", 2, 1, 0)
	m.RecordEntities("objects", "boolean", 1, 0, 0)
	m.RecordEntities("objects", "event", 0, 0, 0)
	m.RecordEntities("objects", "object", 0, 0, 2)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.EntitiesAddedTotal.WithLabelValues("objects", "boolean")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EntitiesDeduplicatedTotal.WithLabelValues("objects", "boolean")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.EntitiesRejectedTotal.WithLabelValues("objects", "object")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.EntitiesAddedTotal))
	assert.Equal(t, 1, testutil.CollectAndCount(m.EntitiesRejectedTotal))
}

func TestUpdateEntityCountsReplaces(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.UpdateEntityCounts(map[string]int{"objects/object": 4, "objects/event": 2})
	m.UpdateEntityCounts(map[string]int{"objects/object": 5})

	assert.Equal(t, 5.0, testutil.ToFloat64(m.EntitiesStored.WithLabelValues("objects/object")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.EntitiesStored))
}

func TestRequestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.RecordGrpcRequest("/trakhound.EntityService/Get", "success", time.Millisecond)
	m.RecordPublish("success", time.Millisecond)
	m.RecordQuery("objects")
	m.RecordSnapshot()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.GrpcRequestsTotal.WithLabelValues("/trakhound.EntityService/Get", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PublishRequestsTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.QueryRequestsTotal.WithLabelValues("objects")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SnapshotsPublishedTotal))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["trakhound_server_uptime_seconds"])
}

func TestSeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics(prometheus.NewRegistry())
		NewMetrics(prometheus.NewRegistry())
	})
}
