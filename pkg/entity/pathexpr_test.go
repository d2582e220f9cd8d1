package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsPathExpression(t *testing.T) {
	assert.True(t, IsPathExpression("/machines/*/status"))
	assert.True(t, IsPathExpression("/machines/**"))
	assert.False(t, IsPathExpression("/machines/cnc-01"))
}

func TestMatchPath(t *testing.T) {
	cases := []struct {
		expr, path string
		want       bool
	}{
		{"/machines/*", "/machines/cnc-01", true},
		{"/machines/*", "/machines/cnc-01/status", false},
		{"/machines/*/status", "/machines/cnc-01/status", true},
		{"/machines/**", "/machines", true},
		{"/machines/**", "/machines/cnc-01/axes/x", true},
		{"/**/status", "/machines/cnc-01/status", true},
		{"/**/status", "/status", true},
		{"/machines/cnc-*", "/Machines/CNC-02", true},
		{"/machines/lathe-*", "/machines/cnc-02", false},
		{"/machines/[", "/machines/x", false},
		{"/**/**/status", "/machines/status", true},
		{"/**/cnc-*/**/x", "/machines/cnc-01/axes/x", true},
		{"/**/cnc-*/**/x", "/machines/cnc-01/axes/y", false},
		{"/machines/**/x/*", "/machines/a/x/b/x/c", true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, MatchPath(c.expr, c.path), "%s vs %s", c.expr, c.path)
	}
}

func TestPathUUID(t *testing.T) {
	assert.Equal(t, GenerateObjectUUID(DefaultNamespace, "/machines/cnc-01"), PathUUID("/machines/cnc-01"))
	assert.Equal(t, GenerateObjectUUID("plant", "/line"), PathUUID("plant:/line"))
	assert.Equal(t, "abc123", PathUUID("uuid=ABC123"))
	assert.Empty(t, PathUUID(""))
	assert.Empty(t, PathUUID("/machines/*"))
}

func TestMatchPathManyDoubleStarsIsBounded(t *testing.T) {
	expr := strings.Repeat("/**", 14) + "/nomatch"
	objectPath := strings.Repeat("/seg", 16)

	start := time.Now()
	assert.False(t, MatchPath(expr, objectPath))
	assert.False(t, MatchPath(strings.Repeat("/**/seg", 40)+"/nomatch", strings.Repeat("/seg", 200)))
	assert.Less(t, time.Since(start), time.Second)
}
