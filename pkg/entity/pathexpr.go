package entity

import (
	"path"
	"strings"
)

// IsPathExpression reports whether p contains wildcard segments and must be
// matched against stored objects rather than resolved to a uuid directly.
func IsPathExpression(p string) bool {
	return strings.Contains(p, "*")
}

// PathUUID resolves an absolute path ("ns:/a/b", "/a/b", "uuid=<id>" or
// "uuid=<id>/child") to an object uuid without consulting any store.
func PathUUID(absolute string) string {
	if absolute == "" || IsPathExpression(absolute) {
		return ""
	}
	trimmed := strings.Trim(absolute, PathSeparator)
	if strings.HasPrefix(trimmed, uuidSegmentPrefix) && !strings.Contains(trimmed, PathSeparator) {
		return strings.ToLower(trimmed[len(uuidSegmentPrefix):])
	}
	ns, p := SplitAbsolutePath(absolute)
	return GenerateObjectUUID(ns, p)
}

// MatchPath reports whether an object path matches a path expression. A "*"
// segment (or any path.Match glob) matches exactly one segment and "**"
// matches any number of segments. Matching ignores case.
func MatchPath(expression, objectPath string) bool {
	pattern := splitSegments(strings.ToLower(expression))
	segments := splitSegments(strings.ToLower(objectPath))
	return matchSegments(pattern, segments)
}

func splitSegments(p string) []string {
	p = strings.Trim(p, PathSeparator)
	if p == "" {
		return nil
	}
	return strings.Split(p, PathSeparator)
}

// matchSegments walks pattern and segments together, remembering the last
// "**" so a failed match resumes one segment further along. Each "**" only
// ever advances, so the cost is bounded by len(pattern)*len(segments).
func matchSegments(pattern, segments []string) bool {
	p, s := 0, 0
	star, resume := -1, 0
	for s < len(segments) {
		switch {
		case p < len(pattern) && pattern[p] == "**":
			star, resume = p, s
			p++
		case p < len(pattern) && matchSegment(pattern[p], segments[s]):
			p++
			s++
		case star >= 0:
			resume++
			p, s = star+1, resume
		default:
			return false
		}
	}
	for p < len(pattern) && pattern[p] == "**" {
		p++
	}
	return p == len(pattern)
}

func matchSegment(pattern, segment string) bool {
	ok, err := path.Match(pattern, segment)
	return err == nil && ok
}
