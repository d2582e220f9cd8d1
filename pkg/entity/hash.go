package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// HashString returns the lower-case hex SHA-256 of s
func HashString(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// HashBytes returns the raw SHA-256 digest of s
func HashBytes(s string) []byte {
	sum := sha256.Sum256([]byte(s))
	return sum[:]
}

// chainHash hashes each part together with the running digest: h = sha256(h || part)
func chainHash(parts ...[]byte) []byte {
	if len(parts) == 0 {
		return nil
	}
	acc := parts[0]
	for _, p := range parts[1:] {
		if p == nil {
			continue
		}
		buf := make([]byte, 0, len(acc)+len(p))
		buf = append(buf, acc...)
		buf = append(buf, p...)
		sum := sha256.Sum256(buf)
		acc = sum[:]
	}
	return acc
}

// join builds the ":"-separated identity or content string used for hashing.
// Booleans render as True/False so digests match entities produced elsewhere.
func join(fields ...any) string {
	var sb strings.Builder
	for i, f := range fields {
		if i > 0 {
			sb.WriteByte(':')
		}
		switch v := f.(type) {
		case string:
			sb.WriteString(v)
		case bool:
			if v {
				sb.WriteString("True")
			} else {
				sb.WriteString("False")
			}
		case int:
			sb.WriteString(strconv.Itoa(v))
		case int64:
			sb.WriteString(strconv.FormatInt(v, 10))
		case uint64:
			sb.WriteString(strconv.FormatUint(v, 10))
		case byte:
			sb.WriteString(strconv.Itoa(int(v)))
		}
	}
	return sb.String()
}

func identity(fields ...any) string {
	return HashString(join(fields...))
}

func content(fields ...any) []byte {
	return HashBytes(join(fields...))
}
