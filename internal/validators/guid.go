package validators

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// GUIDValidator checks that an optional id is a well-formed GUID.
type GUIDValidator struct {
	value    *string
	path     string
	required bool
}

// NewGUIDValidator validates value at path. A nil or empty value is valid.
func NewGUIDValidator(value *string, path string) *GUIDValidator {
	return &GUIDValidator{value: value, path: path}
}

// Required makes a missing value a violation.
func (v *GUIDValidator) Required() *GUIDValidator {
	v.required = true
	return v
}

func (v *GUIDValidator) Validate(_ context.Context, sink *ErrorSink) error {
	raw := deref(v.value)
	if raw == "" {
		if v.required {
			sink.AddErrorf(v.path, msgRequired, lastSegment(v.path))
		}
		return nil
	}
	if _, err := uuid.Parse(raw); err != nil {
		sink.AddErrorf(v.path, msgInvalidGUID, raw)
	}
	return nil
}

// parseGUID returns the id of a trimmed raw value and whether it is well formed.
func parseGUID(raw string) (uuid.UUID, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// parseGUIDList parses ids, reporting malformed entries at property[i].
// Duplicates are returned once.
func parseGUIDList(ids []string, property string, sink *ErrorSink) []uuid.UUID {
	var out []uuid.UUID
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for i, raw := range ids {
		id, ok := parseGUID(raw)
		if !ok {
			sink.AddErrorf(indexPath(property, i), msgInvalidGUID, raw)
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func lastSegment(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i+1:]
	}
	return path
}
