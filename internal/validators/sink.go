// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Aggregate keys used when a violation spans several fields.
const (
	KeyModel            = "Model"
	KeyChannelRelations = "ChannelRelations"
	KeyServiceRelations = "ServiceRelations"
)

// ErrorSink maps a field path to the ordered violation messages recorded for it.
//
// A path is present only when it has at least one message. Keys keep the
// order in which they were first recorded. ErrorSink is not safe for
// concurrent use; every validation call owns its own sink.
type ErrorSink struct {
	keys   []string
	errors map[string][]string
}

// NewErrorSink returns an empty sink.
func NewErrorSink() *ErrorSink {
	return &ErrorSink{errors: make(map[string][]string)}
}

// AddError appends message to path. Identical messages are kept.
func (s *ErrorSink) AddError(path, message string) {
	if s.errors == nil {
		s.errors = make(map[string][]string)
	}
	if _, ok := s.errors[path]; !ok {
		s.keys = append(s.keys, path)
	}
	s.errors[path] = append(s.errors[path], message)
}

// AddErrorf appends a formatted message to path.
func (s *ErrorSink) AddErrorf(path, format string, args ...any) {
	s.AddError(path, fmt.Sprintf(format, args...))
}

// Merge copies every message of other into s, prefixing its keys with
// prefix. An empty key of other maps to prefix itself.
func (s *ErrorSink) Merge(other *ErrorSink, prefix string) {
	if other == nil {
		return
	}
	for _, key := range other.keys {
		for _, message := range other.errors[key] {
			s.AddError(joinPath(prefix, key), message)
		}
	}
}

// IsValid reports whether no violation was recorded.
func (s *ErrorSink) IsValid() bool {
	return s == nil || len(s.keys) == 0
}

// Len returns the number of violating paths.
func (s *ErrorSink) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Keys returns the violating paths in first-recorded order.
func (s *ErrorSink) Keys() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.keys)
}

// Has reports whether path has at least one message.
func (s *ErrorSink) Has(path string) bool {
	if s == nil {
		return false
	}
	_, ok := s.errors[path]
	return ok
}

// Messages returns the messages of path in recording order.
func (s *ErrorSink) Messages(path string) []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.errors[path])
}

// First returns the first message of path or "".
func (s *ErrorSink) First(path string) string {
	if s == nil || len(s.errors[path]) == 0 {
		return ""
	}
	return s.errors[path][0]
}

// Errors returns a copy of the accumulated violations.
func (s *ErrorSink) Errors() map[string][]string {
	out := make(map[string][]string, s.Len())
	if s == nil {
		return out
	}
	for k, v := range maps.All(s.errors) {
		out[k] = slices.Clone(v)
	}
	return out
}

// String renders the sink as "path: message" lines, used in logs.
func (s *ErrorSink) String() string {
	if s.IsValid() {
		return ""
	}
	var b strings.Builder
	for _, key := range s.keys {
		for _, message := range s.errors[key] {
			b.WriteString(key)
			b.WriteString(": ")
			b.WriteString(message)
			b.WriteString("\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func joinPath(prefix, key string) string {
	switch {
	case prefix == "":
		return key
	case key == "":
		return prefix
	case strings.HasPrefix(key, "["):
		return prefix + key
	}
	return prefix + "." + key
}

func indexPath(property string, i int) string {
	return fmt.Sprintf("%s[%d]", property, i)
}
