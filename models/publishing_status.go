// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
)

// PublishingStatus is the lifecycle state of a registry entity.
// The empty value means "unset" and is never stored.
type PublishingStatus string

const (
	// StatusUnset is used when the candidate does not request a status change.
	StatusUnset PublishingStatus = ""

	// Draft entities are visible only to their owners.
	Draft PublishingStatus = "Draft"

	// Published entities are public.
	Published PublishingStatus = "Published"

	// Modified marks a published entity that has a newer unpublished draft.
	Modified PublishingStatus = "Modified"

	// Deleted entities are archived.
	Deleted PublishingStatus = "Deleted"

	// OldPublished is a legacy state kept for historical versions. It is a
	// valid current state but never a valid target state.
	OldPublished PublishingStatus = "OldPublished"
)

// allPublishingStatuses is the closed enumeration accepted by ParsePublishingStatus.
var allPublishingStatuses = []PublishingStatus{Draft, Published, Modified, Deleted, OldPublished}

// ErrUnknownPublishingStatus is wrapped by ParsePublishingStatus for values
// outside the enumeration.
var ErrUnknownPublishingStatus = errors.New("unknown publishing status")

// ParsePublishingStatus converts a raw status string into a PublishingStatus.
// Empty and whitespace-only input yields StatusUnset. Matching is case-insensitive.
func ParsePublishingStatus(s string) (PublishingStatus, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return StatusUnset, nil
	}

	for _, status := range allPublishingStatuses {
		if strings.EqualFold(string(status), s) {
			return status, nil
		}
	}

	return StatusUnset, fmt.Errorf("%w '%s', allowed values are: %s", ErrUnknownPublishingStatus, s, strings.Join(PublishingStatusNames(), ", "))
}

// PublishingStatusNames lists the enumeration in declaration order.
func PublishingStatusNames() []string {
	names := make([]string, 0, len(allPublishingStatuses))
	for _, status := range allPublishingStatuses {
		names = append(names, string(status))
	}
	return names
}

// IsPublic reports whether entities in this state are visible to everyone
// and therefore must keep their required data complete.
func (s PublishingStatus) IsPublic() bool {
	return s == Published || s == Modified || s == OldPublished
}

func (s PublishingStatus) String() string {
	if s == StatusUnset {
		return "null"
	}
	return string(s)
}
