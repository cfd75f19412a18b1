package validators

import "fmt"

// Supported API versions.
const (
	MinVersion = 7
	MaxVersion = 11
)

// MaxTaxonomyDepth bounds the ancestor walk of target groups.
const MaxTaxonomyDepth = 8

// Limits are the configurable cardinality limits of classification lists.
type Limits struct {
	MaxServiceClasses int
	MaxOntologyTerms  int
	MaxLifeEvents     int
}

// DefaultLimits returns the registry defaults.
func DefaultLimits() Limits {
	return Limits{
		MaxServiceClasses: 4,
		MaxOntologyTerms:  10,
		MaxLifeEvents:     4,
	}
}

// Policy carries the rule switches of one API version.
type Policy struct {
	Version int

	// NameSummaryDistinct rejects summaries equal to the name of the same language.
	NameSummaryDistinct bool

	// RejectMainOnlyServiceClasses rejects service class lists made of top-level classes only.
	RejectMainOnlyServiceClasses bool

	// RequireMainOpeningHour enforces one non-extra opening hour per day (older hour shape).
	RequireMainOpeningHour bool

	Limits
}

// PolicyFor resolves the policy of version. Zero limits fall back to DefaultLimits.
func PolicyFor(version int, limits Limits) (Policy, error) {
	if version < MinVersion || version > MaxVersion {
		return Policy{}, fmt.Errorf("%w: %d, supported versions are %d-%d", ErrUnsupportedVersion, version, MinVersion, MaxVersion)
	}

	defaults := DefaultLimits()
	if limits.MaxServiceClasses <= 0 {
		limits.MaxServiceClasses = defaults.MaxServiceClasses
	}
	if limits.MaxOntologyTerms <= 0 {
		limits.MaxOntologyTerms = defaults.MaxOntologyTerms
	}
	if limits.MaxLifeEvents <= 0 {
		limits.MaxLifeEvents = defaults.MaxLifeEvents
	}

	return Policy{
		Version:                      version,
		NameSummaryDistinct:          version >= 9,
		RejectMainOnlyServiceClasses: version >= 10,
		RequireMainOpeningHour:       version <= 7,
		Limits:                       limits,
	}, nil
}
