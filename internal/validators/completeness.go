// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"slices"
	"strings"

	"github.com/MKhiriev/go-registry-validator/models"
)

// RequiredProperty is a localized property that a public entity must carry
// in each of its languages.
type RequiredProperty struct {
	key       string
	types     []string
	candidate []langEntry
	current   []langEntry
	supplied  bool
}

// NewRequiredProperty describes property key. A nil candidate means the
// candidate keeps the current version's value. With types set, every type
// must be present per language.
func NewRequiredProperty[T Localized](key string, candidate, current []T, types ...string) RequiredProperty {
	return RequiredProperty{
		key:       key,
		types:     types,
		candidate: entriesOf(candidate),
		current:   entriesOf(current),
		supplied:  candidate != nil,
	}
}

// Completeness is the input of a CompletenessValidator.
type Completeness struct {
	Target        models.PublishingStatus
	CurrentStatus models.PublishingStatus

	// HasCurrent tells whether a persisted version exists.
	HasCurrent bool

	// CurrentLanguages are the available languages of the persisted version.
	CurrentLanguages []string

	// CandidateLanguages are the languages of every localized candidate field,
	// required or optional.
	CandidateLanguages []string

	Properties []RequiredProperty
}

// CompletenessValidator checks that every language version of a public
// entity is complete.
//
// Violations that belong to one property are reported at its key. A new
// language that is incomplete, or a language found only in optional
// fields, is reported at the Model key.
type CompletenessValidator struct {
	c Completeness
}

// NewCompletenessValidator returns the validator of c.
func NewCompletenessValidator(c Completeness) *CompletenessValidator {
	return &CompletenessValidator{c: c}
}

func (v *CompletenessValidator) Validate(_ context.Context, sink *ErrorSink) error {
	c := v.c
	if !requiresCompleteness(c.Target) {
		return nil
	}

	var requiredLangs []string
	for _, p := range c.Properties {
		for _, e := range v.effective(p) {
			requiredLangs = unionOf(requiredLangs, []string{e.language})
		}
	}

	var newLangs, langs []string
	if !c.HasCurrent {
		langs = unionOf(c.CandidateLanguages, requiredLangs)
	} else {
		for _, lang := range unionOf(c.CandidateLanguages, requiredLangs) {
			if !slices.Contains(c.CurrentLanguages, lang) {
				newLangs = append(newLangs, lang)
			}
		}
		if !v.anySupplied() && len(newLangs) == 0 && c.CurrentStatus.IsPublic() {
			return nil
		}
		langs = unionOf(requiredLangs, newLangs)
	}

	if len(requiredLangs) == 0 {
		sink.AddError(KeyModel, msgNoLanguageVersion)
		return nil
	}

	for _, lang := range langs {
		type gap struct {
			key   string
			types []string
		}
		var gaps []gap
		for _, p := range c.Properties {
			if missing := missingTypes(v.effective(p), lang, p.types); len(missing) > 0 {
				gaps = append(gaps, gap{key: p.key, types: missing})
			}
		}
		if len(gaps) == 0 {
			continue
		}

		if !slices.Contains(requiredLangs, lang) || slices.Contains(newLangs, lang) {
			keys := make([]string, 0, len(gaps))
			for _, g := range gaps {
				keys = append(keys, g.key)
			}
			sink.AddErrorf(KeyModel, msgIncompleteLanguage, lang, strings.Join(keys, ", "))
			continue
		}
		for _, g := range gaps {
			for _, typ := range g.types {
				addMissing(sink, g.key, typ, lang)
			}
		}
	}
	return nil
}

func (v *CompletenessValidator) effective(p RequiredProperty) []langEntry {
	if !v.c.HasCurrent || p.supplied {
		return p.candidate
	}
	return p.current
}

func (v *CompletenessValidator) anySupplied() bool {
	for _, p := range v.c.Properties {
		if p.supplied {
			return true
		}
	}
	return false
}

// RequiredWhenPublishedValidator reports a non-localized field that a public
// entity must carry.
type RequiredWhenPublishedValidator struct {
	target  models.PublishingStatus
	key     string
	present bool
}

// NewRequiredWhenPublishedValidator reports key when present is false and
// the target status is public.
func NewRequiredWhenPublishedValidator(target models.PublishingStatus, key string, present bool) *RequiredWhenPublishedValidator {
	return &RequiredWhenPublishedValidator{target: target, key: key, present: present}
}

func (v *RequiredWhenPublishedValidator) Validate(_ context.Context, sink *ErrorSink) error {
	if requiresCompleteness(v.target) && !v.present {
		sink.AddErrorf(v.key, msgRequiredWhenPublish, v.key)
	}
	return nil
}
