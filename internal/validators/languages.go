// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-registry-validator/models"
	"golang.org/x/text/language"
)

// Localized is implemented by every language-tagged list item.
type Localized interface {
	LanguageCode() string
}

// LanguageOptions selects how a localized list is checked.
//
// Required mode (RequiredLanguages non-empty) and available mode
// (CheckAvailability set) are exclusive. In required mode every required
// language must be present (per required type when RequiredTypes is set) and
// no other language is allowed. In available mode every item language must be
// in AvailableLanguages; an empty set rejects all of them. With neither mode
// only the item shape is checked.
type LanguageOptions struct {
	RequiredLanguages []string
	RequiredTypes     []string

	CheckAvailability  bool
	AvailableLanguages []string

	// AllowedTypes restricts the Type of typed items.
	AllowedTypes []string
}

// LocalizedListValidator checks the languages and types of a localized list.
type LocalizedListValidator[T Localized] struct {
	items    []T
	property string
	opts     LanguageOptions
}

// NewLocalizedListValidator validates items reported under property.
func NewLocalizedListValidator[T Localized](items []T, property string, opts LanguageOptions) *LocalizedListValidator[T] {
	return &LocalizedListValidator[T]{items: items, property: property, opts: opts}
}

func (v *LocalizedListValidator[T]) Validate(ctx context.Context, sink *ErrorSink) error {
	if len(v.opts.RequiredLanguages) > 0 && v.opts.CheckAvailability {
		return fmt.Errorf("%w: %s", ErrConflictingLanguageModes, v.property)
	}

	for i, item := range v.items {
		path := indexPath(v.property, i)
		lang := strings.TrimSpace(item.LanguageCode())

		switch {
		case lang == "":
			sink.AddError(path+".Language", msgLanguageRequired)
		case len(v.opts.RequiredLanguages) > 0 && !slices.Contains(v.opts.RequiredLanguages, lang):
			sink.AddErrorf(path+".Language", msgLanguageNotAllowed, lang, strings.Join(v.opts.RequiredLanguages, ", "))
		case v.opts.CheckAvailability && !slices.Contains(v.opts.AvailableLanguages, lang):
			sink.AddErrorf(path+".Language", msgLanguageNotAllowed, lang, strings.Join(v.opts.AvailableLanguages, ", "))
		}

		if text, ok := textOf(item); ok && strings.TrimSpace(text) == "" {
			sink.AddError(path+".Value", msgValueRequired)
		}

		if typed, ok := any(item).(models.LocalizedListItem); ok && len(v.opts.AllowedTypes) > 0 {
			if err := NewEnumValidator(typed.Type, path+".Type", v.opts.AllowedTypes...).Required().Validate(ctx, sink); err != nil {
				return err
			}
		}
	}

	if len(v.opts.RequiredLanguages) == 0 {
		return nil
	}

	entries := entriesOf(v.items)
	for _, lang := range v.opts.RequiredLanguages {
		for _, typ := range missingTypes(entries, lang, v.opts.RequiredTypes) {
			addMissing(sink, v.property, typ, lang)
		}
	}
	return nil
}

// LanguageCodeListValidator checks a plain list of language codes.
type LanguageCodeListValidator struct {
	codes    []string
	property string
	lookup   CodeLookup
}

// NewLanguageCodeListValidator validates codes reported at property[i].
func NewLanguageCodeListValidator(codes []string, property string, lookup CodeLookup) *LanguageCodeListValidator {
	return &LanguageCodeListValidator{codes: codes, property: property, lookup: lookup}
}

func (v *LanguageCodeListValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	if len(v.codes) == 0 {
		return nil
	}
	if v.lookup == nil {
		return fmt.Errorf("%w: code lookup", ErrMissingDependency)
	}

	for i, code := range v.codes {
		path := indexPath(v.property, i)
		code = strings.TrimSpace(code)
		if code == "" {
			sink.AddError(path, msgLanguageRequired)
			continue
		}
		if _, err := language.ParseBase(code); err != nil {
			sink.AddErrorf(path, msgLanguageInvalid, code)
			continue
		}
		exists, err := codeExists(ctx, v.lookup, CodeLanguage, code)
		if err != nil {
			return err
		}
		if !exists {
			sink.AddErrorf(path, msgCodeNotFound, CodeLanguage, code)
		}
	}
	return nil
}

// langEntry is the language and type of one localized item.
type langEntry struct {
	language string
	typ      string
}

func entriesOf[T Localized](items []T) []langEntry {
	out := make([]langEntry, 0, len(items))
	for _, item := range items {
		entry := langEntry{language: strings.TrimSpace(item.LanguageCode())}
		if typed, ok := any(item).(models.LocalizedListItem); ok {
			entry.typ = typed.Type
		}
		out = append(out, entry)
	}
	return out
}

// missingTypes returns the required types that have no entry in lang. With
// no required types it returns [""] when lang has no entry at all.
func missingTypes(entries []langEntry, lang string, types []string) []string {
	if len(types) == 0 {
		for _, e := range entries {
			if e.language == lang {
				return nil
			}
		}
		return []string{""}
	}

	var missing []string
	for _, typ := range types {
		found := false
		for _, e := range entries {
			if e.language == lang && strings.EqualFold(e.typ, typ) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, typ)
		}
	}
	return missing
}

func addMissing(sink *ErrorSink, property, typ, lang string) {
	if typ == "" {
		sink.AddErrorf(property, msgLanguageMissing, lang)
		return
	}
	sink.AddErrorf(property, msgTypedLanguageMissing, typ, lang)
}

func textOf(item any) (string, bool) {
	switch v := item.(type) {
	case models.LanguageItem:
		return v.Value, true
	case models.LocalizedListItem:
		return v.Value, true
	}
	return "", false
}

// unionOf collects distinct non-empty values in first-seen order.
func unionOf(lists ...[]string) []string {
	var out []string
	for _, list := range lists {
		for _, lang := range list {
			lang = strings.TrimSpace(lang)
			if lang != "" && !slices.Contains(out, lang) {
				out = append(out, lang)
			}
		}
	}
	return out
}
