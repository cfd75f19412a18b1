package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-registry-validator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func descriptions(langs ...string) []models.LocalizedListItem {
	var out []models.LocalizedListItem
	for _, lang := range langs {
		out = append(out,
			models.LocalizedListItem{Type: models.DescriptionTypeSummary, Language: lang, Value: "summary " + lang},
			models.LocalizedListItem{Type: models.DescriptionTypeDescription, Language: lang, Value: "description " + lang},
		)
	}
	return out
}

func nameItems(langs ...string) []models.LocalizedListItem {
	var out []models.LocalizedListItem
	for _, lang := range langs {
		out = append(out, models.LocalizedListItem{Type: models.NameTypeName, Language: lang, Value: "name " + lang})
	}
	return out
}

func properties(candNames, curNames, candDesc, curDesc []models.LocalizedListItem) []RequiredProperty {
	return []RequiredProperty{
		NewRequiredProperty("Names", candNames, curNames, models.NameTypeName),
		NewRequiredProperty("Descriptions", candDesc, curDesc, models.DescriptionTypeSummary, models.DescriptionTypeDescription),
	}
}

func runCompleteness(t *testing.T, c Completeness) *ErrorSink {
	t.Helper()
	sink := NewErrorSink()
	require.NoError(t, NewCompletenessValidator(c).Validate(context.Background(), sink))
	return sink
}

func TestCompletenessValidator_DraftIsNotChecked(t *testing.T) {
	sink := runCompleteness(t, Completeness{
		Target:     models.Draft,
		Properties: properties(nameItems("fi"), nil, nil, nil),
	})
	assert.True(t, sink.IsValid())
}

func TestCompletenessValidator_FirstPublish(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		sink := runCompleteness(t, Completeness{
			Target:     models.Published,
			Properties: properties(nameItems("fi", "sv"), nil, descriptions("fi", "sv"), nil),
		})
		assert.True(t, sink.IsValid(), sink.String())
	})

	t.Run("missing property is reported at its key", func(t *testing.T) {
		sink := runCompleteness(t, Completeness{
			Target:     models.Published,
			Properties: properties(nameItems("fi", "sv"), nil, descriptions("fi"), nil),
		})
		assert.Equal(t, []string{"Descriptions"}, sink.Keys())
		assert.Equal(t, []string{
			"Required value of type 'Summary' is missing for language 'sv'.",
			"Required value of type 'Description' is missing for language 'sv'.",
		}, sink.Messages("Descriptions"))
	})

	t.Run("no language at all", func(t *testing.T) {
		sink := runCompleteness(t, Completeness{
			Target:     models.Published,
			Properties: properties(nil, nil, nil, nil),
		})
		assert.Equal(t, []string{"At least one language version is required when publishing."}, sink.Messages(KeyModel))
	})

	t.Run("language used only in optional fields", func(t *testing.T) {
		sink := runCompleteness(t, Completeness{
			Target:             models.Published,
			CandidateLanguages: []string{"fi", "en"},
			Properties:         properties(nameItems("fi"), nil, descriptions("fi"), nil),
		})
		assert.Equal(t, []string{KeyModel}, sink.Keys())
		assert.Equal(t, "Language version 'en' is incomplete. Required properties missing: Names, Descriptions.", sink.First(KeyModel))
	})
}

func TestCompletenessValidator_WithCurrentVersion(t *testing.T) {
	t.Run("partially added language", func(t *testing.T) {
		sink := runCompleteness(t, Completeness{
			Target:           models.Modified,
			CurrentStatus:    models.Published,
			HasCurrent:       true,
			CurrentLanguages: []string{"fi"},
			Properties:       properties(nameItems("fi", "en"), nameItems("fi"), nil, descriptions("fi")),
		})
		assert.Equal(t, []string{KeyModel}, sink.Keys())
		assert.Equal(t, "Language version 'en' is incomplete. Required properties missing: Descriptions.", sink.First(KeyModel))
	})

	t.Run("removed language still required elsewhere", func(t *testing.T) {
		sink := runCompleteness(t, Completeness{
			Target:           models.Published,
			CurrentStatus:    models.Published,
			HasCurrent:       true,
			CurrentLanguages: []string{"fi", "sv"},
			Properties:       properties(nameItems("fi"), nameItems("fi", "sv"), nil, descriptions("fi", "sv")),
		})
		assert.Equal(t, []string{"Names"}, sink.Keys())
		assert.Equal(t, "Required value of type 'Name' is missing for language 'sv'.", sink.First("Names"))
	})

	t.Run("language removed everywhere", func(t *testing.T) {
		sink := runCompleteness(t, Completeness{
			Target:           models.Published,
			CurrentStatus:    models.Published,
			HasCurrent:       true,
			CurrentLanguages: []string{"fi", "sv"},
			Properties:       properties(nameItems("fi"), nameItems("fi", "sv"), descriptions("fi"), descriptions("fi", "sv")),
		})
		assert.True(t, sink.IsValid(), sink.String())
	})

	t.Run("optional edit of a public entity", func(t *testing.T) {
		sink := runCompleteness(t, Completeness{
			Target:             models.Published,
			CurrentStatus:      models.Published,
			HasCurrent:         true,
			CurrentLanguages:   []string{"fi", "sv"},
			CandidateLanguages: []string{"sv"},
			Properties:         properties(nil, nameItems("fi"), nil, descriptions("fi")),
		})
		assert.True(t, sink.IsValid(), sink.String())
	})

	t.Run("publishing a draft rechecks everything", func(t *testing.T) {
		sink := runCompleteness(t, Completeness{
			Target:           models.Published,
			CurrentStatus:    models.Draft,
			HasCurrent:       true,
			CurrentLanguages: []string{"fi"},
			Properties:       properties(nil, nameItems("fi"), nil, nil),
		})
		assert.Equal(t, []string{"Descriptions"}, sink.Keys())
	})
}

func TestRequiredWhenPublishedValidator(t *testing.T) {
	tests := []struct {
		target  models.PublishingStatus
		present bool
		valid   bool
	}{
		{target: models.Draft, present: false, valid: true},
		{target: models.Published, present: false, valid: false},
		{target: models.Modified, present: false, valid: false},
		{target: models.Published, present: true, valid: true},
	}
	for _, tt := range tests {
		sink := NewErrorSink()
		require.NoError(t, NewRequiredWhenPublishedValidator(tt.target, "ChargeType", tt.present).Validate(context.Background(), sink))
		assert.Equal(t, tt.valid, sink.IsValid(), "%s present=%v", tt.target, tt.present)
	}
}
