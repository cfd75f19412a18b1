package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-registry-validator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(pairs ...string) []models.LocalizedListItem {
	var out []models.LocalizedListItem
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, models.LocalizedListItem{Type: models.NameTypeName, Language: pairs[i], Value: pairs[i+1]})
	}
	return out
}

func TestLocalizedListValidator_RoundTrip(t *testing.T) {
	required := []string{"fi", "sv", "en"}
	full := names("fi", "Nimi", "sv", "Namn", "en", "Name")

	sink := NewErrorSink()
	require.NoError(t, NewLocalizedListValidator(full, "Names", LanguageOptions{RequiredLanguages: required}).Validate(context.Background(), sink))
	assert.True(t, sink.IsValid(), sink.String())

	for i := range full {
		partial := append(append([]models.LocalizedListItem{}, full[:i]...), full[i+1:]...)
		sink := NewErrorSink()
		require.NoError(t, NewLocalizedListValidator(partial, "Names", LanguageOptions{RequiredLanguages: required}).Validate(context.Background(), sink))
		assert.False(t, sink.IsValid(), "removing %s", full[i].Language)
		assert.Equal(t, []string{"Names"}, sink.Keys())
	}
}

func TestLocalizedListValidator_Idempotent(t *testing.T) {
	v := NewLocalizedListValidator(names("fi", "Nimi"), "Names", LanguageOptions{RequiredLanguages: []string{"fi"}})

	first, second := NewErrorSink(), NewErrorSink()
	require.NoError(t, v.Validate(context.Background(), first))
	require.NoError(t, v.Validate(context.Background(), second))
	assert.True(t, first.IsValid())
	assert.Equal(t, first.Errors(), second.Errors())
}

func TestLocalizedListValidator_RequiredMode(t *testing.T) {
	items := []models.LocalizedListItem{
		{Type: models.NameTypeName, Language: "fi", Value: "Nimi"},
		{Type: models.NameTypeName, Language: "de", Value: "Name"},
		{Type: models.NameTypeName, Language: "", Value: "Name"},
	}

	sink := NewErrorSink()
	err := NewLocalizedListValidator(items, "Names", LanguageOptions{RequiredLanguages: []string{"fi", "sv"}}).Validate(context.Background(), sink)
	require.NoError(t, err)

	assert.Equal(t, "Language 'de' is not allowed. Allowed values are: fi, sv.", sink.First("Names[1].Language"))
	assert.Equal(t, "Language is required.", sink.First("Names[2].Language"))
	assert.Equal(t, "Required value is missing for language 'sv'.", sink.First("Names"))
}

func TestLocalizedListValidator_RequiredTypes(t *testing.T) {
	items := []models.LocalizedListItem{
		{Type: models.DescriptionTypeSummary, Language: "fi", Value: "Lyhyesti"},
	}
	opts := LanguageOptions{
		RequiredLanguages: []string{"fi"},
		RequiredTypes:     []string{models.DescriptionTypeSummary, models.DescriptionTypeDescription},
		AllowedTypes:      []string{models.DescriptionTypeSummary, models.DescriptionTypeDescription},
	}

	sink := NewErrorSink()
	require.NoError(t, NewLocalizedListValidator(items, "Descriptions", opts).Validate(context.Background(), sink))
	assert.Equal(t, []string{"Required value of type 'Description' is missing for language 'fi'."}, sink.Messages("Descriptions"))
}

func TestLocalizedListValidator_AvailableMode(t *testing.T) {
	items := []models.LanguageItem{
		{Language: "fi", Value: "Lisätieto"},
		{Language: "en", Value: ""},
	}

	sink := NewErrorSink()
	err := NewLocalizedListValidator(items, "AdditionalInformation", LanguageOptions{CheckAvailability: true, AvailableLanguages: []string{"fi", "sv"}}).Validate(context.Background(), sink)
	require.NoError(t, err)
	assert.Equal(t, []string{"AdditionalInformation[1].Language", "AdditionalInformation[1].Value"}, sink.Keys())
}

func TestLocalizedListValidator_AvailableModeRequiresNothing(t *testing.T) {
	sink := NewErrorSink()
	err := NewLocalizedListValidator([]models.LanguageItem(nil), "Keywords", LanguageOptions{CheckAvailability: true, AvailableLanguages: []string{"fi"}}).Validate(context.Background(), sink)
	require.NoError(t, err)
	assert.True(t, sink.IsValid())
}

func TestLocalizedListValidator_EmptyAvailableSetRejectsAll(t *testing.T) {
	items := []models.LanguageItem{{Language: "en", Value: "Keyword"}}

	for _, available := range [][]string{nil, {}} {
		sink := NewErrorSink()
		err := NewLocalizedListValidator(items, "Keywords", LanguageOptions{CheckAvailability: true, AvailableLanguages: available}).Validate(context.Background(), sink)
		require.NoError(t, err)
		assert.Equal(t, []string{"Language 'en' is not allowed. Allowed values are: ."}, sink.Messages("Keywords[0].Language"))
	}
}

func TestLocalizedListValidator_NoModeChecksShapeOnly(t *testing.T) {
	items := []models.LanguageItem{{Language: "en", Value: "Keyword"}}

	sink := NewErrorSink()
	require.NoError(t, NewLocalizedListValidator(items, "Keywords", LanguageOptions{AvailableLanguages: []string{"fi"}}).Validate(context.Background(), sink))
	assert.True(t, sink.IsValid(), sink.String())
}

func TestLocalizedListValidator_NilItemsWithRequiredLanguages(t *testing.T) {
	sink := NewErrorSink()
	err := NewLocalizedListValidator([]models.LocalizedListItem(nil), "Names", LanguageOptions{RequiredLanguages: []string{"fi", "sv"}}).Validate(context.Background(), sink)
	require.NoError(t, err)
	assert.Len(t, sink.Messages("Names"), 2)
}

func TestLocalizedListValidator_ConflictingModes(t *testing.T) {
	opts := LanguageOptions{RequiredLanguages: []string{"fi"}, CheckAvailability: true}
	err := NewLocalizedListValidator(names("fi", "Nimi"), "Names", opts).Validate(context.Background(), NewErrorSink())
	assert.ErrorIs(t, err, ErrConflictingLanguageModes)
}

func TestLocalizedListValidator_AllowedTypes(t *testing.T) {
	items := []models.LocalizedListItem{{Type: "Nickname", Language: "fi", Value: "Nimi"}}

	sink := NewErrorSink()
	require.NoError(t, NewLocalizedListValidator(items, "Names", LanguageOptions{AllowedTypes: nameTypes}).Validate(context.Background(), sink))
	assert.True(t, sink.Has("Names[0].Type"))
}

func TestLanguageCodeListValidator(t *testing.T) {
	ctx := context.Background()
	m, lookups := newLookupMocks(t)
	m.codes.EXPECT().LanguageExists(ctx, "fi").Return(true, nil)
	m.codes.EXPECT().LanguageExists(ctx, "se").Return(false, nil)

	sink := NewErrorSink()
	err := NewLanguageCodeListValidator([]string{"fi", "", "not a code", "se"}, "Languages", lookups.Codes).Validate(ctx, sink)
	require.NoError(t, err)
	assert.Equal(t, []string{"Languages[1]", "Languages[2]", "Languages[3]"}, sink.Keys())
	assert.Equal(t, "Language code 'se' not found.", sink.First("Languages[3]"))
}

func TestUnionOf(t *testing.T) {
	assert.Equal(t, []string{"fi", "sv", "en"}, unionOf([]string{"fi", " sv"}, nil, []string{"sv", "", "en", "fi"}))
	assert.Nil(t, unionOf())
}
