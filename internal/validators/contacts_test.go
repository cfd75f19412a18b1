package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-registry-validator/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhoneListValidator(t *testing.T) {
	ctx := context.Background()
	m, lookups := newLookupMocks(t)
	m.codes.EXPECT().DialCodeExists(ctx, "+358").Return(true, nil)
	m.codes.EXPECT().DialCodeExists(ctx, "+000").Return(false, nil)

	items := []models.Phone{
		{PrefixNumber: ptr("+358"), Number: "401234567", ServiceChargeType: models.ChargeTypeFree, Language: "fi"},
		{PrefixNumber: ptr("+000"), Number: "", Language: "fi"},
		{Number: "0800123", IsFinnishServiceNumber: true, ServiceChargeType: models.ChargeTypeOther, Language: "sv"},
		{Number: "0800123", ServiceChargeType: "Sometimes", Language: "fi"},
	}

	sink := NewErrorSink()
	require.NoError(t, NewPhoneListValidator(items, "PhoneNumbers", LanguageOptions{}, lookups.Codes).Validate(ctx, sink))
	assert.Equal(t, []string{
		"PhoneNumbers[1].Number",
		"PhoneNumbers[1].PrefixNumber",
		"PhoneNumbers[2].ChargeDescription",
		"PhoneNumbers[3].ServiceChargeType",
	}, sink.Keys())
	assert.Equal(t, "Dial code '+000' not found.", sink.First("PhoneNumbers[1].PrefixNumber"))
}

func TestPhoneListValidator_RequiredLanguages(t *testing.T) {
	items := []models.Phone{{Number: "0800123", Language: "fi"}}

	sink := NewErrorSink()
	err := NewPhoneListValidator(items, "PhoneNumbers", LanguageOptions{RequiredLanguages: []string{"fi", "sv"}}, nil).Validate(context.Background(), sink)
	require.NoError(t, err)
	assert.Equal(t, []string{"Required value is missing for language 'sv'."}, sink.Messages("PhoneNumbers"))
}

func TestEmailListValidator(t *testing.T) {
	items := []models.Email{
		{Value: "info@example.fi", Language: "fi"},
		{Value: "Info <info@example.fi>", Language: "fi"},
		{Value: "not an email", Language: "fi"},
		{Value: " ", Language: "fi"},
	}

	sink := NewErrorSink()
	require.NoError(t, NewEmailListValidator(items, "Emails", LanguageOptions{}).Validate(context.Background(), sink))
	assert.Equal(t, []string{"Emails[1].Value", "Emails[2].Value", "Emails[3].Value"}, sink.Keys())
}

func TestEmailListValidator_MalformedDomains(t *testing.T) {
	tests := []string{"x@-.-", "a@b", "user@localhost"}
	for _, value := range tests {
		t.Run(value, func(t *testing.T) {
			sink := NewErrorSink()
			items := []models.Email{{Value: value, Language: "fi"}}
			require.NoError(t, NewEmailListValidator(items, "Emails", LanguageOptions{}).Validate(context.Background(), sink))
			assert.Equal(t, []string{"'" + value + "' is not a valid email address."}, sink.Messages("Emails[0].Value"))
		})
	}
}

func TestWebPageListValidator(t *testing.T) {
	items := []models.WebPage{
		{URL: "https://www.suomi.fi", Language: "fi"},
		{URL: "ftp://files.example.fi", Language: "fi"},
		{URL: "www.example.fi", Language: "fi"},
		{URL: "", Language: "sv"},
	}

	sink := NewErrorSink()
	require.NoError(t, NewWebPageListValidator(items, "WebPages", LanguageOptions{CheckAvailability: true, AvailableLanguages: []string{"fi"}}).Validate(context.Background(), sink))
	assert.Equal(t, []string{"WebPages[3].Language", "WebPages[1].Url", "WebPages[2].Url", "WebPages[3].Url"}, sink.Keys())
}

func TestWebPageListValidator_MalformedHosts(t *testing.T) {
	tests := []struct {
		url   string
		valid bool
	}{
		{url: "https://:80"},
		{url: "http://-"},
		{url: "http://-example.fi/path"},
		{url: "https:///path"},
		{url: "https://www.suomi.fi:8443/palvelut?q=1", valid: true},
		{url: "http://192.168.1.10/", valid: true},
		{url: "http://[::1]:8080/", valid: true},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			sink := NewErrorSink()
			items := []models.WebPage{{URL: tt.url, Language: "fi"}}
			require.NoError(t, NewWebPageListValidator(items, "WebPages", LanguageOptions{}).Validate(context.Background(), sink))
			if tt.valid {
				assert.True(t, sink.IsValid(), sink.String())
				return
			}
			assert.Equal(t, []string{"'" + tt.url + "' is not a valid url."}, sink.Messages("WebPages[0].Url"))
		})
	}
}

func TestAttachmentListValidator(t *testing.T) {
	items := []models.Attachment{
		{Name: "Lomake", URL: "https://example.fi/lomake.pdf", Language: "fi"},
		{URL: "https://example.fi/blankett.pdf", Language: "sv"},
	}

	sink := NewErrorSink()
	require.NoError(t, NewAttachmentListValidator(items, "Attachments", LanguageOptions{}).Validate(context.Background(), sink))
	assert.Equal(t, []string{"Attachments[1].Name"}, sink.Keys())
}

func TestLawListValidator(t *testing.T) {
	items := []models.Law{
		{
			Names:    []models.LanguageItem{{Language: "fi", Value: "Laki"}},
			WebPages: []models.WebPage{{URL: "https://finlex.fi", Language: "fi"}},
		},
		{},
		{Names: []models.LanguageItem{{Language: "en", Value: "Act"}}},
	}

	sink := NewErrorSink()
	require.NoError(t, NewLawListValidator(items, "Legislation", LanguageOptions{CheckAvailability: true, AvailableLanguages: []string{"fi"}}).Validate(context.Background(), sink))
	assert.Equal(t, []string{"Legislation[1]", "Legislation[2].Names[0].Language"}, sink.Keys())
}

func TestNameSummaryValidator(t *testing.T) {
	names := []models.LocalizedListItem{
		{Type: models.NameTypeName, Language: "fi", Value: "Rakennuslupa"},
		{Type: models.NameTypeAlternativeName, Language: "sv", Value: "Bygglov"},
	}
	descriptions := []models.LocalizedListItem{
		{Type: models.DescriptionTypeSummary, Language: "fi", Value: " rakennuslupa "},
		{Type: models.DescriptionTypeSummary, Language: "sv", Value: "Bygglov"},
	}

	sink := NewErrorSink()
	require.NoError(t, NewNameSummaryValidator(names, descriptions, "Names", testPolicy(t, 9)).Validate(context.Background(), sink))
	assert.Equal(t, []string{"Summary cannot be the same as name for language 'fi'."}, sink.Messages("Names"))

	sink = NewErrorSink()
	require.NoError(t, NewNameSummaryValidator(names, descriptions, "Names", testPolicy(t, 8)).Validate(context.Background(), sink))
	assert.True(t, sink.IsValid())
}

func TestOrganizationIDValidator(t *testing.T) {
	ctx := context.Background()
	known, unknown := uuid.New(), uuid.New()
	m, lookups := newLookupMocks(t)
	m.orgs.EXPECT().OrganizationExists(ctx, known).Return(true, nil)
	m.orgs.EXPECT().OrganizationExists(ctx, unknown).Return(false, nil)

	sink := NewErrorSink()
	err := runAll(ctx, sink,
		NewOrganizationIDValidator(ptr(known.String()), "OrganizationId", lookups.Organizations).Required(),
		NewOrganizationIDValidator(nil, "MainOrganizationId", lookups.Organizations).Required(),
		NewOrganizationListValidator([]string{"x", unknown.String()}, "OtherResponsibleOrganizations", lookups.Organizations),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"MainOrganizationId",
		"OtherResponsibleOrganizations[0]",
		"OtherResponsibleOrganizations[1]",
	}, sink.Keys())
}

func TestOrganizationLanguagesValidator(t *testing.T) {
	orgID := uuid.New()
	userOrg := uuid.New()
	editor := models.Scope{Version: 11, Role: models.RolePete, OrganizationIDs: []uuid.UUID{userOrg}}
	admin := models.Scope{Version: 11, Role: models.RoleEeva}

	t.Run("language outside the organization", func(t *testing.T) {
		ctx := context.Background()
		m, lookups := newLookupMocks(t)
		m.orgs.EXPECT().UserOrganizationLanguages(ctx, orgID, []uuid.UUID{userOrg}).Return([]string{"fi", "sv"}, nil)

		sink := NewErrorSink()
		v := NewOrganizationLanguagesValidator(orgID.String(), []string{"fi", "en"}, models.Published, editor, lookups.Organizations)
		require.NoError(t, v.Validate(ctx, sink))
		assert.Equal(t, []string{"Language 'en' is not available for organization '" + orgID.String() + "'."}, sink.Messages("OrganizationId"))
	})

	t.Run("lookup failure is a violation", func(t *testing.T) {
		ctx := context.Background()
		m, lookups := newLookupMocks(t)
		m.orgs.EXPECT().UserOrganizationLanguages(ctx, orgID, []uuid.UUID{userOrg}).Return(nil, errors.New("not the user's organization"))

		sink := NewErrorSink()
		v := NewOrganizationLanguagesValidator(orgID.String(), []string{"fi"}, models.Published, editor, lookups.Organizations)
		require.NoError(t, v.Validate(ctx, sink))
		assert.Equal(t, []string{"Organization '" + orgID.String() + "' is not one of the user's organizations."}, sink.Messages("OrganizationId"))
	})

	t.Run("admin is not bound to organizations", func(t *testing.T) {
		ctx := context.Background()
		m, lookups := newLookupMocks(t)
		m.orgs.EXPECT().UserOrganizationLanguages(ctx, orgID, nil).Return([]string{"fi"}, nil)

		sink := NewErrorSink()
		v := NewOrganizationLanguagesValidator(orgID.String(), []string{"fi"}, models.Published, admin, lookups.Organizations)
		require.NoError(t, v.Validate(ctx, sink))
		assert.True(t, sink.IsValid())
	})

	t.Run("unknown organization is not queried for languages", func(t *testing.T) {
		ctx := context.Background()
		m, lookups := newLookupMocks(t)
		m.orgs.EXPECT().OrganizationExists(ctx, orgID).Return(false, nil)

		value := orgID.String()
		sink := NewErrorSink()
		require.NoError(t, runAll(ctx, sink,
			NewOrganizationIDValidator(&value, "OrganizationId", lookups.Organizations),
			NewOrganizationLanguagesValidator(value, []string{"fi"}, models.Published, editor, lookups.Organizations),
		))
		assert.Equal(t, []string{"Organization with id '" + value + "' not found."}, sink.Messages("OrganizationId"))
	})

	t.Run("drafts make no lookup", func(t *testing.T) {
		_, lookups := newLookupMocks(t)
		sink := NewErrorSink()
		v := NewOrganizationLanguagesValidator(orgID.String(), []string{"en"}, models.Draft, editor, lookups.Organizations)
		require.NoError(t, v.Validate(context.Background(), sink))
		assert.True(t, sink.IsValid())
	})
}
