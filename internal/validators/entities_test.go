package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-registry-validator/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entityCase struct {
	name  string
	build func(deps Deps) (Validator, error)
}

// nilModelCases builds every entity validator around a nil candidate.
func nilModelCases() []entityCase {
	return []entityCase{
		{"service", func(d Deps) (Validator, error) { return NewServiceValidator(nil, nil, d) }},
		{"organization", func(d Deps) (Validator, error) { return NewOrganizationValidator(nil, nil, d) }},
		{"electronic channel", func(d Deps) (Validator, error) { return NewElectronicChannelValidator(nil, nil, d) }},
		{"phone channel", func(d Deps) (Validator, error) { return NewPhoneChannelValidator(nil, nil, d) }},
		{"printable form channel", func(d Deps) (Validator, error) { return NewPrintableFormChannelValidator(nil, nil, d) }},
		{"service location channel", func(d Deps) (Validator, error) { return NewServiceLocationChannelValidator(nil, nil, d) }},
		{"web page channel", func(d Deps) (Validator, error) { return NewWebPageChannelValidator(nil, nil, d) }},
		{"service collection", func(d Deps) (Validator, error) { return NewServiceCollectionValidator(nil, nil, d) }},
		{"general description", func(d Deps) (Validator, error) { return NewGeneralDescriptionValidator(nil, nil, d) }},
		{"service connections", func(d Deps) (Validator, error) { return NewServiceConnectionsValidator(nil, d) }},
		{"channel connections", func(d Deps) (Validator, error) { return NewChannelConnectionsValidator(nil, d) }},
	}
}

func TestEntityValidators_NilModel(t *testing.T) {
	for _, tc := range nilModelCases() {
		t.Run(tc.name, func(t *testing.T) {
			_, lookups := newLookupMocks(t)
			v, err := tc.build(Deps{Lookups: lookups, Policy: testPolicy(t, 11)})
			require.NoError(t, err)

			sink := NewErrorSink()
			require.NoError(t, v.Validate(context.Background(), sink))
			assert.True(t, sink.IsValid())
		})
	}
}

func TestEntityValidators_MissingDependency(t *testing.T) {
	for _, tc := range nilModelCases() {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build(Deps{Policy: testPolicy(t, 11)})
			assert.ErrorIs(t, err, ErrMissingDependency)
		})
	}
}

func editorScope(orgs ...uuid.UUID) models.Scope {
	return models.Scope{Version: 11, Role: models.RoleShirley, OrganizationIDs: orgs}
}

func TestServiceValidator_Publish(t *testing.T) {
	orgID := uuid.New()
	service := func() *models.Service {
		return &models.Service{
			Type:                models.ServiceTypeService,
			ServiceNames:        nameItems("fi"),
			ServiceDescriptions: descriptions("fi"),
			OrganizationID:      ptr(orgID.String()),
			PublishingStatus:    string(models.Published),
		}
	}

	t.Run("complete service", func(t *testing.T) {
		ctx := context.Background()
		m, lookups := newLookupMocks(t)
		m.orgs.EXPECT().OrganizationExists(ctx, orgID).Return(true, nil)
		m.orgs.EXPECT().UserOrganizationLanguages(ctx, orgID, []uuid.UUID{orgID}).Return([]string{"fi", "sv"}, nil)

		v, err := NewServiceValidator(service(), nil, Deps{Lookups: lookups, Policy: testPolicy(t, 11), Scope: editorScope(orgID)})
		require.NoError(t, err)
		sink := NewErrorSink()
		require.NoError(t, v.Validate(ctx, sink))
		assert.True(t, sink.IsValid(), sink.String())
	})

	t.Run("incomplete language version", func(t *testing.T) {
		ctx := context.Background()
		m, lookups := newLookupMocks(t)
		m.orgs.EXPECT().OrganizationExists(ctx, orgID).Return(true, nil)
		m.orgs.EXPECT().UserOrganizationLanguages(ctx, orgID, []uuid.UUID{orgID}).Return([]string{"fi", "sv"}, nil)

		s := service()
		s.ServiceNames = nameItems("fi", "sv")

		v, err := NewServiceValidator(s, nil, Deps{Lookups: lookups, Policy: testPolicy(t, 11), Scope: editorScope(orgID)})
		require.NoError(t, err)
		sink := NewErrorSink()
		require.NoError(t, v.Validate(ctx, sink))
		assert.Equal(t, []string{"ServiceDescriptions"}, sink.Keys())
	})

	t.Run("draft without organization", func(t *testing.T) {
		_, lookups := newLookupMocks(t)

		s := service()
		s.OrganizationID = nil
		s.PublishingStatus = string(models.Draft)

		v, err := NewServiceValidator(s, nil, Deps{Lookups: lookups, Policy: testPolicy(t, 11), Scope: editorScope()})
		require.NoError(t, err)
		sink := NewErrorSink()
		require.NoError(t, v.Validate(context.Background(), sink))
		assert.True(t, sink.IsValid(), sink.String())
	})

	t.Run("published without organization", func(t *testing.T) {
		_, lookups := newLookupMocks(t)

		s := service()
		s.OrganizationID = nil

		v, err := NewServiceValidator(s, nil, Deps{Lookups: lookups, Policy: testPolicy(t, 11), Scope: editorScope()})
		require.NoError(t, err)
		sink := NewErrorSink()
		require.NoError(t, v.Validate(context.Background(), sink))
		assert.Equal(t, []string{"OrganizationId"}, sink.Keys())
	})

	t.Run("general description not published", func(t *testing.T) {
		ctx := context.Background()
		gdID := uuid.New()
		m, lookups := newLookupMocks(t)
		m.gds.EXPECT().GeneralDescription(ctx, gdID).Return(&models.GeneralDescriptionInfo{ID: gdID, Status: models.Draft}, nil)

		s := service()
		s.OrganizationID = nil
		s.PublishingStatus = string(models.Draft)
		s.GeneralDescriptionID = ptr(gdID.String())

		v, err := NewServiceValidator(s, nil, Deps{Lookups: lookups, Policy: testPolicy(t, 11), Scope: editorScope()})
		require.NoError(t, err)
		sink := NewErrorSink()
		require.NoError(t, v.Validate(ctx, sink))
		assert.Equal(t, []string{"GeneralDescriptionId"}, sink.Keys())
	})

	t.Run("illegal status change", func(t *testing.T) {
		_, lookups := newLookupMocks(t)

		s := service()
		s.OrganizationID = nil
		s.PublishingStatus = string(models.Draft)
		current := service()

		v, err := NewServiceValidator(s, current, Deps{Lookups: lookups, Policy: testPolicy(t, 11), Scope: editorScope()})
		require.NoError(t, err)
		sink := NewErrorSink()
		require.NoError(t, v.Validate(context.Background(), sink))
		assert.Equal(t, []string{"PublishingStatus"}, sink.Keys())
	})

	t.Run("malformed status is fatal", func(t *testing.T) {
		_, lookups := newLookupMocks(t)

		s := service()
		s.PublishingStatus = "Hidden"

		v, err := NewServiceValidator(s, nil, Deps{Lookups: lookups, Policy: testPolicy(t, 11)})
		require.NoError(t, err)
		assert.ErrorIs(t, v.Validate(context.Background(), NewErrorSink()), ErrInvalidPublishingStatus)
	})
}

func TestServiceValidator_ProducersAndTargetGroups(t *testing.T) {
	ctx := context.Background()
	orgID, other := uuid.New(), uuid.New()
	m, lookups := newLookupMocks(t)
	m.orgs.EXPECT().OrganizationExists(ctx, orgID).Return(true, nil).Times(2)
	m.orgs.EXPECT().OrganizationExists(ctx, other).Return(true, nil)
	m.taxonomy.EXPECT().NotExistingURIs(ctx, models.TaxonomyLifeEvent, []string{uriLE}).Return(nil, nil)

	s := &models.Service{
		ServiceNames:        nameItems("fi"),
		ServiceDescriptions: descriptions("fi"),
		OrganizationID:      ptr(orgID.String()),
		LifeEvents:          []string{uriLE},
		ServiceProducers: []models.ServiceProducer{
			{ProvisionType: models.ProvisionTypeSelfProduced, Organizations: []string{orgID.String(), other.String()}},
			{ProvisionType: models.ProvisionTypePurchase},
		},
	}

	v, err := NewServiceValidator(s, nil, Deps{Lookups: lookups, Policy: testPolicy(t, 11), Scope: editorScope(orgID)})
	require.NoError(t, err)
	sink := NewErrorSink()
	require.NoError(t, v.Validate(ctx, sink))
	assert.Equal(t, []string{"LifeEvents", "ServiceProducers[0].Organizations", "ServiceProducers[1].Organizations"}, sink.Keys())
	assert.Equal(t, "Self produced service producers must be responsible organizations: "+other.String()+".", sink.First("ServiceProducers[0].Organizations"))
}

func TestOrganizationValidator(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	m, lookups := newLookupMocks(t)
	m.orgs.EXPECT().OrganizationExists(ctx, id).Return(true, nil)

	o := &models.Organization{
		ID:                   ptr(id.String()),
		ParentOrganizationID: ptr(id.String()),
		OrganizationType:     models.OrganizationTypeMunicipality,
		BusinessCode:         "0112038-8",
		OrganizationNames:    nameItems("fi"),
		DisplayNameTypes: []models.NameTypeByLanguage{
			{Type: models.NameTypeAlternativeName, Language: "fi"},
		},
		PublishingStatus: string(models.Draft),
	}

	v, err := NewOrganizationValidator(o, nil, Deps{Lookups: lookups, Policy: testPolicy(t, 11)})
	require.NoError(t, err)
	sink := NewErrorSink()
	require.NoError(t, v.Validate(ctx, sink))
	assert.Equal(t, []string{"Municipality", "BusinessCode", "ParentOrganizationId", "DisplayNameTypes[0]"}, sink.Keys())
}

func TestOrganizationValidator_TypeRequiredOnCreate(t *testing.T) {
	_, lookups := newLookupMocks(t)
	o := &models.Organization{OrganizationNames: nameItems("fi")}

	v, err := NewOrganizationValidator(o, nil, Deps{Lookups: lookups, Policy: testPolicy(t, 11)})
	require.NoError(t, err)
	sink := NewErrorSink()
	require.NoError(t, v.Validate(context.Background(), sink))
	assert.Equal(t, []string{"OrganizationType"}, sink.Keys())

	v, err = NewOrganizationValidator(o, &models.Organization{OrganizationType: models.OrganizationTypeState}, Deps{Lookups: lookups, Policy: testPolicy(t, 11)})
	require.NoError(t, err)
	sink = NewErrorSink()
	require.NoError(t, v.Validate(context.Background(), sink))
	assert.True(t, sink.IsValid(), sink.String())
}

func TestChannelValidators(t *testing.T) {
	channel := func(status models.PublishingStatus) models.ServiceChannel {
		return models.ServiceChannel{
			ServiceChannelNames:        []models.LanguageItem{{Language: "fi", Value: "Kanava"}},
			ServiceChannelDescriptions: descriptions("fi"),
			PublishingStatus:           string(status),
		}
	}

	t.Run("electronic channel signature quantity", func(t *testing.T) {
		_, lookups := newLookupMocks(t)
		m := &models.ElectronicChannel{
			ServiceChannel:    channel(models.Draft),
			RequiresSignature: true,
			SignatureQuantity: ptr(0),
		}
		v, err := NewElectronicChannelValidator(m, nil, Deps{Lookups: lookups, Policy: testPolicy(t, 11)})
		require.NoError(t, err)
		sink := NewErrorSink()
		require.NoError(t, v.Validate(context.Background(), sink))
		assert.Equal(t, []string{"SignatureQuantity"}, sink.Keys())
	})

	t.Run("published web page channel needs its url in every language", func(t *testing.T) {
		_, lookups := newLookupMocks(t)
		m := &models.WebPageChannel{ServiceChannel: channel(models.Published)}
		m.OrganizationID = nil
		v, err := NewWebPageChannelValidator(m, nil, Deps{Lookups: lookups, Policy: testPolicy(t, 11)})
		require.NoError(t, err)
		sink := NewErrorSink()
		require.NoError(t, v.Validate(context.Background(), sink))
		assert.Equal(t, []string{"OrganizationId", "WebPages"}, sink.Keys())
	})

	t.Run("printable form delivery address must be postal", func(t *testing.T) {
		_, lookups := newLookupMocks(t)
		m := &models.PrintableFormChannel{
			ServiceChannel:  channel(models.Draft),
			DeliveryAddress: &models.Address{Type: "Visiting", SubType: "Single", StreetAddress: street("")},
		}
		v, err := NewPrintableFormChannelValidator(m, nil, Deps{Lookups: lookups, Policy: testPolicy(t, 11)})
		require.NoError(t, err)
		sink := NewErrorSink()
		require.NoError(t, v.Validate(context.Background(), sink))
		assert.Equal(t, []string{"DeliveryAddress.Type"}, sink.Keys())
	})

	t.Run("published service location needs a visiting address", func(t *testing.T) {
		ctx := context.Background()
		orgID := uuid.New()
		mocks, lookups := newLookupMocks(t)
		mocks.orgs.EXPECT().OrganizationExists(ctx, orgID).Return(true, nil)
		mocks.orgs.EXPECT().UserOrganizationLanguages(ctx, orgID, []uuid.UUID{orgID}).Return([]string{"fi"}, nil)

		m := &models.ServiceLocationChannel{ServiceChannel: channel(models.Published)}
		m.OrganizationID = ptr(orgID.String())
		v, err := NewServiceLocationChannelValidator(m, nil, Deps{Lookups: lookups, Policy: testPolicy(t, 11), Scope: editorScope(orgID)})
		require.NoError(t, err)
		sink := NewErrorSink()
		require.NoError(t, v.Validate(ctx, sink))
		assert.Equal(t, []string{"Addresses"}, sink.Keys())
	})

	t.Run("phone channel services must exist", func(t *testing.T) {
		ctx := context.Background()
		known, unknown := uuid.New(), uuid.New()
		mocks, lookups := newLookupMocks(t)
		mocks.services.EXPECT().NotExistingServices(ctx, []uuid.UUID{known, unknown}).Return([]uuid.UUID{unknown}, nil)

		m := &models.PhoneChannel{ServiceChannel: channel(models.Draft)}
		m.Services = []string{known.String(), "bad", unknown.String(), known.String()}
		v, err := NewPhoneChannelValidator(m, nil, Deps{Lookups: lookups, Policy: testPolicy(t, 11)})
		require.NoError(t, err)
		sink := NewErrorSink()
		require.NoError(t, v.Validate(ctx, sink))
		assert.Equal(t, []string{KeyServiceRelations + "[1]", KeyServiceRelations}, sink.Keys())
	})
}

func TestServiceCollectionValidator(t *testing.T) {
	_, lookups := newLookupMocks(t)
	c := &models.ServiceCollection{
		ServiceCollectionNames: []models.LanguageItem{{Language: "fi", Value: "Kokoelma"}},
		ServiceCollectionDescriptions: []models.LocalizedListItem{
			{Type: models.DescriptionTypeSummary, Language: "fi", Value: "Lyhyesti"},
		},
	}

	v, err := NewServiceCollectionValidator(c, nil, Deps{Lookups: lookups, Policy: testPolicy(t, 11)})
	require.NoError(t, err)
	sink := NewErrorSink()
	require.NoError(t, v.Validate(context.Background(), sink))
	assert.Equal(t, []string{"ServiceCollectionDescriptions[0].Type"}, sink.Keys())
}

func TestGeneralDescriptionValidator(t *testing.T) {
	_, lookups := newLookupMocks(t)
	g := &models.GeneralDescription{
		Type:             models.ServiceTypeService,
		Names:            nameItems("fi"),
		Descriptions:     []models.LocalizedListItem{{Type: models.DescriptionTypeSummary, Language: "fi", Value: "name fi"}},
		PublishingStatus: string(models.Published),
	}

	v, err := NewGeneralDescriptionValidator(g, nil, Deps{Lookups: lookups, Policy: testPolicy(t, 11)})
	require.NoError(t, err)
	sink := NewErrorSink()
	require.NoError(t, v.Validate(context.Background(), sink))
	assert.Equal(t, []string{"Descriptions", "Names"}, sink.Keys())
	assert.Equal(t, []string{"Summary cannot be the same as name for language 'fi'."}, sink.Messages("Names"))
}
