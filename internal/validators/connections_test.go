package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-registry-validator/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceConnectionsValidator(t *testing.T) {
	ctx := context.Background()
	serviceID := uuid.New()
	userOrg, otherOrg := uuid.New(), uuid.New()
	missing, phone, location := uuid.New(), uuid.New(), uuid.New()

	m, lookups := newLookupMocks(t)
	m.services.EXPECT().NotExistingServices(ctx, []uuid.UUID{serviceID}).Return(nil, nil)
	m.channels.EXPECT().NotExistingChannels(ctx, []uuid.UUID{missing, phone, location}).Return([]uuid.UUID{missing}, nil)
	m.channels.EXPECT().ChannelInfo(ctx, phone).Return(&models.ChannelInfo{
		ID: phone, Type: models.ChannelTypePhone, OrganizationID: otherOrg, IsVisibleForAll: true,
	}, nil)
	m.channels.EXPECT().ChannelInfo(ctx, location).Return(&models.ChannelInfo{
		ID: location, Type: models.ChannelTypeServiceLocation, OrganizationID: otherOrg,
	}, nil)

	model := &models.ServiceConnections{
		ServiceID: serviceID.String(),
		ChannelRelations: []models.ServiceChannelConnection{
			{ServiceChannelID: missing.String()},
			{
				ServiceChannelID: phone.String(),
				IsASTIConnection: true,
				ServiceHours:     []models.ServiceHour{{ServiceHourType: models.ServiceHourTypeStandard}},
			},
			{ServiceChannelID: location.String(), IsASTIConnection: true},
			{ServiceChannelID: "bad"},
		},
	}

	v, err := NewServiceConnectionsValidator(model, Deps{Lookups: lookups, Policy: testPolicy(t, 11), Scope: editorScope(userOrg)})
	require.NoError(t, err)
	sink := NewErrorSink()
	require.NoError(t, v.Validate(ctx, sink))

	assert.Equal(t, []string{"ChannelRelations[3].ServiceChannelId", KeyChannelRelations}, sink.Keys())
	assert.Equal(t, []string{
		"Some of the service channels were not found: " + missing.String() + ".",
		"Some of the service channels are not visible for the user's organizations: " + location.String() + ".",
		"ASTI connections are allowed only for service location channels: " + phone.String() + ".",
		"Service hours and contact details are allowed only for service location channels: " + phone.String() + ".",
	}, sink.Messages(KeyChannelRelations))
}

func TestServiceConnectionsValidator_ServiceID(t *testing.T) {
	tests := []struct {
		name      string
		serviceID string
		want      string
	}{
		{name: "missing", serviceID: "", want: "ServiceId is required."},
		{name: "malformed", serviceID: "123", want: "'123' is not a valid GUID."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, lookups := newLookupMocks(t)
			v, err := NewServiceConnectionsValidator(&models.ServiceConnections{ServiceID: tt.serviceID}, Deps{Lookups: lookups, Policy: testPolicy(t, 11)})
			require.NoError(t, err)
			sink := NewErrorSink()
			require.NoError(t, v.Validate(context.Background(), sink))
			assert.Equal(t, []string{tt.want}, sink.Messages("ServiceId"))
		})
	}
}

func TestServiceConnectionsValidator_DeleteAllWithRelations(t *testing.T) {
	ctx := context.Background()
	serviceID, channelID := uuid.New(), uuid.New()
	m, lookups := newLookupMocks(t)
	m.services.EXPECT().NotExistingServices(ctx, []uuid.UUID{serviceID}).Return([]uuid.UUID{serviceID}, nil)
	m.channels.EXPECT().NotExistingChannels(ctx, []uuid.UUID{channelID}).Return(nil, nil)
	m.channels.EXPECT().ChannelInfo(ctx, channelID).Return(&models.ChannelInfo{
		ID: channelID, Type: models.ChannelTypeWebPage, IsVisibleForAll: true,
	}, nil)

	model := &models.ServiceConnections{
		ServiceID:         serviceID.String(),
		DeleteAllChannels: true,
		ChannelRelations:  []models.ServiceChannelConnection{{ServiceChannelID: channelID.String()}},
	}

	v, err := NewServiceConnectionsValidator(model, Deps{Lookups: lookups, Policy: testPolicy(t, 11), Scope: editorScope()})
	require.NoError(t, err)
	sink := NewErrorSink()
	require.NoError(t, v.Validate(ctx, sink))
	assert.Equal(t, []string{"ServiceId", KeyChannelRelations}, sink.Keys())
	assert.Equal(t, []string{"Relations cannot be given when all relations are deleted."}, sink.Messages(KeyChannelRelations))
}

func TestChannelConnectionsValidator(t *testing.T) {
	ctx := context.Background()
	channelID, orgID := uuid.New(), uuid.New()
	known, unknown := uuid.New(), uuid.New()

	m, lookups := newLookupMocks(t)
	m.channels.EXPECT().ChannelInfo(ctx, channelID).Return(&models.ChannelInfo{
		ID: channelID, Type: models.ChannelTypeElectronic, OrganizationID: orgID,
	}, nil)
	m.services.EXPECT().NotExistingServices(ctx, []uuid.UUID{known, unknown}).Return([]uuid.UUID{unknown}, nil)

	model := &models.ChannelConnections{
		ServiceChannelID: channelID.String(),
		ServiceRelations: []models.ServiceChannelConnection{
			{ServiceID: known.String(), IsASTIConnection: true},
			{
				ServiceID: unknown.String(),
				ContactDetails: &models.ContactDetails{
					Emails: []models.Email{{Value: "info@example.fi", Language: "en"}},
				},
			},
		},
	}

	deps := Deps{
		Lookups:            lookups,
		Policy:             testPolicy(t, 11),
		Scope:              editorScope(orgID),
		AvailableLanguages: []string{"fi", "sv"},
	}
	v, err := NewChannelConnectionsValidator(model, deps)
	require.NoError(t, err)
	sink := NewErrorSink()
	require.NoError(t, v.Validate(ctx, sink))

	assert.Equal(t, []string{"ServiceRelations[1].ContactDetails.Emails[0].Language", KeyServiceRelations}, sink.Keys())
	assert.Equal(t, []string{
		"Some of the services were not found: " + unknown.String() + ".",
		"ASTI connections are allowed only for service location channels: " + channelID.String() + ".",
		"Service hours and contact details are allowed only for service location channels: " + channelID.String() + ".",
	}, sink.Messages(KeyServiceRelations))
}

func TestChannelConnectionsValidator_ChannelNotVisible(t *testing.T) {
	ctx := context.Background()
	channelID := uuid.New()
	m, lookups := newLookupMocks(t)
	m.channels.EXPECT().ChannelInfo(ctx, channelID).Return(&models.ChannelInfo{
		ID: channelID, Type: models.ChannelTypeServiceLocation, OrganizationID: uuid.New(),
	}, nil)

	v, err := NewChannelConnectionsValidator(&models.ChannelConnections{ServiceChannelID: channelID.String()},
		Deps{Lookups: lookups, Policy: testPolicy(t, 11), Scope: editorScope(uuid.New())})
	require.NoError(t, err)
	sink := NewErrorSink()
	require.NoError(t, v.Validate(ctx, sink))
	assert.Equal(t, []string{"ServiceChannelId"}, sink.Keys())
}

func TestChannelConnectionsValidator_ChannelNotFound(t *testing.T) {
	ctx := context.Background()
	channelID := uuid.New()
	m, lookups := newLookupMocks(t)
	m.channels.EXPECT().ChannelInfo(ctx, channelID).Return(nil, nil)

	v, err := NewChannelConnectionsValidator(&models.ChannelConnections{ServiceChannelID: channelID.String()},
		Deps{Lookups: lookups, Policy: testPolicy(t, 11), Scope: models.Scope{Version: 11, Role: models.RoleEeva}})
	require.NoError(t, err)
	sink := NewErrorSink()
	require.NoError(t, v.Validate(ctx, sink))
	assert.Equal(t, []string{"Service channel with id '" + channelID.String() + "' not found."}, sink.Messages("ServiceChannelId"))
}

func TestChannelConnectionsValidator_NoAvailableLanguages(t *testing.T) {
	ctx := context.Background()
	channelID, serviceID, orgID := uuid.New(), uuid.New(), uuid.New()

	m, lookups := newLookupMocks(t)
	m.channels.EXPECT().ChannelInfo(ctx, channelID).Return(&models.ChannelInfo{
		ID: channelID, Type: models.ChannelTypeServiceLocation, OrganizationID: orgID,
	}, nil)
	m.services.EXPECT().NotExistingServices(ctx, []uuid.UUID{serviceID}).Return(nil, nil)

	model := &models.ChannelConnections{
		ServiceChannelID: channelID.String(),
		ServiceRelations: []models.ServiceChannelConnection{{
			ServiceID: serviceID.String(),
			ContactDetails: &models.ContactDetails{
				Emails: []models.Email{{Value: "info@example.fi", Language: "fi"}},
			},
		}},
	}

	v, err := NewChannelConnectionsValidator(model, Deps{Lookups: lookups, Policy: testPolicy(t, 11), Scope: editorScope(orgID)})
	require.NoError(t, err)
	sink := NewErrorSink()
	require.NoError(t, v.Validate(ctx, sink))
	assert.Equal(t, []string{"ServiceRelations[0].ContactDetails.Emails[0].Language"}, sink.Keys())
}
