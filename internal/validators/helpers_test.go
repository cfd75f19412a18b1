package validators

import (
	"testing"

	"github.com/MKhiriev/go-registry-validator/internal/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type lookupMocks struct {
	codes    *mock.MockCodeLookup
	orgs     *mock.MockOrganizationLookup
	taxonomy *mock.MockTaxonomyLookup
	channels *mock.MockChannelLookup
	services *mock.MockServiceLookup
	gds      *mock.MockGeneralDescriptionLookup
}

// newLookupMocks returns strict mocks: any call without an expectation fails the test.
func newLookupMocks(t *testing.T) (*lookupMocks, Lookups) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &lookupMocks{
		codes:    mock.NewMockCodeLookup(ctrl),
		orgs:     mock.NewMockOrganizationLookup(ctrl),
		taxonomy: mock.NewMockTaxonomyLookup(ctrl),
		channels: mock.NewMockChannelLookup(ctrl),
		services: mock.NewMockServiceLookup(ctrl),
		gds:      mock.NewMockGeneralDescriptionLookup(ctrl),
	}
	return m, Lookups{
		Codes:               m.codes,
		Organizations:       m.orgs,
		Taxonomy:            m.taxonomy,
		Channels:            m.channels,
		Services:            m.services,
		GeneralDescriptions: m.gds,
	}
}

func testPolicy(t *testing.T, version int) Policy {
	t.Helper()
	p, err := PolicyFor(version, DefaultLimits())
	require.NoError(t, err)
	return p
}

func ptr[T any](v T) *T { return &v }
