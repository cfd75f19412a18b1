// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-registry-validator/models"
	"github.com/google/uuid"
)

// ServiceRelationListValidator checks that every referenced service exists.
// Unknown services are reported together at key.
type ServiceRelationListValidator struct {
	ids      []string
	key      string
	services ServiceLookup
}

// NewServiceRelationListValidator validates ids; malformed ids are reported at key[i].
func NewServiceRelationListValidator(ids []string, key string, services ServiceLookup) *ServiceRelationListValidator {
	return &ServiceRelationListValidator{ids: ids, key: key, services: services}
}

func (v *ServiceRelationListValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	if len(v.ids) == 0 {
		return nil
	}
	ids := parseGUIDList(v.ids, v.key, sink)
	return checkServices(ctx, v.services, ids, v.key, sink)
}

func checkServices(ctx context.Context, services ServiceLookup, ids []uuid.UUID, key string, sink *ErrorSink) error {
	if len(ids) == 0 {
		return nil
	}
	if services == nil {
		return fmt.Errorf("%w: service lookup", ErrMissingDependency)
	}
	missing, err := services.NotExistingServices(ctx, ids)
	if err != nil {
		return lookupError("services", err)
	}
	if len(missing) > 0 {
		sink.AddErrorf(key, msgServicesNotFound, joinIDs(missing))
	}
	return nil
}

// ConnectionListValidator checks the channel connections of a service.
type ConnectionListValidator struct {
	items []models.ServiceChannelConnection
	key   string
	deps  Deps
}

// NewConnectionListValidator validates items. Violations spanning several
// connections are reported at key, per connection ones at key[i].
func NewConnectionListValidator(items []models.ServiceChannelConnection, key string, deps Deps) *ConnectionListValidator {
	return &ConnectionListValidator{items: items, key: key, deps: deps}
}

func (v *ConnectionListValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	if len(v.items) == 0 {
		return nil
	}
	channels := v.deps.Lookups.Channels
	if channels == nil {
		return fmt.Errorf("%w: channel lookup", ErrMissingDependency)
	}

	ids := make([]uuid.UUID, len(v.items))
	valid := make([]bool, len(v.items))
	var unique []uuid.UUID
	for i, c := range v.items {
		id, ok := parseGUID(c.ServiceChannelID)
		if !ok {
			sink.AddErrorf(indexPath(v.key, i)+".ServiceChannelId", msgInvalidGUID, c.ServiceChannelID)
			continue
		}
		ids[i], valid[i] = id, true
		if !slices.Contains(unique, id) {
			unique = append(unique, id)
		}
	}

	infos := make(map[uuid.UUID]*models.ChannelInfo, len(unique))
	if len(unique) > 0 {
		missing, err := channels.NotExistingChannels(ctx, unique)
		if err != nil {
			return lookupError("channels", err)
		}
		if len(missing) > 0 {
			sink.AddErrorf(v.key, msgChannelsNotFound, joinIDs(missing))
		}

		var notVisible []uuid.UUID
		for _, id := range unique {
			if slices.Contains(missing, id) {
				continue
			}
			info, err := channels.ChannelInfo(ctx, id)
			if err != nil {
				return lookupError("channel", err)
			}
			if info == nil {
				continue
			}
			infos[id] = info
			if !channelVisible(info, v.deps.Scope) {
				notVisible = append(notVisible, id)
			}
		}
		if len(notVisible) > 0 {
			sink.AddErrorf(v.key, msgChannelsNotVisible, joinIDs(notVisible))
		}
	}

	var asti, extra []uuid.UUID
	for i, c := range v.items {
		if valid[i] {
			if info := infos[ids[i]]; info != nil && info.Type != models.ChannelTypeServiceLocation {
				if c.IsASTIConnection && !slices.Contains(asti, ids[i]) {
					asti = append(asti, ids[i])
				}
				if hasExtraData(c) && !slices.Contains(extra, ids[i]) {
					extra = append(extra, ids[i])
				}
			}
		}
		if err := runAll(ctx, sink, connectionDataValidators(c, indexPath(v.key, i), v.deps)...); err != nil {
			return err
		}
	}
	if len(asti) > 0 {
		sink.AddErrorf(v.key, msgASTINotAllowed, joinIDs(asti))
	}
	if len(extra) > 0 {
		sink.AddErrorf(v.key, msgExtraDataNotAllowed, joinIDs(extra))
	}
	return nil
}

// ServiceConnectionsValidator validates a replacement of the channel
// connections of one service.
type ServiceConnectionsValidator struct {
	model *models.ServiceConnections
	deps  Deps
}

// NewServiceConnectionsValidator returns the validator of model.
func NewServiceConnectionsValidator(model *models.ServiceConnections, deps Deps) (*ServiceConnectionsValidator, error) {
	if err := deps.Lookups.require(needCodes, needChannels, needServices); err != nil {
		return nil, err
	}
	return &ServiceConnectionsValidator{model: model, deps: deps}, nil
}

func (v *ServiceConnectionsValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	m := v.model
	if m == nil {
		return nil
	}

	raw := strings.TrimSpace(m.ServiceID)
	switch id, ok := parseGUID(raw); {
	case raw == "":
		sink.AddErrorf("ServiceId", msgRequired, "ServiceId")
	case !ok:
		sink.AddErrorf("ServiceId", msgInvalidGUID, raw)
	default:
		missing, err := v.deps.Lookups.Services.NotExistingServices(ctx, []uuid.UUID{id})
		if err != nil {
			return lookupError("services", err)
		}
		if len(missing) > 0 {
			sink.AddErrorf("ServiceId", msgServiceNotFound, id)
		}
	}

	if m.DeleteAllChannels && len(m.ChannelRelations) > 0 {
		sink.AddError(KeyChannelRelations, msgRelationsWithDeleteAll)
	}
	return NewConnectionListValidator(m.ChannelRelations, KeyChannelRelations, v.deps).Validate(ctx, sink)
}

// ChannelConnectionsValidator validates a replacement of the service
// connections of one channel.
type ChannelConnectionsValidator struct {
	model *models.ChannelConnections
	deps  Deps
}

// NewChannelConnectionsValidator returns the validator of model.
func NewChannelConnectionsValidator(model *models.ChannelConnections, deps Deps) (*ChannelConnectionsValidator, error) {
	if err := deps.Lookups.require(needCodes, needChannels, needServices); err != nil {
		return nil, err
	}
	return &ChannelConnectionsValidator{model: model, deps: deps}, nil
}

func (v *ChannelConnectionsValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	m := v.model
	if m == nil {
		return nil
	}

	var info *models.ChannelInfo
	raw := strings.TrimSpace(m.ServiceChannelID)
	switch id, ok := parseGUID(raw); {
	case raw == "":
		sink.AddErrorf("ServiceChannelId", msgRequired, "ServiceChannelId")
	case !ok:
		sink.AddErrorf("ServiceChannelId", msgInvalidGUID, raw)
	default:
		var err error
		if info, err = v.deps.Lookups.Channels.ChannelInfo(ctx, id); err != nil {
			return lookupError("channel", err)
		}
		if info == nil {
			sink.AddErrorf("ServiceChannelId", msgChannelNotFound, id)
		} else if !channelVisible(info, v.deps.Scope) {
			sink.AddErrorf("ServiceChannelId", msgChannelsNotVisible, id)
		}
	}

	if m.DeleteAllServices && len(m.ServiceRelations) > 0 {
		sink.AddError(KeyServiceRelations, msgRelationsWithDeleteAll)
	}
	if len(m.ServiceRelations) == 0 {
		return nil
	}

	var (
		serviceIDs  []uuid.UUID
		asti, extra bool
	)
	for i, rel := range m.ServiceRelations {
		path := indexPath(KeyServiceRelations, i)
		if id, ok := parseGUID(rel.ServiceID); ok {
			if !slices.Contains(serviceIDs, id) {
				serviceIDs = append(serviceIDs, id)
			}
		} else {
			sink.AddErrorf(path+".ServiceId", msgInvalidGUID, rel.ServiceID)
		}
		asti = asti || rel.IsASTIConnection
		extra = extra || hasExtraData(rel)

		if err := runAll(ctx, sink, connectionDataValidators(rel, path, v.deps)...); err != nil {
			return err
		}
	}

	if err := checkServices(ctx, v.deps.Lookups.Services, serviceIDs, KeyServiceRelations, sink); err != nil {
		return err
	}
	if info != nil && info.Type != models.ChannelTypeServiceLocation {
		if asti {
			sink.AddErrorf(KeyServiceRelations, msgASTINotAllowed, info.ID)
		}
		if extra {
			sink.AddErrorf(KeyServiceRelations, msgExtraDataNotAllowed, info.ID)
		}
	}
	return nil
}

// connectionDataValidators validates the connection-specific data of c.
func connectionDataValidators(c models.ServiceChannelConnection, path string, deps Deps) []Validator {
	opts := LanguageOptions{CheckAvailability: true, AvailableLanguages: deps.AvailableLanguages}
	descriptionOpts := opts
	descriptionOpts.AllowedTypes = []string{models.DescriptionTypeDescription, models.DescriptionTypeChargeTypeAdditionalInfo}

	validators := []Validator{
		NewLocalizedListValidator(c.Descriptions, path+".Descriptions", descriptionOpts),
		NewServiceHourListValidator(c.ServiceHours, path+".ServiceHours", deps.Policy),
	}
	if cd := c.ContactDetails; cd != nil {
		codes := deps.Lookups.Codes
		validators = append(validators,
			NewEmailListValidator(cd.Emails, path+".ContactDetails.Emails", opts),
			NewPhoneListValidator(cd.PhoneNumbers, path+".ContactDetails.PhoneNumbers", opts, codes),
			NewWebPageListValidator(cd.WebPages, path+".ContactDetails.WebPages", opts),
			NewAddressListValidator(cd.Addresses, path+".ContactDetails.Addresses", codes, models.AddressTypeVisiting, models.AddressTypePostal),
		)
	}
	return validators
}

func hasExtraData(c models.ServiceChannelConnection) bool {
	return len(c.ServiceHours) > 0 || !c.ContactDetails.IsEmpty()
}

// channelVisible reports whether the user may connect to the channel.
func channelVisible(info *models.ChannelInfo, scope models.Scope) bool {
	return info.IsVisibleForAll || scope.IsAdmin() || scope.OwnsOrganization(info.OrganizationID)
}

func joinIDs(ids []uuid.UUID) string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return strings.Join(out, ", ")
}
