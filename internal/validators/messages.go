package validators

// Violation messages. Format verbs are filled by the rule that records them.
const (
	msgRequired             = "%s is required."
	msgRequiredWhenPublish  = "%s is required when publishing."
	msgInvalidGUID          = "'%s' is not a valid GUID."
	msgInvalidEnum          = "'%s' is not a valid value. Allowed values are: %s."
	msgDateOrder            = "ValidTo cannot be earlier than ValidFrom."
	msgStatusTransition     = "Publishing status cannot be changed from '%s' to '%s'."
	msgCodeNotFound         = "%s code '%s' not found."
	msgLanguageRequired     = "Language is required."
	msgLanguageNotAllowed   = "Language '%s' is not allowed. Allowed values are: %s."
	msgLanguageInvalid      = "'%s' is not a valid language code."
	msgLanguageMissing      = "Required value is missing for language '%s'."
	msgTypedLanguageMissing = "Required value of type '%s' is missing for language '%s'."
	msgValueRequired        = "Value is required."

	msgDialCodeNotFound   = "Dial code '%s' not found."
	msgChargeDescription  = "ChargeDescription is required when service charge type is '%s'."
	msgInvalidEmail       = "'%s' is not a valid email address."
	msgInvalidURL         = "'%s' is not a valid url."
	msgTaxonomyNotFound   = "Some of the %s were not found: %s."
	msgTaxonomyMaxCount   = "Maximum of %d %s allowed."
	msgServiceClassMax    = "Maximum of %d service classes allowed, %d are already attached by the general description."
	msgMainClassesOnly    = "At least one service class must be a sub class, only main classes were given: %s."
	msgTargetGroupMissing = "%s require target group '%s' (%s) or one of its sub target groups."

	msgAreasNotAllowed    = "Areas must be empty when area type is '%s'."
	msgAreasRequired      = "At least one area is required when area type is '%s'."
	msgAreaTypeRequired   = "AreaType is required when areas are given."
	msgAreaCodesRequired  = "At least one area code is required."
	msgAreaCodeNotFound   = "Area code '%s' not found for area type '%s'."
	msgSubTypeNotAllowed  = "SubType '%s' is not allowed for address type '%s'."
	msgSubTypeRequires    = "%s is required for subtype '%s'."
	msgForeignAddressMix  = "Foreign address cannot be combined with other addresses of type '%s'."
	msgAddressTypeInvalid = "Address type '%s' is not allowed here. Allowed values are: %s."

	msgOpeningHourRequired = "At least one opening hour is required for service hour type '%s'."
	msgOpeningHourSingle   = "Only one opening hour is allowed for service hour type '%s'."
	msgTimeOrder           = "To cannot be earlier than From."
	msgInvalidTime         = "'%s' is not a valid time, expected HH:MM."
	msgInvalidWeekday      = "'%s' is not a valid day of week."
	msgMainOpeningHour     = "Exactly one main opening hour is required for '%s', found %d."

	msgNoLanguageVersion  = "At least one language version is required when publishing."
	msgIncompleteLanguage = "Language version '%s' is incomplete. Required properties missing: %s."
	msgSummaryEqualsName  = "Summary cannot be the same as name for language '%s'."
	msgNotUserOrg         = "Organization '%s' is not one of the user's organizations."
	msgOrgLanguage        = "Language '%s' is not available for organization '%s'."

	msgOrganizationNotFound = "Organization with id '%s' not found."
	msgParentIsSelf         = "Organization cannot be its own parent."
	msgBusinessCode         = "'%s' is not a valid business code."
	msgDisplayNameType      = "Display name type '%s' requires a name of that type for language '%s'."
	msgMunicipalityRequired = "Municipality is required for organization type '%s'."

	msgGeneralDescriptionNotFound     = "General description with id '%s' not found."
	msgGeneralDescriptionNotPublished = "General description with id '%s' is not published."
	msgSelfProducers                  = "Self produced service producers must be responsible organizations: %s."
	msgProducerOrganizations          = "At least one organization is required for provision type '%s'."

	msgSignatureQuantity = "SignatureQuantity must be greater than zero when signature is required."
	msgLocationAddress   = "At least one visiting or location address is required when publishing."

	msgChannelsNotFound    = "Some of the service channels were not found: %s."
	msgChannelsNotVisible  = "Some of the service channels are not visible for the user's organizations: %s."
	msgASTINotAllowed      = "ASTI connections are allowed only for service location channels: %s."
	msgExtraDataNotAllowed = "Service hours and contact details are allowed only for service location channels: %s."
	msgServicesNotFound    = "Some of the services were not found: %s."
	msgServiceNotFound     = "Service with id '%s' not found."
	msgChannelNotFound     = "Service channel with id '%s' not found."

	msgRelationsWithDeleteAll = "Relations cannot be given when all relations are deleted."
)
