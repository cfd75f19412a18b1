package models

// ServiceChannelConnection links a service to a channel, optionally with
// connection-specific data.
type ServiceChannelConnection struct {
	ServiceID        string `json:"serviceId,omitempty"`
	ServiceChannelID string `json:"serviceChannelId"`

	// IsASTIConnection marks connections maintained by the ASTI integration.
	IsASTIConnection bool `json:"isASTIConnection"`

	Descriptions   []LocalizedListItem `json:"description,omitempty"`
	ServiceHours   []ServiceHour       `json:"serviceHours,omitempty"`
	ContactDetails *ContactDetails     `json:"contactDetails,omitempty"`
}

// ContactDetails are connection-specific contact data.
type ContactDetails struct {
	Emails       []Email   `json:"emails,omitempty"`
	PhoneNumbers []Phone   `json:"phoneNumbers,omitempty"`
	WebPages     []WebPage `json:"webPages,omitempty"`
	Addresses    []Address `json:"addresses,omitempty"`
}

// IsEmpty reports whether no contact data is set.
func (c *ContactDetails) IsEmpty() bool {
	return c == nil || (len(c.Emails) == 0 && len(c.PhoneNumbers) == 0 && len(c.WebPages) == 0 && len(c.Addresses) == 0)
}

// ServiceConnections replaces the channel connections of one service.
type ServiceConnections struct {
	ServiceID         string                     `json:"serviceId"`
	DeleteAllChannels bool                       `json:"deleteAllChannelRelations"`
	ChannelRelations  []ServiceChannelConnection `json:"channelRelations,omitempty"`
}

// ChannelConnections replaces the service connections of one channel.
type ChannelConnections struct {
	ServiceChannelID  string                     `json:"serviceChannelId"`
	DeleteAllServices bool                       `json:"deleteAllServiceRelations"`
	ServiceRelations  []ServiceChannelConnection `json:"serviceRelations,omitempty"`
}
