package domain

import "time"

// ActivityKind classifies an activity-log event.
type ActivityKind string

// Activity kinds recorded by the yard.
const (
	ActivityCheckIn          ActivityKind = "check_in"
	ActivityCheckOut         ActivityKind = "check_out"
	ActivityDoorAssigned     ActivityKind = "door_assigned"
	ActivityDocumentUploaded ActivityKind = "document_uploaded"
	ActivityChannelCreated   ActivityKind = "channel_created"
	ActivityNote             ActivityKind = "note"
)

// Direction of a shipment.
const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

// ActivityEvent is a single entry in the activity log.
type ActivityEvent struct {
	// ID is the unique identifier for the event.
	ID string `json:"id" yaml:"id"`

	// Kind classifies the event.
	Kind ActivityKind `json:"kind" yaml:"kind"`

	// Description is the free-text log line.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// ChannelName is the channel the event was logged against.
	ChannelName string `json:"channel_name,omitempty" yaml:"channel_name,omitempty"`

	// VehicleID correlates the event with a truck or trailer.
	VehicleID string `json:"vehicle_id,omitempty" yaml:"vehicle_id,omitempty"`

	// PONumber correlates the event with a purchase order.
	PONumber string `json:"po_number,omitempty" yaml:"po_number,omitempty"`

	// CreatedBy is the identity of the user who caused the event.
	CreatedBy string `json:"created_by,omitempty" yaml:"created_by,omitempty"`

	// Category mirrors the owning channel's category.
	Category string `json:"category,omitempty" yaml:"category,omitempty"`

	// Direction is DirectionInbound, DirectionOutbound or empty.
	Direction string `json:"direction,omitempty" yaml:"direction,omitempty"`

	// Timestamp is when the event happened.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp,omitempty"`
}

// Label returns the description, falling back to the kind.
func (e *ActivityEvent) Label() string {
	if e.Description != "" {
		return e.Description
	}
	return string(e.Kind)
}
