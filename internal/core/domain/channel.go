package domain

import "time"

// Channel represents a conversation channel. Direct-message threads are
// channels with IsDirectMessage set; they share the same record shape.
type Channel struct {
	// ID is the unique identifier for the channel.
	ID string `json:"id" yaml:"id"`

	// Name is the human-readable channel name.
	Name string `json:"name" yaml:"name"`

	// Description is free text shown under the channel name.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// PONumber is the purchase-order reference the channel is about.
	PONumber string `json:"po_number,omitempty" yaml:"po_number,omitempty"`

	// DoorID identifies the dock door assigned to the shipment.
	DoorID string `json:"door_id,omitempty" yaml:"door_id,omitempty"`

	// VehicleID identifies the truck or trailer.
	VehicleID string `json:"vehicle_id,omitempty" yaml:"vehicle_id,omitempty"`

	// Category is a free-form tag (e.g. "receiving", "shipping").
	Category string `json:"category,omitempty" yaml:"category,omitempty"`

	// CreatedBy is the identity of the user who opened the channel.
	CreatedBy string `json:"created_by,omitempty" yaml:"created_by,omitempty"`

	// IsDirectMessage marks the channel as a direct-message thread.
	IsDirectMessage bool `json:"is_direct_message,omitempty" yaml:"is_direct_message,omitempty"`

	// Participants lists the members of a direct-message thread.
	Participants []string `json:"participants,omitempty" yaml:"participants,omitempty"`

	// Pinned channels sort ahead of the rest in the sidebar.
	Pinned bool `json:"pinned,omitempty" yaml:"pinned,omitempty"`

	// CreatedAt is when the channel was created.
	CreatedAt time.Time `json:"created_at" yaml:"created_at,omitempty"`
}

// Ref returns the reference search results use for the channel: its name,
// or its ID when an unnamed direct-message thread has no name to offer.
func (c Channel) Ref() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}
