package domain

// BaseBonus is added to the summed field weights of every matched entity.
const BaseBonus = 1

// WeightedField is one searchable value of an entity.
type WeightedField struct {
	// Name identifies the attribute (e.g. "vehicle_id").
	Name string

	// Value is the raw attribute value. Empty values never match.
	Value string

	// Weight is added to the score when Value contains the query.
	Weight int
}

// FieldSpec declares a searchable attribute of T.
// Exactly one of Value or Values is set; Values expands a list-valued
// attribute into one field per element, each carrying Weight.
type FieldSpec[T any] struct {
	Name   string
	Weight int
	Value  func(T) string
	Values func(T) []string
}

// FieldTable is the ordered list of searchable attributes of T.
type FieldTable[T any] []FieldSpec[T]

// Fields returns the weighted fields of entity in table order.
func (t FieldTable[T]) Fields(entity T) []WeightedField {
	fields := make([]WeightedField, 0, len(t))
	for _, spec := range t {
		switch {
		case spec.Values != nil:
			for _, v := range spec.Values(entity) {
				fields = append(fields, WeightedField{Name: spec.Name, Value: v, Weight: spec.Weight})
			}
		case spec.Value != nil:
			fields = append(fields, WeightedField{Name: spec.Name, Value: spec.Value(entity), Weight: spec.Weight})
		}
	}
	return fields
}

// Weight returns the weight declared for the named attribute, or 0.
func (t FieldTable[T]) Weight(name string) int {
	for _, spec := range t {
		if spec.Name == name {
			return spec.Weight
		}
	}
	return 0
}

// ChannelFields are the searchable attributes of a channel.
var ChannelFields = FieldTable[Channel]{
	{Name: "name", Weight: 3, Value: func(c Channel) string { return c.Name }},
	{Name: "po_number", Weight: 2, Value: func(c Channel) string { return c.PONumber }},
	{Name: "vehicle_id", Weight: 2, Value: func(c Channel) string { return c.VehicleID }},
	{Name: "door_id", Weight: 1, Value: func(c Channel) string { return c.DoorID }},
	{Name: "category", Weight: 1, Value: func(c Channel) string { return c.Category }},
	{Name: "created_by", Weight: 1, Value: func(c Channel) string { return c.CreatedBy }},
	{Name: "description", Weight: 1, Value: func(c Channel) string { return c.Description }},
}

// DirectMessageFields are the searchable attributes of a direct-message
// thread. Threads are weighted exactly like channels.
var DirectMessageFields = ChannelFields

// DocumentFields are the searchable attributes of a document.
var DocumentFields = FieldTable[Document]{
	{Name: "file_name", Weight: 3, Value: func(d Document) string { return d.FileName }},
	{Name: "channel_name", Weight: 2, Value: func(d Document) string { return d.ChannelName }},
	{Name: "po_number", Weight: 1, Value: func(d Document) string { return d.PONumber }},
	{Name: "uploaded_by", Weight: 1, Value: func(d Document) string { return d.UploadedBy }},
}

// ActivityFields are the searchable attributes of an activity event.
var ActivityFields = FieldTable[ActivityEvent]{
	{Name: "description", Weight: 2, Value: func(e ActivityEvent) string { return e.Description }},
	{Name: "channel_name", Weight: 2, Value: func(e ActivityEvent) string { return e.ChannelName }},
	{Name: "vehicle_id", Weight: 1, Value: func(e ActivityEvent) string { return e.VehicleID }},
	{Name: "po_number", Weight: 1, Value: func(e ActivityEvent) string { return e.PONumber }},
	{Name: "created_by", Weight: 1, Value: func(e ActivityEvent) string { return e.CreatedBy }},
	{Name: "category", Weight: 1, Value: func(e ActivityEvent) string { return e.Category }},
	{Name: "direction", Weight: 1, Value: func(e ActivityEvent) string { return e.Direction }},
}

// PageFields are the searchable attributes of a catalogue page.
var PageFields = FieldTable[Page]{
	{Name: "title", Weight: 2, Value: func(p Page) string { return p.Title }},
	{Name: "subtitle", Weight: 1, Value: func(p Page) string { return p.Subtitle }},
	{Name: "keyword", Weight: 1, Values: func(p Page) []string { return p.Keywords }},
}
