package domain

import "strings"

// DefaultSearchLimit is the result cap used when SearchOptions.Limit is unset.
const DefaultSearchLimit = 20

// ResultKind discriminates the entity family a SearchResult points at.
type ResultKind string

// Result kinds, one per source family.
const (
	KindChannel  ResultKind = "channel"
	KindDM       ResultKind = "dm"
	KindDocument ResultKind = "document"
	KindActivity ResultKind = "activity"
	KindPage     ResultKind = "page"
)

// AllKinds lists every result kind in source order.
var AllKinds = []ResultKind{KindChannel, KindDM, KindDocument, KindActivity, KindPage}

// ParseResultKind converts a string into a ResultKind.
func ParseResultKind(s string) (ResultKind, error) {
	k := ResultKind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllKinds {
		if k == known {
			return k, nil
		}
	}
	return "", ErrInvalidInput
}

// SearchOptions configures a global search.
type SearchOptions struct {
	// Limit is the maximum number of results. Zero or negative means
	// DefaultSearchLimit.
	Limit int

	// Kinds restricts the search to the listed result kinds.
	// Empty means every kind.
	Kinds []ResultKind
}

// Includes reports whether results of kind k are wanted.
func (o SearchOptions) Includes(k ResultKind) bool {
	if len(o.Kinds) == 0 {
		return true
	}
	for _, want := range o.Kinds {
		if want == k {
			return true
		}
	}
	return false
}

// SearchResult represents a single search hit.
// Exactly one reference field is populated and it agrees with Kind.
type SearchResult struct {
	// Kind identifies the entity family.
	Kind ResultKind `json:"kind"`

	// Title is the primary label.
	Title string `json:"title"`

	// Subtitle is an optional secondary label. It never affects scoring.
	Subtitle string `json:"subtitle,omitempty"`

	// Channel is the channel name for channel and dm results. Unnamed
	// direct-message threads carry their ID instead.
	Channel string `json:"channel,omitempty"`

	// DocumentID is set for document results.
	DocumentID string `json:"document_id,omitempty"`

	// ActivityID is set for activity results.
	ActivityID string `json:"activity_id,omitempty"`

	// Path is the navigation target for page results.
	Path string `json:"path,omitempty"`

	// Score orders results; it is not part of the display contract.
	Score int `json:"-"`
}

// NewChannelResult builds the result for a matched channel.
func NewChannelResult(c Channel, score int) SearchResult {
	return SearchResult{
		Kind:     KindChannel,
		Title:    channelTitle(c),
		Subtitle: channelSubtitle(c),
		Channel:  c.Name,
		Score:    score,
	}
}

// NewDMResult builds the result for a matched direct-message thread.
func NewDMResult(c Channel, score int) SearchResult {
	title := channelTitle(c)
	if c.Name == "" {
		title = strings.Join(c.Participants, ", ")
	}
	return SearchResult{
		Kind:     KindDM,
		Title:    title,
		Subtitle: channelSubtitle(c),
		Channel:  c.Ref(),
		Score:    score,
	}
}

// NewDocumentResult builds the result for a matched document.
func NewDocumentResult(d Document, score int) SearchResult {
	var po string
	if d.PONumber != "" {
		po = "PO " + d.PONumber
	}
	return SearchResult{
		Kind:       KindDocument,
		Title:      d.FileName,
		Subtitle:   joinParts(d.ChannelName, po),
		DocumentID: d.ID,
		Score:      score,
	}
}

// NewActivityResult builds the result for a matched activity event.
func NewActivityResult(e ActivityEvent, score int) SearchResult {
	return SearchResult{
		Kind:       KindActivity,
		Title:      e.Label(),
		Subtitle:   joinParts(e.ChannelName, string(e.Kind)),
		ActivityID: e.ID,
		Score:      score,
	}
}

// NewPageResult builds the result for a matched catalogue page.
func NewPageResult(p Page, score int) SearchResult {
	return SearchResult{
		Kind:     KindPage,
		Title:    p.Title,
		Subtitle: p.Subtitle,
		Path:     p.Path,
		Score:    score,
	}
}

// Reference returns the kind-specific reference of the result.
func (r *SearchResult) Reference() string {
	switch r.Kind {
	case KindChannel, KindDM:
		return r.Channel
	case KindDocument:
		return r.DocumentID
	case KindActivity:
		return r.ActivityID
	case KindPage:
		return r.Path
	}
	return ""
}

// Valid reports whether the result's kind and populated reference agree
// and no other reference is set.
func (r *SearchResult) Valid() bool {
	populated := 0
	for _, ref := range []string{r.Channel, r.DocumentID, r.ActivityID, r.Path} {
		if ref != "" {
			populated++
		}
	}
	return populated == 1 && r.Reference() != ""
}

func channelTitle(c Channel) string {
	title := c.Name
	if c.PONumber != "" {
		title += " · PO " + c.PONumber
	}
	if c.VehicleID != "" {
		title += " · " + c.VehicleID
	}
	return title
}

func channelSubtitle(c Channel) string {
	if c.Description != "" {
		return c.Description
	}
	var door string
	if c.DoorID != "" {
		door = "Door " + c.DoorID
	}
	return joinParts(c.Category, door)
}

// joinParts joins the non-empty parts with a middle dot.
func joinParts(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " · ")
}
