package domain

// Page is a fixed application destination offered by the global search box.
type Page struct {
	// Title is the destination's display name.
	Title string `json:"title" yaml:"title"`

	// Subtitle is an optional short description.
	Subtitle string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`

	// Path is the navigation target.
	Path string `json:"path" yaml:"path"`

	// Keywords are synonyms that should also find the page.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}
