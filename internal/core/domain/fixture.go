package domain

// Fixture is a bundle of records to import into the stores.
type Fixture struct {
	Channels  []Channel       `json:"channels" yaml:"channels"`
	Documents []Document      `json:"documents" yaml:"documents"`
	Activity  []ActivityEvent `json:"activity" yaml:"activity"`
}

// ImportStats summarises an import run.
type ImportStats struct {
	Channels  int
	Documents int
	Activity  int
}

// Total returns the number of records written.
func (s ImportStats) Total() int {
	return s.Channels + s.Documents + s.Activity
}
