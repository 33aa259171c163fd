package types

// Chapter is one segment of an interaction's narrative breakdown.
type Chapter struct {
	Timestamp string `json:"timestamp,omitempty"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
}

// TopicTag is a single tag emitted by a topic model.
type TopicTag struct {
	Label string `json:"label"`
	Count int    `json:"count,omitempty"`
}

// TopicGroup is the set of tags one topic model assigned to an interaction.
type TopicGroup struct {
	Model   string     `json:"model"`
	Heading string     `json:"heading,omitempty"`
	Tags    []TopicTag `json:"tags"`
}

// Metadata is the key/value context shown alongside a focused interaction.
// Emotion falls back to the record's sentiment when the store has no value.
type Metadata struct {
	Emotion     string `json:"emotion,omitempty"`
	CSAT        string `json:"csat,omitempty"`
	OrderID     string `json:"order_id,omitempty"`
	UserID      string `json:"user_id,omitempty"`
	ResponseID  string `json:"response_id,omitempty"`
	DateCreated string `json:"date_created,omitempty"`
	OrderDate   string `json:"order_date,omitempty"`
}

// IsZero reports whether no metadata field is set.
func (m Metadata) IsZero() bool {
	return m == Metadata{}
}
