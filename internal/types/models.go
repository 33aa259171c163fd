package types

import (
	"fmt"
	"strings"
)

// Kind discriminates the interaction variants. The set is closed; anything
// reading variant payloads must switch over all four values.
type Kind string

const (
	KindSurvey Kind = "survey"
	KindCall   Kind = "call"
	KindSocial Kind = "social"
	KindReview Kind = "review"
)

type Sentiment string

const (
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentPositive Sentiment = "Positive"
)

// TranscriptEntry is one utterance of a call transcript.
type TranscriptEntry struct {
	Timestamp string `json:"timestamp,omitempty"`
	Speaker   string `json:"speaker,omitempty"`
	Role      string `json:"role,omitempty"` // "agent" or "customer"
	Text      string `json:"text"`
}

// Attributes is the optional attribute bag carried by some records.
type Attributes struct {
	LoyaltyTier string `json:"loyalty_tier,omitempty"`
	CouponUsed  bool   `json:"coupon_used,omitempty"`
	OrderItem   string `json:"order_item,omitempty"`
	Emotion     string `json:"emotion,omitempty"`
}

// Interaction is a single customer interaction record. Exactly one payload is
// set depending on Kind: Text for survey/social/review, Transcript (with an
// optional RawText fallback) for call. The Kind never changes after creation.
type Interaction struct {
	ID         string            `json:"id"`
	Kind       Kind              `json:"type"`
	Category   string            `json:"category"`
	Sentiment  Sentiment         `json:"sentiment"`
	Date       string            `json:"date"`
	Channel    string            `json:"channel"`
	Topic      string            `json:"topic"`
	NPS        *int              `json:"nps,omitempty"`
	Attributes *Attributes       `json:"attributes,omitempty"`
	Text       string            `json:"text,omitempty"`
	Transcript []TranscriptEntry `json:"transcript,omitempty"`
	RawText    string            `json:"raw_text,omitempty"`
	Duration   string            `json:"duration,omitempty"`
}

// Validate checks the variant invariant: calls carry a transcript (or raw
// text) and no text; every other kind carries text and no transcript.
func (r Interaction) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("interaction missing id")
	}
	switch r.Kind {
	case KindCall:
		if r.Text != "" {
			return fmt.Errorf("interaction %s: call must not carry text", r.ID)
		}
		if len(r.Transcript) == 0 && r.RawText == "" {
			return fmt.Errorf("interaction %s: call missing transcript", r.ID)
		}
		return nil
	case KindSurvey, KindSocial, KindReview:
		if len(r.Transcript) > 0 || r.RawText != "" {
			return fmt.Errorf("interaction %s: %s must not carry a transcript", r.ID, r.Kind)
		}
		if r.Text == "" {
			return fmt.Errorf("interaction %s: %s missing text", r.ID, r.Kind)
		}
		return nil
	default:
		return fmt.Errorf("interaction %s: unknown kind %q", r.ID, r.Kind)
	}
}

// Content returns the primary text of the record: the text payload, or for
// calls the raw fallback when present, otherwise the joined transcript.
func (r Interaction) Content() string {
	switch r.Kind {
	case KindCall:
		if r.RawText != "" {
			return r.RawText
		}
		parts := make([]string, 0, len(r.Transcript))
		for _, e := range r.Transcript {
			if e.Text != "" {
				parts = append(parts, e.Text)
			}
		}
		return strings.Join(parts, " ")
	case KindSurvey, KindSocial, KindReview:
		return r.Text
	default:
		return ""
	}
}

// NPSGroup buckets a score into the standard NPS segments.
func NPSGroup(score int) string {
	switch {
	case score <= 6:
		return "Detractor"
	case score <= 8:
		return "Passive"
	default:
		return "Promoter"
	}
}
