package core

import "time"

const (
	Name          = "Footix"
	Version       = "0.1.0"
	RepositoryURL = "https://github.com/sandevgo/footix"
)

// Outcome names the rule that produced a reply.
type Outcome string

const (
	OutcomeEmpty          Outcome = "empty"
	OutcomeRepeatQuestion Outcome = "repeat_question"
	OutcomeRepeatAnswer   Outcome = "repeat_answer"
	OutcomeExact          Outcome = "exact"
	OutcomeFuzzy          Outcome = "fuzzy"
	OutcomeUnknown        Outcome = "unknown"
	OutcomeCommand        Outcome = "command"
)

// Utterance is one inbound message as delivered by a gateway.
type Utterance struct {
	Text      string `json:"text"`
	ChannelID string `json:"channel_id"`
	SenderID  string `json:"sender_id"`
}

// Reply is the response to a single Utterance.
type Reply struct {
	Text      string  `json:"text"`
	ChannelID string  `json:"channel_id"`
	Outcome   Outcome `json:"outcome"`
	Score     float64 `json:"score,omitempty"`
	Canonical string  `json:"-"`
}

// Entry is a single question/answer pair of the knowledge base.
type Entry struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

type CannedResponses struct {
	Unknown        string `validate:"required"`
	EmptyInput     string `validate:"required"`
	RepeatQuestion string `validate:"required"`
	RepeatAnswer   string `validate:"required"`
}

// Turn is a resolved exchange as kept in the transcript.
type Turn struct {
	ID        string    `json:"id"`
	ChannelID string    `json:"channel_id"`
	SenderID  string    `json:"sender_id"`
	Input     string    `json:"input"`
	Canonical string    `json:"canonical"`
	Response  string    `json:"response"`
	Outcome   Outcome   `json:"outcome"`
	Score     float64   `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}
