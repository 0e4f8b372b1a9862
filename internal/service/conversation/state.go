package conversation

import "time"

// State is the short-term memory of one conversation: the last canonical
// input and the last emitted reply.
type State struct {
	PreviousInput  string    `json:"previous_input,omitempty"`
	PreviousOutput string    `json:"previous_output,omitempty"`
	Turns          int       `json:"turns"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// RepeatsInput reports whether text equals the previous canonical input.
func (s State) RepeatsInput(text string) bool {
	return s.Turns > 0 && s.PreviousInput == text
}

// EchoesOutput reports whether text equals the previous reply.
func (s State) EchoesOutput(text string) bool {
	return s.Turns > 0 && s.PreviousOutput == text
}

func (s *State) Record(input, output string, at time.Time) {
	s.PreviousInput = input
	s.PreviousOutput = output
	s.Turns++
	s.UpdatedAt = at
}
