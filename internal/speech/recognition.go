package speech

import (
	"errors"
	"strings"
)

type Outcome int

const (
	Recognized Outcome = iota
	Unintelligible
	Unavailable
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Recognized:
		return "recognized"
	case Unintelligible:
		return "unintelligible"
	case Unavailable:
		return "unavailable"
	}
	return "failed"
}

// Recognition is the result of one listen call. Text is set only when
// Outcome is Recognized; Err is set for every other outcome.
type Recognition struct {
	Outcome Outcome
	Text    string
	Err     error
}

func (r Recognition) OK() bool { return r.Outcome == Recognized }

// Message is what the user should see.
func (r Recognition) Message() string {
	switch r.Outcome {
	case Recognized:
		return "You said: " + r.Text
	case Unintelligible:
		return "Sorry, I could not understand the audio."
	case Unavailable:
		return "Could not request results; check your network connection."
	}
	return "Sorry, speech recognition failed."
}

func recognitionOf(text string, err error) Recognition {
	text = strings.TrimSpace(text)

	switch {
	case err == nil && text != "":
		return Recognition{Outcome: Recognized, Text: text}
	case err == nil:
		return Recognition{Outcome: Unintelligible, Err: ErrUnintelligibleAudio}
	case errors.Is(err, ErrUnintelligibleAudio):
		return Recognition{Outcome: Unintelligible, Err: err}
	case errors.Is(err, ErrServiceUnavailable):
		return Recognition{Outcome: Unavailable, Err: err}
	}
	return Recognition{Outcome: Failed, Err: err}
}
