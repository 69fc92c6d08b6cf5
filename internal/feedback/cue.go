package feedback

// Cue is a short non-speech sound.
type Cue uint8

const (
	// CueBump plays when a movement hits a boundary.
	CueBump Cue = iota

	// CueLevel plays when the navigation level changes.
	CueLevel

	// CueCapital plays before an upper-case character is spoken.
	CueCapital
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueBump:
		return "bump"
	case CueLevel:
		return "level"
	case CueCapital:
		return "capital"
	default:
		return "unknown"
	}
}

// Announcer speaks text and plays cues.
type Announcer interface {
	// Speak announces a phrase.
	Speak(text string)

	// SpeakCharacter announces a single character, spelled out.
	SpeakCharacter(text string)

	// Play plays a cue.
	Play(cue Cue)
}

// Multi returns an Announcer that forwards to every given announcer.
func Multi(announcers ...Announcer) Announcer {
	return multi(announcers)
}

type multi []Announcer

func (m multi) Speak(text string) {
	for _, a := range m {
		a.Speak(text)
	}
}

func (m multi) SpeakCharacter(text string) {
	for _, a := range m {
		a.SpeakCharacter(text)
	}
}

func (m multi) Play(cue Cue) {
	for _, a := range m {
		a.Play(cue)
	}
}

// Discard is an Announcer that drops everything.
var Discard Announcer = discard{}

type discard struct{}

func (discard) Speak(string)          {}
func (discard) SpeakCharacter(string) {}
func (discard) Play(Cue)              {}
