package feedback

import "sync"

// Utterance is one recorded announcement.
type Utterance struct {
	// Text is the spoken text, empty for cues.
	Text string

	// Character is set when Text was spelled out.
	Character bool

	// Cue is the cue played when IsCue is set.
	Cue   Cue
	IsCue bool
}

// Recorder is an Announcer that keeps everything it receives. It is safe
// for concurrent use.
type Recorder struct {
	mu   sync.Mutex
	seen []Utterance
}

// Speak implements Announcer.
func (r *Recorder) Speak(text string) {
	r.add(Utterance{Text: text})
}

// SpeakCharacter implements Announcer.
func (r *Recorder) SpeakCharacter(text string) {
	r.add(Utterance{Text: text, Character: true})
}

// Play implements Announcer.
func (r *Recorder) Play(cue Cue) {
	r.add(Utterance{Cue: cue, IsCue: true})
}

func (r *Recorder) add(u Utterance) {
	r.mu.Lock()
	r.seen = append(r.seen, u)
	r.mu.Unlock()
}

// Utterances returns everything recorded so far.
func (r *Recorder) Utterances() []Utterance {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Utterance, len(r.seen))
	copy(out, r.seen)
	return out
}

// Spoken returns the spoken and spelled texts in order.
func (r *Recorder) Spoken() []string {
	var out []string
	for _, u := range r.Utterances() {
		if !u.IsCue {
			out = append(out, u.Text)
		}
	}
	return out
}

// Cues returns the played cues in order.
func (r *Recorder) Cues() []Cue {
	var out []Cue
	for _, u := range r.Utterances() {
		if u.IsCue {
			out = append(out, u.Cue)
		}
	}
	return out
}

// Last returns the most recent spoken text, or "" if none.
func (r *Recorder) Last() string {
	spoken := r.Spoken()
	if len(spoken) == 0 {
		return ""
	}
	return spoken[len(spoken)-1]
}

// Reset forgets everything recorded.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.seen = nil
	r.mu.Unlock()
}
