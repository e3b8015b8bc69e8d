package buffer

import "github.com/arcweave/runepad/internal/external"

// Action is a bound keymap handler. It receives the buffer the key
// sequence resolved against.
type Action func(*Buffer)

// binding is one registered key sequence and the action it triggers.
type binding struct {
	sequence []external.KeyEvent
	action   Action
}

// Keymap is a flat table of key sequences to actions, matched with a
// two-state matcher: each KeyEvent either extends a still-possible
// sequence (Continue) or, once no bound sequence can still match,
// resets to try again from scratch (Clear). The first bound sequence
// whose full length is matched fires; there is no priority beyond
// registration order for sequences sharing a prefix.
type Keymap struct {
	bindings []binding
	pending  []external.KeyEvent
}

// NewKeymap creates an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{}
}

// Bind registers action to fire when sequence is matched in full.
func (k *Keymap) Bind(action Action, sequence ...external.KeyEvent) {
	k.bindings = append(k.bindings, binding{sequence: sequence, action: action})
}

// Feed consumes one key event. It returns the action to run (nil if
// none fired yet) and the resulting matcher state.
func (k *Keymap) Feed(ev external.KeyEvent) (Action, external.MatchResult) {
	k.pending = append(k.pending, ev)

	var anyPrefix bool
	for _, bnd := range k.bindings {
		if !sequenceHasPrefix(bnd.sequence, k.pending) {
			continue
		}
		if len(bnd.sequence) == len(k.pending) {
			k.pending = nil
			return bnd.action, external.Clear
		}
		anyPrefix = true
	}

	if anyPrefix {
		return nil, external.Continue
	}

	k.pending = nil
	return nil, external.Clear
}

// Reset discards any partially-matched sequence.
func (k *Keymap) Reset() {
	k.pending = nil
}

func sequenceHasPrefix(sequence, prefix []external.KeyEvent) bool {
	if len(prefix) > len(sequence) {
		return false
	}
	for i, ev := range prefix {
		if !keyEventEqual(sequence[i], ev) {
			return false
		}
	}
	return true
}

func keyEventEqual(a, b external.KeyEvent) bool {
	return a.Rune == b.Rune && a.Name == b.Name &&
		a.Ctrl == b.Ctrl && a.Alt == b.Alt && a.Shift == b.Shift
}
