package domain

// LetterStatus is what the player currently believes about one letter of the
// alphabet.
type LetterStatus int

const (
	StatusUnknown LetterStatus = iota
	StatusCorrect
	StatusIncorrect
)

// String returns the status name used in logs and rendering.
func (s LetterStatus) String() string {
	switch s {
	case StatusCorrect:
		return "correct"
	case StatusIncorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// BeliefState maps each of the 26 letters to a LetterStatus. Index 0 is A.
// It is a value type: handing out a BeliefState hands out a copy.
type BeliefState [26]LetterStatus

// Status returns the belief for letter ('A'..'Z'). Letters outside A-Z
// report StatusUnknown.
func (b BeliefState) Status(letter byte) LetterStatus {
	i := letterIndex(letter)
	if i < 0 {
		return StatusUnknown
	}
	return b[i]
}

// Set overwrites the belief for letter. Non-letters are ignored.
// Reports whether the stored status actually changed.
func (b *BeliefState) Set(letter byte, status LetterStatus) bool {
	i := letterIndex(letter)
	if i < 0 || b[i] == status {
		return false
	}
	b[i] = status
	return true
}

// Count returns how many letters currently hold the given status.
func (b BeliefState) Count(status LetterStatus) int {
	n := 0
	for _, s := range b {
		if s == status {
			n++
		}
	}
	return n
}

// CorrectLetters returns the letters marked correct, in alphabet order.
func (b BeliefState) CorrectLetters() []byte {
	var out []byte
	for i, s := range b {
		if s == StatusCorrect {
			out = append(out, byte('A'+i))
		}
	}
	return out
}

func letterIndex(letter byte) int {
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'Z' {
		return -1
	}
	return int(letter - 'A')
}
