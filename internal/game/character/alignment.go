package character

import (
	"fmt"
	"strings"
)

// Alignment is a character's moral outlook. It is descriptive only and never
// enters combat arithmetic.
type Alignment int

const (
	Good Alignment = iota
	Neutral
	Evil
)

// String returns the lower-case alignment label.
func (a Alignment) String() string {
	switch a {
	case Good:
		return "good"
	case Neutral:
		return "neutral"
	case Evil:
		return "evil"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) {
	switch a {
	case Good, Neutral, Evil:
		return []byte(a.String()), nil
	default:
		return nil, fmt.Errorf("character: invalid alignment %d", int(a))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler. Matching is case-insensitive.
//
// Postcondition: On success *a is one of Good, Neutral, Evil.
func (a *Alignment) UnmarshalText(text []byte) error {
	parsed, err := ParseAlignment(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAlignment converts a label such as "Neutral" into an Alignment.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "good":
		return Good, nil
	case "neutral":
		return Neutral, nil
	case "evil":
		return Evil, nil
	default:
		return 0, fmt.Errorf("character: unknown alignment %q", s)
	}
}
