package character

// Vitality is the binary life status of a character. It is derived from hit
// points and never supplied by callers.
type Vitality int

const (
	Alive Vitality = iota
	Dead
)

// String returns a human-readable vitality label.
func (v Vitality) String() string {
	switch v {
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// VitalityFor classifies a hit point total.
//
// Postcondition: Returns Dead iff hp <= 0.
func VitalityFor(hp int) Vitality {
	if hp <= 0 {
		return Dead
	}
	return Alive
}
