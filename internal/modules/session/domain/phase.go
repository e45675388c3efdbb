package domain

type Phase string

const (
	PhaseInhale Phase = "Inhale"
	PhaseHold   Phase = "Hold"
	PhaseExhale Phase = "Exhale"
)

const (
	DefaultInhaleSeconds = 4
	DefaultHoldSeconds   = 7
	DefaultExhaleSeconds = 8
)

// PhaseSpec is one stage of the breath cycle. Specs are immutable once
// a cycle is running; a new set only takes effect on the next start.
type PhaseSpec struct {
	Name    Phase
	Seconds int
}

// NewPhaseSet builds the ordered Inhale → Hold → Exhale sequence. A
// non-positive duration falls back to that phase's default; no phase
// ever runs with zero or negative seconds.
func NewPhaseSet(inhale, hold, exhale int) [3]PhaseSpec {
	if inhale < 1 {
		inhale = DefaultInhaleSeconds
	}
	if hold < 1 {
		hold = DefaultHoldSeconds
	}
	if exhale < 1 {
		exhale = DefaultExhaleSeconds
	}
	return [3]PhaseSpec{
		{Name: PhaseInhale, Seconds: inhale},
		{Name: PhaseHold, Seconds: hold},
		{Name: PhaseExhale, Seconds: exhale},
	}
}
