package domain

type EventKind int

const (
	PhaseStarted EventKind = iota
	PhaseCompleted
)

// PhaseEvent is emitted by the engine when a phase begins or finishes.
type PhaseEvent struct {
	Kind EventKind
	Spec PhaseSpec
}

// CycleEngine advances the three-phase breath cycle one second per
// tick. Invariants: remaining never exceeds the current phase duration
// and the index wraps modulo the phase count.
type CycleEngine struct {
	phases    [3]PhaseSpec
	index     int
	remaining int
	running   bool
}

func NewCycleEngine(phases [3]PhaseSpec) *CycleEngine {
	return &CycleEngine{phases: phases}
}

// Start rewinds to phase 0 and reports it as started.
func (e *CycleEngine) Start() PhaseEvent {
	e.index = 0
	e.remaining = e.phases[0].Seconds
	e.running = true
	return PhaseEvent{Kind: PhaseStarted, Spec: e.phases[0]}
}

// Tick consumes one second. Crossing a phase boundary yields the
// completed event followed by the next phase's started event; mid-phase
// ticks yield nothing.
func (e *CycleEngine) Tick() []PhaseEvent {
	if !e.running {
		return nil
	}
	e.remaining--
	if e.remaining > 0 {
		return nil
	}
	completed := PhaseEvent{Kind: PhaseCompleted, Spec: e.phases[e.index]}
	e.index = (e.index + 1) % len(e.phases)
	e.remaining = e.phases[e.index].Seconds
	return []PhaseEvent{completed, {Kind: PhaseStarted, Spec: e.phases[e.index]}}
}

func (e *CycleEngine) Stop() {
	e.running = false
	e.index = 0
	e.remaining = 0
}

func (e *CycleEngine) Current() PhaseSpec {
	return e.phases[e.index]
}

func (e *CycleEngine) Remaining() int {
	return e.remaining
}

func (e *CycleEngine) Phases() [3]PhaseSpec {
	return e.phases
}
