package service

import (
	"time"

	"breathe/internal/modules/session/domain"
	"breathe/internal/platform/clock"
	"breathe/internal/platform/id"
)

// TrackerService owns the cycle engine and the session state; nothing
// else mutates either. The engine runs exactly when a session is
// active, so the two can never disagree.
type TrackerService struct {
	clock   clock.Clock
	idGen   id.Generator
	inhale  int
	hold    int
	exhale  int
	engine  *domain.CycleEngine
	state   domain.State
	session domain.Session
}

func NewTrackerService(clock clock.Clock, idGen id.Generator) *TrackerService {
	return &TrackerService{clock: clock, idGen: idGen}
}

// Configure records durations for the next Start. A running session
// keeps its current phase set; there is no mid-phase rebuild.
func (s *TrackerService) Configure(inhale, hold, exhale int) {
	s.inhale, s.hold, s.exhale = inhale, hold, exhale
}

// Start opens a session and starts the engine at phase 0. Calling it
// while a session is active is a no-op: cycles and phase position are
// preserved.
func (s *TrackerService) Start() (domain.PhaseEvent, bool) {
	if s.state != domain.StateIdle {
		return domain.PhaseEvent{}, false
	}
	s.engine = domain.NewCycleEngine(domain.NewPhaseSet(s.inhale, s.hold, s.exhale))
	s.session = domain.Session{StartedAt: s.clock.Now()}
	s.state = domain.StateRunning
	return s.engine.Start(), true
}

// PauseToggle flips between running and paused. Paused keeps the
// remaining count frozen; idle stays idle.
func (s *TrackerService) PauseToggle() domain.State {
	switch s.state {
	case domain.StateRunning:
		s.state = domain.StatePaused
	case domain.StatePaused:
		s.state = domain.StateRunning
	}
	return s.state
}

// Tick advances the engine by one second while running; paused and
// idle ticks are accepted and do nothing, so time never elapses there.
func (s *TrackerService) Tick() []domain.PhaseEvent {
	if s.state != domain.StateRunning {
		return nil
	}
	events := s.engine.Tick()
	for _, ev := range events {
		if ev.Kind == domain.PhaseCompleted && ev.Spec.Name == domain.PhaseExhale {
			s.session.CompletedCycles++
		}
	}
	return events
}

// Finalize closes the active session into an immutable summary and
// returns the tracker to idle. Without an active session it reports
// false and changes nothing.
func (s *TrackerService) Finalize() (domain.Summary, bool) {
	if s.state == domain.StateIdle {
		return domain.Summary{}, false
	}
	endedAt := s.clock.Now()
	phases := s.engine.Phases()
	summary := domain.Summary{
		ID:            s.idGen.New(),
		StartedAt:     s.session.StartedAt,
		EndedAt:       endedAt,
		Cycles:        s.session.CompletedCycles,
		TotalSeconds:  int(endedAt.Sub(s.session.StartedAt).Round(time.Second) / time.Second),
		InhaleSeconds: phases[0].Seconds,
		HoldSeconds:   phases[1].Seconds,
		ExhaleSeconds: phases[2].Seconds,
	}
	s.engine.Stop()
	s.engine = nil
	s.session = domain.Session{}
	s.state = domain.StateIdle
	return summary, true
}

func (s *TrackerService) Status() domain.Status {
	status := domain.Status{
		State:           s.state,
		CompletedCycles: s.session.CompletedCycles,
		StartedAt:       s.session.StartedAt,
	}
	if s.state != domain.StateIdle {
		status.Phase = s.engine.Current().Name
		status.SecondsRemaining = s.engine.Remaining()
	}
	return status
}

func (s *TrackerService) Now() time.Time {
	return s.clock.Now()
}
