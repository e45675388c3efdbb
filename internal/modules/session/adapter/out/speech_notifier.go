package out

import (
	"context"
	"os/exec"
	"runtime"

	"breathe/internal/modules/session/domain"
	sessionout "breathe/internal/modules/session/port/out"
)

// SpeechNotifier announces phase starts through the OS speech command.
// Every failure is swallowed here: a missing binary or a busy audio
// device must never reach the tick loop.
type SpeechNotifier struct{}

func NewSpeechNotifier() sessionout.Notifier {
	return &SpeechNotifier{}
}

func (n *SpeechNotifier) PhaseStarted(_ context.Context, spec domain.PhaseSpec) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("say", string(spec.Name))
	case "linux":
		cmd = exec.Command("espeak", string(spec.Name))
	default:
		return
	}
	_ = cmd.Start()
}

type NoopNotifier struct{}

func NewNoopNotifier() sessionout.Notifier {
	return &NoopNotifier{}
}

func (n *NoopNotifier) PhaseStarted(context.Context, domain.PhaseSpec) {}
