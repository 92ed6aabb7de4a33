package domain

type OperationPhase string

const (
	PhaseSafe      OperationPhase = "SAFE"
	PhaseArmed     OperationPhase = "ARMED"
	PhaseExecuting OperationPhase = "EXECUTING"
)

const (
	BootLine      = "[BOOT] SECURE KERNEL INITIALIZED..."
	StepPrefix    = "[PURGE] "
	DefaultTarget = "Target"
)

type OperationSnapshot struct {
	Phase     OperationPhase
	Progress  int
	Narrative []string
}

func (s OperationSnapshot) Armed() bool {
	return s.Phase == PhaseArmed
}

func (s OperationSnapshot) Executing() bool {
	return s.Phase == PhaseExecuting
}
