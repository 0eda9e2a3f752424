package cycle

// Phase is the round's top-level state.
type Phase string

const (
	PhaseInGame Phase = "in_game"
	PhaseDead   Phase = "dead"
)

// Machine holds the round phase. The only transition is InGame -> Dead;
// Dead is terminal until the game is reset.
type Machine struct {
	phase Phase
}

// NewMachine returns a machine in the initial InGame phase.
func NewMachine() *Machine {
	return &Machine{phase: PhaseInGame}
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Running reports whether per-tick systems should execute.
func (m *Machine) Running() bool {
	return m.phase == PhaseInGame
}

// Kill moves InGame to Dead and reports whether the transition happened.
// Calling it again once Dead is a no-op.
func (m *Machine) Kill() bool {
	if m.phase != PhaseInGame {
		return false
	}
	m.phase = PhaseDead
	return true
}
