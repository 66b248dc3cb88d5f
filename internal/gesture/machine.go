package gesture

import "sync"

// Input carries what the guards look at.
type Input struct {
	Authenticated bool
	HasImages     bool
}

// Machine runs Table the way the page does. Safe for concurrent use.
type Machine struct {
	mu    sync.Mutex
	state State
	depth int
	table []Transition
}

func NewMachine() *Machine {
	return &Machine{
		state: Idle,
		table: Table(),
	}
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

func (m *Machine) Depth() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.depth
}

// Fire applies the first matching transition and returns its actions. An
// event with no matching row leaves the machine untouched.
func (m *Machine) Fire(event Event, in Input) []Action {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, t := range m.table {
		if t.From != m.state || t.Event != event || !m.holds(t.Guard, in) {
			continue
		}

		m.state = t.To
		switch t.Depth {
		case DepthReset:
			m.depth = 0
		case DepthOne:
			m.depth = 1
		case DepthInc:
			m.depth++
		case DepthDec:
			m.depth--
		}

		return t.Actions
	}

	return nil
}

func (m *Machine) holds(g Guard, in Input) bool {
	switch g {
	case Always:
		return true
	case Authenticated:
		return in.Authenticated
	case LastLeave:
		return m.depth <= 1
	case HasImages:
		return in.HasImages
	case AuthenticatedImages:
		return in.Authenticated && in.HasImages
	}

	return false
}
