package behaviour

// Tick is the frame time handed to every behaviour, in seconds.
type Tick struct {
	Elapsed float32
	Delta   float32
}

type Behaviour interface {
	Start()
	Update(tick Tick)
}

type behaviourWrapper struct {
	behaviour Behaviour
	started   bool
}

// Manager runs a set of behaviours once per frame. Start is called lazily,
// right before a behaviour's first Update.
type Manager struct {
	behaviours []behaviourWrapper
}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) Add(behaviour Behaviour) {
	m.behaviours = append(m.behaviours, behaviourWrapper{behaviour: behaviour})
}

// Remove drops behaviour, keeping the update order of the rest.
func (m *Manager) Remove(behaviour Behaviour) {
	for i := range m.behaviours {
		if m.behaviours[i].behaviour == behaviour {
			m.behaviours = append(m.behaviours[:i], m.behaviours[i+1:]...)
			return
		}
	}
}

// Clear removes all behaviours from the manager
func (m *Manager) Clear() {
	m.behaviours = m.behaviours[:0]
}

func (m *Manager) Len() int {
	return len(m.behaviours)
}

// UpdateAll updates behaviours in the order they were added.
func (m *Manager) UpdateAll(tick Tick) {
	for i := range m.behaviours {
		if !m.behaviours[i].started {
			m.behaviours[i].behaviour.Start()
			m.behaviours[i].started = true
		}
		m.behaviours[i].behaviour.Update(tick)
	}
}
