package behaviour

// SceneBehaviour is per-frame logic attached to the engine. Update returns
// true when it changed the camera or the scene, which forces a moving frame.
type SceneBehaviour interface {
	Start()
	Update(dt float64) bool
}

type BehaviourWrapper struct {
	Behaviour SceneBehaviour
	started   bool
}

type BehaviourManager struct {
	behaviours []BehaviourWrapper
}

var GlobalBehaviourManager = NewBehaviourManager()

func NewBehaviourManager() *BehaviourManager {
	return &BehaviourManager{}
}

func (m *BehaviourManager) Add(behaviour SceneBehaviour) {
	m.behaviours = append(m.behaviours, BehaviourWrapper{Behaviour: behaviour, started: false})
}

// Clear removes all behaviours from the manager
func (m *BehaviourManager) Clear() {
	m.behaviours = m.behaviours[:0]
}

func (m *BehaviourManager) Len() int {
	return len(m.behaviours)
}

// UpdateAll starts new behaviours, updates all of them and reports whether
// any changed what the camera sees.
func (m *BehaviourManager) UpdateAll(dt float64) bool {
	changed := false
	for i := range m.behaviours {
		if !m.behaviours[i].started {
			m.behaviours[i].Behaviour.Start()
			m.behaviours[i].started = true
		}
		if m.behaviours[i].Behaviour.Update(dt) {
			changed = true
		}
	}
	return changed
}
