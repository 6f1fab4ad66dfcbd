package ecs

type System interface {
	Update(w *World)
}

// Scheduler runs systems in registration order. Systems registered with
// AddAlways also run while the scheduler is paused, which is how input and
// presentation keep working under an overlay.
type Scheduler struct {
	systems []scheduled
	paused  bool
}

type scheduled struct {
	system System
	always bool
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, scheduled{system: system})
}

func (s *Scheduler) AddAlways(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, scheduled{system: system, always: true})
}

func (s *Scheduler) SetPaused(paused bool) {
	s.paused = paused
}

func (s *Scheduler) Paused() bool {
	return s.paused
}

// Update runs one frame and advances the world tick unless paused.
func (s *Scheduler) Update(w *World) {
	for _, sc := range s.systems {
		if s.paused && !sc.always {
			continue
		}
		sc.system.Update(w)
	}
	if !s.paused {
		w.Advance()
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	for _, sc := range s.systems {
		systems = append(systems, sc.system)
	}
	return systems
}
