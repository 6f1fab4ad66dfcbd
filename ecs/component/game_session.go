package component

type GamePhase int

const (
	PhasePlaying GamePhase = iota
	PhaseWon
	PhaseDead
)

func (p GamePhase) String() string {
	switch p {
	case PhaseWon:
		return "won"
	case PhaseDead:
		return "dead"
	}
	return "playing"
}

type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseDrowned
	CauseKilled
)

// GameSession is the per-attempt global state. It lives on a single entity.
type GameSession struct {
	Phase            GamePhase
	Cause            DeathCause
	Score            int
	RestartRequested bool
	LevelName        string
}

var GameSessionComponent = NewComponent[GameSession]()

func (s *GameSession) Terminal() bool {
	return s.Phase != PhasePlaying
}

// Finish moves the session from Playing into a terminal phase. It reports
// false, and changes nothing, if the session is already terminal.
func (s *GameSession) Finish(phase GamePhase, cause DeathCause) bool {
	if s.Terminal() || phase == PhasePlaying {
		return false
	}
	s.Phase = phase
	if phase == PhaseDead {
		s.Cause = cause
	}
	return true
}
