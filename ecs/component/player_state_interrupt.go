package component

// PlayerStateInterrupt is a one-shot request, added by collision systems, for
// the player controller to switch to the named state on its next update.
type PlayerStateInterrupt struct {
	State string
}

var PlayerStateInterruptComponent = NewComponent[PlayerStateInterrupt]()

const (
	InterruptDrown = "drown"
	InterruptDead  = "dead"
	InterruptWin   = "win"
)
