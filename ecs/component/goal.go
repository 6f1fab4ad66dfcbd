package component

// Goal is an invisible trigger volume centered on the entity transform.
type Goal struct {
	Width  float64
	Height float64
}

var GoalComponent = NewComponent[Goal]()
