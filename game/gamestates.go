package game

// Stage represents the lifecycle of a single game
type Stage int

const (
	awaitingSetup Stage = iota
	active
	concluded
)

var stageNames = []string{"awaitingSetup", "active", "concluded"}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return ""
	}
	return stageNames[s]
}
