package model

// Player is a rating registry entry. The rating engine owns and mutates it.
type Player struct {
	Name        string
	Rating      float64
	GamesPlayed int
	GamesWon    int
	GamesLost   int
	KFactor     float64
}

// GamesDrawn is derived: every played game that was neither won nor lost.
func (p Player) GamesDrawn() int {
	return p.GamesPlayed - p.GamesWon - p.GamesLost
}
