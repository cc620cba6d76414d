package models

// ColourUnassigned marks a player slot that has not claimed a colour yet
const ColourUnassigned = ""

// Player is one turn slot in a session. Several slots may share a ClientID
// when one connection plays more than one turn.
type Player struct {
	ClientID  string  `json:"uuid"`
	TurnOrder int     `json:"turnOrder"`
	Colour    string  `json:"colour"`
	Score     float64 `json:"score"`
}

// HasColour reports whether the slot has claimed a palette colour
func (p *Player) HasColour() bool {
	return p.Colour != ColourUnassigned
}
