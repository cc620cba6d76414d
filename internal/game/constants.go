package game

import "time"

const (
	// DefaultRows and DefaultCols size the empty board of a freshly hosted room
	DefaultRows = 5
	DefaultCols = 5

	// DefaultTargetScore is the target of a freshly hosted room
	DefaultTargetScore = 100

	// MaxPlayers caps the player count of a game; one colour per player
	MaxPlayers = 10

	// MaxBoardDimension caps rows and cols of a configured board
	MaxBoardDimension = 25

	// SubscriberBufferSize is the buffer size for outbound message channels
	SubscriberBufferSize = 32

	// HostCodeBytes is the number of random bytes in a host code (hex encoded)
	HostCodeBytes = 2

	// HeartbeatInterval is how often idle connections are pinged
	HeartbeatInterval = 30 * time.Second
)

// Palette lists the colours players can claim, in display order
var Palette = []string{
	"#e6194b", "#3cb44b", "#ffe119", "#4363d8", "#f58231",
	"#911eb4", "#46f0f0", "#f032e6", "#bcf60c", "#fabebe",
}
