package game

import (
	crand "crypto/rand"
	"encoding/hex"
	"math"
	"math/big"
	"math/rand/v2"

	"github.com/aaronzipp/gridscore/internal/store"
)

// ShuffledTurnOrder returns 1..n in uniformly random order using a
// Durstenfeld shuffle. intn(k) must return a uniform value in [0, k).
func ShuffledTurnOrder(n int, intn func(k int) int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i + 1
	}
	for i := n - 1; i > 0; i-- {
		j := intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// CryptoIntn draws from crypto/rand, falling back to math/rand if that fails
func CryptoIntn(n int) int {
	x, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return rand.IntN(n)
	}
	return int(x.Int64())
}

// GenerateHostCode creates a random hex room code
func GenerateHostCode() string {
	b := make([]byte, HostCodeBytes)
	if _, err := crand.Read(b); err != nil {
		for i := range b {
			b[i] = byte(rand.IntN(256))
		}
	}
	return hex.EncodeToString(b)
}

// GetUniqueHostCode generates a host code not used by any live room
func GetUniqueHostCode(rooms *store.RoomStore) string {
	for {
		code := GenerateHostCode()
		if !rooms.Exists(code) {
			return code
		}
	}
}

func roundTenth(x float64) float64 {
	return math.Round(x*10) / 10
}
