package deck

import (
	"golang.org/x/exp/rand"

	"pawns-board/internal/game"
)

// Shuffled returns a seeded permutation of cards. The input slice is left
// untouched, so both players can shuffle from the same card list.
func Shuffled(cards []game.Card, seed uint64) []game.Card {
	out := append([]game.Card(nil), cards...)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
