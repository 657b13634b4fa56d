package deck

import (
	"embed"

	"github.com/pkg/errors"

	"pawns-board/internal/game"
)

//go:embed decks/*.deck
var starterFS embed.FS

// Starter returns the built-in deck for the variant. The embedded files are
// parsed on every call so callers get their own card slice.
func Starter(variant Variant) ([]game.Card, error) {
	name := "decks/base.deck"
	if variant == VariantAugmented {
		name = "decks/augmented.deck"
	}
	f, err := starterFS.Open(name)
	if err != nil {
		return nil, errors.WithMessagef(game.ErrConfiguration, "starter deck %s: %v", name, err)
	}
	defer f.Close()

	cards, err := Read(f, variant)
	if err != nil {
		return nil, errors.WithMessagef(err, "starter deck %s", name)
	}
	return cards, nil
}
