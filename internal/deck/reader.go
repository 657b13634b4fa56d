package deck

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"pawns-board/internal/game"
)

// Variant selects the influence alphabet a deck file may use. Base decks
// know only regular influence; augmented decks add upgrading and devaluing.
type Variant string

const (
	VariantBase      Variant = "base"
	VariantAugmented Variant = "augmented"
)

// ParseVariant maps a config string onto a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(VariantBase):
		return VariantBase, nil
	case string(VariantAugmented):
		return VariantAugmented, nil
	default:
		return "", errors.WithMessagef(game.ErrConfiguration, "unknown deck variant %q, want %q or %q", s, VariantBase, VariantAugmented)
	}
}

// Read parses a deck file: card blocks of a "name cost value" header line
// followed by five 5-letter pattern rows, with blank lines allowed between
// blocks. Every malformed block is reported; the returned error collects
// them all.
func Read(r io.Reader, variant Variant) ([]game.Card, error) {
	sc := bufio.NewScanner(r)
	line := 0
	next := func() (string, int, bool) {
		for sc.Scan() {
			line++
			if s := strings.TrimSpace(sc.Text()); s != "" {
				return s, line, true
			}
		}
		return "", line, false
	}

	var (
		cards []game.Card
		merr  *multierror.Error
	)
	for {
		header, at, ok := next()
		if !ok {
			break
		}
		card, err := readBlock(header, at, next, variant)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		cards = append(cards, card)
	}
	if err := sc.Err(); err != nil {
		merr = multierror.Append(merr, errors.WithMessage(err, "reading deck"))
	}
	if len(cards) == 0 && merr == nil {
		merr = multierror.Append(merr, errors.WithMessage(game.ErrConfiguration, "deck file holds no cards"))
	}
	return cards, merr.ErrorOrNil()
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, variant Variant) ([]game.Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithMessagef(game.ErrConfiguration, "deck file %s: %v", path, err)
	}
	defer f.Close()

	cards, err := Read(f, variant)
	if err != nil {
		return nil, errors.WithMessagef(err, "deck file %s", path)
	}
	return cards, nil
}

func readBlock(header string, headerLine int, next func() (string, int, bool), variant Variant) (game.Card, error) {
	fields := strings.Fields(header)
	if len(fields) != 3 {
		return game.Card{}, errors.WithMessagef(game.ErrConfiguration, "line %d: header %q, want \"name cost value\"", headerLine, header)
	}
	name := fields[0]
	cost, err := strconv.Atoi(fields[1])
	if err != nil {
		return game.Card{}, errors.WithMessagef(game.ErrConfiguration, "line %d: card %q: cost %q is not a number", headerLine, name, fields[1])
	}
	value, err := strconv.Atoi(fields[2])
	if err != nil {
		return game.Card{}, errors.WithMessagef(game.ErrConfiguration, "line %d: card %q: value %q is not a number", headerLine, name, fields[2])
	}

	var pattern game.Pattern
	for r := 0; r < game.PatternSize; r++ {
		row, at, ok := next()
		if !ok {
			return game.Card{}, errors.WithMessagef(game.ErrConfiguration, "card %q: pattern row %d missing", name, r)
		}
		if len(row) != game.PatternSize {
			return game.Card{}, errors.WithMessagef(game.ErrConfiguration, "line %d: card %q: pattern row %q has %d letters, want %d", at, name, row, len(row), game.PatternSize)
		}
		for c := 0; c < game.PatternSize; c++ {
			kind, err := influenceFromLetter(row[c], variant)
			if err != nil {
				return game.Card{}, errors.WithMessagef(err, "line %d: card %q", at, name)
			}
			pattern[r][c] = kind
		}
	}

	card, err := game.NewCard(name, cost, value, pattern)
	if err != nil {
		return game.Card{}, errors.WithMessagef(err, "header at line %d", headerLine)
	}
	return card, nil
}

func influenceFromLetter(b byte, variant Variant) (game.Influence, error) {
	switch b {
	case 'X':
		return game.InfluenceNone, nil
	case 'I':
		return game.InfluenceRegular, nil
	case 'C':
		return game.InfluenceCenter, nil
	case 'U':
		if variant != VariantAugmented {
			return 0, errors.WithMessagef(game.ErrConfiguration, "letter %q needs the %s variant", string(b), VariantAugmented)
		}
		return game.InfluenceUpgrading, nil
	case 'D':
		if variant != VariantAugmented {
			return 0, errors.WithMessagef(game.ErrConfiguration, "letter %q needs the %s variant", string(b), VariantAugmented)
		}
		return game.InfluenceDevaluing, nil
	default:
		return 0, errors.WithMessagef(game.ErrConfiguration, "unknown influence letter %q", string(b))
	}
}
