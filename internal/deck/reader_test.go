package deck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"pawns-board/internal/game"
)

const twoCardFile = `Security 1 2
XXXXX
XXIXX
XICIX
XXIXX
XXXXX

Lobber 2 1
XXXXX
XXXXX
XXCXI
XXXXX
XXXXX
`

func TestReadParsesBlocks(t *testing.T) {
	cards, err := Read(strings.NewReader(twoCardFile), VariantBase)
	require.NoError(t, err)
	require.Len(t, cards, 2)

	require.Equal(t, "Security", cards[0].Name)
	require.Equal(t, 1, cards[0].Cost)
	require.Equal(t, 2, cards[0].Value)
	require.Equal(t, game.InfluenceCenter, cards[0].Pattern[2][2])
	require.Equal(t, game.InfluenceRegular, cards[0].Pattern[1][2])
	require.Equal(t, game.InfluenceNone, cards[0].Pattern[0][0])

	require.Equal(t, "Lobber", cards[1].Name)
	require.Equal(t, 2, cards[1].Cost)
	require.Equal(t, game.InfluenceRegular, cards[1].Pattern[2][4])
}

func TestReadRejectsMalformedBlocks(t *testing.T) {
	grid := func(rows ...string) string { return strings.Join(rows, "\n") }
	plain := grid("XXXXX", "XXXXX", "XXCXX", "XXXXX", "XXXXX")

	cases := []struct {
		name string
		file string
	}{
		{"short header", "Security 1\n" + plain},
		{"cost not a number", "Security one 2\n" + plain},
		{"value not a number", "Security 1 two\n" + plain},
		{"cost out of range", "Security 4 2\n" + plain},
		{"zero value", "Security 1 0\n" + plain},
		{"short pattern row", "Security 1 2\n" + grid("XXXXX", "XXXX", "XXCXX", "XXXXX", "XXXXX")},
		{"unknown letter", "Security 1 2\n" + grid("XXXXX", "XXZXX", "XXCXX", "XXXXX", "XXXXX")},
		{"missing center", "Security 1 2\n" + grid("XXXXX", "XXXXX", "XXXXX", "XXXXX", "XXXXX")},
		{"misplaced center", "Security 1 2\n" + grid("CXXXX", "XXXXX", "XXXXX", "XXXXX", "XXXXX")},
		{"duplicate center", "Security 1 2\n" + grid("XXXXX", "XXCXX", "XXCXX", "XXXXX", "XXXXX")},
		{"truncated pattern", "Security 1 2\nXXXXX\nXXXXX"},
		{"empty file", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.file), VariantBase)
			require.ErrorIs(t, err, game.ErrConfiguration)
		})
	}
}

func TestReadVariantGuardsLetters(t *testing.T) {
	file := `Alchemist 1 1
XXXXX
XXXXX
XXCUX
XXXXX
XXXXX
`
	_, err := Read(strings.NewReader(file), VariantBase)
	require.ErrorIs(t, err, game.ErrConfiguration)
	require.ErrorContains(t, err, "augmented")

	cards, err := Read(strings.NewReader(file), VariantAugmented)
	require.NoError(t, err)
	require.Equal(t, game.InfluenceUpgrading, cards[0].Pattern[2][3])
}

func TestReadCollectsEveryBadBlock(t *testing.T) {
	file := `Alpha 1 2
XXXXX
XXZXX
XXCXX
XXXXX
XXXXX

Keeper 1 2
XXXXX
XXXXX
XXCIX
XXXXX
XXXXX

Beta 9 2
XXXXX
XXXXX
XXCXX
XXXXX
XXXXX
`
	cards, err := Read(strings.NewReader(file), VariantBase)
	require.ErrorIs(t, err, game.ErrConfiguration)
	require.ErrorContains(t, err, "Alpha")
	require.ErrorContains(t, err, "Beta")
	require.Len(t, cards, 1, "well-formed blocks still parse")
	require.Equal(t, "Keeper", cards[0].Name)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.deck")
	require.NoError(t, os.WriteFile(path, []byte(twoCardFile), 0o644))

	cards, err := ReadFile(path, VariantBase)
	require.NoError(t, err)
	require.Len(t, cards, 2)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.deck"), VariantBase)
	require.ErrorIs(t, err, game.ErrConfiguration)
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("base")
	require.NoError(t, err)
	require.Equal(t, VariantBase, v)

	v, err = ParseVariant(" Augmented ")
	require.NoError(t, err)
	require.Equal(t, VariantAugmented, v)

	_, err = ParseVariant("deluxe")
	require.ErrorIs(t, err, game.ErrConfiguration)
}
