package view

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"pawns-board/internal/game"
)

func testDeck(t *testing.T, n, value int) []game.Card {
	t.Helper()
	var pattern game.Pattern
	pattern[2][2] = game.InfluenceCenter
	cards := make([]game.Card, n)
	for i := range cards {
		c, err := game.NewCard(fmt.Sprintf("Plain%02d", i), 1, value, pattern)
		require.NoError(t, err)
		cards[i] = c
	}
	return cards
}

func TestRenderFreshBoard(t *testing.T) {
	e := game.NewEngine()
	require.NoError(t, e.StartGame(3, 5, testDeck(t, 6, 2), testDeck(t, 6, 2), 1))

	out, err := Render(e)
	require.NoError(t, err)
	require.Equal(t,
		"0 r1 __ __ __ b1 0\n"+
			"0 r1 __ __ __ b1 0\n"+
			"0 r1 __ __ __ b1 0\n"+
			"TOTAL RED 0 BLUE 0\n",
		out)
}

func TestRenderAfterPlacement(t *testing.T) {
	e := game.NewEngine()
	require.NoError(t, e.StartGame(3, 5, testDeck(t, 6, 2), testDeck(t, 6, 3), 1))
	require.NoError(t, e.PlaceCard(0, 0, 0))
	require.NoError(t, e.PlaceCard(0, 1, 4))

	out, err := Render(e)
	require.NoError(t, err)
	require.Equal(t,
		"2 R2 __ __ __ b1 0\n"+
			"0 r1 __ __ __ B3 3\n"+
			"0 r1 __ __ __ b1 0\n"+
			"TOTAL RED 2 BLUE 3\n",
		out)
}

func TestRenderNeedsAStartedGame(t *testing.T) {
	_, err := Render(game.NewEngine())
	require.ErrorIs(t, err, game.ErrNotStarted)
}

func TestRenderHand(t *testing.T) {
	cards := testDeck(t, 2, 4)
	out := RenderHand(cards)
	require.Contains(t, out, "[0] Plain00 cost=1 value=4")
	require.Contains(t, out, "[1] Plain01")
	require.Contains(t, out, "XXCXX")

	require.Equal(t, "(no cards)\n", RenderHand(nil))
}
