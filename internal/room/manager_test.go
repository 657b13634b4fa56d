package room

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"pawns-board/internal/config"
	"pawns-board/internal/deck"
	"pawns-board/internal/game"
)

type fakeStore struct {
	rooms map[string]*Room
}

func newFakeStore() *fakeStore { return &fakeStore{rooms: map[string]*Room{}} }

func (s *fakeStore) GetRoom(code string) (*Room, bool) {
	r, ok := s.rooms[code]
	return r, ok
}

func (s *fakeStore) SaveRoom(r *Room) { s.rooms[r.Code] = r }

type recordBroadcaster struct {
	events []string
}

func (b *recordBroadcaster) Broadcast(code, action string, _ interface{}) {
	b.events = append(b.events, code+":"+action)
}

// plainCards builds cost-1, value-2 cards with no influence beyond the
// center, so shuffled order never affects a test.
func plainCards(t *testing.T, n int) []game.Card {
	t.Helper()
	var p game.Pattern
	p[2][2] = game.InfluenceCenter
	out := make([]game.Card, n)
	for i := range out {
		c, err := game.NewCard(fmt.Sprintf("Plain%02d", i), 1, 2, p)
		require.NoError(t, err)
		out[i] = c
	}
	return out
}

func testManager(t *testing.T) (*Manager, *recordBroadcaster) {
	t.Helper()
	cfg := config.Config{BoardRows: 3, BoardCols: 5, HandSize: 1, ShuffleSeed: 7}
	m := NewManager(newFakeStore(), cfg, deck.VariantBase, plainCards(t, 6))
	b := &recordBroadcaster{}
	m.SetBroadcaster(b)
	return m, b
}

func startedRoom(t *testing.T, m *Manager) (code, redID, blueID string) {
	t.Helper()
	r, err := m.CreateRoom("Ada")
	require.NoError(t, err)
	_, guest, err := m.Join(r.Code, "Grace")
	require.NoError(t, err)
	return r.Code, r.Red.ID, guest.ID
}

func TestCreateRoomOpensWaitingRoom(t *testing.T) {
	m, b := testManager(t)

	r, err := m.CreateRoom("Ada")
	require.NoError(t, err)
	require.Len(t, r.Code, 6)
	require.Equal(t, StatusWaiting, r.Status)
	require.Equal(t, "Ada", r.Red.Name)
	require.NotEmpty(t, r.Red.ID)
	require.Nil(t, r.Blue)
	require.Empty(t, b.events, "creation alone broadcasts nothing")

	got, ok := m.Get(r.Code)
	require.True(t, ok)
	require.Same(t, r, got)

	snap := r.Snapshot()
	require.Equal(t, StatusWaiting, snap.Status)
	require.Zero(t, snap.Rows, "no board before the game starts")
	require.Nil(t, snap.Board)
	require.Empty(t, snap.Current)
}

func TestJoinStartsTheGame(t *testing.T) {
	m, b := testManager(t)

	r, err := m.CreateRoom("Ada")
	require.NoError(t, err)

	joined, guest, err := m.Join(r.Code, "Grace")
	require.NoError(t, err)
	require.Same(t, r, joined)
	require.Equal(t, StatusPlaying, r.Status)
	require.Equal(t, "Grace", r.Blue.Name)
	require.NotEqual(t, r.Red.ID, guest.ID)

	snap := r.Snapshot()
	require.Equal(t, 3, snap.Rows)
	require.Equal(t, 5, snap.Cols)
	require.Equal(t, "RED", snap.Current)
	require.Len(t, snap.Hands["RED"], 1)
	require.Len(t, snap.Hands["BLUE"], 1)
	require.Equal(t, 5, snap.DeckSizes["RED"])
	require.Equal(t, 5, snap.DeckSizes["BLUE"])
	require.Equal(t, "PAWNS", snap.Board[1][0].Content)
	require.Equal(t, "RED", snap.Board[1][0].Owner)
	require.Equal(t, 1, snap.Board[1][0].Pawns)
	require.Equal(t, "BLUE", snap.Board[1][4].Owner)
	require.Len(t, snap.RowScores, 3)
	require.False(t, snap.Over)

	require.Equal(t, []string{r.Code + ":game_started"}, b.events)
}

func TestJoinGuards(t *testing.T) {
	m, _ := testManager(t)

	_, _, err := m.Join("NOPE42", "Grace")
	require.ErrorIs(t, err, ErrRoomNotFound)

	r, err := m.CreateRoom("Ada")
	require.NoError(t, err)
	_, _, err = m.Join(r.Code, "Grace")
	require.NoError(t, err)

	_, _, err = m.Join(r.Code, "Intruder")
	require.ErrorIs(t, err, ErrRoomFull)
}

func TestMoveGuards(t *testing.T) {
	m, _ := testManager(t)

	_, err := m.PlaceCard("NOPE42", "anyone", 0, 0, 0)
	require.ErrorIs(t, err, ErrRoomNotFound)

	r, err := m.CreateRoom("Ada")
	require.NoError(t, err)

	_, err = m.PlaceCard(r.Code, r.Red.ID, 0, 0, 0)
	require.ErrorIs(t, err, game.ErrNotStarted, "no moves before the second seat fills")

	_, guest, err := m.Join(r.Code, "Grace")
	require.NoError(t, err)

	_, err = m.PlaceCard(r.Code, "stranger", 0, 0, 0)
	require.ErrorIs(t, err, ErrUnknownPlayer)

	_, err = m.PlaceCard(r.Code, guest.ID, 0, 0, 0)
	require.ErrorIs(t, err, ErrNotYourTurn)

	_, err = m.Pass(r.Code, guest.ID)
	require.ErrorIs(t, err, ErrNotYourTurn)
}

func TestPlaceCardUpdatesStateAndBroadcasts(t *testing.T) {
	m, b := testManager(t)
	code, redID, _ := startedRoom(t, m)

	snap, err := m.PlaceCard(code, redID, 0, 1, 0)
	require.NoError(t, err)

	require.Equal(t, "CARD", snap.Board[1][0].Content)
	require.Equal(t, "RED", snap.Board[1][0].Owner)
	require.NotNil(t, snap.Board[1][0].Card)
	require.Equal(t, 2, snap.Board[1][0].Effective)
	require.Equal(t, "BLUE", snap.Current)
	require.Empty(t, snap.Hands["RED"], "red played their only card and does not redraw")
	require.Len(t, snap.Hands["BLUE"], 2, "blue draws one when their turn starts")
	require.Equal(t, 4, snap.DeckSizes["BLUE"])
	require.Equal(t, 5, snap.DeckSizes["RED"])
	require.Equal(t, 2, snap.TotalRed)

	require.Equal(t, []string{
		code + ":game_started",
		code + ":turn_changed",
		code + ":state",
	}, b.events)
}

func TestRejectedMoveBroadcastsInvalidMove(t *testing.T) {
	m, b := testManager(t)
	code, redID, _ := startedRoom(t, m)

	_, err := m.PlaceCard(code, redID, 0, 1, 4)
	require.ErrorIs(t, err, game.ErrInvalidOwner, "blue home pawns reject red cards")

	require.Equal(t, []string{
		code + ":game_started",
		code + ":invalid_move",
	}, b.events, "no state broadcast for a rejected move")

	r, ok := m.Get(code)
	require.True(t, ok)
	require.Equal(t, "RED", r.Snapshot().Current, "turn does not advance")
}

func TestPassesEndTheGame(t *testing.T) {
	m, b := testManager(t)
	code, redID, blueID := startedRoom(t, m)

	snap, err := m.Pass(code, redID)
	require.NoError(t, err)
	require.Equal(t, "BLUE", snap.Current)

	snap, err = m.Pass(code, blueID)
	require.NoError(t, err)
	require.True(t, snap.Over)
	require.Equal(t, StatusOver, snap.Status)
	require.Equal(t, "NONE", snap.Winner, "home pawns score nothing, so the fresh board ties")
	require.Empty(t, snap.Current)

	require.Equal(t, []string{
		code + ":game_started",
		code + ":turn_changed",
		code + ":state",
		code + ":game_over",
		code + ":state",
	}, b.events)

	_, err = m.Pass(code, blueID)
	require.ErrorIs(t, err, game.ErrGameOver)
}

func TestPlacementBreaksThePassStreak(t *testing.T) {
	m, _ := testManager(t)
	code, redID, blueID := startedRoom(t, m)

	_, err := m.Pass(code, redID)
	require.NoError(t, err)
	snap, err := m.PlaceCard(code, blueID, 0, 1, 4)
	require.NoError(t, err)
	require.False(t, snap.Over)

	snap, err = m.Pass(code, redID)
	require.NoError(t, err)
	require.False(t, snap.Over, "a placement resets the consecutive pass count")
}

func TestRankReportsRowStandings(t *testing.T) {
	m, _ := testManager(t)

	_, err := m.Rank("NOPE42")
	require.ErrorIs(t, err, ErrRoomNotFound)

	r, err := m.CreateRoom("Ada")
	require.NoError(t, err)
	_, err = m.Rank(r.Code)
	require.ErrorIs(t, err, game.ErrNotStarted)

	_, _, err = m.Join(r.Code, "Grace")
	require.NoError(t, err)
	_, err = m.PlaceCard(r.Code, r.Red.ID, 0, 0, 0)
	require.NoError(t, err)

	rows, err := m.Rank(r.Code)
	require.NoError(t, err)
	require.Equal(t, []RankRow{
		{Row: 0, Red: 2, Blue: 0, Leader: "RED"},
		{Row: 1, Red: 0, Blue: 0, Leader: "NONE"},
		{Row: 2, Red: 0, Blue: 0, Leader: "NONE"},
	}, rows)
}
