// internal/game/game_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestGame initializes a two-player game with the default kingdom.
func newTestGame(t *testing.T, seed uint64) GameState {
	t.Helper()
	g, err := InitializeGame(2, DefaultKingdom(), seed)
	require.NoError(t, err)
	return g
}

// stageCard gains card from the supply into player p's hand and moves it to position 0.
func stageCard(t *testing.T, g *GameState, p int, card CardType) {
	t.Helper()
	require.NoError(t, g.GainCard(card, p, GainToHand))
	require.NoError(t, g.SwapHandCards(p, 0, g.HandCount(p)-1))
	require.Equal(t, card, g.HandCard(p, 0))
}

// setZone replaces a zone's contents, bottom first.
func setZone(z *Zone, cards ...CardType) {
	z.Len = 0
	for _, c := range cards {
		z.push(c)
	}
}

// revealedBeforeTreasures counts the non-treasures drawn from the top of deck
// before n treasures turn up. It assumes the deck holds n treasures.
func revealedBeforeTreasures(deck *Zone, n int) int {
	revealed, found := 0, 0
	for i := deck.Len - 1; i >= 0 && found < n; i-- {
		if deck.Cards[i].IsTreasure() {
			found++
		} else {
			revealed++
		}
	}
	return revealed
}

// TestAdventurerCardTest replays the adventurer card test: seed 10, two players.
func TestAdventurerCardTest(t *testing.T) {
	const playerOne, playerTwo = 0, 1
	g := newTestGame(t, 10)
	stageCard(t, &g, playerOne, Adventurer)

	pre := g
	post := pre
	revealed := revealedBeforeTreasures(&pre.Players[playerOne].Deck, 2)

	bonus, err := post.ApplyEffect(Adventurer, NoChoices, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, bonus)

	assert.Equal(t, pre.HandCount(playerOne)+2-1, post.HandCount(playerOne), "player 1 hand count")
	assert.Equal(t, pre.DeckCount(playerOne)-2-revealed, post.DeckCount(playerOne), "player 1 deck count")
	assert.Equal(t, pre.PlayedCardCount()+1, post.PlayedCardCount(), "played card count")
	assert.Equal(t, pre.DeckCount(playerTwo), post.DeckCount(playerTwo), "player 2 deck count")
	assert.Equal(t, pre.Players[playerTwo], post.Players[playerTwo], "player 2 untouched")
	assert.Equal(t, pre.Coins, post.Coins, "coin count")
	assert.Equal(t, pre.Supply, post.Supply, "supply counts")
	assert.Equal(t, pre.Census(), post.Census())

	handAfter := post.HandCount(playerOne)
	require.NoError(t, post.EndTurn())

	assert.Equal(t, handAfter+1+revealed, post.DiscardCount(playerOne), "player 1 discard count")
	assert.Equal(t, 0, post.HandCount(playerOne))
	assert.Equal(t, 0, post.PlayedCardCount())
	assert.Equal(t, playerTwo, post.WhoseTurn)
	assert.Equal(t, pre.Supply, post.Supply, "supply counts")
	assert.Equal(t, pre.Census(), post.Census())
}

// TestAdventurerSeed10Golden pins the exact numbers seed 10 produces.
func TestAdventurerSeed10Golden(t *testing.T) {
	g := newTestGame(t, 10)
	// Seed 10 deals player 1 estate, copper, copper, estate, copper and
	// leaves copper, estate, copper, copper, copper (top last) in the deck.
	assert.Equal(t, []CardType{Estate, Copper, Copper, Estate, Copper}, g.Players[0].Hand.Slice())
	assert.Equal(t, []CardType{Copper, Estate, Copper, Copper, Copper}, g.Players[0].Deck.Slice())

	stageCard(t, &g, 0, Adventurer)
	_, err := g.ApplyEffect(Adventurer, NoChoices, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, g.HandCount(0))
	assert.Equal(t, 3, g.DeckCount(0))
	assert.Equal(t, 0, g.DiscardCount(0))

	require.NoError(t, g.EndTurn())
	assert.Equal(t, 8, g.DiscardCount(0))
	assert.Equal(t, 5, g.HandCount(1))
	assert.Equal(t, 5, g.DeckCount(1))
}

func TestAdventurerFewerThanTwoTreasures(t *testing.T) {
	g := newTestGame(t, 3)
	stageCard(t, &g, 0, Adventurer)
	setZone(&g.Players[0].Deck, Estate, Copper, Estate, Estate)
	setZone(&g.Players[0].Discard)
	before := g

	_, err := g.ApplyEffect(Adventurer, NoChoices, 0)
	require.NoError(t, err)

	assert.Equal(t, before.HandCount(0)+1-1, g.HandCount(0))
	assert.Equal(t, 0, g.DeckCount(0))
	assert.Equal(t, 3, g.DiscardCount(0), "every revealed card is discarded")
	assert.Equal(t, 3, g.Players[0].Discard.Count(Estate))
	assert.Equal(t, before.Census(), g.Census(), "no card lost")
}

func TestAdventurerNoTreasures(t *testing.T) {
	g := newTestGame(t, 3)
	stageCard(t, &g, 0, Adventurer)
	setZone(&g.Players[0].Deck)
	setZone(&g.Players[0].Discard)
	before := g

	_, err := g.ApplyEffect(Adventurer, NoChoices, 0)
	require.NoError(t, err)
	assert.Equal(t, before.HandCount(0)-1, g.HandCount(0))
	assert.Equal(t, 1, g.PlayedCardCount())
	assert.Equal(t, before.Census(), g.Census())
}

func TestAdventurerReshufflesDiscard(t *testing.T) {
	g := newTestGame(t, 5)
	stageCard(t, &g, 0, Adventurer)
	setZone(&g.Players[0].Deck, Copper)
	setZone(&g.Players[0].Discard, Estate, Silver, Estate, Gold, Copper)
	before := g

	_, err := g.ApplyEffect(Adventurer, NoChoices, 0)
	require.NoError(t, err)

	ps := g.Players[0]
	assert.Equal(t, before.HandCount(0)+2-1, g.HandCount(0))
	total := ps.Hand.Len + ps.Deck.Len + ps.Discard.Len
	beforePs := before.Players[0]
	assert.Equal(t, beforePs.Hand.Len+beforePs.Deck.Len+beforePs.Discard.Len-1, total,
		"only the played card left the player's zones")
	assert.Equal(t, before.Census(), g.Census())
	assert.NotEqual(t, before.RNG, g.RNG, "reshuffle consumed the generator")
}

func TestAdventurerDeterministicAcrossCopies(t *testing.T) {
	g := newTestGame(t, 8)
	stageCard(t, &g, 0, Adventurer)
	setZone(&g.Players[0].Deck)
	setZone(&g.Players[0].Discard, Estate, Silver, Estate, Gold, Copper, Estate, Copper)

	a, b := g, g
	_, err := a.ApplyEffect(Adventurer, NoChoices, 0)
	require.NoError(t, err)
	_, err = b.ApplyEffect(Adventurer, NoChoices, 0)
	require.NoError(t, err)
	assert.True(t, a == b, "copies must resolve identically")
}

func TestApplyEffectErrors(t *testing.T) {
	g := newTestGame(t, 10)
	before := g

	_, err := g.ApplyEffect(Adventurer, NoChoices, 0)
	assert.ErrorIs(t, err, ErrCardNotInHand)

	_, err = g.ApplyEffect(Copper, NoChoices, 99)
	assert.ErrorIs(t, err, ErrCardNotInHand)

	_, err = g.ApplyEffect(Copper, NoChoices, -1)
	assert.ErrorIs(t, err, ErrCardNotInHand)

	stageCard(t, &g, 0, Mine)
	staged := g
	_, err = g.ApplyEffect(Mine, NoChoices, 0)
	assert.ErrorIs(t, err, ErrUnsupportedEffect)
	assert.True(t, staged == g, "unsupported effect must not mutate state")

	_, err = g.ApplyEffect(NoCard, NoChoices, 0)
	assert.ErrorIs(t, err, ErrUnsupportedEffect)

	bad := before
	bad.WhoseTurn = 7
	_, err = bad.ApplyEffect(Copper, NoChoices, 0)
	assert.ErrorIs(t, err, ErrInvalidPlayerIndex)
}

func TestSmithyDrawsThree(t *testing.T) {
	g := newTestGame(t, 10)
	stageCard(t, &g, 0, Smithy)
	before := g

	_, err := g.ApplyEffect(Smithy, NoChoices, 0)
	require.NoError(t, err)
	assert.Equal(t, before.HandCount(0)+3-1, g.HandCount(0))
	assert.Equal(t, before.DeckCount(0)-3, g.DeckCount(0))
	assert.Equal(t, Smithy, g.Played.Cards[0])
	assert.Equal(t, before.Census(), g.Census())
}

func TestVillageAndGreatHall(t *testing.T) {
	g := newTestGame(t, 10)
	stageCard(t, &g, 0, Village)
	_, err := g.ApplyEffect(Village, NoChoices, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NumActions)

	// Great hall is not in the default kingdom; stage it straight into the hand.
	g.Players[0].Hand.push(GreatHall)
	require.NoError(t, g.SwapHandCards(0, 0, g.HandCount(0)-1))
	hand := g.HandCount(0)
	_, err = g.ApplyEffect(GreatHall, NoChoices, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumActions)
	assert.Equal(t, hand, g.HandCount(0))
	assert.Equal(t, 2, g.PlayedCardCount())
}

func TestCouncilRoomOthersDraw(t *testing.T) {
	g := newTestGame(t, 10)
	g.Players[0].Hand.push(CouncilRoom)
	pos := g.HandCount(0) - 1
	before := g

	_, err := g.ApplyEffect(CouncilRoom, NoChoices, pos)
	require.NoError(t, err)
	assert.Equal(t, before.HandCount(0)+4-1, g.HandCount(0))
	assert.Equal(t, before.HandCount(1)+1, g.HandCount(1))
	assert.Equal(t, 2, g.NumBuys)
}

func TestHasEffect(t *testing.T) {
	assert.True(t, HasEffect(Adventurer))
	assert.True(t, HasEffect(Smithy))
	assert.False(t, HasEffect(Copper))
	assert.False(t, HasEffect(Tribute))
}
