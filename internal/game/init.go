// internal/game/init.go
package game

import "fmt"

const (
	startingCoppers = 7
	startingEstates = 3
)

// InitializeGame builds a new game for numPlayers with the given kingdom.
// Every player gets 7 coppers and 3 estates shuffled from seed; the first
// player draws a hand. The same arguments always yield the same state.
func InitializeGame(numPlayers int, kingdom Kingdom, seed uint64) (GameState, error) {
	if numPlayers < MinPlayers || numPlayers > MaxPlayers {
		return GameState{}, fmt.Errorf("%w: got %d", ErrInvalidPlayerCount, numPlayers)
	}
	if err := kingdom.Validate(); err != nil {
		return GameState{}, err
	}

	var g GameState
	g.NumPlayers = numPlayers
	g.Kingdom = kingdom
	g.RNG = seed
	if g.RNG == 0 {
		g.RNG = 1
	}

	for c := 0; c < NumCardTypes; c++ {
		g.Supply[c] = supplyFor(CardType(c), numPlayers, kingdom)
	}

	for p := 0; p < numPlayers; p++ {
		deck := &g.Players[p].Deck
		for i := 0; i < startingCoppers; i++ {
			deck.push(Copper)
		}
		for i := 0; i < startingEstates; i++ {
			deck.push(Estate)
		}
		g.shuffleDeck(p)
	}

	g.WhoseTurn = 0
	g.Phase = PhaseAction
	g.NumActions = 1
	g.NumBuys = 1
	g.drawHand(g.WhoseTurn)
	return g, nil
}

// drawHand draws up to HandSize cards for player p.
func (g *GameState) drawHand(p int) {
	hand := &g.Players[p].Hand
	for i := 0; i < HandSize; i++ {
		c, ok := g.drawTop(p)
		if !ok {
			return
		}
		hand.push(c)
	}
}
