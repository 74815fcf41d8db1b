// internal/game/effects.go
package game

import "fmt"

// Choices carries the optional player decisions some cards take.
// Cards that need no decision ignore it.
type Choices struct {
	Choice1 int
	Choice2 int
	Choice3 int
}

// NoChoices is the Choices value for cards without decisions.
var NoChoices = Choices{Choice1: -1, Choice2: -1, Choice3: -1}

// effectFunc resolves one card for player p, whose copy sits at handPos.
// Inputs are already validated. It returns the coin bonus produced.
type effectFunc func(g *GameState, p, handPos int, ch Choices) int

var effects = map[CardType]effectFunc{
	Adventurer:  playAdventurer,
	Smithy:      playSmithy,
	Village:     playVillage,
	CouncilRoom: playCouncilRoom,
	GreatHall:   playGreatHall,
}

// HasEffect reports whether c has an effect handler.
func HasEffect(c CardType) bool {
	_, ok := effects[c]
	return ok
}

// ApplyEffect plays card from position handPos of the active player's hand
// and resolves it. It returns the coin bonus the card produced. On error
// nothing in the state has changed.
func (g *GameState) ApplyEffect(card CardType, ch Choices, handPos int) (int, error) {
	if !card.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedEffect, card)
	}
	p := g.WhoseTurn
	if !g.validPlayer(p) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPlayerIndex, p)
	}
	if g.HandCard(p, handPos) != card {
		return 0, fmt.Errorf("%w: %s at %d", ErrCardNotInHand, card, handPos)
	}
	fn, ok := effects[card]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedEffect, card)
	}
	return fn(g, p, handPos, ch), nil
}

// moveToPlay takes the card at handPos from player p's hand into the play area.
func (g *GameState) moveToPlay(p, handPos int) {
	g.Played.push(g.Players[p].Hand.removeAt(handPos))
}

// drawInto draws up to n cards into player p's hand and returns how many were drawn.
func (g *GameState) drawInto(p, n int) int {
	drawn := 0
	for ; drawn < n; drawn++ {
		c, ok := g.drawTop(p)
		if !ok {
			break
		}
		g.Players[p].Hand.push(c)
	}
	return drawn
}

const adventurerTreasures = 2

// playAdventurer reveals cards until two treasures are found. Treasures go to
// the hand, the other revealed cards are set aside and discarded at the end.
func playAdventurer(g *GameState, p, handPos int, _ Choices) int {
	g.moveToPlay(p, handPos)
	ps := &g.Players[p]

	var revealed []CardType
	found := 0
	for found < adventurerTreasures {
		c, ok := g.drawTop(p)
		if !ok {
			break
		}
		if c.IsTreasure() {
			ps.Hand.push(c)
			found++
			continue
		}
		revealed = append(revealed, c)
	}
	for _, c := range revealed {
		ps.Discard.push(c)
	}
	return 0
}

func playSmithy(g *GameState, p, handPos int, _ Choices) int {
	g.moveToPlay(p, handPos)
	g.drawInto(p, 3)
	return 0
}

func playVillage(g *GameState, p, handPos int, _ Choices) int {
	g.moveToPlay(p, handPos)
	g.drawInto(p, 1)
	g.NumActions += 2
	return 0
}

// playCouncilRoom draws four and gives a buy; every other player draws one.
func playCouncilRoom(g *GameState, p, handPos int, _ Choices) int {
	g.moveToPlay(p, handPos)
	g.drawInto(p, 4)
	g.NumBuys++
	for other := 0; other < g.NumPlayers; other++ {
		if other != p {
			g.drawInto(other, 1)
		}
	}
	return 0
}

func playGreatHall(g *GameState, p, handPos int, _ Choices) int {
	g.moveToPlay(p, handPos)
	g.drawInto(p, 1)
	g.NumActions++
	return 0
}
