// internal/game/turn.go
package game

import "fmt"

// GainTarget is the zone a gained card lands in.
type GainTarget uint8

const (
	GainToDiscard GainTarget = iota
	GainToDeck
	GainToHand
)

// EndTurn cleans up the active player's hand and the play area into their
// discard pile, resets the turn counters and passes the turn to the next
// player, who draws a fresh hand.
func (g *GameState) EndTurn() error {
	p := g.WhoseTurn
	if !g.validPlayer(p) {
		return fmt.Errorf("%w: %d", ErrInvalidPlayerIndex, p)
	}
	ps := &g.Players[p]
	ps.Hand.moveAllTo(&ps.Discard)
	g.Played.moveAllTo(&ps.Discard)

	g.Coins = 0
	g.NumActions = 1
	g.NumBuys = 1
	g.Phase = PhaseAction

	g.WhoseTurn = (p + 1) % g.NumPlayers
	g.drawHand(g.WhoseTurn)
	return nil
}

// DrawCard moves the top card of player p's deck into their hand, reshuffling
// the discard pile when the deck is empty. ok is false when no card is left.
func (g *GameState) DrawCard(p int) (c CardType, ok bool, err error) {
	if !g.validPlayer(p) {
		return NoCard, false, fmt.Errorf("%w: %d", ErrInvalidPlayerIndex, p)
	}
	c, ok = g.drawTop(p)
	if ok {
		g.Players[p].Hand.push(c)
	}
	return c, ok, nil
}

// DiscardCard removes the card at handPos from player p's hand. A trashed card
// leaves the game; otherwise it goes to the play area.
func (g *GameState) DiscardCard(handPos, p int, trash bool) error {
	if !g.validPlayer(p) {
		return fmt.Errorf("%w: %d", ErrInvalidPlayerIndex, p)
	}
	if handPos < 0 || handPos >= g.Players[p].Hand.Len {
		return fmt.Errorf("%w: position %d", ErrCardNotInHand, handPos)
	}
	c := g.Players[p].Hand.removeAt(handPos)
	if trash {
		g.Trashed[c]++
		return nil
	}
	g.Played.push(c)
	return nil
}

// GainCard takes one c from the supply and puts it in player p's chosen zone.
func (g *GameState) GainCard(c CardType, p int, to GainTarget) error {
	if !g.validPlayer(p) {
		return fmt.Errorf("%w: %d", ErrInvalidPlayerIndex, p)
	}
	if !c.Valid() || g.Supply[c] < 1 {
		return fmt.Errorf("%w: %s", ErrSupplyEmpty, c)
	}
	ps := &g.Players[p]
	var dst *Zone
	switch to {
	case GainToDeck:
		dst = &ps.Deck
	case GainToHand:
		dst = &ps.Hand
	default:
		dst = &ps.Discard
	}
	if dst.Len >= MaxZone {
		return ErrZoneFull
	}
	g.Supply[c]--
	dst.push(c)
	return nil
}

// BuyCard spends coins and a buy to gain c into the active player's discard pile.
func (g *GameState) BuyCard(c CardType) error {
	p := g.WhoseTurn
	if !g.validPlayer(p) {
		return fmt.Errorf("%w: %d", ErrInvalidPlayerIndex, p)
	}
	if g.NumBuys < 1 {
		return ErrNoBuys
	}
	if !c.Valid() || g.Supply[c] < 1 {
		return fmt.Errorf("%w: %s", ErrSupplyEmpty, c)
	}
	if g.Coins < c.Cost() {
		return fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientCoins, c, c.Cost(), g.Coins)
	}
	if err := g.GainCard(c, p, GainToDiscard); err != nil {
		return err
	}
	g.Coins -= c.Cost()
	g.NumBuys--
	g.Phase = PhaseBuy
	return nil
}

// UpdateCoins sets Coins to the value of the treasures in player p's hand plus bonus.
func (g *GameState) UpdateCoins(p, bonus int) error {
	if !g.validPlayer(p) {
		return fmt.Errorf("%w: %d", ErrInvalidPlayerIndex, p)
	}
	hand := &g.Players[p].Hand
	coins := bonus
	for i := 0; i < hand.Len; i++ {
		coins += hand.Cards[i].Value()
	}
	g.Coins = coins
	return nil
}

// SwapHandCards exchanges two positions of player p's hand.
func (g *GameState) SwapHandCards(p, i, j int) error {
	if !g.validPlayer(p) {
		return fmt.Errorf("%w: %d", ErrInvalidPlayerIndex, p)
	}
	hand := &g.Players[p].Hand
	if i < 0 || i >= hand.Len || j < 0 || j >= hand.Len {
		return fmt.Errorf("%w: positions %d, %d", ErrCardNotInHand, i, j)
	}
	hand.Cards[i], hand.Cards[j] = hand.Cards[j], hand.Cards[i]
	return nil
}

// IsGameOver reports whether the province pile or any three supply piles are empty.
func (g *GameState) IsGameOver() bool {
	if g.Supply[Province] == 0 {
		return true
	}
	empty := 0
	for _, n := range g.Supply {
		if n == 0 {
			empty++
		}
	}
	return empty >= 3
}

// Score returns player p's victory points over every card they own.
// Gardens are worth one point per ten owned cards.
func (g *GameState) Score(p int) (int, error) {
	if !g.validPlayer(p) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPlayerIndex, p)
	}
	owned := g.OwnedCards(p)
	score := 0
	for _, c := range owned {
		switch c {
		case Curse:
			score--
		case Estate, GreatHall:
			score++
		case Duchy:
			score += 3
		case Province:
			score += 6
		case Gardens:
			score += len(owned) / 10
		}
	}
	return score, nil
}
