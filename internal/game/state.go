// internal/game/state.go
package game

const (
	MinPlayers  = 2
	MaxPlayers  = 4
	MaxZone     = 500 // capacity of any single card zone
	HandSize    = 5
	KingdomSize = 10
)

// Phase is the step of the active player's turn.
type Phase uint8

const (
	PhaseAction Phase = iota
	PhaseBuy
	PhaseCleanup
)

// Zone is an ordered, fixed-capacity pile of cards. For a deck the top card
// is Cards[Len-1]. Slots at or beyond Len hold no meaning.
type Zone struct {
	Cards [MaxZone]CardType
	Len   int
}

func (z *Zone) push(c CardType) {
	z.Cards[z.Len] = c
	z.Len++
}

func (z *Zone) pop() CardType {
	z.Len--
	return z.Cards[z.Len]
}

// removeAt takes the card at i out of the zone, filling the hole with the last card.
func (z *Zone) removeAt(i int) CardType {
	c := z.Cards[i]
	z.Len--
	z.Cards[i] = z.Cards[z.Len]
	return c
}

// moveAllTo appends every card of z, in order, to dst and empties z.
func (z *Zone) moveAllTo(dst *Zone) {
	for i := 0; i < z.Len; i++ {
		dst.push(z.Cards[i])
	}
	z.Len = 0
}

// Slice returns a copy of the occupied part of the zone.
func (z *Zone) Slice() []CardType {
	out := make([]CardType, z.Len)
	copy(out, z.Cards[:z.Len])
	return out
}

// Count returns how many copies of c the zone holds.
func (z *Zone) Count(c CardType) int {
	n := 0
	for i := 0; i < z.Len; i++ {
		if z.Cards[i] == c {
			n++
		}
	}
	return n
}

// PlayerState holds one player's private zones.
type PlayerState struct {
	Hand    Zone
	Deck    Zone
	Discard Zone
}

// GameState holds the complete state of one game. It is a flat value type
// (arrays only, no pointers, slices or maps), so a plain assignment yields an
// independent copy that shares nothing with the original.
type GameState struct {
	NumPlayers int
	Players    [MaxPlayers]PlayerState

	// Supply holds the remaining count per card type; -1 means the pile is not in this game.
	Supply  [NumCardTypes]int
	Trashed [NumCardTypes]int
	Kingdom Kingdom

	// Played is the shared play area for the current turn.
	Played Zone

	WhoseTurn  int
	Phase      Phase
	Coins      int
	NumActions int
	NumBuys    int

	// RNG is the state of the generator every reshuffle draws its seed from.
	RNG uint64
}

// Snapshot is a complete value copy of a GameState.
type Snapshot GameState

// Save returns a snapshot of the current state.
func (g *GameState) Save() Snapshot { return Snapshot(*g) }

// Restore replaces the state with the given snapshot.
func (g *GameState) Restore(s Snapshot) { *g = GameState(s) }

func (g *GameState) validPlayer(p int) bool { return p >= 0 && p < g.NumPlayers }

// HandCount returns the number of cards in player p's hand.
func (g *GameState) HandCount(p int) int { return g.Players[p].Hand.Len }

// DeckCount returns the number of cards in player p's draw deck.
func (g *GameState) DeckCount(p int) int { return g.Players[p].Deck.Len }

// DiscardCount returns the number of cards in player p's discard pile.
func (g *GameState) DiscardCount(p int) int { return g.Players[p].Discard.Len }

// HandCard returns the card at position i of player p's hand, or NoCard.
func (g *GameState) HandCard(p, i int) CardType {
	if !g.validPlayer(p) || i < 0 || i >= g.Players[p].Hand.Len {
		return NoCard
	}
	return g.Players[p].Hand.Cards[i]
}

// PlayedCardCount returns the number of cards played this turn.
func (g *GameState) PlayedCardCount() int { return g.Played.Len }

// SupplyCount returns the remaining supply of c, or -1 if the pile is not in play.
func (g *GameState) SupplyCount(c CardType) int {
	if !c.Valid() {
		return -1
	}
	return g.Supply[c]
}

// Census totals every card type across all zones, the supply and the trash.
// The totals never change after initialization.
func (g *GameState) Census() [NumCardTypes]int {
	var out [NumCardTypes]int
	add := func(z *Zone) {
		for i := 0; i < z.Len; i++ {
			out[z.Cards[i]]++
		}
	}
	for p := 0; p < g.NumPlayers; p++ {
		add(&g.Players[p].Hand)
		add(&g.Players[p].Deck)
		add(&g.Players[p].Discard)
	}
	add(&g.Played)
	for c := range out {
		if g.Supply[c] > 0 {
			out[c] += g.Supply[c]
		}
		out[c] += g.Trashed[c]
	}
	return out
}

// OwnedCards returns every card player p owns, in hand, deck and discard order.
func (g *GameState) OwnedCards(p int) []CardType {
	if !g.validPlayer(p) {
		return nil
	}
	ps := &g.Players[p]
	out := make([]CardType, 0, ps.Hand.Len+ps.Deck.Len+ps.Discard.Len)
	out = append(out, ps.Hand.Cards[:ps.Hand.Len]...)
	out = append(out, ps.Deck.Cards[:ps.Deck.Len]...)
	out = append(out, ps.Discard.Cards[:ps.Discard.Len]...)
	return out
}
