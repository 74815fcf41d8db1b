// internal/game/shuffle.go
package game

// splitMix64 is the generator behind every shuffle. The algorithm is fixed so
// a seed always produces the same permutation, on any platform.
type splitMix64 struct{ state uint64 }

func (s *splitMix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Shuffle returns a permuted copy of cards. It is a Fisher-Yates shuffle
// driven by SplitMix64 seeded with seed, walking i from len-1 down to 1 and
// swapping i with next() % (i+1). The input slice is not modified.
func Shuffle(cards []CardType, seed uint64) []CardType {
	out := make([]CardType, len(cards))
	copy(out, cards)
	sm := splitMix64{state: seed}
	for i := len(out) - 1; i > 0; i-- {
		j := int(sm.next() % uint64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// nextSeed advances the state RNG and returns a seed for one shuffle.
func (g *GameState) nextSeed() uint64 {
	sm := splitMix64{state: g.RNG}
	v := sm.next()
	g.RNG = sm.state
	return v
}

// shuffleDeck reorders player p's deck in place.
func (g *GameState) shuffleDeck(p int) {
	deck := &g.Players[p].Deck
	shuffled := Shuffle(deck.Cards[:deck.Len], g.nextSeed())
	copy(deck.Cards[:deck.Len], shuffled)
}

// reshuffle moves player p's discard pile into the (empty) deck and shuffles it.
func (g *GameState) reshuffle(p int) {
	ps := &g.Players[p]
	ps.Discard.moveAllTo(&ps.Deck)
	g.shuffleDeck(p)
}

// drawTop removes the top card of player p's deck, reshuffling the discard
// pile first when the deck is empty. It reports false when both are empty.
func (g *GameState) drawTop(p int) (CardType, bool) {
	ps := &g.Players[p]
	if ps.Deck.Len == 0 {
		if ps.Discard.Len == 0 {
			return NoCard, false
		}
		g.reshuffle(p)
	}
	return ps.Deck.pop(), true
}
