// internal/game/rules.go
package game

import "fmt"

// Kingdom is the set of ten kingdom piles chosen for a game.
type Kingdom [KingdomSize]CardType

// DefaultKingdom returns the kingdom used by the adventurer card test.
func DefaultKingdom() Kingdom {
	return Kingdom{Adventurer, Gardens, Embargo, Village, Minion, Mine, Cutpurse, SeaHag, Tribute, Smithy}
}

// Contains reports whether c is one of the kingdom piles.
func (k Kingdom) Contains(c CardType) bool {
	for _, kc := range k {
		if kc == c {
			return true
		}
	}
	return false
}

// Validate checks that every entry is a distinct kingdom card.
func (k Kingdom) Validate() error {
	for i, c := range k {
		if !c.Valid() {
			return fmt.Errorf("%w: entry %d is not a known card", ErrInvalidCardSet, i)
		}
		if !c.IsKingdom() {
			return fmt.Errorf("%w: %s is not a kingdom card", ErrInvalidCardSet, c)
		}
		for j := 0; j < i; j++ {
			if k[j] == c {
				return fmt.Errorf("%w: %s chosen twice", ErrInvalidCardSet, c)
			}
		}
	}
	return nil
}

// ParseKingdom converts a list of card names into a validated Kingdom.
func ParseKingdom(names []string) (Kingdom, error) {
	var k Kingdom
	if len(names) != KingdomSize {
		return k, fmt.Errorf("%w: want %d cards, got %d", ErrInvalidCardSet, KingdomSize, len(names))
	}
	for i, name := range names {
		c, err := ParseCardType(name)
		if err != nil {
			return Kingdom{}, fmt.Errorf("%w: %v", ErrInvalidCardSet, err)
		}
		k[i] = c
	}
	if err := k.Validate(); err != nil {
		return Kingdom{}, err
	}
	return k, nil
}

// Names returns the card names of the kingdom in order.
func (k Kingdom) Names() []string {
	out := make([]string, len(k))
	for i, c := range k {
		out[i] = c.String()
	}
	return out
}

// supplyFor returns the starting supply of c for a game of numPlayers.
// Kingdom cards outside k get -1.
func supplyFor(c CardType, numPlayers int, k Kingdom) int {
	victoryPile := 12
	if numPlayers == 2 {
		victoryPile = 8
	}
	switch {
	case c == Curse:
		return 10 * (numPlayers - 1)
	case c == Estate, c == Duchy, c == Province:
		return victoryPile
	case c == Copper:
		return 60 - 7*numPlayers
	case c == Silver:
		return 40
	case c == Gold:
		return 30
	case !k.Contains(c):
		return -1
	case c.IsVictory():
		return victoryPile
	default:
		return 10
	}
}
