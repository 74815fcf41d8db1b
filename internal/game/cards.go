// internal/game/cards.go
package game

import (
	"fmt"
	"strings"
)

// CardType identifies one of the card kinds known to the engine.
// The numbering is fixed; supply arrays and census tables are indexed by it.
type CardType uint8

const (
	Curse CardType = iota
	Estate
	Duchy
	Province

	Copper
	Silver
	Gold

	Adventurer
	CouncilRoom
	Feast
	Gardens
	Mine
	Remodel
	Smithy
	Village

	Baron
	GreatHall
	Minion
	Steward
	Tribute

	Ambassador
	Cutpurse
	Embargo
	Outpost
	Salvager
	SeaHag
	TreasureMap
)

// NumCardTypes is the size of the card universe.
const NumCardTypes = int(TreasureMap) + 1

// NoCard marks an empty zone slot.
const NoCard CardType = 0xFF

type cardInfo struct {
	name    string
	cost    int
	value   int // coins produced when counted as treasure
	victory bool
}

var cardTable = [NumCardTypes]cardInfo{
	Curse:       {name: "curse", cost: 0},
	Estate:      {name: "estate", cost: 2, victory: true},
	Duchy:       {name: "duchy", cost: 5, victory: true},
	Province:    {name: "province", cost: 8, victory: true},
	Copper:      {name: "copper", cost: 0, value: 1},
	Silver:      {name: "silver", cost: 3, value: 2},
	Gold:        {name: "gold", cost: 6, value: 3},
	Adventurer:  {name: "adventurer", cost: 6},
	CouncilRoom: {name: "council_room", cost: 5},
	Feast:       {name: "feast", cost: 4},
	Gardens:     {name: "gardens", cost: 4, victory: true},
	Mine:        {name: "mine", cost: 5},
	Remodel:     {name: "remodel", cost: 4},
	Smithy:      {name: "smithy", cost: 4},
	Village:     {name: "village", cost: 3},
	Baron:       {name: "baron", cost: 4},
	GreatHall:   {name: "great_hall", cost: 3, victory: true},
	Minion:      {name: "minion", cost: 5},
	Steward:     {name: "steward", cost: 3},
	Tribute:     {name: "tribute", cost: 5},
	Ambassador:  {name: "ambassador", cost: 3},
	Cutpurse:    {name: "cutpurse", cost: 4},
	Embargo:     {name: "embargo", cost: 2},
	Outpost:     {name: "outpost", cost: 5},
	Salvager:    {name: "salvager", cost: 4},
	SeaHag:      {name: "sea_hag", cost: 4},
	TreasureMap: {name: "treasure_map", cost: 4},
}

// Valid reports whether c is part of the card universe.
func (c CardType) Valid() bool { return int(c) < NumCardTypes }

// IsTreasure reports whether c is a treasure card.
func (c CardType) IsTreasure() bool { return c == Copper || c == Silver || c == Gold }

// IsVictory reports whether c counts as a victory card, including dual-typed kingdom cards.
func (c CardType) IsVictory() bool { return c.Valid() && cardTable[c].victory }

// IsKingdom reports whether c may be chosen as one of the ten kingdom piles.
func (c CardType) IsKingdom() bool { return c >= Adventurer && c <= TreasureMap }

// Cost returns the coin cost of c, or -1 for an unknown card.
func (c CardType) Cost() int {
	if !c.Valid() {
		return -1
	}
	return cardTable[c].cost
}

// Value returns the coins c produces in hand (zero for non-treasures).
func (c CardType) Value() int {
	if !c.Valid() {
		return 0
	}
	return cardTable[c].value
}

func (c CardType) String() string {
	if c == NoCard {
		return "none"
	}
	if !c.Valid() {
		return fmt.Sprintf("card(%d)", uint8(c))
	}
	return cardTable[c].name
}

// ParseCardType resolves a card name such as "sea_hag" or "Sea Hag".
func ParseCardType(name string) (CardType, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	for i, info := range cardTable {
		if info.name == key {
			return CardType(i), nil
		}
	}
	return NoCard, fmt.Errorf("unknown card %q", name)
}
