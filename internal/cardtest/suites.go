// internal/cardtest/suites.go
package cardtest

import (
	"fmt"

	"github.com/jason-s-yu/dominion/internal/game"
	"github.com/jason-s-yu/dominion/internal/verify"
	"github.com/sirupsen/logrus"
)

const (
	playerOne = 0
	playerTwo = 1
	handPos   = 0
)

// revealedBefore counts the non-treasures on top of deck (top is last) above
// its n-th treasure. ok is false when the deck holds fewer than n treasures.
func revealedBefore(deck []game.CardType, n int) (revealed int, ok bool) {
	found := 0
	for i := len(deck) - 1; i >= 0; i-- {
		if deck[i].IsTreasure() {
			found++
			if found == n {
				return revealed, true
			}
			continue
		}
		revealed++
	}
	return revealed, false
}

// Adventurer plays adventurer for player 1 and checks the hand, play area,
// the other player's deck, coins, the discard after the turn ends and the supply.
func Adventurer(s Setup, log logrus.FieldLogger) (*verify.Report, error) {
	const newTreasures, playedCards = 2, 1

	pre, err := stage(s, game.Adventurer, log)
	if err != nil {
		return nil, err
	}
	revealed, ok := revealedBefore(pre.Players[playerOne].Deck.Slice(), newTreasures)
	if !ok {
		return nil, fmt.Errorf("seed %d leaves fewer than %d treasures in the deck", s.Seed, newTreasures)
	}

	post := pre
	report := verify.NewReport("test suite for playing adventurer")
	if _, err := post.ApplyEffect(game.Adventurer, game.NoChoices, handPos); err != nil {
		return nil, fmt.Errorf("play adventurer: %w", err)
	}
	log.WithFields(playerFields(&post, playerOne)).WithField("revealed", revealed).Debug("played adventurer")

	report.Equal("Player 1 hand count", pre.HandCount(playerOne)+newTreasures-playedCards, post.HandCount(playerOne))
	report.Equal("Player 1 deck count", pre.DeckCount(playerOne)-newTreasures-revealed, post.DeckCount(playerOne))
	report.Equal("Player 1 played card count", pre.PlayedCardCount()+playedCards, post.PlayedCardCount())
	report.Equal("Player 2 deck count", pre.DeckCount(playerTwo), post.DeckCount(playerTwo))
	report.Equal("Coin count", pre.Coins, post.Coins)

	if err := post.EndTurn(); err != nil {
		return nil, fmt.Errorf("end turn: %w", err)
	}
	log.WithFields(playerFields(&post, playerOne)).Debug("ended turn")

	// The hand, the played adventurer and the revealed cards all end up in the discard.
	report.Equal("Player 1 discard count",
		pre.DiscardCount(playerOne)+pre.HandCount(playerOne)+newTreasures-playedCards+playedCards+revealed,
		post.DiscardCount(playerOne))
	report.SupplyUnchanged(&pre, &post)
	return report, nil
}

// Smithy plays smithy for player 1 and checks the same fields for a plain three-card draw.
func Smithy(s Setup, log logrus.FieldLogger) (*verify.Report, error) {
	const drawn, playedCards = 3, 1

	pre, err := stage(s, game.Smithy, log)
	if err != nil {
		return nil, err
	}
	if pre.DeckCount(playerOne) < drawn {
		return nil, fmt.Errorf("seed %d leaves fewer than %d cards in the deck", s.Seed, drawn)
	}

	post := pre
	report := verify.NewReport("test suite for playing smithy")
	if _, err := post.ApplyEffect(game.Smithy, game.NoChoices, handPos); err != nil {
		return nil, fmt.Errorf("play smithy: %w", err)
	}
	log.WithFields(playerFields(&post, playerOne)).Debug("played smithy")

	report.Equal("Player 1 hand count", pre.HandCount(playerOne)+drawn-playedCards, post.HandCount(playerOne))
	report.Equal("Player 1 deck count", pre.DeckCount(playerOne)-drawn, post.DeckCount(playerOne))
	report.Equal("Player 1 played card count", pre.PlayedCardCount()+playedCards, post.PlayedCardCount())
	report.Equal("Player 2 deck count", pre.DeckCount(playerTwo), post.DeckCount(playerTwo))
	report.Equal("Coin count", pre.Coins, post.Coins)

	if err := post.EndTurn(); err != nil {
		return nil, fmt.Errorf("end turn: %w", err)
	}
	report.Equal("Player 1 discard count",
		pre.DiscardCount(playerOne)+pre.HandCount(playerOne)+drawn,
		post.DiscardCount(playerOne))
	report.SupplyUnchanged(&pre, &post)
	return report, nil
}
