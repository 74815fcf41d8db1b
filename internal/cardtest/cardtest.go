// internal/cardtest/cardtest.go

// Package cardtest holds card test suites: each stages a card in a fresh
// game, plays it on a copy of the state and checks the copy against the
// original with the verifier.
package cardtest

import (
	"fmt"
	"sort"

	"github.com/jason-s-yu/dominion/internal/game"
	"github.com/jason-s-yu/dominion/internal/logging"
	"github.com/jason-s-yu/dominion/internal/verify"
	"github.com/sirupsen/logrus"
)

// Setup is the game a suite runs against.
type Setup struct {
	Players int
	Kingdom game.Kingdom
	Seed    uint64
}

// DefaultSetup is the two-player, seed 10 game of the adventurer card test.
func DefaultSetup() Setup {
	return Setup{Players: 2, Kingdom: game.DefaultKingdom(), Seed: 10}
}

// Suite runs one card test and returns its report.
type Suite func(s Setup, log logrus.FieldLogger) (*verify.Report, error)

var suites = map[string]Suite{
	"adventurer": Adventurer,
	"smithy":     Smithy,
}

// Names lists the registered suites in sorted order.
func Names() []string {
	out := make([]string, 0, len(suites))
	for name := range suites {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Run looks up a suite by name and runs it.
func Run(name string, s Setup, log logrus.FieldLogger) (*verify.Report, error) {
	suite, ok := suites[name]
	if !ok {
		return nil, fmt.Errorf("unknown card test %q (have %v)", name, Names())
	}
	return suite(s, log)
}

// stage initializes the game and moves one copy of card from the supply to
// position 0 of the first player's hand.
func stage(s Setup, card game.CardType, log logrus.FieldLogger) (game.GameState, error) {
	g, err := game.InitializeGame(s.Players, s.Kingdom, s.Seed)
	if err != nil {
		return game.GameState{}, fmt.Errorf("initialize game: %w", err)
	}
	p := g.WhoseTurn
	if err := g.GainCard(card, p, game.GainToHand); err != nil {
		return game.GameState{}, fmt.Errorf("stage %s: %w", card, err)
	}
	if err := g.SwapHandCards(p, 0, g.HandCount(p)-1); err != nil {
		return game.GameState{}, fmt.Errorf("stage %s: %w", card, err)
	}
	log.WithFields(playerFields(&g, p)).Debugf("staged %s at hand position 0", card)
	return g, nil
}

func playerFields(g *game.GameState, p int) logrus.Fields {
	return logging.StateFields(p, g.HandCount(p), g.DeckCount(p), g.DiscardCount(p), g.PlayedCardCount(), g.Coins)
}
