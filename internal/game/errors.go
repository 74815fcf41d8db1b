// internal/game/errors.go
package game

import "errors"

// Errors returned by state operations. A failed operation leaves the state untouched.
var (
	ErrInvalidPlayerCount = errors.New("player count must be between 2 and 4")
	ErrInvalidCardSet     = errors.New("invalid kingdom card set")
	ErrInvalidPlayerIndex = errors.New("player index out of range")
	ErrCardNotInHand      = errors.New("card not in hand at the given position")
	ErrUnsupportedEffect  = errors.New("card has no effect handler")
	ErrSupplyEmpty        = errors.New("supply pile is empty or not in this game")
	ErrInsufficientCoins  = errors.New("not enough coins")
	ErrNoBuys             = errors.New("no buys remaining")
	ErrZoneFull           = errors.New("card zone is full")
)
