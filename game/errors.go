package game

import (
	"errors"
	"fmt"
)

// The two error kinds of the game. ErrAllocation is fatal at startup, ErrInvalidSelection is
// reported to the player and the loop carries on.
var (
	ErrAllocation       = errors.New("cannot allocate territory store")
	ErrInvalidSelection = errors.New("invalid selection")
)

var (
	ErrInsufficientTroops = fmt.Errorf("%w: not enough troops to attack", ErrInvalidSelection)
	ErrOutOfRange         = fmt.Errorf("%w: territory out of range", ErrInvalidSelection)
	ErrSelfAttack         = fmt.Errorf("%w: territory cannot attack itself", ErrInvalidSelection)
	ErrSameFaction        = fmt.Errorf("%w: cannot attack own territory", ErrInvalidSelection)
	ErrUnknownOption      = fmt.Errorf("%w: unknown menu option", ErrInvalidSelection)
)
