package arcade

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrInvalidWallet  = errors.New("invalid_wallet")
	ErrUnknownGame    = errors.New("unknown_game")
	ErrNothingToClaim = errors.New("nothing_to_claim")
)
