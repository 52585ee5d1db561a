package payments

import "errors"

var (
	ErrInvalidSignature = errors.New("invalid_signature")
	ErrMissingWallet    = errors.New("missing_wallet")
)
