package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrAlreadyResolved    = errors.New("payment already resolved")
	ErrBadSignature       = errors.New("invalid payment signature")
	ErrIllegalTransition  = errors.New("illegal status transition")
	ErrNoLineItems        = errors.New("order has no line items")
)
