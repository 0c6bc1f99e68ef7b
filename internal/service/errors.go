package service

import "errors"

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrNotSignedIn    = errors.New("not signed in")
	ErrMixedStores    = errors.New("cart holds items from more than one store")
	ErrBadCredentials = errors.New("wrong email or password")
	ErrUnknownAccount = errors.New("no account for this email")
)
