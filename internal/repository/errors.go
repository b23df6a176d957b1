// Package repository holds the stores behind the booking service: flat
// files for the seat matrices and the movie catalog, MySQL for accounts,
// refresh tokens and the booking ledger.  The sentinel errors below let
// handlers map store failures onto specific HTTP responses.
package repository

import "errors"

// ErrMovieExists is returned when adding a movie whose name is already in
// the catalog.  Handlers should translate this into an HTTP 409.
var ErrMovieExists = errors.New("movie already exists")

// ErrMovieNotFound is returned when a named movie is not in the catalog.
var ErrMovieNotFound = errors.New("movie not found")

// ErrBadMovieRecord is returned when a movie cannot be represented in the
// whitespace-separated catalog file (empty name or embedded whitespace).
var ErrBadMovieRecord = errors.New("bad movie record")

// ErrUsernameExists is returned when registering a username that is
// already taken.
var ErrUsernameExists = errors.New("username already exists")

// ErrInsufficientFunds is returned when a wallet debit would take the
// balance below zero.  Handlers should translate this into HTTP 402.
var ErrInsufficientFunds = errors.New("insufficient wallet balance")
