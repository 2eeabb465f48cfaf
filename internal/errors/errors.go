// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines the recoverable failure kinds callers branch on and structured
// error types that preserve context while allowing inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the recoverable failure kinds.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrNoTile indicates there is no piece on the requested square.
	ErrNoTile = errors.New("no tile")

	// ErrNotCurrentTurn indicates the piece belongs to the side not on move.
	ErrNotCurrentTurn = errors.New("not current turn")

	// ErrInvalidMove indicates a destination outside the piece's legal set.
	ErrInvalidMove = errors.New("invalid move")

	// ErrPromotionPending indicates a move was attempted while a pawn is
	// still waiting to be promoted. It matches ErrInvalidMove as well.
	ErrPromotionPending = fmt.Errorf("promotion pending: %w", ErrInvalidMove)

	// ErrInvalidSquare indicates malformed algebraic square notation.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrGameNotFound indicates an unknown game ID in a session registry.
	ErrGameNotFound = errors.New("game not found")

	// ErrRegistryFull indicates a session registry reached its capacity.
	ErrRegistryFull = errors.New("registry full")
)

// MoveError wraps a move rejection with the squares involved.
// It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying error kind
	From string // Source square in algebraic notation
	To   string // Destination square, empty when not applicable
}

// Error returns a formatted error message including the squares.
func (e *MoveError) Error() string {
	var context string
	switch {
	case e.From != "" && e.To != "":
		context = fmt.Sprintf("move %s%s", e.From, e.To)
	case e.From != "":
		context = fmt.Sprintf("square %s", e.From)
	default:
		context = "move"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with input location context.
// It's used for square notation and FEN parsing errors.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Field    string // Name of the offending field, if any
	Column   int    // Character offset within the field (1-based, 0 if unknown)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Input))
	}

	if e.Field != "" {
		loc := e.Field
		if e.Column > 0 {
			loc += fmt.Sprintf(":%d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
