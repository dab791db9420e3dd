package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownPlay  = errors.New("unknown play")
	ErrUnknownGenre = errors.New("unknown genre")
)

// UnknownPlayError is returned when a performance references a play missing from the catalog
type UnknownPlayError struct {
	PlayID string
}

func (e *UnknownPlayError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownPlay, e.PlayID)
}

func (e *UnknownPlayError) Is(target error) bool {
	return target == ErrUnknownPlay
}

// UnknownGenreError is returned when a play's genre has no pricing rules
type UnknownGenreError struct {
	Genre Genre
}

func (e *UnknownGenreError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownGenre, string(e.Genre))
}

func (e *UnknownGenreError) Is(target error) bool {
	return target == ErrUnknownGenre
}
