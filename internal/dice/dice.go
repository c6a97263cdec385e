// Package dice implements the dice-rolling logic for the roll engine.
package dice

import (
	"errors"
	"math/rand"
)

// ErrInvalidSides indicates a die with a non-positive side count.
var ErrInvalidSides = errors.New("dice must have positive sides")

// Roll rolls a single die with the given number of sides.
//
// Roll is deterministic with respect to seed: the same seed and sides always
// produce the same face. This keeps every roll replayable from its recorded
// seed.
func Roll(seed int64, sides int) (int, error) {
	if sides <= 0 {
		return 0, ErrInvalidSides
	}
	rng := rand.New(rand.NewSource(seed))
	return rng.Intn(sides) + 1, nil
}

// RollD6 rolls the standard six-sided stress die for the given seed.
func RollD6(seed int64) int {
	face, err := Roll(seed, 6)
	if err != nil {
		// Unreachable: sides is hardcoded and always valid.
		panic(err)
	}
	return face
}
