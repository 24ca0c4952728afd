// Package symmetry collapses boards into canonical representatives under
// the square's 8-element symmetry group, and maps cell indices between a
// board and its canonical image.
package symmetry

import (
	"errors"
	"fmt"

	"menace/game"
)

// Count is the number of transforms in the symmetry group.
const Count = 8

// transforms[k][i] is the canonical-grid index that actual cell i lands
// on under transform k. Order: identity, the three clockwise rotations,
// then the horizontal reflection composed with each rotation.
var transforms = [Count][9]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8}, // identity
	{2, 5, 8, 1, 4, 7, 0, 3, 6}, // rotate 90
	{8, 7, 6, 5, 4, 3, 2, 1, 0}, // rotate 180
	{6, 3, 0, 7, 4, 1, 8, 5, 2}, // rotate 270
	{2, 1, 0, 5, 4, 3, 8, 7, 6}, // reflect
	{0, 3, 6, 1, 4, 7, 2, 5, 8}, // reflect after rotate 90
	{6, 7, 8, 3, 4, 5, 0, 1, 2}, // reflect after rotate 180
	{8, 5, 2, 7, 4, 1, 6, 3, 0}, // reflect after rotate 270
}

// ErrInvalidMapping signals a corrupted transform table. It is carried
// by the panic raised when an inverse lookup cannot resolve, which is
// unreachable as long as every transform is a permutation.
var ErrInvalidMapping = errors.New("symmetry: no inverse for canonical index")

// inverses[k] is the inverse permutation of transforms[k], built at init.
var inverses [Count][9]int

func init() {
	for k, t := range transforms {
		for i := range inverses[k] {
			inverses[k][i] = -1
		}
		for i, j := range t {
			if inverses[k][j] != -1 {
				panic(fmt.Sprintf("symmetry: transform %d is not a permutation", k))
			}
			inverses[k][j] = i
		}
	}
}

// Apply returns the image of b under transform k.
func Apply(b game.Board, k int) game.Board {
	var out game.Board
	for i, c := range b {
		out[transforms[k][i]] = c
	}
	return out
}

// Canonicalize returns the lexicographically smallest encoding of b over
// all 8 transforms, along with the index of the transform that produced
// it. Ties keep the lowest transform index, so the identity wins when
// several transforms yield the same encoding.
func Canonicalize(b game.Board) (string, int) {
	best := b.Encode()
	bestK := 0
	for k := 1; k < Count; k++ {
		if s := Apply(b, k).Encode(); s < best {
			best = s
			bestK = k
		}
	}
	return best, bestK
}

// ToCanonical maps an actual-board cell index into canonical space under
// transform k.
func ToCanonical(actualIndex, k int) int {
	return transforms[k][actualIndex]
}

// ToActual maps a canonical cell index back to the actual-board index it
// came from under transform k. Panics with ErrInvalidMapping if the
// lookup cannot resolve, which indicates a programming defect, not a
// runtime condition.
func ToActual(canonicalIndex, k int) int {
	i := inverses[k][canonicalIndex]
	if i < 0 {
		panic(ErrInvalidMapping)
	}
	return i
}
