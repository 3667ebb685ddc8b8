package geom

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
)

// Numeric policy defaults.
const (
	// DefaultEps is the absolute tolerance used by every comparison.
	DefaultEps = 1e-10

	// DefaultDigits is the number of decimal digits kept when coordinates are
	// rounded for hashing and deduplication.
	DefaultDigits = 10
)

// Tolerance is the numeric policy shared by the primitives and the solids
// built from them. The zero value is not usable; start from DefaultTolerance.
type Tolerance struct {
	Eps    float64 // absolute comparison tolerance
	Digits int     // decimal digits kept by Round
}

// DefaultTolerance returns the policy used when callers do not supply one.
func DefaultTolerance() Tolerance {
	return Tolerance{Eps: DefaultEps, Digits: DefaultDigits}
}

// Validate returns ErrBadTolerance if t cannot be used for comparisons.
func (t Tolerance) Validate() error {
	if !(t.Eps > 0) || math.IsInf(t.Eps, 0) {
		return fmt.Errorf("%w: eps %g", ErrBadTolerance, t.Eps)
	}
	if t.Digits < 0 || t.Digits > 15 {
		return fmt.Errorf("%w: digits %d", ErrBadTolerance, t.Digits)
	}
	return nil
}

// Round rounds x to t.Digits decimal digits. Negative zero is folded into
// zero so mirrored coordinates produce the same key.
func (t Tolerance) Round(x float64) float64 {
	scale := math.Pow(10, float64(t.Digits))
	r := math.Round(x*scale) / scale
	if r == 0 {
		return 0
	}
	return r
}

// Zero reports whether |x| <= Eps.
func (t Tolerance) Zero(x float64) bool {
	return math.Abs(x) <= t.Eps
}

// Equal reports whether a and b differ by at most Eps.
func (t Tolerance) Equal(a, b float64) bool {
	return math.Abs(a-b) <= t.Eps
}

// hashRounded folds tag and the rounded values into an FNV-1a hash.
func (t Tolerance) hashRounded(tag string, xs ...float64) uint64 {
	h := fnv.New64a()
	h.Write([]byte(tag))
	var buf [8]byte
	for _, x := range xs {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(t.Round(x)))
		h.Write(buf[:])
	}
	return h.Sum64()
}

// Combine mixes a type tag and already-computed hashes into one value.
// Callers pass order-independent sums when the parts form a set.
func Combine(tag string, parts ...uint64) uint64 {
	h := fnv.New64a()
	h.Write([]byte(tag))
	var buf [8]byte
	for _, p := range parts {
		binary.LittleEndian.PutUint64(buf[:], p)
		h.Write(buf[:])
	}
	return h.Sum64()
}
