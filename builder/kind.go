// SPDX-License-Identifier: MIT
// Package: navgraph/builder
//
// kind.go - named generator families sized by a node count.
//
// Used by the performance analyser and the configuration layer, which only
// know a family name and a target size.

package builder

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownKind indicates a generator family name that ParseKind does not know.
var ErrUnknownKind = errors.New("builder: unknown generator kind")

// Kind names a generator family.
type Kind string

const (
	KindGrid    Kind = "grid"
	KindRandom  Kind = "random"
	KindCity    Kind = "city"
	KindNearest Kind = "nearest"
	KindDemo    Kind = "demo"
)

// Defaults used by Sized.
const (
	DefaultProbability = 0.01
	DefaultClusters    = 10
	DefaultSpacing     = 1.0
)

// Kinds lists every family in a stable order.
func Kinds() []Kind {
	return []Kind{KindGrid, KindRandom, KindCity, KindNearest, KindDemo}
}

// ParseKind resolves a case-insensitive family name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Sized returns the family's constructor for roughly n nodes:
//   - grid:    a ⌊√n⌋×⌊√n⌋ grid with DefaultSpacing
//   - random:  Random(n, DefaultProbability)
//   - city:    CityLike(n, DefaultClusters)
//   - nearest: Nearest(n)
//   - demo:    Demo(), n is ignored
func (k Kind) Sized(n int) (Constructor, error) {
	switch k {
	case KindGrid:
		side := int(math.Sqrt(float64(max(n, 0))))
		return Grid(side, side, DefaultSpacing), nil
	case KindRandom:
		return Random(n, DefaultProbability), nil
	case KindCity:
		return CityLike(n, DefaultClusters), nil
	case KindNearest:
		return Nearest(n), nil
	case KindDemo:
		return Demo(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(k))
	}
}
