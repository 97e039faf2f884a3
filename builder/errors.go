// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates p outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a failure that is not a parameter problem,
// e.g. a nil constructor or a rejected edge.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownKind is returned by ForKind for an unsupported method name.
var ErrUnknownKind = errors.New("builder: unknown topology kind")
