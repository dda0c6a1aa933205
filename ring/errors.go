package ring

import "errors"

// Sentinel errors for ring operations. Messages are prefixed with "ring:".
var (
	// ErrEmptyRing is returned by queries on a zero-value Ring that was not built with New.
	ErrEmptyRing = errors.New("ring: ring has no neurons")

	// ErrUnknownNeuron indicates a NeuronID that is out of range or refers to a removed neuron.
	ErrUnknownNeuron = errors.New("ring: unknown neuron id")

	// ErrLastNeuron is returned by RemoveAfter when only one neuron is left.
	ErrLastNeuron = errors.New("ring: cannot remove the last neuron")

	// ErrNoSamples indicates an empty sample collection.
	ErrNoSamples = errors.New("ring: sample collection is empty")

	// ErrBadProgress indicates a time progress outside (0, 1] or NaN.
	ErrBadProgress = errors.New("ring: time progress must be in (0, 1]")

	// ErrBadThreshold indicates a NaN growth threshold.
	ErrBadThreshold = errors.New("ring: growth threshold is NaN")

	// ErrNonFinite indicates a NaN or ±Inf position.
	ErrNonFinite = errors.New("ring: position is not finite")

	// ErrOptionViolation is returned by New when an invalid Option was supplied.
	ErrOptionViolation = errors.New("ring: invalid option supplied")

	// ErrBrokenRing reports a violated cycle or symmetry invariant.
	// Grow and Prune panic with an error wrapping it; Validate returns it.
	ErrBrokenRing = errors.New("ring: ring invariant violated")
)
