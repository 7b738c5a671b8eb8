// Package rig evaluates chains of named rigid transforms loaded from YAML.
package rig

import (
	"errors"
	"fmt"

	"github.com/solarlune/orientation"
	"github.com/solarlune/orientation/internal/log"
)

var (
	// ErrUnknownTransform is returned when a name is neither a transform nor a chain.
	ErrUnknownTransform = errors.New("unknown transform")
	// ErrSingular is returned when a step asks for the general inverse of a transform whose rotation is singular.
	ErrSingular = errors.New("transform is singular")
	// ErrCycle is returned when chains refer to each other in a loop.
	ErrCycle = orientation.ErrCycle
)

// Rig evaluates the chains of a Config, memoizing every result. A Rig is not safe for concurrent use.
type Rig struct {
	config *Config
	logger log.Log
	cache  map[string]orientation.Matrix34
}

// New creates a Rig over the Config given. A nil logger discards all logging.
func New(config *Config, logger log.Log) *Rig {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Rig{
		config: config,
		logger: logger,
		cache:  map[string]orientation.Matrix34{},
	}
}

// Evaluate returns the transform with the given name: either a transform taken directly from the Config, or a chain,
// composed left to right so that the first step is the outermost (result = step0 * step1 * ...).
func (r *Rig) Evaluate(name string) (orientation.Matrix34, error) {
	return r.evaluate(name, map[string]bool{})
}

func (r *Rig) evaluate(name string, inProgress map[string]bool) (orientation.Matrix34, error) {

	if m, ok := r.cache[name]; ok {
		return m, nil
	}

	if m, ok := r.config.Transforms[name]; ok {
		return m, nil
	}

	steps, ok := r.config.Chains[name]
	if !ok {
		return orientation.Matrix34{}, fmt.Errorf("%w: %q", ErrUnknownTransform, name)
	}

	if inProgress[name] {
		return orientation.Matrix34{}, fmt.Errorf("chain %q: %w", name, ErrCycle)
	}
	inProgress[name] = true
	defer delete(inProgress, name)

	result := orientation.NewMatrix34()

	for i, step := range steps {

		m, err := r.evaluate(step.Ref, inProgress)
		if err != nil {
			return orientation.Matrix34{}, fmt.Errorf("chain %q step %d: %w", name, i, err)
		}

		switch {
		case step.Inverse && step.RT:
			result.SetMultiplyInverseRTRight(&result, &m)
		case step.Inverse:
			if !m.Inverse(&m) {
				return orientation.Matrix34{}, fmt.Errorf("chain %q step %d (%q): %w", name, i, step.Ref, ErrSingular)
			}
			result.SetMultiply(&result, &m)
		default:
			result.SetMultiply(&result, &m)
		}

		r.logger.Debug("composed step",
			log.String("chain", name),
			log.Int("step", i),
			log.String("ref", step.Ref),
			log.Bool("inverse", step.Inverse),
			log.Bool("rt", step.RT),
			log.Uint64("fingerprint", result.Fingerprint()),
		)

	}

	if !result.IsFinite() {
		r.logger.Warn("chain produced a non-finite transform", log.String("chain", name), log.Stringer("transform", result))
	}

	r.cache[name] = result
	return result, nil

}

// Chains returns the names of every chain in the Config, sorted.
func (r *Rig) Chains() []string {
	return sortedNames(r.config.Chains)
}

// EvaluateAll evaluates every chain in the Config, stopping at the first error.
func (r *Rig) EvaluateAll() (map[string]orientation.Matrix34, error) {
	out := make(map[string]orientation.Matrix34, len(r.config.Chains))
	for _, name := range r.Chains() {
		m, err := r.Evaluate(name)
		if err != nil {
			return nil, err
		}
		out[name] = m
	}
	r.logger.Info("evaluated rig", log.Int("chains", len(out)))
	return out, nil
}
