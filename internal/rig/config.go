package rig

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/solarlune/orientation"
	"gopkg.in/yaml.v3"
)

// Config describes a rig: named rigid transforms, and named chains composing them.
//
//	transforms:
//	  shoulder: {axis: [0, 0, 1], angle: 90, translation: [0, 1, 0]}
//	  elbow:    {rotation: [0, 0, 0, 1], translation: [1, 0, 0]}
//	chains:
//	  hand: [shoulder, elbow]
//	  back: [{ref: hand, inverse: true, rt: true}]
type Config struct {
	Transforms map[string]orientation.Matrix34 `yaml:"transforms"`
	Chains     map[string][]Step               `yaml:"chains"`
}

// Step is a single link in a chain. Ref names a transform or another chain. Inverse composes the inverse of the
// referenced transform instead; RT marks the referenced transform as a pure rotation plus translation, so its inverse
// can be taken by transposing.
type Step struct {
	Ref     string `yaml:"ref"`
	Inverse bool   `yaml:"inverse,omitempty"`
	RT      bool   `yaml:"rt,omitempty"`
}

type stepYAML Step

// UnmarshalYAML accepts a Step either as a bare name or as a mapping.
func (s *Step) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*s = Step{Ref: value.Value}
		return nil
	}
	raw := stepYAML{}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*s = Step(raw)
	return nil
}

// LoadYAML loads a Config from a YAML reader and validates it.
func LoadYAML(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return &c, nil
		}
		return nil, fmt.Errorf("decoding rig: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile loads a Config from the YAML file at path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening rig: %w", err)
	}
	defer f.Close()
	c, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks that names are unique across transforms and chains, that every step names something, and that every
// transform is finite. Names are checked in sorted order, so the same Config always reports the same error. Cycles are
// only detected on evaluation.
func (c *Config) Validate() error {
	for _, name := range sortedNames(c.Transforms) {
		if !c.Transforms[name].IsFinite() {
			return fmt.Errorf("transform %q is not finite", name)
		}
		if _, ok := c.Chains[name]; ok {
			return fmt.Errorf("%q is both a transform and a chain", name)
		}
	}
	for _, name := range sortedNames(c.Chains) {
		for i, step := range c.Chains[name] {
			if step.Ref == "" {
				return fmt.Errorf("chain %q step %d: missing ref", name, i)
			}
			if !c.has(step.Ref) {
				return fmt.Errorf("chain %q step %d: %w: %q", name, i, ErrUnknownTransform, step.Ref)
			}
		}
	}
	return nil
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Config) has(name string) bool {
	if _, ok := c.Transforms[name]; ok {
		return true
	}
	_, ok := c.Chains[name]
	return ok
}
