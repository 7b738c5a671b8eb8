package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/solarlune/orientation"
	"github.com/solarlune/orientation/internal/log"
	"github.com/solarlune/orientation/internal/rig"
	"gopkg.in/yaml.v3"
)

const gltfPrefix = "gltf:"

// report is what gets printed for each evaluated transform.
type report struct {
	Transform   orientation.Matrix34   `yaml:"transform"`
	Quaternion  orientation.Quaternion `yaml:"quaternion"`
	Angle       float32                `yaml:"angle"`
	Axis        orientation.Vector3    `yaml:"axis"`
	Fingerprint string                 `yaml:"fingerprint"`
}

func newReport(m orientation.Matrix34) report {
	q := m.M.ToQuaternion().Normalized()
	angle, axis := q.AngleAxis()
	return report{
		Transform:   m,
		Quaternion:  q,
		Angle:       angle,
		Axis:        axis,
		Fingerprint: strconv.FormatUint(m.Fingerprint(), 16),
	}
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {

	flags := flag.NewFlagSet("orient", flag.ContinueOnError)
	rigFile := flags.String("rig", "", "Path to a rig YAML file")
	gltfFile := flags.String("gltf", "", "Path to a .gltf or .glb file; prints the world transform of every node, named with a \"gltf:\" prefix")
	chain := flags.String("chain", "", "Evaluate only this chain (default: all chains)")
	format := flags.String("format", "text", "Output format: text or yaml")
	level := flags.String("log", "info", "Log level: debug, info, warn or error")
	logFormat := flags.String("log-format", "console", "Log encoding: console or json")

	if err := flags.Parse(args); err != nil {
		return err
	}

	if *rigFile == "" && *gltfFile == "" {
		flags.Usage()
		return errors.New("one of -rig or -gltf is required")
	}

	if *format != "text" && *format != "yaml" {
		return fmt.Errorf("unknown format %q", *format)
	}

	logLevel, err := log.ParseLevel(*level)
	if err != nil {
		return err
	}

	logger, err := log.New(logLevel, *logFormat)
	if err != nil {
		return err
	}
	defer logger.Sync()

	results := map[string]orientation.Matrix34{}

	if *rigFile != "" {

		cfg, err := rig.LoadFile(*rigFile)
		if err != nil {
			return err
		}

		r := rig.New(cfg, logger.With(log.String("rig", *rigFile)))

		if *chain != "" {
			m, err := r.Evaluate(*chain)
			if err != nil {
				logger.Error("evaluating chain", log.String("chain", *chain), log.Error(err))
				return err
			}
			results[*chain] = m
		} else {
			all, err := r.EvaluateAll()
			if err != nil {
				logger.Error("evaluating rig", log.String("rig", *rigFile), log.Error(err))
				return err
			}
			for name, m := range all {
				results[name] = m
			}
		}

	}

	if *gltfFile != "" {

		data, err := os.ReadFile(*gltfFile)
		if err != nil {
			return fmt.Errorf("reading gltf: %w", err)
		}

		transforms, err := orientation.LoadGLTFTransforms(data)
		if err != nil {
			return fmt.Errorf("%s: %w", *gltfFile, err)
		}

		logger.Info("loaded gltf", log.String("file", *gltfFile), log.Int("nodes", len(transforms.World)))

		// Node names live apart from chain names so neither source can shadow the other.
		for name, m := range transforms.World {
			results[gltfPrefix+name] = m
		}

	}

	return write(stdout, results, *format, logger)

}

func write(w io.Writer, results map[string]orientation.Matrix34, format string, logger log.Log) error {

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	reports := make(map[string]report, len(results))
	for _, name := range names {
		rep := newReport(results[name])
		reports[name] = rep
		logger.Debug("reporting transform",
			log.String("name", name),
			log.Float32("angle", rep.Angle),
			log.Stringer("axis", rep.Axis),
		)
	}

	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		return enc.Close()
	}

	for _, name := range names {
		rep := reports[name]
		fmt.Fprintf(w, "%s:\n", name)
		fmt.Fprintf(w, "  rotation:    %s\n", rep.Transform.M.Row(0))
		fmt.Fprintf(w, "               %s\n", rep.Transform.M.Row(1))
		fmt.Fprintf(w, "               %s\n", rep.Transform.M.Row(2))
		fmt.Fprintf(w, "  translation: %s\n", rep.Transform.T)
		fmt.Fprintf(w, "  quaternion:  %s\n", rep.Quaternion)
		fmt.Fprintf(w, "  angle/axis:  %s deg around %s\n", strconv.FormatFloat(float64(rep.Angle), 'f', 3, 32), rep.Axis)
		fmt.Fprintf(w, "  fingerprint: %s\n", rep.Fingerprint)
	}

	return nil

}
