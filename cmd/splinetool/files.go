package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"honnef.co/go/gcurve"
)

var errDuration = errors.New("segment duration must be positive")

// checkDurations rejects splines whose derivatives are undefined somewhere.
func checkDurations(path string, s gcurve.Spline) error {
	for i, d := range s.Durations {
		if !(d > 0) {
			return fmt.Errorf("%s: segment %d has duration %g: %w", path, i, d, errDuration)
		}
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func (opts *options) operators() (gcurve.Space, gcurve.Manifold, error) {
	switch opts.manifold {
	case "none", "":
		return nil, nil, nil
	case "cartesian":
		return gcurve.Cartesian{}, gcurve.Cartesian{}, nil
	case "torus":
		return gcurve.Torus{}, gcurve.Torus{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown manifold %q", opts.manifold)
	}
}

func (opts *options) loadSpline(path string) (gcurve.Spline, error) {
	space, manifold, err := opts.operators()
	if err != nil {
		return gcurve.Spline{}, err
	}

	var s gcurve.Spline
	if isYAML(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			return gcurve.Spline{}, err
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return gcurve.Spline{}, fmt.Errorf("%s: %w", path, err)
		}
	} else {
		f, err := os.Open(path)
		if err != nil {
			return gcurve.Spline{}, err
		}
		defer f.Close()
		if err := s.Load(f); err != nil {
			return gcurve.Spline{}, fmt.Errorf("%s: %w", path, err)
		}
	}
	s.Bind(space, manifold)

	opts.logger.Debug("loaded spline",
		zap.String("path", path),
		zap.Int("segments", len(s.Segments)),
		zap.String("manifold", opts.manifold))
	return s, nil
}

func (opts *options) saveSpline(path string, s gcurve.Spline) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if isYAML(path) {
		enc := yaml.NewEncoder(f)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return enc.Close()
	}
	return s.Save(f)
}
