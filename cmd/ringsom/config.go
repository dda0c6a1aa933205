package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/ringsom/solver"
)

const defaultCLISeed int64 = 1

// defaultSolveConfig is solver.DefaultConfig with the CLI seed.
func defaultSolveConfig() solver.Config {
	cfg := solver.DefaultConfig()
	cfg.Seed = defaultCLISeed
	return cfg
}

func loadSolveConfigFromFile(path string) (solver.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return solver.Config{}, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return solver.Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	cfg := defaultSolveConfig()
	if v, ok := asInt(raw["iterations"]); ok {
		cfg.Iterations = v
	}
	if v, ok := asInt(raw["snapshot_every"]); ok {
		cfg.SnapshotEvery = v
	}
	if v, ok := asInt64(raw["seed"]); ok {
		cfg.Seed = v
	}
	if v, ok := asInt(raw["spread"]); ok {
		cfg.Spread = v
	}
	if v, ok := asFloat64(raw["remove_distance"]); ok {
		cfg.RemoveDistance = v
	}
	if v, ok := asBool(raw["prune"]); ok {
		cfg.Prune = v
	}
	if v, ok := asBool(raw["polish"]); ok {
		cfg.Polish = v
	}
	if v, ok := asInt(raw["two_opt_max_iters"]); ok {
		cfg.TwoOptMaxIters = v
	}

	return cfg, nil
}

func loadOrDefaultSolveConfig(configPath string) (solver.Config, error) {
	if configPath == "" {
		return defaultSolveConfig(), nil
	}
	return loadSolveConfigFromFile(configPath)
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func asInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case float64:
		return int(x), true
	default:
		return 0, false
	}
}

func asInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int:
		return int64(x), true
	case float64:
		return int64(x), true
	default:
		return 0, false
	}
}

func asFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	default:
		return 0, false
	}
}

// overrideFromFlags copies the values of the flags named in set onto cfg.
func overrideFromFlags(cfg *solver.Config, set map[string]bool, flagValue map[string]any) error {
	for name := range set {
		v, ok := flagValue[name]
		if !ok {
			continue
		}
		switch name {
		case "l":
			cfg.Iterations = v.(int)
		case "p":
			cfg.SnapshotEvery = v.(int)
		case "seed":
			cfg.Seed = v.(int64)
		case "spread":
			cfg.Spread = v.(int)
		case "remove-distance":
			cfg.RemoveDistance = v.(float64)
		case "no-prune":
			cfg.Prune = !v.(bool)
		case "no-polish":
			cfg.Polish = !v.(bool)
		case "two-opt-max-iters":
			cfg.TwoOptMaxIters = v.(int)
		default:
			return fmt.Errorf("unsupported override flag: %s", name)
		}
	}

	return nil
}
