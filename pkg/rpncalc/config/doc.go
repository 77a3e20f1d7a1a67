/*
Package config loads calculator settings from YAML or JSON files.

# Overview

Config wraps a map[string]any and provides typed accessors that return a
default when a key is missing or has the wrong type. Settings is the typed
view the CLI and library consume.

# File Format

	precedence: standard     # uniform (default) | standard
	history: ~/.rpncalc.db   # SQLite tape; empty disables history
	log_level: debug         # debug | info | warn | error (default)
	metrics: true            # OpenTelemetry metrics
	tracing: true            # OpenTelemetry tracing

# Usage

	cfg, err := config.FromFile("rpncalc.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	settings, err := config.Decode(cfg)
*/
package config
