package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// maxCoOwners caps the co-owner loop so a typo in a scenario file cannot turn
// the walkthrough into a busy loop.
const maxCoOwners = 64

// Scenario drives the ownership walkthrough: which strings go into each slot
// and how many co-owners the shared-ownership phase simulates.
type Scenario struct {
	Prefix       string
	ValueDatum   string
	OwnedDatum   string
	SharedDatum  string
	CountedDatum string
	CoOwners     int
}

type fileScenario struct {
	Prefix       string `toml:"prefix"`
	ValueDatum   string `toml:"value_datum"`
	OwnedDatum   string `toml:"owned_datum"`
	SharedDatum  string `toml:"shared_datum"`
	CountedDatum string `toml:"counted_datum"`
	CoOwners     int    `toml:"co_owners"`
}

func defaultScenario() Scenario {
	return Scenario{
		Prefix:       "ownkit: ",
		ValueDatum:   "held by value",
		OwnedDatum:   "exclusively owned",
		SharedDatum:  "borrowed from caller",
		CountedDatum: "reference counted",
		CoOwners:     2,
	}
}

// loadScenario reads a TOML scenario file, filling anything it leaves out
// from the defaults. An empty path returns the defaults unchanged.
func loadScenario(path string) (Scenario, error) {
	cfg := defaultScenario()
	if path == "" {
		return cfg, nil
	}

	var raw fileScenario
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Scenario{}, fmt.Errorf("load scenario: %w", err)
	}

	if meta.IsDefined("prefix") {
		cfg.Prefix = raw.Prefix
	}
	if meta.IsDefined("value_datum") && strings.TrimSpace(raw.ValueDatum) != "" {
		cfg.ValueDatum = raw.ValueDatum
	}
	if meta.IsDefined("owned_datum") && strings.TrimSpace(raw.OwnedDatum) != "" {
		cfg.OwnedDatum = raw.OwnedDatum
	}
	if meta.IsDefined("shared_datum") && strings.TrimSpace(raw.SharedDatum) != "" {
		cfg.SharedDatum = raw.SharedDatum
	}
	if meta.IsDefined("counted_datum") && strings.TrimSpace(raw.CountedDatum) != "" {
		cfg.CountedDatum = raw.CountedDatum
	}
	if meta.IsDefined("co_owners") {
		cfg.CoOwners = raw.CoOwners
	}

	if cfg.CoOwners < 0 || cfg.CoOwners > maxCoOwners {
		return Scenario{}, fmt.Errorf("scenario: co_owners must be between 0 and %d, got %d", maxCoOwners, cfg.CoOwners)
	}
	return cfg, nil
}
