package ecs

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Config holds the §6 compile-/init-time configuration knobs. Zero value
// is meaningless; use DefaultConfig or LoadConfig to obtain one, and call
// Apply before any entity or pool is created — changing these once a
// registry is in use is undefined, same as in the source library.
type Config struct {
	Sparse struct {
		PageSize uint32 `toml:"page_size"`
	} `toml:"sparse"`
	Entity struct {
		IndexBits   uint `toml:"index_bits"`
		VersionBits uint `toml:"version_bits"`
	} `toml:"entity"`
	Registry struct {
		InitialPoolCapacity int `toml:"initial_pool_capacity"`
	} `toml:"registry"`
}

// DefaultConfig returns the specification's defaults: a 4096-entry sparse
// page and a 20/12 index/version bit split over a 32-bit entity id.
func DefaultConfig() Config {
	var c Config
	c.Sparse.PageSize = defaultSparsePageSize
	c.Entity.IndexBits = defaultIndexBits
	c.Entity.VersionBits = defaultVersionBits
	c.Registry.InitialPoolCapacity = 0
	return c
}

// LoadConfig decodes an optional TOML override of DefaultConfig from path
// and validates it. Missing fields keep their default value. This is the
// one place in the package that returns a wrapped error instead of
// panicking: it runs at host startup, before any entity exists, so there
// is nothing yet to corrupt.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "ecs: reading config %q", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "ecs: decoding config %q", path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "ecs: invalid config %q", path)
	}

	return cfg, nil
}

// Validate reports whether cfg describes a consistent entity layout: the
// sparse page size must be a power of two, and the index/version bit
// split must fit in the 32-bit entity word this package uses.
func (cfg Config) Validate() error {
	if cfg.Sparse.PageSize == 0 || cfg.Sparse.PageSize&(cfg.Sparse.PageSize-1) != 0 {
		return errors.Errorf("sparse page size %d is not a power of two", cfg.Sparse.PageSize)
	}
	if cfg.Entity.IndexBits == 0 || cfg.Entity.VersionBits == 0 {
		return errors.New("entity index_bits and version_bits must both be non-zero")
	}
	if cfg.Entity.IndexBits+cfg.Entity.VersionBits > 32 {
		return errors.Errorf("entity index_bits(%d) + version_bits(%d) exceeds the 32-bit entity word",
			cfg.Entity.IndexBits, cfg.Entity.VersionBits)
	}
	return nil
}

// Apply installs cfg as the process-wide entity layout and sparse page
// size. Host applications call this once, before creating any Registry.
// It panics on an invalid configuration, the same fail-fast contract as
// every other precondition in this package.
func Apply(cfg Config) {
	invariant(cfg.Validate() == nil, "ecs: Apply called with invalid config")

	indexBits = cfg.Entity.IndexBits
	versionBits = cfg.Entity.VersionBits
	indexMask = uint32(1)<<indexBits - 1
	versionMask = uint32(1)<<versionBits - 1
	sparsePageSize = cfg.Sparse.PageSize
}

const (
	defaultIndexBits      = 20
	defaultVersionBits    = 12
	defaultSparsePageSize = 4096
)

var (
	indexBits      uint   = defaultIndexBits
	versionBits    uint   = defaultVersionBits
	indexMask      uint32 = 1<<defaultIndexBits - 1
	versionMask    uint32 = 1<<defaultVersionBits - 1
	sparsePageSize uint32 = defaultSparsePageSize
)
