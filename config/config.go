// Package config describes and validates the shape of a memory hierarchy.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sarchlab/cachesim/mem/cache"
	"gopkg.in/yaml.v3"
)

// MaxLog2TotalSize bounds caches to a 31-bit byte-address space.
const MaxLog2TotalSize = 31

// Environment variables that provide defaults for the command line.
const (
	EnvConfig      = "CACHESIM_CONFIG"
	EnvDB          = "CACHESIM_DB"
	EnvMonitorPort = "CACHESIM_MONITOR_PORT"
)

// Level describes one cache level. Sizes are log2 of bytes, associativity is
// log2 of blocks per set.
type Level struct {
	BlockSize     uint    `yaml:"block_size"`
	Associativity uint    `yaml:"associativity"`
	TotalSize     uint    `yaml:"total_size"`
	Policy        string  `yaml:"policy"`
	HitLatency    uint64  `yaml:"hit_latency"`
	Seed          *uint64 `yaml:"seed,omitempty"`
}

// Hierarchy describes the cache levels from L1 down to the main memory.
type Hierarchy struct {
	MemoryLatency uint64  `yaml:"memory_latency"`
	Levels        []Level `yaml:"levels"`
}

// ReplacementPolicy parses the policy of the level.
func (l Level) ReplacementPolicy() (cache.ReplacementPolicy, error) {
	return cache.ParseReplacementPolicy(l.Policy)
}

// Validate checks a single level.
func (l Level) Validate() error {
	var errs []error

	if _, err := l.ReplacementPolicy(); err != nil {
		errs = append(errs, err)
	}

	if l.TotalSize > MaxLog2TotalSize {
		errs = append(errs, fmt.Errorf(
			"total size 2^%d exceeds 2^%d bytes", l.TotalSize, MaxLog2TotalSize))
	}

	if l.TotalSize < l.BlockSize+l.Associativity {
		errs = append(errs, fmt.Errorf(
			"total size 2^%d is smaller than block size 2^%d times associativity 2^%d",
			l.TotalSize, l.BlockSize, l.Associativity))
	}

	return errors.Join(errs...)
}

// Validate checks every level. All problems found are reported together.
func (h Hierarchy) Validate() error {
	if len(h.Levels) == 0 {
		return errors.New("at least one cache level is required")
	}

	var errs []error

	for i, l := range h.Levels {
		if err := l.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("L%d: %w", i+1, err))
		}
	}

	return errors.Join(errs...)
}

// Load reads a hierarchy from a YAML file and validates it.
func Load(path string) (Hierarchy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Hierarchy{}, err
	}

	return Parse(data)
}

// Parse decodes a hierarchy from YAML and validates it.
func Parse(data []byte) (Hierarchy, error) {
	var h Hierarchy

	if err := yaml.Unmarshal(data, &h); err != nil {
		return Hierarchy{}, fmt.Errorf("parse hierarchy: %w", err)
	}

	if err := h.Validate(); err != nil {
		return Hierarchy{}, err
	}

	return h, nil
}

// Marshal encodes a hierarchy as YAML.
func (h Hierarchy) Marshal() ([]byte, error) {
	return yaml.Marshal(h)
}

// LoadEnv loads .env files into the environment. Missing files are ignored.
// Variables that are already set are not overridden.
func LoadEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}

	for _, f := range filenames {
		err := godotenv.Load(f)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}

	return nil
}

// EnvString returns the value of an environment variable or def if unset.
func EnvString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return def
}

// EnvInt returns the integer value of an environment variable or def if it
// is unset or not a number.
func EnvInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
