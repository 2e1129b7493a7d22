package search

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arbortrace/voxelcore/slicemap"
	"github.com/arbortrace/voxelcore/voxel"
)

// Preset is the YAML-round-trippable subset of Config: the knobs that
// have no accessor or oracle dependency, and so can be saved as a
// named tracer profile independent of any particular volume. Backend
// and Connectivity are stored as their String() form rather than as
// raw ints so a saved preset stays readable and stable across any
// future reordering of the underlying enums.
type Preset struct {
	Backend          string        `yaml:"backend"`
	Connectivity     string        `yaml:"connectivity"`
	Timeout          time.Duration `yaml:"timeout"`
	ProgressInterval time.Duration `yaml:"progress_interval"`
	CheckInterval    int           `yaml:"check_interval"`
}

// NewPreset captures cfg's persistable knobs.
func NewPreset(cfg Config) Preset {
	return Preset{
		Backend:          cfg.Backend.String(),
		Connectivity:     cfg.Connectivity.String(),
		Timeout:          cfg.Timeout,
		ProgressInterval: cfg.ProgressInterval,
		CheckInterval:    cfg.CheckInterval,
	}
}

// Options converts the preset back into functional options, ready to
// be applied on top of NewConfig's required accessor/spacing/oracle
// arguments.
func (p Preset) Options() ([]Option, error) {
	backend, ok := slicemap.ParseBackend(p.Backend)
	if !ok {
		return nil, fmt.Errorf("search: preset: unrecognized backend %q", p.Backend)
	}
	conn, ok := voxel.ParseConnectivity(p.Connectivity)
	if !ok {
		return nil, fmt.Errorf("search: preset: unrecognized connectivity %q", p.Connectivity)
	}

	opts := []Option{
		WithBackend(backend),
		WithConnectivity(conn),
	}
	if p.Timeout > 0 {
		opts = append(opts, WithTimeout(p.Timeout))
	}
	if p.ProgressInterval > 0 {
		opts = append(opts, WithProgressInterval(p.ProgressInterval))
	}
	if p.CheckInterval > 0 {
		opts = append(opts, WithCheckInterval(p.CheckInterval))
	}
	return opts, nil
}

// ToYAML renders the preset as YAML bytes.
func (p Preset) ToYAML() ([]byte, error) {
	return yaml.Marshal(p)
}

// ParsePreset reads a Preset previously written by Preset.ToYAML.
func ParsePreset(data []byte) (Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Preset{}, fmt.Errorf("search: preset: %w", err)
	}
	return p, nil
}
