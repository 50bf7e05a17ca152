package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the host parameters shared by the command-line tools.
type Config struct {
	File string `yaml:"-"`

	Sim         string  `yaml:"sim"`
	Scale       int     `yaml:"scale"`
	TPS         int     `yaml:"tps"`
	Seed        int64   `yaml:"seed"`
	Generations int     `yaml:"generations"`
	UntilStable bool    `yaml:"until_stable"`
	Options     Options `yaml:"options"`
}

// Options are passed verbatim to the simulation factory.
type Options map[string]string

// String renders the options as sorted key=value pairs.
func (o Options) String() string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + o[k]
	}
	return strings.Join(parts, ",")
}

type optionsFlag struct{ opts *Options }

func (f optionsFlag) String() string {
	if f.opts == nil {
		return ""
	}
	return f.opts.String()
}

// Set accepts one or more comma separated key=value pairs.
func (f optionsFlag) Set(value string) error {
	if *f.opts == nil {
		*f.opts = Options{}
	}
	for _, kv := range strings.Split(value, ",") {
		if kv == "" {
			continue
		}
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return fmt.Errorf("option %q is not in key=value form", kv)
		}
		(*f.opts)[k] = v
	}
	return nil
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "smoother", Scale: 8, TPS: 30, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "YAML file with default settings")
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Generations, "gens", c.Generations, "generations to run (0 = unbounded)")
	fs.BoolVar(&c.UntilStable, "until-stable", c.UntilStable, "stop once a step changes no cell")
	fs.Var(optionsFlag{&c.Options}, "opt", "simulation option in key=value form (repeatable), e.g. w=64")
}

// LoadFile overlays the YAML document at path onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Parse binds a fresh Config to fs and parses args. When -config names a
// file its values become the defaults and explicitly passed flags win.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.File == "" {
		return c, nil
	}

	merged := NewConfig()
	if err := merged.LoadFile(c.File); err != nil {
		return nil, err
	}
	overlay := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
	merged.Bind(overlay)
	var errs []error
	fs.Visit(func(f *flag.Flag) {
		// flags registered by the caller are already applied to fs
		if overlay.Lookup(f.Name) == nil {
			return
		}
		if err := overlay.Set(f.Name, f.Value.String()); err != nil {
			errs = append(errs, err)
		}
	})
	return merged, errors.Join(errs...)
}
