package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr         string         `yaml:"addr"`
	ElementsDir  string         `yaml:"elements_dir"`
	RendererPath string         `yaml:"renderer_path"`
	EntryPoint   string         `yaml:"entry_point"`
	StaticDir    string         `yaml:"static_dir"`
	Markup       string         `yaml:"markup"`
	InitialState map[string]any `yaml:"initial_state"`
}

func Default() Config {
	return Config{
		Addr:         "127.0.0.1:3030",
		ElementsDir:  "./elements",
		RendererPath: "./wasm/enhance-ssr.wasm",
		EntryPoint:   "ssr",
		StaticDir:    "./www/static",
		Markup:       "<my-header>Hello World</my-header>",
		InitialState: map[string]any{
			"message": "Hello from initialState",
			"count":   42,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	// A present initial_state replaces the default one rather than merging
	// into it.
	var probe struct {
		InitialState yaml.Node `yaml:"initial_state"`
	}
	if err := yaml.Unmarshal(data, &probe); err == nil && probe.InitialState.Kind != 0 {
		cfg.InitialState = nil
	}

	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c Config) Validate() error {
	var errs []error

	if c.ElementsDir == "" {
		errs = append(errs, errors.New("elements_dir cannot be empty"))
	}
	if c.RendererPath == "" {
		errs = append(errs, errors.New("renderer_path cannot be empty"))
	}
	if c.EntryPoint == "" {
		errs = append(errs, errors.New("entry_point cannot be empty"))
	}
	if c.StaticDir == "" {
		errs = append(errs, errors.New("static_dir cannot be empty"))
	}
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		errs = append(errs, fmt.Errorf("addr %q: %w", c.Addr, err))
	}

	return errors.Join(errs...)
}
