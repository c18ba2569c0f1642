// Package config loads ralint settings from a YAML or CUE file. Both forms
// are validated against the embedded CUE schema before use.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/ralint/internal/feedback"
)

//go:embed schema.cue
var schemaSource string

// File is the on-disk shape of a configuration file.
type File struct {
	FailOn  string            `yaml:"fail_on" json:"fail_on,omitempty"`
	Rules   map[string]string `yaml:"rules" json:"rules,omitempty"`
	Workers int               `yaml:"workers" json:"workers,omitempty"`
}

// Config is the resolved configuration.
type Config struct {
	FailOn  feedback.Severity
	Policy  feedback.Policy
	Workers int
	// Path is the file the configuration was read from, empty for defaults.
	Path string
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{FailOn: feedback.SeverityError, Policy: feedback.Policy{}}
}

// SearchPaths lists where Find looks, in order.
func SearchPaths() []string {
	paths := []string{"ralint.yaml", ".ralint.yaml", "ralint.cue"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "ralint", "config.yaml"))
	}
	return paths
}

// Find loads the first configuration file that exists on the search path,
// or returns the defaults when there is none.
func Find() (*Config, error) {
	for _, p := range SearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config %s: %w", p, err)
		}
	}
	return Default(), nil
}

// Load reads and validates a configuration file. Files ending in ".cue" are
// read as CUE; anything else as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var f *File
	if strings.EqualFold(filepath.Ext(path), ".cue") {
		f, err = ParseCUE(path, data)
	} else {
		f, err = ParseYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg, err := f.Resolve()
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

func schema(ctx *cue.Context) (cue.Value, error) {
	v := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := v.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("schema: %w", err)
	}
	return v.LookupPath(cue.ParsePath("#Config")), nil
}

// ParseYAML decodes a YAML configuration. Unknown keys are rejected.
func ParseYAML(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}

	ctx := cuecontext.New()
	def, err := schema(ctx)
	if err != nil {
		return nil, err
	}
	v := def.Unify(ctx.Encode(f.fields()))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validating: %w", err)
	}
	return &f, nil
}

// fields returns only the keys that were set, so absent optional fields stay
// absent when checked against the schema.
func (f *File) fields() map[string]any {
	m := make(map[string]any)
	if f.FailOn != "" {
		m["fail_on"] = f.FailOn
	}
	if len(f.Rules) > 0 {
		m["rules"] = f.Rules
	}
	if f.Workers != 0 {
		m["workers"] = f.Workers
	}
	return m
}

// ParseCUE evaluates a CUE configuration against the schema.
func ParseCUE(filename string, data []byte) (*File, error) {
	ctx := cuecontext.New()
	def, err := schema(ctx)
	if err != nil {
		return nil, err
	}
	src := ctx.CompileBytes(data, cue.Filename(filename))
	if err := src.Err(); err != nil {
		return nil, fmt.Errorf("compiling: %w", err)
	}
	v := def.Unify(src)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validating: %w", err)
	}
	var f File
	if err := v.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}
	return &f, nil
}

// Resolve turns the file contents into a Config, filling in defaults.
func (f *File) Resolve() (*Config, error) {
	cfg := Default()
	if f.FailOn != "" {
		sev, err := feedback.ParseSeverity(f.FailOn)
		if err != nil {
			return nil, err
		}
		cfg.FailOn = sev
	}
	policy, err := feedback.NewPolicy(f.Rules)
	if err != nil {
		return nil, err
	}
	cfg.Policy = policy
	cfg.Workers = f.Workers
	return cfg, nil
}
