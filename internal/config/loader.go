package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/janvolk/commitlint/internal/prompt"
	"github.com/janvolk/commitlint/internal/rule"
)

// BuiltinConventional is the extends name of the built-in base rule
// set. Every load starts from it, so listing it is allowed but
// redundant.
const BuiltinConventional = "conventional"

// FileNames are the config file names probed during discovery, in
// precedence order.
var FileNames = []string{".commitlint.yaml", ".commitlint.yml"}

// Config is a fully resolved configuration: a validated rule registry
// plus merged prompt metadata.
type Config struct {
	Registry *rule.Registry
	Prompt   prompt.Config
	// Path is the file the config was loaded from, empty when running
	// on pure defaults.
	Path string
}

// Default returns the built-in configuration with no overrides applied.
func Default() *Config {
	return &Config{
		Registry: rule.Conventional(),
		Prompt:   prompt.Conventional(),
	}
}

// Load reads the config file at path, resolves its extends chain and
// layers every file's rules and prompt metadata on top of the built-in
// defaults. The merged registry is validated before it is returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.Path = path

	r := &resolver{
		stack:   make(map[string]bool),
		applied: make(map[string]bool),
	}
	if err := r.apply(path, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Registry.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("config loaded",
		slog.String("path", path),
		slog.Int("rules", cfg.Registry.Len()),
	)

	return cfg, nil
}

// Discover walks upward from dir looking for a config file. It returns
// the empty string when no file exists anywhere up the tree.
func Discover(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving start directory: %w", err)
	}

	for {
		for _, name := range FileNames {
			candidate := filepath.Join(abs, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", nil
		}
		abs = parent
	}
}

// resolver applies config files depth-first. The stack map catches
// extends cycles; the applied map lets two layers share a common base
// without re-applying it.
type resolver struct {
	stack   map[string]bool
	applied map[string]bool
}

func (r *resolver) apply(path string, cfg *Config) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving config path %s: %w", path, err)
	}
	if r.stack[abs] {
		return fmt.Errorf("extends cycle detected at %s", path)
	}
	if r.applied[abs] {
		return nil
	}
	r.stack[abs] = true
	defer delete(r.stack, abs)
	r.applied[abs] = true

	data, err := os.ReadFile(abs) //nolint:gosec // G304: config path comes from the user
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	dir := filepath.Dir(abs)
	for _, ext := range f.Extends {
		if ext == BuiltinConventional {
			continue
		}
		extPath := ext
		if !filepath.IsAbs(extPath) {
			extPath = filepath.Join(dir, extPath)
		}
		if err := r.apply(extPath, cfg); err != nil {
			return err
		}
	}

	for _, entry := range f.Rules {
		def, err := rule.NewDefinition(entry.Name, entry.Tuple.Severity, entry.Tuple.Applicability, entry.Tuple.Param)
		if err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
		cfg.Registry.Add(def)
	}

	cfg.Prompt = prompt.Merge(cfg.Prompt, f.Prompt)

	return nil
}
