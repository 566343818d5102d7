// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package fileguard

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// policyDocument is the on-disk shape of a policy file.
type policyDocument struct {
	Policies map[string]*policyEntry `yaml:"policies"`
}

// policyEntry is one named policy as written in YAML. Unset fields
// inherit from the extended policy, or from [DefaultOptions] at the
// root of an extends chain.
type policyEntry struct {
	Description        string `yaml:"description"`
	Extends            string `yaml:"extends"`
	FollowSymlinks     *bool  `yaml:"follow_symlinks"`
	RequireRegularFile *bool  `yaml:"require_regular_file"`
	CreateMode         string `yaml:"create_mode"`
	SecureDelete       *bool  `yaml:"secure_delete"`
}

// PolicyLoader loads and resolves named [Options] policies.
type PolicyLoader struct {
	configs  []*policyDocument
	resolved map[string]Options
	logger   *slog.Logger
}

// NewPolicyLoader creates an empty policy loader.
func NewPolicyLoader() *PolicyLoader {
	return &PolicyLoader{
		configs:  make([]*policyDocument, 0),
		resolved: make(map[string]Options),
	}
}

// SetLogger enables verbose logging during policy loading and
// resolution.
func (l *PolicyLoader) SetLogger(logger *slog.Logger) {
	l.logger = logger
}

// log is a helper that only logs if a logger is configured.
func (l *PolicyLoader) log(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Info(msg, args...)
	}
}

// LoadDefaults loads the built-in policies.
func (l *PolicyLoader) LoadDefaults() error {
	l.log("loading built-in default policies")
	config, err := parsePolicyDocument([]byte(defaultPoliciesYAML))
	if err != nil {
		return fmt.Errorf("parse default policies: %w", err)
	}
	l.configs = append(l.configs, config)
	return nil
}

// LoadFile loads policies from a YAML file. The file is acquired with
// this package's own discipline: symlinked policy files are refused.
func (l *PolicyLoader) LoadFile(path string) error {
	l.log("loading policies from file", "path", path)
	file, err := Open(path, os.O_RDONLY, nil)
	if err != nil {
		return fmt.Errorf("acquire policy file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	config, err := parsePolicyDocument(data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	l.configs = append(l.configs, config)
	l.log("loaded policies from file", "path", path, "count", len(config.Policies))
	return nil
}

// LoadDirectory loads all YAML files from a directory. A missing
// directory is not an error.
func (l *PolicyLoader) LoadDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != ".yaml" && filepath.Ext(name) != ".yml" {
			continue
		}
		if err := l.LoadFile(filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}

// Resolve resolves a policy by name, applying its extends chain.
// Later-loaded definitions of the same name win.
func (l *PolicyLoader) Resolve(name string) (Options, error) {
	return l.resolve(name, map[string]bool{})
}

func (l *PolicyLoader) resolve(name string, visiting map[string]bool) (Options, error) {
	if options, ok := l.resolved[name]; ok {
		return options, nil
	}
	if visiting[name] {
		return Options{}, fmt.Errorf("policy inheritance cycle through %q", name)
	}
	visiting[name] = true

	var entry *policyEntry
	for _, config := range l.configs {
		if found, ok := config.Policies[name]; ok {
			entry = found
		}
	}
	if entry == nil {
		return Options{}, fmt.Errorf("policy not found: %s", name)
	}

	base := DefaultOptions()
	if entry.Extends != "" {
		l.log("resolving parent policy", "child", name, "parent", entry.Extends)
		parent, err := l.resolve(entry.Extends, visiting)
		if err != nil {
			return Options{}, fmt.Errorf("resolve parent policy %q: %w", entry.Extends, err)
		}
		base = parent
	}

	options, err := entry.apply(base)
	if err != nil {
		return Options{}, fmt.Errorf("policy %q: %w", name, err)
	}
	l.resolved[name] = options
	l.log("policy resolved", "name", name)
	return options, nil
}

// List returns all available policy names.
func (l *PolicyLoader) List() []string {
	names := make(map[string]bool)
	for _, config := range l.configs {
		for name := range config.Policies {
			names[name] = true
		}
	}

	result := make([]string, 0, len(names))
	for name := range names {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// apply overlays the entry's set fields on base.
func (e *policyEntry) apply(base Options) (Options, error) {
	options := base
	if e.FollowSymlinks != nil {
		options.FollowSymlinks = *e.FollowSymlinks
	}
	if e.RequireRegularFile != nil {
		options.RequireRegularFile = *e.RequireRegularFile
	}
	if e.SecureDelete != nil {
		options.SecureDelete = *e.SecureDelete
	}
	if e.CreateMode != "" {
		mode, err := parseCreateMode(e.CreateMode)
		if err != nil {
			return Options{}, err
		}
		options.CreateMode = mode
	}
	return options, nil
}

func parsePolicyDocument(data []byte) (*policyDocument, error) {
	var config policyDocument
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	for name, entry := range config.Policies {
		if entry == nil {
			return nil, fmt.Errorf("policy %q has no body", name)
		}
	}
	return &config, nil
}

// parseCreateMode reads an octal permission string such as "0600".
func parseCreateMode(text string) (os.FileMode, error) {
	value, err := strconv.ParseUint(strings.TrimPrefix(text, "0o"), 8, 32)
	if err != nil {
		return 0, fmt.Errorf("create_mode %q is not an octal mode: %w", text, err)
	}
	if value > 0o7777 {
		return 0, fmt.Errorf("create_mode %q exceeds permission bits", text)
	}
	return os.FileMode(value), nil
}

// defaultPoliciesYAML contains the built-in policy definitions.
const defaultPoliciesYAML = `
policies:
  default:
    description: "Library defaults: symlinks refused, regular files only"

  hardened:
    description: "Owner-only creation on top of the defaults"
    create_mode: "0600"

  forensic:
    description: "Hardened plus secure overwrite before removal"
    extends: hardened
    secure_delete: true

  permissive:
    description: "Follow symlinks and accept any file type"
    follow_symlinks: true
    require_regular_file: false
`
