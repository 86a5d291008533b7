package conf

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/tributes/styleconf/internal/theme"
)

// RawConfig is the configuration document as authored, before validation.
type RawConfig struct {
	// Content lists the glob patterns of files to scan for class usage.
	Content []string
	// DarkMode is nil when the document does not declare a strategy.
	DarkMode *string
	// Theme is nil when the document has no theme section.
	Theme theme.Tree
}

// Update applies the values set in a configDTO. Content and darkMode are
// replaced; theme documents are deep-merged so a later layer can add tokens
// without repeating earlier ones.
func (c *RawConfig) Update(dto configDTO) {
	if dto.Content != nil {
		c.Content = append([]string{}, (*dto.Content)...)
	}
	if dto.DarkMode != nil {
		darkMode := *dto.DarkMode
		c.DarkMode = &darkMode
	}
	if dto.Theme != nil {
		c.Theme = theme.Merge(c.Theme, theme.FromMap(dto.Theme))
	}
}

// ConfigSource orchestrates loading configuration from multiple sources.
// See the Read method.
type ConfigSource struct {
	Path      string
	DropInDir string
}

// Read loads and returns the RawConfig by layering:
// 1. Main configuration file
// 2. Drop-in files, in lexicographic order
//
// Missing files are skipped. The result is not validated; see Load.
func (cs *ConfigSource) Read() (RawConfig, error) {
	raw := RawConfig{}

	// Load main configuration file
	data, err := os.ReadFile(cs.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			return raw, fmt.Errorf("failed to load %s: %w", cs.Path, err)
		}
		slog.Debug("configuration file not found, using defaults", "path", cs.Path)
	} else {
		mainDTO, err := parseConfigDTO(string(data), formatOf(cs.Path))
		if err != nil {
			// Existing but malformed file should result in failure (let's not hide
			// problems from the users).
			return raw, fmt.Errorf("failed to parse %s: %w", cs.Path, err)
		}
		raw.Update(mainDTO)
	}

	// Load drop-in files
	dropInDTOs, err := cs.parseDropInFiles()
	if err != nil {
		slog.Error("failed to load drop-in files", "error", err, "dir", cs.DropInDir)
		return raw, err
	}

	for _, dropInDTO := range dropInDTOs {
		raw.Update(dropInDTO)
	}

	return raw, nil
}

// Load reads all layers and resolves them into a ResolvedConfig.
func (cs *ConfigSource) Load() (*ResolvedConfig, error) {
	raw, err := cs.Read()
	if err != nil {
		return nil, err
	}
	return Resolve(raw)
}

type configDTO struct {
	Content  *[]string      `toml:"content" yaml:"content" json:"content"`
	DarkMode *string        `toml:"darkMode" yaml:"darkMode" json:"darkMode"`
	Theme    map[string]any `toml:"theme" yaml:"theme" json:"theme"`
}

type format int

const (
	formatTOML format = iota
	formatYAML
	formatJSON
)

func (f format) String() string {
	switch f {
	case formatYAML:
		return "YAML"
	case formatJSON:
		return "JSON"
	}
	return "TOML"
}

// formatOf picks the document format from the file extension. Unknown
// extensions are read as TOML.
func formatOf(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	case ".json":
		return formatJSON
	}
	return formatTOML
}

func isConfigFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml", ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// parseConfigDTO parses a document string into a configDTO.
func parseConfigDTO(data string, f format) (configDTO, error) {
	var dto configDTO

	var err error
	switch f {
	case formatYAML:
		err = yaml.Unmarshal([]byte(data), &dto)
	case formatJSON:
		if strings.TrimSpace(data) == "" {
			return dto, nil
		}
		err = json.Unmarshal([]byte(data), &dto)
	default:
		_, err = toml.Decode(data, &dto)
	}
	if err != nil {
		return dto, fmt.Errorf("failed to parse %s: %w", f, err)
	}

	return dto, nil
}

// findDropInFiles finds and returns sorted paths to drop-in configuration files.
// Returns nil if the drop-in directory doesn't exist (not an error).
func (cs *ConfigSource) findDropInFiles() ([]string, error) {
	if cs.DropInDir == "" {
		return nil, nil
	}
	if _, err := os.Stat(cs.DropInDir); os.IsNotExist(err) {
		return nil, nil
	}

	entries, err := os.ReadDir(cs.DropInDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read drop-in directory %s: %w", cs.DropInDir, err)
	}

	var filenames []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if isConfigFile(entry.Name()) {
			filenames = append(filenames, filepath.Join(cs.DropInDir, entry.Name()))
		}
	}

	sort.Strings(filenames)

	return filenames, nil
}

// parseDropInFiles loads the drop-in files in order.
func (cs *ConfigSource) parseDropInFiles() ([]configDTO, error) {
	paths, err := cs.findDropInFiles()
	if err != nil {
		return nil, err
	}

	var dtos []configDTO
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		dto, err := parseConfigDTO(string(data), formatOf(path))
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		slog.Debug("applying drop-in file", "path", path)

		dtos = append(dtos, dto)
	}

	return dtos, nil
}
