package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// FileLoader parses one configuration file format into a generic map
type FileLoader interface {
	Load(reader io.Reader) (map[string]interface{}, error)
	Extensions() []string
}

// YAMLLoader loads .yaml and .yml files
type YAMLLoader struct{}

func (YAMLLoader) Extensions() []string { return []string{".yaml", ".yml"} }

func (YAMLLoader) Load(reader io.Reader) (map[string]interface{}, error) {
	values := make(map[string]interface{})
	if err := yaml.NewDecoder(reader).Decode(&values); err != nil && err != io.EOF {
		return nil, err
	}
	return values, nil
}

// TOMLLoader loads .toml files
type TOMLLoader struct{}

func (TOMLLoader) Extensions() []string { return []string{".toml"} }

func (TOMLLoader) Load(reader io.Reader) (map[string]interface{}, error) {
	values := make(map[string]interface{})
	if _, err := toml.NewDecoder(reader).Decode(&values); err != nil {
		return nil, err
	}
	return values, nil
}

// JSONLoader loads .json files
type JSONLoader struct{}

func (JSONLoader) Extensions() []string { return []string{".json"} }

func (JSONLoader) Load(reader io.Reader) (map[string]interface{}, error) {
	values := make(map[string]interface{})
	if err := json.NewDecoder(reader).Decode(&values); err != nil && err != io.EOF {
		return nil, err
	}
	return values, nil
}

var fileLoaders = []FileLoader{YAMLLoader{}, TOMLLoader{}, JSONLoader{}}

// loaderFor picks a loader by file extension
func loaderFor(path string) (FileLoader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, l := range fileLoaders {
		for _, e := range l.Extensions() {
			if e == ext {
				return l, nil
			}
		}
	}
	return nil, fmt.Errorf("unsupported config file format %q", ext)
}

// applyFile decodes the file at path onto cfg. Keys absent from the file
// leave the current values untouched.
func applyFile(cfg *Config, path string) error {
	loader, err := loaderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	values, err := loader.Load(f)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return decodeValues(cfg, values)
}

// decodeValues applies a generic key/value map onto cfg
func decodeValues(cfg *Config, values map[string]interface{}) error {
	// mapstructure reuses an existing slice element by element, so a shorter
	// list in the file would keep stale trailing defaults
	if _, ok := values["allowed_origins"]; ok {
		cfg.AllowedOrigins = nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create config decoder: %w", err)
	}

	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("failed to decode config values: %w", err)
	}

	return nil
}
