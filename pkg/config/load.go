package config

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/jobtimeline/pkg/errors"
)

// Load reads a config file on top of Default. The format follows the
// extension: .toml, .yaml/.yml or .json. Unknown keys are rejected.
func Load(path string) (Config, error) {
	if err := errors.ValidatePath(path); err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = decodeTOML(data, &cfg)
	case ".yaml", ".yml":
		err = decodeYAML(bytes.NewReader(data), &cfg)
	case ".json":
		err = DecodeJSON(bytes.NewReader(data), &cfg)
	default:
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unsupported config format %q (use .toml, .yaml or .json)", ext)
	}
	if err != nil {
		return Config{}, wrapDecode(err, path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func decodeYAML(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// DecodeJSON decodes JSON settings onto cfg, rejecting unknown keys. It is
// shared with the HTTP API, which accepts the same settings per request.
func DecodeJSON(r io.Reader, cfg *Config) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// wrapDecode keeps coded errors (such as INVALID_GROUP_NUM raised while
// decoding group_num) and marks everything else INVALID_CONFIG.
func wrapDecode(err error, path string) error {
	if code := errors.GetCode(err); code != "" {
		return err
	}
	return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
}

// WriteTOML writes cfg as a TOML document.
func (c Config) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
