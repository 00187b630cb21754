package main

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/qri-io/datadiff"
)

// config holds defaults for every command, read from a TOML file. Command
// line flags override it
type config struct {
	Object objectConfig `toml:"object"`
	List   listConfig   `toml:"list"`
	Text   textConfig   `toml:"text"`
	Output outputConfig `toml:"output"`
}

type objectConfig struct {
	IgnoreArrayOrder bool     `toml:"ignore-array-order"`
	ShowOnly         []string `toml:"show-only"`
	Granularity      string   `toml:"granularity"`
}

type listConfig struct {
	IgnoreArrayOrder bool     `toml:"ignore-array-order"`
	ShowOnly         []string `toml:"show-only"`
	ReferenceKey     string   `toml:"reference-key"`
	MoveAsUpdate     bool     `toml:"move-as-update"`
}

type textConfig struct {
	Separation        string `toml:"separation"`
	Mode              string `toml:"mode"`
	IgnoreCase        bool   `toml:"ignore-case"`
	IgnorePunctuation bool   `toml:"ignore-punctuation"`
	Locale            string `toml:"locale"`
}

type outputConfig struct {
	Format string `toml:"format"`
	Color  bool   `toml:"color"`
	Stats  bool   `toml:"stats"`
}

const (
	formatPretty = "pretty"
	formatJSON   = "json"
)

func defaultConfig() *config {
	return &config{
		Object: objectConfig{Granularity: string(datadiff.GranularityBasic)},
		Text: textConfig{
			Separation: string(datadiff.SeparationWord),
			Mode:       string(datadiff.ModeVisual),
		},
		Output: outputConfig{Format: formatPretty},
	}
}

// defaultConfigPath is config.toml in the user's config directory, eg:
// ~/.config/datadiff/config.toml
func defaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "datadiff", "config.toml"), nil
}

// loadConfig reads the config file at path. An empty path reads the default
// location, where a missing file isn't an error
func loadConfig(path string) (*config, error) {
	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			log.WithError(err).Debug("no user config directory, using defaults")
			return defaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			log.WithField("path", path).Debug("no config file, using defaults")
			return defaultConfig(), nil
		}
		return nil, errors.Wrap(err, "reading config")
	}

	cfg, err := parseConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading config %s", path)
	}
	log.WithField("path", path).Debug("loaded config")
	return cfg, nil
}

// parseConfig decodes TOML on top of the defaults & validates the result
func parseConfig(data []byte) (*config, error) {
	cfg := defaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, errors.Wrap(err, "parsing")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *config) validate() error {
	if _, err := parseStatuses(c.Object.ShowOnly); err != nil {
		return errors.Wrap(err, "object.show-only")
	}
	if _, err := datadiff.ParseGranularity(c.Object.Granularity); err != nil {
		return errors.Wrap(err, "object.granularity")
	}
	if _, err := parseStatuses(c.List.ShowOnly); err != nil {
		return errors.Wrap(err, "list.show-only")
	}
	if _, err := datadiff.ParseSeparation(c.Text.Separation); err != nil {
		return errors.Wrap(err, "text.separation")
	}
	if _, err := datadiff.ParseMode(c.Text.Mode); err != nil {
		return errors.Wrap(err, "text.mode")
	}
	if err := validateFormat(c.Output.Format); err != nil {
		return errors.Wrap(err, "output.format")
	}
	return nil
}

func validateFormat(f string) error {
	switch f {
	case formatPretty, formatJSON:
		return nil
	}
	return errors.Errorf("unknown format %q, expected %q or %q", f, formatPretty, formatJSON)
}

func parseStatuses(strs []string) ([]datadiff.Status, error) {
	var statuses []datadiff.Status
	for _, s := range strs {
		st, err := datadiff.ParseStatus(s)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, st)
	}
	return statuses, nil
}
