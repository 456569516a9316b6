package config

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return eris.Wrapf(err, "read %s", path)
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return eris.Wrapf(err, "parse %s", path)
	}
	return nil
}

func LoadRoster(path string) (*RosterConfig, error) {
	var rc RosterConfig
	if err := loadYAML(path, &rc); err != nil {
		return nil, err
	}
	return &rc, nil
}
