package config

import (
	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
)

// Settings are process-level knobs read from the environment. Command-line
// flags take precedence over them.
type Settings struct {
	RosterFile string `config:"ROSTER_CONFIG"`
	LogLevel   string `config:"ROSTER_LOG_LEVEL"`
	LogJSON    bool   `config:"ROSTER_LOG_JSON"`
}

func LoadSettings() (Settings, error) {
	s := Settings{LogLevel: "info"}
	if err := jlconfig.FromEnv().To(&s); err != nil {
		return Settings{}, eris.Wrap(err, "read environment settings")
	}
	return s, nil
}
