package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/pkg/profile"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"teamroster/internal/combat"
	"teamroster/internal/config"
	"teamroster/internal/util"
)

type options struct {
	cfgFile   string
	eventsOut string
	march     string
	steps     int
	scatter   int
	seed      int64
	remove    []string
	profMode  string
	logLevel  string
	logJSON   bool
}

func parseFlags(args []string, s config.Settings, stderr io.Writer) (options, error) {
	var o options
	fs := pflag.NewFlagSet("rosterctl", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.cfgFile, "config", s.RosterFile, "roster YAML file (empty: built-in Fellowship)")
	fs.StringVar(&o.eventsOut, "events", "", "write the team event log as JSON to this file")
	fs.StringVar(&o.march, "march", "", "team=target: march every member of team towards the named unit")
	fs.IntVar(&o.steps, "steps", 1, "steps per member for --march")
	fs.IntVar(&o.scatter, "scatter", 0, "randomly offset spawn positions by up to this many cells")
	fs.Int64Var(&o.seed, "seed", 12345, "seed for --scatter")
	fs.StringSliceVar(&o.remove, "remove", nil, "unit names to remove from every team before printing")
	fs.StringVar(&o.profMode, "profile", "", "write a cpu or mem profile to the working directory")
	fs.StringVar(&o.logLevel, "log-level", s.LogLevel, "log level")
	fs.BoolVar(&o.logJSON, "log-json", s.LogJSON, "log as JSON instead of console text")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return o, err
		}
		return o, eris.Wrap(err, "parse flags")
	}
	return o, nil
}

func newLogger(o options, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(o.logLevel)
	if err != nil {
		return zerolog.Nop(), eris.Wrapf(err, "log level %q", o.logLevel)
	}
	if !o.logJSON {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

func startProfile(mode string) (interface{ Stop() }, error) {
	switch mode {
	case "":
		return nil, nil
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook), nil
	case "mem":
		return profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook), nil
	}
	return nil, eris.Errorf("unknown profile mode %q", mode)
}

func run(args []string, stdout, stderr io.Writer) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	o, err := parseFlags(args, settings, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	logger, err := newLogger(o, stderr)
	if err != nil {
		return err
	}
	prof, err := startProfile(o.profMode)
	if err != nil {
		return err
	}
	if prof != nil {
		defer prof.Stop()
	}

	rc := config.Fellowship()
	if o.cfgFile != "" {
		if rc, err = config.LoadRoster(o.cfgFile); err != nil {
			return err
		}
	}

	seq := 0.0
	events := make([]combat.Event, 0, 64)
	roster, err := combat.BuildRoster(rc, combat.BuildOptions{
		Scatter: o.scatter,
		Rng:     util.NewRand(o.seed),
		TeamOptions: []combat.TeamOption{
			combat.WithLogger(logger),
			combat.WithEmitter(func(ev combat.Event) { events = append(events, ev) }),
			combat.WithClock(func() float64 { seq++; return seq }),
		},
	})
	if err != nil {
		return err
	}
	logger.Info().Int("teams", len(roster.Teams)).Int("units", len(roster.Units)).Msg("roster built")

	for _, name := range o.remove {
		for _, t := range roster.Teams {
			t.RemoveMember(name)
		}
	}

	if o.march != "" {
		if err := march(roster, o.march, o.steps); err != nil {
			return err
		}
	}

	for _, t := range roster.Teams {
		if err := t.Print(stdout); err != nil {
			return eris.Wrapf(err, "print team %s", t.Name())
		}
	}

	if o.eventsOut != "" {
		b, err := combat.MarshalPretty(events)
		if err != nil {
			return err
		}
		if err := os.WriteFile(o.eventsOut, b, 0o644); err != nil {
			return eris.Wrapf(err, "write %s", o.eventsOut)
		}
		logger.Info().Int("events", len(events)).Str("file", o.eventsOut).Msg("event log written")
	}
	return nil
}

func march(r *combat.Roster, spec string, steps int) error {
	teamName, targetName, ok := strings.Cut(spec, "=")
	if !ok {
		return eris.Errorf("--march wants team=target, got %q", spec)
	}
	team, ok := r.Team(teamName)
	if !ok {
		return eris.Errorf("no team %q", teamName)
	}
	target, ok := r.Unit(targetName)
	if !ok {
		return eris.Errorf("no unit %q", targetName)
	}
	team.MarchTowards(target, steps)
	return nil
}

// failureLogger reports errors that happen before or outside the configured logger.
func failureLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true})
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		l := failureLogger(os.Stderr)
		l.Fatal().Err(err).Msg("rosterctl failed")
	}
}
