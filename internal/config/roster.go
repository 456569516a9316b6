package config

type RosterConfig struct {
	Teams []TeamDef `yaml:"teams"`
}

type TeamDef struct {
	Name    string      `yaml:"name"`
	Members []MemberDef `yaml:"members"`
	Note    string      `yaml:"note"`
}

// MemberDef describes one unit. An entry without a kind is a reference to
// a unit defined earlier under the same name, so one unit can sit in
// several teams.
type MemberDef struct {
	Kind   string `yaml:"kind"`
	Name   string `yaml:"name"`
	Health int    `yaml:"health"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Note   string `yaml:"note"`
}

func (m MemberDef) IsReference() bool { return m.Kind == "" }

// Fellowship is the built-in roster used when no file is given.
func Fellowship() *RosterConfig {
	return &RosterConfig{Teams: []TeamDef{{
		Name: "Fellowship",
		Members: []MemberDef{
			{Kind: "warrior", Name: "Aragorn", Health: 100, X: 0, Y: 0},
			{Kind: "warrior", Name: "Boromir", Health: 90, X: 1, Y: 1},
		},
	}}}
}
