package combat

import (
	"math/rand"

	"github.com/rotisserie/eris"

	"teamroster/internal/config"
	"teamroster/internal/util"
)

// Roster owns every unit it created. Teams built alongside it only hold
// references into Units.
type Roster struct {
	Units []Unit
	Teams []*Team
}

type BuildOptions struct {
	Scatter     int
	Rng         *rand.Rand
	TeamOptions []TeamOption
}

// BuildRoster creates units and teams from rc. Every member entry with a
// kind creates a new unit, even when its name repeats. An entry with only a
// name refers to the first unit already created under that name.
func BuildRoster(rc *config.RosterConfig, opts BuildOptions) (*Roster, error) {
	if rc == nil {
		return nil, eris.New("nil roster config")
	}
	if opts.Scatter > 0 && opts.Rng == nil {
		opts.Rng = util.NewRand(1)
	}
	r := &Roster{}
	byName := map[string]Unit{}
	for _, td := range rc.Teams {
		team := NewTeam(td.Name, opts.TeamOptions...)
		for _, md := range td.Members {
			if md.IsReference() {
				u, ok := byName[md.Name]
				if !ok {
					return nil, eris.Wrapf(ErrUnknownMember, "team %s, member %s", td.Name, md.Name)
				}
				team.AddMember(u)
				continue
			}
			x, y := md.X, md.Y
			if opts.Scatter > 0 {
				dx, dy := util.Jitter(opts.Rng, opts.Scatter)
				x, y = x+dx, y+dy
			}
			u, err := NewUnit(md.Kind, md.Name, md.Health, x, y)
			if err != nil {
				return nil, eris.Wrapf(err, "team %s, member %s", td.Name, md.Name)
			}
			if _, seen := byName[md.Name]; !seen {
				byName[md.Name] = u
			}
			r.Units = append(r.Units, u)
			team.AddMember(u)
		}
		r.Teams = append(r.Teams, team)
	}
	return r, nil
}

func (r *Roster) Team(name string) (*Team, bool) {
	for _, t := range r.Teams {
		if t.Name() == name {
			return t, true
		}
	}
	return nil, false
}

// Unit looks a unit up by name across the whole roster.
func (r *Roster) Unit(name string) (Unit, bool) {
	for _, u := range r.Units {
		if u.Name() == name {
			return u, true
		}
	}
	return nil, false
}
