package combat

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"teamroster/internal/util"
)

// Team is a named, ordered set of unit references. It never owns, mutates
// or releases its members; callers keep units alive for as long as any team
// refers to them.
type Team struct {
	name    string
	members *util.Array[Unit]
	emit    func(Event)
	now     func() float64
	log     zerolog.Logger
}

type TeamOption func(*Team)

func WithLogger(l zerolog.Logger) TeamOption { return func(t *Team) { t.log = l } }
func WithEmitter(fn func(Event)) TeamOption  { return func(t *Team) { t.emit = fn } }
func WithClock(fn func() float64) TeamOption { return func(t *Team) { t.now = fn } }
func WithCapacity(n int) TeamOption {
	return func(t *Team) { t.members = util.NewArray[Unit](n) }
}

func NewTeam(name string, opts ...TeamOption) *Team {
	t := &Team{
		name:    name,
		members: util.NewArray[Unit](util.DefaultCapacity),
		emit:    func(Event) {},
		now:     func() float64 { return 0 },
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.log = t.log.With().Str("team", name).Logger()
	return t
}

func (t *Team) Name() string { return t.name }
func (t *Team) Size() int    { return t.members.Size() }

// Members returns a snapshot in current order.
func (t *Team) Members() []Unit { return t.members.Slice() }

// AddMember appends u without checking for duplicates or nil.
func (t *Team) AddMember(u Unit) {
	t.members.Add(u)
	payload := map[string]any{"team": t.name}
	if u != nil {
		payload["id"], payload["name"], payload["kind"] = u.ID().String(), u.Name(), u.Kind()
	}
	t.log.Debug().Interface("unit", payload["name"]).Int("size", t.members.Size()).Msg("member added")
	t.emit(Event{T: t.now(), Type: EventMemberAdded, Payload: payload})
}

func (t *Team) indexOf(name string) int {
	return t.members.IndexFunc(func(u Unit) bool { return u.Name() == name })
}

// RemoveMember drops the first member called name. A missing name is a no-op
// and reports false.
func (t *Team) RemoveMember(name string) bool {
	i := t.indexOf(name)
	if i < 0 {
		return false
	}
	u, _ := t.members.At(i)
	if err := t.members.RemoveAt(i); err != nil {
		// unreachable: i came from a scan of the live range
		t.log.Error().Err(err).Str("unit", name).Msg("remove member")
		return false
	}
	t.log.Debug().Str("unit", name).Int("size", t.members.Size()).Msg("member removed")
	t.emit(Event{T: t.now(), Type: EventMemberRemoved, Payload: map[string]any{
		"team": t.name, "id": u.ID().String(), "name": name,
	}})
	return true
}

// FindMember returns the first member called name in insertion order.
func (t *Team) FindMember(name string) (Unit, bool) {
	i := t.indexOf(name)
	if i < 0 {
		return nil, false
	}
	u, _ := t.members.At(i)
	return u, true
}

func (t *Team) Print(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Team: %s\n", t.name); err != nil {
		return err
	}
	return util.PrintAll(t.members, w)
}

// MarchTowards steps every member towards target, steps times each.
// The target itself is skipped if it belongs to the team.
func (t *Team) MarchTowards(target Unit, steps int) {
	t.members.Each(func(_ int, u Unit) bool {
		if u == target {
			return true
		}
		from := u.Position()
		for s := 0; s < steps; s++ {
			u.MoveTowards(target)
		}
		to := u.Position()
		if from == to {
			return true
		}
		t.emit(Event{T: t.now(), Type: EventUnitMoved, Payload: map[string]any{
			"team": t.name, "name": u.Name(), "x": to.X, "y": to.Y,
			"distance": u.DistanceTo(target),
		}})
		return true
	})
}
