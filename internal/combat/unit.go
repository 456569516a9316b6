package combat

import (
	"github.com/google/uuid"

	"teamroster/internal/util"
)

// Unit is a named, positioned actor with health. Concrete kinds embed
// BaseUnit and supply Kind and Print.
type Unit interface {
	util.Printer

	ID() uuid.UUID
	Kind() string
	Name() string
	Health() int
	Position() Position

	SetName(name string)
	SetHealth(health int)
	SetPosition(x, y int)

	Move(dx, dy int)
	MoveTowards(target Unit)
	DistanceTo(other Unit) int
}

// BaseUnit holds the state shared by every kind. No field is validated:
// empty names and non-positive health are accepted as given.
type BaseUnit struct {
	id     uuid.UUID
	name   string
	health int
	pos    Position
}

func newBaseUnit(name string, health, x, y int) BaseUnit {
	return BaseUnit{id: uuid.New(), name: name, health: health, pos: Position{X: x, Y: y}}
}

func (u *BaseUnit) ID() uuid.UUID      { return u.id }
func (u *BaseUnit) Name() string       { return u.name }
func (u *BaseUnit) Health() int        { return u.health }
func (u *BaseUnit) Position() Position { return u.pos }

func (u *BaseUnit) SetName(name string)  { u.name = name }
func (u *BaseUnit) SetHealth(health int) { u.health = health }
func (u *BaseUnit) SetPosition(x, y int) { u.pos = Position{X: x, Y: y} }

func (u *BaseUnit) Move(dx, dy int) { u.pos = u.pos.Add(Position{X: dx, Y: dy}) }

func (u *BaseUnit) MoveTowards(target Unit) {
	u.pos = u.pos.StepTowards(target.Position())
}

func (u *BaseUnit) DistanceTo(other Unit) int {
	return u.pos.Distance(other.Position())
}
