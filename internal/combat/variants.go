package combat

import (
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"
)

const (
	KindWarrior = "Warrior"
	KindArcher  = "Archer"
	KindMage    = "Mage"
)

func printUnit(w io.Writer, label string, u *BaseUnit) error {
	_, err := fmt.Fprintf(w, "%s: %s, Health: %d, Position: (%d, %d)\n",
		label, u.name, u.health, u.pos.X, u.pos.Y)
	return err
}

type Warrior struct{ BaseUnit }

func NewWarrior(name string, health, x, y int) *Warrior {
	return &Warrior{newBaseUnit(name, health, x, y)}
}

func (*Warrior) Kind() string              { return KindWarrior }
func (u *Warrior) Print(w io.Writer) error { return printUnit(w, KindWarrior, &u.BaseUnit) }

type Archer struct{ BaseUnit }

func NewArcher(name string, health, x, y int) *Archer {
	return &Archer{newBaseUnit(name, health, x, y)}
}

func (*Archer) Kind() string              { return KindArcher }
func (u *Archer) Print(w io.Writer) error { return printUnit(w, KindArcher, &u.BaseUnit) }

type Mage struct{ BaseUnit }

func NewMage(name string, health, x, y int) *Mage {
	return &Mage{newBaseUnit(name, health, x, y)}
}

func (*Mage) Kind() string              { return KindMage }
func (u *Mage) Print(w io.Writer) error { return printUnit(w, KindMage, &u.BaseUnit) }

// NewUnit builds a unit by kind name, ignoring case.
func NewUnit(kind, name string, health, x, y int) (Unit, error) {
	switch strings.ToLower(kind) {
	case "warrior":
		return NewWarrior(name, health, x, y), nil
	case "archer":
		return NewArcher(name, health, x, y), nil
	case "mage":
		return NewMage(name, health, x, y), nil
	}
	return nil, eris.Wrapf(ErrUnknownKind, "%q", kind)
}
