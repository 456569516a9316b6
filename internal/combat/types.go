package combat

import (
	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

const (
	EventMemberAdded   = "MemberAdded"
	EventMemberRemoved = "MemberRemoved"
	EventUnitMoved     = "UnitMoved"
)

var (
	ErrUnknownKind   = eris.New("unknown unit kind")
	ErrUnknownMember = eris.New("reference to a unit not defined earlier")
)

type Event struct {
	T       float64        `json:"t"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

func MarshalPretty(v any) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, eris.Wrap(err, "marshal")
	}
	return b, nil
}
