package orbit

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Item is the caller's description of one orbiting entity. The session keeps
// a pointer to it; it is never copied.
type Item struct {
	ID   string
	Name string
	URL  string

	// Scale is the relative size in (0, 1]. Nil picks a random size.
	Scale *float64
	// Importance is the relative orbital distance in [0, 1]. Nil picks a
	// random distance.
	Importance *float64

	OnHover func()
	OnClick func()
}

// Float returns a pointer to v, for the optional Item fields.
func Float(v float64) *float64 { return &v }

// Label names the item for logs and status lines.
func (it *Item) Label() string {
	switch {
	case it == nil:
		return ""
	case it.Name != "":
		return it.Name
	default:
		return it.ID
	}
}

// Color is a 24-bit RGB value in 0xRRGGBB form.
type Color uint32

const (
	CenterColor Color = 0xffff00
	PathColor   Color = 0xffffff
)

func (c Color) RGB255() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func (c Color) Colorful() colorful.Color {
	r, g, b := c.RGB255()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Hex formats the color as "#rrggbb".
func (c Color) Hex() string { return c.Colorful().Hex() }

// RandomTint returns a random color pulled toward light gray.
func RandomTint(rng *rand.Rand) Color {
	return Color(uint32(rng.Float64()*0x808008)+0x808080) & 0xffffff
}

// NodeID identifies a scene-graph node. Zero is never assigned.
type NodeID uint32

type Role int

const (
	RoleBody Role = iota + 1
	RolePath
	RoleCenter
)

func (r Role) String() string {
	switch r {
	case RoleBody:
		return "body"
	case RolePath:
		return "path"
	case RoleCenter:
		return "center"
	default:
		return "unknown"
	}
}

// NodeInfo is the semantic data kept for a node outside the render objects.
type NodeInfo struct {
	Role   Role
	Item   *Item
	Radius float64
}

// NodeTable maps node identity to its role, item and orbital radius.
type NodeTable struct {
	next  NodeID
	nodes map[NodeID]NodeInfo
}

func NewNodeTable() *NodeTable {
	return &NodeTable{nodes: make(map[NodeID]NodeInfo)}
}

func (t *NodeTable) add(info NodeInfo) NodeID {
	t.next++
	t.nodes[t.next] = info
	return t.next
}

func (t *NodeTable) setRole(id NodeID, role Role) {
	if info, ok := t.nodes[id]; ok {
		info.Role = role
		t.nodes[id] = info
	}
}

func (t *NodeTable) Info(id NodeID) (NodeInfo, bool) {
	info, ok := t.nodes[id]
	return info, ok
}

// Item returns the item attached to id, or nil for paths and unknown nodes.
func (t *NodeTable) Item(id NodeID) *Item {
	return t.nodes[id].Item
}

func (t *NodeTable) Len() int { return len(t.nodes) }
