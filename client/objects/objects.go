package objects

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameObject is the highest level interface for game related types.
type GameObject interface {
	Lifecycle

	GetID() string
	GetZIndex() int
	GetParent() GameObject
	SetParent(parent GameObject)
	GetChildren() []GameObject
	AddChild(child GameObject) error
	RemoveChild(id string) error
}

// BaseObject implements the tree bookkeeping shared by all game objects.
// Children are kept sorted by z-index, ties in insertion order.
type BaseObject struct {
	id       string
	zIndex   int
	parent   GameObject
	children []GameObject
}

var _ GameObject = &BaseObject{}

type NewBaseObjectOpts struct {
	// ZIndex orders siblings when drawing. Higher draws later.
	ZIndex int
}

func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	o := &BaseObject{id: id}
	if opts != nil {
		o.zIndex = opts.ZIndex
	}
	return o
}

func (o *BaseObject) Init() error    { return nil }
func (o *BaseObject) Destroy() error { return nil }
func (o *BaseObject) Update() error  { return nil }

func (o *BaseObject) Draw(screen *ebiten.Image) {}

func (o *BaseObject) GetID() string {
	return o.id
}

func (o *BaseObject) GetZIndex() int {
	return o.zIndex
}

func (o *BaseObject) GetParent() GameObject {
	return o.parent
}

func (o *BaseObject) SetParent(parent GameObject) {
	o.parent = parent
}

func (o *BaseObject) GetChildren() []GameObject {
	return o.children
}

// AddChild initializes child's tree and inserts it by z-index.
func (o *BaseObject) AddChild(child GameObject) error {
	for _, c := range o.children {
		if c.GetID() == child.GetID() {
			return fmt.Errorf("child object with id %s already exists", child.GetID())
		}
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	child.SetParent(o)
	for i, c := range o.children {
		if c.GetZIndex() > child.GetZIndex() {
			o.children = append(o.children[:i], append([]GameObject{child}, o.children[i:]...)...)
			return nil
		}
	}
	o.children = append(o.children, child)
	return nil
}

// RemoveChild destroys the child's tree and detaches it.
func (o *BaseObject) RemoveChild(id string) error {
	for i, c := range o.children {
		if c.GetID() != id {
			continue
		}
		if err := DestroyTree(c); err != nil {
			return fmt.Errorf("failed to destroy child object tree: %v", err)
		}
		o.children = append(o.children[:i], o.children[i+1:]...)
		c.SetParent(nil)
		return nil
	}
	return fmt.Errorf("child object with id %s does not exist", id)
}

// RemoveFromParent detaches o from its parent, if any.
func (o *BaseObject) RemoveFromParent() error {
	if o.parent == nil {
		return nil
	}
	return o.parent.RemoveChild(o.id)
}
