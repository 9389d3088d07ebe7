package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingObject struct {
	*BaseObject
	inits, destroys, updates int
}

func newCountingObject(id string, zIndex int) *countingObject {
	return &countingObject{BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex})}
}

func (o *countingObject) Init() error    { o.inits++; return nil }
func (o *countingObject) Destroy() error { o.destroys++; return nil }
func (o *countingObject) Update() error  { o.updates++; return nil }

func childIDs(o GameObject) []string {
	var ids []string
	for _, c := range o.GetChildren() {
		ids = append(ids, c.GetID())
	}
	return ids
}

func TestBaseObject_AddChild(t *testing.T) {
	root := NewBaseObject("root", nil)
	hud := newCountingObject("hud", 10)
	popup := newCountingObject("popup", 5)
	other := newCountingObject("other", 5)

	require.NoError(t, root.AddChild(hud))
	require.NoError(t, root.AddChild(popup))
	require.NoError(t, root.AddChild(other))

	assert.Equal(t, []string{"popup", "other", "hud"}, childIDs(root))
	assert.Equal(t, 1, hud.inits)
	assert.Equal(t, root, hud.GetParent())

	assert.Error(t, root.AddChild(newCountingObject("hud", 0)))
}

func TestBaseObject_RemoveChild(t *testing.T) {
	root := NewBaseObject("root", nil)
	child := newCountingObject("child", 0)
	require.NoError(t, root.AddChild(child))

	require.NoError(t, root.RemoveChild("child"))
	assert.Empty(t, root.GetChildren())
	assert.Equal(t, 1, child.destroys)
	assert.Nil(t, child.GetParent())

	assert.Error(t, root.RemoveChild("child"))
}

func TestUpdateTree(t *testing.T) {
	root := NewBaseObject("root", nil)
	a := newCountingObject("a", 0)
	b := newCountingObject("b", 0)
	require.NoError(t, root.AddChild(a))
	require.NoError(t, a.AddChild(b))

	require.NoError(t, UpdateTree(root))
	require.NoError(t, UpdateTree(root))
	assert.Equal(t, 2, a.updates)
	assert.Equal(t, 2, b.updates)

	require.NoError(t, DestroyTree(root))
	assert.Equal(t, 1, a.destroys)
	assert.Equal(t, 1, b.destroys)
}

func TestTextEffect_expires(t *testing.T) {
	root := NewBaseObject("root", nil)
	effect := NewTextEffect("popup-1", NewTextEffectOptions{
		Text:   "+10",
		X:      200,
		Y:      480,
		Scroll: true,
		TTL:    3,
	})
	require.NoError(t, root.AddChild(effect))

	for i := 0; i < 2; i++ {
		require.NoError(t, UpdateTree(root))
	}
	require.Len(t, root.GetChildren(), 1)
	assert.Equal(t, 478.0, effect.y)

	require.NoError(t, UpdateTree(root))
	assert.Empty(t, root.GetChildren())
}

func TestTextEffect_noTTL(t *testing.T) {
	root := NewBaseObject("root", nil)
	effect := NewTextEffect("label", NewTextEffectOptions{Text: "hi"})
	require.NoError(t, root.AddChild(effect))

	for i := 0; i < 100; i++ {
		require.NoError(t, UpdateTree(root))
	}
	assert.Len(t, root.GetChildren(), 1)
	assert.NotNil(t, effect.color)
}

func TestScoreObject_Label(t *testing.T) {
	score := 0
	hud := NewScoreObject("hud", func() int { return score })
	assert.Equal(t, "Coins: 0", hud.Label())
	score = 30
	assert.Equal(t, "Coins: 30", hud.Label())
}
