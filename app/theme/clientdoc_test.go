package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDoc(t *testing.T) {
	d := NewClientDoc()
	_, ok := d.RootAttr(Attr)
	assert.False(t, ok)

	d.SetRootAttr(Attr, "dark")
	v, ok := d.RootAttr(Attr)
	require.True(t, ok)
	assert.Equal(t, "dark", v)

	assert.True(t, d.HasControl(ControlClass))
	assert.NoError(t, d.AppendControl(DefaultControl()))
}

func TestMediaBus_Order(t *testing.T) {
	b := NewMediaBus()
	var seen []string
	b.OnReady(func() error { seen = append(seen, "ready-1"); return nil })
	b.OnReady(func() error { seen = append(seen, "ready-2"); return nil })
	b.OnSchemeChange(func(dark bool) error {
		if dark {
			seen = append(seen, "dark")
		}
		return nil
	})

	require.NoError(t, b.Ready())
	require.NoError(t, b.SchemeChange(true))
	require.NoError(t, b.Activate()) // no handlers
	assert.Equal(t, []string{"ready-1", "ready-2", "dark"}, seen)
}
