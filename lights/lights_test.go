package lights

import (
	"testing"

	"github.com/scheerer/traffic-light/dom"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		wantStyle string
		wantLit   bool
	}{
		{name: "unlit slot", opts: Options{}},
		{name: "named color", opts: Options{DisplayColor: "green"}, wantStyle: "green", wantLit: true},
		{name: "hex color", opts: Options{DisplayColor: "#ffbf00"}, wantStyle: "#ffbf00", wantLit: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New(tt.opts)

			assert.Equal(t, "div", n.Data)
			assert.Equal(t, []string{ClassName}, dom.ClassList(n))

			hidden, ok := dom.GetAttr(n, "aria-hidden")
			assert.True(t, ok)
			assert.Equal(t, "true", hidden)

			assert.Equal(t, tt.wantStyle, dom.Style(n, BackgroundProperty))
			assert.Equal(t, tt.wantLit, IsLit(n))

			_, hasStyle := dom.GetAttr(n, "style")
			assert.Equal(t, tt.wantLit, hasStyle, "unlit slots carry no style at all")
		})
	}
}

func TestNewReturnsFreshNodes(t *testing.T) {
	a := New(Options{DisplayColor: "red"})
	b := New(Options{DisplayColor: "red"})
	assert.NotSame(t, a, b)
	assert.Nil(t, a.Parent)
}
