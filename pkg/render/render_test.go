package render

import (
	"image/color"
	"testing"

	"github.com/golangdaddy/patroldodge/pkg/asset"
	"github.com/golangdaddy/patroldodge/pkg/geom"
)

func TestListRecordsAndReplays(t *testing.T) {
	var l List
	s := asset.Blank("car", 4, 4)

	l.DrawSprite(s, geom.Rect{W: 4, H: 4}, 1)
	l.Clear()
	l.DrawSprite(s, geom.Rect{X: 1, W: 4, H: 4}, 0.5)
	l.FillCircle(geom.Vec{X: 2, Y: 2}, 3, color.White, 0.25)

	if l.Len() != 3 {
		t.Fatalf("clear should drop earlier ops, got %d ops", l.Len())
	}
	if l.Count(OpClear) != 1 || l.Count(OpSprite) != 1 || l.Count(OpCircle) != 1 {
		t.Fatalf("unexpected op mix: %+v", l.Ops())
	}

	var out List
	l.Replay(&out)
	if out.Len() != l.Len() {
		t.Fatalf("replay produced %d ops, want %d", out.Len(), l.Len())
	}
	for i, op := range out.Ops() {
		if op.Kind != l.Ops()[i].Kind {
			t.Fatalf("op %d kind %v, want %v", i, op.Kind, l.Ops()[i].Kind)
		}
	}
	if out.Ops()[1].Alpha != 0.5 || out.Ops()[1].Rect.X != 1 {
		t.Fatalf("sprite op not replayed faithfully: %+v", out.Ops()[1])
	}

	l.Reset()
	if l.Len() != 0 {
		t.Fatal("reset should leave an empty list")
	}
}
