package core

import (
	"math"
	"testing"
)

func TestInputFrameConsume(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionNitro)

	if !f.Consume(ActionNitro) {
		t.Fatal("Consume should report a set action")
	}
	if f.Consume(ActionNitro) {
		t.Error("Consume should clear the action after the first read")
	}
	if f.Has(ActionNitro) {
		t.Error("consumed action should no longer be reported by Has")
	}
}

func TestInputFrameConsumeNilMap(t *testing.T) {
	var f InputFrame
	if f.Consume(ActionConfirm) {
		t.Error("Consume on an empty frame should be false")
	}
}

func TestInputFrameAxis(t *testing.T) {
	tests := []struct {
		name  string
		x, y  float64
		wantX float64
		wantY float64
	}{
		{"idle", 0, 0, 0, 0},
		{"right", 1, 0, 1, 0},
		{"up", 0, -1, 0, -1},
		{"diagonal normalised", 1, 1, 1 / math.Sqrt2, 1 / math.Sqrt2},
		{"clamped before normalising", 3, 0, 1, 0},
		{"partial stays partial", 0.5, 0.5, 0.5, 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var f InputFrame
			f.SetAxis(tc.x, tc.y)
			x, y := f.Axis()
			if math.Abs(x-tc.wantX) > 1e-9 || math.Abs(y-tc.wantY) > 1e-9 {
				t.Errorf("Axis() = (%v, %v), expected (%v, %v)", x, y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestInputFrameClearKeepsAxis(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.SetAxis(-1, 0)
	f.Clear()

	if f.Has(ActionLeft) {
		t.Error("Clear should drop actions")
	}
	if x, _ := f.Axis(); x != -1 {
		t.Errorf("Clear should keep the axis, got x=%v", x)
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionConfirm)
	f.SetAxis(0, 1)

	c := f.Clone()
	c.Consume(ActionConfirm)

	if !f.Has(ActionConfirm) {
		t.Error("consuming from a clone should not affect the original")
	}
	if c.AxisY != 1 {
		t.Errorf("clone should copy the axis, got %v", c.AxisY)
	}
}

func TestActionString(t *testing.T) {
	if ActionNitro.String() != "Nitro" {
		t.Errorf("ActionNitro.String() = %q", ActionNitro.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
