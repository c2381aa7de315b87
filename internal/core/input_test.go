package core

import "testing"

func TestInputFrameHeld(t *testing.T) {
	f := Held(ActionRight, ActionJump)

	if !f.Has(ActionRight) || !f.Has(ActionJump) {
		t.Error("Held() should mark given actions")
	}
	if f.Has(ActionLeft) {
		t.Error("unset action should not be held")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionRight) {
		t.Error("Clear() should release all actions")
	}
	if !clone.Has(ActionRight) {
		t.Error("Clone() should not share storage")
	}

	var zero InputFrame
	if zero.Has(ActionJump) {
		t.Error("zero frame should hold nothing")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set() on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" || Action(99).String() != "Unknown" {
		t.Error("unexpected action names")
	}
}
