package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}
	if !f.Empty() {
		t.Error("zero frame should be empty")
	}

	f.Set(ActionJump)
	if !f.Has(ActionJump) || f.Empty() {
		t.Error("Set() should mark the action")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear() should remove all actions")
	}
	if !clone.Has(ActionJump) {
		t.Error("Clone() should not share state with the original")
	}
}

func TestMultiInputFrame(t *testing.T) {
	var m MultiInputFrame

	m.Add(Player1, ActionLeft)
	m.Add(Player2, ActionJump)
	m.Add(Player2, ActionRight)

	if !m.Player1().Has(ActionLeft) || m.Player1().Has(ActionJump) {
		t.Errorf("Player1 frame = %v", m.Player1().Actions)
	}
	if !m.Player2().Has(ActionJump) || !m.Player2().Has(ActionRight) {
		t.Errorf("Player2 frame = %v", m.Player2().Actions)
	}
	if m.Player(PlayerID(9)).Has(ActionLeft) {
		t.Error("unknown player should return an empty frame")
	}

	m.Clear()
	if !m.Player1().Empty() || !m.Player2().Empty() {
		t.Error("Clear() should reset every player frame")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionLeft, "Left"},
		{ActionJump, "Jump"},
		{ActionRestart, "Restart"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.expected)
		}
	}
}
