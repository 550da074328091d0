package state

import "testing"

func TestManager_StateLifecycle(t *testing.T) {
	m := NewManager()

	if got := m.GetState(1); got != StateNone {
		t.Errorf("fresh manager state = %q, want none", got)
	}

	m.SetState(1, StateLoginEmail)
	if got := m.GetState(1); got != StateLoginEmail {
		t.Errorf("state = %q, want %q", got, StateLoginEmail)
	}

	// Other chats are unaffected
	if got := m.GetState(2); got != StateNone {
		t.Errorf("other chat state = %q, want none", got)
	}

	m.ClearState(1)
	if got := m.GetState(1); got != StateNone {
		t.Errorf("state after clear = %q, want none", got)
	}
}

func TestManager_DataSurvivesStateNone(t *testing.T) {
	m := NewManager()

	m.SetState(1, StateFilterTopic)
	m.SetData(1, "flt_topic", "algebra")

	// Ending the dialog keeps collected data, e.g. browse filters
	m.SetState(1, StateNone)

	value, ok := m.GetData(1, "flt_topic")
	if !ok || value != "algebra" {
		t.Errorf("GetData = %v, %v; want algebra, true", value, ok)
	}
	if got := m.GetState(1); got != StateNone {
		t.Errorf("state = %q, want none", got)
	}
}

func TestManager_ClearStateDropsData(t *testing.T) {
	m := NewManager()

	m.SetData(1, "book_slot_id", int64(42))
	m.ClearState(1)

	if _, ok := m.GetData(1, "book_slot_id"); ok {
		t.Error("data should be gone after ClearState")
	}
}

func TestManager_ClearData(t *testing.T) {
	m := NewManager()

	m.SetData(1, "flt_topic", "algebra")
	m.SetData(1, "flt_teacher", int64(3))
	m.ClearData(1, "flt_topic")

	if _, ok := m.GetData(1, "flt_topic"); ok {
		t.Error("flt_topic should be cleared")
	}
	if _, ok := m.GetData(1, "flt_teacher"); !ok {
		t.Error("flt_teacher should survive")
	}
}

func TestManager_GetAllDataIsACopy(t *testing.T) {
	m := NewManager()

	m.SetData(1, "key", "value")

	data := m.GetAllData(1)
	data["key"] = "mutated"

	if value, _ := m.GetData(1, "key"); value != "value" {
		t.Errorf("stored value = %v, want value", value)
	}
}
