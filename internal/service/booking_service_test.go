package service

import "testing"

func TestComposePurpose(t *testing.T) {
	got := ComposePurpose("Doubt Clarification", "Algebra, Limits")
	want := "Doubt Clarification\n\nTopics: Algebra, Limits"
	if got != want {
		t.Errorf("ComposePurpose = %q, want %q", got, want)
	}
}

func TestComposePurpose_EmptyTopics(t *testing.T) {
	// The topics line is kept even when empty, matching the submit format
	got := ComposePurpose("Assessment", "")
	want := "Assessment\n\nTopics: "
	if got != want {
		t.Errorf("ComposePurpose = %q, want %q", got, want)
	}
}

func TestComposePurpose_TrimsWhitespace(t *testing.T) {
	got := ComposePurpose("  Project Guidance ", " React hooks ")
	want := "Project Guidance\n\nTopics: React hooks"
	if got != want {
		t.Errorf("ComposePurpose = %q, want %q", got, want)
	}
}
