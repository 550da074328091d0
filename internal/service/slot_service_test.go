package service

import (
	"testing"
	"time"

	"github.com/SujitD0/Student-Dashboard/internal/model"
)

func browseSlots() []*model.Slot {
	alice := &model.User{ID: 1, Username: "alice", FirstName: "Alice"}
	bob := &model.User{ID: 2, Username: "bob", FirstName: "Bob"}

	day := func(d, h int) time.Time {
		return time.Date(2026, 3, d, h, 0, 0, 0, time.Local)
	}

	return []*model.Slot{
		{ID: 10, Teacher: alice, Start: day(10, 9), Topic: "Algebra", IsAvailable: true},
		{ID: 11, Teacher: bob, Start: day(10, 11), Topic: "Physics", IsAvailable: true},
		{ID: 12, Teacher: alice, Start: day(11, 9), Topic: "Geometry", IsAvailable: true},
		{ID: 13, Teacher: bob, Start: day(11, 14), Topic: "Algebra II", IsAvailable: false},
	}
}

func slotIDs(slots []*model.Slot) []int64 {
	ids := make([]int64, 0, len(slots))
	for _, s := range slots {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestFilterSlots_NoCriteria(t *testing.T) {
	got := FilterSlots(browseSlots(), SlotFilter{})

	// Slot 13 is booked and must never show up
	want := []int64{10, 11, 12}
	ids := slotIDs(got)
	if len(ids) != len(want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("got %v, want %v", ids, want)
			break
		}
	}
}

func TestFilterSlots_ByTeacher(t *testing.T) {
	got := FilterSlots(browseSlots(), SlotFilter{TeacherID: 1})

	for _, s := range got {
		if s.Teacher.ID != 1 {
			t.Errorf("slot %d belongs to teacher %d", s.ID, s.Teacher.ID)
		}
	}
	if len(got) != 2 {
		t.Errorf("got %d slots, want 2", len(got))
	}
}

func TestFilterSlots_ByDate(t *testing.T) {
	got := FilterSlots(browseSlots(), SlotFilter{Date: "2026-03-10"})

	ids := slotIDs(got)
	if len(ids) != 2 || ids[0] != 10 || ids[1] != 11 {
		t.Errorf("got %v, want [10 11]", ids)
	}
}

func TestFilterSlots_ByTopicCaseInsensitive(t *testing.T) {
	got := FilterSlots(browseSlots(), SlotFilter{Topic: "algebra"})

	ids := slotIDs(got)
	if len(ids) != 1 || ids[0] != 10 {
		t.Errorf("got %v, want [10]", ids)
	}
}

func TestFilterSlots_Combined(t *testing.T) {
	got := FilterSlots(browseSlots(), SlotFilter{TeacherID: 2, Date: "2026-03-10"})

	ids := slotIDs(got)
	if len(ids) != 1 || ids[0] != 11 {
		t.Errorf("got %v, want [11]", ids)
	}
}

func TestFilterSlots_UnavailableNeverMatches(t *testing.T) {
	// Even when every criterion points straight at the booked slot
	got := FilterSlots(browseSlots(), SlotFilter{TeacherID: 2, Date: "2026-03-11", Topic: "Algebra II"})

	if len(got) != 0 {
		t.Errorf("got %v, want no slots", slotIDs(got))
	}
}

func TestFilterSlots_NilTeacher(t *testing.T) {
	slots := []*model.Slot{
		{ID: 20, Teacher: nil, IsAvailable: true},
	}

	if got := FilterSlots(slots, SlotFilter{TeacherID: 1}); len(got) != 0 {
		t.Errorf("slot without teacher matched a teacher filter")
	}
	if got := FilterSlots(slots, SlotFilter{}); len(got) != 1 {
		t.Errorf("slot without teacher should pass an empty filter")
	}
}

func TestUniqueTeachers(t *testing.T) {
	got := UniqueTeachers(browseSlots())

	if len(got) != 2 {
		t.Fatalf("got %d teachers, want 2", len(got))
	}
	// First-seen order
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("got order [%d %d], want [1 2]", got[0].ID, got[1].ID)
	}
}

func TestSlotFilter_IsEmpty(t *testing.T) {
	if !(SlotFilter{}).IsEmpty() {
		t.Error("zero filter should be empty")
	}
	if (SlotFilter{Topic: "x"}).IsEmpty() {
		t.Error("filter with topic should not be empty")
	}
}
