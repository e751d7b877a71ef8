package domain

import (
	"errors"
	"testing"
)

func TestParseMemberRefs_StringList(t *testing.T) {
	refs, err := ParseMemberRefs(`["E100","E101","E102"]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(refs) != 3 {
		t.Fatalf("expected 3 refs, got %d", len(refs))
	}
	for i, want := range []string{"E100", "E101", "E102"} {
		if refs[i].EmployeeID != want {
			t.Errorf("ref %d: expected %q, got %q", i, want, refs[i].EmployeeID)
		}
	}
}

func TestParseMemberRefs_ObjectList(t *testing.T) {
	refs, err := ParseMemberRefs(`[{"employeeId":"E100","name":"Alice"},{"employeeId":"E101"}]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected 2 refs, got %d", len(refs))
	}
	if refs[0].EmployeeID != "E100" || refs[1].EmployeeID != "E101" {
		t.Errorf("unexpected refs: %+v", refs)
	}
}

func TestParseMemberRefs_MixedList(t *testing.T) {
	refs, err := ParseMemberRefs(`["E100",{"employeeId":"E101"}]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(refs) != 2 || refs[0].EmployeeID != "E100" || refs[1].EmployeeID != "E101" {
		t.Fatalf("unexpected refs: %+v", refs)
	}
}

func TestParseMemberRefs_SingleObjectCoerced(t *testing.T) {
	refs, err := ParseMemberRefs(`{"employeeId":"E100"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(refs) != 1 || refs[0].EmployeeID != "E100" {
		t.Fatalf("unexpected refs: %+v", refs)
	}
}

func TestParseMemberRefs_SingleStringCoerced(t *testing.T) {
	refs, err := ParseMemberRefs(`"E100"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(refs) != 1 || refs[0].EmployeeID != "E100" {
		t.Fatalf("unexpected refs: %+v", refs)
	}
}

func TestParseMemberRefs_Empty(t *testing.T) {
	for _, raw := range []string{"", "   "} {
		refs, err := ParseMemberRefs(raw)
		if err != nil {
			t.Fatalf("raw %q: unexpected error: %v", raw, err)
		}
		if len(refs) != 0 {
			t.Fatalf("raw %q: expected no refs, got %+v", raw, refs)
		}
	}
}

func TestParseMemberRefs_MalformedJSON(t *testing.T) {
	_, err := ParseMemberRefs(`[E100`)
	if !errors.Is(err, ErrInvalidMemberInput) {
		t.Fatalf("expected ErrInvalidMemberInput, got %v", err)
	}
}

func TestParseMemberRefs_NonStringElement(t *testing.T) {
	_, err := ParseMemberRefs(`[42]`)
	if !errors.Is(err, ErrInvalidMemberInput) {
		t.Fatalf("expected ErrInvalidMemberInput, got %v", err)
	}
}

func TestParseMemberRefs_ObjectWithoutEmployeeID(t *testing.T) {
	// Decodes to an empty ID; the resolver's batch validation rejects it.
	refs, err := ParseMemberRefs(`[{"name":"Alice"}]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(refs) != 1 || refs[0].EmployeeID != "" {
		t.Fatalf("unexpected refs: %+v", refs)
	}
}

func TestMemberNotFoundError_MatchesUserNotFound(t *testing.T) {
	err := &MemberNotFoundError{EmployeeID: "E999"}
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatal("expected MemberNotFoundError to match ErrUserNotFound")
	}
	if err.Error() != "user with employee ID E999 not found" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}
