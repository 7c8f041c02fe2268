package models

import "testing"

func TestAllocationStatusIsValid(t *testing.T) {
	valid := []AllocationStatus{StatusPendingApproval, StatusApproved, StatusRejected}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("expected %s to be valid", s)
		}
	}

	invalid := []AllocationStatus{"", "pending", "APPROVED", "cancelled"}
	for _, s := range invalid {
		if s.IsValid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestAllocationStatusIsTerminal(t *testing.T) {
	if StatusPendingApproval.IsTerminal() {
		t.Error("pending_approval must not be terminal")
	}
	if !StatusApproved.IsTerminal() {
		t.Error("approved must be terminal")
	}
	if !StatusRejected.IsTerminal() {
		t.Error("rejected must be terminal")
	}
}

func TestAllocationStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		name string
		from AllocationStatus
		to   AllocationStatus
		want bool
	}{
		{"pending_to_approved", StatusPendingApproval, StatusApproved, true},
		{"pending_to_rejected", StatusPendingApproval, StatusRejected, true},
		{"pending_to_pending", StatusPendingApproval, StatusPendingApproval, false},
		{"approved_to_rejected", StatusApproved, StatusRejected, false},
		{"approved_to_pending", StatusApproved, StatusPendingApproval, false},
		{"rejected_to_approved", StatusRejected, StatusApproved, false},
		{"pending_to_unknown", StatusPendingApproval, "cancelled", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}
