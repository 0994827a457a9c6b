package models

import (
	"testing"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending to approved", StatusPending, StatusApproved, true},
		{"pending to rejected", StatusPending, StatusRejected, true},
		{"pending to posted skips approval", StatusPending, StatusPosted, false},
		{"approved to posted", StatusApproved, StatusPosted, true},
		{"approved to publish failed", StatusApproved, StatusPublishFailed, true},
		{"approved back to pending", StatusApproved, StatusPending, false},
		{"rejected is terminal", StatusRejected, StatusApproved, false},
		{"rejected cannot be posted", StatusRejected, StatusPosted, false},
		{"posted is terminal", StatusPosted, StatusRejected, false},
		{"publish failed is terminal", StatusPublishFailed, StatusPosted, false},
		{"unknown status", "Draft", StatusApproved, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
