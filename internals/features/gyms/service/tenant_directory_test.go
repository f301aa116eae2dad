package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gymku_backend/internals/features/gyms/model"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name    string
		current string
		next    string
		wantErr bool
	}{
		{"pending to approved", model.ApprovalStatusPending, model.ApprovalStatusApproved, false},
		{"pending to rejected", model.ApprovalStatusPending, model.ApprovalStatusRejected, false},
		{"approve twice is idempotent", model.ApprovalStatusApproved, model.ApprovalStatusApproved, false},
		{"reject twice is idempotent", model.ApprovalStatusRejected, model.ApprovalStatusRejected, false},
		{"approved cannot become rejected", model.ApprovalStatusApproved, model.ApprovalStatusRejected, true},
		{"rejected cannot become approved", model.ApprovalStatusRejected, model.ApprovalStatusApproved, true},
		{"unknown target status", model.ApprovalStatusPending, "reopened", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Transition(tc.current, tc.next)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
