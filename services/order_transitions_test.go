package services

import (
	"testing"

	"github.com/skawashin1122/bento-ordering-system/entity"
)

func TestValidTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{entity.StatusPending, entity.StatusPreparing, true},
		{entity.StatusPending, entity.StatusReady, false},
		{entity.StatusPending, entity.StatusDelivered, false},
		{entity.StatusPending, entity.StatusCancelled, true},
		{entity.StatusPreparing, entity.StatusReady, true},
		{entity.StatusPreparing, entity.StatusPending, false},
		{entity.StatusPreparing, entity.StatusCancelled, true},
		{entity.StatusReady, entity.StatusDelivered, true},
		{entity.StatusReady, entity.StatusPreparing, false},
		{entity.StatusReady, entity.StatusCancelled, true},
		{entity.StatusDelivered, entity.StatusCancelled, false},
		{entity.StatusDelivered, entity.StatusPending, false},
		{entity.StatusCancelled, entity.StatusPending, false},
		{entity.StatusCancelled, entity.StatusPreparing, false},
		{"", entity.StatusPending, false},
		{entity.StatusPending, "", false},
	}
	for _, tt := range tests {
		got := ValidTransition(tt.from, tt.to)
		if got != tt.want {
			t.Errorf("ValidTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
