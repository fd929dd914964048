package entity

import "testing"

func TestValidOrderStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"pending", true},
		{"confirmed", true},
		{"preparing", true},
		{"out-for-delivery", true},
		{"completed", true},
		{"cancelled", true},
		{"shipped", false},
		{"Pending", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidOrderStatus(tt.status); got != tt.want {
			t.Errorf("ValidOrderStatus(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
