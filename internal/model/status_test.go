package model

import "testing"

func TestItemStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   ItemStatus
		expected bool
	}{
		{ItemStatusPending, false},
		{ItemStatusDownloading, true},
		{ItemStatusSimulating, true},
		{ItemStatusSucceeded, false},
		{ItemStatusFailed, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("ItemStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestItemStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   ItemStatus
		expected bool
	}{
		{ItemStatusPending, false},
		{ItemStatusDownloading, false},
		{ItemStatusSimulating, false},
		{ItemStatusSucceeded, true},
		{ItemStatusFailed, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("ItemStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestItemStatus_CanTransition(t *testing.T) {
	tests := []struct {
		from, to ItemStatus
		expected bool
	}{
		{ItemStatusPending, ItemStatusDownloading, true},
		{ItemStatusPending, ItemStatusSimulating, true},
		{ItemStatusPending, ItemStatusSucceeded, false},
		{ItemStatusDownloading, ItemStatusSucceeded, true},
		{ItemStatusDownloading, ItemStatusFailed, true},
		{ItemStatusSimulating, ItemStatusFailed, true},
		{ItemStatusDownloading, ItemStatusSimulating, false},
		{ItemStatusSucceeded, ItemStatusFailed, false},
		{ItemStatusFailed, ItemStatusPending, false},
	}

	for _, test := range tests {
		if got := test.from.CanTransition(test.to); got != test.expected {
			t.Errorf("%s -> %s: expected %v, got %v", test.from, test.to, test.expected, got)
		}
	}
}

func TestItemStatus_String(t *testing.T) {
	if ItemStatusDownloading.String() != "Downloading" {
		t.Errorf("Expected 'Downloading', got '%s'", ItemStatusDownloading.String())
	}
}
