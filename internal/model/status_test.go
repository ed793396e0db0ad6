package model

import "testing"

func TestStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   Status
		expected bool
	}{
		{StatusNotStarted, false},
		{StatusInProgress, true},
		{StatusSucceeded, false},
		{StatusFailed, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("Status(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   Status
		expected bool
	}{
		{StatusNotStarted, false},
		{StatusInProgress, false},
		{StatusSucceeded, true},
		{StatusFailed, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("Status(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestStatus_CanStart(t *testing.T) {
	tests := []struct {
		status   Status
		expected bool
	}{
		{StatusNotStarted, true},
		{StatusInProgress, false},
		{StatusSucceeded, true},
		{StatusFailed, true},
	}

	for _, test := range tests {
		if got := test.status.CanStart(); got != test.expected {
			t.Errorf("Status(%s).CanStart() = %v, expected %v", test.status, got, test.expected)
		}
	}
}

func TestStatus_String(t *testing.T) {
	status := StatusInProgress
	expected := "InProgress"
	result := status.String()

	if result != expected {
		t.Errorf("Status.String() = %s, expected %s", result, expected)
	}
}
