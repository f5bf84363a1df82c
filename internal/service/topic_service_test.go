package service

import (
	"encoding/json"
	"testing"
)

func TestCompletionResultNestsStreakCounters(t *testing.T) {
	result := CompletionResult{Streak: StreakResult{Current: 3, Longest: 7}}

	body, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Failed to marshal completion result: %v", err)
	}

	want := `{"streak":{"current":3,"longest":7}}`
	if string(body) != want {
		t.Errorf("Completion response %s, expected %s", body, want)
	}
}
