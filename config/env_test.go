package config

import (
	"slices"
	"testing"
	"time"
)

func TestGetEnvAsTimeDuration(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"1500ms", 1500 * time.Millisecond},
		{"6h", 6 * time.Hour},
		{"30", 30 * time.Second},
		{"soon", time.Minute},
	}
	for _, tt := range tests {
		t.Setenv("WATCHMARKET_TEST_DURATION", tt.value)
		if got := getEnvAsTimeDuration("WATCHMARKET_TEST_DURATION", time.Minute); got != tt.want {
			t.Errorf("%q = %v, want %v", tt.value, got, tt.want)
		}
	}
	if got := getEnvAsTimeDuration("WATCHMARKET_TEST_UNSET", time.Minute); got != time.Minute {
		t.Errorf("unset = %v", got)
	}
}

func TestGetEnvAsSliceAndBool(t *testing.T) {
	t.Setenv("WATCHMARKET_TEST_SLICE", " a, b ,,c ")
	if got := getEnvAsSlice("WATCHMARKET_TEST_SLICE", nil); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("slice = %v", got)
	}

	t.Setenv("WATCHMARKET_TEST_BOOL", "nope")
	if !getEnvAsBool("WATCHMARKET_TEST_BOOL", true) {
		t.Fatal("invalid bool should use the default")
	}
	t.Setenv("WATCHMARKET_TEST_INT", "42")
	if getEnvAsInt("WATCHMARKET_TEST_INT", 0) != 42 {
		t.Fatal("int not parsed")
	}
}
