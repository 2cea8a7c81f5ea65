package config

import "testing"

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}

	if cfg.Quiz.WordCount != 30 {
		t.Errorf("WordCount = %d, want 30", cfg.Quiz.WordCount)
	}
	if cfg.Quiz.TestStartClock != "10:10:00" {
		t.Errorf("TestStartClock = %q, want %q", cfg.Quiz.TestStartClock, "10:10:00")
	}
	if cfg.Quiz.TestEndClock != "10:25:00" {
		t.Errorf("TestEndClock = %q, want %q", cfg.Quiz.TestEndClock, "10:25:00")
	}
	if !cfg.Quiz.SchedulerEnabled {
		t.Error("SchedulerEnabled = false, want the default true")
	}
}

func TestNewConfigEnvOverrides(t *testing.T) {
	t.Setenv("QUIZ_WORD_COUNT", "15")
	t.Setenv("SCHEDULER_ENABLED", "false")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}

	if cfg.Quiz.WordCount != 15 {
		t.Errorf("WordCount = %d, want 15", cfg.Quiz.WordCount)
	}
	if cfg.Quiz.SchedulerEnabled {
		t.Error("SchedulerEnabled = true, want false from the environment")
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q, want %q", cfg.Server.Port, "9090")
	}
}
