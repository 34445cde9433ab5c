package logger

import "testing"

func TestNew_Development(t *testing.T) {
	log, err := New(true)
	if err != nil {
		t.Fatalf("New(true) failed: %v", err)
	}
	if log == nil {
		t.Fatal("expected a logger")
	}
	log.Sync()
}

func TestNew_Production(t *testing.T) {
	log, err := New(false)
	if err != nil {
		t.Fatalf("New(false) failed: %v", err)
	}
	if !log.Core().Enabled(0) { // InfoLevel
		t.Error("production logger should log at info")
	}
}

func TestMust(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Must should not panic for valid config: %v", r)
		}
	}()
	Must(true)
}
