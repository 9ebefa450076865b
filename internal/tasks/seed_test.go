package tasks

import (
	"errors"
	"testing"
)

func TestLoadSeed(t *testing.T) {
	data := []byte(`
tasks:
  - description: "Package this app into a single file"
  - description: "Share it with a friend"
    status: done
`)

	got, err := LoadSeed(data)
	if err != nil {
		t.Fatalf("LoadSeed failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(got))
	}
	if got[0].Status != Pending {
		t.Errorf("Expected missing status to default to pending, got %s", got[0].Status)
	}
	if got[1].Status != Done {
		t.Errorf("Expected done, got %s", got[1].Status)
	}
	if got[0].ID == got[1].ID {
		t.Error("Expected distinct IDs")
	}
}

func TestLoadSeedErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		is   error
	}{
		{name: "unknown status", data: "tasks:\n  - description: x\n    status: later\n", is: ErrInvalidStatus},
		{name: "blank description", data: "tasks:\n  - description: \"  \"\n"},
		{name: "malformed", data: "tasks: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSeed([]byte(tt.data))
			if err == nil {
				t.Fatal("Expected error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("Expected %v, got %v", tt.is, err)
			}
		})
	}
}

func TestLoadSeedEmpty(t *testing.T) {
	got, err := LoadSeed(nil)
	if err != nil {
		t.Fatalf("LoadSeed failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected no tasks, got %d", len(got))
	}
}

func TestParseStatus(t *testing.T) {
	if s, err := ParseStatus("done"); err != nil || s != Done {
		t.Errorf("Expected done, got %s (%v)", s, err)
	}
	if s, err := ParseStatus("pending"); err != nil || s != Pending {
		t.Errorf("Expected pending, got %s (%v)", s, err)
	}
	if _, err := ParseStatus("DONE"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("Expected ErrInvalidStatus, got %v", err)
	}
}

func TestStatusToggled(t *testing.T) {
	if Pending.Toggled() != Done {
		t.Error("Expected pending to toggle to done")
	}
	if Done.Toggled() != Pending {
		t.Error("Expected done to toggle to pending")
	}
}
