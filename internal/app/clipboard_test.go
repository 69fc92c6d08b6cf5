package app

import "testing"

func TestMemoryClipboard(t *testing.T) {
	var c MemoryClipboard

	if got, err := c.ReadAll(); err != nil || got != "" {
		t.Errorf("expected empty clipboard, got %q %v", got, err)
	}
	if err := c.WriteAll("hello"); err != nil {
		t.Fatal(err)
	}
	if got, _ := c.ReadAll(); got != "hello" {
		t.Errorf("expected %q, got %q", "hello", got)
	}
}

func TestSystemClipboard(t *testing.T) {
	if SystemClipboard() == nil {
		t.Error("expected a clipboard")
	}
}
