package store

import (
	"path/filepath"
	"testing"
)

func TestPebbleRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "kv")
	p, err := OpenPebble(dir)
	if err != nil {
		t.Fatalf("OpenPebble: %v", err)
	}
	defer p.Close()

	if _, ok, err := p.GetItem("textSize"); err != nil || ok {
		t.Fatalf("expected absent key: ok=%v err=%v", ok, err)
	}
	if err := p.SetItem("textSize", "Small"); err != nil {
		t.Fatalf("SetItem: %v", err)
	}
	v, ok, err := p.GetItem("textSize")
	if err != nil || !ok || v != "Small" {
		t.Fatalf("GetItem: v=%q ok=%v err=%v", v, ok, err)
	}
}

func TestPebbleSurvivesReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "kv")
	p, err := OpenPebble(dir)
	if err != nil {
		t.Fatalf("OpenPebble: %v", err)
	}
	if err := p.SetItem("textSize", "2XL"); err != nil {
		t.Fatalf("SetItem: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	// closing twice is fine
	if err := p.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	p2, err := OpenPebble(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer p2.Close()
	v, ok, err := p2.GetItem("textSize")
	if err != nil || !ok || v != "2XL" {
		t.Fatalf("value lost across reopen: v=%q ok=%v err=%v", v, ok, err)
	}
}

func TestMemoryKV(t *testing.T) {
	m := NewMemory()
	if _, ok, _ := m.GetItem("k"); ok {
		t.Fatalf("expected absent key")
	}
	if err := m.SetItem("k", "v"); err != nil {
		t.Fatalf("SetItem: %v", err)
	}
	v, ok, _ := m.GetItem("k")
	if !ok || v != "v" {
		t.Fatalf("GetItem: v=%q ok=%v", v, ok)
	}
}
