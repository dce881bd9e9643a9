package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"aether-roguelike/internal/game"
	"aether-roguelike/internal/save"
)

func writeSave(t *testing.T) string {
	t.Helper()
	g, err := game.New(game.DefaultOptions(99))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	doc, err := save.Capture(g)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	path := filepath.Join(t.TempDir(), "run.sav")
	if err := save.SaveFile(path, doc); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	return path
}

func TestSchemaIsJSON(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"schema"}, &out); err != nil {
		t.Fatalf("schema: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("schema output is not JSON: %v", err)
	}
	if decoded["type"] != "object" {
		t.Errorf("type = %v", decoded["type"])
	}
}

func TestSummary(t *testing.T) {
	path := writeSave(t)
	var out bytes.Buffer
	if err := run([]string{"summary", path}, &out); err != nil {
		t.Fatalf("summary: %v", err)
	}
	for _, want := range []string{"seed      99 (rooms)", "floor     1", "turn      0", "player    HP 30/30"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("summary lacks %q:\n%s", want, out.String())
		}
	}
}

func TestVerify(t *testing.T) {
	path := writeSave(t)
	var out bytes.Buffer
	if err := run([]string{"verify", path}, &out); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out.String()), "entities)") {
		t.Errorf("output %q", out.String())
	}
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"unknown command", []string{"frobnicate"}},
		{"missing file argument", []string{"summary"}},
		{"missing file", []string{"verify", filepath.Join(t.TempDir(), "nope.sav")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := run(tc.args, &bytes.Buffer{}); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestVerifyRejectsCorruptSave(t *testing.T) {
	g, err := game.New(game.DefaultOptions(99))
	if err != nil {
		t.Fatal(err)
	}
	doc, err := save.Capture(g)
	if err != nil {
		t.Fatal(err)
	}
	doc.Actors = nil
	path := filepath.Join(t.TempDir(), "broken.sav")
	if err := save.SaveFile(path, doc); err != nil {
		t.Fatal(err)
	}
	if err := run([]string{"verify", path}, &bytes.Buffer{}); !errors.Is(err, save.ErrCorrupt) {
		t.Errorf("got %v; want ErrCorrupt", err)
	}
}
