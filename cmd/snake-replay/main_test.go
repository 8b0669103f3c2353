package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lixenwraith/gesture-snake/engine"
	"github.com/lixenwraith/gesture-snake/replay"
)

func TestSummarize(t *testing.T) {
	s := engine.NewSession(engine.Options{Seed: 9, ID: "summary"})
	food := s.Snapshot().Food

	rec := replay.NewRecorder(s.ID(), s.Seed())
	rec.Point(food)

	var buf bytes.Buffer
	if err := rec.Save(&buf); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := replay.Load(&buf)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	var out bytes.Buffer
	final := summarize(&out, loaded, true)

	if final.Score != 1 {
		t.Errorf("Expected score 1, got %d", final.Score)
	}
	text := out.String()
	for _, want := range []string{"session   summary", "score     1", "food      1 eaten", "FoodEaten"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in output:\n%s", want, text)
		}
	}
}
