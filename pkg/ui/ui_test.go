package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/golangdaddy/patroldodge/pkg/models"
)

func TestMenuCycleWraps(t *testing.T) {
	tests := []struct {
		from  MenuOption
		delta int
		want  MenuOption
	}{
		{MenuStart, 1, MenuRecords},
		{MenuRecords, 1, MenuQuit},
		{MenuQuit, 1, MenuStart},
		{MenuStart, -1, MenuQuit},
		{MenuRecords, -1, MenuStart},
		{MenuStart, -4, MenuQuit},
	}
	for _, tt := range tests {
		if got := tt.from.cycle(tt.delta); got != tt.want {
			t.Fatalf("%v.cycle(%d) = %v, want %v", tt.from, tt.delta, got, tt.want)
		}
	}
}

func TestMenuLabels(t *testing.T) {
	want := []string{"Start", "Records", "Quit"}
	for i, w := range want {
		if got := MenuOption(i).String(); got != w {
			t.Fatalf("option %d label %q, want %q", i, got, w)
		}
	}
}

func TestRecordLinesEmpty(t *testing.T) {
	for _, rec := range []*models.Record{nil, models.NewRecord()} {
		lines := recordLines(rec)
		if len(lines) != 1 || lines[0] != "No runs yet" {
			t.Fatalf("unexpected lines for empty record: %q", lines)
		}
	}
}

func TestRecordLinesListsRecentRuns(t *testing.T) {
	rec := models.NewRecord()
	at := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	for i := 0; i < recordRows+4; i++ {
		rec.Add(models.Run{Outcome: "loss", Seconds: i, LapSeconds: 180, FinishedAt: at})
	}
	rec.Add(models.Run{Outcome: "win", Seconds: 180, LapSeconds: 180, FinishedAt: at})

	lines := recordLines(rec)
	if len(lines) != 3+recordRows {
		t.Fatalf("expected %d lines, got %d", 3+recordRows, len(lines))
	}
	if lines[0] != "Wins: 1   Losses: 12" {
		t.Fatalf("unexpected totals %q", lines[0])
	}
	if lines[1] != "Best survival: 180s" {
		t.Fatalf("unexpected best %q", lines[1])
	}
	if !strings.HasPrefix(lines[3], "2026-03-01 12:30  win") {
		t.Fatalf("newest run should come first, got %q", lines[3])
	}
}
