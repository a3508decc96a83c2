package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/glance/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "glance.db")
	st, err := Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func insertReading(t *testing.T, st *Store, i int, source string, completed bool) int64 {
	t.Helper()
	start := time.Unix(0, 0).Add(time.Duration(i) * time.Minute)
	end := start.Add(45 * time.Second)
	id, err := st.InsertReading(context.Background(), model.ReadingStats{
		StartedAt:  start,
		EndedAt:    end,
		Source:     source,
		WordsTotal: 120,
		WordsRead:  90 + i,
		WPM:        300,
		DurationMs: end.Sub(start).Milliseconds(),
		Completed:  completed,
	})
	if err != nil {
		t.Fatalf("insert reading: %v", err)
	}
	return id
}

func TestInsertAndListReadings(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	var ids []int64
	for i := 0; i < 3; i++ {
		ids = append(ids, insertReading(t, st, i, "book.txt", i == 2))
	}

	readings, err := st.ListReadings(ctx, model.StatsConfig{})
	if err != nil {
		t.Fatalf("list readings: %v", err)
	}
	if len(readings) != 3 {
		t.Fatalf("expected 3 readings, got %d", len(readings))
	}
	for i, r := range readings {
		if r.ReadingID != ids[i] {
			t.Fatalf("expected oldest-first order, got %+v", readings)
		}
	}
	if !readings[2].Completed || readings[0].Completed {
		t.Fatalf("completed flag lost in round-trip: %+v", readings)
	}
	if readings[1].WordsRead != 91 {
		t.Fatalf("expected words_read 91, got %d", readings[1].WordsRead)
	}
}

func TestListReadingsFilters(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	insertReading(t, st, 0, "a.txt", true)
	insertReading(t, st, 1, "b.txt", true)
	insertReading(t, st, 2, "b.txt", false)

	bySource, err := st.ListReadings(ctx, model.StatsConfig{Source: "b.txt"})
	if err != nil {
		t.Fatalf("list by source: %v", err)
	}
	if len(bySource) != 2 {
		t.Fatalf("expected 2 readings for b.txt, got %d", len(bySource))
	}

	since := time.Unix(0, 0).Add(90 * time.Second)
	recent, err := st.ListReadings(ctx, model.StatsConfig{Since: &since})
	if err != nil {
		t.Fatalf("list since: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("expected 1 reading since %v, got %d", since, len(recent))
	}

	last, err := st.ListReadings(ctx, model.StatsConfig{Last: 2})
	if err != nil {
		t.Fatalf("list last: %v", err)
	}
	if len(last) != 2 {
		t.Fatalf("expected last 2 readings, got %d", len(last))
	}
	if last[0].Source != "b.txt" || last[1].Source != "b.txt" {
		t.Fatalf("expected the two most recent readings, got %+v", last)
	}
}
