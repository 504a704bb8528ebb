package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestTextLogAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "scores.txt")
	log, err := OpenTextLog(path)
	if err != nil {
		t.Fatalf("OpenTextLog() failed: %v", err)
	}

	if err := log.RecordWin("qmaze", 12); err != nil {
		t.Fatalf("RecordWin() failed: %v", err)
	}
	if err := log.RecordWin("qmaze", 7); err != nil {
		t.Fatalf("RecordWin() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	want := "Finished maze in 12 steps\nFinished maze in 7 steps\n"
	if string(data) != want {
		t.Errorf("log contents = %q, want %q", data, want)
	}
}

type failingSink struct{ calls int }

func (f *failingSink) RecordWin(string, int) error {
	f.calls++
	return errors.New("boom")
}

func TestMultiSinkTriesAll(t *testing.T) {
	store := openTestStore(t)
	bad := &failingSink{}

	sink := MultiSink{bad, store, nil}
	err := sink.RecordWin("qmaze", 5)
	if err == nil {
		t.Error("Expected joined error from failing sink")
	}
	if bad.calls != 1 {
		t.Errorf("failing sink called %d times", bad.calls)
	}

	// The store still got the score despite the earlier failure
	best, ok, _ := store.BestScore("qmaze")
	if !ok || best != 5 {
		t.Errorf("BestScore() = %d, %v; want 5, true", best, ok)
	}
}

func TestMultiSinkEmpty(t *testing.T) {
	if err := (MultiSink{}).RecordWin("qmaze", 1); err != nil {
		t.Errorf("empty MultiSink returned %v", err)
	}
}
