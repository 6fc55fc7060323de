package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func openTemp(t *testing.T) *Storage {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return s
}

func TestStorage(t *testing.T) {
	s := openTemp(t)

	t.Run("Miss", func(t *testing.T) {
		rec, ok, err := s.LoadPerft(kiwipete, 3)
		if err != nil {
			t.Fatal(err)
		}
		if ok || rec != nil {
			t.Errorf("expected no record, got %+v", rec)
		}
	})

	t.Run("SaveLoad", func(t *testing.T) {
		want := &PerftRecord{
			FEN:     kiwipete,
			Depth:   2,
			Nodes:   2039,
			Divide:  map[string]int64{"e2a6": 36, "e5f7": 44},
			Elapsed: 3 * time.Millisecond,
		}
		if err := s.SavePerft(want); err != nil {
			t.Fatal(err)
		}
		if want.Recorded.IsZero() {
			t.Error("SavePerft should stamp the record")
		}

		// The clocks are not part of the key.
		got, ok, err := s.LoadPerft("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 7 30", 2)
		if err != nil || !ok {
			t.Fatalf("LoadPerft: ok=%v err=%v", ok, err)
		}
		if got.Nodes != 2039 || got.Divide["e5f7"] != 44 || got.Elapsed != want.Elapsed {
			t.Errorf("loaded %+v", got)
		}
	})

	t.Run("List", func(t *testing.T) {
		for _, rec := range []*PerftRecord{
			{FEN: kiwipete, Depth: 1, Nodes: 48},
			{FEN: kiwipete, Depth: 3, Nodes: 97862},
			{FEN: "8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1", Depth: 1, Nodes: 6},
		} {
			if err := s.SavePerft(rec); err != nil {
				t.Fatal(err)
			}
		}

		records, err := s.ListPerft(kiwipete)
		if err != nil {
			t.Fatal(err)
		}
		if len(records) != 3 {
			t.Fatalf("got %d records, want 3", len(records))
		}
		for i, want := range []int64{48, 2039, 97862} {
			if records[i].Depth != i+1 || records[i].Nodes != want {
				t.Errorf("record %d = depth %d nodes %d", i, records[i].Depth, records[i].Nodes)
			}
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := s.DeletePerft(kiwipete, 3); err != nil {
			t.Fatal(err)
		}
		if _, ok, err := s.LoadPerft(kiwipete, 3); err != nil || ok {
			t.Errorf("record survived delete: ok=%v err=%v", ok, err)
		}
	})
}

func TestDataPaths(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "data")
	t.Setenv(DataDirEnv, tmpDir)

	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir != tmpDir {
		t.Errorf("GetDataDir = %s, want %s", dataDir, tmpDir)
	}

	dbDir, err := GetDatabaseDir()
	if err != nil {
		t.Fatalf("GetDatabaseDir failed: %v", err)
	}
	if _, err := os.Stat(dbDir); os.IsNotExist(err) {
		t.Errorf("Database directory was not created: %s", dbDir)
	}

	s, err := NewStorage()
	if err != nil {
		t.Fatalf("NewStorage: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
