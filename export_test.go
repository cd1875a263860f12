package orbitviz

import (
	"bufio"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestExportConfigIsUseless(t *testing.T) {
	if !(ExportConfig{}).IsUseless() {
		t.Fatal("empty export config must be useless")
	}
	if !(ExportConfig{AsCSV: true}).IsUseless() {
		t.Fatal("no filename must be useless")
	}
	if (ExportConfig{Filename: "x", AsNDJSON: true}).IsUseless() {
		t.Fatal("NDJSON export wrongly rejected")
	}
}

func streamTwoBatches(t *testing.T, conf ExportConfig) {
	t.Helper()
	ch := make(chan []State, 2)
	ch <- []State{
		{Elapsed: 3600, Name: "Sun"},
		{Elapsed: 3600, Name: "Earth", Position: r3.Vec{X: 1.496e11}, Velocity: r3.Vec{Y: 29780}},
	}
	ch <- []State{
		{Elapsed: 7200, Name: "Sun"},
		{Elapsed: 7200, Name: "Earth", Position: r3.Vec{X: 1.4959e11, Y: 1e8}},
	}
	close(ch)
	epoch := time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := StreamStates(conf, epoch, ch); err != nil {
		t.Fatal(err)
	}
}

func TestStreamStatesCSV(t *testing.T) {
	base := filepath.Join(t.TempDir(), "traj")
	streamTwoBatches(t, ExportConfig{Filename: base, AsCSV: true})
	f, err := os.Open(base + ".csv")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 5 { // header + 2 bodies * 2 steps
		t.Fatalf("got %d rows, want 5", len(rows))
	}
	if len(rows[0]) != 9 || rows[0][0] != "jd" {
		t.Fatalf("bad header: %+v", rows[0])
	}
	if rows[2][2] != "Earth" || rows[2][3] != "1.496e+11" {
		t.Fatalf("bad Earth row: %+v", rows[2])
	}
}

func TestStreamStatesNDJSON(t *testing.T) {
	base := filepath.Join(t.TempDir(), "traj")
	streamTwoBatches(t, ExportConfig{Filename: base, AsNDJSON: true})
	f, err := os.Open(base + ".ndjson")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	lines := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines++
	}
	if lines != 4 {
		t.Fatalf("got %d NDJSON records, want 4", lines)
	}
}

func TestStreamStatesUseless(t *testing.T) {
	ch := make(chan []State)
	close(ch)
	if err := StreamStates(ExportConfig{}, time.Now(), ch); err == nil {
		t.Fatal("useless export config must be rejected")
	}
}
