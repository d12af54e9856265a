package inbox

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/starford/hrpaudit/internal/models"
	"github.com/starford/hrpaudit/internal/projectservice"
	"github.com/starford/hrpaudit/internal/store"
	"github.com/starford/hrpaudit/internal/testutil"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// inboxEnv returns an inbox directory, the inbox and the service it feeds.
// When withProject is set the service already has an empty project.
func inboxEnv(t *testing.T, withProject bool) (string, *Inbox, *projectservice.Service) {
	t.Helper()
	dir, files := testutil.TestWorkspace(t)
	svc := projectservice.New(testutil.TestStore(t), "", quietLogger())
	if withProject {
		if _, err := svc.Create(context.Background(), models.ProjectMeta{SupplierName: "Acme"}, false); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	return filepath.Join(dir, "inbox"), New(files, svc, quietLogger()), svc
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestKind(t *testing.T) {
	tests := map[string]string{
		"master.json":   store.ImportMaster,
		"master.YAML":   store.ImportMaster,
		"checklist.yml": store.ImportMaster,
		"answers.CSV":   store.ImportResponses,
		"notes.txt":     "",
		"noext":         "",
	}
	for name, want := range tests {
		if got := Kind(name); got != want {
			t.Errorf("Kind(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestSync_ImportsAndMoves(t *testing.T) {
	dir, in, svc := inboxEnv(t, true)
	writeFile(t, dir, "master.json", testutil.MasterJSON)
	writeFile(t, dir, "responses.csv", testutil.ResponsesCSV)
	writeFile(t, dir, "readme.txt", "ignored")

	var events []string
	n, err := in.Sync(context.Background(), func(kind, path string) {
		events = append(events, kind+":"+path)
	})
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if n != 2 {
		t.Fatalf("imported = %d, want 2", n)
	}
	if len(events) != 2 || events[0] != "imported:master.json" || events[1] != "imported:responses.csv" {
		t.Errorf("events = %v", events)
	}
	for _, name := range []string{"master.json", "responses.csv"} {
		if exists(filepath.Join(dir, name)) {
			t.Errorf("%s still in inbox", name)
		}
		if !exists(filepath.Join(dir, ProcessedDir, name)) {
			t.Errorf("%s not moved to processed", name)
		}
	}
	if !exists(filepath.Join(dir, "readme.txt")) {
		t.Error("unrelated file was moved")
	}

	reqs, _, err := svc.Requirements(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if len(reqs) != 4 {
		t.Fatalf("requirements = %d, want 4", len(reqs))
	}
	if reqs[1].Complies != models.ComplianceNOK {
		t.Errorf("complies = %q, want %q", reqs[1].Complies, models.ComplianceNOK)
	}
}

func TestSync_SkipsDuplicates(t *testing.T) {
	dir, in, _ := inboxEnv(t, true)
	writeFile(t, dir, "master.json", testutil.MasterJSON)
	if _, err := in.Sync(context.Background(), nil); err != nil {
		t.Fatal(err)
	}

	writeFile(t, dir, "master-copy.json", testutil.MasterJSON)
	var events []string
	n, err := in.Sync(context.Background(), func(kind, path string) {
		events = append(events, kind+":"+path)
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("imported = %d, want 0", n)
	}
	if len(events) != 1 || events[0] != "duplicate:master-copy.json" {
		t.Errorf("events = %v", events)
	}
	if !exists(filepath.Join(dir, ProcessedDir, "master-copy.json")) {
		t.Error("duplicate not moved to processed")
	}
}

func TestSync_RejectsInvalidMaster(t *testing.T) {
	dir, in, _ := inboxEnv(t, true)
	writeFile(t, dir, "broken.json", "{not json")

	var events []string
	if _, err := in.Sync(context.Background(), func(kind, path string) {
		events = append(events, kind+":"+path)
	}); err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 || events[0] != "failed:broken.json" {
		t.Errorf("events = %v", events)
	}
	if !exists(filepath.Join(dir, FailedDir, "broken.json")) {
		t.Error("invalid file not moved to failed")
	}
}

func TestSync_NoProjectLeavesFiles(t *testing.T) {
	dir, in, _ := inboxEnv(t, false)
	writeFile(t, dir, "master.json", testutil.MasterJSON)

	n, err := in.Sync(context.Background(), nil)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if n != 0 {
		t.Errorf("imported = %d, want 0", n)
	}
	if !exists(filepath.Join(dir, "master.json")) {
		t.Error("file moved without an active project")
	}
}

// eventually polls fn every tick until it returns true or timeout elapses.
func eventually(t *testing.T, timeout, tick time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(tick)
	}
	t.Error(msg)
}

func TestWatch_ImportsNewFile(t *testing.T) {
	dir, in, svc := inboxEnv(t, true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var events []string
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = in.Watch(ctx, func(kind, path string) {
			mu.Lock()
			events = append(events, kind+":"+path)
			mu.Unlock()
		})
	}()

	time.Sleep(100 * time.Millisecond)
	writeFile(t, dir, "master.yaml", `
- chapter_level: "4.1"
  requirement_level: "1. CONSOLIDATED"
  requirement: Operating licence is valid
`)

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		reqs, _, err := svc.Requirements(context.Background(), "")
		return err == nil && len(reqs) == 1
	}, "master file not imported by watcher")

	eventually(t, 2*time.Second, 50*time.Millisecond, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(events) == 1 && events[0] == "imported:master.yaml"
	}, "imported event not delivered")

	if !exists(filepath.Join(dir, ProcessedDir, "master.yaml")) {
		t.Error("watched file not moved to processed")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatch_BusyFileDoesNotDelayOthers(t *testing.T) {
	dir, in, svc := inboxEnv(t, true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = in.Watch(ctx, nil)
	}()
	time.Sleep(100 * time.Millisecond)

	// Keep rewriting one file faster than it can settle.
	stopBusy := make(chan struct{})
	busyDone := make(chan struct{})
	go func() {
		defer close(busyDone)
		busy := filepath.Join(dir, "busy.csv")
		for {
			select {
			case <-stopBusy:
				return
			case <-time.After(settleDelay / 3):
			}
			_ = os.WriteFile(busy, []byte("chapter_level,requirement\n"), 0o644)
		}
	}()

	time.Sleep(2 * settleDelay)
	writeFile(t, dir, "master.yaml", `
- chapter_level: "4.1"
  requirement_level: "1. CONSOLIDATED"
  requirement: Operating licence is valid
`)

	eventually(t, 6*settleDelay, 50*time.Millisecond, func() bool {
		reqs, _, err := svc.Requirements(context.Background(), "")
		return err == nil && len(reqs) == 1
	}, "settled file held back by a busy one")

	if !exists(filepath.Join(dir, "busy.csv")) {
		t.Error("busy file imported before it settled")
	}

	close(stopBusy)
	<-busyDone
	cancel()
	<-done
}
