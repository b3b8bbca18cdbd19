package plan

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"zenplan/internal/remind"
	"zenplan/internal/storage"
)

// 2025-02-07 was a Friday.
var baseDay = time.Date(2025, time.February, 7, 0, 0, 0, 0, time.Local)

func newTestService(t *testing.T) (*Service, *remind.RecordingScheduler, *remind.RecordingNotifier) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	db, err := storage.Open(ctx, filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	sched := remind.NewRecordingScheduler()
	notif := &remind.RecordingNotifier{}
	return NewService(db, sched, notif), sched, notif
}

func mustAdd(t *testing.T, svc *Service, in AddTaskInput) *storage.Task {
	t.Helper()
	task, err := svc.AddTask(context.Background(), in)
	if err != nil {
		t.Fatalf("AddTask %q: %v", in.Text, err)
	}
	return task
}

func strPtr(s string) *string { return &s }
