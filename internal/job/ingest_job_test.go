package job

import (
	"context"
	"errors"
	"testing"
)

type fakeIngestService struct {
	stored int
	err    error
	calls  int
}

func (f *fakeIngestService) Ingest(ctx context.Context) (int, error) {
	f.calls++
	return f.stored, f.err
}

func TestIngestJob_Run(t *testing.T) {
	svc := &fakeIngestService{stored: 3}
	NewIngestJob(svc).Run()

	if svc.calls != 1 {
		t.Errorf("expected 1 ingest invocation, got %d", svc.calls)
	}
}

func TestIngestJob_RunSwallowsError(t *testing.T) {
	svc := &fakeIngestService{err: errors.New("instagram media fetch failed: 500 Internal Server Error")}

	// 采集失败不得 panic，错误止步于任务内部
	NewIngestJob(svc).Run()

	if svc.calls != 1 {
		t.Errorf("expected 1 ingest invocation, got %d", svc.calls)
	}
}
