package job

import (
	"Instalens/internal/pkg/logger"
	"Instalens/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// IngestJob 周期性拉取 Instagram 数据并入库
type IngestJob struct {
	ingestSvc service.IngestService
}

func NewIngestJob(ingestSvc service.IngestService) *IngestJob {
	return &IngestJob{
		ingestSvc: ingestSvc,
	}
}

// Run 采集失败只记录日志，不影响请求处理
func (s *IngestJob) Run() {
	traceID := "job-ingest-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	log.InfoContext(ctx, "fetching instagram data...")

	stored, err := s.ingestSvc.Ingest(ctx)
	if err != nil {
		log.ErrorContext(ctx, "ingest cycle aborted", "err", err)
		return
	}

	log.InfoContext(ctx, "ingest cycle finished", "stored", stored)
}
