package cron

import (
	"Instalens/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine     *cron.Cron
	ingestSpec string
	ingestJob  *job.IngestJob
}

// NewCronManager ingestSpec 来自配置，如 "@hourly"、"@every 12h"
func NewCronManager(ingestJob *job.IngestJob, ingestSpec string) *Manager {
	return &Manager{
		engine:     cron.New(),
		ingestSpec: ingestSpec,
		ingestJob:  ingestJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.ingestSpec, s.ingestJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
