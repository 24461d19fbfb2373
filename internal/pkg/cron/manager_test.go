package cron

import (
	"Instalens/internal/job"
	"testing"
)

func TestRegisterJobs_ValidSpecs(t *testing.T) {
	for _, spec := range []string{"@hourly", "@every 12h", "0 * * * *"} {
		mgr := NewCronManager(job.NewIngestJob(nil), spec)
		if err := mgr.RegisterJobs(); err != nil {
			t.Errorf("spec %q should be accepted: %v", spec, err)
		}
	}
}

func TestRegisterJobs_InvalidSpec(t *testing.T) {
	mgr := NewCronManager(job.NewIngestJob(nil), "every hour or so")
	if err := mgr.RegisterJobs(); err == nil {
		t.Error("expected error for invalid cron spec")
	}
}
