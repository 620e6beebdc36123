package application

import (
	"log"
	"time"

	"github.com/dormhub/dormhub-go/internal/domain/audit"
	"github.com/dormhub/dormhub-go/internal/repository"
)

// AuditService exposes the audit trail to administrators and prunes
// entries past the retention window.
type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
	}
}

func (s *AuditService) ListLogs(params repository.AuditQueryParams) ([]audit.AuditLog, error) {
	if params.Limit <= 0 || params.Limit > 500 {
		params.Limit = 100
	}
	return s.Repos.Audit.GetAuditLogs(params)
}

// StartRetentionLoop sweeps expired audit rows once a day. The sweep is
// best-effort; a failure is logged and retried on the next tick.
func (s *AuditService) StartRetentionLoop(retentionDays int) {
	if retentionDays <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			if err := s.Repos.Audit.DeleteOldAuditLogs(retentionDays); err != nil {
				log.Printf("[Audit] retention sweep failed: %v", err)
			}
			<-ticker.C
		}
	}()
}
