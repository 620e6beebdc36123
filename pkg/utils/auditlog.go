package utils

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/dormhub/dormhub-go/internal/domain/audit"
	"github.com/dormhub/dormhub-go/internal/repository"
	"github.com/gin-gonic/gin"
)

// LogAuditWithConsole records an audit entry in the background. Audit writes
// are best-effort: a failure is printed and swallowed, never returned.
var LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repository.AuditRepo) {
	// Extract request data synchronously to avoid race conditions
	var userID uint
	var ip, ua string
	if c != nil {
		userID, _ = GetUserIDFromContext(c)
		ip = c.ClientIP()
		ua = c.GetHeader("User-Agent")
	}

	go func() {
		if err := LogAudit(userID, ip, ua, action, resourceType, resourceID, oldData, newData, msg, repos); err != nil {
			fmt.Printf("[LogAudit] error: %v\n", err)
		}
	}()
}

var LogAudit = func(
	userID uint,
	ip string,
	ua string,
	action string,
	resourceType string,
	resourceID string,
	before any,
	after any,
	description string,
	repos repository.AuditRepo,
) error {
	var oldData, newData []byte
	var err error

	if before != nil {
		oldData, err = json.Marshal(before)
		if err != nil {
			log.Printf("Audit marshal oldData error: %v", err)
		}
	}
	if after != nil {
		newData, err = json.Marshal(after)
		if err != nil {
			log.Printf("Audit marshal newData error: %v", err)
		}
	}

	auditLog := &audit.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      oldData,
		NewData:      newData,
		IPAddress:    ip,
		UserAgent:    ua,
		Description:  description,
	}

	return repos.CreateAuditLog(auditLog)
}
