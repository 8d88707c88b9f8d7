package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lattice-cms.io/lattice/ent"
	"lattice-cms.io/lattice/ent/auditlog"
	apperrors "lattice-cms.io/lattice/internal/pkg/errors"
	"lattice-cms.io/lattice/internal/pkg/logger"
	"lattice-cms.io/lattice/internal/processor"
	"lattice-cms.io/lattice/internal/service"
)

type auditLogView struct {
	ID           string                 `json:"id"`
	Action       string                 `json:"action"`
	ResourceType string                 `json:"resource_type"`
	ResourceID   string                 `json:"resource_id"`
	Actor        string                 `json:"actor"`
	Details      map[string]interface{} `json:"details,omitempty"`
	CreatedAt    string                 `json:"created_at"`
}

// ListAuditLogs handles GET /api/v1/audit-logs. Admin only; newest first.
func (s *Server) ListAuditLogs(c *gin.Context) {
	ctx := c.Request.Context()

	if !hasPermission(c, service.PermAuditView) {
		c.JSON(http.StatusForbidden, gin.H{
			"code":    apperrors.CodePermissionDenied,
			"message": "insufficient permissions",
		})
		return
	}

	start := intQuery(c, "start", 0)
	if start < 0 {
		start = 0
	}
	limit := intQuery(c, "limit", processor.DefaultPageLimit)

	query := s.client.AuditLog.Query()
	if resourceType := c.Query("resource_type"); resourceType != "" {
		query = query.Where(auditlog.ResourceTypeEQ(resourceType))
	}
	if actor := c.Query("actor"); actor != "" {
		query = query.Where(auditlog.ActorEQ(actor))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		logger.Error("Failed to count audit logs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"code": apperrors.CodeInternalError})
		return
	}

	query = query.Order(ent.Desc(auditlog.FieldCreatedAt)).Offset(start)
	if limit > 0 {
		query = query.Limit(limit)
	}
	items, err := query.All(ctx)
	if err != nil {
		logger.Error("Failed to list audit logs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"code": apperrors.CodeInternalError})
		return
	}

	results := make([]auditLogView, 0, len(items))
	for _, item := range items {
		results = append(results, auditLogView{
			ID:           item.ID,
			Action:       item.Action,
			ResourceType: item.ResourceType,
			ResourceID:   item.ResourceID,
			Actor:        item.Actor,
			Details:      item.Details,
			CreatedAt:    item.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"total":   total,
		"results": results,
	})
}
