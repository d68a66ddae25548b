// Package sqlbridge talks to the external SQL import endpoint. The bridge
// owns the actual SQL Server connectivity; this client only ships the
// connection settings and reads back the import count.
package sqlbridge

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"stocklens/config"
	domainerrors "stocklens/internal/domain/errors"
	"stocklens/internal/domain/service"

	"github.com/google/uuid"
	"github.com/guonaihong/gout"
)

const defaultTimeout = 2 * time.Minute

type importRequest struct {
	Server      string `json:"server"`
	Database    string `json:"database"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	Query       string `json:"query"`
	TargetStore string `json:"targetStore,omitempty"`
}

type importResponse struct {
	RecordsImported int    `json:"recordsImported"`
	Error           string `json:"error,omitempty"`
}

type client struct {
	endpoint string
	timeout  time.Duration
	logger   *slog.Logger
}

// New creates the SQL bridge client from configuration. A missing bridge
// section is tolerated; the client then rejects imports at call time.
func New(cfg *config.Config, logger *slog.Logger) service.SQLImporter {
	c := &client{
		timeout: defaultTimeout,
		logger:  logger,
	}
	if cfg.SQLBridge != nil {
		c.endpoint = cfg.SQLBridge.Endpoint
		if cfg.SQLBridge.Timeout > 0 {
			c.timeout = cfg.SQLBridge.Timeout
		}
	}

	return c
}

// Import forwards the request to the bridge and returns the imported record
// count. Credentials are sent in the body and never logged.
func (c *client) Import(ctx context.Context, req *service.SQLImportRequest) (int, error) {
	if c.endpoint == "" {
		return 0, domainerrors.ErrSQLBridgeUnavailable.WithDetails("sql bridge endpoint is not configured")
	}

	payload := importRequest{
		Server:   req.Server,
		Database: req.Database,
		Username: req.Username,
		Password: req.Password,
		Query:    req.Query,
	}
	if req.TargetStore != uuid.Nil {
		payload.TargetStore = req.TargetStore.String()
	}

	var (
		resp importResponse
		code int
	)
	err := gout.POST(c.endpoint).
		WithContext(ctx).
		SetTimeout(c.timeout).
		SetJSON(payload).
		BindJSON(&resp).
		Code(&code).
		Do()
	if err != nil {
		return 0, domainerrors.ErrSQLBridgeUnavailable.WithDetails(err.Error())
	}
	if code != http.StatusOK {
		details := fmt.Sprintf("sql bridge returned %d", code)
		if resp.Error != "" {
			details = fmt.Sprintf("%s: %s", details, resp.Error)
		}

		return 0, domainerrors.ErrSQLBridgeUnavailable.WithDetails(details)
	}

	c.logger.LogAttrs(ctx, slog.LevelInfo, "sql bridge import finished",
		slog.String("server", req.Server),
		slog.String("database", req.Database),
		slog.Int("recordsImported", resp.RecordsImported),
	)

	return resp.RecordsImported, nil
}
