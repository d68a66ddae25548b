// Package service defines interfaces for external collaborators of the domain.
package service

import (
	"context"

	"github.com/google/uuid"
)

// SQLImportRequest carries the connection settings and query forwarded to the
// external SQL bridge. The bridge owns the actual database connectivity.
type SQLImportRequest struct {
	Server      string
	Database    string
	Username    string
	Password    string
	Query       string
	TargetStore uuid.UUID
}

// SQLImporter delegates a bulk import to the external SQL bridge endpoint and
// reports how many records the bridge imported.
type SQLImporter interface {
	Import(ctx context.Context, req *SQLImportRequest) (int, error)
}
