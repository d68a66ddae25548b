package usecase

import (
	"context"
	"io"

	"stocklens/internal/importer"

	"github.com/google/uuid"
)

// SQLImportInput carries the connection details forwarded to the external
// SQL bridge. The password is never logged.
type SQLImportInput struct {
	Server      string    `json:"server" validate:"required"`
	Database    string    `json:"database" validate:"required"`
	Username    string    `json:"username" validate:"required"`
	Password    string    `json:"password" validate:"required"`
	Query       string    `json:"query" validate:"required"`
	TargetStore uuid.UUID `json:"target_store,omitempty"`
}

// ImportResult summarizes one completed import batch.
type ImportResult struct {
	Imported int            `json:"imported"`
	Skipped  int            `json:"skipped"`
	Entry    importer.Entry `json:"entry"`
}

// ImportUsecase defines the interface for product import use cases
type ImportUsecase interface {
	// ImportCSV maps the CSV document to product drafts and persists them
	// one by one against the given store. A zero storeID falls back to the
	// first available store. The first failed insert aborts the batch;
	// already inserted rows stay.
	ImportCSV(ctx context.Context, filename string, r io.Reader, storeID uuid.UUID) (*ImportResult, error)
	// ImportSQL delegates the whole import to the external SQL bridge.
	ImportSQL(ctx context.Context, input *SQLImportInput) (*ImportResult, error)
	// History lists completed imports of this session, newest first.
	History(ctx context.Context) ([]importer.Entry, error)
}
