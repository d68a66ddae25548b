package impl

import (
	"context"
	"fmt"
	"io"

	"stocklens/config"
	domainerrors "stocklens/internal/domain/errors"
	"stocklens/internal/domain/repository"
	"stocklens/internal/domain/service"
	"stocklens/internal/importer"
	"stocklens/internal/usecase"

	"github.com/google/uuid"
)

// ErrNoStoreAvailable is returned when an import has no store to target.
var ErrNoStoreAvailable error = domainerrors.ErrNoStoreAvailable

type importService struct {
	mapper            *importer.Mapper
	history           *importer.History
	productRepo       repository.ProductRepository
	storeRepo         repository.StoreRepository
	sqlImporter       service.SQLImporter
	defaultCategoryID uuid.UUID
}

// NewImportService creates a new import service instance. The history handle
// is owned by the caller and shared with whoever renders it.
func NewImportService(
	cfg *config.Config,
	history *importer.History,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	sqlImporter service.SQLImporter,
) usecase.ImportUsecase {
	// An unparseable placeholder category falls back to the nil UUID.
	defaultCategoryID, err := uuid.Parse(cfg.Import.DefaultCategoryID)
	if err != nil {
		defaultCategoryID = uuid.Nil
	}

	return &importService{
		mapper:            importer.NewMapper(cfg.Import.DefaultReorderLevel),
		history:           history,
		productRepo:       productRepo,
		storeRepo:         storeRepo,
		sqlImporter:       sqlImporter,
		defaultCategoryID: defaultCategoryID,
	}
}

// ImportCSV maps the document to drafts and inserts them one by one. The
// first failed insert aborts the rest of the batch; rows already inserted
// stay in place.
func (s *importService) ImportCSV(ctx context.Context, filename string, r io.Reader, storeID uuid.UUID) (*usecase.ImportResult, error) {
	drafts, skipped, err := s.mapper.Parse(r)
	if err != nil {
		return nil, domainerrors.ErrImportFileInvalid.WithDetails(err.Error())
	}

	storeID, err = s.resolveStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	var inserted int
	for _, draft := range drafts {
		product := draft.ToEntity(storeID, s.defaultCategoryID)
		if err := s.productRepo.CreateProduct(ctx, product); err != nil {
			return nil, &importer.AbortError{Inserted: inserted, Err: err}
		}
		inserted++
	}

	entry := s.history.Record(importer.SourceCSV, filename, inserted)

	return &usecase.ImportResult{
		Imported: inserted,
		Skipped:  skipped,
		Entry:    entry,
	}, nil
}

// ImportSQL hands the whole batch to the external SQL bridge.
func (s *importService) ImportSQL(ctx context.Context, input *usecase.SQLImportInput) (*usecase.ImportResult, error) {
	target, err := s.resolveStore(ctx, input.TargetStore)
	if err != nil {
		return nil, err
	}

	records, err := s.sqlImporter.Import(ctx, &service.SQLImportRequest{
		Server:      input.Server,
		Database:    input.Database,
		Username:    input.Username,
		Password:    input.Password,
		Query:       input.Query,
		TargetStore: target,
	})
	if err != nil {
		return nil, fmt.Errorf("sql bridge import failed: %w", err)
	}

	entry := s.history.Record(importer.SourceSQL, input.Database, records)

	return &usecase.ImportResult{
		Imported: records,
		Entry:    entry,
	}, nil
}

// History lists completed imports of this session, newest first.
func (s *importService) History(_ context.Context) ([]importer.Entry, error) {
	return s.history.Entries(), nil
}

// resolveStore keeps an explicit selection, otherwise falls back to the
// first available store.
func (s *importService) resolveStore(ctx context.Context, storeID uuid.UUID) (uuid.UUID, error) {
	if storeID != uuid.Nil {
		return storeID, nil
	}

	stores, err := s.storeRepo.ListStores(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to list stores: %w", err)
	}
	if len(stores) == 0 {
		return uuid.Nil, ErrNoStoreAvailable
	}

	return stores[0].ID, nil
}
