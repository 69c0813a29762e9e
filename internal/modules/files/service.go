package files

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"portfolio/internal/domain"
	"portfolio/internal/repository"
	"portfolio/internal/storage"
)

// MaxFileSize caps decoded upload payloads.
const MaxFileSize = 50 * 1024 * 1024 // 50 MB

// Service orchestrates the file-manager flow: decode the payload,
// write bytes to object storage, persist the metadata row.
type Service struct {
	repo  *repository.PortfolioFileRepository
	store storage.ObjectStore
	log   *logrus.Logger
}

func NewService(repo *repository.PortfolioFileRepository, store storage.ObjectStore, log *logrus.Logger) *Service {
	return &Service{repo: repo, store: store, log: log}
}

// Upload decodes the base64 payload, writes it to object storage under
// a key derived from the owner, file type and a random token, then
// persists the metadata row. The two writes are not atomic: a metadata
// failure leaves the stored object behind.
func (s *Service) Upload(ctx context.Context, userID int64, req UploadFileRequest) (*domain.PortfolioFile, error) {
	data, err := base64.StdEncoding.DecodeString(req.FileData)
	if err != nil {
		return nil, ErrInvalidFileData
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	key := fmt.Sprintf("portfolio-files/%d/%s/%s.%s", userID, req.FileType, uuid.NewString(), fileExtension(req.FileName))

	url, err := s.store.Put(ctx, key, req.MimeType, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.FileName
	}

	isPublic := 1
	if req.IsPublic != nil && !*req.IsPublic {
		isPublic = 0
	}

	file := &domain.PortfolioFile{
		UserID:      userID,
		FileName:    req.FileName,
		FileType:    req.FileType,
		MimeType:    req.MimeType,
		FileSize:    req.FileSize,
		StorageKey:  key,
		StorageURL:  url,
		Category:    req.Category,
		DisplayName: displayName,
		IsPublic:    isPublic,
	}

	if err := s.repo.Create(ctx, file); err != nil {
		s.log.WithError(err).WithField("storage_key", key).Error("file metadata insert failed after storage write")
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return file, nil
}

// List returns all files owned by the caller.
func (s *Service) List(ctx context.Context, userID int64) ([]domain.PortfolioFile, error) {
	return s.repo.ListByUserID(ctx, userID)
}

// Get returns (nil, nil) for a missing id. A private file owned by
// someone else fails with ErrPrivateFile; public files are readable by
// anyone.
func (s *Service) Get(ctx context.Context, id, userID int64) (*domain.PortfolioFile, error) {
	file, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if file == nil {
		return nil, nil
	}
	if file.UserID != userID && !file.Public() {
		return nil, ErrPrivateFile
	}
	return file, nil
}

// Delete removes the metadata row. The stored object stays in the
// bucket.
func (s *Service) Delete(ctx context.Context, id, userID int64) error {
	file, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if file == nil {
		return ErrFileNotFound
	}
	if file.UserID != userID {
		return ErrNotOwner
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// Update applies only the supplied fields and returns the fresh row.
func (s *Service) Update(ctx context.Context, id, userID int64, req UpdateFileRequest) (*domain.PortfolioFile, error) {
	file, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if file == nil {
		return nil, ErrFileNotFound
	}
	if file.UserID != userID {
		return nil, ErrNotOwner
	}

	fields := map[string]any{}
	if req.DisplayName != nil {
		fields["display_name"] = *req.DisplayName
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.IsPublic != nil {
		v := 0
		if *req.IsPublic {
			v = 1
		}
		fields["is_public"] = v
	}

	updated, err := s.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return updated, nil
}

// fileExtension takes the segment after the last dot, or "file" when
// the name carries no extension.
func fileExtension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return "file"
	}
	return name[idx+1:]
}
