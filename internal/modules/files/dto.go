package files

import (
	"time"

	"portfolio/internal/domain"
)

// UploadFileRequest carries the file bytes base64-encoded in the JSON
// body; the transport is not assumed to handle binary.
type UploadFileRequest struct {
	FileName    string `json:"file_name" validate:"required"`
	FileType    string `json:"file_type" validate:"required,oneof=cv certificate document image"`
	MimeType    string `json:"mime_type" validate:"required"`
	FileSize    int64  `json:"file_size" validate:"required,gt=0"`
	Category    string `json:"category,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	IsPublic    *bool  `json:"is_public,omitempty"` // defaults to true
	FileData    string `json:"file_data" validate:"required"`
}

// UpdateFileRequest applies only the supplied fields.
type UpdateFileRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	Category    *string `json:"category,omitempty"`
	IsPublic    *bool   `json:"is_public,omitempty"`
}

// FileResponse exposes visibility as a boolean; the 0/1 representation
// stays at the storage boundary.
type FileResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	FileName    string    `json:"file_name"`
	FileType    string    `json:"file_type"`
	MimeType    string    `json:"mime_type"`
	FileSize    int64     `json:"file_size"`
	StorageKey  string    `json:"storage_key"`
	StorageURL  string    `json:"storage_url"`
	Category    string    `json:"category,omitempty"`
	DisplayName string    `json:"display_name"`
	IsPublic    bool      `json:"is_public"`
	UploadedAt  time.Time `json:"uploaded_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toFileResponse(f *domain.PortfolioFile) FileResponse {
	return FileResponse{
		ID:          f.ID,
		UserID:      f.UserID,
		FileName:    f.FileName,
		FileType:    f.FileType,
		MimeType:    f.MimeType,
		FileSize:    f.FileSize,
		StorageKey:  f.StorageKey,
		StorageURL:  f.StorageURL,
		Category:    f.Category,
		DisplayName: f.DisplayName,
		IsPublic:    f.Public(),
		UploadedAt:  f.UploadedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func toFileResponses(files []domain.PortfolioFile) []FileResponse {
	out := make([]FileResponse, 0, len(files))
	for i := range files {
		out = append(out, toFileResponse(&files[i]))
	}
	return out
}
