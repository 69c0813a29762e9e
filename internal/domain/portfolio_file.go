package domain

import "time"

type FileType string

const (
	FileTypeCV          FileType = "cv"
	FileTypeCertificate FileType = "certificate"
	FileTypeDocument    FileType = "document"
	FileTypeImage       FileType = "image"
)

// ValidFileType reports whether t is one of the accepted file-type tags.
func ValidFileType(t string) bool {
	switch FileType(t) {
	case FileTypeCV, FileTypeCertificate, FileTypeDocument, FileTypeImage:
		return true
	}
	return false
}

// PortfolioFile is the metadata row for one uploaded document. The
// bytes live in object storage under StorageKey; this table only holds
// references. Boolean-like columns are stored as 0/1 ints at the
// storage boundary.
type PortfolioFile struct {
	ID          int64     `gorm:"column:id;primaryKey" json:"id"`
	UserID      int64     `gorm:"column:user_id;index" json:"user_id"`
	FileName    string    `gorm:"column:file_name;size:255" json:"file_name"`
	FileType    string    `gorm:"column:file_type;size:50" json:"file_type"`
	MimeType    string    `gorm:"column:mime_type;size:100" json:"mime_type"`
	FileSize    int64     `gorm:"column:file_size" json:"file_size"`
	StorageKey  string    `gorm:"column:storage_key;size:500;uniqueIndex" json:"storage_key"`
	StorageURL  string    `gorm:"column:storage_url" json:"storage_url"`
	Category    string    `gorm:"column:category;size:100" json:"category,omitempty"`
	DisplayName string    `gorm:"column:display_name;size:255" json:"display_name"`
	// No default tag: gorm would treat an explicit 0 as unset and write
	// the default, turning private uploads public. The service always
	// sets the value.
	IsPublic    int       `gorm:"column:is_public" json:"is_public"`
	UploadedAt  time.Time `gorm:"column:uploaded_at;autoCreateTime" json:"uploaded_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PortfolioFile) TableName() string { return "portfolio_files" }

func (f *PortfolioFile) Public() bool { return f.IsPublic != 0 }
