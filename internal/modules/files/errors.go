package files

import "errors"

var (
	ErrFileNotFound    = errors.New("file not found")
	ErrNotOwner        = errors.New("you do not own this file")
	ErrPrivateFile     = errors.New("file is private")
	ErrInvalidFileData = errors.New("file data is not valid base64")
	ErrFileTooLarge    = errors.New("file exceeds maximum allowed size")
	ErrStorageWrite    = errors.New("object storage write failed")
	ErrPersistence     = errors.New("saving file metadata failed")
)
