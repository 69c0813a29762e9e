package contact

import "errors"

var ErrPersistence = errors.New("saving contact message failed")
