package repositories

import "errors"

// ErrNotFound is returned by every Find* method when no row matches. Services
// translate it into their own not-found errors so handlers never see GORM.
var ErrNotFound = errors.New("record not found")
