package store

import "errors"

// ErrNotFound — запись не найдена или уже выметена.
var ErrNotFound = errors.New("generation not found")
