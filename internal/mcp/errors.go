package mcp

import "errors"

// Ошибки маршрутизации.
var (
	// ErrUnknownModel — запрошена незарегистрированная модель.
	ErrUnknownModel = errors.New("unknown model")
)
