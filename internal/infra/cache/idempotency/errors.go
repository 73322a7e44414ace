package idempotency

import "errors"

var (
	// ErrCache возвращается при ошибке обращения к Redis
	ErrCache = errors.New("idempotency.cache: redis error")
)
