package localcache

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("localcache: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("localcache: failed to execute query")

	// ErrCorrupted сохраненный снимок не декодируется
	ErrCorrupted = errors.New("localcache: stored snapshot is corrupted")
)
