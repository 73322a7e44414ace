package mirror

import "errors"

var (
	// ErrEnsureIndexes возвращается при ошибке создания индексов
	ErrEnsureIndexes = errors.New("mirror.repository: failed to ensure indexes")

	// ErrWrite возвращается при ошибке записи в коллекцию
	ErrWrite = errors.New("mirror.repository: failed to write document")

	// ErrRead возвращается при ошибке чтения из коллекции
	ErrRead = errors.New("mirror.repository: failed to read documents")
)
