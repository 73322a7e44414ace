package events

import "errors"

var (
	// ErrMarshal возвращается при ошибке сериализации события
	ErrMarshal = errors.New("events: failed to marshal event")

	// ErrPublish возвращается при ошибке отправки в Kafka
	ErrPublish = errors.New("events: failed to publish event")
)
