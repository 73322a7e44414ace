package create_booking

import (
	"context"

	createBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
	suggestAlternatives "github.com/m04kA/SMC-RoomBookingService/internal/usecase/suggest_alternatives"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// SuggestAlternativesUseCase подбирает альтернативы при конфликте
type SuggestAlternativesUseCase interface {
	Execute(ctx context.Context, req *suggestAlternatives.Request) (*suggestAlternatives.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
