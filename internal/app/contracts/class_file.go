package contracts

import (
	"context"

	"github.com/OzanKutlar/Ders-Control/internal/pkg/dto/responses"
)

type ClassFileUsecase interface {
	ListJSONFiles(ctx context.Context) ([]string, error)
	LoadClassFile(ctx context.Context, name string) ([]responses.ProcessedClass, error)
}
