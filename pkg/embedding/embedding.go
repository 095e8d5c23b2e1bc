package embedding

import "context"

// Embedder — минимальный порт модели векторных представлений текста.
// Прячет конкретного провайдера от доменного кода: скореру всё равно,
// откуда берётся вектор.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
