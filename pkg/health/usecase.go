package health

import "context"

// Checker — проверка одной зависимости сервиса.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// ReadinessUseCase — агрегированная готовность сервиса.
type ReadinessUseCase interface {
	Ready(ctx context.Context) error
}

type service struct {
	checkers []Checker
}

// NewService агрегирует проверки зависимостей.
func NewService(checkers ...Checker) ReadinessUseCase {
	return &service{checkers: checkers}
}

func (s *service) Ready(ctx context.Context) error {
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			return err
		}
	}
	return nil
}
