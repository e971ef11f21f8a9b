package usecase

import "context"

type HealthUsecase interface {
	Check(ctx context.Context) bool
}

type healthUsecase struct{}

func NewHealthUsecase() HealthUsecase {
	return &healthUsecase{}
}

// Check reports liveness. There is no dependency worth probing: both
// endpoints degrade gracefully when their upstreams are unconfigured.
func (u *healthUsecase) Check(ctx context.Context) bool {
	return true
}
