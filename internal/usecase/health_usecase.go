package usecase

import "context"

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

// Configurable is satisfied by components that can report missing credentials
type Configurable interface {
	IsConfigured() bool
}

type healthUsecase struct {
	components map[string]Configurable
}

// NewHealthUsecase reports "configured" or "missing" for each named component.
// It never dials out, so a slow relay cannot fail the health check.
func NewHealthUsecase(components map[string]Configurable) HealthUsecase {
	return &healthUsecase{components: components}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status": "ok",
	}
	for name, c := range u.components {
		if c != nil && c.IsConfigured() {
			status[name] = "configured"
		} else {
			status[name] = "missing"
		}
	}
	return status
}
