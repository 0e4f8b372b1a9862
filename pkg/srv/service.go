package srv

import (
	"context"

	"github.com/sandevgo/footix/pkg/log"
)

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// StartServices starts every service in its own goroutine. A service that
// fails to start calls stop, which brings the whole process down through
// ShutdownServices.
func StartServices(ctx context.Context, services []Service, stop context.CancelFunc) {
	logger := log.FromCtx(ctx)
	for _, service := range services {
		go func(service Service) {
			if err := service.Start(ctx); err != nil {
				logger.Error().Err(err).Msgf("%T failed to start", service)
				stop()
			}
		}(service)
	}
}

// ShutdownServices waits for ctx to be done and shuts the services down in
// reverse start order.
func ShutdownServices(ctx context.Context, services []Service) {
	<-ctx.Done()
	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Shutdown(ctx); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msgf("%T failed to shutdown", services[i])
		}
	}
}
