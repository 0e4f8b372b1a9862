package srv

import "context"

type cleanupService struct {
	cleanup func() error
}

func (c *cleanupService) Start(ctx context.Context) error {
	return nil
}

func (c *cleanupService) Shutdown(ctx context.Context) error {
	if c.cleanup != nil {
		return c.cleanup()
	}
	return nil
}

// NewCleanup wraps fn as a Service that only does work on shutdown, such as
// closing a database handle.
func NewCleanup(fn func() error) Service {
	return &cleanupService{cleanup: fn}
}
