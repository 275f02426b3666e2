package lambda

import (
	"context"
	"sync"

	"delivery-hooks/internal/config"
	"delivery-hooks/pkg/server"
)

// ContainerManager builds the service container once per Lambda execution
// environment and hands it to every invocation that environment serves
type ContainerManager struct {
	container *server.Container
	initErr   error
	initOnce  sync.Once
	loadFn    func() (*config.Config, error)
	buildFn   func(ctx context.Context, cfg *config.Config) (*server.Container, error)
}

// NewContainerManager returns a manager that loads the deployment-optimized
// configuration and real AWS clients on first use
func NewContainerManager() *ContainerManager {
	return &ContainerManager{
		loadFn:  config.GetOptimizedConfig,
		buildFn: server.NewContainer,
	}
}

// NewContainerManagerWith returns a manager using custom config loading and container construction
func NewContainerManagerWith(
	loadFn func() (*config.Config, error),
	buildFn func(ctx context.Context, cfg *config.Config) (*server.Container, error),
) *ContainerManager {
	return &ContainerManager{
		loadFn:  loadFn,
		buildFn: buildFn,
	}
}

// GetContainer returns the service container, initializing it on the first call.
// An initialization error is cached; the runtime recycles the environment instead.
func (cm *ContainerManager) GetContainer(ctx context.Context) (*server.Container, error) {
	cm.initOnce.Do(func() {
		cfg, err := cm.loadFn()
		if err != nil {
			cm.initErr = err
			return
		}

		cm.container, cm.initErr = cm.buildFn(ctx, cfg)
	})

	if cm.initErr != nil {
		return nil, cm.initErr
	}
	return cm.container, nil
}
