package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"caffeine-editor/internal/logger"
)

const componentTimeout = 5 * time.Second

// Shutdownable is anything that must be stopped when the editor exits.
type Shutdownable interface {
	Shutdown()
}

// Func adapts a plain function to Shutdownable.
type Func func()

func (f Func) Shutdown() { f() }

type entry struct {
	name      string
	component Shutdownable
}

// Manager stops registered components in reverse registration order, once,
// either on request or when SIGINT/SIGTERM arrives.
type Manager struct {
	logger     logger.Logger
	mu         sync.Mutex
	components []entry
	once       sync.Once
	done       chan struct{}
	timeout    time.Duration
}

// NewManager creates a new shutdown manager.
func NewManager(log logger.Logger) *Manager {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Manager{
		logger:  log,
		done:    make(chan struct{}),
		timeout: componentTimeout,
	}
}

// Register adds component under name. Components stop in reverse order.
func (m *Manager) Register(name string, component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, entry{name: name, component: component})
}

// Listen shuts down on the first termination signal. It returns when ctx is
// cancelled or the manager has shut down.
func (m *Manager) Listen(ctx context.Context) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			m.logger.Info("Shutdown", "signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
		case <-ctx.Done():
		case <-m.done:
		}
	}()
}

// Shutdown is safe to call more than once; only the first call does work.
func (m *Manager) Shutdown() {
	m.once.Do(func() {
		m.mu.Lock()
		components := append([]entry(nil), m.components...)
		m.mu.Unlock()

		m.logger.Info("Shutdown", "shutdown sequence initiated", map[string]interface{}{
			"components": len(components),
		})

		for i := len(components) - 1; i >= 0; i-- {
			m.stop(components[i])
		}

		close(m.done)
		m.logger.Info("Shutdown", "shutdown sequence completed", nil)
	})
}

func (m *Manager) stop(e entry) {
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		e.component.Shutdown()
	}()

	select {
	case <-finished:
		m.logger.Debug("Shutdown", "component stopped", map[string]interface{}{
			"component": e.name,
		})
	case <-time.After(m.timeout):
		m.logger.Warning("Shutdown", "component shutdown timeout", map[string]interface{}{
			"component": e.name,
		})
	}
}

// Done is closed once Shutdown has finished.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}
