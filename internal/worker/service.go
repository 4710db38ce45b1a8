package worker

import (
	"context"
	"log"
	"sync"

	"songcrate/internal/stream"
)

// WorkerService manages background workers for the application
type WorkerService struct {
	consumer *stream.Consumer
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	running  bool
	mu       sync.RWMutex
}

// NewWorkerService creates a worker service around the feed consumer
func NewWorkerService(consumer *stream.Consumer) *WorkerService {
	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerService{
		consumer: consumer,
		ctx:      ctx,
		cancel:   cancel,
		running:  false,
	}
}

// Start starts all background workers
func (ws *WorkerService) Start() error {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if ws.running {
		return nil // Already running
	}

	log.Println("Starting background workers...")

	ws.wg.Add(1)
	go func() {
		defer ws.wg.Done()
		if err := ws.consumer.Run(ws.ctx); err != nil && ws.ctx.Err() == nil {
			log.Printf("Post feed consumer stopped: %v", err)
		}
	}()

	ws.running = true
	log.Println("Background workers started")
	return nil
}

// Stop stops all background workers and waits for them to finish
func (ws *WorkerService) Stop() {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if !ws.running {
		return
	}

	log.Println("Stopping background workers...")
	ws.cancel()
	ws.wg.Wait()
	ws.running = false
	log.Println("Background workers stopped")
}

// IsRunning reports whether the workers are running
func (ws *WorkerService) IsRunning() bool {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return ws.running
}
