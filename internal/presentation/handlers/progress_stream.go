package handlers

import (
	"context"
	"sync"
	"time"

	"repo-catalog/internal/application/dto"
	"repo-catalog/internal/domain/events"
	"repo-catalog/internal/domain/repo"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SSE event names
const (
	progressEvent  = "progress"
	completedEvent = "completed"
	heartbeatEvent = "heartbeat"
)

type streamMessage struct {
	event string
	data  any
}

// ProgressBroadcaster fans fetch progress out to Server-Sent Events clients
type ProgressBroadcaster struct {
	clients map[string]chan streamMessage
	mu      sync.RWMutex
	logger  *zap.Logger
}

// NewProgressBroadcaster creates a broadcaster and subscribes it to repositories.fetched
func NewProgressBroadcaster(dispatcher *events.Dispatcher, logger *zap.Logger) *ProgressBroadcaster {
	b := &ProgressBroadcaster{
		clients: make(map[string]chan streamMessage),
		logger:  logger.With(zap.String("component", "progress_stream")),
	}

	if dispatcher != nil {
		dispatcher.Register(repo.EventTypeRepositoriesFetched, b.handleFetched)
	}

	return b
}

// PublishProgress sends p to every connected client
func (b *ProgressBroadcaster) PublishProgress(p repo.Progress) {
	b.broadcast(streamMessage{
		event: progressEvent,
		data: dto.ProgressResponse{
			CurrentPage: p.CurrentPage,
			Total:       p.Total,
			Percentage:  p.Percentage,
		},
	})
}

// ClientCount returns the number of connected clients
func (b *ProgressBroadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

// StreamProgress handles GET /repos/progress/stream
// @Summary Stream fetch progress
// @Description Streams fetch progress and completion using Server-Sent Events
// @Tags Repositories
// @Produce text/event-stream
// @Success 200 {string} string "SSE stream"
// @Router /repos/progress/stream [get]
func (b *ProgressBroadcaster) StreamProgress(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	clientID := uuid.New().String()
	ch := b.addClient(clientID)
	defer b.removeClient(clientID)

	b.logger.Debug("progress client connected", zap.String("client_id", clientID))

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case msg := <-ch:
			c.SSEvent(msg.event, msg.data)
			c.Writer.Flush()
		case <-ticker.C:
			c.SSEvent(heartbeatEvent, "ping")
			c.Writer.Flush()
		}
	}
}

func (b *ProgressBroadcaster) handleFetched(_ context.Context, event events.DomainEvent) error {
	fetched, ok := event.(*repo.RepositoriesFetchedEvent)
	if !ok {
		return nil
	}

	b.broadcast(streamMessage{
		event: completedEvent,
		data: dto.FetchCompletedResponse{
			Org:          fetched.Org,
			Repositories: fetched.RepositoryCount,
			Pages:        fetched.Pages,
		},
	})
	return nil
}

func (b *ProgressBroadcaster) addClient(id string) chan streamMessage {
	ch := make(chan streamMessage, 100)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.clients[id] = ch
	return ch
}

func (b *ProgressBroadcaster) removeClient(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.clients, id)
}

func (b *ProgressBroadcaster) broadcast(msg streamMessage) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.clients {
		select {
		case ch <- msg:
		default:
			// Client is slow, skip
			b.logger.Debug("dropping progress message for slow client", zap.String("client_id", id))
		}
	}
}
