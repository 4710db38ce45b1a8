// Package stream consumes a websocket feed of raw post records and hands
// each one to the ingestion pipeline.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"songcrate/internal/catalog"
	"songcrate/internal/metadata"

	"github.com/gorilla/websocket"
)

// ingestService is the slice of the pipeline the consumer needs
type ingestService interface {
	Ingest(ctx context.Context, raw catalog.RawPost) (*catalog.Result, error)
}

// Consumer reads raw posts from a websocket feed. A single consumer
// goroutine processes posts in order, so two posts for the same URL are
// never ingested concurrently.
type Consumer struct {
	feedURL  string
	ingestor ingestService
	dialer   *websocket.Dialer
}

// NewConsumer creates a consumer for the given feed URL
func NewConsumer(feedURL string, ingestor ingestService) *Consumer {
	return &Consumer{
		feedURL:  feedURL,
		ingestor: ingestor,
		dialer:   websocket.DefaultDialer,
	}
}

// Run consumes the feed until ctx is cancelled, reconnecting after errors
func (c *Consumer) Run(ctx context.Context) error {
	log.Printf("Connecting to post feed: %s", c.feedURL)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			if err := c.connectAndConsume(ctx); err != nil {
				log.Printf("Post feed connection error: %v. Reconnecting in 10 seconds...", err)

				select {
				case <-time.After(10 * time.Second):
					continue
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
	}
}

// connectAndConsume handles a single connection to the feed
func (c *Consumer) connectAndConsume(ctx context.Context) error {
	conn, _, err := c.dialer.DialContext(ctx, c.feedURL, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to post feed: %w", err)
	}
	defer conn.Close()

	log.Println("Successfully connected to post feed")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			_, message, err := conn.ReadMessage()
			if err != nil {
				return fmt.Errorf("failed to read from post feed: %w", err)
			}
			c.handleMessage(ctx, message)
		}
	}
}

// handleMessage ingests one raw post message. Bad posts are logged and
// skipped so the feed keeps flowing.
func (c *Consumer) handleMessage(ctx context.Context, message []byte) {
	var raw catalog.RawPost
	if err := json.Unmarshal(message, &raw); err != nil {
		log.Printf("Skipping malformed post record: %v", err)
		return
	}
	if raw.Link == "" {
		return
	}

	result, err := c.ingestor.Ingest(ctx, raw)
	if err != nil {
		var resolutionErr *metadata.ResolutionError
		if errors.As(err, &resolutionErr) {
			log.Printf("Could not resolve %s, skipping: %v", raw.Link, err)
			return
		}
		log.Printf("Failed to ingest post for %s: %v", raw.Link, err)
		return
	}

	if result.NewLink {
		log.Printf("Ingested new link %s (song %v)", raw.Link, result.SongID)
	}
}
