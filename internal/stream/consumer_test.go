package stream

import (
	"context"
	"testing"

	"songcrate/internal/catalog"
	"songcrate/internal/metadata"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// recordingIngestor records the raw posts handed to it
type recordingIngestor struct {
	posts []catalog.RawPost
	err   error
}

func (r *recordingIngestor) Ingest(ctx context.Context, raw catalog.RawPost) (*catalog.Result, error) {
	r.posts = append(r.posts, raw)
	if r.err != nil {
		return nil, r.err
	}
	return &catalog.Result{LinkID: uuid.New(), PostID: uuid.New(), NewLink: true}, nil
}

func TestHandleMessage(t *testing.T) {
	ingestor := &recordingIngestor{}
	consumer := NewConsumer("ws://feed.example/posts", ingestor)

	message := []byte(`{
		"link": "https://youtu.be/abc123",
		"created_time": "2025-06-10T09:30:00Z",
		"message": "great song",
		"id": "post-1",
		"reactions": {"summary": {"total_count": 12}},
		"permalink_url": "https://social.example/posts/post-1"
	}`)
	consumer.handleMessage(context.Background(), message)

	assert.Len(t, ingestor.posts, 1)
	assert.Equal(t, "https://youtu.be/abc123", ingestor.posts[0].Link)
	assert.Equal(t, 12, ingestor.posts[0].Reactions.Summary.TotalCount)
}

func TestHandleMessage_SkipsMalformedRecords(t *testing.T) {
	ingestor := &recordingIngestor{}
	consumer := NewConsumer("ws://feed.example/posts", ingestor)

	consumer.handleMessage(context.Background(), []byte(`not json`))
	consumer.handleMessage(context.Background(), []byte(`{"id": "post-1"}`))

	assert.Empty(t, ingestor.posts)
}

func TestHandleMessage_ResolutionFailureDoesNotStopFeed(t *testing.T) {
	ingestor := &recordingIngestor{
		err: &metadata.ResolutionError{URL: "https://youtu.be/abc123"},
	}
	consumer := NewConsumer("ws://feed.example/posts", ingestor)

	consumer.handleMessage(context.Background(), []byte(`{"link": "https://youtu.be/abc123"}`))
	consumer.handleMessage(context.Background(), []byte(`{"link": "https://youtu.be/def456"}`))

	assert.Len(t, ingestor.posts, 2)
}
