package likes

import (
	"context"
	"errors"
	"fmt"
)

// ErrLikeFailed is the notice shown to a visitor when a like is rolled back.
var ErrLikeFailed = errors.New("failed to like the post, please try again")

type liker interface {
	Like(ctx context.Context, blogID string) (int, error)
}

// Button ties a Tracker to the like endpoint for one post.
type Button struct {
	blogID  string
	tracker *Tracker
	client  liker
}

func NewButton(blogID string, initialCount int, client *Client) *Button {
	return &Button{blogID: blogID, tracker: NewTracker(initialCount), client: client}
}

// Press likes the post once. It returns the count to display; on failure
// the optimistic increment is undone and the button may be pressed again.
func (b *Button) Press(ctx context.Context) (int, error) {
	count, err := b.tracker.Begin()
	if err != nil {
		return count, err
	}

	serverCount, err := b.client.Like(ctx, b.blogID)
	if err != nil {
		count, _ = b.tracker.Fail()
		return count, fmt.Errorf("%w: %v", ErrLikeFailed, err)
	}

	count, _ = b.tracker.Succeed(serverCount)
	return count, nil
}

func (b *Button) Count() int {
	return b.tracker.Count()
}

func (b *Button) Liked() bool {
	return b.tracker.Liked()
}
