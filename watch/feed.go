package watch

import (
	"context"
	"errors"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/maxima"
)

// ErrClosed is returned when subscribing to a closed feed.
var ErrClosed = errors.New("watch: feed is closed")

// Feed publishes changes of a maxima.Function to subscribers.
type Feed[A, V any] struct {
	cast *caster.Caster // broadcaster for committed changes
}

// NewFeed creates a feed. Cancelling ctx closes the feed.
func NewFeed[A, V any](ctx context.Context) *Feed[A, V] {
	return &Feed[A, V]{cast: caster.New(ctx)}
}

// Hook returns a commit hook, to be set as maxima.Config.OnCommit, which
// publishes every committed change.
func (fd *Feed[A, V]) Hook() func(maxima.Change[A, V]) {
	return func(c maxima.Change[A, V]) {
		if !fd.cast.Pub(c) {
			tracer().Debugf("watch: dropping %s change, feed is closed", c.Kind)
		}
	}
}

// Subscribe registers a new subscriber. The returned channel delivers
// changes in commit order and is closed when the feed is closed, ctx is done,
// or cancel is called. capacity is the channel's buffer size.
//
// Subscribers must call cancel when they are no longer interested.
func (fd *Feed[A, V]) Subscribe(ctx context.Context, capacity uint) (<-chan maxima.Change[A, V], func(), error) {
	if fd.closed() {
		return nil, func() {}, ErrClosed
	}
	sub, _ := fd.cast.Sub(ctx, capacity)
	if fd.closed() { // Sub hands out a closed channel once the caster is done
		return nil, func() {}, ErrClosed
	}
	out := make(chan maxima.Change[A, V], capacity)
	stop := make(chan struct{})
	go func() {
		defer close(out)
		stopped := false
		for m := range sub { // drain until the broadcaster lets go of sub
			if stopped {
				continue
			}
			select {
			case out <- m.(maxima.Change[A, V]):
			case <-stop:
				stopped = true
			}
		}
	}()
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(stop)
			fd.cast.Unsub(sub)
		})
	}
	return out, cancel, nil
}

func (fd *Feed[A, V]) closed() bool {
	select {
	case <-fd.cast.Done():
		return true
	default:
		return false
	}
}

// Close closes the feed and all subscriber channels. It returns after the
// subscriber channels have been closed.
func (fd *Feed[A, V]) Close() {
	fd.cast.Close()
	<-fd.cast.Done()
}
