package ffmpeg

import "sync"

// Notifier receives progress updates from an in-flight download. Updates
// are emitted synchronously from the download loop, so implementations must
// not block; delivery is best-effort and lost updates are not retried.
type Notifier interface {
	Notify(DownloadProgress)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(DownloadProgress)

// Notify calls f(p).
func (f NotifierFunc) Notify(p DownloadProgress) {
	f(p)
}

// Publisher is a channel-backed Notifier for hosts that consume progress
// from their own goroutine. The buffer is bounded and a full buffer drops
// the update rather than blocking the download, so a slow or absent
// subscriber never slows the transfer.
type Publisher struct {
	ch        chan DownloadProgress
	closeOnce sync.Once
}

// DefaultPublisherBuffer is the update buffer size used when NewPublisher
// is given a non-positive value.
const DefaultPublisherBuffer = 64

// NewPublisher creates a Publisher with the given buffer size.
func NewPublisher(buffer int) *Publisher {
	if buffer <= 0 {
		buffer = DefaultPublisherBuffer
	}
	return &Publisher{ch: make(chan DownloadProgress, buffer)}
}

// Notify enqueues an update, dropping it if the buffer is full.
func (p *Publisher) Notify(progress DownloadProgress) {
	select {
	case p.ch <- progress:
	default:
	}
}

// Updates returns the subscriber side of the publisher. The channel is
// closed by Close.
func (p *Publisher) Updates() <-chan DownloadProgress {
	return p.ch
}

// Close closes the update channel. Call it only after the download using
// this publisher has returned; it is safe to call more than once.
func (p *Publisher) Close() {
	p.closeOnce.Do(func() {
		close(p.ch)
	})
}
