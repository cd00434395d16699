package notify

import (
	"sync"

	"go.uber.org/zap"

	"github.com/llehouerou/tplay/internal/playback"
)

const announceTimeout = 5000 // ms

// Announcer is a renderer that notifies once per track start. Sending
// happens on a worker goroutine; when tracks change faster than the bus
// answers only the latest is sent.
type Announcer struct {
	notifier Notifier
	log      *zap.Logger

	last    string
	pending chan Notification
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// NewAnnouncer starts an announcer sending through n.
func NewAnnouncer(n Notifier, log *zap.Logger) *Announcer {
	if log == nil {
		log = zap.NewNop()
	}
	a := &Announcer{
		notifier: n,
		log:      log,
		pending:  make(chan Notification, 1),
		done:     make(chan struct{}),
	}
	a.wg.Add(1)
	go a.run()
	return a
}

// Render queues a notification when f shows a different track than the
// previous frame.
func (a *Announcer) Render(f playback.Frame) {
	if f.Path == a.last {
		return
	}
	a.last = f.Path
	a.queue(trackNotification(f))
}

func trackNotification(f playback.Frame) Notification {
	return Notification{
		Title:   f.Title,
		Body:    f.Artist + " - " + f.Album,
		Icon:    FindAlbumArtPath(f.Path),
		Timeout: announceTimeout,
		Urgency: UrgencyLow,
	}
}

func (a *Announcer) queue(n Notification) {
	for {
		select {
		case a.pending <- n:
			return
		default:
		}
		// Replace the stale notification.
		select {
		case <-a.pending:
		default:
		}
	}
}

func (a *Announcer) run() {
	defer a.wg.Done()

	var lastID uint32
	for {
		select {
		case <-a.done:
			return
		case n := <-a.pending:
			n.ReplacesID = lastID
			id, err := a.notifier.Notify(n)
			if err != nil {
				a.log.Debug("notification failed", zap.Error(err))
				continue
			}
			lastID = id
		}
	}
}

// Close stops the worker. Queued notifications that were not sent yet are
// dropped.
func (a *Announcer) Close() {
	a.once.Do(func() {
		close(a.done)
		a.wg.Wait()
	})
}

var _ playback.Renderer = (*Announcer)(nil)
