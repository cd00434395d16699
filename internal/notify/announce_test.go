package notify

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/tplay/internal/playback"
)

type fakeNotifier struct {
	mu      sync.Mutex
	sent    []Notification
	err     error
	next    uint32
	started chan struct{}
	block   chan struct{}
}

func (f *fakeNotifier) Notify(n Notification) (uint32, error) {
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, n)
	if f.err != nil {
		return 0, f.err
	}
	f.next++
	return f.next, nil
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func (f *fakeNotifier) get(i int) Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sent[i]
}

func frame(path string) playback.Frame {
	return playback.Frame{Path: path, Title: "T " + filepath.Base(path), Artist: "A", Album: "B"}
}

func TestAnnouncer_OncePerTrack(t *testing.T) {
	n := &fakeNotifier{}
	a := NewAnnouncer(n, nil)
	defer a.Close()

	a.Render(frame("/m/a.mp3"))
	require.Eventually(t, func() bool { return n.count() == 1 }, time.Second, time.Millisecond)

	a.Render(frame("/m/a.mp3"))
	a.Render(frame("/m/a.mp3"))
	a.Render(frame("/m/b.mp3"))
	require.Eventually(t, func() bool { return n.count() == 2 }, time.Second, time.Millisecond)

	first, second := n.get(0), n.get(1)
	assert.Equal(t, "T a.mp3", first.Title)
	assert.Equal(t, "A - B", first.Body)
	assert.Equal(t, UrgencyLow, first.Urgency)
	assert.Equal(t, uint32(0), first.ReplacesID)
	assert.Equal(t, uint32(1), second.ReplacesID, "replaces the previous notification")
}

func TestAnnouncer_LatestWinsWhileBusy(t *testing.T) {
	n := &fakeNotifier{started: make(chan struct{}, 4), block: make(chan struct{})}
	a := NewAnnouncer(n, nil)
	defer a.Close()

	a.Render(frame("/m/a.mp3"))
	<-n.started // worker is busy with a.mp3
	a.Render(frame("/m/b.mp3"))
	a.Render(frame("/m/c.mp3"))
	close(n.block)

	require.Eventually(t, func() bool { return n.count() == 2 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 2, n.count())
	assert.Equal(t, "T c.mp3", n.get(1).Title)
}

func TestAnnouncer_ErrorsAreNotFatal(t *testing.T) {
	n := &fakeNotifier{err: errors.New("no server")}
	a := NewAnnouncer(n, nil)

	a.Render(frame("/m/a.mp3"))
	a.Render(frame("/m/b.mp3"))
	require.Eventually(t, func() bool { return n.count() >= 1 }, time.Second, time.Millisecond)

	a.Close()
	a.Close()
}

func TestAnnouncer_UsesCoverAsIcon(t *testing.T) {
	dir := t.TempDir()
	cover := filepath.Join(dir, "cover.png")
	require.NoError(t, os.WriteFile(cover, []byte("x"), 0o600))

	got := trackNotification(frame(filepath.Join(dir, "a.mp3")))
	assert.Equal(t, cover, got.Icon)
}

func TestUrgencyValues(t *testing.T) {
	// freedesktop byte values
	assert.Equal(t, Urgency(0), UrgencyLow)
	assert.Equal(t, Urgency(1), UrgencyNormal)
	assert.Equal(t, Urgency(2), UrgencyCritical)
}
