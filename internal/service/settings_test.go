package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wicaksana/atelier/internal/domain"
	"github.com/wicaksana/atelier/internal/events"
)

func TestSettingsUpdate_NotifiesSubscribers(t *testing.T) {
	repo := newFakeRepo()
	svc := NewSettingsService(repo, events.NopPublisher{}, nil)

	ch, cancel := svc.Subscribe()
	defer cancel()

	theme := "light"
	updated, err := svc.UpdateSettings(context.Background(), domain.UpdateSettingsParams{Theme: &theme})
	require.NoError(t, err)
	assert.Equal(t, "light", updated.Theme)
	assert.True(t, updated.ParticlesEnabled, "untouched field keeps its value")

	got := <-ch
	assert.Equal(t, "light", got.Theme)
}

func TestSettingsSubscribe_SlowListenerGetsLatest(t *testing.T) {
	repo := newFakeRepo()
	svc := NewSettingsService(repo, events.NopPublisher{}, nil)

	ch, cancel := svc.Subscribe()
	defer cancel()

	for _, theme := range []string{"light", "sepia", "dark"} {
		th := theme
		_, err := svc.UpdateSettings(context.Background(), domain.UpdateSettingsParams{Theme: &th})
		require.NoError(t, err)
	}

	// The listener never read in between; it sees the latest state only.
	got := <-ch
	assert.Equal(t, "dark", got.Theme)
}

func TestSettingsSubscribe_CancelClosesChannel(t *testing.T) {
	repo := newFakeRepo()
	svc := NewSettingsService(repo, events.NopPublisher{}, nil)

	ch, cancel := svc.Subscribe()
	cancel()
	cancel() // double cancel is safe

	_, open := <-ch
	assert.False(t, open)

	theme := "light"
	_, err := svc.UpdateSettings(context.Background(), domain.UpdateSettingsParams{Theme: &theme})
	require.NoError(t, err)
}

// fakeStream hands the registered handler back so tests can inject remote
// events, and counts subscriptions.
type fakeStream struct {
	handler    func([]byte)
	subscribed int
	stopped    int
}

func (f *fakeStream) Subscribe(subject string, handler func(data []byte)) (func(), error) {
	f.handler = handler
	f.subscribed++
	return func() { f.stopped++ }, nil
}

func TestSettingsSubscribe_RemoteFeed(t *testing.T) {
	repo := newFakeRepo()
	stream := &fakeStream{}
	svc := NewSettingsService(repo, events.NopPublisher{}, stream)

	ch1, cancel1 := svc.Subscribe()
	ch2, cancel2 := svc.Subscribe()
	assert.Equal(t, 1, stream.subscribed, "one remote subscription serves all local listeners")

	payload, err := json.Marshal(domain.SiteSettings{Theme: "dark", ParticlesEnabled: true})
	require.NoError(t, err)
	stream.handler(payload)

	assert.Equal(t, "dark", (<-ch1).Theme)
	assert.Equal(t, "dark", (<-ch2).Theme)

	cancel1()
	assert.Equal(t, 0, stream.stopped, "remote feed stays up while a listener remains")
	cancel2()
	assert.Equal(t, 1, stream.stopped, "remote feed stops with the last listener")
}
