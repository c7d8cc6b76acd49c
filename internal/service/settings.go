package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/wicaksana/atelier/internal/domain"
	"github.com/wicaksana/atelier/internal/events"
	"github.com/wicaksana/atelier/internal/repository"
)

// SettingsService is the observable site settings store. Storefront clients
// subscribe (backing the SSE stream) and get pushed the new settings when an
// admin saves a change, so a theme switch is visible without a reload.
// Changes saved on other replicas arrive over the event stream.
type SettingsService interface {
	GetSettings(ctx context.Context) (domain.SiteSettings, error)
	UpdateSettings(ctx context.Context, params domain.UpdateSettingsParams) (domain.SiteSettings, error)

	// Subscribe registers a listener for settings changes. The returned
	// cancel function must be called to release the subscription. A slow
	// listener misses intermediate states rather than blocking updates.
	Subscribe() (<-chan domain.SiteSettings, func())
}

type settingsService struct {
	repo   repository.Querier
	events events.Publisher
	stream events.Stream

	mu          sync.Mutex
	subscribers map[int]chan domain.SiteSettings
	nextID      int
	stopRemote  func()
}

// NewSettingsService creates the settings service. stream carries updates
// made by other replicas and may be nil when events are disabled.
func NewSettingsService(repo repository.Querier, publisher events.Publisher, stream events.Stream) SettingsService {
	return &settingsService{
		repo:        repo,
		events:      publisher,
		stream:      stream,
		subscribers: make(map[int]chan domain.SiteSettings),
	}
}

func (s *settingsService) GetSettings(ctx context.Context) (domain.SiteSettings, error) {
	return s.repo.GetSettings(ctx)
}

func (s *settingsService) UpdateSettings(ctx context.Context, params domain.UpdateSettingsParams) (domain.SiteSettings, error) {
	current, err := s.repo.GetSettings(ctx)
	if err != nil {
		return domain.SiteSettings{}, err
	}

	if params.Theme != nil {
		current.Theme = *params.Theme
	}
	if params.ParticlesEnabled != nil {
		current.ParticlesEnabled = *params.ParticlesEnabled
	}

	if err := s.repo.UpdateSettings(ctx, current); err != nil {
		return domain.SiteSettings{}, err
	}

	updated, err := s.repo.GetSettings(ctx)
	if err != nil {
		return domain.SiteSettings{}, err
	}

	s.broadcast(updated)
	s.events.Publish(events.SubjectSettingsUpdated, updated)
	return updated, nil
}

func (s *settingsService) Subscribe() (<-chan domain.SiteSettings, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	ch := make(chan domain.SiteSettings, 1)
	s.subscribers[id] = ch

	// The remote feed runs only while someone local is listening.
	if s.stream != nil && s.stopRemote == nil {
		if stop, err := s.stream.Subscribe(events.SubjectSettingsUpdated, s.onRemoteUpdate); err == nil {
			s.stopRemote = stop
		}
	}

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subscribers[id]; !ok {
			return
		}
		delete(s.subscribers, id)
		close(ch)
		if len(s.subscribers) == 0 && s.stopRemote != nil {
			s.stopRemote()
			s.stopRemote = nil
		}
	}
	return ch, cancel
}

func (s *settingsService) onRemoteUpdate(data []byte) {
	var settings domain.SiteSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return
	}
	s.broadcast(settings)
}

func (s *settingsService) broadcast(settings domain.SiteSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.subscribers {
		// Replace a pending unread value instead of blocking.
		select {
		case ch <- settings:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- settings:
			default:
			}
		}
	}
}
