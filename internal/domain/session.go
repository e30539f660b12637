package domain

import (
	"context"
	"errors"
	"log"
	"time"

	"example.com/mrimask/internal/events"
	"example.com/mrimask/internal/observability"
	"example.com/mrimask/internal/store"
)

var (
	// ErrSessionNotFound is returned when a session cannot be located.
	ErrSessionNotFound = errors.New("session not found")
	// ErrInvalidPatternRef indicates the referenced MRI pattern does not exist.
	ErrInvalidPatternRef = errors.New("invalid MRI pattern ID")
	// ErrInvalidProfileRef indicates the referenced sound profile does not exist.
	ErrInvalidProfileRef = errors.New("invalid sound profile ID")
	// ErrRatingOutOfRange indicates a comfort rating outside the 1-10 scale.
	ErrRatingOutOfRange = errors.New("comfort rating must be between 1 and 10")
)

// SessionService manages the playback session lifecycle.
type SessionService struct {
	sessions  store.Collection
	patterns  *PatternService
	profiles  *ProfileService
	publisher events.Publisher
}

// NewSessionService constructs a SessionService.
func NewSessionService(sessions store.Collection, patterns *PatternService, profiles *ProfileService, publisher events.Publisher) *SessionService {
	return &SessionService{
		sessions:  sessions,
		patterns:  patterns,
		profiles:  profiles,
		publisher: publisher,
	}
}

// Create starts a session after resolving both catalog references. Both
// lookups run before any write; a dangling pattern reference is reported
// ahead of a dangling profile reference.
func (s *SessionService) Create(ctx context.Context, input CreateSessionInput) (*UserSession, error) {
	if _, err := s.patterns.Get(ctx, input.MRIPatternID); err != nil {
		if errors.Is(err, ErrPatternNotFound) {
			return nil, ErrInvalidPatternRef
		}
		return nil, err
	}
	if _, err := s.profiles.Get(ctx, input.SoundProfileID); err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, ErrInvalidProfileRef
		}
		return nil, err
	}

	session := NewUserSession(input)
	if err := s.sessions.Insert(ctx, session); err != nil {
		return nil, err
	}

	observability.RecordSessionStarted(session.StartTime)
	s.publish(ctx, events.TypeSessionStarted, session.ID, events.SessionStarted{
		SessionID:      session.ID,
		MRIPatternID:   session.MRIPatternID,
		SoundProfileID: session.SoundProfileID,
		VolumeLevel:    session.VolumeLevel,
		StartTime:      session.StartTime,
	})
	return &session, nil
}

// Get fetches a session by id.
func (s *SessionService) Get(ctx context.Context, id string) (*UserSession, error) {
	var session UserSession
	if err := s.sessions.FindByID(ctx, id, &session); err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

// Complete marks the session finished, recording the end time and the
// optional comfort rating. The rating is validated before the update, so a
// rejected rating leaves the session untouched. The update must match an
// existing record or the session is reported as not found. Completing an
// already-completed session re-applies the update; no state guard exists.
func (s *SessionService) Complete(ctx context.Context, id string, comfortRating *int) error {
	if comfortRating != nil && (*comfortRating < 1 || *comfortRating > 10) {
		return ErrRatingOutOfRange
	}

	endTime := time.Now().UTC()
	fields := map[string]any{
		"end_time":  endTime,
		"completed": true,
	}
	if comfortRating != nil {
		fields["comfort_rating"] = *comfortRating
	}

	if err := s.sessions.UpdateByID(ctx, id, fields); err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return ErrSessionNotFound
		}
		return err
	}

	observability.RecordSessionCompleted(endTime)
	s.publish(ctx, events.TypeSessionCompleted, id, events.SessionCompleted{
		SessionID:     id,
		ComfortRating: comfortRating,
		EndTime:       endTime,
	})
	return nil
}

// publish delivers a lifecycle event. Failures are logged and swallowed;
// event delivery never fails the originating request.
func (s *SessionService) publish(ctx context.Context, eventType, key string, payload any) {
	if err := s.publisher.Publish(ctx, eventType, key, payload); err != nil {
		log.Printf("publish %s for session %s: %v", eventType, key, err)
	}
}
