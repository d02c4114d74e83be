package response

import "time"

// Option adjusts the bookkeeping written into Meta.
type Option func(*settings)

type settings struct {
	now       func() time.Time
	requestID string
}

// WithClock replaces time.Now as the source of Meta.Timestamp.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRequestID stamps Meta.RequestID.
func WithRequestID(id string) Option {
	return func(s *settings) {
		s.requestID = id
	}
}

func newMeta(status int, opts []Option) Meta {
	s := settings{now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return Meta{
		Status:    status,
		Timestamp: s.now().UTC(),
		RequestID: s.requestID,
	}
}
