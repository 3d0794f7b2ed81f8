package gateway

import (
	"context"
	"recall-game/contract"
	"recall-game/domain/event"
	"recall-game/errors"
	"sync"
)

var _ contract.EventSink = (*SessionSink)(nil)

// SessionSink buffers the outbound events of one connected session.
// The connection writer drains Outbound until Done is closed.
type SessionSink struct {
	Outbound  chan event.Outbound
	done      chan struct{}
	closeOnce sync.Once
}

func NewSessionSink(bufferSize int) *SessionSink {
	return &SessionSink{
		Outbound: make(chan event.Outbound, bufferSize),
		done:     make(chan struct{}),
	}
}

// Consume is called by the hub for every event addressed to the session.
// It waits for buffer space until ctx expires, then gives up.
func (s *SessionSink) Consume(ctx context.Context, e event.Outbound) error {
	select {
	case <-s.done:
		return errors.ErrSessionClosed
	default:
	}
	select {
	case s.Outbound <- e:
		return nil
	case <-s.done:
		return errors.ErrSessionClosed
	case <-ctx.Done():
		return errors.ErrDeliveryTimeout
	}
}

func (s *SessionSink) Done() <-chan struct{} {
	return s.done
}

func (s *SessionSink) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}
