package services

import (
	"fmt"
	"log/slog"
	"recall-game/contract"
	"recall-game/domain"
	"recall-game/domain/event"
	"recall-game/errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

type GetPublicRoomsRequest struct {
	SessionID string `validate:"required"`
}

type IRoomService interface {
	ListPublicRooms() ([]domain.RoomSummary, error)
	HandleGetPublicRooms(payload event.Payload) domain.Result
}

// RoomService answers room discovery queries against the room directory.
// A nil directory means discovery is unavailable: queries return no rooms.
type RoomService struct {
	log       *slog.Logger
	directory contract.RoomDirectory
	now       func() time.Time
}

func NewRoomService(log *slog.Logger, directory contract.RoomDirectory) *RoomService {
	return &RoomService{log: log, directory: directory, now: time.Now}
}

// ListPublicRooms keeps the rooms whose permission is public and projects them,
// preserving the directory enumeration order.
func (s *RoomService) ListPublicRooms() ([]domain.RoomSummary, error) {
	if s.directory == nil {
		return []domain.RoomSummary{}, nil
	}
	rooms, err := s.directory.GetAllRooms()
	if err != nil {
		return nil, err
	}
	public := lo.Filter(rooms, func(r domain.RawRoom, _ int) bool {
		return r.IsPublic()
	})
	return lo.Map(public, func(r domain.RawRoom, _ int) domain.RoomSummary {
		return r.Summary()
	}), nil
}

func (s *RoomService) HandleGetPublicRooms(payload event.Payload) domain.Result {
	sessionID := payload.SessionID()
	if err := validate.Struct(GetPublicRoomsRequest{SessionID: sessionID}); err != nil {
		s.log.Debug("Rejected get_public_rooms", "error", fmt.Errorf("%w: %v", errors.ErrValidation, err))
		return domain.Failure(domain.KindValidation, sessionID, "Session ID required")
	}

	rooms, err := s.ListPublicRooms()
	if err != nil {
		s.log.Error("Error in get_public_rooms", "session_id", sessionID, "error", err)
		return domain.Failure(domain.KindUnexpectedFault, sessionID,
			fmt.Sprintf("Error getting public rooms: %v", err))
	}

	if s.directory == nil {
		s.log.Info(fmt.Sprintf("Room manager not available, sent empty public rooms list to session %s", sessionID))
	} else {
		s.log.Info(fmt.Sprintf("Sent %d public rooms to session %s", len(rooms), sessionID))
	}
	return domain.Reply(sessionID, event.GetPublicRoomsSuccess, event.PublicRoomsPayload{
		Success:   true,
		Data:      rooms,
		Count:     len(rooms),
		Timestamp: event.Timestamp(s.now()),
	})
}
