package storage

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"recall-game/contract"
	"recall-game/domain"
	"recall-game/errors"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-playground/validator/v10"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	roomPrefix  = "room:"
	indexPrefix = "idx:room:"
)

var _ contract.IRoomRepository = (*RoomRepository)(nil)

var validate = validator.New()

type roomKey struct {
	ID string `validate:"required,max=128,excludesall=:"`
}

// RoomRepository is the room directory backed by BadgerDB.
// Rooms are stored under "room:{created_padded}:{room_id}" so that a prefix
// scan returns them in creation order, with "idx:room:{room_id}" pointing to
// the primary key. Metadata is encoded as a protobuf Struct.
type RoomRepository struct {
	db  *badger.DB
	log *slog.Logger

	mu   sync.Mutex
	last int64
}

func NewRoomRepository(db *badger.DB, log *slog.Logger) *RoomRepository {
	return &RoomRepository{db: db, log: log}
}

// SaveRoom creates or replaces a room. A replaced room keeps its position.
func (r *RoomRepository) SaveRoom(room domain.RawRoom) error {
	if err := validate.Struct(roomKey{ID: room.ID}); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidRoom, err)
	}
	metadata, err := structpb.NewStruct(room.Metadata)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidRoom, err)
	}
	bytes, err := proto.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	return r.db.Update(func(txn *badger.Txn) error {
		indexKey := []byte(indexPrefix + room.ID)
		var primary []byte
		item, err := txn.Get(indexKey)
		switch {
		case err == nil:
			primary, err = item.ValueCopy(nil)
			if err != nil {
				return err
			}
		case stderrors.Is(err, badger.ErrKeyNotFound):
			primary = []byte(fmt.Sprintf("%s%019d:%s", roomPrefix, r.stamp(), room.ID))
			if err := txn.Set(indexKey, primary); err != nil {
				return err
			}
		default:
			return err
		}
		return txn.Set(primary, bytes)
	})
}

// stamp is strictly increasing within the process.
func (r *RoomRepository) stamp() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UnixNano()
	if now <= r.last {
		now = r.last + 1
	}
	r.last = now
	return now
}

func (r *RoomRepository) GetRoom(roomID string) (domain.RawRoom, error) {
	var room domain.RawRoom
	err := r.db.View(func(txn *badger.Txn) error {
		primary, err := primaryKey(txn, roomID)
		if err != nil {
			return err
		}
		item, err := txn.Get(primary)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			room, err = toRawRoom(roomID, val)
			return err
		})
	})
	return room, err
}

func (r *RoomRepository) DeleteRoom(roomID string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		primary, err := primaryKey(txn, roomID)
		if err != nil {
			return err
		}
		if err := txn.Delete(primary); err != nil {
			return err
		}
		return txn.Delete([]byte(indexPrefix + roomID))
	})
}

// GetAllRooms scans every room in creation order.
func (r *RoomRepository) GetAllRooms() ([]domain.RawRoom, error) {
	rooms := make([]domain.RawRoom, 0)
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(roomPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			roomID, err := roomIDFromKey(string(item.Key()))
			if err != nil {
				r.log.Warn("Skipping malformed room key", "key", string(item.Key()))
				continue
			}
			err = item.Value(func(val []byte) error {
				room, err := toRawRoom(roomID, val)
				if err != nil {
					return err
				}
				rooms = append(rooms, room)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func primaryKey(txn *badger.Txn, roomID string) ([]byte, error) {
	item, err := txn.Get([]byte(indexPrefix + roomID))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", errors.ErrRoomNotFound, roomID)
	}
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

// roomIDFromKey extracts the id from "room:{created}:{room_id}".
func roomIDFromKey(key string) (string, error) {
	rest := key[len(roomPrefix):]
	const createdLen = 19
	if len(rest) < createdLen+2 || rest[createdLen] != ':' {
		return "", errors.ErrInvalidRoom
	}
	return rest[createdLen+1:], nil
}

func toRawRoom(roomID string, val []byte) (domain.RawRoom, error) {
	var metadata structpb.Struct
	if err := proto.Unmarshal(val, &metadata); err != nil {
		return domain.RawRoom{}, fmt.Errorf("unmarshal room %s: %w", roomID, err)
	}
	return domain.RawRoom{ID: roomID, Metadata: metadata.AsMap()}, nil
}

// DecodeEntry decodes a raw primary entry as found by a prefix scan.
func DecodeEntry(key string, val []byte) (domain.RawRoom, error) {
	if len(key) < len(roomPrefix) || key[:len(roomPrefix)] != roomPrefix {
		return domain.RawRoom{}, fmt.Errorf("%w: not a room key %q", errors.ErrInvalidRoom, key)
	}
	roomID, err := roomIDFromKey(key)
	if err != nil {
		return domain.RawRoom{}, err
	}
	return toRawRoom(roomID, val)
}
