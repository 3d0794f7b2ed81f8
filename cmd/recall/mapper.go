package main

import (
	"fmt"
	"recall-game/internal"
	"recall-game/storage"
)

// RoomMapper renders stored rooms for the inspector.
func RoomMapper(key string, val []byte) internal.InspectRow {
	row := internal.DefaultMapper(key, val)
	room, err := storage.DecodeEntry(key, val)
	if err != nil {
		row.Detail = "Error: " + err.Error()
		return row
	}
	summary := room.Summary()
	row.Permission = summary.Permission
	row.Detail = fmt.Sprintf("%s %d/%d %s", summary.RoomName, summary.CurrentSize, summary.MaxSize, summary.GameType)
	return row
}
