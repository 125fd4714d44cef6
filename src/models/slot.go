package models

import "erbs/src/types"

// Slot is a bookable time window for a room on a date. The (room, date,
// start_time) triple is unique: a booking targets exactly one slot.
type Slot struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Room        string `gorm:"uniqueIndex:idx_slots_room_date_start;not null" json:"room"`
	Date        string `gorm:"uniqueIndex:idx_slots_room_date_start;not null" json:"date"`
	StartTime   string `gorm:"uniqueIndex:idx_slots_room_date_start;not null" json:"start_time"`
	DurationMin uint   `gorm:"not null" json:"duration_min"`
	Booked      bool   `gorm:"default:false" json:"booked"`

	types.Timestamps
}
