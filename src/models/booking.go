package models

import "erbs/src/types"

// Booking is a confirmed reservation against exactly one slot. SlotID has
// a unique index so the store itself rejects a second booking row even if
// the booked flag were ever bypassed. Bookings are independently owned:
// deleting a slot does not touch its booking.
type Booking struct {
	ID        uint    `gorm:"primarykey" json:"id"`
	Reference string  `gorm:"not null" json:"reference"`
	SlotID    uint    `gorm:"uniqueIndex;not null" json:"slot_id"`
	Room      string  `gorm:"not null" json:"room"`
	Date      string  `gorm:"not null" json:"date"`
	StartTime string  `gorm:"not null" json:"start_time"`
	EndTime   string  `gorm:"not null" json:"end_time"`
	Name      string  `gorm:"not null" json:"name"`
	Email     string  `gorm:"not null" json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Persons   uint8   `gorm:"default:1" json:"persons"`

	types.Timestamps
}
