package common

import (
	"context"
	"erbs/src/db"
	"erbs/src/models"
	"erbs/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReserveSlot performs the atomic check-and-reserve: a conditional update
// flips the booked flag only when it is still clear, and the booking row
// is inserted in the same transaction. Two racing requests for one slot
// therefore resolve to exactly one winner; the loser gets ErrAlreadyBooked.
func ReserveSlot(ctx context.Context, body *types.CreateBookingRequestBody) (*models.Booking, error) {
	persons := body.Persons
	if persons == 0 {
		persons = 1
	}
	booking := models.Booking{
		Reference: uuid.NewString(),
		Room:      body.Room,
		Date:      body.Date,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		Name:      body.Name,
		Email:     body.Email,
		Phone:     body.Phone,
		Persons:   persons,
	}
	d := db.GetDb()
	if err := d.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.
			Model(&models.Slot{}).
			Where("room = ? AND date = ? AND start_time = ? AND booked = ?",
				body.Room, body.Date, body.StartTime, false).
			Update("booked", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Nothing flipped: either no such slot, or someone beat us.
			var count int64
			if err := tx.
				Model(&models.Slot{}).
				Where(&models.Slot{Room: body.Room, Date: body.Date, StartTime: body.StartTime}).
				Count(&count).
				Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrSlotNotFound
			}
			return ErrAlreadyBooked
		}
		var slot models.Slot
		if err := tx.
			Model(&models.Slot{}).
			Where(&models.Slot{Room: body.Room, Date: body.Date, StartTime: body.StartTime}).
			First(&slot).
			Error; err != nil {
			return err
		}
		booking.SlotID = slot.ID
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		return nil
	}); err != nil {
		return nil, translateStorageErr(err)
	}
	dropSlotsCache(ctx, booking.Room, booking.Date)
	return &booking, nil
}

// ListBookings returns all bookings ordered by date then start time, with
// an optional room filter. Empty room means every room.
func ListBookings(ctx context.Context, room string) ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	d := db.GetDb()
	q := d.WithContext(ctx).Model(&models.Booking{})
	if room != "" {
		q = q.Where(&models.Booking{Room: room})
	}
	if err := q.
		Order("date asc, start_time asc").
		Find(&bookings).
		Error; err != nil {
		return nil, translateStorageErr(err)
	}
	return bookings, nil
}
