package common

import (
	"context"
	"encoding/json"
	"erbs/src/db"
	"erbs/src/lib"
	"erbs/src/models"
	"erbs/src/types"
	"erbs/src/utils"
	"log"

	"gorm.io/gorm"
)

// ListSlots returns every slot for the room/date pair ordered by start
// time. An empty day is an empty slice, not an error.
func ListSlots(ctx context.Context, room string, date string) ([]models.Slot, error) {
	slots := make([]models.Slot, 0)

	if rd := lib.GetRedisClient(); rd != nil {
		cached := rd.Get(ctx, utils.SlotsCacheKey(room, date)).Val()
		if cached != "" {
			if err := json.Unmarshal([]byte(cached), &slots); err == nil {
				return slots, nil
			}
			log.Printf("[redis] Discarding bad cache entry for %s/%s\n", room, date)
		}
	}

	d := db.GetDb()
	if err := d.WithContext(ctx).
		Model(&models.Slot{}).
		Where(&models.Slot{Room: room, Date: date}).
		Order("start_time asc").
		Find(&slots).
		Error; err != nil {
		return nil, translateStorageErr(err)
	}

	if rd := lib.GetRedisClient(); rd != nil {
		if b, err := json.Marshal(&slots); err == nil {
			if err := rd.Set(ctx, utils.SlotsCacheKey(room, date), string(b), 0).Err(); err != nil {
				log.Printf("[redis] Error caching slots for %s/%s: %s\n", room, date, err.Error())
			}
		}
	}
	return slots, nil
}

// AddSlot creates an unbooked slot. Field validation happens at binding
// time; the unique (room, date, start_time) index rejects duplicates.
func AddSlot(ctx context.Context, body *types.CreateSlotRequestBody) (*models.Slot, error) {
	slot := models.Slot{
		Room:        body.Room,
		Date:        body.Date,
		StartTime:   body.StartTime,
		DurationMin: body.DurationMin,
	}
	d := db.GetDb()
	if err := d.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&slot).Error; err != nil {
			return err
		}
		return nil
	}); err != nil {
		return nil, translateStorageErr(err)
	}
	dropSlotsCache(ctx, slot.Room, slot.Date)
	return &slot, nil
}

// DeleteSlot removes a slot regardless of its booked state. Bookings are
// independently owned and stay behind.
func DeleteSlot(ctx context.Context, id uint) error {
	var slot models.Slot
	d := db.GetDb()
	if err := d.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Model(&models.Slot{}).
			Where(&models.Slot{ID: id}).
			First(&slot).
			Error; err != nil {
			return err
		}
		res := tx.Unscoped().Delete(&models.Slot{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrSlotNotFound
		}
		return nil
	}); err != nil {
		return translateStorageErr(err)
	}
	dropSlotsCache(ctx, slot.Room, slot.Date)
	return nil
}

func dropSlotsCache(ctx context.Context, room string, date string) {
	rd := lib.GetRedisClient()
	if rd == nil {
		return
	}
	if err := rd.Del(ctx, utils.SlotsCacheKey(room, date)).Err(); err != nil {
		log.Printf("[redis] Error dropping slot cache for %s/%s: %s\n", room, date, err.Error())
	}
}
