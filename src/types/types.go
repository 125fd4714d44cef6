package types

import (
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type ListSlotsQuery struct {
	Room string `form:"room" binding:"required"`
	Date string `form:"date" binding:"required,slotdate"`
}

type CreateSlotRequestBody struct {
	Room        string `json:"room" binding:"required"`
	Date        string `json:"date" binding:"required,slotdate"`
	StartTime   string `json:"start_time" binding:"required,slottime"`
	DurationMin uint   `json:"duration_min" binding:"required,min=1"`
}

type CreateBookingRequestBody struct {
	Room      string  `json:"room" binding:"required"`
	Date      string  `json:"date" binding:"required,slotdate"`
	StartTime string  `json:"start_time" binding:"required,slottime"`
	EndTime   string  `json:"end_time" binding:"required,slottime"`
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Phone     *string `json:"phone,omitempty"`
	Persons   uint8   `json:"persons,omitempty" binding:"omitempty,min=1"`
}
