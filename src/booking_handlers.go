package main

import (
	"context"
	"erbs/src/common"
	"erbs/src/config"
	"erbs/src/types"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func bookingHandlers(public *gin.RouterGroup, admin *gin.RouterGroup) {
	public.
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c, cancel := context.WithTimeout(ctx.Request.Context(), config.StorageTimeout())
			defer cancel()
			booking, err := common.ReserveSlot(c, &body)
			if err != nil {
				log.Printf("Error reserving slot %s/%s %s: %s\n", body.Room, body.Date, body.StartTime, err.Error())
				ctx.JSON(common.ErrorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{
				"success":    true,
				"booking_id": booking.ID,
				"reference":  booking.Reference,
			})
		})

	admin.
		GET("/bookings", func(ctx *gin.Context) {
			room := ctx.Query("room")
			c, cancel := context.WithTimeout(ctx.Request.Context(), config.StorageTimeout())
			defer cancel()
			bookings, err := common.ListBookings(c, room)
			if err != nil {
				ctx.JSON(common.ErrorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
		})
}
