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

func slotHandlers(public *gin.RouterGroup, admin *gin.RouterGroup) {
	public.
		GET("/slots", func(ctx *gin.Context) {
			var query types.ListSlotsQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "room and date are required"})
				return
			}
			c, cancel := context.WithTimeout(ctx.Request.Context(), config.StorageTimeout())
			defer cancel()
			slots, err := common.ListSlots(c, query.Room, query.Date)
			if err != nil {
				ctx.JSON(common.ErrorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"slots": slots, "count": len(slots)})
		})

	admin.
		POST("/slots", func(ctx *gin.Context) {
			var body types.CreateSlotRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c, cancel := context.WithTimeout(ctx.Request.Context(), config.StorageTimeout())
			defer cancel()
			slot, err := common.AddSlot(c, &body)
			if err != nil {
				log.Printf("Error creating slot: %s\n", err.Error())
				ctx.JSON(common.ErrorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, slot)
		}).
		DELETE("/slots/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c, cancel := context.WithTimeout(ctx.Request.Context(), config.StorageTimeout())
			defer cancel()
			if err := common.DeleteSlot(c, params.ID); err != nil {
				log.Printf("Error deleting slot [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(common.ErrorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"deleted": params.ID})
		})
}
