package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"hotel-booking/services"
	"hotel-booking/utils"
)

type RoomController struct {
	RoomSvc *services.RoomService
	log     *zerolog.Logger
}

func NewRoomController(svc *services.RoomService, log *zerolog.Logger) *RoomController {
	return &RoomController{RoomSvc: svc, log: log}
}

// ListAvailable (GET /api/rooms)
func (ctrl *RoomController) ListAvailable(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.ListAvailable(c.Request.Context())
	if err != nil {
		utils.RespondError(c, ctrl.log, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// ListAll (GET /api/rooms/all)
func (ctrl *RoomController) ListAll(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.ListAll(c.Request.Context())
	if err != nil {
		utils.RespondError(c, ctrl.log, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// Create (POST /api/rooms)
func (ctrl *RoomController) Create(c *gin.Context) {
	var req createRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	room, err := ctrl.RoomSvc.Create(c.Request.Context(), services.CreateRoomInput{
		RoomNumber:    req.RoomNumber,
		RoomType:      req.RoomType,
		PricePerNight: req.PricePerNight,
		Capacity:      req.Capacity,
		Amenities:     req.Amenities,
	})
	if err != nil {
		utils.RespondError(c, ctrl.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":              room.ID,
		"room_number":     room.RoomNumber,
		"room_type":       room.RoomType,
		"price_per_night": room.PricePerNight,
		"capacity":        room.Capacity,
		"amenities":       room.Amenities,
		"message":         "Room created successfully",
	})
}
