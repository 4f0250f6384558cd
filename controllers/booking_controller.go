package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"hotel-booking/services"
	"hotel-booking/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type BookingController struct {
	BookingSvc *services.BookingService
	ExportSvc  *services.ExportService
	log        *zerolog.Logger
}

func NewBookingController(bookings *services.BookingService, export *services.ExportService, log *zerolog.Logger) *BookingController {
	return &BookingController{BookingSvc: bookings, ExportSvc: export, log: log}
}

func bookingIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking id")
		return 0, false
	}
	return uint(id), true
}

// List (GET /api/bookings)
func (ctrl *BookingController) List(c *gin.Context) {
	items, err := ctrl.BookingSvc.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, ctrl.log, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Create (POST /api/bookings)
func (ctrl *BookingController) Create(c *gin.Context) {
	var req createBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := ctrl.BookingSvc.Create(c.Request.Context(), services.CreateBookingInput{
		CustomerID:      req.CustomerID.value(),
		RoomID:          req.RoomID.value(),
		CheckInDate:     req.CheckInDate,
		CheckOutDate:    req.CheckOutDate,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		utils.RespondError(c, ctrl.log, err)
		return
	}

	// The booking stands even if the room flag could not be cleared; the
	// service already logged and counted that.
	c.JSON(http.StatusCreated, gin.H{
		"id":           res.BookingID,
		"total_amount": res.TotalAmount,
		"message":      "Booking created successfully",
	})
}

// Update (PUT /api/bookings/:id)
func (ctrl *BookingController) Update(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	var req updateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	err := ctrl.BookingSvc.Update(c.Request.Context(), id, services.UpdateBookingInput{
		CustomerID:      req.CustomerID.value(),
		RoomID:          req.RoomID.value(),
		CheckInDate:     req.CheckInDate,
		CheckOutDate:    req.CheckOutDate,
		BookingStatus:   req.BookingStatus,
		SpecialRequests: req.SpecialRequests,
		TotalAmount:     req.TotalAmount.ptr(),
	})
	if err != nil {
		utils.RespondError(c, ctrl.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking updated successfully", "bookingId": id})
}

// Delete (DELETE /api/bookings/:id)
func (ctrl *BookingController) Delete(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.BookingSvc.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, ctrl.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully", "bookingId": id})
}

// Export (GET /api/bookings/export)
func (ctrl *BookingController) Export(c *gin.Context) {
	var buf bytes.Buffer
	if err := ctrl.ExportSvc.WriteBookings(c.Request.Context(), &buf); err != nil {
		utils.RespondError(c, ctrl.log, err)
		return
	}

	filename := fmt.Sprintf("bookings-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
