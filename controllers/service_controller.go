package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"hotel-booking/services"
	"hotel-booking/utils"
)

// ServiceController handles extras charged to a booking.
type ServiceController struct {
	ExtraSvc *services.ExtraService
	log      *zerolog.Logger
}

func NewServiceController(svc *services.ExtraService, log *zerolog.Logger) *ServiceController {
	return &ServiceController{ExtraSvc: svc, log: log}
}

// Attach (POST /api/services)
func (ctrl *ServiceController) Attach(c *gin.Context) {
	var req attachServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	svc, err := ctrl.ExtraSvc.Attach(c.Request.Context(), services.AttachServiceInput{
		BookingID:   req.BookingID.value(),
		ServiceName: req.ServiceName,
		ServiceCost: req.ServiceCost.ptr(),
	})
	if err != nil {
		utils.RespondError(c, ctrl.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": svc.ID, "message": "Service added successfully"})
}
