package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"hotel-booking/services"
	"hotel-booking/utils"
)

type CustomerController struct {
	CustomerSvc *services.CustomerService
	log         *zerolog.Logger
}

func NewCustomerController(svc *services.CustomerService, log *zerolog.Logger) *CustomerController {
	return &CustomerController{CustomerSvc: svc, log: log}
}

// Create (POST /api/customers)
func (ctrl *CustomerController) Create(c *gin.Context) {
	var req createCustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := ctrl.CustomerSvc.Create(c.Request.Context(), services.CreateCustomerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		utils.RespondError(c, ctrl.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": customer.ID, "message": "Customer created successfully"})
}
