package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"hotel-booking/models"
	"hotel-booking/utils"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createRoomRequest struct {
	RoomNumber    string  `json:"room_number"`
	RoomType      string  `json:"room_type" binding:"omitempty,roomtype"`
	PricePerNight float64 `json:"price_per_night"`
	Capacity      int     `json:"capacity"`
	Amenities     string  `json:"amenities"`
}

type createCustomerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

type createBookingRequest struct {
	CustomerID      formID `json:"customer_id"`
	RoomID          formID `json:"room_id"`
	CheckInDate     string `json:"check_in_date"`
	CheckOutDate    string `json:"check_out_date"`
	SpecialRequests string `json:"special_requests"`
}

type updateBookingRequest struct {
	CustomerID      formID     `json:"customer_id"`
	RoomID          formID     `json:"room_id"`
	CheckInDate     string     `json:"check_in_date"`
	CheckOutDate    string     `json:"check_out_date"`
	BookingStatus   string     `json:"booking_status"`
	SpecialRequests string     `json:"special_requests"`
	TotalAmount     formAmount `json:"total_amount"`
}

type attachServiceRequest struct {
	BookingID   formID     `json:"booking_id"`
	ServiceName string     `json:"service_name"`
	ServiceCost formAmount `json:"service_cost"`
}

// RegisterValidators adds the custom binding tags to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("roomtype", func(fl validator.FieldLevel) bool {
		return models.IsValidRoomType(strings.ToLower(strings.TrimSpace(fl.Field().String())))
	})
}

// bindJSON decodes the body into dst and answers 400 on failure.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.JSONError(c, http.StatusBadRequest, bindErrorMessage(err))
		return false
	}
	return true
}

func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request payload: " + err.Error()
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "roomtype":
		return "room_type must be one of: " + strings.Join(models.RoomTypes, ", ")
	case "email":
		return "email must be a valid email address"
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
