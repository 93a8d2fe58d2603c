package controllers

import (
	"errors"
	"log"
	"net/http"

	"frushh/models"
	"frushh/services"

	"github.com/gin-gonic/gin"
)

// statusFor maps service errors to HTTP status codes. Unknown errors are 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrMissingIdempotencyKey),
		errors.Is(err, services.ErrInvalidDelivery),
		errors.Is(err, services.ErrInvalidCartItem),
		errors.Is(err, services.ErrNegativeTotal):
		return http.StatusBadRequest
	case services.IsDiscountRejection(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrCustomerNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrCheckoutInProgress),
		errors.Is(err, services.ErrInvalidStatusTransition),
		errors.Is(err, services.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, message string, err error) {
	status := statusFor(err)
	resp := models.ErrorResponse{Success: false, Message: message, Error: err.Error()}

	switch {
	case status == http.StatusInternalServerError && errors.Is(err, services.ErrOrderPlacementFailed):
		log.Printf("[%s %s] %v", c.Request.Method, c.FullPath(), err)
		resp.Error = services.ErrOrderPlacementFailed.Error() + ", please retry with the same idempotency key"
	case status == http.StatusInternalServerError:
		log.Printf("[%s %s] %v", c.Request.Method, c.FullPath(), err)
		resp.Error = "internal server error"
	}

	c.JSON(status, resp)
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Message: "Invalid request",
		Error:   err.Error(),
	})
}
