package controllers

import (
	"net/http"

	"frushh/models"
	"frushh/services"

	"github.com/gin-gonic/gin"
)

type PromoController struct {
	discountService *services.DiscountService
}

func NewPromoController(discountService *services.DiscountService) *PromoController {
	return &PromoController{discountService: discountService}
}

// @Summary List promos
// @Description Active public coupons shown on the checkout page
// @Tags Promos
// @Produce json
// @Success 200 {object} models.Response
// @Router /promos [get]
func (ctrl *PromoController) GetAllPromos(c *gin.Context) {
	coupons, err := ctrl.discountService.ListPublicCoupons(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to get promos", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Promos retrieved",
		Data:    coupons,
	})
}
