package controllers

import (
	"net/http"
	"strings"

	"frushh/middleware"
	"frushh/models"
	"frushh/services"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	orderService *services.OrderService
}

func NewHistoryController(orderService *services.OrderService) *HistoryController {
	return &HistoryController{orderService: orderService}
}

// @Summary Get order history
// @Description Get the signed-in customer's orders, newest first
// @Tags History
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by status"
// @Success 200 {object} models.HATEOASResponse
// @Router /orders [get]
func (ctrl *HistoryController) GetHistory(c *gin.Context) {
	page, limit, offset := getPaginationParams(c, 4)

	orders, total, err := ctrl.orderService.ListCustomerOrders(c.Request.Context(), middleware.CustomerID(c), models.OrderFilter{
		Status: strings.TrimSpace(c.Query("status")),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondError(c, "Failed to get history", err)
		return
	}

	c.JSON(http.StatusOK, buildPagedResponse(c, "History retrieved successfully", orders, page, limit, total))
}

// @Summary Get history detail
// @Description Get one of the signed-in customer's orders with its status history
// @Tags History
// @Security BearerAuth
// @Produce json
// @Param number path string true "Order number"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{number} [get]
func (ctrl *HistoryController) GetHistoryDetail(c *gin.Context) {
	detail, err := ctrl.orderService.GetCustomerOrder(c.Request.Context(), middleware.CustomerID(c), c.Param("number"))
	if err != nil {
		respondError(c, "Failed to get order", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order retrieved successfully",
		Data:    detail,
	})
}
