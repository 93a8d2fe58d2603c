package controllers

import (
	"net/http"
	"strings"

	"frushh/models"
	"frushh/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService *services.OrderService
}

func NewOrderController(orderService *services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// @Summary Get all orders
// @Description Get all orders with pagination (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by status"
// @Param search query string false "Search by order number"
// @Success 200 {object} models.HATEOASResponse
// @Router /admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	page, limit, offset := getPaginationParams(c, 10)

	orders, total, err := ctrl.orderService.ListOrders(c.Request.Context(), models.OrderFilter{
		Status: strings.TrimSpace(c.Query("status")),
		Search: strings.TrimSpace(c.Query("search")),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondError(c, "Failed to get orders", err)
		return
	}

	c.JSON(http.StatusOK, buildPagedResponse(c, "Orders retrieved successfully", orders, page, limit, total))
}

// @Summary Get order detail
// @Description Get one order with its status history (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param number path string true "Order number"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{number} [get]
func (ctrl *OrderController) GetOrderDetail(c *gin.Context) {
	detail, err := ctrl.orderService.GetOrder(c.Request.Context(), c.Param("number"))
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

// @Summary Update order status
// @Description Move an order forward or cancel it (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param number path string true "Order number"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/orders/{number}/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	order, err := ctrl.orderService.UpdateStatus(c.Request.Context(), c.Param("number"), req.Status, req.Notes)
	if err != nil {
		respondError(c, "Failed to update order status", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order status updated successfully",
		Data:    order,
	})
}
