package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmolina/shop-service/internal/auth"
	"github.com/dmolina/shop-service/internal/httpx"
	"github.com/dmolina/shop-service/internal/item"
	"github.com/dmolina/shop-service/internal/order"
)

// createOrderHandler handles POST /orders, a direct single-item order.
func createOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json")
			return
		}
		d, err := svc.Place(c.Request.Context(), auth.MemberID(c), []order.CreateOrderItem{
			{ItemID: req.ItemID, Quantity: req.Quantity},
		})
		if err != nil {
			switch {
			case errors.Is(err, order.ErrInvalidQuantity), errors.Is(err, order.ErrEmptyOrder):
				httpx.Fail(c, http.StatusBadRequest, err.Error())
			case errors.Is(err, item.ErrNotFound):
				httpx.Fail(c, http.StatusNotFound, item.ErrNotFound.Error())
			case errors.Is(err, order.ErrOutOfStock):
				httpx.Fail(c, http.StatusConflict, order.ErrOutOfStock.Error())
			default:
				httpx.Fail(c, http.StatusInternalServerError, "order error")
			}
			return
		}
		c.JSON(http.StatusCreated, d)
	}
}

// listOrdersHandler handles GET /orders, the caller's order history.
func listOrdersHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.History(c.Request.Context(), auth.MemberID(c),
			intQuery(c, "limit", 20), intQuery(c, "offset", 0))
		if err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "history error")
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": out})
	}
}

// getOrderHandler handles GET /orders/:id.
func getOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := svc.Get(c.Request.Context(), auth.MemberID(c), c.Param("id"))
		if err != nil {
			switch {
			case errors.Is(err, order.ErrNotFound):
				httpx.Fail(c, http.StatusNotFound, order.ErrNotFound.Error())
			case errors.Is(err, order.ErrForbidden):
				httpx.Fail(c, http.StatusForbidden, order.ErrForbidden.Error())
			default:
				httpx.Fail(c, http.StatusInternalServerError, "get error")
			}
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

// cancelOrderHandler handles POST /orders/:id/cancel.
func cancelOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		err := svc.Cancel(c.Request.Context(), auth.MemberID(c), id)
		if err != nil {
			switch {
			case errors.Is(err, order.ErrNotFound):
				httpx.Fail(c, http.StatusNotFound, order.ErrNotFound.Error())
			case errors.Is(err, order.ErrForbidden):
				httpx.Fail(c, http.StatusForbidden, order.ErrForbidden.Error())
			case errors.Is(err, order.ErrAlreadyCancelled):
				httpx.Fail(c, http.StatusConflict, order.ErrAlreadyCancelled.Error())
			default:
				httpx.Fail(c, http.StatusInternalServerError, "cancel error")
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id, "status": order.StatusCancel})
	}
}
