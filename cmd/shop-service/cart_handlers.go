package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmolina/shop-service/internal/auth"
	"github.com/dmolina/shop-service/internal/cart"
	"github.com/dmolina/shop-service/internal/httpx"
	"github.com/dmolina/shop-service/internal/item"
	"github.com/dmolina/shop-service/internal/order"
)

// getCartHandler handles GET /cart.
func getCartHandler(carts cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ct, err := carts.GetOrCreate(c.Request.Context(), auth.MemberID(c))
		if err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "cart error")
			return
		}
		lines, err := carts.ListLines(c.Request.Context(), ct.ID)
		if err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "cart error")
			return
		}
		view, err := cart.BuildView(ct.ID, lines)
		if err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "cart error")
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// addCartItemHandler handles POST /cart/items.
func addCartItemHandler(carts cart.Repository, items item.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cart.AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json")
			return
		}
		if req.ItemID == "" || req.Quantity < 1 {
			httpx.Fail(c, http.StatusBadRequest, "item_id and a positive quantity are required")
			return
		}
		if _, err := items.GetByID(c.Request.Context(), req.ItemID); err != nil {
			httpx.Fail(c, http.StatusNotFound, "item not found")
			return
		}
		ct, err := carts.GetOrCreate(c.Request.Context(), auth.MemberID(c))
		if err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "cart error")
			return
		}
		line, err := carts.AddItem(c.Request.Context(), ct.ID, req.ItemID, req.Quantity)
		if err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "cart error")
			return
		}
		c.JSON(http.StatusCreated, line)
	}
}

// ownCartLine loads the line and checks it belongs to the caller's cart.
func ownCartLine(c *gin.Context, carts cart.Repository) (*cart.CartItem, bool) {
	line, err := carts.GetLine(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.Fail(c, http.StatusNotFound, "cart item not found")
		return nil, false
	}
	ct, err := carts.GetOrCreate(c.Request.Context(), auth.MemberID(c))
	if err != nil {
		httpx.Fail(c, http.StatusInternalServerError, "cart error")
		return nil, false
	}
	if line.CartID != ct.ID {
		httpx.Fail(c, http.StatusForbidden, "not your cart item")
		return nil, false
	}
	return line, true
}

// updateCartItemHandler handles PUT /cart/items/:id.
func updateCartItemHandler(carts cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cart.UpdateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json")
			return
		}
		if req.Quantity < 1 {
			httpx.Fail(c, http.StatusBadRequest, "quantity must be at least 1")
			return
		}
		line, ok := ownCartLine(c, carts)
		if !ok {
			return
		}
		if err := carts.UpdateQuantity(c.Request.Context(), line.ID, req.Quantity); err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "cart error")
			return
		}
		line.Quantity = req.Quantity
		c.JSON(http.StatusOK, line)
	}
}

// deleteCartItemHandler handles DELETE /cart/items/:id.
func deleteCartItemHandler(carts cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		line, ok := ownCartLine(c, carts)
		if !ok {
			return
		}
		if _, err := carts.DeleteLine(c.Request.Context(), line.ID); err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "cart error")
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// checkoutCartHandler handles POST /cart/orders.
func checkoutCartHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cart.CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json")
			return
		}
		d, err := svc.PlaceFromCart(c.Request.Context(), auth.MemberID(c), req.CartItemIDs)
		if err != nil {
			// a non-nil order means it committed and only the cart
			// cleanup failed; the client still gets their order
			if d != nil {
				c.JSON(http.StatusCreated, d)
				return
			}
			switch {
			case errors.Is(err, order.ErrEmptyOrder):
				httpx.Fail(c, http.StatusBadRequest, err.Error())
			case errors.Is(err, cart.ErrNotFound), errors.Is(err, item.ErrNotFound):
				httpx.Fail(c, http.StatusNotFound, err.Error())
			case errors.Is(err, order.ErrForbidden):
				httpx.Fail(c, http.StatusForbidden, "not your cart item")
			case errors.Is(err, order.ErrOutOfStock):
				httpx.Fail(c, http.StatusConflict, order.ErrOutOfStock.Error())
			default:
				httpx.Fail(c, http.StatusInternalServerError, "checkout error")
			}
			return
		}
		c.JSON(http.StatusCreated, d)
	}
}
