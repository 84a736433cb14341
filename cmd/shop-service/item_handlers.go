package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmolina/shop-service/internal/httpx"
	"github.com/dmolina/shop-service/internal/item"
)

func intQuery(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// listItemsHandler handles GET /items.
func listItemsHandler(repo item.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := item.Query{
			Q:      c.Query("q"),
			Limit:  intQuery(c, "limit", 20),
			Offset: intQuery(c, "offset", 0),
		}
		items, err := repo.List(c.Request.Context(), q)
		if err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "list error")
			return
		}
		if items == nil {
			items = []item.Item{}
		}
		c.JSON(http.StatusOK, item.ListResponse{Q: q.Q, Limit: q.Limit, Offset: q.Offset, Items: items})
	}
}

// getItemHandler handles GET /items/:id.
func getItemHandler(repo item.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		it, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, item.ErrNotFound) {
				httpx.Fail(c, http.StatusNotFound, "item not found")
				return
			}
			httpx.Fail(c, http.StatusInternalServerError, "get error")
			return
		}
		c.JSON(http.StatusOK, it)
	}
}

// sellStatusFor keeps sell_status consistent with the remaining stock.
func sellStatusFor(stock int) string {
	if stock == 0 {
		return item.StatusSoldOut
	}
	return item.StatusSell
}

// createItemHandler handles POST /admin/items.
func createItemHandler(repo item.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req item.CreateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json")
			return
		}
		if req.Name == "" || req.Price == "" {
			httpx.Fail(c, http.StatusBadRequest, "name and price are required")
			return
		}
		price, err := decimal.NewFromString(req.Price)
		if err != nil || price.IsNegative() {
			httpx.Fail(c, http.StatusBadRequest, "price must be a non-negative number")
			return
		}
		if req.Stock < 0 {
			httpx.Fail(c, http.StatusBadRequest, "stock must be non-negative")
			return
		}
		it := &item.Item{
			ID:         uuid.NewString(),
			Name:       req.Name,
			Detail:     req.Detail,
			Price:      price.StringFixed(2),
			Stock:      req.Stock,
			SellStatus: sellStatusFor(req.Stock),
		}
		if err := repo.Create(c.Request.Context(), it); err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "create error")
			return
		}
		c.JSON(http.StatusCreated, it)
	}
}

// updateItemHandler handles PUT /admin/items/:id.
func updateItemHandler(repo item.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		cur, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			httpx.Fail(c, http.StatusNotFound, "item not found")
			return
		}

		var req item.UpdateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json")
			return
		}

		updatePrice := false
		if req.Price != "" {
			price, err := decimal.NewFromString(req.Price)
			if err != nil || price.IsNegative() {
				httpx.Fail(c, http.StatusBadRequest, "price must be a non-negative number")
				return
			}
			cur.Price = price.StringFixed(2)
			updatePrice = true
		}
		if req.Stock != nil {
			if *req.Stock < 0 {
				httpx.Fail(c, http.StatusBadRequest, "stock must be non-negative")
				return
			}
			cur.Stock = *req.Stock
		}
		cur.Name = req.Name     // empty => unchanged, repo keeps old value
		cur.Detail = req.Detail // empty => unchanged
		cur.SellStatus = sellStatusFor(cur.Stock)

		if err := repo.Update(c.Request.Context(), cur, updatePrice); err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "update error")
			return
		}
		out, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "refetch error")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// deleteItemHandler handles DELETE /admin/items/:id.
func deleteItemHandler(repo item.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := repo.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "delete error")
			return
		}
		if !ok {
			httpx.Fail(c, http.StatusNotFound, "item not found")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
