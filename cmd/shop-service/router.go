package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmolina/shop-service/internal/auth"
	"github.com/dmolina/shop-service/internal/cart"
	"github.com/dmolina/shop-service/internal/httpx"
	"github.com/dmolina/shop-service/internal/item"
	"github.com/dmolina/shop-service/internal/member"
	"github.com/dmolina/shop-service/internal/order"
)

type routerDeps struct {
	issuer    *auth.TokenIssuer
	members   member.Repository
	memberSvc *member.Service
	items     item.Repository
	carts     cart.Repository
	orderSvc  *order.Service
}

func buildRouter(d routerDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// public
	r.POST("/members/new", registerMemberHandler(d.memberSvc))
	r.POST("/members/login", loginMemberHandler(d.memberSvc, d.issuer))
	r.GET("/items", listItemsHandler(d.items))
	r.GET("/items/:id", getItemHandler(d.items))

	// member session required
	authed := r.Group("/", auth.RequireAuth(d.issuer))
	{
		authed.GET("/members/me", getProfileHandler(d.members))

		authed.GET("/cart", getCartHandler(d.carts))
		authed.POST("/cart/items", addCartItemHandler(d.carts, d.items))
		authed.PUT("/cart/items/:id", updateCartItemHandler(d.carts))
		authed.DELETE("/cart/items/:id", deleteCartItemHandler(d.carts))
		authed.POST("/cart/orders", checkoutCartHandler(d.orderSvc))

		authed.POST("/orders", createOrderHandler(d.orderSvc))
		authed.GET("/orders", listOrdersHandler(d.orderSvc))
		authed.GET("/orders/:id", getOrderHandler(d.orderSvc))
		authed.POST("/orders/:id/cancel", cancelOrderHandler(d.orderSvc))
	}

	// item management
	admin := r.Group("/admin", auth.RequireAuth(d.issuer), auth.RequireRole(auth.RoleAdmin))
	{
		admin.POST("/items", createItemHandler(d.items))
		admin.PUT("/items/:id", updateItemHandler(d.items))
		admin.DELETE("/items/:id", deleteItemHandler(d.items))
	}

	return r
}
