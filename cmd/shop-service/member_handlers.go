package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmolina/shop-service/internal/auth"
	"github.com/dmolina/shop-service/internal/httpx"
	"github.com/dmolina/shop-service/internal/member"
)

// registerMemberHandler handles POST /members/new.
func registerMemberHandler(svc *member.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req member.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json")
			return
		}
		m, err := svc.Register(c.Request.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, member.ErrAlreadyExist):
				httpx.Fail(c, http.StatusConflict, "email already registered")
			case errors.Is(err, member.ErrInvalidInput), errors.Is(err, member.ErrPasswordTooWeak):
				httpx.Fail(c, http.StatusBadRequest, err.Error())
			default:
				httpx.Fail(c, http.StatusInternalServerError, "register error")
			}
			return
		}
		c.JSON(http.StatusCreated, m)
	}
}

// loginMemberHandler handles POST /members/login.
func loginMemberHandler(svc *member.Service, issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req member.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json")
			return
		}
		m, err := svc.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, member.ErrBadCredentials) {
				httpx.Fail(c, http.StatusUnauthorized, member.ErrBadCredentials.Error())
				return
			}
			httpx.Fail(c, http.StatusInternalServerError, "login error")
			return
		}
		token, err := issuer.Issue(m.ID, m.Email, m.Role)
		if err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "token error")
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "member": m})
	}
}

// getProfileHandler handles GET /members/me.
func getProfileHandler(repo member.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, err := repo.GetByID(c.Request.Context(), auth.MemberID(c))
		if err != nil {
			if errors.Is(err, member.ErrNotFound) {
				httpx.Fail(c, http.StatusNotFound, "member not found")
				return
			}
			httpx.Fail(c, http.StatusInternalServerError, "profile error")
			return
		}
		c.JSON(http.StatusOK, m)
	}
}
