package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-api/internal/core/auth"
	resp "go-portfolio-api/internal/transport/http/response"
)

type TokenHandler struct {
	jwter *auth.JWTer
}

func NewTokenHandler(j *auth.JWTer) *TokenHandler {
	return &TokenHandler{jwter: j}
}

// Issue 对请求体不做任何身份核验，签了就发（契约如此）。
func (h *TokenHandler) Issue(c *gin.Context) {
	var identity map[string]any
	if err := c.ShouldBindJSON(&identity); err != nil {
		c.JSON(http.StatusBadRequest, resp.Msg(err.Error()))
		return
	}
	token, err := h.jwter.Issue(identity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
