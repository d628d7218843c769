package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-api/internal/core/auth"
	"go-portfolio-api/internal/domain"
	mdw "go-portfolio-api/internal/transport/http/middleware"
	resp "go-portfolio-api/internal/transport/http/response"
)

type UserHandler struct {
	repo domain.UserRepository
}

func NewUserHandler(repo domain.UserRepository) *UserHandler {
	return &UserHandler{repo: repo}
}

// Create 依赖 email 唯一索引挡重复注册；
// 撞索引时仍按原契约回 200 + 提示语，而不是 409。
func (h *UserHandler) Create(c *gin.Context) {
	var doc map[string]any
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, resp.Msg(err.Error()))
		return
	}
	res, err := h.repo.Create(c.Request.Context(), doc)
	if errors.Is(err, domain.ErrEmailTaken) {
		c.JSON(http.StatusOK, resp.Msg("user already exist"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *UserHandler) List(c *gin.Context) {
	out, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	c.JSON(http.StatusOK, out)
}

// AdminStatus 只允许查自己：路径里的 email 必须等于 token 身份。
func (h *UserHandler) AdminStatus(c *gin.Context) {
	email := c.Param("email")
	if email != auth.Email(mdw.Claims(c)) {
		c.JSON(http.StatusForbidden, resp.Forbidden())
		return
	}
	u, err := h.repo.FindByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	admin := u != nil && u.Role == domain.RoleAdmin
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

func (h *UserHandler) Promote(c *gin.Context) {
	res, err := h.repo.PromoteAdmin(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *UserHandler) Delete(c *gin.Context) {
	res, err := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	c.JSON(http.StatusOK, res)
}
