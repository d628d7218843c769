package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-api/internal/domain"
	resp "go-portfolio-api/internal/transport/http/response"
)

type SkillHandler struct {
	repo domain.SkillRepository
}

func NewSkillHandler(repo domain.SkillRepository) *SkillHandler {
	return &SkillHandler{repo: repo}
}

func (h *SkillHandler) List(c *gin.Context) {
	out, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *SkillHandler) Insert(c *gin.Context) {
	var doc map[string]any
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, resp.Msg(err.Error()))
		return
	}
	res, err := h.repo.Insert(c.Request.Context(), doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *SkillHandler) Delete(c *gin.Context) {
	res, err := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	c.JSON(http.StatusOK, res)
}
