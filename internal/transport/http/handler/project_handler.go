package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-api/internal/domain"
	resp "go-portfolio-api/internal/transport/http/response"
)

// ProjectHandler 每个方法只做一次存储操作，驱动返回什么就回写什么。
type ProjectHandler struct {
	repo domain.ProjectRepository
}

func NewProjectHandler(repo domain.ProjectRepository) *ProjectHandler {
	return &ProjectHandler{repo: repo}
}

func (h *ProjectHandler) List(c *gin.Context) {
	out, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *ProjectHandler) Insert(c *gin.Context) {
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

func (h *ProjectHandler) FindByID(c *gin.Context) {
	doc, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	// 未命中与命中不区分状态码，零值照发
	c.JSON(http.StatusOK, doc)
}

func (h *ProjectHandler) Upsert(c *gin.Context) {
	var upd domain.ProjectUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, resp.Msg(err.Error()))
		return
	}
	res, err := h.repo.Upsert(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	res, err := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	c.JSON(http.StatusOK, res)
}
