package handler

import (
	"net/http"
	"strconv"

	"cms-backend/internal/dto"
	"cms-backend/internal/service"
	"cms-backend/pkg/apperror"
	"cms-backend/pkg/pagination"
	"cms-backend/pkg/response"
	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	service service.ContentService
}

func NewContentHandler(service service.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

func (h *ContentHandler) List(c *gin.Context) {
	caller, err := response.CurrentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	filter := dto.ContentFilter{
		UserID:    queryUint(c, "user_id"),
		ContentID: queryUint(c, "content_id"),
	}

	contents, err := h.service.List(c.Request.Context(), caller, filter, pageParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"contents": contents,
	})
}

func (h *ContentHandler) Search(c *gin.Context) {
	caller, err := response.CurrentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Search ignores the id filters; the base set is role-derived.
	filter := dto.ContentFilter{Search: c.Query("search")}

	contents, err := h.service.List(c.Request.Context(), caller, filter, pageParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"contents": contents,
	})
}

func (h *ContentHandler) Create(c *gin.Context) {
	caller, err := response.CurrentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(apperror.ErrInvalidParams, "Invalid params"))
		return
	}

	content, err := h.service.Create(c.Request.Context(), caller, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"content": content,
	})
}

func (h *ContentHandler) Update(c *gin.Context) {
	caller, err := response.CurrentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(apperror.ErrInvalidParams, "Invalid params"))
		return
	}

	content, err := h.service.Update(c.Request.Context(), caller, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"content": content,
	})
}

func (h *ContentHandler) Delete(c *gin.Context) {
	caller, err := response.CurrentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req struct {
		ID *uint `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(apperror.ErrInvalidParams, "Invalid params"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), caller, req.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func pageParams(c *gin.Context) (page, pageSize int) {
	page = pagination.Atoi(c.Query("page"), pagination.DefaultPage)
	pageSize = pagination.Atoi(c.Query("page_size"), pagination.DefaultPageSize)
	return page, pageSize
}

// queryUint parses an optional numeric query parameter; anything
// unparseable is treated as absent.
func queryUint(c *gin.Context, name string) *uint {
	value := c.Query(name)
	if value == "" {
		return nil
	}

	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return nil
	}

	id := uint(n)
	return &id
}
