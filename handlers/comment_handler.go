package handlers

import (
	"net/http"
	"strconv"

	"github.com/syauqinrm/blog-backend/helper"
	"github.com/syauqinrm/blog-backend/middleware"
	"github.com/syauqinrm/blog-backend/models"
	"github.com/syauqinrm/blog-backend/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService services.CommentService
	Helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService, Helper: helper.NewHTTPHelper()}
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	comment, err := h.commentService.CreateComment(uint(postID), actor, req)
	if err != nil {
		h.Helper.SendTaxonomyError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment created successfully",
		"comment": comment,
	})
}

func (h *CommentHandler) GetComments(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var params models.CommentListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = 10
	}

	comments, total, err := h.commentService.GetComments(uint(postID), params)
	if err != nil {
		h.Helper.SendTaxonomyError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"comments":   comments,
		"pagination": h.Helper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *CommentHandler) GetComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	comment, err := h.commentService.GetComment(uint(id))
	if err != nil {
		h.Helper.SendTaxonomyError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	var req models.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	comment, err := h.commentService.UpdateComment(uint(id), actor, req)
	if err != nil {
		h.Helper.SendTaxonomyError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Comment updated successfully",
		"comment": comment,
	})
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	if err := h.commentService.DeleteComment(uint(id), actor); err != nil {
		h.Helper.SendTaxonomyError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
