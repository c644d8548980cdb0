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

type PostHandler struct {
	postService services.PostService
	Helper      *helper.HTTPHelper
}

func NewPostHandler(postService services.PostService) *PostHandler {
	return &PostHandler{postService: postService, Helper: helper.NewHTTPHelper()}
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	post, err := h.postService.CreatePost(actor, req)
	if err != nil {
		h.Helper.SendTaxonomyError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post created successfully",
		"post":    post,
	})
}

func (h *PostHandler) GetPosts(c *gin.Context) {
	var params models.PostListParams
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

	posts, total, err := h.postService.GetPosts(params)
	if err != nil {
		h.Helper.SendTaxonomyError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":      posts,
		"pagination": h.Helper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *PostHandler) GetMyPosts(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	posts, err := h.postService.GetMyPosts(actor)
	if err != nil {
		h.Helper.SendTaxonomyError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	post, err := h.postService.GetPost(uint(id))
	if err != nil {
		h.Helper.SendTaxonomyError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	post, err := h.postService.UpdatePost(uint(id), actor, req)
	if err != nil {
		h.Helper.SendTaxonomyError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post updated successfully",
		"post":    post,
	})
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	if err := h.postService.DeletePost(uint(id), actor); err != nil {
		h.Helper.SendTaxonomyError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
