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

type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService, Helper: helper.NewHTTPHelper()}
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	users, err := h.userService.GetUsers(actor)
	if err != nil {
		h.Helper.SendTaxonomyError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := h.userService.GetUser(actor, uint(id))
	if err != nil {
		h.Helper.SendTaxonomyError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	user, err := h.userService.UpdateUser(actor, uint(id), req)
	if err != nil {
		h.Helper.SendTaxonomyError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    user,
	})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.userService.DeleteUser(actor, uint(id)); err != nil {
		h.Helper.SendTaxonomyError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
