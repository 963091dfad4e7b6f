package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-service/dto"
	"blog-service/internal/logger"
	"blog-service/services"
)

// ListPostsHandler godoc
// @Summary      List posts
// @Description  List all blog posts
// @Tags         posts
// @Produce      json
// @Success      200  {array}  dto.PostDTO
// @Router       /posts [get]
func ListPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			logger.Log.Errorf("list posts: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// CreatePostHandler godoc
// @Summary      Create post
// @Description  Create a blog post from title, content and a composite author
// @Tags         posts
// @Accept       json
// @Param        post  body  dto.CreatePostRequest  true  "Post fields"
// @Produce      json
// @Success      201  {object}  dto.PostDTO
// @Router       /posts [post]
func CreatePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.CreatePostRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		post, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			logger.Log.Errorf("create post: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusCreated, post)
	}
}

// GetPostHandler godoc
// @Summary      Get post by id
// @Description  Get a single post by ObjectID
// @Tags         posts
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.PostDTO
// @Failure      404  {object}  object{error=string}
// @Router       /posts/{id} [get]
func GetPostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		post, err := svc.GetByID(c.Request.Context(), idStr)
		if errors.Is(err, services.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if err != nil {
			logger.Log.Errorf("get post %s: %v", idStr, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// UpdatePostHandler godoc
// @Summary      Update post
// @Description  Partially update a post; only supplied fields change. A body id, when present, must equal the path id.
// @Tags         posts
// @Accept       json
// @Param        id    path  string                 true  "ObjectID"
// @Param        post  body  dto.UpdatePostRequest  true  "Fields to change"
// @Success      204
// @Failure      400  {object}  object{error=string}
// @Router       /posts/{id} [put]
func UpdatePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		var in dto.UpdatePostRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		err := svc.Update(c.Request.Context(), idStr, in)
		if errors.Is(err, services.ErrIDMismatch) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id mismatch"})
			return
		}
		if err != nil {
			logger.Log.Errorf("update post %s: %v", idStr, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// DeletePostHandler godoc
// @Summary      Delete post
// @Description  Delete a post; deleting an absent id still succeeds
// @Tags         posts
// @Param        id   path   string  true  "ObjectID"
// @Success      204
// @Router       /posts/{id} [delete]
func DeletePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		if err := svc.Delete(c.Request.Context(), idStr); err != nil {
			logger.Log.Errorf("delete post %s: %v", idStr, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
