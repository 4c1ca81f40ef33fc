package api

import (
	"errors"
	"net/http"

	"drivebook/internal/infra/objectstore"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	store *objectstore.LocalStore
}

func NewUploadHandler(store *objectstore.LocalStore) *UploadHandler {
	return &UploadHandler{store: store}
}

type uploadRequest struct {
	DataURL string `json:"data_url" binding:"required"`
}

// @Summary Upload payment proof
// @Description Store a base64 data-URL screenshot and return its public URL
// @Tags uploads
// @Accept json
// @Produce json
// @Param request body uploadRequest true "Upload request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	url, err := h.store.SaveDataURL(c.Request.Context(), req.DataURL)
	if err != nil {
		if errors.Is(err, objectstore.ErrInvalidDataURL) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid data URL",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
