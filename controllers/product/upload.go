package productControllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Long182k/E-Commercial-Server/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadDir resolves where product images are stored on disk. The same
// directory is served under /uploads by main.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// POST /products/upload — stores a product image and returns its public URL.
// The returned URL goes into the product's image field on create/update.
func UploadProductImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Status: 400, Msg: "Image file is required"})
			return
		}

		filename := uuid.NewString() + "-" + strings.ReplaceAll(file.Filename, " ", "_")
		saveDir := filepath.Join(UploadDir(), "products")
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			respondUnexpected(c, err)
			return
		}
		if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
			respondUnexpected(c, err)
			return
		}

		url := fmt.Sprintf("/uploads/products/%s", filename)
		c.JSON(http.StatusCreated, models.SuccessResponse{Msg: "Image uploaded successfully", Data: gin.H{"url": url}})
	}
}
