package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// Fixture serves one bundled JSON fixture verbatim, the way the original
// app's web server hosted public/*.json: a bare array, no envelope, no
// mutation endpoints.
func Fixture(dir, name string) gin.HandlerFunc {
	path := filepath.Join(dir, name)
	return func(c *gin.Context) {
		raw, err := os.ReadFile(path)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "fixture tidak ditemukan", "file": name})
			return
		}
		if !json.Valid(raw) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "fixture bukan JSON valid", "file": name})
			return
		}
		c.Data(http.StatusOK, "application/json", raw)
	}
}
