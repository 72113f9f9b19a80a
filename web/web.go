// Package web serves the embedded order form. The assets are compiled into
// the binary so the service ships as a single artifact.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var staticFS embed.FS

// Register mounts the order form at the root path
func Register(engine *gin.Engine) error {
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return err
	}

	engine.GET("/", func(c *gin.Context) {
		c.FileFromFS("index.html", http.FS(static))
	})
	engine.StaticFS("/static", http.FS(static))
	return nil
}
