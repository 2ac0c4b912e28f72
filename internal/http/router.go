// Package api hosts the development fixture server: it serves the bundled
// JSON collections over HTTP at the same relative paths the dashboard
// fetched them from. It implements nothing of the remote API; every
// response is a static file.
package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	intconfig "simaru-admin/internal/config"
	h "simaru-admin/internal/http/handlers"
	"simaru-admin/internal/http/middleware"
)

var fixtureFiles = []string{"rooms.json", "bookings.json", "users.json"}

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/health", h.Health)
	for _, name := range fixtureFiles {
		r.GET("/"+name, h.Fixture(env.FixturesDir, name))
	}

	return r
}
