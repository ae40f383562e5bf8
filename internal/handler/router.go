package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds the HTTP settings that are not handlers.
type RouterConfig struct {
	CORSOrigins []string
	StaticDir   string
}

// Handlers groups the API handlers mounted by NewRouter.
type Handlers struct {
	Search   *SearchHandler
	Videos   *VideoHandler
	Accounts *AccountHandler
}

// NewRouter builds the gin engine with middleware, API routes and the optional static UI.
func NewRouter(cfg RouterConfig, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), RequestLogger(), Recovery())
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.POST("/search", h.Search.Search)
	api.POST("/search/geojson", h.Search.SearchGeoJSON)
	api.GET("/videos", h.Videos.Videos)
	api.POST("/save-accounts", h.Accounts.SaveAccounts)
	api.GET("/load-accounts", h.Accounts.LoadAccounts)

	r.NoRoute(staticFallback(cfg.StaticDir))

	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, RequestIDHeader)
	c.ExposeHeaders = []string{RequestIDHeader}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	return c
}

// staticFallback serves files from dir, falling back to index.html so the UI can route client side.
// API paths and requests without a static dir get a JSON 404.
func staticFallback(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		urlPath := c.Request.URL.Path
		if dir == "" || strings.HasPrefix(urlPath, "/api/") ||
			(c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
			respondError(c, http.StatusNotFound, "not found")
			return
		}

		name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+urlPath)))
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			c.File(name)
			return
		}

		index := filepath.Join(dir, "index.html")
		if _, err := os.Stat(index); err != nil {
			respondError(c, http.StatusNotFound, "not found")
			return
		}
		c.File(index)
	}
}
