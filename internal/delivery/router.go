package delivery

import (
	"context"
	"net/http"
	"strings"
	"time"

	"shop_service/config"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>{{APP_NAME}} API</title>
    <style>
        body { font-family: Helvetica, Arial, sans-serif; line-height: 1.6; padding: 20px; background-color: #f9f9f9; color: #333; }
        h1, h2 { border-bottom: 1px solid #ccc; padding-bottom: 5px; }
        ul { list-style: none; padding-left: 0; }
        li { margin-bottom: 10px; background-color: #fff; padding: 8px; border: 1px solid #eee; border-radius: 4px; }
        code { background-color: #e8e8e8; padding: 3px 6px; border-radius: 3px; }
        .method { font-weight: bold; display: inline-block; width: 70px; }
    </style>
</head>
<body>
    <h1>{{APP_NAME}} API</h1>

    <h2>Categories</h2>
    <ul>
        <li><span class="method">GET</span> <code><a href="/api/categories">/api/categories</a></code> - list categories</li>
        <li><span class="method">GET</span> <code>/api/categories/{id}</code> - one category</li>
        <li><span class="method">GET</span> <code>/api/categories/{id}/products</code> - products of a category</li>
        <li><span class="method">POST</span> <code>/api/categories</code> - body <code>{"name": "string"}</code></li>
        <li><span class="method">PATCH</span> <code>/api/categories/{id}</code> - body <code>{"name": "string"}</code></li>
        <li><span class="method">DELETE</span> <code>/api/categories/{id}</code> - fails while products reference it</li>
    </ul>

    <h2>Products</h2>
    <ul>
        <li><span class="method">GET</span> <code><a href="/api/products">/api/products</a></code> - query <code>limit</code>, <code>offset</code>, <code>category_id</code></li>
        <li><span class="method">GET</span> <code>/api/products/{id}</code> - one product</li>
        <li><span class="method">GET</span> <code>/api/products/category/{category_id}</code> - products of a category</li>
        <li><span class="method">POST</span> <code>/api/products</code> - body <code>{"name", "description", "price", "category_id", "image_url"}</code></li>
        <li><span class="method">PATCH</span> <code>/api/products/{id}</code> - any subset of the fields above</li>
        <li><span class="method">DELETE</span> <code>/api/products/{id}</code></li>
    </ul>

    <h2>Cart</h2>
    <ul>
        <li><span class="method">POST</span> <code>/api/cart</code> - body <code>{"product_id": quantity}</code>, returns priced items</li>
        <li><span class="method">POST</span> <code>/api/cart/add</code> - body <code>{"product_id", "quantity", "cart"}</code></li>
        <li><span class="method">PUT</span> <code>/api/cart/update</code> - body <code>{"product_id", "quantity", "cart"}</code></li>
        <li><span class="method">DELETE</span> <code>/api/cart/remove/{product_id}</code> - body <code>{"cart"}</code></li>
    </ul>
</body>
</html>
`

// RouteModule is a group of routes mounted under /api.
type RouteModule interface {
	RegisterRoutes(router gin.IRouter)
}

type Pinger interface {
	PingContext(ctx context.Context) error
}

func NewRouter(cfg *config.Config, logger *logrus.Logger, db Pinger, modules ...RouteModule) *gin.Engine {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(logger))
	router.Use(CORS(cfg))
	router.Use(DebugFlag(cfg.Debug))

	page := []byte(strings.ReplaceAll(indexPage, "{{APP_NAME}}", cfg.AppName))
	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})
	router.GET("/health", healthHandler(cfg.AppName, db))
	router.Static("/static", cfg.StaticDir)

	api := router.Group("/api")
	for _, module := range modules {
		module.RegisterRoutes(api)
	}
	return router
}

func healthHandler(appName string, db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			ErrorResponse(c, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		SuccessResponse(c, http.StatusOK, "OK", gin.H{"app_name": appName, "database": "up"})
	}
}
