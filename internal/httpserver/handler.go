package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	decomposeHTTP "em-agent/internal/decompose/delivery/http"
	identityHTTP "em-agent/internal/identity/delivery/http"
	"em-agent/internal/model"
	productivityHTTP "em-agent/internal/productivity/delivery/http"
	"em-agent/internal/session"
	"em-agent/web"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(srv.mw.Recovery(), srv.mw.RequestLogger())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Running in production mode")
	} else {
		srv.l.Infof(ctx, "Running in %s mode", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	srv.gin.StaticFS("/static", web.Static())
}

// registerDomainRoutes registers all routes that need a browser session.
//
// Pattern to follow when adding a new domain:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(app, h, srv.mw.Auth())
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	app := srv.gin.Group("/", srv.mw.Session())

	app.GET("/", srv.index)

	// Sign-in
	identityH := identityHTTP.New(srv.l, srv.identityUC, srv.externalURL, srv.redirectPath)
	identityHTTP.RegisterRoutes(app, identityH, srv.redirectPath)
	srv.l.Infof(ctx, "Sign-in routes registered: /login %s /logout", srv.redirectPath)

	// Task decomposition
	decomposeH := decomposeHTTP.New(srv.l, srv.decomposeUC)
	decomposeHTTP.RegisterRoutes(app, decomposeH, srv.mw.RateLimit())
	srv.l.Infof(ctx, "Decompose route registered at POST /decompose")

	// Calendar and tasks
	productivityH := productivityHTTP.New(srv.l, srv.productivityUC)
	productivityHTTP.RegisterPageRoutes(app, productivityH, srv.mw.Auth())
	productivityHTTP.RegisterRoutes(app.Group("/api/v1"), productivityH, srv.mw.AuthAPI())
	srv.l.Infof(ctx, "Productivity routes registered: /calendar /tasks /api/v1")

	return nil
}

// index renders the landing page, personalised when signed in.
func (srv *HTTPServer) index(c *gin.Context) {
	var user *model.User
	if sess, ok := session.FromContext(c.Request.Context()); ok {
		user = sess.User
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"user": user})
}
