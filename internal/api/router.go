// Package api wires the HTTP routes: public registration, login, and
// product reads, plus the token-gated user and inventory operations.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/commercekit/storefront/auth"
	"github.com/commercekit/storefront/internal/catalog"
	"github.com/commercekit/storefront/internal/identity"
	"github.com/commercekit/storefront/logger"
	"github.com/commercekit/storefront/server/middleware"
)

// Router registers the API routes on a Gin engine.
type Router struct {
	identity *identityHandler
	catalog  *catalogHandler
	gate     gin.HandlerFunc
	log      *logger.Logger
}

// NewRouter creates the API router. validator is the token verifier the
// gated routes use.
func NewRouter(identitySvc *identity.Service, catalogSvc *catalog.Service, validator auth.TokenValidator, log *logger.Logger) *Router {
	return &Router{
		identity: &identityHandler{svc: identitySvc},
		catalog:  &catalogHandler{svc: catalogSvc},
		gate:     middleware.Auth(middleware.AuthConfig{Validator: validator}),
		log:      log.WithComponent("api"),
	}
}

// Register mounts all routes on the engine.
func (r *Router) Register(engine *gin.Engine) {
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the E-commerce API! Try /users, /products, etc.")
	})

	// Public: account creation and login.
	engine.POST("/register", r.identity.register)
	engine.POST("/login", r.identity.login)

	// Public: product reads.
	engine.GET("/products", r.catalog.list)
	engine.GET("/products/:id", r.catalog.get)

	// Gated: everything below requires a valid bearer token.
	gated := engine.Group("/", r.gate)
	gated.GET("/users", r.identity.listUsers)
	gated.GET("/users/:id", r.identity.getUser)
	gated.POST("/products", r.catalog.create)
	gated.PUT("/products/:id", r.catalog.update)
	gated.DELETE("/products/:id", r.catalog.remove)

	r.log.Debug("Routes registered")
}
