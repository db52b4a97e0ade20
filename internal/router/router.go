package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	AddFavorite(c *ginext.Context)
	RemoveFavorite(c *ginext.Context)
	Register(c *ginext.Context)
	PasswordToken(c *ginext.Context)
	GoogleToken(c *ginext.Context)
}

// InitRouter wires the wire-contract routes. auth guards mutating
// endpoints; optionalAuth lets reads personalize favorite flags when a
// token is present.
func InitRouter(mode string, h Handler, auth, optionalAuth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	// Events
	router.GET("/events", optionalAuth, h.ListEvents)
	router.GET("/events/:id", optionalAuth, h.GetEvent)
	router.POST("/events", auth, h.CreateEvent)
	router.POST("/events/:id", auth, h.UpdateEvent)
	router.DELETE("/events/:id", auth, h.DeleteEvent)

	// Favorites
	router.POST("/favorites", auth, h.AddFavorite)
	router.DELETE("/favorites/:id", auth, h.RemoveFavorite)

	// Auth
	router.POST("/users", h.Register)
	router.POST("/token", h.PasswordToken)
	router.POST("/auth/google", h.GoogleToken)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
