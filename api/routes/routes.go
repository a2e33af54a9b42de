package routes

import (
	"net/http"

	"github.com/ArowuTest/fakelotto-backend/internal/config"
	"github.com/ArowuTest/fakelotto-backend/internal/handlers"
	"github.com/ArowuTest/fakelotto-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies holds the handlers and collaborators the router wires
type HandlerDependencies struct {
	TicketHandler *handlers.TicketHandler
	DrawHandler   *handlers.DrawHandler
	ShareTokens   middleware.ShareTokenParser
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(cfg))

	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		tickets := public.Group("/tickets")
		{
			tickets.POST("/decode", deps.TicketHandler.DecodeTicket)
		}

		draws := public.Group("/draws")
		{
			draws.POST("/synthesize", deps.DrawHandler.SynthesizeDraw)
			draws.GET("/view", deps.DrawHandler.GetDrawView)
			draws.GET("/shared/:token", middleware.ShareTokenMiddleware(deps.ShareTokens), deps.DrawHandler.GetSharedDraw)
		}
	}

	return router
}
