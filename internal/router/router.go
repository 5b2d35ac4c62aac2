package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	StreamEvents(c *ginext.Context)
	GetEventByCode(c *ginext.Context)
	CreateTable(c *ginext.Context)
	ListTables(c *ginext.Context)
	GetHistory(c *ginext.Context)
	CreateTerminal(c *ginext.Context)
	ListTerminals(c *ginext.Context)
	CreateInvitation(c *ginext.Context)
	CreateAssignment(c *ginext.Context)
	ValidateAccess(c *ginext.Context)
	RecordScan(c *ginext.Context)
	UpdateTerminal(c *ginext.Context)
	ArchiveTerminal(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	RunCron(c *ginext.Context)
}

// InitRouter mounts the API. scannerMW runs only on the endpoints scanner
// devices call.
func InitRouter(mode string, h Handler, scannerMW []ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.GET("/events", h.ListEvents)
		api.POST("/events", h.CreateEvent)
		api.GET("/events/stream", h.StreamEvents)

		byCode := api.Group("/events/event-code/:code")
		byCode.GET("", h.GetEventByCode)
		byCode.GET("/tables", h.ListTables)
		byCode.POST("/tables", h.CreateTable)
		byCode.GET("/history", h.GetHistory)
		byCode.GET("/terminals", h.ListTerminals)
		byCode.POST("/terminals", h.CreateTerminal)
		byCode.POST("/invitations", h.CreateInvitation)
		byCode.POST("/assignments", h.CreateAssignment)

		// Scanner devices
		scanner := api.Group("/events", scannerMW...)
		scanner.POST("/validate-access", h.ValidateAccess)
		scanner.POST("/scan", h.RecordScan)

		// Terminals
		api.PATCH("/events/terminals/:id", h.UpdateTerminal)
		api.DELETE("/events/terminals/:id", h.ArchiveTerminal)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)

		api.GET("/cron", h.RunCron)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
