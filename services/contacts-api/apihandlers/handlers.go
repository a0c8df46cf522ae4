package apihandlers

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/case-framework/contact-manager/pkg/apihelpers"
	"github.com/case-framework/contact-manager/pkg/apihelpers/middlewares"
	"github.com/case-framework/contact-manager/pkg/contacts"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const MSG_SERVER_UP = "Server is up and running"

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": MSG_SERVER_UP})
}

type HttpEndpoints struct {
	contactService *contacts.ContactService
}

func NewHTTPHandler(
	contactService *contacts.ContactService,
) *HttpEndpoints {
	return &HttpEndpoints{
		contactService: contactService,
	}
}

// NewRouter sets up the gin engine with logging, recovery, CORS and the
// contacts API mounted under apiRoot.
func NewRouter(h *HttpEndpoints, apiRoot string, allowOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(middlewares.RequestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("recovered from panic",
			slog.String("path", c.Request.URL.Path),
			slog.Any("panic", recovered),
		)
		apihelpers.AbortWithRouteError(c, http.StatusInternalServerError)
	}))
	router.Use(cors.New(corsConfig(allowOrigins)))

	router.NoRoute(func(c *gin.Context) {
		apihelpers.AbortWithRouteError(c, http.StatusNotFound)
	})

	root := router.Group(apiRoot)
	root.GET("/healthcheck", HealthCheckHandle)
	h.AddContactsAPI(root)

	return router
}

func corsConfig(allowOrigins []string) cors.Config {
	config := cors.Config{
		AllowMethods:  []string{"POST", "GET", "PUT", "DELETE"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Content-Length", middlewares.HEADER_REQUEST_ID},
		ExposeHeaders: []string{"Content-Type", "Content-Length", middlewares.HEADER_REQUEST_ID},
		MaxAge:        12 * time.Hour,
	}
	if len(allowOrigins) == 0 || slices.Contains(allowOrigins, "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowOrigins
	}
	return config
}
