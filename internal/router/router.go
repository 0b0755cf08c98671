// Package router sets up the gin engine with all routes and middlewares.
package router

import (
	"net/http"
	"os"
	"strings"

	docs "github.com/cavalaria/backend/api"
	"github.com/cavalaria/backend/internal/auth"
	"github.com/cavalaria/backend/internal/controllers/healthz"
	v1 "github.com/cavalaria/backend/internal/controllers/v1"
	"github.com/cavalaria/backend/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Config carries the controllers with injected dependencies and the
// optional authentication setup.
type Config struct {
	Documents v1.DocumentController

	// When Issuer is nil, authentication is disabled and the auth routes
	// are not registered.
	Issuer    *auth.Issuer
	Blacklist *auth.Blacklist
}

// Router controls the routes for the API.
func Router(config Config) (*gin.Engine, error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("allowOrigins", allowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	// Profiling is only exposed when explicitly enabled
	if _, ok := os.LookupEnv("ENABLE_PPROF"); ok {
		pprof.Register(r)
	}

	/*
	 *  Route setup
	 */
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)

	r.GET("/version", GetVersion)
	r.OPTIONS("/version", OptionsVersion)

	healthz.RegisterRoutes(r.Group("/healthz"))

	docs.SwaggerInfo.Title = "Cavalaria Backend"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for the cavalry unit administration: personnel, fleet, maintenance orders and spending balances."

	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 setup
	group := r.Group("/v1")
	group.Use(URLMiddleware())
	{
		group.GET("", GetV1)
		group.OPTIONS("", OptionsV1)
	}

	// The login and logout routes never require a token
	if config.Issuer != nil {
		authController := v1.AuthController{
			Issuer:    config.Issuer,
			Blacklist: config.Blacklist,
		}
		authController.RegisterAuthRoutes(group.Group("/auth"))
	}

	// Everything else does, when authentication is configured
	protected := group.Group("")
	if config.Issuer != nil {
		protected.Use(Authenticate(config.Issuer, config.Blacklist))
	}

	v1.RegisterOfficerRoutes(protected.Group("/officers"))
	v1.RegisterVehicleRoutes(protected.Group("/vehicles"), config.Documents.Vehicles)
	v1.RegisterReferenceValueRoutes(protected.Group("/vehicles"))
	v1.RegisterOrderRoutes(protected.Group("/orders"))
	config.Documents.RegisterDocumentRoutes(protected.Group("/documents"))

	// User management and deleting everything require the admin role
	admin := protected.Group("")
	if config.Issuer != nil {
		admin.Use(RequireAdmin())
	}
	v1.RegisterUserRoutes(admin.Group("/users"))
	admin.DELETE("", v1.Cleanup)

	log.Info().Msg("backend startup complete")

	return r, nil
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"`
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"`
	Version string `json:"version" example:"https://example.com/api/version"`
	V1      string `json:"v1" example:"https://example.com/api/v1"`
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	url := httputil.RequestHost(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    url + "/docs/index.html",
			Healthz: url + "/healthz",
			Version: url + "/version",
			V1:      httputil.RequestPathV1(c),
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}
type VersionObject struct {
	Version string `json:"version" example:"1.1.0"`
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Officers  string `json:"officers" example:"https://example.com/api/v1/officers"`
	Vehicles  string `json:"vehicles" example:"https://example.com/api/v1/vehicles"`
	Fleet     string `json:"fleet" example:"https://example.com/api/v1/vehicles/fleet"`
	Orders    string `json:"orders" example:"https://example.com/api/v1/orders"`
	Documents string `json:"documents" example:"https://example.com/api/v1/documents"`
	Auth      string `json:"auth" example:"https://example.com/api/v1/auth"`
	Users     string `json:"users" example:"https://example.com/api/v1/users"`
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Officers:  httputil.RequestPathV1(c) + "/officers",
			Vehicles:  httputil.RequestPathV1(c) + "/vehicles",
			Fleet:     httputil.RequestPathV1(c) + "/vehicles/fleet",
			Orders:    httputil.RequestPathV1(c) + "/orders",
			Documents: httputil.RequestPathV1(c) + "/documents",
			Auth:      httputil.RequestPathV1(c) + "/auth",
			Users:     httputil.RequestPathV1(c) + "/users",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
