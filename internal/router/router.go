package router

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	docs "github.com/moneta-finance/backend/api"
	"github.com/moneta-finance/backend/internal/auth"
	"github.com/moneta-finance/backend/internal/controllers/healthz"
	"github.com/moneta-finance/backend/internal/controllers/root"
	v1 "github.com/moneta-finance/backend/internal/controllers/v1"
	"github.com/moneta-finance/backend/internal/controllers/version"
	"github.com/moneta-finance/backend/internal/httputil"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time with -ldflags.
var buildVersion = "0.0.0"

// Config sets up the router with all middlewares. CORS is only enabled when
// allowOrigins is not empty. The returned function unregisters the Prometheus
// metrics and must be called when the router is not used anymore.
func Config(url *url.URL, allowOrigins []string) (*gin.Engine, func(), error) {
	err := registerPrometheusMetrics()
	if err != nil {
		return nil, func() {}, err
	}

	teardown := func() {
		if !unregisterPrometheusMetrics() {
			log.Error().Msg("Could not unregister Prometheus metrics")
		}
	}

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
	r.Use(URLMiddleware(url))
	r.Use(MetricsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httputil.HTTPError{
			Error: "this HTTP method is not allowed for the endpoint you called",
		})
	})
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
	if len(allowOrigins) > 0 {
		log.Debug().Str("CORS Allowed Origins", strings.Join(allowOrigins, " ")).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     allowOrigins,
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

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", buildVersion).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "Moneta"
	docs.SwaggerInfo.Version = buildVersion
	docs.SwaggerInfo.Description = "The backend for Moneta, a personal finance tracker for transactions, credit cards, invoices and installment purchases."

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in
// Separating this from Config() allows us to attach it to different
// paths for different use cases.
//
// All routes below /v1 require a bearer token signed with secret. The pprof
// profiles are served below /debug/pprof when enablePprof is set.
func AttachRoutes(group *gin.RouterGroup, secret []byte, enablePprof bool) {
	// Root routes
	root.RegisterRoutes(group.Group(""))
	version.RegisterRoutes(group.Group("/version"), buildVersion)
	healthz.RegisterRoutes(group.Group("/healthz"))

	// pprof performance profiles
	if enablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 setup
	v1Group := group.Group("/v1", auth.Middleware(secret))
	v1.RegisterRootRoutes(v1Group.Group(""))
	v1.RegisterBankRoutes(v1Group.Group("/banks"))
	v1.RegisterCardRoutes(v1Group.Group("/cards"))
	v1.RegisterCategoryRoutes(v1Group.Group("/categories"))
	v1.RegisterCategoryRuleRoutes(v1Group.Group("/category-rules"))
	v1.RegisterTransactionRoutes(v1Group.Group("/transactions"))
	v1.RegisterInvoiceRoutes(v1Group.Group("/invoices"))
	v1.RegisterProfileRoutes(v1Group.Group("/profile"))
	v1.RegisterDashboardRoutes(v1Group.Group(""))
	v1.RegisterExportRoutes(v1Group.Group("/export"), buildVersion)
	v1.RegisterImportRoutes(v1Group.Group("/import"))
}
