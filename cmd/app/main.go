package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"travelsurvey/cmd/fx/account_fx"
	"travelsurvey/cmd/fx/config_fx"
	"travelsurvey/cmd/fx/controllers_fx"
	"travelsurvey/cmd/fx/location_fx"
	"travelsurvey/cmd/fx/memcache_fx"
	"travelsurvey/cmd/fx/metrics_fx"
	"travelsurvey/cmd/fx/survey_fx"
	"travelsurvey/internal/api/controllers"
	"travelsurvey/internal/config"
	"travelsurvey/internal/metrics"
	"travelsurvey/internal/services"
	"travelsurvey/pkg/middleware"
)

func main() {
	fx.New(
		appOptions(),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
	).Run()
}

func appOptions() fx.Option {
	return fx.Options(
		config_fx.Module,
		metrics_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		survey_fx.Module,
		location_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

// Controllers groups everything RegisterRoutes mounts.
type Controllers struct {
	fx.In

	Account    *controllers.AccountController
	Navigation *controllers.NavigationController
	Screen     *controllers.ScreenController
	Survey     *controllers.SurveyController
	Nearby     *controllers.NearbyController
}

func ProvideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	m *metrics.Metrics,
	reg *prometheus.Registry,
	loginService services.LoginServiceInterface,
	ctrls Controllers) *gin.Engine {

	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger.Named("http"), m))
	r.Use(middleware.CORSMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	RegisterRoutes(r, loginService, ctrls)

	return r
}

func RegisterRoutes(r *gin.Engine, resolver middleware.IdentityResolver, ctrls Controllers) {
	r.POST("/login", ctrls.Account.Login)

	api := r.Group("/")
	api.Use(middleware.IdentityMiddleware(resolver))

	api.POST("/logout", middleware.RequireSession(), ctrls.Account.Logout)

	navGroup := api.Group("/navigation")
	navGroup.GET("", ctrls.Navigation.Tree)
	navGroup.GET("/resolve", ctrls.Navigation.Resolve)

	screensGroup := api.Group("/screens")
	screensGroup.GET("/home", ctrls.Screen.Home)
	screensGroup.GET("/profile", ctrls.Screen.Profile)
	screensGroup.GET("/settings", ctrls.Screen.Settings)
	screensGroup.GET("/survey", ctrls.Survey.Form)
	screensGroup.POST("/results", ctrls.Screen.Results)
	screensGroup.POST("/nearby", ctrls.Nearby.Nearby)

	api.POST("/survey", ctrls.Survey.Submit)
	api.GET("/destinations", ctrls.Nearby.Destinations)
}
