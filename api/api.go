package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"stockpulse/internal/app"
	"stockpulse/internal/domain"
	"stockpulse/internal/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ApiHandler struct {
	AnalysisApp     app.AnalysisApp
	SubscriptionApp app.SubscriptionApp
	DigestApp       app.DigestApp
	// Closers run on shutdown, e.g. the db handle.
	Closers []func() error
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowHeaders:    []string{"Content-Type"},
		AllowMethods:    []string{http.MethodOptions, http.MethodPost, http.MethodGet},
	}))
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to stockpulse"})
	})
	router.GET("/analyze", m.analyze)
	router.POST("/analyze", m.analyze)
	router.POST("/subscribe", m.subscribe)
	router.GET("/unsubscribe", m.unsubscribe)
	router.POST("/unsubscribe", m.unsubscribe)
	router.POST("/sendDailyDigest", m.sendDailyDigest)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	lg := logger.FromContext(c.Request.Context())
	if code >= 500 {
		lg.Errorw("request failed", "status", code, "error", err.Error())
		// internal detail stays in the logs
		err = errors.New("Internal server error")
	} else {
		lg.Infow("request rejected", "status", code, "error", err.Error())
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// returnAppError maps app errors onto status codes.
func returnAppError(err error, c *gin.Context) {
	var validationErr domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		returnErrorJsonCode(validationErr, c, 400)
	default:
		returnErrorJson(err, c)
	}
}

func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	requestID := uuid.New()
	ctx, lg := logger.With(c.Request.Context(),
		"requestID", requestID.String(),
		"method", c.Request.Method,
		"route", c.Request.URL.Path,
	)
	c.Request = c.Request.WithContext(ctx)
	c.Header("X-Request-ID", requestID.String())

	start := time.Now()
	c.Next()

	lg.Infow("request complete",
		"status", c.Writer.Status(),
		"ip", c.ClientIP(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}
