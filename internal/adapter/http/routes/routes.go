package routes

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	_ "consig_origination/docs" // swagger spec
	"consig_origination/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

// Handlers groups every HTTP handler the router serves.
type Handlers struct {
	Contracts  *handlers.ContractHandler
	Teimosinha *handlers.TeimosinhaHandler
	Documents  *handlers.DocumentHandler
}

// NewRouter builds the engine with middlewares, swagger and the v1 routes.
func NewRouter(h Handlers, log *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addContractRoutes(v1, h)
	return router
}

// Run serves handler on port until ctx is canceled, then shuts down gracefully.
func Run(ctx context.Context, port int, handler http.Handler, log *zap.Logger) error {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("[http][server] listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("[http][server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(requestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("[http][server] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("[http][server] request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
