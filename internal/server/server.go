package server

import (
	"context"
	"errors"
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"meshconv/internal/convert"
	"meshconv/internal/logging"
	"meshconv/internal/storage"
	"meshconv/internal/validation"
	"meshconv/pkg/config"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "meshconv/docs"
)

const (
	RFC3339Millis = "2006-01-02T15:04:05.000Z07:00"

	requestIDHeader    = "X-Request-Id"
	maxRequestIDLength = 128
	readHeaderTimeout  = 5 * time.Second
	shutdownTimeout    = 5 * time.Second
)

type Server struct {
	cfg       config.ServerConfig
	area      *storage.Area
	gate      validation.Gate
	converter *convert.Converter
	logger    *logging.Logger
}

func New(cfg config.ServerConfig, logger *logging.Logger) (*Server, error) {
	cfg.PopulateUnsetConfigVars()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}

	area, err := storage.New(cfg.StorageDir)
	if err != nil {
		return nil, err
	}

	return &Server{
		cfg:       cfg,
		area:      area,
		gate:      validation.NewGate(cfg.AllowedFormats...),
		converter: convert.New(area, logger),
		logger:    logger,
	}, nil
}

// StartServer godoc
// @title meshconv API
// @version 1.0
// @description An API to upload, fetch and convert STL and OBJ meshes
// @BasePath /api
func StartServer(cfg config.ServerConfig) error {
	logger := logging.BuildLogger()
	s, err := New(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is cancelled, then gives in-flight requests shutdownTimeout to finish.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", s.cfg.Port),
		Handler:           s.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting server", "addr", httpServer.Addr, "storage_dir", s.area.Root(),
			"max_upload_size", humanize.IBytes(s.cfg.MaxUploadSize))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = int64(s.cfg.MaxUploadSize)
	r.Use(requestIDMiddleware(), gin.LoggerWithConfig(gin.LoggerConfig{Formatter: logFormatter}), gin.Recovery())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api")
	v1.Use(cors.New(s.corsConfig()))
	v1.POST("/upload", s.UploadHandler)
	v1.HEAD("/upload", UploadProbeHandler)
	v1.GET("/models/:filename", s.FetchModelHandler)
	v1.GET("/models/:filename/info", s.ModelInfoHandler)
	v1.POST("/export", s.ExportHandler)
	v1.GET("/status", StatusHandler)
	for _, path := range []string{"/upload", "/models/:filename", "/models/:filename/info", "/export", "/status"} {
		v1.OPTIONS(path, PreflightHandler)
	}

	return r
}

func (s *Server) corsConfig() cors.Config {
	corsCfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodHead, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders:    []string{"Content-Disposition", requestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	// A literal "*" cannot be combined with credentials, so every origin is echoed instead.
	if s.cfg.AllowsAllOrigins() {
		corsCfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		corsCfg.AllowOrigins = s.cfg.AllowedOrigins
	}
	return corsCfg
}

// requestIDMiddleware keeps a well formed client supplied X-Request-Id or assigns a new one.
func requestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		rid := ctx.GetHeader(requestIDHeader)
		if !validRequestID(rid) {
			rid = uuid.NewString()
		}
		ctx.Set(logging.RequestIDKey, rid)
		ctx.Header(requestIDHeader, rid)
		ctx.Next()
	}
}

// validRequestID accepts up to maxRequestIDLength letters, digits, dots, dashes and underscores.
func validRequestID(rid string) bool {
	if rid == "" || len(rid) > maxRequestIDLength {
		return false
	}
	for _, r := range rid {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}

func logFormatter(param gin.LogFormatterParams) string {
	if param.Latency > time.Minute {
		param.Latency = param.Latency.Truncate(time.Second)
	}
	requestID, _ := param.Keys[logging.RequestIDKey].(string)

	return fmt.Sprintf("{\"timestamp\":\"%v\", \"status_code\": \"%d\", \"latency\": \"%v\", \"latency_raw\": \"%d\", \"response_size\": \"%s\", \"response_size_raw\": \"%d\", \"client_ip\":\"%s\", \"method\": \"%s\", \"path\": %q, \"request_id\": %q, \"error\": %q}\n",
		param.TimeStamp.Format(RFC3339Millis),
		param.StatusCode,
		param.Latency,
		param.Latency,
		humanize.Bytes(uint64(max(param.BodySize, 0))),
		param.BodySize,
		param.ClientIP,
		param.Method,
		param.Path,
		requestID,
		param.ErrorMessage,
	)
}
