package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"diffsteg/internal/logging"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "diffsteg/docs"
)

const (
	RFC3339Millis = "2006-01-02T15:04:05.000Z07:00"
)

// StartServer godoc
// @title diffsteg API
// @version 1.0
// @description An API to hide text in images and recover it by diffing against the original image
// @BasePath /api/v1
func StartServer(port string) error {
	logging.BuildLogger().Info("Starting server", "port", port)
	return NewRouter().Run(fmt.Sprintf(":%s", port))
}

func NewRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{Formatter: logFormatter}), gin.Recovery())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", func(ctx *gin.Context) {
		ctx.Status(http.StatusNoContent)
	})

	v1 := r.Group("/api/v1")
	v1.POST("/encode/image", EncodeImageHandler)
	v1.POST("/decode/image", DecodeImageHandler)
	v1.POST("/info/image", ImageInfoHandler)
	v1.POST("/compare/image", CompareImagesHandler)

	return r
}

type requestLogEntry struct {
	Timestamp      string `json:"timestamp"`
	StatusCode     int    `json:"status_code"`
	Latency        string `json:"latency"`
	LatencyRaw     int64  `json:"latency_raw"`
	RequestSize    string `json:"request_size"`
	RequestSizeRaw int    `json:"request_size_raw"`
	ClientIP       string `json:"client_ip"`
	Method         string `json:"method"`
	Path           string `json:"path"`
	Error          string `json:"error,omitempty"`
}

func logFormatter(param gin.LogFormatterParams) string {
	if param.Latency > time.Minute {
		param.Latency = param.Latency.Truncate(time.Second)
	}

	var bodySize uint64
	if param.BodySize > 0 {
		bodySize = uint64(param.BodySize)
	}
	entry, err := json.Marshal(requestLogEntry{
		Timestamp:      param.TimeStamp.Format(RFC3339Millis),
		StatusCode:     param.StatusCode,
		Latency:        param.Latency.String(),
		LatencyRaw:     int64(param.Latency),
		RequestSize:    humanize.Bytes(bodySize),
		RequestSizeRaw: param.BodySize,
		ClientIP:       param.ClientIP,
		Method:         param.Method,
		Path:           param.Path,
		Error:          param.ErrorMessage,
	})
	if err != nil {
		return fmt.Sprintf("{\"error\": %q}\n", err.Error())
	}
	return string(entry) + "\n"
}
