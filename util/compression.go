package util

import (
	"bytes"
	"compress/gzip"
	"strings"

	"github.com/gin-gonic/gin"
	"yousou/config"
)

// bodyLogWriter 是一个用于缓冲响应体的写入器
type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

// Write 实现ResponseWriter接口
func (w bodyLogWriter) Write(b []byte) (int, error) {
	return w.body.Write(b)
}

// WriteString 实现ResponseWriter接口
func (w bodyLogWriter) WriteString(s string) (int, error) {
	return w.body.WriteString(s)
}

// GzipMiddleware 返回一个Gin中间件，用于压缩HTTP响应
func GzipMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 如果未启用压缩，直接跳过
		if config.AppConfig == nil || !config.AppConfig.EnableCompression {
			c.Next()
			return
		}

		// 检查客户端是否支持gzip
		if !strings.Contains(c.Request.Header.Get("Accept-Encoding"), "gzip") {
			c.Next()
			return
		}

		// 创建一个缓冲响应写入器
		buffer := &bytes.Buffer{}
		blw := &bodyLogWriter{body: buffer, ResponseWriter: c.Writer}
		writer := c.Writer
		c.Writer = blw

		// 处理请求
		c.Next()

		// 获取响应内容
		responseData := buffer.Bytes()

		// 如果响应大小小于最小压缩大小，直接返回原始内容
		if len(responseData) < config.AppConfig.MinSizeToCompress {
			writer.Write(responseData)
			return
		}

		// 设置gzip响应头
		c.Header("Content-Encoding", "gzip")
		c.Header("Vary", "Accept-Encoding")

		// 创建gzip写入器
		gz, err := gzip.NewWriterLevel(writer, gzip.BestSpeed)
		if err != nil {
			writer.Write(responseData)
			return
		}
		defer gz.Close()

		// 写入压缩内容
		gz.Write(responseData)
	}
}
