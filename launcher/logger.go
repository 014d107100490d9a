package launcher

import "log"

// Logger 注入给处理器的日志能力，分info和error两个级别
// 处理器不直接依赖具体日志实现，便于宿主替换
type Logger interface {
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// stdLogger 基于标准库log的默认实现
type stdLogger struct {
	prefix string
}

// NewStdLogger 创建带前缀的默认日志器
func NewStdLogger(prefix string) Logger {
	return &stdLogger{prefix: prefix}
}

func (l *stdLogger) Info(format string, args ...interface{}) {
	log.Printf("["+l.prefix+"] "+format, args...)
}

func (l *stdLogger) Error(format string, args ...interface{}) {
	log.Printf("["+l.prefix+"] ERROR: "+format, args...)
}

// NopLogger 丢弃所有日志的实现，宿主未注入日志钩子时使用
type NopLogger struct{}

func (NopLogger) Info(format string, args ...interface{})  {}
func (NopLogger) Error(format string, args ...interface{}) {}
