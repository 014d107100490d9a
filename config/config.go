package config

import (
	"os"
	"runtime/debug"
	"strconv"
	"time"
)

// Config 应用配置结构
type Config struct {
	Port     string
	ProxyURL string
	UseProxy bool
	// YouTube插件相关配置
	UserAgent       string        // 固定的浏览器UA（服务器按客户端签名区分行为）
	DebounceTotal   time.Duration // 防抖总时长
	DebounceStep    time.Duration // 防抖单次休眠步长
	IconMaxWorkers  int           // 图标下载最大并发数
	DumpDir         string        // 提取失败时HTML转储目录
	DefaultIconPath string        // 内置默认图标路径
	// 认证相关配置
	AuthEnabled   bool   // 是否启用搜索接口认证
	AuthUsername  string // 管理账号用户名
	AuthPassword  string // 管理账号密码
	JWTSecret     string // JWT签名密钥
	TokenTTLHours int    // 令牌有效期（小时）
	// 压缩相关配置
	EnableCompression bool
	MinSizeToCompress int // 最小压缩大小（字节）
	// GC相关配置
	GCPercent      int  // GC触发阈值百分比
	OptimizeMemory bool // 是否启用内存优化
	// HTTP服务器配置
	HTTPReadTimeout  time.Duration // 读取超时
	HTTPWriteTimeout time.Duration // 写入超时
	HTTPIdleTimeout  time.Duration // 空闲超时
}

// 全局配置实例
var AppConfig *Config

// DefaultUserAgent 默认UA，与浏览器保持一致，YouTube按客户端签名返回不同页面
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/108.0.0.0 Safari/537.36"

// Init 初始化配置
func Init() {
	proxyURL := getProxyURL()

	AppConfig = &Config{
		Port:     getPort(),
		ProxyURL: proxyURL,
		UseProxy: proxyURL != "",
		// YouTube插件相关配置
		UserAgent:       getUserAgent(),
		DebounceTotal:   getDebounceTotal(),
		DebounceStep:    getDebounceStep(),
		IconMaxWorkers:  getIconMaxWorkers(),
		DumpDir:         getDumpDir(),
		DefaultIconPath: getDefaultIconPath(),
		// 认证相关配置
		AuthEnabled:   getAuthEnabled(),
		AuthUsername:  getEnvString("AUTH_USERNAME", "admin"),
		AuthPassword:  os.Getenv("AUTH_PASSWORD"),
		JWTSecret:     getEnvString("JWT_SECRET", "yousou-secret-key"),
		TokenTTLHours: getEnvInt("TOKEN_TTL_HOURS", 24),
		// 压缩相关配置
		EnableCompression: getEnableCompression(),
		MinSizeToCompress: getEnvInt("MIN_SIZE_TO_COMPRESS", 1024),
		// GC相关配置
		GCPercent:      getEnvInt("GC_PERCENT", 100),
		OptimizeMemory: getOptimizeMemory(),
		// HTTP服务器配置
		HTTPReadTimeout:  getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		HTTPWriteTimeout: getEnvDuration("HTTP_WRITE_TIMEOUT", 60*time.Second),
		HTTPIdleTimeout:  getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
	}

	// 应用GC配置
	applyGCSettings()
}

// 从环境变量获取服务端口，如果未设置则使用默认值
func getPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		return "8888"
	}
	return port
}

// 从环境变量获取SOCKS5代理URL，如果未设置则返回空字符串
func getProxyURL() string {
	return os.Getenv("PROXY")
}

// 从环境变量获取UA，如果未设置则使用默认浏览器UA
func getUserAgent() string {
	ua := os.Getenv("USER_AGENT")
	if ua == "" {
		return DefaultUserAgent
	}
	return ua
}

// 从环境变量获取防抖总时长(毫秒)
// 注意：500ms/10ms这组值来自对YouTube限流的经验规避，并无精确依据，
// 所以作为可调配置而非硬编码常量
func getDebounceTotal() time.Duration {
	return getEnvDuration("DEBOUNCE_TOTAL_MS", 500*time.Millisecond)
}

// 从环境变量获取防抖步长(毫秒)
func getDebounceStep() time.Duration {
	return getEnvDuration("DEBOUNCE_STEP_MS", 10*time.Millisecond)
}

// 从环境变量获取图标下载并发数，如果未设置则使用默认值
func getIconMaxWorkers() int {
	return getEnvInt("ICON_MAX_WORKERS", 10)
}

// 从环境变量获取HTML转储目录，如果未设置则使用系统临时目录
func getDumpDir() string {
	dir := os.Getenv("DUMP_DIR")
	if dir == "" {
		return os.TempDir()
	}
	return dir
}

// 从环境变量获取默认图标路径
func getDefaultIconPath() string {
	path := os.Getenv("DEFAULT_ICON")
	if path == "" {
		return "icons/youtube.svg"
	}
	return path
}

// 从环境变量获取是否启用认证，未设置AUTH_PASSWORD时强制禁用
func getAuthEnabled() bool {
	enabled := os.Getenv("AUTH_ENABLED")
	if enabled != "true" && enabled != "1" {
		return false
	}
	return os.Getenv("AUTH_PASSWORD") != ""
}

// 从环境变量获取是否启用压缩，如果未设置则默认禁用
func getEnableCompression() bool {
	enabled := os.Getenv("ENABLE_COMPRESSION")
	if enabled == "" {
		return false // 默认禁用，因为通常由Nginx等处理
	}
	return enabled == "true" || enabled == "1"
}

// 从环境变量获取是否启用内存优化，如果未设置则默认启用
func getOptimizeMemory() bool {
	enabled := os.Getenv("OPTIMIZE_MEMORY")
	if enabled == "" {
		return true
	}
	return enabled != "false" && enabled != "0"
}

// getEnvString 从环境变量获取字符串，未设置时返回默认值
func getEnvString(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt 从环境变量获取整数，未设置或非法时返回默认值
func getEnvInt(key string, defaultValue int) int {
	valueEnv := os.Getenv(key)
	if valueEnv == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueEnv)
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

// getEnvDuration 从环境变量获取毫秒数，未设置或非法时返回默认值
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueEnv := os.Getenv(key)
	if valueEnv == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueEnv)
	if err != nil || value <= 0 {
		return defaultValue
	}
	return time.Duration(value) * time.Millisecond
}

// applyGCSettings 应用GC相关设置
func applyGCSettings() {
	// 设置GC百分比
	debug.SetGCPercent(AppConfig.GCPercent)

	// 如果启用内存优化
	if AppConfig.OptimizeMemory {
		// 释放操作系统内存
		debug.FreeOSMemory()
	}
}
