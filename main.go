package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yousou/api"
	"yousou/config"
	"yousou/launcher"
	"yousou/service"
	"yousou/util"
	// 以下是处理器的空导入，用于触发各处理器的init函数，实现自动注册
	// 添加新处理器时，只需在此处添加对应的导入语句即可
	_ "yousou/plugin/youtube"
)

func main() {
	// 初始化应用
	initApp()

	// 启动服务器
	startServer()
}

// initApp 初始化应用程序
func initApp() {
	// 初始化配置
	config.Init()

	// 初始化HTTP客户端
	util.InitHTTPClient()
}

// startServer 启动Web服务器
func startServer() {
	// 初始化处理器管理器
	manager := launcher.NewManager()

	// 注册所有全局处理器（通过init函数自动注册到全局注册表）
	manager.RegisterAllGlobalHandlers()

	// 初始化查询服务
	searchService := service.NewSearchService(manager)

	// 设置路由
	router := api.SetupRouter(searchService)

	// 获取端口配置
	port := config.AppConfig.Port

	// 输出服务信息
	printServiceInfo(port, manager)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  config.AppConfig.HTTPReadTimeout,
		WriteTimeout: config.AppConfig.HTTPWriteTimeout,
		IdleTimeout:  config.AppConfig.HTTPIdleTimeout,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("启动服务器失败: %v", err)
		}
	}()

	// 等待退出信号，退出前按约定调用各处理器的Shutdown释放暂存目录
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("关闭服务器失败: %v", err)
	}

	manager.Shutdown()
	fmt.Println("服务器已退出")
}

// printServiceInfo 打印服务信息
func printServiceInfo(port string, manager *launcher.Manager) {
	fmt.Printf("服务器启动在 http://localhost:%s\n", port)

	// 输出代理信息
	if config.AppConfig.UseProxy {
		fmt.Printf("使用代理: %s\n", config.AppConfig.ProxyURL)
	} else {
		fmt.Println("未使用代理")
	}

	// 输出认证信息
	if config.AppConfig.AuthEnabled {
		fmt.Println("搜索接口认证已启用")
	} else {
		fmt.Println("搜索接口认证已禁用")
	}

	// 输出处理器信息
	fmt.Println("已加载处理器:")
	for _, h := range manager.GetHandlers() {
		fmt.Printf("  - %s (触发词: %q, 优先级: %d)\n", h.Name(), h.Trigger(), h.Priority())
	}
}
