package util

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/proxy"
	"yousou/config"
)

// 全局HTTP客户端
var httpClient *http.Client

// InitHTTPClient 初始化HTTP客户端
func InitHTTPClient() {
	// 创建传输配置
	transport := &http.Transport{
		// 启用HTTP/2
		ForceAttemptHTTP2: true,

		// TLS配置
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: false,
		},

		// 连接池优化：搜索页与缩略图都走同一批主机，复用连接
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		MaxConnsPerHost:       100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,

		// TCP连接优化
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	}

	// 如果配置了代理，设置代理
	if config.AppConfig.UseProxy {
		proxyURL, err := url.Parse(config.AppConfig.ProxyURL)
		if err == nil {
			// 根据代理类型设置不同的处理方式
			if proxyURL.Scheme == "socks5" {
				// 创建SOCKS5代理拨号器
				dialer, err := proxy.FromURL(proxyURL, proxy.Direct)
				if err == nil {
					transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
						return dialer.Dial(network, addr)
					}
				}
			} else {
				// HTTP/HTTPS代理
				transport.Proxy = http.ProxyURL(proxyURL)
			}
		}
	}

	// 创建客户端
	httpClient = &http.Client{
		Transport: transport,
		Timeout:   time.Duration(60) * time.Second,
	}
}

// GetHTTPClient 获取HTTP客户端
func GetHTTPClient() *http.Client {
	if httpClient == nil {
		InitHTTPClient()
	}
	return httpClient
}

// FetchBytes 以固定浏览器头发起GET请求并读取完整响应体
// 搜索页与缩略图下载共用同一组请求头
func FetchBytes(client *http.Client, targetURL string) ([]byte, error) {
	req, err := http.NewRequest("GET", targetURL, nil)
	if err != nil {
		return nil, err
	}

	// 设置请求头（配置未初始化时退回默认UA）
	ua := config.DefaultUserAgent
	if config.AppConfig != nil && config.AppConfig.UserAgent != "" {
		ua = config.AppConfig.UserAgent
	}
	req.Header.Set("User-Agent", ua)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Connection", "keep-alive")

	// 发送请求
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("HTTP状态错误: %d", resp.StatusCode)
	}

	// 读取响应体
	return io.ReadAll(resp.Body)
}
