package launcher

import (
	"strings"
	"sync"

	"yousou/model"
)

// 全局查询处理器注册表
var (
	globalRegistry     = make(map[string]QueryHandler)
	globalRegistryLock sync.RWMutex
)

// QueryHandler 启动器查询处理器接口
// 处理器对一次查询产出有限的结果条目序列，期间通过Query轮询取消标志
type QueryHandler interface {
	// Name 返回处理器名称
	Name() string

	// Trigger 返回触发前缀，如 "yt "，输入以此开头时由该处理器处理
	Trigger() string

	// Synopsis 返回触发词后参数的提示文本
	Synopsis() string

	// Priority 返回处理器优先级，触发前缀冲突时优先级高者先匹配
	Priority() int

	// Handle 处理一次查询，返回结果条目
	Handle(query *Query) ([]model.LaunchItem, error)

	// Shutdown 释放处理器持有的资源，宿主保证在退出前调用
	Shutdown()
}

// RegisterGlobalHandler 注册查询处理器到全局注册表
func RegisterGlobalHandler(handler QueryHandler) {
	if handler == nil {
		return
	}

	globalRegistryLock.Lock()
	defer globalRegistryLock.Unlock()

	name := handler.Name()
	if name == "" {
		return
	}

	globalRegistry[name] = handler
}

// GetRegisteredHandlers 获取所有已注册的查询处理器
func GetRegisteredHandlers() []QueryHandler {
	globalRegistryLock.RLock()
	defer globalRegistryLock.RUnlock()

	handlers := make([]QueryHandler, 0, len(globalRegistry))
	for _, handler := range globalRegistry {
		handlers = append(handlers, handler)
	}

	return handlers
}

// GetHandlerByName 根据名称获取已注册的处理器
func GetHandlerByName(name string) (QueryHandler, bool) {
	globalRegistryLock.RLock()
	defer globalRegistryLock.RUnlock()

	handler, exists := globalRegistry[name]
	return handler, exists
}

// Manager 查询处理器管理器
type Manager struct {
	handlers []QueryHandler
}

// NewManager 创建新的查询处理器管理器
func NewManager() *Manager {
	return &Manager{
		handlers: make([]QueryHandler, 0),
	}
}

// RegisterHandler 注册查询处理器
func (m *Manager) RegisterHandler(handler QueryHandler) {
	m.handlers = append(m.handlers, handler)
}

// RegisterAllGlobalHandlers 注册所有全局查询处理器
func (m *Manager) RegisterAllGlobalHandlers() {
	for _, handler := range GetRegisteredHandlers() {
		m.RegisterHandler(handler)
	}
}

// GetHandlers 获取所有注册的查询处理器
func (m *Manager) GetHandlers() []QueryHandler {
	return m.handlers
}

// Match 按触发前缀匹配输入串，返回命中的处理器和去除触发词后的查询串
// 多个处理器命中时取优先级最高者
func (m *Manager) Match(input string) (QueryHandler, string, bool) {
	var matched QueryHandler
	for _, handler := range m.handlers {
		if !strings.HasPrefix(input, handler.Trigger()) {
			continue
		}
		if matched == nil || handler.Priority() > matched.Priority() {
			matched = handler
		}
	}
	if matched == nil {
		return nil, "", false
	}
	return matched, strings.TrimPrefix(input, matched.Trigger()), true
}

// Shutdown 关闭所有处理器
func (m *Manager) Shutdown() {
	for _, handler := range m.handlers {
		handler.Shutdown()
	}
}
