package youtube

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"yousou/config"
	"yousou/launcher"
	"yousou/model"
	"yousou/util"
	"yousou/util/pool"
)

const (
	PluginName  = "youtube"
	DisplayName = "YouTube"
	Description = "触发搜索并打开YouTube视频和频道"
	TriggerWord = "yt "

	// ScratchPrefix 暂存目录的固定名称前缀，启动时按它清扫崩溃残留
	ScratchPrefix = "albert_yt_"
	// DumpNamePrefix 提取失败时诊断转储文件的名称前缀
	DumpNamePrefix = "albert.plugins.youtube_dump"
)

// BaseURL 搜索请求和结果链接的基础地址，测试中可替换
var BaseURL = "https://www.youtube.com"

// 配置未加载时的默认值
var (
	defaultDebounceTotal  = 500 * time.Millisecond
	defaultDebounceStep   = 10 * time.Millisecond
	defaultIconMaxWorkers = 10
)

// YoutubePlugin YouTube搜索查询处理器
type YoutubePlugin struct {
	priority   int
	logger     launcher.Logger
	scratchDir string
	// queryMu 串行化查询：新查询清空暂存目录前，
	// 上一次查询的图标下载必须已经全部返回
	queryMu sync.Mutex
}

// init 注册处理器
func init() {
	launcher.RegisterGlobalHandler(NewYoutubePlugin())
}

// NewYoutubePlugin 创建YouTube处理器实例
// 构造时先清扫上一个实例崩溃遗留的暂存目录，再建立本实例自己的
func NewYoutubePlugin() *YoutubePlugin {
	p := &YoutubePlugin{
		priority: 1,
		logger:   launcher.NewStdLogger("YOUTUBE"),
	}

	if err := util.SweepDirs(os.TempDir(), ScratchPrefix); err != nil {
		p.logger.Error("清扫遗留暂存目录失败: %v", err)
	}

	dir, err := os.MkdirTemp("", ScratchPrefix)
	if err != nil {
		p.logger.Error("创建暂存目录失败: %v", err)
	} else {
		p.scratchDir = dir
	}

	return p
}

// Name 处理器名称
func (p *YoutubePlugin) Name() string {
	return PluginName
}

// Trigger 触发前缀
func (p *YoutubePlugin) Trigger() string {
	return TriggerWord
}

// Synopsis 参数提示
func (p *YoutubePlugin) Synopsis() string {
	return "query"
}

// Priority 处理器优先级
func (p *YoutubePlugin) Priority() int {
	return p.priority
}

// SetLogger 注入日志实现
func (p *YoutubePlugin) SetLogger(logger launcher.Logger) {
	if logger != nil {
		p.logger = logger
	}
}

// ScratchDir 返回本实例的暂存目录
func (p *YoutubePlugin) ScratchDir() string {
	return p.scratchDir
}

// Handle 处理一次查询
// 返回nil表示查询为空或已被放弃，返回空切片表示完成但无结果
func (p *YoutubePlugin) Handle(query *launcher.Query) ([]model.LaunchItem, error) {
	text := strings.TrimSpace(query.Text)
	if text == "" {
		// 空查询直接结束，不发起任何网络请求
		return nil, nil
	}

	p.queryMu.Lock()
	defer p.queryMu.Unlock()

	// 防抖：分片短睡眠吸收连续按键，避免触发限流，期间轮询取消
	if !p.debounce(query) {
		return nil, nil
	}

	p.logger.Info("搜索YouTube: %q", text)

	data, found, err := p.fetchSearchData(text)
	if err != nil {
		return nil, err
	}
	if !found {
		// 页面结构变化：诊断转储已写出，按完成但无结果处理，与取消区分
		return []model.LaunchItem{}, nil
	}

	items := p.collectItems(data)

	if !p.fetchIcons(query, items) {
		return nil, nil
	}

	results := make([]model.LaunchItem, 0, len(items)+1)
	for i, item := range items {
		results = append(results, p.toLaunchItem(strconv.Itoa(i), item))
	}
	// 末尾固定追加一条跳转浏览器的条目，覆盖未收录的更多结果
	results = append(results, p.showMoreItem(text))
	return results, nil
}

// Shutdown 释放暂存目录
func (p *YoutubePlugin) Shutdown() {
	p.queryMu.Lock()
	defer p.queryMu.Unlock()

	if err := util.SweepDirs(os.TempDir(), ScratchPrefix); err != nil {
		p.logger.Error("清理暂存目录失败: %v", err)
	}
	p.scratchDir = ""
}

// debounce 执行防抖延迟，取消时返回false
func (p *YoutubePlugin) debounce(query *launcher.Query) bool {
	total, step := defaultDebounceTotal, defaultDebounceStep
	if config.AppConfig != nil {
		total, step = config.AppConfig.DebounceTotal, config.AppConfig.DebounceStep
	}
	if step <= 0 {
		step = defaultDebounceStep
	}

	steps := int(total / step)
	for i := 0; i < steps; i++ {
		time.Sleep(step)
		if !query.IsValid() {
			return false
		}
	}
	return true
}

// fetchIcons 清空暂存目录后并发下载各条目的缩略图
// 每次派发后检查取消标志，取消时放弃剩余派发并返回false；
// 无论正常结束还是放弃，返回前都等已开始的下载落地，
// 保证下一次查询清空暂存目录时没有仍在写入的下载
func (p *YoutubePlugin) fetchIcons(query *launcher.Query, items []*itemData) bool {
	if p.scratchDir == "" {
		return true
	}

	// 先清空上一次查询留下的图标
	if err := util.PurgeDir(p.scratchDir); err != nil {
		p.logger.Error("清空暂存目录失败: %v", err)
	}

	maxWorkers := defaultIconMaxWorkers
	if config.AppConfig != nil && config.AppConfig.IconMaxWorkers > 0 {
		maxWorkers = config.AppConfig.IconMaxWorkers
	}

	workerPool := pool.NewWorkerPool(maxWorkers)
	for _, item := range items {
		item := item
		workerPool.Submit(func() {
			// 单个缩略图失败只回退内置图标，绝不影响整次查询
			_ = p.downloadItemIcon(item, p.scratchDir)
		})
		if !query.IsValid() {
			workerPool.Abandon()
			return false
		}
	}
	workerPool.Wait()
	return true
}

// toLaunchItem 把显示记录组装成启动器条目，带打开和复制两个动作
func (p *YoutubePlugin) toLaunchItem(id string, item *itemData) model.LaunchItem {
	icon := item.iconPath
	if icon == "" {
		icon = p.defaultIcon()
	}
	return model.LaunchItem{
		ID:      id,
		Title:   item.title,
		Subtext: item.subtext,
		Icon:    icon,
		Actions: []model.ItemAction{
			{ID: "open", Name: item.actionName, Type: model.ActionOpen, Payload: item.url},
			{ID: "copy", Name: "Copy to clipboard", Type: model.ActionCopy, Payload: model.MarkdownLink(item.title, item.url)},
		},
	}
}

// showMoreItem 跳转到浏览器完整搜索结果页的固定条目
func (p *YoutubePlugin) showMoreItem(query string) model.LaunchItem {
	searchURL := fmt.Sprintf("%s/results?search_query=%s", BaseURL, url.QueryEscape(query))
	return model.LaunchItem{
		ID:    "show_more",
		Title: "Show more in browser",
		Icon:  p.defaultIcon(),
		Actions: []model.ItemAction{
			{ID: "show_more", Name: "Show more in browser", Type: model.ActionOpen, Payload: searchURL},
		},
	}
}

// defaultIcon 内置默认图标路径
func (p *YoutubePlugin) defaultIcon() string {
	if config.AppConfig != nil && config.AppConfig.DefaultIconPath != "" {
		return config.AppConfig.DefaultIconPath
	}
	return "icons/youtube.svg"
}
