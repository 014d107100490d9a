package model

import "fmt"

// 动作类型
const (
	ActionOpen = "open" // 打开URL
	ActionCopy = "copy" // 复制文本到剪贴板
)

// ItemAction 结果条目上的一个可执行动作
// 后端只描述动作，执行（打开浏览器/写剪贴板）由启动器前端完成
type ItemAction struct {
	ID      string `json:"id" sonic:"id"`
	Name    string `json:"name" sonic:"name"`
	Type    string `json:"type" sonic:"type"`       // open或copy
	Payload string `json:"payload" sonic:"payload"` // open时为URL，copy时为剪贴板内容
}

// LaunchItem 启动器结果条目
type LaunchItem struct {
	ID      string       `json:"id" sonic:"id"`
	Title   string       `json:"title" sonic:"title"`
	Subtext string       `json:"subtext" sonic:"subtext"`
	Icon    string       `json:"icon" sonic:"icon"` // 图标文件路径，下载失败时为内置默认图标
	Actions []ItemAction `json:"actions" sonic:"actions"`
}

// MarkdownLink 生成复制动作使用的markdown格式链接
func MarkdownLink(title, url string) string {
	return fmt.Sprintf("[%s](%s)", title, url)
}
