package youtube

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"yousou/util"
)

// iconFileName 从缩略图URL推导稳定的本地文件名
// 路径倒数第二段是内容ID，同一视频不同分辨率的缩略图共享该段
func iconFileName(iconURL string) (string, error) {
	parsed, err := url.Parse(iconURL)
	if err != nil {
		return "", err
	}
	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) < 2 {
		return "", fmt.Errorf("无法从URL推导图标文件名: %s", iconURL)
	}
	return segments[len(segments)-2] + ".png", nil
}

// downloadItemIcon 下载单个条目的缩略图到暂存目录
// 成功后才写iconPath，失败的条目保持为空并由渲染层回退到内置图标
func (p *YoutubePlugin) downloadItemIcon(item *itemData, scratchDir string) error {
	if item.iconURL == "" {
		return nil
	}

	name, err := iconFileName(item.iconURL)
	if err != nil {
		return err
	}

	data, err := util.FetchBytes(util.GetHTTPClient(), item.iconURL)
	if err != nil {
		return err
	}

	path := filepath.Join(scratchDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}

	item.iconPath = path
	return nil
}
