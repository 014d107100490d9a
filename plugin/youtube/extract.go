package youtube

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"yousou/config"
	"yousou/util"
	jsonutil "yousou/util/json"
)

// ytInitialData的赋值形式有两种：`var ytInitialData = {...};`
// 和 `window["ytInitialData"] = {...};`，取等号右侧的表达式文本
var initialDataPattern = regexp.MustCompile(`(?:var\s+|window\[")?ytInitialData(?:"\])?\s*=\s*`)

// extractInitialData 在返回的HTML中定位内嵌的ytInitialData并解析
// 找不到赋值模式不是硬错误（found=false），页面形状变化由调用方转储诊断；
// 找到但JSON解析失败才作为错误返回
func extractInitialData(body []byte) (map[string]interface{}, bool, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, false, err
	}

	var blob string
	doc.Find("script").EachWithBreak(func(i int, s *goquery.Selection) bool {
		text := s.Text()
		loc := initialDataPattern.FindStringIndex(text)
		if loc == nil {
			return true
		}
		candidate := strings.TrimSpace(text[loc[1]:])
		blob = strings.TrimSuffix(candidate, ";")
		return false
	})

	if blob == "" {
		return nil, false, nil
	}

	var data map[string]interface{}
	if err := jsonutil.UnmarshalString(blob, &data); err != nil {
		return nil, false, fmt.Errorf("解析ytInitialData失败: %w", err)
	}
	return data, true, nil
}

// fetchSearchData 请求搜索结果页并提取内嵌数据
// found=false表示请求成功但页面里没有预期数据，此时诊断HTML已转储到磁盘
func (p *YoutubePlugin) fetchSearchData(query string) (map[string]interface{}, bool, error) {
	searchURL := fmt.Sprintf("%s/results?search_query=%s", BaseURL, url.QueryEscape(query))

	body, err := util.FetchBytes(util.GetHTTPClient(), searchURL)
	if err != nil {
		return nil, false, fmt.Errorf("[%s] 搜索请求失败: %w", PluginName, err)
	}

	data, found, err := extractInitialData(body)
	if err != nil {
		return nil, false, fmt.Errorf("[%s] %w", PluginName, err)
	}
	if !found {
		p.logger.Error("未能从YouTube获取预期数据，多半是页面结构变化，也可能只是单次请求失败")
		p.logHTML(body)
		return nil, false, nil
	}
	return data, true, nil
}

// logHTML 把原始响应转储到带时间戳的诊断文件
func (p *YoutubePlugin) logHTML(body []byte) {
	dumpDir := os.TempDir()
	if config.AppConfig != nil && config.AppConfig.DumpDir != "" {
		dumpDir = config.AppConfig.DumpDir
	}

	name := fmt.Sprintf("%s-%s.html", DumpNamePrefix, time.Now().Format("20060102-150405"))
	path := filepath.Join(dumpDir, name)

	if err := util.WriteFile(path, body, 0644); err != nil {
		p.logger.Error("写入诊断转储失败: %v", err)
		return
	}
	p.logger.Error("原始HTML已转储到 %s", path)
	p.logger.Error("如果该页面在浏览器中显示正常，请携带转储文件提交issue")
}
