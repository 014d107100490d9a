package youtube

import (
	"strings"

	"yousou/util"
	jsonutil "yousou/util/json"
)

// itemData 规范化后的显示记录
// 由条目规范化产出，图标下载阶段只会写iconPath一个字段
type itemData struct {
	title      string
	subtext    string
	url        string
	actionName string
	iconURL    string
	iconPath   string
}

// missingFieldError 已识别的条目缺少必需字段
type missingFieldError struct {
	key string
}

func (e *missingFieldError) Error() string {
	return "缺少必需字段: " + e.key
}

// textFrom 从富文本字段提取纯文本
// 字段带runs子列表时按顺序拼接各片段的text，否则取simpleText，结果去除首尾空白
func textFrom(val map[string]interface{}) (string, error) {
	if runsRaw, ok := val["runs"]; ok {
		runs, ok := runsRaw.([]interface{})
		if !ok {
			return "", &missingFieldError{key: "runs"}
		}
		var sb strings.Builder
		for _, runRaw := range runs {
			run, ok := runRaw.(map[string]interface{})
			if !ok {
				return "", &missingFieldError{key: "runs"}
			}
			text, ok := run["text"].(string)
			if !ok {
				return "", &missingFieldError{key: "text"}
			}
			sb.WriteString(text)
		}
		return strings.TrimSpace(sb.String()), nil
	}

	text, ok := val["simpleText"].(string)
	if !ok {
		return "", &missingFieldError{key: "simpleText"}
	}
	return strings.TrimSpace(text), nil
}

// requiredString 取必需的字符串字段
func requiredString(fields map[string]interface{}, key string) (string, error) {
	value, ok := fields[key].(string)
	if !ok {
		return "", &missingFieldError{key: key}
	}
	return value, nil
}

// requiredText 取必需的富文本字段并提取纯文本
func requiredText(fields map[string]interface{}, key string) (string, error) {
	val, ok := fields[key].(map[string]interface{})
	if !ok {
		return "", &missingFieldError{key: key}
	}
	return textFrom(val)
}

// appendOptionalText 字段存在时提取纯文本并追加到副标题片段
// 字段缺失不是错误，存在但形状不对按缺失必需字段处理
func appendOptionalText(subtext []string, fields map[string]interface{}, key string) ([]string, error) {
	valRaw, ok := fields[key]
	if !ok {
		return subtext, nil
	}
	val, ok := valRaw.(map[string]interface{})
	if !ok {
		return nil, &missingFieldError{key: key}
	}
	text, err := textFrom(val)
	if err != nil {
		return nil, err
	}
	return append(subtext, text), nil
}

// videoIconURL 从视频条目的缩略图列表取首个URL并去掉查询串
// thumbnail和thumbnails键是必需的，列表本身允许为空
func videoIconURL(fields map[string]interface{}) (string, error) {
	thumb, ok := fields["thumbnail"].(map[string]interface{})
	if !ok {
		return "", &missingFieldError{key: "thumbnail"}
	}
	thumbsRaw, ok := thumb["thumbnails"]
	if !ok {
		return "", &missingFieldError{key: "thumbnails"}
	}
	thumbs, ok := thumbsRaw.([]interface{})
	if !ok || len(thumbs) == 0 {
		return "", nil
	}
	first, ok := thumbs[0].(map[string]interface{})
	if !ok {
		return "", &missingFieldError{key: "url"}
	}
	iconURL, ok := first["url"].(string)
	if !ok {
		return "", &missingFieldError{key: "url"}
	}
	return strings.SplitN(iconURL, "?", 2)[0], nil
}

// entryToItem 将一个带渲染器类型标签的原始条目转为显示记录
// 只识别videoRenderer和channelRenderer两种标签，
// 其余（广告、推荐位、货架等）返回nil表示静默跳过
func entryToItem(tag string, fields map[string]interface{}) (*itemData, error) {
	var subtext []string
	var actionName, urlPath, iconURL string
	var err error

	switch tag {
	case "videoRenderer":
		subtext = []string{"Video"}
		actionName = "Watch on Youtube"
		videoID, err := requiredString(fields, "videoId")
		if err != nil {
			return nil, err
		}
		urlPath = "watch?v=" + videoID
		if subtext, err = appendOptionalText(subtext, fields, "lengthText"); err != nil {
			return nil, err
		}
		if subtext, err = appendOptionalText(subtext, fields, "shortViewCountText"); err != nil {
			return nil, err
		}
		if subtext, err = appendOptionalText(subtext, fields, "publishedTimeText"); err != nil {
			return nil, err
		}
		if iconURL, err = videoIconURL(fields); err != nil {
			return nil, err
		}

	case "channelRenderer":
		subtext = []string{"Channel"}
		actionName = "Show on Youtube"
		channelID, err := requiredString(fields, "channelId")
		if err != nil {
			return nil, err
		}
		urlPath = "channel/" + channelID
		if subtext, err = appendOptionalText(subtext, fields, "videoCountText"); err != nil {
			return nil, err
		}
		if subtext, err = appendOptionalText(subtext, fields, "subscriberCountText"); err != nil {
			return nil, err
		}

	default:
		return nil, nil
	}

	title, err := requiredText(fields, "title")
	if err != nil {
		return nil, err
	}

	return &itemData{
		title:      title,
		subtext:    strings.Join(subtext, " | "),
		url:        BaseURL + "/" + urlPath,
		actionName: actionName,
		iconURL:    iconURL,
	}, nil
}

// collectItems 遍历解析结构的所有内容区段，规范化每个条目
// 单个条目的错误上报后跳过，不中断整批处理
func (p *YoutubePlugin) collectItems(data map[string]interface{}) []*itemData {
	primary := util.GetMap(util.GetMap(util.GetMap(data, "contents"), "twoColumnSearchResultsRenderer"), "primaryContents")
	sections := util.GetSlice(util.GetMap(primary, "sectionListRenderer"), "contents")

	var items []*itemData
	for _, sectionRaw := range sections {
		section, ok := sectionRaw.(map[string]interface{})
		if !ok {
			continue
		}
		contents := util.GetSlice(util.GetMap(section, "itemSectionRenderer"), "contents")
		for _, entryRaw := range contents {
			entry, ok := entryRaw.(map[string]interface{})
			if !ok {
				continue
			}
			for tag, fieldsRaw := range entry {
				fields, ok := fieldsRaw.(map[string]interface{})
				if !ok {
					continue
				}
				item, err := entryToItem(tag, fields)
				if err != nil {
					// 上报缺失的键和原始条目，仅跳过这一条
					raw, _ := jsonutil.MarshalIndent(entry, "", "    ")
					p.logger.Error("%v，原始条目: %s", err, string(raw))
					continue
				}
				if item == nil {
					continue
				}
				items = append(items, item)
			}
		}
	}
	return items
}
