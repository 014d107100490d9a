package youtube

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogger 收集错误日志条目，供断言条数和内容
type captureLogger struct {
	mu     sync.Mutex
	errors []string
}

func (l *captureLogger) Info(format string, args ...interface{}) {}

func (l *captureLogger) Error(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

func (l *captureLogger) Errors() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.errors...)
}

func simpleText(text string) map[string]interface{} {
	return map[string]interface{}{"simpleText": text}
}

func runsText(texts ...string) map[string]interface{} {
	runs := make([]interface{}, 0, len(texts))
	for _, t := range texts {
		runs = append(runs, map[string]interface{}{"text": t})
	}
	return map[string]interface{}{"runs": runs}
}

func TestTextFrom(t *testing.T) {
	tests := []struct {
		name    string
		val     map[string]interface{}
		want    string
		wantKey string
	}{
		{name: "简单文本", val: simpleText("hello"), want: "hello"},
		{name: "简单文本去除空白", val: simpleText("  3:21\n"), want: "3:21"},
		{name: "单个片段", val: runsText("My Channel"), want: "My Channel"},
		{name: "多个片段拼接", val: runsText("foo", " ", "bar"), want: "foo bar"},
		{name: "片段列表为空", val: runsText(), want: ""},
		{name: "片段拼接后去除空白", val: runsText("  a", "b  "), want: "ab"},
		{name: "两种形式都缺失", val: map[string]interface{}{}, wantKey: "simpleText"},
		{name: "片段缺少text", val: map[string]interface{}{"runs": []interface{}{map[string]interface{}{}}}, wantKey: "text"},
		{name: "runs形状不对", val: map[string]interface{}{"runs": "oops"}, wantKey: "runs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := textFrom(tt.val)
			if tt.wantKey != "" {
				var missing *missingFieldError
				require.ErrorAs(t, err, &missing)
				assert.Equal(t, tt.wantKey, missing.key)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// 去除空白后的文本再做一次提取应保持不变
func TestTextFromTrimIdempotent(t *testing.T) {
	first, err := textFrom(simpleText("  Some Title  "))
	require.NoError(t, err)

	second, err := textFrom(simpleText(first))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEntryToItemVideo(t *testing.T) {
	fields := map[string]interface{}{
		"videoId":    "abc123",
		"title":      simpleText("Some Video"),
		"lengthText": simpleText("3:21"),
		"thumbnail": map[string]interface{}{
			"thumbnails": []interface{}{
				map[string]interface{}{"url": "https://i.ytimg.com/vi/abc123/hq.jpg?sqp=xyz&rs=abc"},
			},
		},
	}

	item, err := entryToItem("videoRenderer", fields)
	require.NoError(t, err)
	require.NotNil(t, item)

	assert.Equal(t, "Some Video", item.title)
	assert.Equal(t, "Video | 3:21", item.subtext)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", item.url)
	assert.Equal(t, "Watch on Youtube", item.actionName)
	assert.Equal(t, "https://i.ytimg.com/vi/abc123/hq.jpg", item.iconURL)
	assert.Empty(t, item.iconPath)
}

func TestEntryToItemVideoFullSubtext(t *testing.T) {
	fields := map[string]interface{}{
		"videoId":            "abc123",
		"title":              simpleText("Some Video"),
		"lengthText":         simpleText("3:21"),
		"shortViewCountText": simpleText("12K views"),
		"publishedTimeText":  simpleText("2 years ago"),
		"thumbnail":          map[string]interface{}{"thumbnails": []interface{}{}},
	}

	item, err := entryToItem("videoRenderer", fields)
	require.NoError(t, err)
	require.NotNil(t, item)

	assert.Equal(t, "Video | 3:21 | 12K views | 2 years ago", item.subtext)
	// 缩略图列表为空不是错误，只是没有图标可下载
	assert.Empty(t, item.iconURL)
}

func TestEntryToItemChannel(t *testing.T) {
	fields := map[string]interface{}{
		"channelId":           "UC1",
		"title":               runsText("My ", "Channel"),
		"subscriberCountText": simpleText("1.2K subscribers"),
	}

	item, err := entryToItem("channelRenderer", fields)
	require.NoError(t, err)
	require.NotNil(t, item)

	assert.Equal(t, "My Channel", item.title)
	assert.Equal(t, "Channel | 1.2K subscribers", item.subtext)
	assert.Equal(t, "https://www.youtube.com/channel/UC1", item.url)
	assert.Equal(t, "Show on Youtube", item.actionName)
	assert.Empty(t, item.iconURL)
}

func TestEntryToItemUnknownTag(t *testing.T) {
	item, err := entryToItem("adSlotRenderer", map[string]interface{}{"anything": "at all"})
	assert.NoError(t, err)
	assert.Nil(t, item)
}

func TestEntryToItemMissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		fields  map[string]interface{}
		wantKey string
	}{
		{
			name:    "视频缺少videoId",
			tag:     "videoRenderer",
			fields:  map[string]interface{}{"title": simpleText("t"), "thumbnail": map[string]interface{}{"thumbnails": []interface{}{}}},
			wantKey: "videoId",
		},
		{
			name:    "视频缺少thumbnail",
			tag:     "videoRenderer",
			fields:  map[string]interface{}{"videoId": "x", "title": simpleText("t")},
			wantKey: "thumbnail",
		},
		{
			name:    "视频缺少thumbnails",
			tag:     "videoRenderer",
			fields:  map[string]interface{}{"videoId": "x", "title": simpleText("t"), "thumbnail": map[string]interface{}{}},
			wantKey: "thumbnails",
		},
		{
			name:    "缩略图缺少url",
			tag:     "videoRenderer",
			fields:  map[string]interface{}{"videoId": "x", "title": simpleText("t"), "thumbnail": map[string]interface{}{"thumbnails": []interface{}{map[string]interface{}{}}}},
			wantKey: "url",
		},
		{
			name:    "可选字段存在但形状不对",
			tag:     "videoRenderer",
			fields:  map[string]interface{}{"videoId": "x", "lengthText": "not a map"},
			wantKey: "lengthText",
		},
		{
			name:    "频道缺少channelId",
			tag:     "channelRenderer",
			fields:  map[string]interface{}{"title": simpleText("t")},
			wantKey: "channelId",
		},
		{
			name:    "频道缺少title",
			tag:     "channelRenderer",
			fields:  map[string]interface{}{"channelId": "UC1"},
			wantKey: "title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := entryToItem(tt.tag, tt.fields)
			assert.Nil(t, item)
			var missing *missingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.wantKey, missing.key)
		})
	}
}

func searchBlob(entries ...map[string]interface{}) map[string]interface{} {
	contents := make([]interface{}, 0, len(entries))
	for _, e := range entries {
		contents = append(contents, e)
	}
	return map[string]interface{}{
		"contents": map[string]interface{}{
			"twoColumnSearchResultsRenderer": map[string]interface{}{
				"primaryContents": map[string]interface{}{
					"sectionListRenderer": map[string]interface{}{
						"contents": []interface{}{
							map[string]interface{}{
								"itemSectionRenderer": map[string]interface{}{
									"contents": contents,
								},
							},
						},
					},
				},
			},
		},
	}
}

func TestCollectItems(t *testing.T) {
	logger := &captureLogger{}
	p := &YoutubePlugin{logger: logger}

	data := searchBlob(
		map[string]interface{}{"videoRenderer": map[string]interface{}{
			"videoId":   "abc123",
			"title":     simpleText("Good Video"),
			"thumbnail": map[string]interface{}{"thumbnails": []interface{}{}},
		}},
		// 未识别的渲染器类型静默跳过
		map[string]interface{}{"shelfRenderer": map[string]interface{}{"anything": true}},
		// 已识别但缺少必需字段，上报后跳过
		map[string]interface{}{"videoRenderer": map[string]interface{}{
			"title":     simpleText("Broken Video"),
			"thumbnail": map[string]interface{}{"thumbnails": []interface{}{}},
		}},
		map[string]interface{}{"channelRenderer": map[string]interface{}{
			"channelId": "UC1",
			"title":     simpleText("Good Channel"),
		}},
	)

	items := p.collectItems(data)
	require.Len(t, items, 2)
	assert.Equal(t, "Good Video", items[0].title)
	assert.Equal(t, "Good Channel", items[1].title)

	// 只有缺字段那条产生一条错误日志，日志里要能看到缺失的键和原始条目
	errs := logger.Errors()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "videoId")
	assert.Contains(t, errs[0], "Broken Video")
}

func TestCollectItemsEmptyStructure(t *testing.T) {
	logger := &captureLogger{}
	p := &YoutubePlugin{logger: logger}

	// 顶层结构不完整时不崩溃，按无条目处理
	items := p.collectItems(map[string]interface{}{"contents": map[string]interface{}{}})
	assert.Empty(t, items)
	assert.Empty(t, logger.Errors())
}

func TestCollectItemsSubtextOrder(t *testing.T) {
	p := &YoutubePlugin{logger: &captureLogger{}}

	data := searchBlob(map[string]interface{}{"videoRenderer": map[string]interface{}{
		"videoId":           "v1",
		"title":             simpleText("t"),
		"publishedTimeText": simpleText("1 year ago"),
		"lengthText":        simpleText("10:00"),
		"thumbnail":         map[string]interface{}{"thumbnails": []interface{}{}},
	}})

	items := p.collectItems(data)
	require.Len(t, items, 1)
	// 片段顺序固定，与原始条目里键的出现顺序无关
	assert.True(t, strings.HasPrefix(items[0].subtext, "Video | 10:00"))
	assert.Equal(t, "Video | 10:00 | 1 year ago", items[0].subtext)
}
