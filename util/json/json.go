package json

import (
	"github.com/bytedance/sonic"
)

// API是sonic的全局配置实例
var API = sonic.ConfigDefault

// 初始化sonic配置
func init() {
	// ytInitialData中数字字段一律按json.Number保留，避免精度丢失
	API = sonic.Config{
		UseNumber:   true,
		EscapeHTML:  true,
		SortMapKeys: false,
	}.Froze()
}

// Marshal 使用sonic序列化对象到JSON
func Marshal(v interface{}) ([]byte, error) {
	return API.Marshal(v)
}

// MarshalIndent 序列化对象到格式化的JSON，用于错误日志中转储原始条目
func MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	return API.MarshalIndent(v, prefix, indent)
}

// Unmarshal 使用sonic反序列化JSON到对象
func Unmarshal(data []byte, v interface{}) error {
	return API.Unmarshal(data, v)
}

// UnmarshalString 反序列化JSON字符串到对象
func UnmarshalString(str string, v interface{}) error {
	return API.Unmarshal([]byte(str), v)
}
