package util

// ytInitialData解析后是一棵深层嵌套的泛型JSON树，
// 以下辅助函数用于按已知形状逐层取值，任何一层缺失都返回零值

// GetMap 从泛型JSON树中按键取子对象，不存在或类型不符时返回nil
func GetMap(node map[string]interface{}, key string) map[string]interface{} {
	if node == nil {
		return nil
	}
	child, ok := node[key].(map[string]interface{})
	if !ok {
		return nil
	}
	return child
}

// GetSlice 从泛型JSON树中按键取子数组，不存在或类型不符时返回nil
func GetSlice(node map[string]interface{}, key string) []interface{} {
	if node == nil {
		return nil
	}
	child, ok := node[key].([]interface{})
	if !ok {
		return nil
	}
	return child
}

// GetString 从泛型JSON树中按键取字符串，不存在或类型不符时返回空串
func GetString(node map[string]interface{}, key string) string {
	if node == nil {
		return ""
	}
	value, ok := node[key].(string)
	if !ok {
		return ""
	}
	return value
}
