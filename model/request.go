package model

// QueryRequest 查询请求参数
// Input为启动器输入框的完整内容，含触发词，如 "yt golang tutorial"
type QueryRequest struct {
	Input string `json:"input" binding:"required"` // 完整输入串
}

// LoginRequest 登录请求参数
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // 用户名
	Password string `json:"password" binding:"required"` // 密码
}
