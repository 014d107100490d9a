package launcher

import "context"

// Query 一次触发查询
// 取消标志由宿主持有（请求上下文），处理器在各挂起点轮询IsValid，
// 取消是协作式的，不会打断进行中的工作
type Query struct {
	Text string // 去除触发词后的查询串
	ctx  context.Context
}

// NewQuery 创建查询
func NewQuery(ctx context.Context, text string) *Query {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Query{Text: text, ctx: ctx}
}

// Context 返回查询关联的上下文
func (q *Query) Context() context.Context {
	return q.ctx
}

// IsValid 查询是否仍然有效，宿主取消后返回false
func (q *Query) IsValid() bool {
	return q.ctx.Err() == nil
}
