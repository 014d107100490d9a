package service

import (
	"context"
	"fmt"

	"yousou/launcher"
	"yousou/model"
)

// SearchService 查询服务，是HTTP宿主和查询处理器之间的适配层
type SearchService struct {
	manager *launcher.Manager
}

// NewSearchService 创建查询服务
func NewSearchService(manager *launcher.Manager) *SearchService {
	return &SearchService{manager: manager}
}

// GetManager 获取处理器管理器
func (s *SearchService) GetManager() *launcher.Manager {
	return s.manager
}

// Search 执行一次查询
// input是启动器输入框的完整内容（含触发词）；
// ctx来自HTTP请求，客户端断开即取消，充当宿主持有的查询有效标志
func (s *SearchService) Search(ctx context.Context, input string) (model.QueryResponse, error) {
	handler, rest, ok := s.manager.Match(input)
	if !ok {
		return model.QueryResponse{}, fmt.Errorf("输入未命中任何触发词: %q", input)
	}

	query := launcher.NewQuery(ctx, rest)
	items, err := handler.Handle(query)
	if err != nil {
		return model.QueryResponse{}, err
	}
	if items == nil {
		items = []model.LaunchItem{}
	}

	return model.QueryResponse{
		Total:   len(items),
		Handler: handler.Name(),
		Items:   items,
	}, nil
}
