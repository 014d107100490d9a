package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"yousou/model"
	"yousou/service"
	jsonutil "yousou/util/json"
)

var searchService *service.SearchService

// SetSearchService 设置查询服务
func SetSearchService(s *service.SearchService) {
	searchService = s
}

// SearchHandler 查询处理函数
// 请求上下文直接作为查询的取消标志：客户端断开（新的按键触发新请求）
// 即放弃当前查询
func SearchHandler(c *gin.Context) {
	var req model.QueryRequest

	// 根据请求方法不同处理参数
	if c.Request.Method == http.MethodGet {
		// GET方式：从URL参数获取
		req = model.QueryRequest{Input: c.Query("input")}
	} else {
		// POST方式：从请求体获取
		data, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, model.NewErrorResponse(400, "读取请求数据失败: "+err.Error()))
			return
		}
		if err := jsonutil.Unmarshal(data, &req); err != nil {
			c.JSON(http.StatusBadRequest, model.NewErrorResponse(400, "无效的请求参数: "+err.Error()))
			return
		}
	}

	if req.Input == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(400, "缺少input参数"))
		return
	}

	result, err := searchService.Search(c.Request.Context(), req.Input)
	if err != nil {
		response := model.NewErrorResponse(500, "查询失败: "+err.Error())
		jsonData, _ := jsonutil.Marshal(response)
		c.Data(http.StatusInternalServerError, "application/json", jsonData)
		return
	}

	// 返回结果
	response := model.NewSuccessResponse(result)
	jsonData, _ := jsonutil.Marshal(response)
	c.Data(http.StatusOK, "application/json", jsonData)
}
