package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"contract-review/api/response"
	"contract-review/service"
	"contract-review/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewHandler struct {
	reviewSvc *service.ReviewService
}

func NewReviewHandler(reviewSvc *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewSvc: reviewSvc}
}

// Review 合同审核接口
func (h *ReviewHandler) Review(c *gin.Context) {
	var req types.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "参数错误: contract_text 不能为空")
		return
	}
	if strings.TrimSpace(req.ContractText) == "" {
		response.Fail(c, "参数错误: contract_text 不能为空")
		return
	}
	if req.ContractName == "" {
		req.ContractName = "未命名合同"
	}

	fmt.Printf(">>> [DEBUG] 收到审核请求: %s, 深度: %s\n", req.ContractName, req.ReviewDepth)

	result, err := h.reviewSvc.Review(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, err.Error())
		return
	}

	response.Success(c, result)
}

// GetReview 查询历史审核记录
func (h *ReviewHandler) GetReview(c *gin.Context) {
	reviewID := c.Param("id")

	record, err := h.reviewSvc.GetReview(c.Request.Context(), reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, "审核记录不存在")
			return
		}
		response.Fail(c, err.Error())
		return
	}

	response.Success(c, record)
}

// History 审核历史查询
func (h *ReviewHandler) History(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 10
	}

	records, err := h.reviewSvc.History(c.Request.Context(), c.Query("contract_type"), limit)
	if err != nil {
		response.Fail(c, err.Error())
		return
	}

	response.Success(c, map[string]any{
		"records":     records,
		"total_count": len(records),
	})
}

// Feedback 审核反馈接口
func (h *ReviewHandler) Feedback(c *gin.Context) {
	var req types.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "参数错误: review_id 不能为空")
		return
	}
	if req.RiskAccuracy < 1 || req.RiskAccuracy > 5 {
		response.Fail(c, "参数错误: risk_accuracy 取值 1-5")
		return
	}

	if err := h.reviewSvc.SaveFeedback(c.Request.Context(), &req); err != nil {
		response.Fail(c, err.Error())
		return
	}

	response.Success(c, map[string]any{"status": "saved"})
}

// ListTypes 支持的合同类型列表
func (h *ReviewHandler) ListTypes(c *gin.Context) {
	response.Success(c, map[string]any{
		"contract_types": h.reviewSvc.ListTypes(),
	})
}

// TypeGuide 合同类型审核指引
func (h *ReviewHandler) TypeGuide(c *gin.Context) {
	contractType := c.Query("contract_type")
	if contractType == "" {
		response.Fail(c, "参数错误: contract_type 不能为空")
		return
	}

	guide := h.reviewSvc.TypeGuide(contractType)
	if guide == nil {
		response.Fail(c, fmt.Sprintf("不支持的合同类型: %s", contractType))
		return
	}

	response.Success(c, guide)
}

// DepthOptions 审核深度选项
func (h *ReviewHandler) DepthOptions(c *gin.Context) {
	response.Success(c, h.reviewSvc.DepthOptions())
}
