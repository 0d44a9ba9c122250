package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contract-review/logic/catalog"
	"contract-review/logic/review"
	"contract-review/types"
)

func pipelineTables() *catalog.Tables {
	return &catalog.Tables{
		ContractTypes: []types.ContractTypeRecord{
			{ContractType: "买卖合同", KeyClauses: "标的、价款、交付、验收"},
			{ContractType: "租赁合同", KeyClauses: "租赁物、租金、租期"},
		},
		RiskTemplates: []types.RiskTemplate{
			{
				RiskID:          "R003",
				RiskType:        types.LevelImportant,
				ContractType:    "通用",
				ClauseName:      "通用",
				RiskDescription: "违约责任、赔偿范围、计算方式约定不明",
			},
		},
		ClauseStandards: []types.ClauseStandard{
			{
				ClauseType:       "价款",
				ContractType:     "通用",
				KeyElements:      "金额、支付方式、支付时间",
				StandardTemplate: "合同总价款为人民币____元。",
			},
		},
	}
}

const sampleContract = `买卖合同
甲方：北京某某科技有限公司
乙方：上海某某设备有限公司
第一条 标的
本合同标的物为机械设备一台，数量一台。
第二条 价款
总价款为人民币100万元。
第三条 违约责任
任何一方违约应支付违约金。`

func TestReviewPipeline(t *testing.T) {
	svc := NewReviewService(pipelineTables(), nil, nil)

	resp, err := svc.Review(context.Background(), &types.ReviewRequest{
		ContractName: "设备采购合同",
		ContractText: sampleContract,
		ReviewDepth:  "standard",
		UserContext:  types.UserContext{Party: "甲方", Position: "平等"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ReviewID)

	// 类型识别
	require.NotNil(t, resp.Analysis)
	assert.Equal(t, "买卖合同", resp.Analysis.IdentifiedType)
	assert.Greater(t, resp.Analysis.TypeConfidence, 0.5)
	assert.Equal(t, 3, resp.Analysis.TotalClauses)

	// 风险报告四个桶恒存在
	require.NotNil(t, resp.RiskReport)
	for _, level := range types.SeverityOrder {
		_, ok := resp.RiskReport.RisksByLevel[level]
		assert.True(t, ok)
	}

	// 三个维度 + 评分
	require.Len(t, resp.Dimensions, 3)
	require.NotNil(t, resp.Scoring)
	assert.GreaterOrEqual(t, resp.Scoring.ComprehensiveScore, 0.0)
	assert.LessOrEqual(t, resp.Scoring.ComprehensiveScore, 100.0)

	// 价款条款缺少关键要素 -> 条款审核意见
	require.NotEmpty(t, resp.ClauseReviews)
	assert.Equal(t, "价款", resp.ClauseReviews[0].ClauseType)
	assert.NotZero(t, resp.ClauseReviews[0].Score.Score)

	// 两份 markdown 文档
	assert.Contains(t, resp.OpinionDoc, "法律审核意见书")
	assert.Contains(t, resp.AnnotatedDoc, "批注版")
}

func TestReviewDefaultsToStandardDepth(t *testing.T) {
	svc := NewReviewService(pipelineTables(), nil, nil)

	resp, err := svc.Review(context.Background(), &types.ReviewRequest{
		ContractName: "合同",
		ContractText: sampleContract,
	})
	require.NoError(t, err)
	assert.Equal(t, "标准审核", resp.Analysis.ReviewDepthName)
}

func TestReviewInvalidDepth(t *testing.T) {
	svc := NewReviewService(pipelineTables(), nil, nil)

	_, err := svc.Review(context.Background(), &types.ReviewRequest{
		ContractName: "合同",
		ContractText: sampleContract,
		ReviewDepth:  "full",
	})
	assert.ErrorIs(t, err, review.ErrInvalidDepth)
}

func TestListTypesAndDepths(t *testing.T) {
	svc := NewReviewService(pipelineTables(), nil, nil)

	assert.Equal(t, []string{"买卖合同", "租赁合同"}, svc.ListTypes())

	depths := svc.DepthOptions()
	assert.Len(t, depths, 3)
	assert.Contains(t, depths, "quick")
}
