package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"contract-review/logic/risk"
	"contract-review/types"
)

func fixedRenderer() *Renderer {
	return &Renderer{now: func() time.Time {
		return time.Date(2026, 3, 15, 10, 0, 0, 0, time.Local)
	}}
}

func sampleReport() *types.RiskReport {
	return risk.GenerateReport([]types.Risk{
		{
			RiskID:       "R008",
			RiskType:     types.LevelFatal,
			Description:  "标的物权属不清",
			LegalBasis:   "民法典第597条",
			Suggestion:   "要求出卖人提供权属证明",
			Impact:       "可能无法取得标的物所有权",
			Location:     "第一条",
			OriginalText: "标的物为机械设备一台",
		},
		{
			RiskID:      "R003",
			RiskType:    types.LevelImportant,
			Description: "违约责任约定不明",
			Suggestion:  "明确违约金计算方式",
		},
	})
}

func sampleScoring() *types.ScoringResult {
	return &types.ScoringResult{
		ComprehensiveScore: 67.4,
		RiskLevel:          types.RiskMedium,
		DimensionScores:    types.DimensionScores{Commercial: 50, Legal: 80, Practical: 65},
		RiskDistribution:   map[string]int{},
		KeyRisks: []types.KeyRisk{
			{Dimension: types.DimLegal, RiskType: "法律风险", Description: "缺少必要条款", Level: types.LevelFatal},
		},
		Recommendations: []string{"🚨 法律维度: 发现1个致命风险,必须修改"},
	}
}

func TestLegalOpinion(t *testing.T) {
	analysis := &types.AnalysisResult{
		IdentifiedType:  "买卖合同",
		TypeConfidence:  0.7,
		ReviewDepthName: "标准审核",
	}

	doc := fixedRenderer().LegalOpinion("设备采购合同", analysis, sampleReport(), sampleScoring(),
		types.UserContext{Party: "甲方", Position: "平等"})

	assert.Contains(t, doc, "# 设备采购合同 - 法律审核意见书")
	assert.Contains(t, doc, "2026年03月15日")
	assert.Contains(t, doc, "**合同类型：** 买卖合同")
	assert.Contains(t, doc, "| **委托方身份** | 甲方 |")
	assert.Contains(t, doc, "综合评分**: 67.40/100")
	assert.Contains(t, doc, "标的物权属不清")
	assert.Contains(t, doc, "民法典第597条")
	assert.Contains(t, doc, "免责声明")

	// 致命风险存在 -> 整体高风险
	assert.Contains(t, doc, "**整体风险等级：** 高风险")

	// 必须修改清单包含致命+重要
	assert.Contains(t, doc, "✅ **标的物权属不清**")
	assert.Contains(t, doc, "✅ **违约责任约定不明**")
}

func TestLegalOpinionOverallLevel(t *testing.T) {
	r := fixedRenderer()
	analysis := &types.AnalysisResult{IdentifiedType: "买卖合同"}

	// 无风险 -> 低风险
	doc := r.LegalOpinion("合同", analysis, risk.GenerateReport(nil), nil, types.UserContext{})
	assert.Contains(t, doc, "**整体风险等级：** 低风险")

	// 重要风险 > 2 且无致命 -> 中等风险
	var risks []types.Risk
	for i := 0; i < 3; i++ {
		risks = append(risks, types.Risk{RiskType: types.LevelImportant, Description: "问题"})
	}
	doc = r.LegalOpinion("合同", analysis, risk.GenerateReport(risks), nil, types.UserContext{})
	assert.Contains(t, doc, "**整体风险等级：** 中等风险")
}

func TestLegalOpinionDefaults(t *testing.T) {
	doc := fixedRenderer().LegalOpinion("合同", &types.AnalysisResult{IdentifiedType: "未知"},
		risk.GenerateReport(nil), nil, types.UserContext{})

	assert.Contains(t, doc, "| **委托方身份** | 未指定 |")
	assert.Contains(t, doc, "| **合作背景** | 首次合作 |")
	assert.Contains(t, doc, "| **审核深度** | 标准审核 |")
	// 无评分时整节省略
	assert.NotContains(t, doc, "智能风险评分")
}

func TestAnnotatedContract(t *testing.T) {
	contract := "买卖合同\n第一条 标的\n标的物为机械设备一台。\n第二条 价款\n总价款100万元。"

	doc := fixedRenderer().AnnotatedContract("设备采购合同", contract, sampleReport())

	assert.Contains(t, doc, "# 设备采购合同 - 批注版")
	assert.Contains(t, doc, "| 批注1 | 🔴 致命风险 |")
	assert.Contains(t, doc, "🔴 必须修改（P0级）")

	// 原文命中行插入批注
	assert.Contains(t, doc, "标的物为机械设备一台。")
	assert.Contains(t, doc, "**[批注1] 标的物权属不清**")
	assert.Contains(t, doc, "要求出卖人提供权属证明")

	// 未命中行原样保留
	assert.Contains(t, doc, "总价款100万元。")
}

func TestAnnotatedContractNoRisks(t *testing.T) {
	doc := fixedRenderer().AnnotatedContract("合同", "第一条 标的\n标的物为货物。", risk.GenerateReport(nil))

	assert.Contains(t, doc, "无致命风险")
	assert.Contains(t, doc, "无重要风险")
	assert.Contains(t, doc, "共标注 **0** 个问题点")
	assert.NotContains(t, doc, "[批注1]")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "短描述", truncate("短描述", 30))
	long := strings.Repeat("风", 40)
	got := truncate(long, 30)
	assert.Equal(t, strings.Repeat("风", 30)+"...", got)
}
