// Package dimension 实现三维审查法：商业、法律、实务三个独立维度的
// 启发式扫描。各维度互不共享状态，每次分析返回全新结果。
package dimension

import (
	"fmt"
	"regexp"
	"strings"

	"contract-review/types"
)

var (
	partyPattern    = regexp.MustCompile(`(甲方|乙方|丙方|委托方|受托方)[：:]\s*([^\n]+)`)
	pricePattern    = regexp.MustCompile(`(总价款|价款|价格|费用|报酬)[：:]\s*([^\n]+)`)
	deliveryPattern = regexp.MustCompile(`(交付|履行|提供)[：:]\s*([^\n]+)`)
)

// AnalyzeCommercial 商业维度分析：这笔交易从商业上是否合理
func AnalyzeCommercial(contractText string, userContext types.UserContext) *types.DimensionAnalysis {
	analysis := &types.DimensionAnalysis{
		Dimension: types.DimCommercial,
		Rating:    "中等",
	}

	// 交易主体
	parties := ExtractParties(contractText)
	if len(parties) > 0 {
		analysis.Findings = append(analysis.Findings, types.Finding{
			Category:     "交易主体",
			Content:      fmt.Sprintf("识别到交易主体: %s", strings.Join(parties, ", ")),
			Significance: "重要",
		})
	}

	// 商业合理性：弱势地位预警
	if userContext.Position == "弱势" {
		analysis.Risks = append(analysis.Risks, types.DimensionRisk{
			RiskType:    "商业风险",
			Description: "用户处于弱势地位,可能面临不对等条款",
			Level:       types.LevelImportant,
			Suggestion:  "重点关注权利义务平衡性,必要时要求调整",
		})
	}

	// 价格条款
	if priceTerms := extractPriceTerms(contractText); priceTerms != "" {
		analysis.Findings = append(analysis.Findings, types.Finding{
			Category:     "价格条款",
			Content:      fmt.Sprintf("价格条款: %s", priceTerms),
			Significance: "关键",
		})
	}

	// 用户关注点
	if userContext.Focus != "" {
		analysis.Suggestions = append(analysis.Suggestions, types.Suggestion{
			Aspect:  "用户关注点",
			Content: fmt.Sprintf("用户关注: %s,审核时应重点审查相关条款", userContext.Focus),
		})
	}

	return analysis
}

// ExtractParties 提取合同主体（角色标签 + 名称）
func ExtractParties(text string) []string {
	var parties []string
	for _, m := range partyPattern.FindAllStringSubmatch(text, -1) {
		parties = append(parties, fmt.Sprintf("%s: %s", m[1], strings.TrimSpace(m[2])))
	}
	return parties
}

func extractPriceTerms(text string) string {
	if m := pricePattern.FindStringSubmatch(text); m != nil {
		return fmt.Sprintf("%s: %s", m[1], strings.TrimSpace(m[2]))
	}
	return ""
}
