package dimension

import (
	"fmt"
	"regexp"
	"strings"

	"contract-review/types"
)

var (
	partyAObligation = regexp.MustCompile(`甲方.*?(应当|应|须)`)
	partyBObligation = regexp.MustCompile(`乙方.*?(应当|应|须)`)
	exemptionPattern = regexp.MustCompile(`免责|不承担.*责任|概不负责`)
)

// essentialByType 各合同类型的必要条款关键词，未收录类型走 default
var essentialByType = map[string][]string{
	"买卖合同": {"标的", "数量", "价款"},
	"租赁合同": {"租赁物", "租金", "租赁期限"},
	"借款合同": {"借款金额", "利率", "还款期限"},
}

var essentialDefault = []string{"标的", "价款", "履行期限"}

// AnalyzeLegal 法律维度分析：从法律上是否有效、完整
func AnalyzeLegal(contractText, contractType string) *types.DimensionAnalysis {
	analysis := &types.DimensionAnalysis{
		Dimension: types.DimLegal,
		Rating:    "良好",
	}

	// 合同类型
	analysis.Findings = append(analysis.Findings, types.Finding{
		Category:     "合同类型",
		Content:      fmt.Sprintf("识别为: %s", contractType),
		Significance: "基础",
	})

	// 必要条款缺失 -> 单条聚合的致命风险
	if missing := missingEssentialClauses(contractText, contractType); len(missing) > 0 {
		analysis.Risks = append(analysis.Risks, types.DimensionRisk{
			RiskType:    types.LevelFatal,
			Description: fmt.Sprintf("缺少必要条款: %s", strings.Join(missing, ", ")),
			Level:       types.LevelFatal,
			Suggestion:  "必须补充,否则合同可能无法履行或产生争议",
		})
	}

	// 权利义务平衡
	if AssessBalance(contractText) < 0.3 {
		analysis.Risks = append(analysis.Risks, types.DimensionRisk{
			RiskType:    types.LevelImportant,
			Description: "权利义务严重不平衡",
			Level:       types.LevelImportant,
			Suggestion:  "建议调整违约责任、解除权等条款,增强平衡性",
		})
	}

	// 免责条款
	if exemptions := exemptionPattern.FindAllString(contractText, -1); len(exemptions) > 0 {
		analysis.Findings = append(analysis.Findings, types.Finding{
			Category:     "免责条款",
			Content:      fmt.Sprintf("发现%d处免责条款", len(exemptions)),
			Significance: "重要",
		})
	}

	return analysis
}

// missingEssentialClauses 返回文本中找不到的必要条款关键词
func missingEssentialClauses(text, contractType string) []string {
	required, ok := essentialByType[contractType]
	if !ok {
		required = essentialDefault
	}
	var missing []string
	for _, clause := range required {
		if !strings.Contains(text, clause) {
			missing = append(missing, clause)
		}
	}
	return missing
}

// AssessBalance 评估权利义务平衡性（0-1，1 为完全平衡）。
// 统计甲乙双方"应/应当/须"义务句数量之比；双方均为零取 0.5。
func AssessBalance(text string) float64 {
	a := len(partyAObligation.FindAllString(text, -1))
	b := len(partyBObligation.FindAllString(text, -1))

	if a+b == 0 {
		return 0.5
	}

	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return float64(lo) / float64(hi)
}
