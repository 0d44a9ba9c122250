package dimension

import (
	"fmt"
	"regexp"
	"strings"

	"contract-review/types"
)

var (
	vaguePatterns = []*regexp.Regexp{
		regexp.MustCompile(`合理.*时间`),
		regexp.MustCompile(`尽快`),
		regexp.MustCompile(`适当`),
		regexp.MustCompile(`相关`),
	}
	enumeratedEtcPattern = regexp.MustCompile(`等.*具体`)
	acceptancePattern    = regexp.MustCompile(`(验收|检验|检查|测试).*?(标准|条件|要求)`)
	disputePattern       = regexp.MustCompile(`(争议|纠纷).*(仲裁|诉讼|法院)`)
)

// AnalyzePractical 实务维度分析：在实践中是否可执行、可操作
func AnalyzePractical(contractText string) *types.DimensionAnalysis {
	analysis := &types.DimensionAnalysis{
		Dimension: types.DimPractical,
		Rating:    "良好",
	}

	// 条款明确性
	if vague := FindVagueTerms(contractText); len(vague) > 0 {
		analysis.Risks = append(analysis.Risks, types.DimensionRisk{
			RiskType:    types.LevelGeneral,
			Description: fmt.Sprintf("发现%d处模糊表述", len(vague)),
			Level:       types.LevelGeneral,
			Suggestion:  "建议明确时间、金额、标准等关键要素",
		})
	}

	// 验收标准
	if !acceptancePattern.MatchString(contractText) {
		analysis.Risks = append(analysis.Risks, types.DimensionRisk{
			RiskType:    types.LevelImportant,
			Description: "缺少明确的验收标准",
			Level:       types.LevelImportant,
			Suggestion:  "建议补充具体的验收标准、程序和时间",
		})
	}

	// 争议解决
	if m := disputePattern.FindStringSubmatch(contractText); m != nil {
		analysis.Findings = append(analysis.Findings, types.Finding{
			Category:     "争议解决",
			Content:      fmt.Sprintf("已约定争议解决方式: %s", m[1]),
			Significance: "重要",
		})
	} else {
		analysis.Risks = append(analysis.Risks, types.DimensionRisk{
			RiskType:    types.LevelGeneral,
			Description: "未约定争议解决方式",
			Level:       types.LevelGeneral,
			Suggestion:  "建议明确约定仲裁或诉讼管辖",
		})
	}

	return analysis
}

// FindVagueTerms 查找模糊表述，返回命中的模式。固定模式之外，
// 裸"等"字（后文没有"等……具体"式明确列举收尾）也计一处。
func FindVagueTerms(text string) []string {
	var found []string
	for _, p := range vaguePatterns {
		if p.MatchString(text) {
			found = append(found, p.String())
		}
	}
	if hasBareEtc(text) {
		found = append(found, "等")
	}
	return found
}

// hasBareEtc 是否存在未被明确列举收尾的"等"。逐个出现位置检查其
// 后文，等价于负向前瞻 等(?!.*等.*具体)，RE2 不支持前瞻故手工展开。
func hasBareEtc(text string) bool {
	rest := text
	for {
		i := strings.Index(rest, "等")
		if i == -1 {
			return false
		}
		after := rest[i+len("等"):]
		if !enumeratedEtcPattern.MatchString(after) {
			return true
		}
		rest = after
	}
}
