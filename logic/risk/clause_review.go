package risk

import (
	"fmt"
	"strings"

	"contract-review/logic/catalog"
	"contract-review/types"
)

// ClauseReviewer 条款审核器：对照标准条款模板检查关键要素
type ClauseReviewer struct {
	tables *catalog.Tables
}

// NewClauseReviewer 构造条款审核器
func NewClauseReviewer(tables *catalog.Tables) *ClauseReviewer {
	return &ClauseReviewer{tables: tables}
}

// Review 审核单个条款：取第一条匹配的标准条款，逐一检查 key_elements
// 是否出现在条款文本中，缺失项汇总为问题并给出标准模板建议。
// 没有匹配的标准条款不是错误，返回无问题结果。
func (r *ClauseReviewer) Review(clauseText, clauseType, contractType string) types.ClauseReviewResult {
	result := types.ClauseReviewResult{ClauseType: clauseType}

	var standard *types.ClauseStandard
	for i := range r.tables.ClauseStandards {
		s := &r.tables.ClauseStandards[i]
		if !catalog.FieldContains(s.ClauseType, clauseType) {
			continue
		}
		if catalog.FieldContains(s.ContractType, contractType) || s.ContractType == "通用" {
			standard = s
			break
		}
	}
	if standard == nil {
		return result
	}

	for _, element := range strings.Split(standard.KeyElements, "、") {
		if element != "" && !strings.Contains(clauseText, element) {
			result.Issues = append(result.Issues, fmt.Sprintf("缺少关键要素: %s", element))
		}
	}

	if len(result.Issues) > 0 {
		result.Suggestions = append(result.Suggestions, types.ClauseSuggestion{
			Issue:            strings.Join(result.Issues, "、"),
			Suggestion:       fmt.Sprintf("建议参考标准模板：%s", standard.StandardTemplate),
			StandardTemplate: standard.StandardTemplate,
		})
	}

	result.HasIssues = len(result.Issues) > 0
	return result
}

// RevisedClause 生成修订后的条款：有建议时直接采用标准模板
func (r *ClauseReviewer) RevisedClause(originalClause string, suggestions []types.ClauseSuggestion) string {
	if len(suggestions) == 0 || suggestions[0].StandardTemplate == "" {
		return originalClause
	}
	return suggestions[0].StandardTemplate
}
