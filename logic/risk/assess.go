package risk

import (
	"strings"

	"contract-review/logic/catalog"
	"contract-review/logic/review"
	"contract-review/types"
)

// Assessor 条款风险评估器。按合同类型与条款类型筛选风险模板，
// 用覆盖缺口启发式判断风险是否成立：条款文本没有覆盖到模板描述
// 的要点，才说明该风险主题未被妥善约定。
type Assessor struct {
	tables *catalog.Tables
	cfg    *review.Config
}

// NewAssessor 构造风险评估器
func NewAssessor(tables *catalog.Tables, cfg *review.Config) *Assessor {
	return &Assessor{tables: tables, cfg: cfg}
}

// AssessClause 评估单个条款的风险。
// 模板筛选条件：contract_type 包含给定类型或"通用"，且 clause_name
// 包含给定条款类型或"通用"。取描述前 3 个顿号分词，条款文本中命中
// 数严格小于分词数一半时计入风险。
func (a *Assessor) AssessClause(clauseText, clauseType, contractType string) []types.Risk {
	var risks []types.Risk

	for _, tpl := range a.tables.RiskTemplates {
		if !catalog.FieldContains(tpl.ContractType, contractType) &&
			!catalog.FieldContains(tpl.ContractType, "通用") {
			continue
		}
		if !catalog.FieldContains(tpl.ClauseName, clauseType) &&
			!catalog.FieldContains(tpl.ClauseName, "通用") {
			continue
		}
		if !a.cfg.ShouldReportRisk(tpl.RiskType) {
			continue
		}

		keywords := strings.Split(tpl.RiskDescription, "、")
		if len(keywords) > 3 {
			keywords = keywords[:3]
		}
		matched := 0
		for _, kw := range keywords {
			if strings.Contains(clauseText, kw) {
				matched++
			}
		}

		if float64(matched) < float64(len(keywords))/2 {
			risks = append(risks, types.Risk{
				RiskID:      tpl.RiskID,
				RiskType:    tpl.RiskType,
				Description: tpl.RiskDescription,
				LegalBasis:  tpl.LegalBasis,
				Suggestion:  tpl.ModificationSuggestion,
				Impact:      tpl.ImpactAnalysis,
			})
		}
	}

	return risks
}

// GenerateReport 把风险列表按等级分桶。四个桶恒存在，空桶计数 0。
func GenerateReport(allRisks []types.Risk) *types.RiskReport {
	byLevel := make(map[string][]types.Risk, len(types.SeverityOrder))
	for _, level := range types.SeverityOrder {
		byLevel[level] = []types.Risk{}
	}

	for _, r := range allRisks {
		if _, ok := byLevel[r.RiskType]; ok {
			byLevel[r.RiskType] = append(byLevel[r.RiskType], r)
		}
	}

	summary := make(map[string]int, len(byLevel))
	for level, risks := range byLevel {
		summary[level] = len(risks)
	}

	return &types.RiskReport{
		Summary:      summary,
		RisksByLevel: byLevel,
		TotalRisks:   len(allRisks),
	}
}

// ClassifyRiskLevel 按风险分数映射风险等级
func ClassifyRiskLevel(riskScore float64) string {
	switch {
	case riskScore >= 80:
		return types.LevelFatal
	case riskScore >= 60:
		return types.LevelImportant
	case riskScore >= 40:
		return types.LevelGeneral
	default:
		return types.LevelMinor
	}
}
