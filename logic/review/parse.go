package review

import (
	"context"

	"contract-review/logic/catalog"
	"contract-review/types"
)

// UnknownType 未识别出类型时的兜底值
const UnknownType = "未知"

// ParseContract 解析合同文本：识别类型 + 切分并分类条款。
// 识别不出类型不是错误，返回"未知"/置信度 0，流水线继续。
func ParseContract(ctx context.Context, tables *catalog.Tables, cfg *Config, classifier *Classifier, contractText string) *types.AnalysisResult {
	typeScores := IdentifyType(tables, contractText)

	result := &types.AnalysisResult{
		IdentifiedType: UnknownType,
		TypeConfidence: 0.0,
	}
	if len(typeScores) > 0 {
		result.IdentifiedType = typeScores[0].ContractType
		result.TypeConfidence = typeScores[0].Score
		if len(typeScores) > 1 {
			alts := typeScores[1:]
			if len(alts) > 3 {
				alts = alts[:3]
			}
			result.TypeAlternates = alts
		}
	}

	result.Clauses = SegmentClauses(ctx, cfg, classifier, contractText)
	for _, clauseList := range result.Clauses {
		result.TotalClauses += len(clauseList)
	}
	return result
}
