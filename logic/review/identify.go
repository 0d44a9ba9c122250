package review

import (
	"sort"
	"strings"

	"contract-review/logic/catalog"
	"contract-review/types"
)

// IdentifyType 识别合同类型（基于关键词匹配）。
// 标题命中 +0.5，key_clauses 的每个关键词命中 +0.1；零分条目丢弃；
// 按分数稳定降序，同分保持目录顺序。
func IdentifyType(tables *catalog.Tables, contractText string) []types.TypeScore {
	textLower := strings.ToLower(contractText)
	var scores []types.TypeScore

	for _, info := range tables.ContractTypes {
		score := 0.0

		// 检查合同标题
		if strings.Contains(textLower, strings.ToLower(info.ContractType)) {
			score += 0.5
		}

		// 检查关键条款关键词
		if info.KeyClauses != "" {
			for _, kw := range strings.Split(info.KeyClauses, "、") {
				if kw != "" && strings.Contains(textLower, strings.ToLower(kw)) {
					score += 0.1
				}
			}
		}

		if score > 0 {
			scores = append(scores, types.TypeScore{ContractType: info.ContractType, Score: score})
		}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores
}
