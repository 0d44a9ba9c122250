package scoring

import (
	"regexp"
	"strings"

	"contract-review/types"
)

var (
	timePattern   = regexp.MustCompile(`\d+[年月天周小时]`)
	amountPattern = regexp.MustCompile(`\d+[元万]`)
)

var clauseVagueWords = []string{"合理", "尽快", "适当", "相关", "等"}

// keyElements 各条款类型应具备的关键要素
var keyElements = map[string][]string{
	"标的":   {"名称", "规格", "数量"},
	"价款":   {"金额", "币种", "支付方式"},
	"履行":   {"时间", "地点", "方式"},
	"违约责任": {"违约金", "赔偿", "计算方式"},
}

var clauseSuggestions = map[string]string{
	"标的":   "建议明确标的物的名称、规格、数量、质量标准等关键信息",
	"价款":   "建议明确金额、币种、支付时间、支付方式等",
	"履行":   "建议明确履行时间、地点、方式、验收标准等",
	"违约责任": "建议明确违约情形、违约金计算方式、赔偿范围等",
}

// ClauseRiskScore 计算单个条款的风险评分：明确性 +30、完整性 +40、
// 平衡性 +20、可执行性 +25，按累计分映射等级并给出条款建议。
func ClauseRiskScore(clauseText, clauseType, contractType string) types.ClauseScore {
	score := 0
	var issues []string

	if isVague(clauseText) {
		score += 30
		issues = append(issues, "条款表述模糊,缺乏明确标准")
	}
	if !hasKeyElements(clauseText, clauseType) {
		score += 40
		issues = append(issues, "条款缺少关键要素")
	}
	if !isBalanced(clauseText) {
		score += 20
		issues = append(issues, "权利义务不平衡")
	}
	if !isExecutable(clauseText) {
		score += 25
		issues = append(issues, "缺乏可操作性")
	}

	var level string
	switch {
	case score >= 80:
		level = types.LevelFatal
	case score >= 50:
		level = types.LevelImportant
	case score >= 20:
		level = types.LevelGeneral
	default:
		level = types.LevelMinor
	}

	return types.ClauseScore{
		Score:      score,
		Level:      level,
		Issues:     issues,
		Suggestion: clauseSuggestion(clauseType, issues),
	}
}

func isVague(text string) bool {
	for _, w := range clauseVagueWords {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// hasKeyElements 条款至少包含该类型一半的关键要素
func hasKeyElements(text, clauseType string) bool {
	required, ok := keyElements[clauseType]
	if !ok {
		return true
	}
	found := 0
	for _, elem := range required {
		if strings.Contains(text, elem) {
			found++
		}
	}
	return float64(found) >= float64(len(required))/2
}

// isBalanced 是否同时约束双方
func isBalanced(text string) bool {
	return strings.Contains(text, "甲方") && strings.Contains(text, "乙方")
}

// isExecutable 是否有具体的时间、金额或标准
func isExecutable(text string) bool {
	return timePattern.MatchString(text) ||
		amountPattern.MatchString(text) ||
		strings.Contains(text, "标准") ||
		strings.Contains(text, "规格")
}

func clauseSuggestion(clauseType string, issues []string) string {
	base, ok := clauseSuggestions[clauseType]
	if !ok {
		base = "建议完善条款内容"
	}

	joined := strings.Join(issues, ";")
	if strings.Contains(joined, "模糊") {
		base += "，避免使用模糊表述"
	}
	if strings.Contains(joined, "不平衡") {
		base += "，注意权利义务对等"
	}
	return base
}
