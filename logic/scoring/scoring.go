// Package scoring 实现多维度风险评分：三个维度各自打分后按固定权重
// 加权合成，并汇总风险分布、关键风险和综合建议。
package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"contract-review/types"
)

// 风险权重配置：商业 0.3 / 法律 0.4 / 实务 0.3，权重和恒为 1.0
const (
	WeightCommercial = 0.3
	WeightLegal      = 0.4
	WeightPractical  = 0.3
)

// levelScores 风险等级评分映射
var levelScores = map[string]float64{
	types.LevelFatal:     100,
	types.LevelImportant: 70,
	types.LevelGeneral:   40,
	types.LevelMinor:     10,
}

// LevelScore 返回风险等级对应分值，未知等级按一般风险计
func LevelScore(level string) float64 {
	if score, ok := levelScores[level]; ok {
		return score
	}
	return levelScores[types.LevelGeneral]
}

// ComprehensiveScore 计算综合风险评分
func ComprehensiveScore(commercial, legal, practical *types.DimensionAnalysis) *types.ScoringResult {
	commercialScore := dimensionScore(commercial)
	legalScore := dimensionScore(legal)
	practicalScore := dimensionScore(practical)

	composite := commercialScore*WeightCommercial +
		legalScore*WeightLegal +
		practicalScore*WeightPractical

	return &types.ScoringResult{
		ComprehensiveScore: round2(composite),
		RiskLevel:          determineRiskLevel(composite),
		DimensionScores: types.DimensionScores{
			Commercial: round2(commercialScore),
			Legal:      round2(legalScore),
			Practical:  round2(practicalScore),
		},
		RiskDistribution: riskDistribution(commercial, legal, practical),
		Recommendations:  recommendations(commercial, legal, practical),
		KeyRisks:         keyRisks(commercial, legal, practical),
	}
}

// dimensionScore 单维度评分：基础 50 分，每个风险按等级分值的 0.3
// 加分，每个发现扣 2 分（发现多说明审核仔细），最后夹到 [0,100]。
func dimensionScore(analysis *types.DimensionAnalysis) float64 {
	score := 50.0
	for _, r := range analysis.Risks {
		score += LevelScore(r.Level) * 0.3
	}
	score -= float64(len(analysis.Findings)) * 2

	return math.Max(0, math.Min(100, score))
}

func determineRiskLevel(score float64) string {
	switch {
	case score >= 80:
		return types.RiskHigh
	case score >= 60:
		return types.RiskMedium
	case score >= 40:
		return types.RiskLow
	default:
		return types.RiskMinimal
	}
}

// riskDistribution 统计三个维度的风险分布，四个等级恒存在
func riskDistribution(analyses ...*types.DimensionAnalysis) map[string]int {
	distribution := make(map[string]int, len(types.SeverityOrder))
	for _, level := range types.SeverityOrder {
		distribution[level] = 0
	}
	for _, analysis := range analyses {
		for _, r := range analysis.Risks {
			if _, ok := distribution[r.Level]; ok {
				distribution[r.Level]++
			}
		}
	}
	return distribution
}

// keyRisks 汇总致命+重要风险，按等级分值稳定降序（同级保持遇到顺序）
func keyRisks(analyses ...*types.DimensionAnalysis) []types.KeyRisk {
	var risks []types.KeyRisk
	for _, analysis := range analyses {
		for _, r := range analysis.Risks {
			if r.Level == types.LevelFatal || r.Level == types.LevelImportant {
				risks = append(risks, types.KeyRisk{
					Dimension:   analysis.Dimension,
					RiskType:    r.RiskType,
					Description: r.Description,
					Level:       r.Level,
					Suggestion:  r.Suggestion,
				})
			}
		}
	}

	sort.SliceStable(risks, func(i, j int) bool {
		return LevelScore(risks[i].Level) > LevelScore(risks[j].Level)
	})
	return risks
}

// recommendations 按维度评级和风险构成生成综合建议
func recommendations(analyses ...*types.DimensionAnalysis) []string {
	var recs []string

	for _, analysis := range analyses {
		switch analysis.Dimension {
		case types.DimCommercial:
			if analysis.Rating == "较差" || analysis.Rating == "差" {
				recs = append(recs, fmt.Sprintf("⚠️ %s: 商业风险较高,建议重新评估交易结构", analysis.Dimension))
			} else if analysis.Rating == "中等" {
				recs = append(recs, fmt.Sprintf("ℹ️ %s: 建议关注商业条款的合理性", analysis.Dimension))
			}

		case types.DimLegal:
			fatal := 0
			for _, r := range analysis.Risks {
				if r.Level == types.LevelFatal {
					fatal++
				}
			}
			if fatal > 0 {
				recs = append(recs, fmt.Sprintf("🚨 %s: 发现%d个致命风险,必须修改", analysis.Dimension, fatal))
			}

		case types.DimPractical:
			for _, r := range analysis.Risks {
				if strings.Contains(r.Description, "模糊") {
					recs = append(recs, fmt.Sprintf("💡 %s: 建议明确模糊表述,提高可执行性", analysis.Dimension))
					break
				}
			}
		}
	}

	return recs
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
