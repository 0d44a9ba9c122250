package review

import (
	"fmt"
	"strings"

	"contract-review/types"
)

// ErrInvalidDepth 审核深度不是 quick/standard/deep
var ErrInvalidDepth = fmt.Errorf("无效的审核深度，必须是 quick、standard 或 deep")

// ClausesAll 深度审核的哨兵值：审核所有条款
const ClausesAll = "all"

// Profile 单个审核深度档位
type Profile struct {
	Name            string   `json:"name"`
	TimeEstimate    string   `json:"time_estimate"`
	Focus           string   `json:"focus"`
	CheckCategories []string `json:"check_categories"` // 需报告的风险等级
	ClausesToReview []string `json:"clauses_to_review"`
	AllClauses      bool     `json:"all_clauses"`
	DetailLevel     string   `json:"detail_level"`
}

// DepthLevels 三档固定配置
var DepthLevels = map[string]Profile{
	"quick": {
		Name:            "快速审核",
		TimeEstimate:    "5-10分钟",
		Focus:           "核心条款和重大风险",
		CheckCategories: []string{types.LevelFatal, types.LevelImportant},
		ClausesToReview: []string{"标的", "价款", "违约责任", "解除条款"},
		DetailLevel:     "简略",
	},
	"standard": {
		Name:            "标准审核",
		TimeEstimate:    "30-60分钟",
		Focus:           "全面审核主要条款",
		CheckCategories: []string{types.LevelFatal, types.LevelImportant, types.LevelGeneral},
		ClausesToReview: []string{"标的", "数量质量", "价款", "履行", "违约责任",
			"解除终止", "不可抗力", "担保保险", "争议解决"},
		DetailLevel: "标准",
	},
	"deep": {
		Name:            "深度审核",
		TimeEstimate:    "1-2小时",
		Focus:           "逐条审核所有条款",
		CheckCategories: []string{types.LevelFatal, types.LevelImportant, types.LevelGeneral, types.LevelMinor},
		AllClauses:      true,
		DetailLevel:     "详细",
	},
}

// Config 审核配置，构造后不再变更
type Config struct {
	Depth   string
	Profile Profile
}

// NewConfig 按深度键返回固定档位配置
func NewConfig(depth string) (*Config, error) {
	profile, ok := DepthLevels[depth]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDepth, depth)
	}
	return &Config{Depth: depth, Profile: profile}, nil
}

// ShouldCheckClause 判断是否需要审核某类条款。
// 对称子串匹配：条款类型与目标类型任一方向包含即命中，部分类型名也能匹配。
func (c *Config) ShouldCheckClause(clauseType string) bool {
	if c.Profile.AllClauses {
		return true
	}
	for _, target := range c.Profile.ClausesToReview {
		if strings.Contains(clauseType, target) || strings.Contains(target, clauseType) {
			return true
		}
	}
	return false
}

// ShouldReportRisk 判断是否需要报告某级风险
func (c *Config) ShouldReportRisk(riskLevel string) bool {
	for _, level := range c.Profile.CheckCategories {
		if level == riskLevel {
			return true
		}
	}
	return false
}
