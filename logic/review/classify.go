package review

import (
	"context"
	"strings"
)

// CategoryOther 兜底条款类型
const CategoryOther = "其他"

// categoryKeywords 条款类型触发关键词，枚举顺序固定（同分取先到者）
var categoryKeywords = []struct {
	Category string
	Keywords []string
}{
	{"标的", []string{"标的", "租赁物", "借款金额", "股权", "工程范围", "工作成果", "委托事项", "赠与物", "技术内容", "保险标的"}},
	{"数量质量", []string{"数量", "质量", "规格", "型号", "标准", "面积", "体积"}},
	{"价款", []string{"价款", "价格", "报酬", "租金", "利息", "费用", "承包费", "增资款", "保险费", "补偿金"}},
	{"履行", []string{"交付", "履行", "施工", "开工", "竣工", "提供", "完成", "转让", "许可"}},
	{"违约责任", []string{"违约", "责任", "赔偿", "违约金"}},
	{"解除终止", []string{"解除", "终止", "到期"}},
	{"不可抗力", []string{"不可抗力"}},
	{"担保保险", []string{"担保", "保证", "抵押", "质押", "保险"}},
	{"保密", []string{"保密", "机密"}},
	{"知识产权", []string{"知识产权", "专利", "商标", "著作权"}},
	{"争议解决", []string{"争议", "仲裁", "诉讼", "法院"}},
	{"通知送达", []string{"通知", "送达", "联系方式"}},
	{"验收", []string{"验收", "检验", "检查", "测试"}},
	{"竞业限制", []string{"竞业限制", "竞业禁止"}},
	{"业绩目标", []string{"业绩目标", "净利润", "营收", "对赌"}},
	{"股权回购", []string{"股权回购", "回购"}},
	{"一致行动", []string{"一致行动", "表决权委托"}},
	{"工伤", []string{"工伤", "工伤保险"}},
	{"撤销权", []string{"撤销权", "撤销"}},
}

// Classifier 条款分类器：关键词打分为主，可选结构增强器兜底
type Classifier struct {
	enhancer StructureEnhancer
}

// NewClassifier 构造分类器。enhancer 为 nil 时退化为纯关键词匹配。
func NewClassifier(enhancer StructureEnhancer) *Classifier {
	if enhancer == nil {
		enhancer = NoopEnhancer{}
	}
	return &Classifier{enhancer: enhancer}
}

// Classify 对条款文本做类型分类。关键词命中记 1.0 分，出现多次追加
// min(0.2*次数, 1.0)；全程取最高分，打平保留先枚举到的类型；无命中
// 兜底"其他"。兜底结果再交给增强器按主要动作二次判断，增强失败静默
// 维持关键词结果。
func (c *Classifier) Classify(ctx context.Context, clauseText string) string {
	bestMatch := CategoryOther
	bestScore := 0.0

	for _, entry := range categoryKeywords {
		for _, keyword := range entry.Keywords {
			if !strings.Contains(clauseText, keyword) {
				continue
			}
			score := 1.0
			if count := strings.Count(clauseText, keyword); count > 1 {
				bonus := 0.2 * float64(count)
				if bonus > 1.0 {
					bonus = 1.0
				}
				score += bonus
			}
			if score > bestScore {
				bestScore = score
				bestMatch = entry.Category
			}
		}
	}

	if bestMatch == CategoryOther {
		if structure, err := c.enhancer.InferStructure(ctx, clauseText); err == nil && structure != nil {
			if remapped := remapByAction(structure.MainAction); remapped != "" {
				bestMatch = remapped
			}
		}
	}

	return bestMatch
}

// remapByAction 按主要动作映射条款类型，无法判断返回空串
func remapByAction(action string) string {
	switch {
	case action == "":
		return ""
	case containsAny(action, "交付", "转让", "许可"):
		return "履行"
	case containsAny(action, "支付", "付款"):
		return "价款"
	case containsAny(action, "违约", "赔偿"):
		return "违约责任"
	}
	return ""
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
