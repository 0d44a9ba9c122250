// Package render 把结构化审核结果组装成 markdown 文档。只做字符串
// 拼装，不接触文件系统，落盘与路径由调用方决定。
package render

import (
	"fmt"
	"strings"
	"time"

	"contract-review/types"
)

// Renderer 审核文档渲染器
type Renderer struct {
	now func() time.Time
}

// NewRenderer 构造渲染器
func NewRenderer() *Renderer {
	return &Renderer{now: time.Now}
}

// levelEmoji 风险等级标识
func levelEmoji(level string) string {
	switch level {
	case types.LevelFatal:
		return "🔴"
	case types.LevelImportant:
		return "🟠"
	case types.LevelGeneral:
		return "🟡"
	default:
		return "🔵"
	}
}

func levelStars(level string) string {
	switch level {
	case types.LevelFatal:
		return strings.Repeat("⭐", 5)
	case types.LevelImportant:
		return strings.Repeat("⭐", 4)
	case types.LevelGeneral:
		return strings.Repeat("⭐", 3)
	default:
		return strings.Repeat("⭐", 2)
	}
}

// LegalOpinion 生成法律审核意见书 markdown
func (r *Renderer) LegalOpinion(contractName string, analysis *types.AnalysisResult,
	report *types.RiskReport, scoring *types.ScoringResult, userContext types.UserContext) string {

	var b strings.Builder
	date := r.now().Format("2006年01月02日")

	fmt.Fprintf(&b, "# %s - 法律审核意见书\n\n", contractName)
	fmt.Fprintf(&b, "**审核日期：** %s  \n", date)
	fmt.Fprintf(&b, "**合同类型：** %s\n\n---\n\n", analysis.IdentifiedType)

	// 委托方信息
	b.WriteString("## 📋 一、委托方确认信息\n\n")
	b.WriteString("| 项目 | 内容 |\n|------|------|\n")
	fmt.Fprintf(&b, "| **委托方身份** | %s |\n", orDefault(userContext.Party, "未指定"))
	fmt.Fprintf(&b, "| **市场地位** | %s |\n", orDefault(userContext.Position, "未指定"))
	fmt.Fprintf(&b, "| **合作背景** | %s |\n", orDefault(userContext.History, "首次合作"))
	fmt.Fprintf(&b, "| **重点关切** | %s |\n", orDefault(userContext.Focus, "无"))
	fmt.Fprintf(&b, "| **审核深度** | %s |\n\n---\n\n", orDefault(analysis.ReviewDepthName, "标准审核"))

	// 风险汇总
	b.WriteString("## 📊 二、风险汇总统计\n\n")
	b.WriteString("| 风险等级 | 数量 | 占比 |\n|---------|------|------|\n")
	total := report.TotalRisks
	for _, level := range types.SeverityOrder {
		count := report.Summary[level]
		percentage := "0%"
		if total > 0 {
			percentage = fmt.Sprintf("%.0f%%", float64(count)/float64(total)*100)
		}
		fmt.Fprintf(&b, "| %s %s | %d | %s |\n", levelEmoji(level), level, count, percentage)
	}
	fmt.Fprintf(&b, "| **合计** | **%d** | **100%%** |\n\n", total)

	// 智能评分
	if scoring != nil {
		b.WriteString("## 🎯 三、智能风险评分\n\n")
		fmt.Fprintf(&b, "- **综合评分**: %.2f/100\n", scoring.ComprehensiveScore)
		fmt.Fprintf(&b, "- **风险等级**: %s\n\n", scoring.RiskLevel)
		b.WriteString("| 维度 | 评分 |\n|------|------|\n")
		fmt.Fprintf(&b, "| 商业维度 | %.2f |\n", scoring.DimensionScores.Commercial)
		fmt.Fprintf(&b, "| 法律维度 | %.2f |\n", scoring.DimensionScores.Legal)
		fmt.Fprintf(&b, "| 实务维度 | %.2f |\n\n", scoring.DimensionScores.Practical)

		if len(scoring.KeyRisks) > 0 {
			b.WriteString("### 关键风险\n\n")
			for i, kr := range scoring.KeyRisks {
				if i >= 10 {
					break
				}
				fmt.Fprintf(&b, "- **[%s] %s** (%s): %s\n", kr.Level, kr.RiskType, kr.Dimension, kr.Description)
			}
			b.WriteString("\n")
		}
		if len(scoring.Recommendations) > 0 {
			b.WriteString("### 综合建议\n\n")
			for _, rec := range scoring.Recommendations {
				fmt.Fprintf(&b, "- %s\n", rec)
			}
			b.WriteString("\n")
		}
	}

	// 详细审核意见
	b.WriteString("## ⚠️ 四、详细审核意见\n\n")
	for _, level := range types.SeverityOrder {
		risks := report.RisksByLevel[level]
		if len(risks) == 0 {
			continue
		}
		fmt.Fprintf(&b, "### %s %s（%d项）\n\n", levelEmoji(level), level, len(risks))
		for i, r := range risks {
			fmt.Fprintf(&b, "#### 风险%d：%s\n\n", i+1, r.Description)
			fmt.Fprintf(&b, "**风险等级：** %s %s\n\n", level, levelStars(level))
			fmt.Fprintf(&b, "**法律依据：**\n%s\n\n", orDefault(r.LegalBasis, "无"))
			fmt.Fprintf(&b, "**影响分析：**\n%s\n\n", orDefault(r.Impact, "无"))
			fmt.Fprintf(&b, "**修改建议：**\n```\n%s\n```\n\n---\n\n", orDefault(r.Suggestion, "无"))
		}
	}

	// 总体建议
	b.WriteString("## 📝 五、总体建议\n\n### （一）必须修改的内容（签约前完成）\n\n")
	mustFix := append(append([]types.Risk{}, report.RisksByLevel[types.LevelFatal]...),
		report.RisksByLevel[types.LevelImportant]...)
	if len(mustFix) > 0 {
		for i, r := range mustFix {
			fmt.Fprintf(&b, "%d. ✅ **%s**\n", i+1, r.Description)
		}
	} else {
		b.WriteString("无\n")
	}

	b.WriteString("\n### （二）建议修改的内容\n\n")
	general := report.RisksByLevel[types.LevelGeneral]
	if len(general) > 0 {
		for i, r := range general {
			if i >= 5 {
				break
			}
			fmt.Fprintf(&b, "%d. 🔄 **%s**\n", i+1, r.Description)
		}
	} else {
		b.WriteString("无\n")
	}

	// 整体风险等级
	overall := "低风险"
	if report.Summary[types.LevelFatal] > 0 {
		overall = "高风险"
	} else if report.Summary[types.LevelImportant] > 2 {
		overall = "中等风险"
	}
	fmt.Fprintf(&b, "\n---\n\n## ⚖️ 六、法律风险评估\n\n**整体风险等级：** %s\n", overall)

	fmt.Fprintf(&b, `
---

## ⚠️ 免责声明

本法律审核意见书由系统基于预设规则生成，仅供参考，不构成正式法律意见。

对于重大、复杂的交易，建议咨询专业律师。

---

**审核日期：** %s
`, date)

	return b.String()
}

// AnnotatedContract 生成批注版合同 markdown：保留原文，对命中风险
// 原文或位置的行插入逐条批注。
func (r *Renderer) AnnotatedContract(contractName, originalContract string, report *types.RiskReport) string {
	var b strings.Builder
	date := r.now().Format("2006年01月02日")

	fmt.Fprintf(&b, "# %s - 批注版\n\n", contractName)
	fmt.Fprintf(&b, "**审核日期：** %s  \n", date)
	b.WriteString(`**风险等级标识：**
- 🔴 致命风险（必须修改）
- 🟠 重要风险（建议修改）
- 🟡 一般风险（可协商修改）
- 🔵 轻微瑕疵（可选修改）

---

## 📊 批注汇总表

| 批注编号 | 风险等级 | 问题摘要 |
|---------|---------|---------|
`)

	annotationNum := 1
	for _, level := range types.SeverityOrder {
		for _, risk := range report.RisksByLevel[level] {
			fmt.Fprintf(&b, "| 批注%d | %s %s | %s |\n",
				annotationNum, levelEmoji(level), level, truncate(risk.Description, 30))
			annotationNum++
		}
	}
	totalAnnotations := annotationNum - 1

	b.WriteString("\n**统计：**\n")
	for _, level := range types.SeverityOrder {
		fmt.Fprintf(&b, "- %s %s：%d项\n", levelEmoji(level), level, report.Summary[level])
	}
	fmt.Fprintf(&b, "- **合计：%d项**\n\n---\n\n", totalAnnotations)

	// 核心问题快速定位
	b.WriteString("## ⚠️ 核心问题快速定位\n\n### 🔴 必须修改（P0级）- 致命风险\n\n")
	if fatal := report.RisksByLevel[types.LevelFatal]; len(fatal) > 0 {
		for i, risk := range fatal {
			fmt.Fprintf(&b, "%d. **%s** → %s\n\n", i+1, risk.Description, orDefault(risk.Suggestion, "无"))
		}
	} else {
		b.WriteString("无致命风险\n\n")
	}

	b.WriteString("### 🟠 强烈建议修改（P1级）- 重要风险\n\n")
	if important := report.RisksByLevel[types.LevelImportant]; len(important) > 0 {
		for i, risk := range important {
			if i >= 5 {
				break
			}
			fmt.Fprintf(&b, "%d. **%s** → %s\n\n", i+1, risk.Description, truncate(orDefault(risk.Suggestion, "无"), 50))
		}
	} else {
		b.WriteString("无重要风险\n\n")
	}

	b.WriteString("---\n\n## 📝 详细批注内容\n\n### 【合同正文】\n\n")

	annotationNum = 1
	for _, line := range strings.Split(originalContract, "\n") {
		if strings.TrimSpace(line) == "" {
			b.WriteString("\n")
			continue
		}

		risk, level, ok := matchLineRisk(line, report)
		if !ok {
			b.WriteString(line + "\n")
			continue
		}
		fmt.Fprintf(&b, "\n%s\n\n", line)
		fmt.Fprintf(&b, "%s **[批注%d] %s** %s\n\n", levelEmoji(level), annotationNum, risk.Description, levelStars(level))
		fmt.Fprintf(&b, "> **问题：** %s\n\n", orDefault(risk.Analysis, orDefault(risk.Impact, "无")))
		fmt.Fprintf(&b, "> **修改建议：**\n> ```\n> %s\n> ```\n\n---\n\n", orDefault(risk.Suggestion, "无"))
		annotationNum++
	}

	fmt.Fprintf(&b, "\n---\n\n**审核日期：** %s  \n**文件版本：** 批注版\n\n", date)
	fmt.Fprintf(&b, `**使用说明：**
1. 本批注版共标注 **%d** 个问题点，按风险等级分为四级
2. 建议优先处理 🔴致命风险、🟠重要风险
3. 每个批注包含：问题描述、风险分析、法律依据、修改建议
`, totalAnnotations)

	return b.String()
}

// matchLineRisk 按等级顺序找第一条命中该行的风险（原文或位置出现在行内）
func matchLineRisk(line string, report *types.RiskReport) (types.Risk, string, bool) {
	for _, level := range types.SeverityOrder {
		for _, risk := range report.RisksByLevel[level] {
			if (risk.OriginalText != "" && strings.Contains(line, risk.OriginalText)) ||
				(risk.Location != "" && strings.Contains(line, risk.Location)) {
				return risk, level, true
			}
		}
	}
	return types.Risk{}, "", false
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func truncate(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}
