package review

import (
	"context"
	"regexp"
	"strings"

	"contract-review/types"
)

// 条款起始标记：第X条/第X款、中文序号+顿号/点、数字序号+顿号/点、括号数字
var clausePattern = regexp.MustCompile(`^(第[一二三四五六七八九十百千]+[条款]|[一二三四五六七八九十百千]+[、.]|[0-9]+[、.]|（[0-9]+）)\s*(.*)`)

// SegmentClauses 按编号标记切分合同文本并逐条分类。
// 空行跳过；首个标记前的导语不计入任何条款；每遇到新标记先关闭上
// 一条款（分类、按配置决定是否保留），扫描结束后最后一条款无条件
// 关闭——原始实现会静默丢掉末条，这里是刻意修正。
func SegmentClauses(ctx context.Context, cfg *Config, classifier *Classifier, contractText string) map[string][]types.Clause {
	clauses := make(map[string][]types.Clause)

	var (
		currentNumber  string
		currentContent []string
		startLine      int
		started        bool
	)

	flush := func() {
		if !started || len(currentContent) == 0 {
			return
		}
		clauseText := strings.Join(currentContent, "\n")
		clauseType := classifier.Classify(ctx, clauseText)
		if cfg.ShouldCheckClause(clauseType) {
			clauses[clauseType] = append(clauses[clauseType], types.Clause{
				Number:     currentNumber,
				Content:    clauseText,
				LineNumber: startLine,
				Category:   clauseType,
			})
		}
	}

	for lineNum, rawLine := range strings.Split(contractText, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if m := clausePattern.FindStringSubmatch(line); m != nil {
			flush()
			currentNumber = m[1]
			currentContent = []string{m[2]}
			startLine = lineNum + 1
			started = true
			continue
		}

		if started {
			currentContent = append(currentContent, line)
		}
	}

	flush()
	return clauses
}
