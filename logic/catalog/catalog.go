package catalog

import (
	"strings"

	"contract-review/types"
)

// Tables 四张参考数据表，加载后只读
type Tables struct {
	ContractTypes    []types.ContractTypeRecord
	RiskTemplates    []types.RiskTemplate
	ClauseStandards  []types.ClauseStandard
	ReviewChecklists []types.ChecklistItem
}

// FieldContains 表字段的模糊匹配：字段值是否包含目标串（大小写不敏感）。
// 所有目录查询统一走这里，语义与 pandas str.contains 对齐。
func FieldContains(field, target string) bool {
	if target == "" {
		return false
	}
	return strings.Contains(strings.ToLower(field), strings.ToLower(target))
}

// TypeGuide 查询合同类型审核指引：取第一条名称匹配的类型记录，
// 附带该类型的风险点和适用的检查清单。未找到返回 nil，不报错。
func (t *Tables) TypeGuide(contractType string) *types.TypeGuide {
	var record *types.ContractTypeRecord
	for i := range t.ContractTypes {
		if FieldContains(t.ContractTypes[i].ContractType, contractType) {
			record = &t.ContractTypes[i]
			break
		}
	}
	if record == nil {
		return nil
	}

	guide := &types.TypeGuide{ContractTypeRecord: *record}

	for _, tpl := range t.RiskTemplates {
		if FieldContains(tpl.ContractType, contractType) {
			guide.Risks = append(guide.Risks, tpl)
		}
	}
	for _, item := range t.ReviewChecklists {
		if FieldContains(item.ApplicableContracts, "所有合同") ||
			FieldContains(item.ApplicableContracts, contractType) {
			guide.Checklist = append(guide.Checklist, item)
		}
	}
	return guide
}

// TypeNames 返回目录中全部合同类型名称
func (t *Tables) TypeNames() []string {
	names := make([]string, 0, len(t.ContractTypes))
	for _, ct := range t.ContractTypes {
		names = append(names, ct.ContractType)
	}
	return names
}
