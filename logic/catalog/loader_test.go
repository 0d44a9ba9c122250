package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		require.NoError(t, err)
	}
	return dir
}

func validDataDir(t *testing.T) string {
	return writeDataDir(t, map[string]string{
		"contract_types.csv": `contract_type,category,core_risks,key_clauses,legal_basis,review_points
买卖合同,交易类,权属不清,标的、价款,民法典合同编第9章,核实权属
租赁合同,交易类,权属瑕疵,租赁物、租金,民法典合同编第14章,核实处分权
`,
		"risk_templates.csv": `risk_id,risk_type,contract_type,clause_name,risk_description,legal_basis,modification_suggestion,impact_analysis
R001,致命风险,通用,主体资格,主体资格存疑,民法典第143条,核实资质,合同可能无效
R008,致命风险,买卖合同,标的条款,标的物权属不清,民法典第597条,要求权属证明,无法取得所有权
`,
		"clause_standards.csv": `clause_type,contract_type,key_elements,standard_template
价款,通用,金额、支付方式,合同总价款为人民币____元。
`,
		"review_checklists.csv": `check_item,category,applicable_contracts,check_points
主体资格审查,形式审查,所有合同,核对营业执照
担保审查,实质审查,借款合同、买卖合同,担保方式合法
`,
	})
}

func TestLoad(t *testing.T) {
	tables, err := Load(validDataDir(t))
	require.NoError(t, err)

	assert.Len(t, tables.ContractTypes, 2)
	assert.Len(t, tables.RiskTemplates, 2)
	assert.Len(t, tables.ClauseStandards, 1)
	assert.Len(t, tables.ReviewChecklists, 2)

	assert.Equal(t, "买卖合同", tables.ContractTypes[0].ContractType)
	assert.Equal(t, "标的、价款", tables.ContractTypes[0].KeyClauses)
	assert.Equal(t, "R001", tables.RiskTemplates[0].RiskID)
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(dir)
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.File, "contract_types.csv")
}

func TestLoadMissingRequiredColumn(t *testing.T) {
	dir := validDataDir(t)
	// risk_templates 缺少 risk_id 列
	err := os.WriteFile(filepath.Join(dir, "risk_templates.csv"),
		[]byte("risk_type,contract_type\n致命风险,通用\n"), 0644)
	require.NoError(t, err)

	_, err = Load(dir)
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Err.Error(), "risk_id")
}

// 可选列缺失按空串处理，不报错
func TestLoadOptionalColumnsMissing(t *testing.T) {
	dir := validDataDir(t)
	err := os.WriteFile(filepath.Join(dir, "clause_standards.csv"),
		[]byte("clause_type\n价款\n"), 0644)
	require.NoError(t, err)

	tables, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, tables.ClauseStandards, 1)
	assert.Equal(t, "价款", tables.ClauseStandards[0].ClauseType)
	assert.Empty(t, tables.ClauseStandards[0].KeyElements)
}

func TestFieldContains(t *testing.T) {
	assert.True(t, FieldContains("买卖合同", "买卖合同"))
	assert.True(t, FieldContains("买卖合同、租赁合同", "租赁合同"))
	assert.True(t, FieldContains("质量条款", "质量"))
	assert.False(t, FieldContains("质量条款", "价款"))
	// 空目标永不命中
	assert.False(t, FieldContains("买卖合同", ""))
	// 大小写不敏感
	assert.True(t, FieldContains("IP许可", "ip"))
}

func TestTypeGuide(t *testing.T) {
	tables, err := Load(validDataDir(t))
	require.NoError(t, err)

	guide := tables.TypeGuide("买卖合同")
	require.NotNil(t, guide)
	assert.Equal(t, "买卖合同", guide.ContractType)

	// 类型专属风险（R008）纳入，通用检查清单 + 类型适用清单都在
	require.Len(t, guide.Risks, 1)
	assert.Equal(t, "R008", guide.Risks[0].RiskID)
	assert.Len(t, guide.Checklist, 2)

	assert.Nil(t, tables.TypeGuide("保险合同"))
}

func TestTypeNames(t *testing.T) {
	tables, err := Load(validDataDir(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"买卖合同", "租赁合同"}, tables.TypeNames())
}
