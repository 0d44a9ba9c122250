package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contract-review/types"
)

func TestNewConfig(t *testing.T) {
	for _, depth := range []string{"quick", "standard", "deep"} {
		cfg, err := NewConfig(depth)
		require.NoError(t, err)
		assert.Equal(t, depth, cfg.Depth)
		assert.NotEmpty(t, cfg.Profile.Name)
	}
}

func TestNewConfigInvalidDepth(t *testing.T) {
	_, err := NewConfig("full")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDepth)

	_, err = NewConfig("")
	assert.ErrorIs(t, err, ErrInvalidDepth)
}

// 深度递增时报告的风险等级集合单调扩大
func TestDepthSeverityMonotonic(t *testing.T) {
	quick, _ := NewConfig("quick")
	standard, _ := NewConfig("standard")
	deep, _ := NewConfig("deep")

	assert.Subset(t, standard.Profile.CheckCategories, quick.Profile.CheckCategories)
	assert.Subset(t, deep.Profile.CheckCategories, standard.Profile.CheckCategories)

	// deep 报告全部四级
	assert.ElementsMatch(t, types.SeverityOrder, deep.Profile.CheckCategories)
}

func TestShouldCheckClause(t *testing.T) {
	quick, _ := NewConfig("quick")

	assert.True(t, quick.ShouldCheckClause("标的"))
	assert.True(t, quick.ShouldCheckClause("违约责任"))
	// 对称子串匹配："解除终止" 与配置里的 "解除条款" 互不包含，不命中
	assert.True(t, quick.ShouldCheckClause("解除条款"))
	assert.False(t, quick.ShouldCheckClause("解除终止"))
	// 部分类型名也能命中
	assert.True(t, quick.ShouldCheckClause("违约"))
	assert.False(t, quick.ShouldCheckClause("保密"))
	assert.False(t, quick.ShouldCheckClause("其他"))
}

func TestShouldCheckClauseDeepAll(t *testing.T) {
	deep, _ := NewConfig("deep")
	assert.True(t, deep.ShouldCheckClause("其他"))
	assert.True(t, deep.ShouldCheckClause("随便什么类型"))
}

func TestShouldReportRisk(t *testing.T) {
	quick, _ := NewConfig("quick")
	assert.True(t, quick.ShouldReportRisk(types.LevelFatal))
	assert.True(t, quick.ShouldReportRisk(types.LevelImportant))
	assert.False(t, quick.ShouldReportRisk(types.LevelGeneral))
	assert.False(t, quick.ShouldReportRisk(types.LevelMinor))

	standard, _ := NewConfig("standard")
	assert.True(t, standard.ShouldReportRisk(types.LevelGeneral))
	assert.False(t, standard.ShouldReportRisk(types.LevelMinor))
}
