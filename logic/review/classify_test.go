package review

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	c := NewClassifier(nil)
	ctx := context.Background()

	tests := []struct {
		text     string
		expected string
	}{
		{"本合同标的物为机械设备一台", "标的"},
		{"总价款为人民币100万元，分三期支付", "价款"},
		{"任何一方违约应支付违约金", "违约责任"},
		{"因不可抗力致使合同目的不能实现", "不可抗力"},
		{"双方因本合同发生争议，提交仲裁委员会仲裁", "争议解决"},
		{"双方友好协商处理本事项", "其他"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, c.Classify(ctx, tt.text), "text: %s", tt.text)
	}
}

// 关键词重复出现追加 min(0.2*次数, 1.0)，高分类型胜出
func TestClassifyRepeatBonus(t *testing.T) {
	c := NewClassifier(nil)
	// "价款" 出现两次(1.4) 压过 "标的" 出现一次(1.0)
	got := c.Classify(context.Background(), "标的对应的价款为100万元，价款分两期支付")
	assert.Equal(t, "价款", got)
}

// 同分时保留先枚举到的类型
func TestClassifyTieKeepsFirst(t *testing.T) {
	c := NewClassifier(nil)
	got := c.Classify(context.Background(), "数量与报酬均需双方确认")
	assert.Equal(t, "数量质量", got)
}

func TestClassifyDeterministic(t *testing.T) {
	c := NewClassifier(nil)
	text := "租金每月一万元，押金另计，质量标准按国标执行"
	first := c.Classify(context.Background(), text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Classify(context.Background(), text))
	}
}

type fakeEnhancer struct {
	action string
	err    error
}

func (f fakeEnhancer) InferStructure(ctx context.Context, clauseText string) (*ClauseStructure, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &ClauseStructure{MainAction: f.action}, nil
}

// 兜底"其他"时按增强器给出的主要动作二次映射
func TestClassifyEnhancerRemap(t *testing.T) {
	ctx := context.Background()
	text := "双方友好协商处理本事项"

	c := NewClassifier(fakeEnhancer{action: "支付"})
	assert.Equal(t, "价款", c.Classify(ctx, text))

	c = NewClassifier(fakeEnhancer{action: "交付"})
	assert.Equal(t, "履行", c.Classify(ctx, text))

	// 无法映射的动作维持兜底
	c = NewClassifier(fakeEnhancer{action: "观察"})
	assert.Equal(t, CategoryOther, c.Classify(ctx, text))
}

// 增强器出错必须静默回退，不影响分类结果
func TestClassifyEnhancerErrorFallsBack(t *testing.T) {
	c := NewClassifier(fakeEnhancer{err: errors.New("model unavailable")})
	assert.Equal(t, CategoryOther, c.Classify(context.Background(), "双方友好协商处理本事项"))
}

// 非"其他"结果不触发增强器
func TestClassifyEnhancerSkippedWhenMatched(t *testing.T) {
	c := NewClassifier(fakeEnhancer{action: "支付"})
	assert.Equal(t, "标的", c.Classify(context.Background(), "本合同标的物为货物"))
}
