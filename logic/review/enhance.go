package review

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/ollama"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// ClauseStructure 条款结构分析结果
type ClauseStructure struct {
	MainAction  string   `json:"main_action"`
	Conditions  []string `json:"conditions,omitempty"`
	Obligations []string `json:"obligations,omitempty"`
	Parties     []string `json:"parties,omitempty"`
}

// StructureEnhancer 可选的条款结构增强能力。基线实现是空操作；
// 增强实现不可用或出错时调用方必须静默回退，绝不中断审核。
type StructureEnhancer interface {
	InferStructure(ctx context.Context, clauseText string) (*ClauseStructure, error)
}

// NoopEnhancer 基线实现：不做任何增强
type NoopEnhancer struct{}

func (NoopEnhancer) InferStructure(ctx context.Context, clauseText string) (*ClauseStructure, error) {
	return nil, nil
}

const structurePrompt = `你是一个合同条款分析助手。请分析以下条款，提取JSON格式的结构信息。

规则：
1. **main_action**: 条款的主要动作动词（如"交付"、"支付"、"赔偿"），无法判断时返回空字符串
2. **obligations**: 条款约定的义务描述数组
3. **parties**: 条款涉及的主体数组（如"甲方"、"乙方"）

条款内容:
%s

Output JSON only. No markdown.`

// OllamaEnhancer 基于本地 chat model 的结构增强实现
type OllamaEnhancer struct {
	chatModel model.ToolCallingChatModel
}

// NewOllamaEnhancer 构造 ollama 增强器
func NewOllamaEnhancer(ctx context.Context, baseURL, modelName string) (*OllamaEnhancer, error) {
	chatModel, err := ollama.NewChatModel(ctx, &ollama.ChatModelConfig{
		BaseURL: baseURL,
		Model:   modelName,
	})
	if err != nil {
		return nil, fmt.Errorf("create ollama chat model failed: %w", err)
	}
	return &OllamaEnhancer{chatModel: chatModel}, nil
}

func (e *OllamaEnhancer) InferStructure(ctx context.Context, clauseText string) (*ClauseStructure, error) {
	resp, err := e.chatModel.Generate(ctx, []*schema.Message{
		schema.UserMessage(fmt.Sprintf(structurePrompt, clauseText)),
	})
	if err != nil {
		return nil, err
	}

	// 清洗 JSON：只保留最外层大括号之间的内容
	raw := resp.Content
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("no JSON object in model response")
	}
	raw = raw[start : end+1]

	var structure ClauseStructure
	if err := json.Unmarshal([]byte(raw), &structure); err != nil {
		return nil, fmt.Errorf("json unmarshal failed: %w", err)
	}
	return &structure, nil
}
