package types

// --- 风险等级常量 ---

// 风险等级固定全序：致命 > 重要 > 一般 > 轻微
const (
	LevelFatal     = "致命风险"
	LevelImportant = "重要风险"
	LevelGeneral   = "一般风险"
	LevelMinor     = "轻微瑕疵"
)

// SeverityOrder 风险等级的固定输出顺序（报告、分布统计均按此排列）
var SeverityOrder = []string{LevelFatal, LevelImportant, LevelGeneral, LevelMinor}

// 综合评分风险等级标签
const (
	RiskHigh    = "高风险"
	RiskMedium  = "中等风险"
	RiskLow     = "低风险"
	RiskMinimal = "极低风险"
)

// 三维审查的维度名称
const (
	DimCommercial = "商业维度"
	DimLegal      = "法律维度"
	DimPractical  = "实务维度"
)

// --- 参考数据表行 ---

// ContractTypeRecord 合同类型目录行，key_clauses 以"、"分隔
type ContractTypeRecord struct {
	ContractType string `json:"contract_type"`
	Category     string `json:"category"`
	CoreRisks    string `json:"core_risks"`
	KeyClauses   string `json:"key_clauses"`
	LegalBasis   string `json:"legal_basis"`
	ReviewPoints string `json:"review_points"`
}

// RiskTemplate 风险模板行，contract_type / clause_name 支持"通用"
type RiskTemplate struct {
	RiskID                 string `json:"risk_id"`
	RiskType               string `json:"risk_type"`
	ContractType           string `json:"contract_type"`
	ClauseName             string `json:"clause_name"`
	RiskDescription        string `json:"risk_description"`
	LegalBasis             string `json:"legal_basis"`
	ModificationSuggestion string `json:"modification_suggestion"`
	ImpactAnalysis         string `json:"impact_analysis"`
}

// ClauseStandard 标准条款行，key_elements 以"、"分隔
type ClauseStandard struct {
	ClauseType       string `json:"clause_type"`
	ContractType     string `json:"contract_type"`
	KeyElements      string `json:"key_elements"`
	StandardTemplate string `json:"standard_template"`
}

// ChecklistItem 审核检查清单行
type ChecklistItem struct {
	CheckItem           string `json:"check_item"`
	Category            string `json:"category"`
	ApplicableContracts string `json:"applicable_contracts"`
	CheckPoints         string `json:"check_points"`
}

// --- 审核过程对象 ---

// Clause 切分出的单个条款
type Clause struct {
	Number     string `json:"number"`      // 条款编号原文（如"第一条"）
	Content    string `json:"content"`     // 条款正文（含编号行内联内容）
	LineNumber int    `json:"line_number"` // 条款起始行号（1 起）
	Category   string `json:"category"`    // 分类结果，兜底"其他"
}

// TypeScore 合同类型识别得分
type TypeScore struct {
	ContractType string  `json:"contract_type"`
	Score        float64 `json:"score"`
}

// AnalysisResult 合同解析结果
type AnalysisResult struct {
	ContractName    string              `json:"contract_name,omitempty"`
	IdentifiedType  string              `json:"identified_type"`
	TypeConfidence  float64             `json:"type_confidence"`
	TypeAlternates  []TypeScore         `json:"type_alternatives"`
	Clauses         map[string][]Clause `json:"clauses"` // 条款类型 -> 条款列表
	TotalClauses    int                 `json:"total_clauses"`
	ReviewDepthName string              `json:"review_depth,omitempty"`
}

// Risk 命中的风险实例（来自模板）
type Risk struct {
	RiskID       string `json:"risk_id"`
	RiskType     string `json:"risk_type"` // 风险等级
	Description  string `json:"description"`
	LegalBasis   string `json:"legal_basis"`
	Suggestion   string `json:"suggestion"`
	Impact       string `json:"impact"`
	Location     string `json:"location,omitempty"`
	OriginalText string `json:"original_text,omitempty"`
	Analysis     string `json:"analysis,omitempty"`
}

// RiskReport 按等级分桶的风险报告，四个桶恒存在
type RiskReport struct {
	Summary      map[string]int    `json:"summary"`
	RisksByLevel map[string][]Risk `json:"risks_by_level"`
	TotalRisks   int               `json:"total_risks"`
}

// --- 三维审查 ---

// Finding 维度分析中的发现项
type Finding struct {
	Category     string `json:"category"`
	Content      string `json:"content"`
	Significance string `json:"significance"`
}

// DimensionRisk 维度分析中识别的风险
type DimensionRisk struct {
	RiskType    string `json:"risk_type"`
	Description string `json:"description"`
	Level       string `json:"level"`
	Suggestion  string `json:"suggestion"`
}

// Suggestion 维度分析中的建议项
type Suggestion struct {
	Aspect  string `json:"aspect"`
	Content string `json:"content"`
}

// DimensionAnalysis 单个维度的分析结果
type DimensionAnalysis struct {
	Dimension   string          `json:"dimension"`
	Rating      string          `json:"rating"` // 优秀/良好/中等/较差/差
	Findings    []Finding       `json:"findings"`
	Risks       []DimensionRisk `json:"risks"`
	Suggestions []Suggestion    `json:"suggestions"`
}

// --- 智能评分 ---

// KeyRisk 关键风险（致命+重要），带来源维度
type KeyRisk struct {
	Dimension   string `json:"dimension"`
	RiskType    string `json:"type"`
	Description string `json:"description"`
	Level       string `json:"level"`
	Suggestion  string `json:"suggestion"`
}

// DimensionScores 三个维度各自的评分
type DimensionScores struct {
	Commercial float64 `json:"commercial"`
	Legal      float64 `json:"legal"`
	Practical  float64 `json:"practical"`
}

// ScoringResult 综合风险评分报告
type ScoringResult struct {
	ComprehensiveScore float64         `json:"comprehensive_score"`
	RiskLevel          string          `json:"risk_level"`
	DimensionScores    DimensionScores `json:"dimension_scores"`
	RiskDistribution   map[string]int  `json:"risk_distribution"`
	Recommendations    []string        `json:"recommendations"`
	KeyRisks           []KeyRisk       `json:"key_risks"`
}

// ClauseScore 单条款风险评分
type ClauseScore struct {
	Score      int      `json:"score"`
	Level      string   `json:"level"`
	Issues     []string `json:"issues"`
	Suggestion string   `json:"suggestion"`
}

// ClauseReviewResult 条款对照标准模板的审核结果
type ClauseReviewResult struct {
	ClauseType  string             `json:"clause_type"`
	Issues      []string           `json:"issues"`
	Suggestions []ClauseSuggestion `json:"suggestions"`
	HasIssues   bool               `json:"has_issues"`
	Score       ClauseScore        `json:"score"`
}

// ClauseSuggestion 条款修改建议
type ClauseSuggestion struct {
	Issue            string `json:"issue"`
	Suggestion       string `json:"suggestion"`
	StandardTemplate string `json:"standard_template"`
}

// --- 用户上下文 ---

// UserContext 委托方背景信息，原样透传给维度分析器
type UserContext struct {
	Party    string `json:"party"`    // 代表方（甲方/乙方）
	Position string `json:"position"` // 市场地位（强势/平等/弱势）
	History  string `json:"history"`  // 过往交易
	Focus    string `json:"focus"`    // 关注点
}

// TypeGuide 合同类型审核指引（目录行 + 关联风险点 + 检查清单）
type TypeGuide struct {
	ContractTypeRecord
	Risks     []RiskTemplate  `json:"risks"`
	Checklist []ChecklistItem `json:"checklist"`
}
