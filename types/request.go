package types

// ReviewRequest 审核接口请求体
type ReviewRequest struct {
	ContractName string      `json:"contract_name"` // 缺省时后端补"未命名合同"
	ContractText string      `json:"contract_text" binding:"required"`
	ReviewDepth  string      `json:"review_depth"` // quick | standard | deep，默认 standard
	UserContext  UserContext `json:"user_context"`
}

// ReviewResponse 审核接口响应体
type ReviewResponse struct {
	ReviewID      string               `json:"review_id"`
	Analysis      *AnalysisResult      `json:"analysis_result"`
	RiskReport    *RiskReport          `json:"risk_report"`
	Dimensions    []*DimensionAnalysis `json:"dimensions"`
	Scoring       *ScoringResult       `json:"scoring"`
	ClauseReviews []ClauseReviewResult `json:"clause_reviews"`
	OpinionDoc    string               `json:"opinion_doc"`   // 法律审核意见书 markdown
	AnnotatedDoc  string               `json:"annotated_doc"` // 批注版合同 markdown
}

// FeedbackRequest 审核反馈请求体
type FeedbackRequest struct {
	ReviewID          string `json:"review_id" binding:"required"`
	RiskAccuracy      int    `json:"risk_accuracy"` // 1-5
	SuggestionHelpful bool   `json:"suggestion_helpful"`
	Improvements      string `json:"suggested_improvements"`
}
