package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"contract-review/logic/catalog"
	"contract-review/logic/dimension"
	"contract-review/logic/review"
	"contract-review/logic/risk"
	"contract-review/logic/scoring"
	"contract-review/render"
	"contract-review/storage/postgres"
	"contract-review/types"
)

// ReviewService 审核业务层：串联配置、解析、风险评估、三维分析、
// 评分与文档渲染，并把结果落库。参考表只读，每次审核构造新的
// 配置与评估器实例，互不共享可变状态。
type ReviewService struct {
	tables   *catalog.Tables
	repo     *postgres.ReviewRepo
	enhancer review.StructureEnhancer
	renderer *render.Renderer
}

// 构造函数：依赖注入
func NewReviewService(tables *catalog.Tables, repo *postgres.ReviewRepo, enhancer review.StructureEnhancer) *ReviewService {
	return &ReviewService{
		tables:   tables,
		repo:     repo,
		enhancer: enhancer,
		renderer: render.NewRenderer(),
	}
}

// Review 审核一份合同
func (s *ReviewService) Review(ctx context.Context, req *types.ReviewRequest) (*types.ReviewResponse, error) {
	startTime := time.Now()

	depth := req.ReviewDepth
	if depth == "" {
		depth = "standard"
	}
	cfg, err := review.NewConfig(depth)
	if err != nil {
		return nil, err
	}

	// 1. 解析合同：类型识别 + 条款切分分类
	classifier := review.NewClassifier(s.enhancer)
	analysis := review.ParseContract(ctx, s.tables, cfg, classifier, req.ContractText)
	analysis.ContractName = req.ContractName
	analysis.ReviewDepthName = cfg.Profile.Name
	fmt.Printf(">>> [解析] 类型: %s (置信度 %.2f), 条款数: %d, 耗时: %v\n",
		analysis.IdentifiedType, analysis.TypeConfidence, analysis.TotalClauses, time.Since(startTime))

	// 2. 逐条款风险评估
	assessor := risk.NewAssessor(s.tables, cfg)
	clauseReviewer := risk.NewClauseReviewer(s.tables)
	var allRisks []types.Risk
	var clauseReviews []types.ClauseReviewResult

	for clauseType, clauses := range analysis.Clauses {
		for _, clause := range clauses {
			risks := assessor.AssessClause(clause.Content, clauseType, analysis.IdentifiedType)
			for i := range risks {
				risks[i].Location = clause.Number
				risks[i].OriginalText = firstLine(clause.Content)
			}
			allRisks = append(allRisks, risks...)

			if cr := clauseReviewer.Review(clause.Content, clauseType, analysis.IdentifiedType); cr.HasIssues {
				cr.Score = scoring.ClauseRiskScore(clause.Content, clauseType, analysis.IdentifiedType)
				clauseReviews = append(clauseReviews, cr)
			}
		}
	}
	report := risk.GenerateReport(allRisks)
	fmt.Printf(">>> [风险评估] 命中 %d 项风险\n", report.TotalRisks)

	// 3. 三维审查
	commercial := dimension.AnalyzeCommercial(req.ContractText, req.UserContext)
	legal := dimension.AnalyzeLegal(req.ContractText, analysis.IdentifiedType)
	practical := dimension.AnalyzePractical(req.ContractText)

	// 4. 智能评分
	scoringResult := scoring.ComprehensiveScore(commercial, legal, practical)
	fmt.Printf(">>> [评分] 综合 %.2f (%s)\n", scoringResult.ComprehensiveScore, scoringResult.RiskLevel)

	// 5. 渲染文档
	opinionDoc := s.renderer.LegalOpinion(req.ContractName, analysis, report, scoringResult, req.UserContext)
	annotatedDoc := s.renderer.AnnotatedContract(req.ContractName, req.ContractText, report)

	// 6. 落库。存储失败不影响本次审核结果返回。
	reviewID := uuid.New().String()
	if s.repo != nil {
		record := &postgres.ReviewRecord{
			ReviewID:       reviewID,
			ContractName:   req.ContractName,
			ContractType:   analysis.IdentifiedType,
			ReviewDepth:    depth,
			Score:          scoringResult.ComprehensiveScore,
			RiskLevel:      scoringResult.RiskLevel,
			FatalRisks:     report.Summary[types.LevelFatal],
			ImportantRisks: report.Summary[types.LevelImportant],
			GeneralRisks:   report.Summary[types.LevelGeneral],
			MinorRisks:     report.Summary[types.LevelMinor],
			TotalRisks:     report.TotalRisks,
			OpinionDoc:     opinionDoc,
			AnnotatedDoc:   annotatedDoc,
		}
		if err := s.repo.Create(ctx, record); err != nil {
			fmt.Printf(">>> [ERROR] 审核记录存储失败: %v\n", err)
		}
	}

	fmt.Printf(">>> [性能总览] 审核完成，总耗时: %v\n", time.Since(startTime))
	return &types.ReviewResponse{
		ReviewID:      reviewID,
		Analysis:      analysis,
		RiskReport:    report,
		Dimensions:    []*types.DimensionAnalysis{commercial, legal, practical},
		Scoring:       scoringResult,
		ClauseReviews: clauseReviews,
		OpinionDoc:    opinionDoc,
		AnnotatedDoc:  annotatedDoc,
	}, nil
}

// GetReview 查询历史审核记录
func (s *ReviewService) GetReview(ctx context.Context, reviewID string) (*postgres.ReviewRecord, error) {
	return s.repo.GetByReviewID(ctx, reviewID)
}

// History 审核历史：指定合同类型时按类型模糊查询，否则取最近记录
func (s *ReviewService) History(ctx context.Context, contractType string, limit int) ([]postgres.ReviewRecord, error) {
	if contractType != "" {
		return s.repo.SearchByContractType(ctx, contractType)
	}
	return s.repo.ListRecent(ctx, limit)
}

// SaveFeedback 保存审核反馈
func (s *ReviewService) SaveFeedback(ctx context.Context, req *types.FeedbackRequest) error {
	return s.repo.CreateFeedback(ctx, &postgres.ReviewFeedback{
		ReviewID:          req.ReviewID,
		RiskAccuracy:      req.RiskAccuracy,
		SuggestionHelpful: req.SuggestionHelpful,
		Improvements:      req.Improvements,
	})
}

// TypeGuide 查询合同类型审核指引
func (s *ReviewService) TypeGuide(contractType string) *types.TypeGuide {
	return s.tables.TypeGuide(contractType)
}

// ListTypes 支持的合同类型列表
func (s *ReviewService) ListTypes() []string {
	return s.tables.TypeNames()
}

// DepthOptions 审核深度选项
func (s *ReviewService) DepthOptions() map[string]review.Profile {
	return review.DepthLevels
}

func firstLine(s string) string {
	if i := strings.Index(s, "\n"); i >= 0 {
		return s[:i]
	}
	return s
}
