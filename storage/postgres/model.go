package postgres

import (
	"time"
)

// ReviewRecord 对应数据库里的 review_records 表，每次审核落一条
type ReviewRecord struct {
	// ReviewID 手动指定的 UUID，不用自增 ID
	ReviewID       string  `gorm:"column:review_id;primaryKey;type:uuid"`
	ContractName   string  `gorm:"column:contract_name;type:varchar(255);not null"`
	ContractType   string  `gorm:"column:contract_type;type:varchar(50);index"`
	ReviewDepth    string  `gorm:"column:review_depth;type:varchar(20)"`
	Score          float64 `gorm:"column:score;type:decimal(5,2)"`
	RiskLevel      string  `gorm:"column:risk_level;type:varchar(20);index"`
	FatalRisks     int     `gorm:"column:fatal_risks"`
	ImportantRisks int     `gorm:"column:important_risks"`
	GeneralRisks   int     `gorm:"column:general_risks"`
	MinorRisks     int     `gorm:"column:minor_risks"`
	TotalRisks     int     `gorm:"column:total_risks"`
	OpinionDoc     string  `gorm:"column:opinion_doc;type:text"`
	AnnotatedDoc   string  `gorm:"column:annotated_doc;type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 强制指定表名
func (ReviewRecord) TableName() string {
	return "review_records"
}

// ReviewFeedback 审核反馈，用于后续统计风险识别准确率
type ReviewFeedback struct {
	ID                uint   `gorm:"primaryKey;autoIncrement"`
	ReviewID          string `gorm:"column:review_id;type:uuid;index"`
	RiskAccuracy      int    `gorm:"column:risk_accuracy;type:smallint"` // 1-5
	SuggestionHelpful bool   `gorm:"column:suggestion_helpful"`
	Improvements      string `gorm:"column:improvements;type:text"`

	CreatedAt time.Time
}

func (ReviewFeedback) TableName() string {
	return "review_feedbacks"
}
