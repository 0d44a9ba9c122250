package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ReviewRepo 封装对审核记录和反馈表的所有操作
type ReviewRepo struct {
	db *gorm.DB
}

// NewReviewRepo 构造函数
func NewReviewRepo(db *gorm.DB) *ReviewRepo {
	return &ReviewRepo{db: db}
}

// Create 创建审核记录
func (r *ReviewRepo) Create(ctx context.Context, record *ReviewRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// GetByReviewID 根据 UUID 查询审核记录
func (r *ReviewRepo) GetByReviewID(ctx context.Context, reviewID string) (*ReviewRecord, error) {
	var record ReviewRecord
	err := r.db.WithContext(ctx).
		Where("review_id = ?", reviewID).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListRecent 最近的审核记录，按创建时间倒序
func (r *ReviewRepo) ListRecent(ctx context.Context, limit int) ([]ReviewRecord, error) {
	var records []ReviewRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

// SearchByContractType 按合同类型模糊查询
func (r *ReviewRepo) SearchByContractType(ctx context.Context, contractType string) ([]ReviewRecord, error) {
	var records []ReviewRecord
	err := r.db.WithContext(ctx).
		Where("contract_type LIKE ?", "%"+contractType+"%").
		Limit(20).
		Find(&records).Error
	return records, err
}

// PurgeBefore 清理早于指定时间的审核记录（定时任务用），返回删除行数
func (r *ReviewRepo) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&ReviewRecord{})
	return result.RowsAffected, result.Error
}

// CreateFeedback 保存审核反馈
func (r *ReviewRepo) CreateFeedback(ctx context.Context, feedback *ReviewFeedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}
