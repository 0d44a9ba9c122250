package job

import (
	"context"
	"fmt"
	"time"

	"contract-review/storage/postgres"
	"contract-review/vars"

	"github.com/robfig/cron/v3"
)

func StartCronJob(pgRepo *postgres.ReviewRepo) {
	c := cron.New()

	// 每天凌晨 2 点清理超过保留期的审核记录
	_, _ = c.AddFunc("0 2 * * *", func() {
		ctx := context.Background()
		cutoff := time.Now().AddDate(0, 0, -vars.RETENTION_DAYS)
		rows, err := pgRepo.PurgeBefore(ctx, cutoff)
		if err != nil {
			fmt.Println("[Cron] Error:", err)
		} else {
			fmt.Printf("[Cron] 清理了 %d 条过期审核记录\n", rows)
		}
	})

	c.Start()
}
