package main

import (
	"context"
	"fmt"
	"log"

	"contract-review/api/handler"
	"contract-review/api/router"
	"contract-review/job"
	"contract-review/logic/catalog"
	"contract-review/logic/review"
	"contract-review/service"
	"contract-review/storage/postgres"
	"contract-review/vars"

	"github.com/gin-gonic/gin"
)

func main() {
	ctx := context.Background()

	// 1. 初始化 DB
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		vars.PGHOST, vars.PGUSER, vars.PGPWD, vars.PGDB, vars.PGPORT)
	db, err := postgres.InitDB(dsn)
	if err != nil {
		panic(err)
	}

	// 2. 初始化 pg
	pgRepo := postgres.NewReviewRepo(db)

	// 启动定时任务
	job.StartCronJob(pgRepo)

	// 3. 加载参考数据表（合同类型 / 风险模板 / 标准条款 / 检查清单）
	tables, err := catalog.Load(vars.DATADIR)
	if err != nil {
		panic(fmt.Sprintf("参考数据加载失败:%v", err))
	}
	log.Printf("参考数据加载完成: %d 类合同, %d 条风险模板\n",
		len(tables.ContractTypes), len(tables.RiskTemplates))

	// 4. 初始化条款结构增强器（默认关闭，纯规则流水线不依赖模型）
	var enhancer review.StructureEnhancer
	if vars.ENHANCER == vars.EnhancerOllama {
		enhancer, err = review.NewOllamaEnhancer(ctx, vars.OLLAMA_PATH, vars.OLLAMA_MODEL)
		if err != nil {
			panic(fmt.Sprintf("Ollama 增强器初始化失败:%v", err))
		}
		log.Println("✅ Ollama 条款结构增强器已启用")
	}

	// 5. 初始化 Service (业务层)
	reviewSvc := service.NewReviewService(tables, pgRepo, enhancer)

	// 6. 初始化 Handler (API 层)
	reviewHandler := handler.NewReviewHandler(reviewSvc)

	// 7. 启动 Web Server
	r := gin.Default()
	router.RegisterRoutes(r, reviewHandler)

	log.Println("Server running on " + vars.HTTPADDR)
	r.Run(vars.HTTPADDR)
}
