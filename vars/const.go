package vars

import (
	"os"
	"strconv"
)

// GetEnv 获取环境变量，如果不存在则返回默认值
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvInt 获取整型环境变量，解析失败时返回默认值
func GetEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

const (
	// 模型名称
	QWEN3B = "qwen2.5:3b"
	QWEN7B = "qwen2.5:7b"

	// 条款结构增强器开关
	EnhancerNone   = "none"
	EnhancerOllama = "ollama"
)

// 环境变量配置（支持 Docker 部署）
var (
	// HTTP
	HTTPADDR = GetEnv("HTTP_ADDR", ":8081")

	// 参考数据目录（四张 CSV 表）
	DATADIR = GetEnv("DATA_DIR", "./data")

	// PG
	PGUSER = GetEnv("PGUSER", "root")
	PGPWD  = GetEnv("PGPWD", "root")
	PGDB   = GetEnv("PGDB", "reviewDB")
	PGHOST = GetEnv("PGHOST", "localhost")
	PGPORT = GetEnv("PGPORT", "5432")

	// OLLAMA（仅 ENHANCER=ollama 时使用）
	OLLAMA_PATH  = GetEnv("OLLAMA_PATH", "http://localhost:11434")
	OLLAMA_MODEL = GetEnv("OLLAMA_MODEL", QWEN3B)

	// 增强器选择：none | ollama，构造时一次性决定，不做运行时探测
	ENHANCER = GetEnv("ENHANCER", EnhancerNone)

	// 审核记录保留天数（定时任务清理）
	RETENTION_DAYS = GetEnvInt("RETENTION_DAYS", 180)
)
