package catalog

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"contract-review/types"
)

// LoadError 参考数据加载失败（文件不可读、缺少必需列、行解析失败）
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load reference data %s failed: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load 从目录一次性加载四张参考数据表。任一必需文件不可读或格式
// 错误立即失败；可选字段缺失按空串处理。
func Load(dir string) (*Tables, error) {
	tables := &Tables{}

	rows, err := readCSV(filepath.Join(dir, "contract_types.csv"), []string{"contract_type"})
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		tables.ContractTypes = append(tables.ContractTypes, types.ContractTypeRecord{
			ContractType: row["contract_type"],
			Category:     row["category"],
			CoreRisks:    row["core_risks"],
			KeyClauses:   row["key_clauses"],
			LegalBasis:   row["legal_basis"],
			ReviewPoints: row["review_points"],
		})
	}

	rows, err = readCSV(filepath.Join(dir, "risk_templates.csv"), []string{"risk_id", "risk_type", "risk_description"})
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		tables.RiskTemplates = append(tables.RiskTemplates, types.RiskTemplate{
			RiskID:                 row["risk_id"],
			RiskType:               row["risk_type"],
			ContractType:           row["contract_type"],
			ClauseName:             row["clause_name"],
			RiskDescription:        row["risk_description"],
			LegalBasis:             row["legal_basis"],
			ModificationSuggestion: row["modification_suggestion"],
			ImpactAnalysis:         row["impact_analysis"],
		})
	}

	rows, err = readCSV(filepath.Join(dir, "clause_standards.csv"), []string{"clause_type"})
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		tables.ClauseStandards = append(tables.ClauseStandards, types.ClauseStandard{
			ClauseType:       row["clause_type"],
			ContractType:     row["contract_type"],
			KeyElements:      row["key_elements"],
			StandardTemplate: row["standard_template"],
		})
	}

	rows, err = readCSV(filepath.Join(dir, "review_checklists.csv"), []string{"check_item"})
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		tables.ReviewChecklists = append(tables.ReviewChecklists, types.ChecklistItem{
			CheckItem:           row["check_item"],
			Category:            row["category"],
			ApplicableContracts: row["applicable_contracts"],
			CheckPoints:         row["check_points"],
		})
	}

	log.Printf("参考数据加载完成: %d 类型 / %d 风险模板 / %d 标准条款 / %d 检查项",
		len(tables.ContractTypes), len(tables.RiskTemplates),
		len(tables.ClauseStandards), len(tables.ReviewChecklists))
	return tables, nil
}

// readCSV 读取带表头的 CSV，返回 列名->值 的行列表
func readCSV(path string, required []string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{File: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // 允许可选列缺失，按空串补齐
	records, err := r.ReadAll()
	if err != nil {
		return nil, &LoadError{File: path, Err: err}
	}
	if len(records) == 0 {
		return nil, &LoadError{File: path, Err: fmt.Errorf("empty file")}
	}

	header := records[0]
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[col] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, &LoadError{File: path, Err: fmt.Errorf("missing required column %q", col)}
		}
	}

	var rows []map[string]string
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for col, i := range index {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
