package courses

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Course — строка каталога курсов: название, свободный текст про навыки
// и ссылка. Каталог читается один раз на старте и дальше не меняется.
type Course struct {
	Name   string
	Skills string
	URL    string
}

// LoadCatalog читает CSV-каталог. Колонки ищутся по заголовку
// (course_name, course_url); колонка с навыками — вторая по позиции,
// как в исходном датасете. Пустые значения не считаются ошибкой.
func LoadCatalog(path string) ([]Course, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open course catalog: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // строки бывают рваные, читаем как есть
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read course catalog: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("course catalog %s has no data rows", path)
	}

	header := records[0]
	nameIdx, urlIdx := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "course_name":
			nameIdx = i
		case "course_url":
			urlIdx = i
		}
	}
	const skillsIdx = 1

	catalog := make([]Course, 0, len(records)-1)
	for _, rec := range records[1:] {
		c := Course{Name: "Unknown", URL: "#"}
		if nameIdx >= 0 && nameIdx < len(rec) {
			c.Name = strings.TrimSpace(rec[nameIdx])
		}
		if urlIdx >= 0 && urlIdx < len(rec) {
			c.URL = strings.TrimSpace(rec[urlIdx])
		}
		if skillsIdx < len(rec) {
			c.Skills = strings.TrimSpace(rec[skillsIdx])
		}
		catalog = append(catalog, c)
	}
	return catalog, nil
}
