package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringArray 字符串数组类型，用于存储图片、特性、子分类等
type StringArray []string

// Value 实现 driver.Valuer 接口
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan 实现 sql.Scanner 接口
func (s *StringArray) Scan(value interface{}) error {
	return scanJSON(value, s, func() { *s = StringArray{} })
}

// Spec 单条规格参数
type Spec struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SpecList 有序规格参数列表
type SpecList []Spec

// Value 实现 driver.Valuer 接口
func (l SpecList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan 实现 sql.Scanner 接口
func (l *SpecList) Scan(value interface{}) error {
	return scanJSON(value, l, func() { *l = SpecList{} })
}

func scanJSON(value interface{}, dest interface{}, reset func()) error {
	switch v := value.(type) {
	case nil:
		reset()
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported json column type %T", value)
	}
}
