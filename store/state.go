package store

import (
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/zooyer/shaper/core"
	"github.com/zooyer/shaper/entities"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Entry 是一个元素的持久化记录
type Entry struct {
	AppID string                `json:"appId"`
	Data  *entities.Measurement `json:"data"`
}

// State 是会话的持久化状态。dpi 只用于排查问题，不可配置
type State struct {
	Units            string  `json:"units"`
	DecimalSeparator string  `json:"decimalSeparator"`
	DPI              int     `json:"dpi"`
	Elements         []Entry `json:"elements"`
}

// NewState 按 ids 顺序记录测量结果
func NewState(settings core.Settings, ids []string, measurements map[string]*entities.Measurement) *State {
	var st = &State{
		Units:            settings.Unit.String(),
		DecimalSeparator: string(settings.DecimalSeparator()),
		DPI:              core.PxPerInch,
		Elements:         make([]Entry, 0, len(ids)),
	}

	for _, id := range ids {
		if m, ok := measurements[id]; ok {
			st.Elements = append(st.Elements, Entry{AppID: id, Data: m})
		}
	}

	return st
}

// Restore 恢复单位和分隔符，非法值忽略并保留原设置
func (st *State) Restore(settings *core.Settings) {
	if u, ok := core.ParseUnit(st.Units); ok && u != core.Pixel {
		settings.Unit = u
	}
	if sep, ok := core.ParseSeparator(st.DecimalSeparator); ok {
		settings.Separator = sep
	}
}

// Measurements 返回 appId 到测量结果的映射，跳过空记录
func (st *State) Measurements() map[string]*entities.Measurement {
	var ms = make(map[string]*entities.Measurement, len(st.Elements))
	for _, e := range st.Elements {
		if e.AppID != "" && e.Data != nil {
			ms[e.AppID] = e.Data
		}
	}
	return ms
}

// SaveState 写入 JSON 文件，必要时创建目录
func SaveState(filename string, st *State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	if dir := filepath.Dir(filename); dir != "" {
		if err = os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(filename, data, 0644)
}

// LoadState 读取 JSON 文件。文件不存在时返回的错误满足 errors.Is(err, fs.ErrNotExist)
func LoadState(filename string) (*State, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var st State
	if err = json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("decode state %s: %w", filename, err)
	}

	return &st, nil
}
