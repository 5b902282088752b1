package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"github.com/zooyer/shaper/core"
)

const (
	EnvPrefix = "SHAPER"
	Name      = ".shaper"

	// SeparatorAuto 按系统区域设置决定小数分隔符
	SeparatorAuto = "auto"
)

type Config struct {
	Units            string       `mapstructure:"units" yaml:"units"`
	DecimalSeparator string       `mapstructure:"decimal_separator" yaml:"decimal_separator"`
	StateFile        string       `mapstructure:"state_file" yaml:"state_file"`
	Logger           LoggerConfig `mapstructure:"logger" yaml:"logger"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"`
	File       string `mapstructure:"file" yaml:"file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("units", core.Millimeter.String())
	v.SetDefault("decimal_separator", SeparatorAuto)
	v.SetDefault("state_file", defaultStateFile())

	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 30)
}

func defaultStateFile() string {
	home, err := homedir.Dir()
	if err != nil {
		return "shaper-state.json"
	}
	return filepath.Join(home, Name, "state.json")
}

// NewViper 创建带默认值和环境变量绑定的 viper 实例。
// file 为空时在用户目录查找 .shaper.yaml
func NewViper(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if file != "" {
		expanded, err := homedir.Expand(file)
		if err != nil {
			return nil, err
		}
		v.SetConfigFile(expanded)
	} else {
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(Name)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return v, nil
}

func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	state, err := homedir.Expand(cfg.StateFile)
	if err != nil {
		return nil, fmt.Errorf("state_file: %w", err)
	}
	cfg.StateFile = state

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Load 读取配置文件和环境变量
func Load(file string) (*Config, error) {
	v, err := NewViper(file)
	if err != nil {
		return nil, err
	}
	return NewConfigFromViper(v)
}

func (c *Config) Validate() error {
	if u, ok := core.ParseUnit(c.Units); !ok || u == core.Pixel {
		return fmt.Errorf("units must be mm or in, got %q", c.Units)
	}
	if c.DecimalSeparator != SeparatorAuto {
		if _, ok := core.ParseSeparator(c.DecimalSeparator); !ok {
			return fmt.Errorf("decimal_separator must be auto, . or , got %q", c.DecimalSeparator)
		}
	}
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format must be console or json, got %q", c.Logger.Format)
	}
	if c.Logger.MaxSize < 0 || c.Logger.MaxBackups < 0 || c.Logger.MaxAge < 0 {
		return errors.New("logger rotation limits must not be negative")
	}
	return nil
}

// Settings 生成显示设置，auto 时检测系统区域
func (c *Config) Settings() core.Settings {
	var s = core.Settings{Unit: core.Millimeter}

	if u, ok := core.ParseUnit(c.Units); ok && u != core.Pixel {
		s.Unit = u
	}

	if sep, ok := core.ParseSeparator(c.DecimalSeparator); ok {
		s.Separator = sep
	} else {
		s.Separator = core.DetectSeparator()
	}

	return s
}
