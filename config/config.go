package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultConfigFile はデフォルトの設定ファイル名
	DefaultConfigFile = "config.toml"
)

// Config はアプリケーション全体の設定を表す
type Config struct {
	Debug bool `toml:"debug"`
	Log   struct {
		Filename string `toml:"filename"`
	} `toml:"log"`
	Time struct {
		// T4Date のエポック換算に使うIANAゾーン名 (e.g. "Asia/Tokyo").
		// 空のときはホストのローカルゾーン。差分を取る換算同士でゾーンが
		// ずれると打ち消しが成立しないため、プロセス内で統一すること。
		Location string `toml:"location"`
	} `toml:"time"`
}

// NewConfig はデフォルト設定を持つConfigを作成する
func NewConfig() *Config {
	cfg := &Config{
		Debug: false,
	}
	cfg.Log.Filename = "homgar-status.log"
	cfg.Time.Location = ""
	return cfg
}

// LoadConfig は設定を読み込む
// 以下の優先順位でロードする:
// 1. 指定されたパスの設定ファイル（指定がある場合）
// 2. カレントディレクトリのデフォルト設定ファイル（存在する場合）
// 3. デフォルト設定
func LoadConfig(configPath string) (*Config, error) {
	config := NewConfig()

	// 設定ファイルパスの解決
	filePath := configPath
	if filePath == "" {
		// 指定がなければデフォルトファイルを探す
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			filePath = DefaultConfigFile
		} else {
			// デフォルトファイルもなければ、デフォルト設定をそのまま返す
			return config, nil
		}
	}

	// 設定ファイルが指定または存在する場合は読み込む
	if _, err := toml.DecodeFile(filePath, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Location は設定されたゾーン名を解決する。未設定のときは time.Local を返す。
func (c *Config) Location() (*time.Location, error) {
	if c.Time.Location == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Time.Location)
}
