package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type ScanConfig struct {
	// PackagePath may also arrive via the -package CLI flag, which wins.
	PackagePath string `yaml:"packagePath"`
	// BatchSize is the number of channel folders one worker processes
	// before merging into shared state. Fixed, not derived from input size.
	BatchSize int `yaml:"batchSize"`
	// Workers caps concurrent batches.
	Workers int `yaml:"workers"`
	// Rescan, when > 0, re-runs the full scan on this interval.
	Rescan time.Duration `yaml:"rescan"`
}

type ReportConfig struct {
	Enabled  bool   `yaml:"enabled"`
	FilePath string `yaml:"filePath"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	Scan      ScanConfig    `yaml:"scan"`
	WebServer Server        `yaml:"webServer"`
	Report    ReportConfig  `yaml:"report"`
	Logger    LoggerConfig  `yaml:"logger"`
	Cache     CacheConfig   `yaml:"cache"`
	Metrics   MetricsConfig `yaml:"metrics"`
}
