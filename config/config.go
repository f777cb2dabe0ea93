package config

// Config holds the application configuration
type Config struct {
	Jackhmmer JackhmmerConfig  `mapstructure:"jackhmmer"`
	Databases []DatabaseConfig `mapstructure:"databases"`
	Runtime   RuntimeConfig    `mapstructure:"runtime"`
	Mirrors   []string         `mapstructure:"mirrors"`
	InfluxDB  InfluxDBConfig   `mapstructure:"db"`
	Logging   LoggingConfig    `mapstructure:"logging"`
}

type JackhmmerConfig struct {
	Binary     string  `mapstructure:"binary"`
	CPU        int     `mapstructure:"cpu"`
	Iterations int     `mapstructure:"iterations"`
	EValue     float64 `mapstructure:"evalue"`
	DomE       float64 `mapstructure:"dome"`
	IncdomE    float64 `mapstructure:"incdome"`
	F1         float64 `mapstructure:"f1"`
	F2         float64 `mapstructure:"f2"`
	F3         float64 `mapstructure:"f3"`
	Tblout     bool    `mapstructure:"tblout"`
}

// DatabaseConfig describes one reference database. Path is either a local
// file (non-chunked mode, Chunks = 0) or the remote base location of a
// chunked database; chunk n lives at <path>.<n>. A "{mirror}" placeholder
// in Path is resolved against the configured mirror suffixes at startup.
type DatabaseConfig struct {
	Name    string `mapstructure:"name"`
	Path    string `mapstructure:"path"`
	Chunks  int    `mapstructure:"chunks"`
	ZValue  int64  `mapstructure:"zvalue"`
	MaxHits int    `mapstructure:"maxhits"`
}

type RuntimeConfig struct {
	WorkDir     string `mapstructure:"workdir"`
	OutDir      string `mapstructure:"outdir"`
	Concurrency int    `mapstructure:"concurrency"`
	// RateLimit caps chunk download throughput in bytes/sec, 0 = unlimited
	RateLimit int `mapstructure:"ratelimit"`
}

type InfluxDBConfig struct {
	URL    string `mapstructure:"url"`
	Token  string `mapstructure:"token"`
	Org    string `mapstructure:"org"`
	Bucket string `mapstructure:"bucket"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}
