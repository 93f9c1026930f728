// Package config loads the CLI's runtime configuration, following the
// donor's flag-then-env-then-file precedence and MustLoad panic-on-invalid
// convention exactly. Unlike the donor, which only reads a storage path
// and a dump path from flags, MustLoad here owns the whole CLI surface:
// the analyzer has no positional-argument handling of its own, so the
// flag set it defines is complete, and Files holds whatever is left over
// once flag.Parse consumes the rest.
package config

import (
	"flag"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"curgo/internal/metric"
	"curgo/internal/persist"
)

// Config is the full set of run-time knobs, merging the YAML-file-backed
// settings with the CLI flags that override them.
type Config struct {
	Env         string `yaml:"env" env-default:"local"`
	Metric      string `yaml:"metric" env-default:"(c-1)*(l-1)-2"`
	PersistPath string `yaml:"persist_path" env-default:".cur.rent"`
	CachePath   string `yaml:"cache_path" env-default:"./data/cur-cache"`
	Workers     int    `yaml:"workers" env-default:"0"`

	// Top, Interactive, NoCache, Canon and Files have no YAML-file
	// equivalent: they only ever come from the command line.
	Top         int
	Interactive bool
	NoCache     bool
	Canon       string
	Files       []string
}

// MustLoad parses the command line, reads the config file (from --config,
// CUR_CONFIG_PATH, or the default path, in that priority order), and
// panics if a named config file cannot be parsed. There is no recoverable
// path: a program that cannot determine its own configuration has nothing
// useful left to do.
func MustLoad() *Config {
	configPathFlag := flag.String("config", "", "path to the config file")

	var metricFlag string
	flag.StringVar(&metricFlag, "metric", "", "severity metric expression")
	flag.StringVar(&metricFlag, "m", "", "severity metric expression (shorthand)")

	var topFlag int
	flag.IntVar(&topFlag, "top", 0, "only report the top N repeats by metric value (0 = unbounded)")
	flag.IntVar(&topFlag, "n", 0, "only report the top N repeats by metric value (shorthand)")

	var interactiveFlag bool
	flag.BoolVar(&interactiveFlag, "interactive", false, "launch the interactive repeat browser instead of printing to stdout")
	flag.BoolVar(&interactiveFlag, "i", false, "launch the interactive repeat browser (shorthand)")

	noCacheFlag := flag.Bool("no-cache", false, "bypass the fingerprint cache for this run")
	canonFlag := flag.String("canon", "", "canonicalizer to use: default or loose")
	persistPathFlag := flag.String("persist-path", "", "path to the cross-run persistence file")
	cachePathFlag := flag.String("cache-path", "", "path to the fingerprint cache directory")
	workersFlag := flag.Int("workers", 0, "number of file-loading workers (0 = runtime.NumCPU(), bounded by file count)")

	flag.Parse()

	configPath := *configPathFlag
	if configPath == "" {
		configPath = fetchConfigPath()
	}

	var cfg Config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg = Config{
			Env:         "local",
			Metric:      metric.Default,
			PersistPath: persist.DefaultFilename,
			CachePath:   "./data/cur-cache",
		}
	} else if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("config: error loading config file: " + err.Error())
	}

	if metricFlag != "" {
		cfg.Metric = metricFlag
	}
	if *persistPathFlag != "" {
		cfg.PersistPath = *persistPathFlag
	}
	if *cachePathFlag != "" {
		cfg.CachePath = *cachePathFlag
	}
	if *workersFlag != 0 {
		cfg.Workers = *workersFlag
	}

	cfg.Top = topFlag
	cfg.Interactive = interactiveFlag
	cfg.NoCache = *noCacheFlag
	cfg.Canon = *canonFlag
	cfg.Files = flag.Args()

	return &cfg
}

// fetchConfigPath resolves the config file path when --config was not
// given. Priority: CUR_CONFIG_PATH env var, then the repo-relative
// default.
func fetchConfigPath() string {
	if res := os.Getenv("CUR_CONFIG_PATH"); res != "" {
		return res
	}
	return "./config/config_local.yaml"
}
