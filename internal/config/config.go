package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Storage     StorageConfig     `yaml:"storage"`
	Artifacts   ArtifactsConfig   `yaml:"artifacts"`
	Predictions PredictionsConfig `yaml:"predictions"`
	Log         LogConfig         `yaml:"log"`
	KeepAlive   KeepAliveConfig   `yaml:"keepalive"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type StorageConfig struct {
	// memory | postgres | mongo | sqlite. Vacío: se infiere de DSN/URI.
	Driver        string `yaml:"driver"`
	PostgresDSN   string `yaml:"postgres_dsn"`
	MongoURI      string `yaml:"mongo_uri"`
	MongoDatabase string `yaml:"mongo_database"`
	SQLitePath    string `yaml:"sqlite_path"`
}

type ArtifactsConfig struct {
	Driver string    `yaml:"driver"` // fs | memory | s3 | gcs
	Prefix string    `yaml:"prefix"`
	FSRoot string    `yaml:"fs_root"`
	S3     S3Config  `yaml:"s3"`
	GCS    GCSConfig `yaml:"gcs"`
}

type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"` // MinIO u otro compatible
	PathStyle bool   `yaml:"path_style"`

	// Opcionales; si faltan se usa la cadena de credenciales por defecto de AWS.
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

type GCSConfig struct {
	Bucket          string `yaml:"bucket"`
	CredentialsFile string `yaml:"credentials_file"`
}

type PredictionsConfig struct {
	HeuristicEnabled bool    `yaml:"heuristic_enabled"`
	MinAnimals       int     `yaml:"min_animals"`
	MinAdoptions     int     `yaml:"min_adoptions"`
	TestFraction     float64 `yaml:"test_fraction"`
	Seed             uint64  `yaml:"seed"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
}

type KeepAliveConfig struct {
	Interval time.Duration `yaml:"interval"`
}

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverSQLite   = "sqlite"
)

func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Storage: StorageConfig{
			MongoDatabase: "pet_adoption",
			SQLitePath:    "./data/shelter.db",
		},
		Artifacts: ArtifactsConfig{
			Driver: "fs",
			Prefix: "models/",
			FSRoot: "./data/models",
		},
		Predictions: PredictionsConfig{
			HeuristicEnabled: true,
			MinAnimals:       10,
			MinAdoptions:     5,
			TestFraction:     0.2,
			Seed:             42,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    "pet-shelter",
		},
		KeepAlive: KeepAliveConfig{
			Interval: 30 * time.Minute,
		},
	}
}

// Load arma la config: defaults, archivo YAML opcional (path o SHELTER_CONFIG),
// .env si existe y finalmente variables de entorno.
func Load(path string) (Config, error) {
	// .env es opcional; no pisa variables ya definidas.
	_ = godotenv.Load()
	return loadWith(path, os.LookupEnv)
}

type lookupFunc func(string) (string, bool)

func loadWith(path string, lookup lookupFunc) (Config, error) {
	cfg := Defaults()

	if strings.TrimSpace(path) == "" {
		path, _ = lookup("SHELTER_CONFIG")
	}
	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := applyEnvOverrides(&cfg, lookup); err != nil {
		return Config{}, err
	}

	if cfg.Storage.Driver == "" {
		switch {
		case cfg.Storage.PostgresDSN != "":
			cfg.Storage.Driver = DriverPostgres
		case cfg.Storage.MongoURI != "":
			cfg.Storage.Driver = DriverMongo
		default:
			cfg.Storage.Driver = DriverMemory
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config, lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	str("PORT", &cfg.Server.Port)
	str("STORAGE_DRIVER", &cfg.Storage.Driver)
	str("DB_DSN", &cfg.Storage.PostgresDSN)
	str("MONGO_URI", &cfg.Storage.MongoURI)
	str("DB_NAME", &cfg.Storage.MongoDatabase)
	str("SQLITE_PATH", &cfg.Storage.SQLitePath)

	str("ARTIFACTS_DRIVER", &cfg.Artifacts.Driver)
	str("ARTIFACTS_PREFIX", &cfg.Artifacts.Prefix)
	str("ARTIFACTS_FS_ROOT", &cfg.Artifacts.FSRoot)
	str("ARTIFACTS_S3_BUCKET", &cfg.Artifacts.S3.Bucket)
	str("ARTIFACTS_S3_REGION", &cfg.Artifacts.S3.Region)
	str("ARTIFACTS_S3_ENDPOINT", &cfg.Artifacts.S3.Endpoint)
	str("ARTIFACTS_GCS_BUCKET", &cfg.Artifacts.GCS.Bucket)
	str("ARTIFACTS_GCS_CREDENTIALS", &cfg.Artifacts.GCS.CredentialsFile)

	str("LOG_LEVEL", &cfg.Log.Level)
	str("LOG_FORMAT", &cfg.Log.Format)
	str("APP_NAME", &cfg.Log.App)

	if v, ok := lookup("ARTIFACTS_S3_PATH_STYLE"); ok && v != "" {
		cfg.Artifacts.S3.PathStyle = strings.EqualFold(v, "true")
	}
	if v, ok := lookup("PREDICTIONS_HEURISTIC"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("PREDICTIONS_HEURISTIC: %w", err)
		}
		cfg.Predictions.HeuristicEnabled = b
	}
	if v, ok := lookup("KEEPALIVE_INTERVAL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("KEEPALIVE_INTERVAL: %w", err)
		}
		cfg.KeepAlive.Interval = d
	}
	return nil
}

func (c Config) Validate() error {
	var errs []error

	switch c.Storage.Driver {
	case DriverMemory, DriverSQLite:
	case DriverPostgres:
		if c.Storage.PostgresDSN == "" {
			errs = append(errs, errors.New("storage.postgres_dsn (DB_DSN) required for postgres driver"))
		}
	case DriverMongo:
		if c.Storage.MongoURI == "" {
			errs = append(errs, errors.New("storage.mongo_uri (MONGO_URI) required for mongo driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage driver %q", c.Storage.Driver))
	}

	switch c.Artifacts.Driver {
	case "fs", "memory":
	case "s3":
		if c.Artifacts.S3.Bucket == "" {
			errs = append(errs, errors.New("artifacts.s3.bucket required for s3 driver"))
		}
	case "gcs":
		if c.Artifacts.GCS.Bucket == "" {
			errs = append(errs, errors.New("artifacts.gcs.bucket required for gcs driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown artifacts driver %q", c.Artifacts.Driver))
	}

	if c.Predictions.MinAnimals <= 0 || c.Predictions.MinAdoptions <= 0 {
		errs = append(errs, errors.New("predictions thresholds must be positive"))
	}
	if c.Predictions.TestFraction <= 0 || c.Predictions.TestFraction >= 1 {
		errs = append(errs, errors.New("predictions.test_fraction must be in (0,1)"))
	}
	if c.KeepAlive.Interval <= 0 {
		errs = append(errs, errors.New("keepalive.interval must be positive"))
	}

	return errors.Join(errs...)
}
