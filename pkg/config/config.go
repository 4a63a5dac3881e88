package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/df07/go-pathtracer/pkg/output"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Environment variable prefix for all settings
const envPrefix = "PATHTRACER_"

// Config holds the settings of one render run
type Config struct {
	Scene           string
	Width           int // 0 = scene default
	SamplesPerPixel int // 0 = scene default
	MaxDepth        int // 0 = scene default
	Workers         int // 0 = use CPU count
	Seed            int64
	Format          string
	OutputDir       string
	Thumbnail       int // Max thumbnail side in pixels, 0 disables
	Upload          bool
	S3              output.S3Config
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		Scene:           "random",
		Width:           0,
		SamplesPerPixel: 0,
		MaxDepth:        0,
		Workers:         0,
		Seed:            42,
		Format:          output.FormatPNG,
		OutputDir:       "output",
		Thumbnail:       0,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(envPrefix + key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := getEnv(key, "")
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback, fmt.Errorf("%w: %s%s=%q is not an integer", ErrInvalid, envPrefix, key, value)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value := getEnv(key, "")
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback, fmt.Errorf("%w: %s%s=%q is not a boolean", ErrInvalid, envPrefix, key, value)
	}
	return b, nil
}

// Load builds a Config from defaults, an optional .env file and PATHTRACER_*
// environment variables. Variables already set in the environment win over
// the file. A missing envFile is not an error.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := Default()
	cfg.Scene = getEnv("SCENE", cfg.Scene)
	cfg.Format = getEnv("FORMAT", cfg.Format)
	cfg.OutputDir = getEnv("OUTPUT_DIR", cfg.OutputDir)

	var err error
	if cfg.Width, err = getEnvInt("WIDTH", cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.SamplesPerPixel, err = getEnvInt("SPP", cfg.SamplesPerPixel); err != nil {
		return Config{}, err
	}
	if cfg.MaxDepth, err = getEnvInt("MAX_DEPTH", cfg.MaxDepth); err != nil {
		return Config{}, err
	}
	if cfg.Workers, err = getEnvInt("WORKERS", cfg.Workers); err != nil {
		return Config{}, err
	}
	if cfg.Thumbnail, err = getEnvInt("THUMBNAIL", cfg.Thumbnail); err != nil {
		return Config{}, err
	}
	seed, err := getEnvInt("SEED", int(cfg.Seed))
	if err != nil {
		return Config{}, err
	}
	cfg.Seed = int64(seed)
	if cfg.Upload, err = getEnvBool("UPLOAD", cfg.Upload); err != nil {
		return Config{}, err
	}

	cfg.S3 = output.S3Config{
		AccessKey: getEnv("S3_ACCESS_KEY", ""),
		SecretKey: getEnv("S3_SECRET_KEY", ""),
		Endpoint:  getEnv("S3_ENDPOINT", ""),
		Region:    getEnv("S3_REGION", "us-east-1"),
		Bucket:    getEnv("S3_BUCKET", ""),
		Prefix:    getEnv("S3_PREFIX", ""),
		ACL:       getEnv("S3_ACL", ""),
	}

	return cfg, nil
}

// Validate checks that the settings describe a renderable job
func (c Config) Validate() error {
	switch {
	case c.Scene == "":
		return fmt.Errorf("%w: scene name is empty", ErrInvalid)
	case c.Width < 0:
		return fmt.Errorf("%w: width must not be negative, got %d", ErrInvalid, c.Width)
	case c.SamplesPerPixel < 0:
		return fmt.Errorf("%w: samples per pixel must not be negative, got %d", ErrInvalid, c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalid, c.MaxDepth)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalid, c.Workers)
	case c.Thumbnail < 0:
		return fmt.Errorf("%w: thumbnail size must not be negative, got %d", ErrInvalid, c.Thumbnail)
	case !output.IsSupportedFormat(c.Format):
		return fmt.Errorf("%w: unknown format %q (want one of %v)", ErrInvalid, c.Format, output.Formats())
	case c.Upload && c.S3.Bucket == "":
		return fmt.Errorf("%w: upload requested but %sS3_BUCKET is not set", ErrInvalid, envPrefix)
	}
	return nil
}
