package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Groq     GroqConfig     `yaml:"groq"`
	HF       HFConfig       `yaml:"huggingface"`
	TTS      TTSConfig      `yaml:"tts"`
	S3       S3Config       `yaml:"s3"`
	HTTP     HTTPConfig     `yaml:"http"`
}

type TelegramConfig struct {
	Token       string `yaml:"token"`
	AdminChatID int64  `yaml:"admin_chat_id"`
	Debug       bool   `yaml:"debug"`
}

type GroqConfig struct {
	APIKey    string `yaml:"api_key"`
	BaseURL   string `yaml:"base_url"`
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
}

type HFConfig struct {
	Token      string `yaml:"token"`
	ImageURL   string `yaml:"image_url"`
	WhisperURL string `yaml:"whisper_url"`
}

type TTSConfig struct {
	URL        string `yaml:"url"`
	FFmpegPath string `yaml:"ffmpeg_path"`
}

type S3Config struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
}

type HTTPConfig struct {
	Port       string        `yaml:"port"`
	AdminToken string        `yaml:"admin_token"`
	Timeout    time.Duration `yaml:"timeout"`
}

// Enabled - архив картинок включается только при заданном endpoint+bucket
func (c S3Config) Enabled() bool {
	return c.Endpoint != "" && c.Bucket != ""
}

// Load - .env → (опционально) YAML → переменные окружения поверх
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	var errs error

	setString(&c.Telegram.Token, "TELEGRAM_BOT_TOKEN")
	setString(&c.Groq.APIKey, "GROQ_API_KEY")
	setString(&c.Groq.BaseURL, "GROQ_BASE_URL")
	setString(&c.Groq.Model, "GROQ_MODEL")
	setString(&c.HF.Token, "HF_TOKEN")
	setString(&c.HF.ImageURL, "HF_IMAGE_URL")
	setString(&c.HF.WhisperURL, "HF_WHISPER_URL")
	setString(&c.TTS.URL, "TTS_URL")
	setString(&c.TTS.FFmpegPath, "FFMPEG_PATH")
	setString(&c.S3.Endpoint, "S3_ENDPOINT")
	setString(&c.S3.AccessKey, "S3_ACCESS_KEY")
	setString(&c.S3.SecretKey, "S3_SECRET_KEY")
	setString(&c.S3.Bucket, "S3_BUCKET")
	setString(&c.S3.Region, "S3_REGION")
	setString(&c.HTTP.Port, "PORT")
	setString(&c.HTTP.AdminToken, "ADMIN_TOKEN")

	if v := os.Getenv("ADMIN_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("ADMIN_CHAT_ID: %w", err))
		} else {
			c.Telegram.AdminChatID = id
		}
	}
	if v := os.Getenv("CHAT_MAX_TOKENS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("CHAT_MAX_TOKENS: %w", err))
		} else {
			c.Groq.MaxTokens = n
		}
	}
	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("HTTP_TIMEOUT: %w", err))
		} else {
			c.HTTP.Timeout = d
		}
	}
	if v := os.Getenv("BOT_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("BOT_DEBUG: %w", err))
		} else {
			c.Telegram.Debug = b
		}
	}

	return errs
}

func (c *Config) setDefaults() {
	if c.Groq.BaseURL == "" {
		c.Groq.BaseURL = "https://api.groq.com/openai/v1"
	}
	if c.Groq.Model == "" {
		c.Groq.Model = "openai/gpt-oss-120b"
	}
	if c.Groq.MaxTokens == 0 {
		c.Groq.MaxTokens = 300
	}
	if c.HF.ImageURL == "" {
		c.HF.ImageURL = "https://api-inference.huggingface.co/models/stabilityai/stable-diffusion-2"
	}
	if c.HF.WhisperURL == "" {
		c.HF.WhisperURL = "https://api-inference.huggingface.co/models/openai/whisper-base"
	}
	if c.TTS.URL == "" {
		c.TTS.URL = "https://translate.google.com/translate_tts"
	}
	if c.TTS.FFmpegPath == "" {
		c.TTS.FFmpegPath = "ffmpeg"
	}
	if c.HTTP.Port == "" {
		c.HTTP.Port = "8080"
	}
	if c.HTTP.Timeout == 0 {
		c.HTTP.Timeout = 120 * time.Second
	}
}

// Validate - собирает все отсутствующие секреты разом
func (c *Config) Validate() error {
	var errs error
	if c.Telegram.Token == "" {
		errs = multierr.Append(errs, errors.New("TELEGRAM_BOT_TOKEN is not set"))
	}
	if c.Groq.APIKey == "" {
		errs = multierr.Append(errs, errors.New("GROQ_API_KEY is not set"))
	}
	if c.HF.Token == "" {
		errs = multierr.Append(errs, errors.New("HF_TOKEN is not set"))
	}
	return errs
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
