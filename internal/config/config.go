package config

import (
	"fmt"
	"time"
)

type Config struct {
	ASR         ASRConfig         `yaml:"asr"`
	LLM         LLMConfig         `yaml:"llm"`
	Audio       AudioConfig       `yaml:"audio"`
	Speakers    SpeakersConfig    `yaml:"speakers"`
	Export      ExportConfig      `yaml:"export"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`

	// Keys are loaded from the environment, never from the YAML file.
	Keys Keys `yaml:"-"`
}

type ASRConfig struct {
	DefaultModel    string   `yaml:"default_model"`
	Server          string   `yaml:"server"`
	StreamingClient string   `yaml:"streaming_client"`
	OfflineClient   string   `yaml:"offline_client"`
	TimeoutFloor    Duration `yaml:"timeout_floor"`
	TimeoutCeiling  Duration `yaml:"timeout_ceiling"`
	// TimeoutFactor scales estimated audio duration into a call timeout.
	TimeoutFactor float64 `yaml:"timeout_factor"`
	// DiarizationMultiplier further scales the timeout when speaker
	// diarization is requested.
	DiarizationMultiplier int      `yaml:"diarization_multiplier"`
	RetryDelay            Duration `yaml:"retry_delay"`
	// OfflineMaxFileSizeMB is the hard ceiling of the accurate backend.
	OfflineMaxFileSizeMB int `yaml:"offline_max_file_size_mb"`
}

type LLMConfig struct {
	Provider       string     `yaml:"provider"` // "openrouter" or "gemini"
	SummaryModel   string     `yaml:"summary_model"`
	KeyPointsModel string     `yaml:"key_points_model"`
	ExamModel      string     `yaml:"exam_model"`
	GeminiModel    string     `yaml:"gemini_model"`
	MaxTokens      int        `yaml:"max_tokens"`
	Backoff        []Duration `yaml:"backoff"`
	Timeout        Duration   `yaml:"timeout"`
}

type AudioConfig struct {
	SupportedFormats []string `yaml:"supported_formats"`
	SampleRate       int      `yaml:"sample_rate"`
	Channels         int      `yaml:"channels"`
	Codec            string   `yaml:"codec"`
	MaxFileSizeMB    int      `yaml:"max_file_size_mb"`
}

type SpeakersConfig struct {
	Labels []string `yaml:"labels"`
}

type ExportConfig struct {
	Formats         []string `yaml:"formats"`
	IncludeMetadata bool     `yaml:"include_metadata"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Keys holds API credentials read from the environment.
type Keys struct {
	NvidiaAPIKey     string
	OpenRouterAPIKey string
	GeminiAPIKeys    []string
}

func (c *Config) Validate() error {
	if c.ASR.Server == "" {
		return fmt.Errorf("asr.server is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.ASR.DefaultModel == "" {
		c.ASR.DefaultModel = "nvidia/parakeet-ctc-1.1b-asr"
	}
	if c.ASR.StreamingClient == "" {
		c.ASR.StreamingClient = "riva-transcribe-file"
	}
	if c.ASR.OfflineClient == "" {
		c.ASR.OfflineClient = "riva-transcribe-file-offline"
	}
	if c.ASR.TimeoutFloor == 0 {
		c.ASR.TimeoutFloor = Duration(10 * time.Minute)
	}
	if c.ASR.TimeoutCeiling == 0 {
		c.ASR.TimeoutCeiling = Duration(2 * time.Hour)
	}
	if c.ASR.TimeoutFloor > c.ASR.TimeoutCeiling {
		return fmt.Errorf("asr.timeout_floor exceeds asr.timeout_ceiling")
	}
	if c.ASR.TimeoutFactor == 0 {
		c.ASR.TimeoutFactor = 2.0
	}
	if c.ASR.DiarizationMultiplier == 0 {
		c.ASR.DiarizationMultiplier = 4
	}
	if c.ASR.RetryDelay == 0 {
		c.ASR.RetryDelay = Duration(5 * time.Second)
	}
	if c.ASR.OfflineMaxFileSizeMB == 0 {
		c.ASR.OfflineMaxFileSizeMB = 67
	}

	if c.LLM.Provider == "" {
		c.LLM.Provider = "openrouter"
	}
	if c.LLM.Provider != "openrouter" && c.LLM.Provider != "gemini" {
		return fmt.Errorf("llm.provider must be \"openrouter\" or \"gemini\", got %q", c.LLM.Provider)
	}
	if c.LLM.SummaryModel == "" {
		c.LLM.SummaryModel = "meta-llama/llama-3.2-3b-instruct:free"
	}
	if c.LLM.KeyPointsModel == "" {
		c.LLM.KeyPointsModel = "google/gemini-2.0-flash-exp:free"
	}
	if c.LLM.ExamModel == "" {
		c.LLM.ExamModel = "meta-llama/llama-3.1-8b-instruct:free"
	}
	if c.LLM.GeminiModel == "" {
		c.LLM.GeminiModel = "gemini-2.5-flash"
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 4096
	}
	if len(c.LLM.Backoff) == 0 {
		c.LLM.Backoff = []Duration{
			Duration(5 * time.Second),
			Duration(10 * time.Second),
			Duration(20 * time.Second),
		}
	}
	for i := 1; i < len(c.LLM.Backoff); i++ {
		if c.LLM.Backoff[i] <= c.LLM.Backoff[i-1] {
			return fmt.Errorf("llm.backoff delays must be strictly increasing")
		}
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = Duration(2 * time.Minute)
	}

	if len(c.Audio.SupportedFormats) == 0 {
		c.Audio.SupportedFormats = []string{"mp3", "wav", "m4a", "flac", "ogg"}
	}
	if c.Audio.SampleRate == 0 {
		c.Audio.SampleRate = 16000
	}
	if c.Audio.Channels == 0 {
		c.Audio.Channels = 1
	}
	if c.Audio.Codec == "" {
		c.Audio.Codec = "pcm_s16le"
	}
	if c.Audio.MaxFileSizeMB == 0 {
		c.Audio.MaxFileSizeMB = 500
	}

	if len(c.Speakers.Labels) == 0 {
		c.Speakers.Labels = []string{"Speaker 1", "Speaker 2"}
	}

	if len(c.Export.Formats) == 0 {
		c.Export.Formats = []string{"txt", "md", "json"}
	}

	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
