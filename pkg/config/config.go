package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	AI       AIConfig
	Chat     ChatConfig
	Match    MatchConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// AIConfig configures the GigaChat fallback client used when the knowledge
// base has no confident answer.
type AIConfig struct {
	APIKey             string
	Scope              string
	Model              string
	InsecureSkipVerify bool
}

// ChatConfig carries the static pieces of the chat surface: the support
// phone number and the apology shown when neither the knowledge base nor
// the AI produced an answer. The message may contain a single %s that is
// replaced with the phone number.
type ChatConfig struct {
	SupportPhone    string
	FallbackMessage string
}

// MatchConfig tunes the query matcher. Mode selects between the unified
// scored algorithm and the legacy tiered one; the weights only apply to the
// unified mode.
type MatchConfig struct {
	Mode             string
	MinScore         int // minimum confidence before falling back to AI
	KeywordWeight    int // score per matched keyword
	TitleBonus       int // bonus when the title appears in the query
	DateBonus        int // bonus for date-template items when a date was found
	MinPatternLength int // shortest intent pattern allowed to trigger, in runes
}

const (
	MatchModeUnified = "unified"
	MatchModeTiered  = "tiered"
)

const defaultFallbackMessage = "죄송합니다. 해당 질문에 대한 답변을 찾지 못했습니다. 다른 방식으로 질문해 주시거나, 바로빌 고객센터(%s)로 문의해 주세요. 📞"

func Load() (*Config, error) {
	// Try to load .env from the current directory or the project root;
	// plain environment variables work too (Docker/K8s).
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	insecureSkipVerify := getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "true") == "true"
	minScore, _ := strconv.Atoi(getEnv("MATCH_MIN_SCORE", "15"))
	keywordWeight, _ := strconv.Atoi(getEnv("MATCH_KEYWORD_WEIGHT", "10"))
	titleBonus, _ := strconv.Atoi(getEnv("MATCH_TITLE_BONUS", "20"))
	dateBonus, _ := strconv.Atoi(getEnv("MATCH_DATE_BONUS", "5"))
	minPatternLength, _ := strconv.Atoi(getEnv("MATCH_MIN_PATTERN_LENGTH", "2"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "billy_chat"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		AI: AIConfig{
			APIKey:             getEnv("GIGACHAT_API_KEY", ""),
			Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			Model:              getEnv("GIGACHAT_MODEL", "GigaChat"),
			InsecureSkipVerify: insecureSkipVerify,
		},
		Chat: ChatConfig{
			SupportPhone:    getEnv("CHAT_SUPPORT_PHONE", "1600-6399"),
			FallbackMessage: getEnv("CHAT_FALLBACK_MESSAGE", defaultFallbackMessage),
		},
		Match: MatchConfig{
			Mode:             getEnv("MATCH_MODE", MatchModeUnified),
			MinScore:         minScore,
			KeywordWeight:    keywordWeight,
			TitleBonus:       titleBonus,
			DateBonus:        dateBonus,
			MinPatternLength: minPatternLength,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
