package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// 旅程の保存先
const (
	ProposalStoreFirestore = "firestore"
	ProposalStoreMemory    = "memory"
	ProposalStoreNone      = "none"
)

// スポットデータの取得元
const (
	PlacesSourceFirestore = "firestore"
	PlacesSourcePostgres  = "postgres"
	PlacesSourceSupabase  = "supabase"
)

// 旅程生成に使うLLMプロバイダ
const (
	AIProviderGroq   = "groq"
	AIProviderGemini = "gemini"
)

type Config struct {
	AppEnv   string
	Port     string
	LogLevel string

	PlacesSource             string
	FirestoreProjectID       string
	FirestoreCredentialsFile string
	DatabaseURL              string
	SupabaseURL              string
	SupabaseAnonKey          string
	SupabaseDBPassword       string

	RedisAddr      string
	RedisPass      string
	RedisDB        int
	PlacesCacheTTL time.Duration

	AIProvider    string
	GroqAPIKey    string
	GroqModel     string
	GroqBaseURL   string
	GeminiAPIKey  string
	GeminiModel   string
	OracleTimeout time.Duration
	OracleRPS     int

	MaxTripDays   int
	ProposalTTL   time.Duration
	ProposalStore string
}

// Load は環境変数から設定を読み込む（.envの読み込みは呼び出し側で行う）
func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Int("default", def).Msg("⚠️ 数値として解釈できないためデフォルト値を使用します")
		}
		return def
	}
	c := Config{
		AppEnv:   env("APP_ENV", "prod"),
		Port:     env("PORT", "8080"),
		LogLevel: env("LOG_LEVEL", "info"),

		PlacesSource:             strings.ToLower(env("PLACES_SOURCE", PlacesSourceFirestore)),
		FirestoreProjectID:       env("FIRESTORE_PROJECT_ID", ""),
		FirestoreCredentialsFile: env("GOOGLE_APPLICATION_CREDENTIALS", ""),
		DatabaseURL:              env("DATABASE_URL", ""),
		SupabaseURL:              env("SUPABASE_URL", ""),
		SupabaseAnonKey:          env("SUPABASE_ANON_KEY", ""),
		SupabaseDBPassword:       env("SUPABASE_DB_PASSWORD", ""),

		RedisAddr:      env("REDIS_ADDR", ""),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		PlacesCacheTTL: time.Duration(atoi("PLACES_CACHE_TTL_SECONDS", 600)) * time.Second,

		AIProvider:    strings.ToLower(env("AI_PROVIDER", AIProviderGroq)),
		GroqAPIKey:    env("GROQ_API_KEY", ""),
		GroqModel:     env("GROQ_MODEL", "llama-3.3-70b-versatile"),
		GroqBaseURL:   env("GROQ_BASE_URL", ""),
		GeminiAPIKey:  env("GEMINI_API_KEY", ""),
		GeminiModel:   env("GEMINI_MODEL", "gemini-1.5-flash"),
		OracleTimeout: time.Duration(atoi("ORACLE_TIMEOUT_SECONDS", 30)) * time.Second,
		OracleRPS:     atoi("ORACLE_RPS", 2),

		MaxTripDays:   atoi("MAX_TRIP_DAYS", 14),
		ProposalTTL:   time.Duration(atoi("PROPOSAL_TTL_HOURS", 2)) * time.Hour,
		ProposalStore: strings.ToLower(env("PROPOSAL_STORE", ProposalStoreFirestore)),
	}

	switch {
	case c.AIProvider == AIProviderGroq && c.GroqAPIKey == "":
		log.Warn().Msg("GROQ_API_KEY is empty, every request will use the fallback planner")
	case c.AIProvider == AIProviderGemini && c.GeminiAPIKey == "":
		log.Warn().Msg("GEMINI_API_KEY is empty, every request will use the fallback planner")
	}
	return c
}

// NeedsFirestore はFirestoreクライアントが必要な構成かどうか
func (c Config) NeedsFirestore() bool {
	return c.PlacesSource == PlacesSourceFirestore || c.ProposalStore == ProposalStoreFirestore
}

// IsDev は開発環境かどうか
func (c Config) IsDev() bool {
	return c.AppEnv == "dev" || c.AppEnv == "development" || c.AppEnv == "local"
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
