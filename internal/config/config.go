package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	JWT      JWTConfig
	Policy   PolicyConfig
	Tax      TaxConfig
	NI       NIConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// PolicyConfig holds the workforce policy knobs consumed by the attendance
// state machine, the no-show scanner, the pay calculator and the compliance
// checker. All of them are overridable via environment; the defaults match
// the site's standing policy.
type PolicyConfig struct {
	GraceMinutes            int
	NoShowThresholdMinutes  int
	NoShowScanInterval      time.Duration
	WeeklyOvertimeThreshold decimal.Decimal // hours
	OvertimeMultiplier      decimal.Decimal
	HolidayAccrualRate      decimal.Decimal // statutory 12.07%
	MinRestHours            int
	DefaultPaidBreakHours   decimal.Decimal
}

// TaxConfig holds the income tax band constants. Band limits are weekly
// equivalents derived from the annual thresholds at load time.
type TaxConfig struct {
	StandardCode          string          // used when a staff tax code is absent or unrecognized
	WeeklyBasicRateLimit  decimal.Decimal // taxable income up to this taxed at BasicRate
	WeeklyHigherRateLimit decimal.Decimal // then up to this at HigherRate, remainder at AdditionalRate
	BasicRate             decimal.Decimal
	HigherRate            decimal.Decimal
	AdditionalRate        decimal.Decimal
}

// NIRates is one row of the contribution-category table.
type NIRates struct {
	MainRate  decimal.Decimal // between primary threshold and upper earnings limit
	UpperRate decimal.Decimal // above the upper earnings limit
}

// NIConfig holds the national-insurance-style deduction constants.
type NIConfig struct {
	PrimaryThresholdWeekly   decimal.Decimal
	UpperEarningsLimitWeekly decimal.Decimal
	StandardCategory         string
	Categories               map[string]NIRates
}

func Load() (*Config, error) {
	// .env is optional outside local development.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	minConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "timeclock"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(maxConns),
		MinConns: int32(minConns),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	policy, err := loadPolicy()
	if err != nil {
		return nil, err
	}
	config.Policy = policy

	tax, err := loadTax()
	if err != nil {
		return nil, err
	}
	config.Tax = tax

	ni, err := loadNI()
	if err != nil {
		return nil, err
	}
	config.NI = ni

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadPolicy() (PolicyConfig, error) {
	grace, err := getEnvInt("GRACE_PERIOD_MINUTES", 5)
	if err != nil {
		return PolicyConfig{}, err
	}
	noShowThreshold, err := getEnvInt("NO_SHOW_THRESHOLD_MINUTES", 30)
	if err != nil {
		return PolicyConfig{}, err
	}
	scanInterval, err := time.ParseDuration(getEnv("NO_SHOW_SCAN_INTERVAL", "5m"))
	if err != nil {
		return PolicyConfig{}, fmt.Errorf("invalid NO_SHOW_SCAN_INTERVAL: %w", err)
	}
	overtimeThreshold, err := getEnvDecimal("WEEKLY_OVERTIME_THRESHOLD_HOURS", "40")
	if err != nil {
		return PolicyConfig{}, err
	}
	overtimeMultiplier, err := getEnvDecimal("OVERTIME_MULTIPLIER", "1.5")
	if err != nil {
		return PolicyConfig{}, err
	}
	accrualRate, err := getEnvDecimal("HOLIDAY_ACCRUAL_RATE", "0.1207")
	if err != nil {
		return PolicyConfig{}, err
	}
	minRest, err := getEnvInt("MIN_REST_HOURS", 11)
	if err != nil {
		return PolicyConfig{}, err
	}
	paidBreak, err := getEnvDecimal("DEFAULT_PAID_BREAK_HOURS", "0.5")
	if err != nil {
		return PolicyConfig{}, err
	}

	return PolicyConfig{
		GraceMinutes:            grace,
		NoShowThresholdMinutes:  noShowThreshold,
		NoShowScanInterval:      scanInterval,
		WeeklyOvertimeThreshold: overtimeThreshold,
		OvertimeMultiplier:      overtimeMultiplier,
		HolidayAccrualRate:      accrualRate,
		MinRestHours:            minRest,
		DefaultPaidBreakHours:   paidBreak,
	}, nil
}

func loadTax() (TaxConfig, error) {
	basicBandAnnual, err := getEnvDecimal("TAX_BASIC_RATE_BAND_ANNUAL", "37700")
	if err != nil {
		return TaxConfig{}, err
	}
	higherLimitAnnual, err := getEnvDecimal("TAX_HIGHER_RATE_LIMIT_ANNUAL", "125140")
	if err != nil {
		return TaxConfig{}, err
	}
	basicRate, err := getEnvDecimal("TAX_BASIC_RATE", "0.20")
	if err != nil {
		return TaxConfig{}, err
	}
	higherRate, err := getEnvDecimal("TAX_HIGHER_RATE", "0.40")
	if err != nil {
		return TaxConfig{}, err
	}
	additionalRate, err := getEnvDecimal("TAX_ADDITIONAL_RATE", "0.45")
	if err != nil {
		return TaxConfig{}, err
	}

	weeks := decimal.NewFromInt(52)
	return TaxConfig{
		StandardCode:          getEnv("TAX_STANDARD_CODE", "1257L"),
		WeeklyBasicRateLimit:  basicBandAnnual.Div(weeks),
		WeeklyHigherRateLimit: higherLimitAnnual.Div(weeks),
		BasicRate:             basicRate,
		HigherRate:            higherRate,
		AdditionalRate:        additionalRate,
	}, nil
}

func loadNI() (NIConfig, error) {
	primary, err := getEnvDecimal("NI_PRIMARY_THRESHOLD_WEEKLY", "242")
	if err != nil {
		return NIConfig{}, err
	}
	upper, err := getEnvDecimal("NI_UPPER_EARNINGS_LIMIT_WEEKLY", "967")
	if err != nil {
		return NIConfig{}, err
	}

	return NIConfig{
		PrimaryThresholdWeekly:   primary,
		UpperEarningsLimitWeekly: upper,
		StandardCategory:         "A",
		Categories:               DefaultNICategories(),
	}, nil
}

// DefaultNICategories returns the contribution-category rate table. Married
// women's reduced rate (B), over-pension-age (C), apprentices and under-21s
// (H, M), and deferred categories (J, Z) all modulate the two rates.
func DefaultNICategories() map[string]NIRates {
	main := decimal.NewFromFloat(0.12)
	upper := decimal.NewFromFloat(0.02)
	reduced := decimal.NewFromFloat(0.0585)
	return map[string]NIRates{
		"A": {MainRate: main, UpperRate: upper},
		"B": {MainRate: reduced, UpperRate: upper},
		"C": {MainRate: decimal.Zero, UpperRate: decimal.Zero},
		"H": {MainRate: main, UpperRate: upper},
		"J": {MainRate: upper, UpperRate: upper},
		"M": {MainRate: main, UpperRate: upper},
		"Z": {MainRate: upper, UpperRate: upper},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Policy.GraceMinutes < 0 {
		return fmt.Errorf("GRACE_PERIOD_MINUTES must not be negative")
	}
	if c.Policy.NoShowThresholdMinutes <= 0 {
		return fmt.Errorf("NO_SHOW_THRESHOLD_MINUTES must be positive")
	}
	if c.Policy.NoShowScanInterval <= 0 {
		return fmt.Errorf("NO_SHOW_SCAN_INTERVAL must be positive")
	}
	if c.Policy.MinRestHours <= 0 {
		return fmt.Errorf("MIN_REST_HOURS must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getEnvDecimal(key, fallback string) (decimal.Decimal, error) {
	raw := getEnv(key, fallback)
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
