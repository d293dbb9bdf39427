package config

import (
	"context"
	"database/sql"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string

	RedisHost string
	RedisPort string
	CartTTL   time.Duration

	KafkaBroker      string
	CartEventsTopic  string
	OrderEventsTopic string
	ConsumerGroup    string

	TaxRate   float64
	QRBaseURL string
	LogLevel  string
}

func Load() Config {
	return Config{
		Port: getEnv("PORT", "8084"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "overcooked"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),

		RedisHost: getEnv("REDIS_HOST", "localhost"),
		RedisPort: getEnv("REDIS_PORT", "6379"),
		CartTTL:   parseDuration(getEnv("CART_TTL", "72h"), 72*time.Hour),

		KafkaBroker:      getEnv("KAFKA_BROKER", ""),
		CartEventsTopic:  getEnv("CART_EVENTS_TOPIC", "cart_events"),
		OrderEventsTopic: getEnv("ORDER_EVENTS_TOPIC", "order_events"),
		ConsumerGroup:    getEnv("KAFKA_GROUP_ID", "cart-svc-consumer"),

		TaxRate:   parseFloat(getEnv("TAX_RATE", "0"), 0),
		QRBaseURL: getEnv("QR_BASE_URL", "http://localhost:8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}
}

func (c Config) PostgresDSN() string {
	return "host=" + c.DBHost + " port=" + c.DBPort + " user=" + c.DBUser +
		" password=" + c.DBPassword + " dbname=" + c.DBName + " sslmode=disable"
}

func (c Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func NewLogger(level string) (*zap.Logger, error) {
	if strings.EqualFold(level, "debug") {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func MustInitPostgres(cfg Config, logger *zap.Logger) *sql.DB {
	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err = db.Ping(); err != nil {
		logger.Fatal("failed to ping database", zap.Error(err))
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

// InitRedis connects to Redis. The cart keeps working in memory without it,
// so a failed ping is returned instead of being fatal.
func InitRedis(cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return client, err
	}

	return client, nil
}

func NewKafkaReader(cfg Config, topic string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   topic,
		GroupID: cfg.ConsumerGroup,
	})
}

func NewKafkaWriter(cfg Config, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBroker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); strings.TrimSpace(value) != "" {
		return value
	}
	return defaultValue
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func parseFloat(v string, def float64) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
