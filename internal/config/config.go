package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

const (
	DefaultPath = "config.toml"

	EnvDBPassword = "ROOMBOOKING_DB_PASSWORD"
	EnvAdminKey   = "ROOMBOOKING_ADMIN_KEY"
	EnvRemoteURL  = "ROOMBOOKING_REMOTE_URL"

	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ErrInvalidConfig возвращается, если конфигурация не прошла проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация обоих бинарников (сервер реестра и актор)
type Config struct {
	Server     ServerConfig      `toml:"server"`
	Database   DatabaseConfig    `toml:"database"`
	Logs       LogsConfig        `toml:"logs"`
	Metrics    MetricsConfig     `toml:"metrics"`
	Actor      ActorConfig       `toml:"actor"`
	Remote     RemoteConfig      `toml:"remote"`
	LocalCache LocalCacheConfig  `toml:"local_cache"`
	Snapshot   SnapshotConfig    `toml:"snapshot"`
	Schedule   ScheduleConfig    `toml:"schedule"`
	Resources  []domain.Resource `toml:"resources"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ActorConfig роль экземпляра: "user" подает заявки, "admin" еще и решает их
type ActorConfig struct {
	Role     string `toml:"role"`
	AdminKey string `toml:"admin_key"`
}

func (a ActorConfig) IsAdmin() bool {
	return a.Role == RoleAdmin
}

type RemoteConfig struct {
	URL          string `toml:"url"`
	Timeout      int    `toml:"timeout"`       // секунды на один вызов
	PollInterval int    `toml:"poll_interval"` // секунды между опросами
}

type LocalCacheConfig struct {
	Path string `toml:"path"`
}

type SnapshotConfig struct {
	Dir string `toml:"dir"`
}

type ScheduleConfig struct {
	DayStart    string `toml:"day_start"`
	DayEnd      string `toml:"day_end"`
	SlotMinutes int    `toml:"slot_minutes"`
}

// ParseFlags разбирает аргументы командной строки и возвращает путь к конфигу
func ParseFlags(name string, args []string) (string, error) {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	path := flags.StringP("config", "c", DefaultPath, "path to config.toml")
	if err := flags.Parse(args); err != nil {
		return "", err
	}
	return *path, nil
}

// Load читает .env (если есть), TOML-файл, применяет значения по умолчанию и переменные окружения
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "room-booking"
	}

	if c.Actor.Role == "" {
		c.Actor.Role = RoleUser
	}

	if c.Remote.Timeout == 0 {
		c.Remote.Timeout = 5
	}
	if c.Remote.PollInterval == 0 {
		c.Remote.PollInterval = 30
	}

	if c.LocalCache.Path == "" {
		c.LocalCache.Path = "data/local-cache.db"
	}
	if c.Snapshot.Dir == "" {
		c.Snapshot.Dir = "data"
	}

	if c.Schedule.DayStart == "" {
		c.Schedule.DayStart = domain.DefaultDayStart
	}
	if c.Schedule.DayEnd == "" {
		c.Schedule.DayEnd = domain.DefaultDayEnd
	}
	if c.Schedule.SlotMinutes == 0 {
		c.Schedule.SlotMinutes = domain.DefaultSlotMinutes
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDBPassword); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv(EnvAdminKey); v != "" {
		c.Actor.AdminKey = v
	}
	if v := os.Getenv(EnvRemoteURL); v != "" {
		c.Remote.URL = v
	}
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, fmt.Sprintf("server.http_port out of range: %d", c.Server.HTTPPort))
	}
	if c.Actor.Role != RoleUser && c.Actor.Role != RoleAdmin {
		problems = append(problems, fmt.Sprintf("actor.role must be %q or %q, got %q", RoleUser, RoleAdmin, c.Actor.Role))
	}
	if c.Actor.IsAdmin() && c.Actor.AdminKey == "" {
		problems = append(problems, "actor.admin_key is required for the admin role")
	}
	if _, err := c.DayWindow(); err != nil {
		problems = append(problems, err.Error())
	}
	for i, r := range c.Resources {
		if r.ID == "" || r.Capacity <= 0 {
			problems = append(problems, fmt.Sprintf("resources[%d]: id and positive capacity are required", i))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// DayWindow рабочее окно дня из секции schedule
func (c *Config) DayWindow() (domain.DayWindow, error) {
	start, err := types.NewTimeStringFromString(c.Schedule.DayStart)
	if err != nil {
		return domain.DayWindow{}, fmt.Errorf("schedule.day_start: %w", err)
	}
	end, err := types.NewTimeStringFromString(c.Schedule.DayEnd)
	if err != nil {
		return domain.DayWindow{}, fmt.Errorf("schedule.day_end: %w", err)
	}

	window := domain.DayWindow{Start: start, End: end, SlotMinutes: c.Schedule.SlotMinutes}
	if err := window.Validate(); err != nil {
		return domain.DayWindow{}, fmt.Errorf("schedule: %w", err)
	}
	return window, nil
}

// RemoteTimeout таймаут одного вызова удаленного реестра
func (c *Config) RemoteTimeout() time.Duration {
	return time.Duration(c.Remote.Timeout) * time.Second
}

// PollInterval период опроса удаленного реестра
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Remote.PollInterval) * time.Second
}
