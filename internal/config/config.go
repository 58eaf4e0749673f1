package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/revenue-planning-api/pkg/utils"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Forecast          Forecast          `mapstructure:",squash"`
	Marketing         Marketing         `mapstructure:",squash"`
	MonthlyReportSync MonthlyReportSync `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Database só é usado quando os relatórios mensais são persistidos no Postgres
type Database struct {
	Enabled  bool   `mapstructure:"database_enabled"`
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel     string `mapstructure:"log_level"`
	SeedDemoData bool   `mapstructure:"seed_demo_data"`
}

type Forecast struct {
	DashboardMonths int    `mapstructure:"forecast_dashboard_months"`
	AnnualMonths    int    `mapstructure:"forecast_annual_months"`
	AnnualStart     string `mapstructure:"forecast_annual_start"` // YYYY-MM
}

type Marketing struct {
	AverageTicket float64 `mapstructure:"average_ticket"`
}

type MonthlyReportSync struct {
	CronSchedule string `mapstructure:"monthly_report_sync_cron"`
	Enabled      bool   `mapstructure:"monthly_report_sync_enabled"`
}

// AnnualStartMonth converte FORECAST_ANNUAL_START, usando janeiro de 2025 quando inválido
func (f Forecast) AnnualStartMonth() time.Time {
	start, err := utils.ParseMonth(f.AnnualStart)
	if err != nil {
		logrus.Warnf("FORECAST_ANNUAL_START inválido (%s), usando 2025-01", f.AnnualStart)
		return time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local)
	}
	return start
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "") // Lista separada por vírgula, "*" libera todas

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/planning")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SEED_DEMO_DATA", false)

	// Horizontes da previsão de receita
	viper.SetDefault("FORECAST_DASHBOARD_MONTHS", 12)
	viper.SetDefault("FORECAST_ANNUAL_MONTHS", 24)
	viper.SetDefault("FORECAST_ANNUAL_START", "2025-01")

	viper.SetDefault("AVERAGE_TICKET", 15000.0) // Ticket médio por cliente convertido

	// Defaults para o arquivamento mensal do painel
	viper.SetDefault("MONTHLY_REPORT_SYNC_CRON", "0 5 1 * *") // No primeiro dia de cada mês às 5h da manhã
	viper.SetDefault("MONTHLY_REPORT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
