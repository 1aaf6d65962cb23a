package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/bookstore/fulfillment/pkg/databases/postgres"
)

type Config struct {
	Env         string            `yaml:"env" env-default:"local"`
	OrderHTTP   HTTPConfig        `yaml:"order_http"`
	BookHTTP    HTTPConfig        `yaml:"book_http"`
	Postgres    PostgresConfig    `yaml:"postgres"`
	Kafka       KafkaConfig       `yaml:"kafka"`
	Reservation ReservationConfig `yaml:"reservation"`
}

type HTTPConfig struct {
	Port int `yaml:"port"`
}

type PostgresConfig struct {
	Port    string `yaml:"port"`
	Host    string `yaml:"host"`
	DbName  string `yaml:"db_name"`
	User    string `yaml:"user"`
	Pwd     string `yaml:"password"`
	SslMode string `yaml:"sslmode"`
}

func (p *PostgresConfig) ConnConfig() postgres.ConnConfig {
	return postgres.ConnConfig{
		Host:     p.Host,
		Port:     p.Port,
		User:     p.User,
		Password: p.Pwd,
		DBName:   p.DbName,
		SSLMode:  p.SslMode,
	}
}

type KafkaConfig struct {
	BrokerList       []string `yaml:"broker_list"`
	BookOrderedTopic string   `yaml:"book_ordered_topic"`
	ConsumerGroup    string   `yaml:"consumer_group" env-default:"book-service"`
}

type ReservationConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout" env-default:"5s"`
}

func InitConfig() Config {
	configPath := getConfigPath()

	if configPath == "" {
		panic("config path is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("failed to read config: " + err.Error())
	}

	return cfg
}

func getConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	return path
}
