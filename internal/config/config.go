package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageDriverMinio = "minio"
	StorageDriverS3    = "s3"
)

type Settings struct {
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ServerPort      int

	StorageDriver    string
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageUseSSL    bool
	StorageRegion    string
	StoragePublicURL string
	PhotosBucket     string
	VideosBucket     string

	RedisAddr     string
	RedisPassword string

	JWTPublicKey    string
	UploadRateLimit int
	ThumbnailWidth  int
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	viper.SetDefault("STORAGE_DRIVER", StorageDriverMinio)
	viper.SetDefault("STORAGE_USE_SSL", false)
	viper.SetDefault("STORAGE_REGION", "us-east-1")
	viper.SetDefault("BUCKET_PHOTOS", "photos")
	viper.SetDefault("BUCKET_VIDEOS", "videos")
	viper.SetDefault("UPLOAD_RATE_LIMIT", 20)
	viper.SetDefault("THUMBNAIL_WIDTH", 480)

	for _, key := range []string{
		"MARIADB_DSN",
		"MARIADB_MAX_OPEN_CONN",
		"MARIADB_MAX_IDLE_CONNS",
		"MARIADB_CONN_MAX_LIFETIME",
		"SERVER_PORT",
	} {
		if !viper.IsSet(key) {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	driver := viper.GetString("STORAGE_DRIVER")
	switch driver {
	case StorageDriverMinio:
		if viper.GetString("STORAGE_ENDPOINT") == "" {
			return nil, fmt.Errorf("STORAGE_ENDPOINT is required")
		}
	case StorageDriverS3:
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER must be one of %s, %s", StorageDriverMinio, StorageDriverS3)
	}

	if viper.GetInt("THUMBNAIL_WIDTH") <= 0 {
		return nil, fmt.Errorf("THUMBNAIL_WIDTH must be positive")
	}

	return &Settings{
		MariaDBDSN:      viper.GetString("MARIADB_DSN"),
		MaxOpenConns:    viper.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    viper.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(viper.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:      viper.GetInt("SERVER_PORT"),

		StorageDriver:    driver,
		StorageEndpoint:  viper.GetString("STORAGE_ENDPOINT"),
		StorageAccessKey: viper.GetString("STORAGE_ACCESS_KEY"),
		StorageSecretKey: viper.GetString("STORAGE_SECRET_KEY"),
		StorageUseSSL:    viper.GetBool("STORAGE_USE_SSL"),
		StorageRegion:    viper.GetString("STORAGE_REGION"),
		StoragePublicURL: viper.GetString("STORAGE_PUBLIC_URL"),
		PhotosBucket:     viper.GetString("BUCKET_PHOTOS"),
		VideosBucket:     viper.GetString("BUCKET_VIDEOS"),

		RedisAddr:     viper.GetString("REDIS_ADDR"),
		RedisPassword: viper.GetString("REDIS_PASSWORD"),

		JWTPublicKey:    viper.GetString("JWT_PUBLIC_KEY"),
		UploadRateLimit: viper.GetInt("UPLOAD_RATE_LIMIT"),
		ThumbnailWidth:  viper.GetInt("THUMBNAIL_WIDTH"),
	}, nil
}
