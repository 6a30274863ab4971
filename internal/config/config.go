package config

import "os"

// Config carries the server settings read from the environment.
//   - Addr: HTTP listen address.
//   - DatabaseURL: Postgres DSN, required by cmd/app.
//   - S3*: optional object storage settings; when S3Bucket is empty the
//     upload handler falls back to local disk under ./uploads.
type Config struct {
	Addr        string
	DatabaseURL string

	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3PublicURL    string
	S3AccessKey    string
	S3SecretKey    string
}

func Load() Config {
	addr := os.Getenv("USER_DASH_ADDR")
	if addr == "" {
		addr = ":3001"
	}

	region := os.Getenv("S3_REGION")
	if region == "" {
		region = "us-east-1"
	}

	return Config{
		Addr:           addr,
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		S3Bucket:       os.Getenv("S3_BUCKET"),
		S3Region:       region,
		S3BaseEndpoint: os.Getenv("S3_BASE_ENDPOINT"),
		S3PublicURL:    os.Getenv("S3_PUBLIC_URL"),
		S3AccessKey:    os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:    os.Getenv("S3_SECRET_KEY"),
	}
}
