package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]any
		wantErr bool
		check   func(t *testing.T, c *Config)
	}{
		{
			name: "sqlite driver",
			values: map[string]any{
				"SERVER_PORT":          "9090",
				"DATABASE_DRIVER":      "SQLite",
				"SQLITE_PATH":          "test.db",
				"CORS_ALLOWED_ORIGINS": "http://a.test, ,http://b.test",
			},
			check: func(t *testing.T, c *Config) {
				if c.Database.Driver != "sqlite" {
					t.Errorf("Driver = %q, want sqlite", c.Database.Driver)
				}
				if len(c.AllowedOrigins) != 2 || c.AllowedOrigins[1] != "http://b.test" {
					t.Errorf("AllowedOrigins = %v", c.AllowedOrigins)
				}
			},
		},
		{
			name: "postgres requires host",
			values: map[string]any{
				"SERVER_PORT":     "8080",
				"DATABASE_DRIVER": "postgres",
			},
			wantErr: true,
		},
		{
			name: "unknown driver",
			values: map[string]any{
				"SERVER_PORT":     "8080",
				"DATABASE_DRIVER": "mysql",
			},
			wantErr: true,
		},
		{
			name: "sampler ratio out of range",
			values: map[string]any{
				"SERVER_PORT":        "8080",
				"DATABASE_DRIVER":    "sqlite",
				"SQLITE_PATH":        "x.db",
				"OTEL_SAMPLER_RATIO": 2.5,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			for k, val := range tt.values {
				v.Set(k, val)
			}
			c, err := load(v)
			if (err != nil) != tt.wantErr {
				t.Fatalf("load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, c)
			}
		})
	}
}

func TestIsProduction(t *testing.T) {
	for env, want := range map[string]bool{"production": true, "Prod": true, "development": false, "": false} {
		if got := (&Config{AppEnv: env}).IsProduction(); got != want {
			t.Errorf("IsProduction(%q) = %v, want %v", env, got, want)
		}
	}
}
