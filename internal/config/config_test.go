package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		want    Config
		wantErr bool
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "none.json") },
			want: *Default(),
		},
		{
			name: "empty path",
			path: func(t *testing.T) string { return "" },
			want: *Default(),
		},
		{
			name: "partial file keeps defaults",
			path: func(t *testing.T) string { return writeConfig(t, `{"log_level":"debug"}`) },
			want: Config{LogLevel: "debug", LogFormat: FormatConsole, ReadWorkers: 4},
		},
		{
			name: "full file",
			path: func(t *testing.T) string {
				return writeConfig(t, `{"log_level":"warn","log_format":"json","read_workers":8}`)
			},
			want: Config{LogLevel: "warn", LogFormat: FormatJSON, ReadWorkers: 8},
		},
		{
			name:    "invalid json",
			path:    func(t *testing.T) string { return writeConfig(t, `{"log_level":`) },
			wantErr: true,
		},
		{
			name:    "unknown level",
			path:    func(t *testing.T) string { return writeConfig(t, `{"log_level":"loud"}`) },
			wantErr: true,
		},
		{
			name:    "unknown format",
			path:    func(t *testing.T) string { return writeConfig(t, `{"log_format":"xml"}`) },
			wantErr: true,
		},
		{
			name:    "no workers",
			path:    func(t *testing.T) string { return writeConfig(t, `{"read_workers":0}`) },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadConfig(tt.path(t))
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if *got != tt.want {
				t.Errorf("LoadConfig() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestConfig_NewLogger(t *testing.T) {
	for _, format := range []string{FormatConsole, FormatJSON} {
		t.Run(format, func(t *testing.T) {
			cfg := &Config{LogLevel: "warn", LogFormat: format, ReadWorkers: 1}
			logger, err := cfg.NewLogger()
			if err != nil {
				t.Fatalf("NewLogger() error = %v", err)
			}
			if logger.Core().Enabled(zapcore.InfoLevel) {
				t.Error("info enabled at warn level")
			}
			if !logger.Core().Enabled(zapcore.ErrorLevel) {
				t.Error("error disabled at warn level")
			}
		})
	}

	if _, err := (&Config{LogLevel: "nope"}).NewLogger(); err == nil {
		t.Error("expected error for unknown level")
	}
}
