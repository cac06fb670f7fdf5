package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	arborerrors "github.com/go-drift/arbor/pkg/errors"
)

func TestLoadOptionalMissingFile(t *testing.T) {
	s, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if s != Defaults() {
		t.Errorf("settings = %+v, want defaults %+v", s, Defaults())
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    Settings
		wantErr string
	}{
		{
			name: "full",
			yaml: "refresh_interval: 32ms\nlog_level: DEBUG\nverbose_errors: true\n",
			want: Settings{RefreshInterval: 32 * time.Millisecond, LogLevel: "debug", VerboseErrors: true},
		},
		{
			name: "empty resolves defaults",
			yaml: "",
			want: Defaults(),
		},
		{
			name: "zero interval resolves default",
			yaml: "refresh_interval: 0s\n",
			want: Defaults(),
		},
		{
			name:    "negative interval",
			yaml:    "refresh_interval: -5ms\n",
			wantErr: "must not be negative",
		},
		{
			name:    "bad level",
			yaml:    "log_level: loud\n",
			wantErr: "invalid log_level",
		},
		{
			name:    "bad yaml",
			yaml:    "refresh_interval: [",
			wantErr: "failed to parse",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.yaml))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Parse error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSetAndRefreshInterval(t *testing.T) {
	prev := Set(Settings{RefreshInterval: 40 * time.Millisecond})
	defer Set(prev)

	if got := RefreshInterval(); got != 40*time.Millisecond {
		t.Errorf("RefreshInterval() = %v, want 40ms", got)
	}
	if got := Current().LogLevel; got != "info" {
		t.Errorf("LogLevel = %q, want info", got)
	}
}

func TestMarshalRoundTripsInterval(t *testing.T) {
	data, err := Marshal(Settings{RefreshInterval: 20 * time.Millisecond, LogLevel: "warn"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), "refresh_interval: 20ms") {
		t.Errorf("marshalled settings = %q", data)
	}
}

func TestWatchReloadsSettings(t *testing.T) {
	prev := Current()
	defer Set(prev)

	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("refresh_interval: 16ms\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan Settings, 4)
	stop, err := Watch(path, func(s Settings) { changed <- s })
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer stop()

	if err := os.WriteFile(path, []byte("refresh_interval: 50ms\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case s := <-changed:
			if s.RefreshInterval == 50*time.Millisecond {
				if RefreshInterval() != 50*time.Millisecond {
					t.Errorf("RefreshInterval() = %v after reload", RefreshInterval())
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for settings reload")
		}
	}
}

type panicRecorder struct{ panics []*arborerrors.PanicError }

func (r *panicRecorder) HandleError(*arborerrors.Error)        {}
func (r *panicRecorder) HandlePanic(p *arborerrors.PanicError) { r.panics = append(r.panics, p) }

func TestReloadRecoversPanickingListener(t *testing.T) {
	prev := Current()
	defer Set(prev)
	rec := &panicRecorder{}
	prevHandler := arborerrors.SetHandler(rec)
	defer arborerrors.SetHandler(prevHandler)

	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("refresh_interval: 40ms\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	reload(path, func(Settings) { panic("listener") })

	if RefreshInterval() != 40*time.Millisecond {
		t.Errorf("RefreshInterval() = %v, want 40ms", RefreshInterval())
	}
	if len(rec.panics) != 1 || rec.panics[0].Op != "config.Watch.onChange" || rec.panics[0].Value != "listener" {
		t.Errorf("reported panics = %+v", rec.panics)
	}
}
