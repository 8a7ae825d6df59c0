package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/pflag"
)

type testConfig struct {
	Addr  string `env:"VTNDS_CMD_TEST_ADDR" envDefault:"localhost:6006"`
	Theme string `env:"VTNDS_CMD_TEST_THEME" envDefault:"light"`
}

func TestParseConfigFromArgsFlagsOverrideEnv(t *testing.T) {
	t.Setenv("VTNDS_CMD_TEST_ADDR", "env:9000")
	t.Setenv("VTNDS_CMD_TEST_THEME", "dark")

	cfg := testConfig{}
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "http-addr", "", "address")
	if err := ParseConfigFromArgs(&cfg, fs, []string{"--http-addr", "flag:9001"}); err != nil {
		t.Fatalf("parse config and args: %v", err)
	}
	if cfg.Addr != "flag:9001" {
		t.Fatalf("Addr = %q, want flag value", cfg.Addr)
	}
	if cfg.Theme != "dark" {
		t.Fatalf("Theme = %q, want env value", cfg.Theme)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg := testConfig{}
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Addr != "localhost:6006" || cfg.Theme != "light" {
		t.Fatalf("defaults = %+v", cfg)
	}
	var missing *testConfig
	if err := ParseConfig(missing); err == nil {
		t.Fatal("expected nil target error")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceStorybook, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Setenv("VTNDS_OTEL_ENDPOINT", "")
	boom := errors.New("boom")
	err := RunWithTelemetry(context.Background(), ServiceStorybook, func(context.Context) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}
