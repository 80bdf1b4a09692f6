package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	jsonrepo "github.com/bnema/bills-cli/internal/adapters/repo/json"
	tomlrepo "github.com/bnema/bills-cli/internal/adapters/repo/toml"
	reportrender "github.com/bnema/bills-cli/internal/adapters/render/report"
	"github.com/bnema/bills-cli/internal/application"
	"github.com/bnema/bills-cli/internal/config"
	"github.com/bnema/bills-cli/internal/ports"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const dotEnvFile = ".env"

const (
	keyBillsPath = config.KeyBillsPath
	keyLogLevel  = config.KeyLogLevel
)

type app struct {
	viper          *viper.Viper
	clock          ports.Clock
	reportRenderer func(application.Report, reportrender.RenderOptions) (string, error)
	cfg            config.Config
}

func wireApp() *app {
	return &app{
		viper:          viper.New(),
		clock:          ports.SystemClock{},
		reportRenderer: reportrender.Render,
	}
}

// prepare resolves the configuration and sets up logging before a command runs.
func (a *app) prepare(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(dotEnvFile); err != nil {
		return err
	}

	cfg, err := config.Load(a.viper)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := configureLogging(cfg.LogLevel, cmd.ErrOrStderr()); err != nil {
		return err
	}

	a.cfg = cfg
	return nil
}

func (a *app) reportService() (*application.ReportService, error) {
	source, err := newBillSource(a.cfg.BillsPath)
	if err != nil {
		return nil, fmt.Errorf("wire bill source: %w", err)
	}

	return application.NewReportService(source, a.clock), nil
}

func newBillSource(path string) (ports.BillRecordSource, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		source, err := tomlrepo.NewSource(path)
		if err != nil {
			return nil, err
		}
		return source, nil
	default:
		source, err := jsonrepo.NewSource(path)
		if err != nil {
			return nil, err
		}
		return source, nil
	}
}

func configureLogging(level string, out io.Writer) error {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	log.SetLevel(parsed)
	log.SetOutput(out)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
}
