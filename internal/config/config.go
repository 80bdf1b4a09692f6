package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/bnema/bills-cli/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configName       = "config"
	configType       = "toml"
	configDir        = ".bills"
	defaultBillsFile = "bills.json"
	defaultLogLevel  = "warn"
)

const (
	KeyBillsPath = "bills.path"
	KeyLogLevel  = "log.level"
	KeyYear      = "report.year"
	KeyMonth     = "report.month"
	KeyDay       = "report.day"
	KeyDays      = "report.days"
	KeyOwner     = "report.owner"
	KeyIncome    = "report.income"
	KeyToday     = "report.today"
)

var (
	ErrMissingParameter = errors.New("missing required parameter")
	ErrInvalidStartDate = errors.New("invalid window start date")
)

// envBindings lists the environment variables read for each key, the
// BILLS_ name first. YEAR, MONTH, DAY and SEARCH_DAY_LIMIT are the names
// older scripts export.
var envBindings = map[string][]string{
	KeyBillsPath: {"BILLS_PATH"},
	KeyLogLevel:  {"BILLS_LOG_LEVEL", "LOG_LEVEL"},
	KeyYear:      {"BILLS_YEAR", "YEAR"},
	KeyMonth:     {"BILLS_MONTH", "MONTH"},
	KeyDay:       {"BILLS_DAY", "DAY"},
	KeyDays:      {"BILLS_DAYS", "SEARCH_DAY_LIMIT"},
	KeyOwner:     {"BILLS_OWNER"},
	KeyIncome:    {"BILLS_INCOME"},
	KeyToday:     {"BILLS_TODAY"},
}

type Config struct {
	BillsPath string
	LogLevel  string
	Report    Report
}

// Report holds the window parameters of a report run. A zero Year, Month
// or Day means the parameter was not given.
type Report struct {
	Year   int     `key:"report.year" validate:"gte=0,lte=9999"`
	Month  int     `key:"report.month" validate:"gte=0,lte=12"`
	Day    int     `key:"report.day" validate:"gte=0,lte=31"`
	Days   int     `key:"report.days" validate:"gte=1,lte=366"`
	Owner  string  `key:"report.owner"`
	Income float64 `key:"report.income" validate:"gte=0"`
	Today  bool    `key:"report.today"`
}

type MissingParameterError struct {
	Key  string
	Flag string
	Env  string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s %q (set --%s or %s)", ErrMissingParameter, e.Key, e.Flag, e.Env)
}

func (e *MissingParameterError) Is(target error) bool {
	return target == ErrMissingParameter
}

var paramValidator = newParamValidator()

func newParamValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if key := field.Tag.Get("key"); key != "" {
			return key
		}
		return field.Name
	})
	return v
}

// LoadDotEnv exports the variables of a .env file into the process
// environment without overriding variables already set. A missing file is
// not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load resolves the configuration from v. Flags already bound to v win over
// environment variables, which win over ~/.bills/config.toml, which wins
// over defaults.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(filepath.Join(homeDir, configDir))
	v.SetDefault(KeyBillsPath, filepath.Join(homeDir, configDir, defaultBillsFile))
	v.SetDefault(KeyLogLevel, defaultLogLevel)
	v.SetDefault(KeyDays, domain.DefaultWindowDays)

	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return Config{}, fmt.Errorf("bind env for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		BillsPath: v.GetString(KeyBillsPath),
		LogLevel:  v.GetString(KeyLogLevel),
		Report: Report{
			Year:   v.GetInt(KeyYear),
			Month:  v.GetInt(KeyMonth),
			Day:    v.GetInt(KeyDay),
			Days:   v.GetInt(KeyDays),
			Owner:  v.GetString(KeyOwner),
			Income: v.GetFloat64(KeyIncome),
			Today:  v.GetBool(KeyToday),
		},
	}
	if cfg.BillsPath == "" {
		return Config{}, errors.New("bills path is empty")
	}

	if err := cfg.Report.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (r Report) Validate() error {
	err := paramValidator.Struct(r)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validate report parameters: %w", err)
	}

	problems := make([]error, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		problems = append(problems, fmt.Errorf("%s: %v must be %s %s", fieldErr.Field(), fieldErr.Value(), boundLabel(fieldErr.Tag()), fieldErr.Param()))
	}
	return fmt.Errorf("invalid report parameters: %w", errors.Join(problems...))
}

func boundLabel(tag string) string {
	switch tag {
	case "gte":
		return ">="
	case "lte":
		return "<="
	default:
		return tag
	}
}

// Start returns the first day of the reporting window. With Today set,
// parameters left out are taken from today.
func (r Report) Start(today domain.Date) (domain.Date, error) {
	year, month, day := r.Year, r.Month, r.Day
	if r.Today {
		if year == 0 {
			year = today.Year()
		}
		if month == 0 {
			month = int(today.Month())
		}
		if day == 0 {
			day = today.Day()
		}
	}

	required := []struct {
		value int
		err   *MissingParameterError
	}{
		{value: year, err: &MissingParameterError{Key: KeyYear, Flag: "year", Env: "YEAR"}},
		{value: month, err: &MissingParameterError{Key: KeyMonth, Flag: "month", Env: "MONTH"}},
		{value: day, err: &MissingParameterError{Key: KeyDay, Flag: "day", Env: "DAY"}},
	}
	for _, param := range required {
		if param.value == 0 {
			return domain.Date{}, param.err
		}
	}

	if !domain.ValidDate(year, time.Month(month), day) {
		return domain.Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidStartDate, year, month, day)
	}

	return domain.NewDate(year, time.Month(month), day), nil
}
