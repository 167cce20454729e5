// Package config loads, validates and saves the calreport configuration.
//
// Values are resolved in order: built-in defaults, the YAML file, then
// CALREPORT_* environment variables. A missing file is created from the
// defaults so operators have a template to edit.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "CALREPORT"

// DefaultPath is the configuration file used when none is given.
const DefaultPath = "appsettings.yaml"

// Authentication types.
const (
	AuthAnonymous = "Anonymous"
	AuthUserName  = "UserName"
)

// Config is the complete application configuration.
type Config struct {
	OPCUA       OPCUAConfig       `yaml:"opcua" envconfig:"OPCUA"`
	Application ApplicationConfig `yaml:"application" envconfig:"APPLICATION"`
	Logging     LoggingConfig     `yaml:"logging" envconfig:"LOGGING"`
}

// OPCUAConfig contains the OPC UA client settings.
type OPCUAConfig struct {
	EndpointURL                     string        `yaml:"endpoint_url" envconfig:"ENDPOINT_URL" validate:"required,startswith=opc.tcp://"`
	ApplicationName                 string        `yaml:"application_name" envconfig:"APPLICATION_NAME" validate:"required"`
	SessionTimeout                  time.Duration `yaml:"session_timeout" envconfig:"SESSION_TIMEOUT" validate:"gt=0"`
	RequestTimeout                  time.Duration `yaml:"request_timeout" envconfig:"REQUEST_TIMEOUT" validate:"gt=0"`
	AutoAcceptUntrustedCertificates bool          `yaml:"auto_accept_untrusted_certificates" envconfig:"AUTO_ACCEPT_UNTRUSTED_CERTIFICATES"`
	UseSecurity                     bool          `yaml:"use_security" envconfig:"USE_SECURITY"`
	SecurityPolicy                  string        `yaml:"security_policy,omitempty" envconfig:"SECURITY_POLICY" validate:"omitempty,oneof=None Basic128Rsa15 Basic256 Basic256Sha256 Aes128_Sha256_RsaOaep Aes256_Sha256_RsaPss"`
	SecurityMode                    string        `yaml:"security_mode,omitempty" envconfig:"SECURITY_MODE" validate:"omitempty,oneof=None Sign SignAndEncrypt"`
	CertificateFile                 string        `yaml:"certificate_file,omitempty" envconfig:"CERTIFICATE_FILE"`
	PrivateKeyFile                  string        `yaml:"private_key_file,omitempty" envconfig:"PRIVATE_KEY_FILE" validate:"required_with=CertificateFile"`
	AuthenticationType              string        `yaml:"authentication_type" envconfig:"AUTHENTICATION_TYPE" validate:"oneof=Anonymous UserName"`
	Username                        string        `yaml:"username" envconfig:"USERNAME" validate:"required_if=AuthenticationType UserName"`
	Password                        string        `yaml:"password" envconfig:"PASSWORD"`
	NodeMappings                    NodeMappings  `yaml:"node_mappings" ignored:"true"`
}

// NodeMappings maps report fields to OPC UA node ids. Empty ids are not written.
type NodeMappings struct {
	ZeroCellVolume    ZeroCellVolumeNodes    `yaml:"zero_cell_volume"`
	VolumeCalibration VolumeCalibrationNodes `yaml:"volume_calibration"`
}

// ZeroCellVolumeNodes holds the node ids of the Zero Cell Volume report.
type ZeroCellVolumeNodes struct {
	ChamberInsert               string   `yaml:"chamber_insert"`
	AnalysisStart               string   `yaml:"analysis_start"`
	AnalysisEnd                 string   `yaml:"analysis_end"`
	Temperature                 string   `yaml:"temperature"`
	NumberOfPurges              string   `yaml:"number_of_purges"`
	PurgeFillPressure           string   `yaml:"purge_fill_pressure"`
	NumberOfCycles              string   `yaml:"number_of_cycles"`
	CycleFillPressure           string   `yaml:"cycle_fill_pressure"`
	EquilibRate                 string   `yaml:"equilib_rate"`
	ExpansionVolume             string   `yaml:"expansion_volume"`
	AverageOffset               string   `yaml:"average_offset"`
	OffsetStandardDeviation     string   `yaml:"offset_standard_deviation"`
	AverageCellVolume           string   `yaml:"average_cell_volume"`
	CellVolumeStandardDeviation string   `yaml:"cell_volume_standard_deviation"`
	CycleRows                   []string `yaml:"cycle_rows,omitempty"`
}

// VolumeCalibrationNodes holds the node ids of the Volume Calibration report.
type VolumeCalibrationNodes struct {
	ChamberInsert                    string   `yaml:"chamber_insert"`
	AnalysisStart                    string   `yaml:"analysis_start"`
	AnalysisEnd                      string   `yaml:"analysis_end"`
	Temperature                      string   `yaml:"temperature"`
	Reported                         string   `yaml:"reported"`
	VolOfCalStandard                 string   `yaml:"vol_of_cal_standard"`
	NumberOfPurges                   string   `yaml:"number_of_purges"`
	PurgeFillPressure                string   `yaml:"purge_fill_pressure"`
	NumberOfCycles                   string   `yaml:"number_of_cycles"`
	CycleFillPressure                string   `yaml:"cycle_fill_pressure"`
	EquilibRate                      string   `yaml:"equilib_rate"`
	AverageOffset                    string   `yaml:"average_offset"`
	OffsetStandardDeviation          string   `yaml:"offset_standard_deviation"`
	AverageScaleFactor               string   `yaml:"average_scale_factor"`
	ScaleFactorStandardDeviation     string   `yaml:"scale_factor_standard_deviation"`
	AverageCellVolume                string   `yaml:"average_cell_volume"`
	CellVolumeStandardDeviation      string   `yaml:"cell_volume_standard_deviation"`
	AverageExpansionVolume           string   `yaml:"average_expansion_volume"`
	ExpansionVolumeStandardDeviation string   `yaml:"expansion_volume_standard_deviation"`
	CycleRows                        []string `yaml:"cycle_rows,omitempty"`
}

// ApplicationConfig contains export settings.
type ApplicationConfig struct {
	OutputFolderName     string `yaml:"output_folder_name" envconfig:"OUTPUT_FOLDER_NAME" validate:"required"`
	CSVFileName          string `yaml:"csv_file_name" envconfig:"CSV_FILE_NAME" validate:"required"`
	MaxMeasurementCycles int    `yaml:"max_measurement_cycles" envconfig:"MAX_MEASUREMENT_CYCLES" validate:"gte=1,lte=100"`
	Encoding             string `yaml:"encoding" envconfig:"ENCODING" validate:"required"`
	Sheet                string `yaml:"sheet,omitempty" envconfig:"SHEET"`
}

// CSVPath returns the default CSV export path.
func (a ApplicationConfig) CSVPath() string {
	return filepath.Join(a.OutputFolderName, a.CSVFileName)
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stdout stderr file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required_if=Output file,required_if=Output both"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OPCUA: OPCUAConfig{
			EndpointURL:                     "opc.tcp://localhost:49320",
			ApplicationName:                 "Calibration Data Exporter OPC UA Client",
			SessionTimeout:                  60 * time.Second,
			RequestTimeout:                  15 * time.Second,
			AutoAcceptUntrustedCertificates: true,
			UseSecurity:                     false,
			AuthenticationType:              AuthAnonymous,
		},
		Application: ApplicationConfig{
			OutputFolderName:     "output",
			CSVFileName:          "dataExport.csv",
			MaxMeasurementCycles: 10,
			Encoding:             "auto",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "stdout",
			FilePath: "logs/calreport.log",
		},
	}
}

// Load reads the configuration at path. A missing file is created with the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := Save(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
