package shared

import (
	"encoding/json"
	"log"
	"os"

	"github.com/tailscale/hujson"
)

const (
	configVarName  = "CONFIG"                   // If set, will load config.json from this path and not from devConfigPath
	secretsVarName = "SECRETS"                  // If set, will load secrets.json from this path and not from devSecretsPath
	devConfigPath  = "dev/config.dev.jsonc"  // Path to config.json in development environment
	devSecretsPath = "dev/secrets.dev.jsonc" // Path to secrets.json in development environment
)

type Config struct {
	Secrets           Secrets   `json:"-"`
	LogFile           string    `json:"log_file"`
	LogLevel          string    `json:"log_level"`
	ServicePort       uint      `json:"service_port"`
	Host              string    `json:"host"`
	DbFile            string    `json:"db_file"`
	ContentDir        string    `json:"content_dir"`
	ProfileDir        string    `json:"profile_dir"`
	ProfileKeepDays   int       `json:"profile_keep_days"`
	VerifyInboundSigs bool      `json:"verify_inbound_sigs"`
	Actor             ActorInfo `json:"actor"`
}

// ActorInfo describes the single local actor this deployment federates as.
type ActorInfo struct {
	User        string `json:"user"`
	DisplayName string `json:"display_name"`
	Summary     string `json:"summary"`
	ProfilePic  string `json:"profile_pic"`
}

type Secrets struct {
	ApiKeys     []string `json:"api_keys"`
	MetricsAuth string   `json:"metrics_auth"`
}

func LoadConfig() *Config {

	// Where are our config and secrets files?
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
	}
	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = devSecretsPath
	}

	// Read config file
	var config Config
	mustDeserializeFile(cfgPath, &config)
	// Read secrets member from secrets file
	mustDeserializeFile(secretsPath, &config.Secrets)
	return &config
}

func mustDeserializeFile[T any](fileName string, obj *T) {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		log.Fatal(err)
	}
	// JSONC => JSON
	cfgJson, err = standardizeJSON(cfgJson)
	if err != nil {
		log.Fatal(err)
	}
	// Parse
	if err := json.Unmarshal(cfgJson, obj); err != nil {
		log.Fatal(err)
	}
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
