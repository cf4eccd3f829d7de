package constants

const (
	ConfigName   = "config"
	ConfigFormat = "yaml"
	EnvPrefix    = "OPTIMA"

	ServiceName = "optima_web"
)
