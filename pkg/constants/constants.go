package constants

const (
	ConfigName   = "config"
	ConfigFormat = "yaml"

	ServiceName = "nido_backend"
)
