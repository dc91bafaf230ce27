package version

// Version information
var (
	// Version is the current version of the application
	Version    = "0.1.0"
	GoVersion  = "unset"
	ServerCode = "ET_SERVER_2026AUG_0.1.0"
)

// GetInfoResponse holds all version information
type GetInfoResponse struct {
	Version      string `json:"version"`
	GoVersion    string `json:"go_version"`
	ServerCode   string `json:"server_code"`
	ServerEnv    string `json:"server_env"`
	DatabaseName string `json:"database_name"`
}

// GetInfo returns version information
func GetInfo() GetInfoResponse {
	return GetInfoResponse{
		Version:    Version,
		GoVersion:  GoVersion,
		ServerCode: ServerCode,
	}
}
