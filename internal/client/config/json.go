package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/akozlovs/bizkeeper/internal/flagx"
	"github.com/akozlovs/bizkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "2m"
// or as integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr   string         `json:"server_endpoint_addr"`
	CacheBackend         string         `json:"cache_backend"`
	CachePath            string         `json:"cache_path"`
	OnlineCheckInterval  timex.Duration `json:"online_check_interval"`
	RemoteTimeout        timex.Duration `json:"remote_timeout"`
	DebounceWindow       timex.Duration `json:"debounce_window"`
	ResyncInterval       timex.Duration `json:"resync_interval"`
	RecoveryAgeThreshold timex.Duration `json:"recovery_age_threshold"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. Empty fields in the file keep their current
// values. Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.CacheBackend != "" {
		cfg.CacheBackend = jc.CacheBackend
	}
	if jc.CachePath != "" {
		cfg.CachePath = jc.CachePath
	}
	if jc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
	}
	if jc.RemoteTimeout.Duration != 0 {
		cfg.RemoteTimeout = time.Duration(jc.RemoteTimeout.Duration)
	}
	if jc.DebounceWindow.Duration != 0 {
		cfg.DebounceWindow = time.Duration(jc.DebounceWindow.Duration)
	}
	if jc.ResyncInterval.Duration != 0 {
		cfg.ResyncInterval = time.Duration(jc.ResyncInterval.Duration)
	}
	if jc.RecoveryAgeThreshold.Duration != 0 {
		cfg.RecoveryAgeThreshold = time.Duration(jc.RecoveryAgeThreshold.Duration)
	}
}
