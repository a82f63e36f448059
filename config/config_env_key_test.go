package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"api": map[string]any{
			"baseUrl": "",
		},
		"location": map[string]any{
			"defaultCity":           "",
			"freshnessRadiusMeters": 3000,
		},
		"qrcode": map[string]any{
			"errorCorrectionLevel": "M",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "API_BASEURL", want: "api.baseUrl"},
		{envKey: "LOCATION_DEFAULTCITY", want: "location.defaultCity"},
		{envKey: "LOCATION_FRESHNESSRADIUSMETERS", want: "location.freshnessRadiusMeters"},
		{envKey: "QRCODE_ERRORCORRECTIONLEVEL", want: "qrcode.errorCorrectionLevel"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Location.FreshnessRadiusMeters != defaultFreshnessRadiusMeters {
		t.Fatalf("freshness radius = %v, want %v", cfg.Location.FreshnessRadiusMeters, defaultFreshnessRadiusMeters)
	}
	if cfg.Location.DefaultCity != defaultCity {
		t.Fatalf("default city = %q, want %q", cfg.Location.DefaultCity, defaultCity)
	}
	if cfg.Cache.Path != defaultCachePath {
		t.Fatalf("cache path = %q, want %q", cfg.Cache.Path, defaultCachePath)
	}
	if cfg.Device.Latitude != defaultLatitude || cfg.Device.Longitude != defaultLongitude {
		t.Fatalf("device seed = (%v,%v), want default coordinates", cfg.Device.Latitude, cfg.Device.Longitude)
	}
}
