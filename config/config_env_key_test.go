package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"broker": map[string]any{
			"dlqTopic":      "",
			"localEndpoint": "",
			"kafka": map[string]any{
				"groupId": "",
			},
		},
		"ledger": map[string]any{
			"baseUrl": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "BROKER_DLQTOPIC", want: "broker.dlqTopic"},
		{envKey: "BROKER_KAFKA_GROUPID", want: "broker.kafka.groupId"},
		{envKey: "BROKER_LOCALENDPOINT", want: "broker.localEndpoint"},
		{envKey: "LEDGER_BASEURL", want: "ledger.baseUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
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

	applyDefaults(cfg)

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
	if cfg.Ledger == nil || cfg.Ledger.Timeout != defaultLedgerTimeout {
		t.Fatalf("ledger timeout not defaulted: %+v", cfg.Ledger)
	}
	if cfg.Cache == nil || cfg.Cache.TTL != defaultCacheTTL {
		t.Fatalf("cache ttl not defaulted: %+v", cfg.Cache)
	}
	if cfg.Broker == nil {
		t.Fatal("broker section not defaulted")
	}
	if cfg.Worker == nil || cfg.Worker.RetryAttempts != 3 {
		t.Fatalf("worker retry attempts not defaulted: %+v", cfg.Worker)
	}
}
