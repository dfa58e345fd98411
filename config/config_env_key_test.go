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
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"sync": map[string]any{
			"gatewayUrl":    "",
			"watchdogGrace": "30s",
		},
		"crypto": map[string]any{
			"credentialKey": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "SYNC_GATEWAYURL", want: "sync.gatewayUrl"},
		{envKey: "SYNC_WATCHDOG_GRACE", want: "sync.watchdog.grace"},
		{envKey: "SYNC_WATCHDOGGRACE", want: "sync.watchdogGrace"},
		{envKey: "CRYPTO_CREDENTIALKEY", want: "crypto.credentialKey"},
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

	if cfg.OAuth == nil || cfg.OAuth.StateTTL != defaultStateTTL {
		t.Fatalf("expected default state TTL %v, got %+v", defaultStateTTL, cfg.OAuth)
	}
	if cfg.Sync == nil || cfg.Sync.Timeout != defaultSyncTimeout {
		t.Fatalf("expected default sync timeout %v, got %+v", defaultSyncTimeout, cfg.Sync)
	}
	if cfg.Sync.MaxConcurrency != defaultSyncConcurrency {
		t.Fatalf("expected default concurrency %d, got %d", defaultSyncConcurrency, cfg.Sync.MaxConcurrency)
	}
	if cfg.Crypto == nil {
		t.Fatal("expected crypto section to be initialised")
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Sync: &SyncConfig{Timeout: defaultSyncTimeout * 2, MaxConcurrency: 16},
	}
	applyDefaults(cfg)

	if cfg.Sync.Timeout != defaultSyncTimeout*2 {
		t.Fatalf("configured timeout overwritten: %v", cfg.Sync.Timeout)
	}
	if cfg.Sync.MaxConcurrency != 16 {
		t.Fatalf("configured concurrency overwritten: %d", cfg.Sync.MaxConcurrency)
	}
	if cfg.Sync.WatchdogGrace != defaultWatchdogGrace {
		t.Fatalf("expected default grace, got %v", cfg.Sync.WatchdogGrace)
	}
}
