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
		"session": map[string]any{
			"cookieName": "",
		},
		"recipes": map[string]any{
			"allowUnknownCategories": false,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SESSION_COOKIENAME", want: "session.cookieName"},
		{envKey: "RECIPES_ALLOWUNKNOWNCATEGORIES", want: "recipes.allowUnknownCategories"},
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

	if cfg.Session.TTL != defaultSessionTTL {
		t.Fatalf("session ttl = %v, want %v", cfg.Session.TTL, defaultSessionTTL)
	}
	if cfg.Session.CookieName != defaultSessionCookieName {
		t.Fatalf("cookie name = %q, want %q", cfg.Session.CookieName, defaultSessionCookieName)
	}
	if cfg.Auth.MinPasswordLength != defaultMinPasswordLength {
		t.Fatalf("min password length = %d, want %d", cfg.Auth.MinPasswordLength, defaultMinPasswordLength)
	}
	if cfg.Recipes == nil || cfg.Recipes.AllowUnknownCategories {
		t.Fatal("recipes config should default to rejecting unknown categories")
	}
}
