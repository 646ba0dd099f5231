package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"firebase": map[string]any{
			"projectId": "",
			"apiKey":    "",
		},
		"storage": map[string]any{
			"bucketUrl": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "FIREBASE_PROJECTID", want: "firebase.projectId"},
		{envKey: "FIREBASE_APIKEY", want: "firebase.apiKey"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
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

func TestFirebaseConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  *FirebaseConfig
		want bool
	}{
		{name: "nil section", cfg: nil, want: false},
		{name: "all present", cfg: &FirebaseConfig{APIKey: "k", ProjectID: "p", AppID: "a"}, want: true},
		{name: "missing api key", cfg: &FirebaseConfig{ProjectID: "p", AppID: "a"}, want: false},
		{name: "missing project id", cfg: &FirebaseConfig{APIKey: "k", AppID: "a"}, want: false},
		{name: "missing app id", cfg: &FirebaseConfig{APIKey: "k", ProjectID: "p"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Configured(); got != tt.want {
				t.Fatalf("Configured() = %v, want %v", got, tt.want)
			}
		})
	}
}
