package convention

import "testing"

func TestCamelKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"MAX_RETRIES", "maxRetries"},
		{"QUEUE_URL", "queueUrl"},
		{"AWS_S3_BUCKET_NAME", "awsS3BucketName"},
		{"PORT", "port"},
		{"port", "port"},
		{"DOUBLE__UNDERSCORE", "doubleUnderscore"},
		{"_LEADING", "leading"},
		{"TRAILING_", "trailing"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CamelKey(tt.in); got != tt.want {
			t.Errorf("CamelKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCamelKeys(t *testing.T) {
	in := map[string]any{
		"MAX_RETRIES": 3,
		"QUEUE_URL":   "https://example.com",
	}

	out := CamelKeys(in)
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out["maxRetries"] != 3 {
		t.Errorf("maxRetries = %v", out["maxRetries"])
	}
	if out["queueUrl"] != "https://example.com" {
		t.Errorf("queueUrl = %v", out["queueUrl"])
	}
}
