package identifier

import "testing"

func TestIsBucketName(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"my-data-bucket", true},
		{"logs.2026.archive", true},
		{"abc", true},
		{"a12", true},

		{"", false},
		{"ab", false},                   // too short
		{"My-Bucket", false},            // uppercase
		{"bucket_name", false},          // underscore
		{"-bucket", false},              // leading hyphen
		{"bucket-", false},              // trailing hyphen
		{"a..b", false},                 // adjacent dots
		{"192.168.1.1", false},          // IP-shaped
		{"xn--internation", false},      // reserved prefix
		{"sthree-bucket", false},        // reserved prefix
		{"my-bucket-s3alias", false},    // reserved suffix
		{"my-bucket--ol-s3", false},     // reserved suffix
	}

	for _, tt := range tests {
		if got := IsBucketName(tt.in); got != tt.valid {
			t.Errorf("IsBucketName(%q) = %v, want %v", tt.in, got, tt.valid)
		}
	}

	// 63 chars is the cap.
	long := make([]byte, 64)
	for i := range long {
		long[i] = 'a'
	}
	if IsBucketName(string(long)) {
		t.Error("64-char name accepted")
	}
	if !IsBucketName(string(long[:63])) {
		t.Error("63-char name rejected")
	}
}

func TestIsBucketARN(t *testing.T) {
	if !IsBucketARN("arn:aws:s3:::my-data-bucket") {
		t.Error("expected valid bucket ARN")
	}

	invalid := []string{
		"arn:aws:s3:us-east-1::my-data-bucket",  // region must be empty
		"arn:aws:s3::123456789012:my-bucket",    // account must be empty
		"arn:aws:s3:::my-data-bucket/key.txt",   // object key, not a bucket
		"arn:aws:sqs:::my-data-bucket",          // wrong service
		"arn:aws:s3:::xn--bucket",               // reserved bucket prefix
	}
	for _, in := range invalid {
		if IsBucketARN(in) {
			t.Errorf("IsBucketARN(%q) = true, want false", in)
		}
	}
}
