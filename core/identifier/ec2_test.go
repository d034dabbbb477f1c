package identifier

import "testing"

func TestResourceIDLengths(t *testing.T) {
	valid := isResourceID("i")

	// Exactly two accepted hex lengths: 8 (legacy) and 17 (current).
	if !valid("i-12345678") {
		t.Error("8-hex legacy ID rejected")
	}
	if !valid("i-1234567890abcdef0") {
		t.Error("17-hex current ID rejected")
	}

	for _, in := range []string{
		"i-1234567",           // 7
		"i-123456789",         // 9
		"i-1234567890abcdef",  // 16
		"i-1234567890abcdef01", // 18
	} {
		if valid(in) {
			t.Errorf("intermediate length accepted: %q", in)
		}
	}
}

func TestResourceIDFormat(t *testing.T) {
	valid := isResourceID("vpc")

	if !valid("vpc-0a1b2c3d") {
		t.Error("valid VPC ID rejected")
	}

	invalid := []string{
		"",
		"vpc-",
		"vpc",
		"vpc-0A1B2C3D",          // uppercase hex
		"vpc-0a1b2c3g",          // non-hex char
		"subnet-0a1b2c3d",       // wrong prefix
		"vpc--a1b2c3d",          // hyphen in hex part
		"xvpc-0a1b2c3d",         // prefix must match exactly
	}
	for _, in := range invalid {
		if valid(in) {
			t.Errorf("isResourceID(vpc)(%q) = true, want false", in)
		}
	}
}
