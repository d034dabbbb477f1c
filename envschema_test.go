package envschema_test

import (
	"errors"
	"testing"

	"github.com/artpar/envschema"
)

func TestValidate_Environment(t *testing.T) {
	t.Setenv("ENVSCHEMA_TEST_PORT", "8080")

	out, err := envschema.Validate(envschema.Schema{
		"ENVSCHEMA_TEST_PORT": {Type: envschema.TypeNumber, Required: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["ENVSCHEMA_TEST_PORT"] != float64(8080) {
		t.Errorf("port = %v", out["ENVSCHEMA_TEST_PORT"])
	}
}

func TestValidateSource(t *testing.T) {
	s := envschema.Schema{
		"BUCKET": {Type: "s3_bucket_name", Required: true},
		"DEBUG":  {Type: envschema.TypeBool, Default: false},
	}

	out, err := envschema.ValidateSource(s, envschema.MapSource{"BUCKET": "my-data-bucket"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["DEBUG"] != false {
		t.Errorf("DEBUG = %v", out["DEBUG"])
	}

	_, err = envschema.ValidateSource(s, envschema.MapSource{"BUCKET": "Bad_Bucket"})
	var f *envschema.Failure
	if !errors.As(err, &f) {
		t.Fatalf("error type = %T, want *Failure", err)
	}
	if len(f.Errors) != 1 || f.Errors[0].Field != "BUCKET" {
		t.Errorf("errors = %+v", f.Errors)
	}
}
