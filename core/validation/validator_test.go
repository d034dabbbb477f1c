package validation

import (
	"strings"
	"testing"

	"github.com/artpar/envschema/core/identifier"
	"github.com/artpar/envschema/core/schema"
)

func fptr(n float64) *float64 { return &n }
func iptr(n int) *int         { return &n }

func TestValidate_HappyPath(t *testing.T) {
	s := schema.Schema{
		"PORT": {Type: schema.TypeNumber, Default: 3000, Min: fptr(1), Max: fptr(65535)},
		"QUEUE_URL": {
			Type:     schema.Type(identifier.GrammarSQSQueueURL),
			Required: true,
		},
		"DEBUG": {Type: schema.TypeBool, Default: false},
		"ENV":   {Type: schema.TypeString, Enum: []string{"dev", "staging", "prod"}, Required: true},
	}
	src := MapSource{
		"QUEUE_URL": "https://sqs.us-east-1.amazonaws.com/123456789012/my-queue",
		"ENV":       "prod",
	}

	out, err := Validate(s, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out["PORT"] != float64(3000) {
		t.Errorf("PORT = %v (%T), want 3000", out["PORT"], out["PORT"])
	}
	if out["DEBUG"] != false {
		t.Errorf("DEBUG = %v, want false", out["DEBUG"])
	}
	if out["ENV"] != "prod" {
		t.Errorf("ENV = %v, want prod", out["ENV"])
	}

	q, ok := out["QUEUE_URL"].(identifier.QueueURL)
	if !ok {
		t.Fatalf("QUEUE_URL = %T, want identifier.QueueURL", out["QUEUE_URL"])
	}
	if q.Region != "us-east-1" || q.Account != "123456789012" || q.Name != "my-queue" {
		t.Errorf("QueueURL = %+v", q)
	}
}

func TestValidate_AggregatesAllFailures(t *testing.T) {
	s := schema.Schema{
		"API_KEY": {Type: schema.TypeString, Required: true},
		"BUCKET":  {Type: schema.Type(identifier.GrammarS3BucketName), Required: true},
		"PORT":    {Type: schema.TypeNumber, Default: 3000},
	}

	_, err := Validate(s, MapSource{})
	if err == nil {
		t.Fatal("expected error")
	}
	f, ok := err.(*Failure)
	if !ok {
		t.Fatalf("error type = %T, want *Failure", err)
	}
	if len(f.Errors) != 2 {
		t.Fatalf("errors = %d, want 2", len(f.Errors))
	}

	// Sorted by variable name, so API_KEY precedes BUCKET.
	if f.Errors[0].Field != "API_KEY" || f.Errors[1].Field != "BUCKET" {
		t.Errorf("fields = %s, %s", f.Errors[0].Field, f.Errors[1].Field)
	}

	msg := err.Error()
	if !strings.HasPrefix(msg, "2 environment variable(s) failed validation:") {
		t.Errorf("header missing: %q", msg)
	}
	if !strings.Contains(msg, "- API_KEY: required but not set") {
		t.Errorf("bullet missing: %q", msg)
	}
	if !strings.HasSuffix(msg, "Fix the variables listed above and run again.") {
		t.Errorf("footer missing: %q", msg)
	}
}

func TestValidate_ScopeMismatch(t *testing.T) {
	s := schema.Schema{
		"QUEUE_URL": {
			Type:     schema.Type(identifier.GrammarSQSQueueURL),
			Required: true,
			Scope:    &identifier.Scope{Region: "eu-west-1", Account: "999999999999"},
		},
	}
	src := MapSource{
		"QUEUE_URL": "https://sqs.us-east-1.amazonaws.com/123456789012/my-queue",
	}

	_, err := Validate(s, src)
	if err == nil {
		t.Fatal("expected error")
	}
	f := err.(*Failure)
	if len(f.Errors) != 2 {
		t.Fatalf("errors = %d, want 2", len(f.Errors))
	}
	if got := f.Errors[0].Message; got != `Region mismatch: expected "eu-west-1", got "us-east-1"` {
		t.Errorf("region message = %q", got)
	}
	if got := f.Errors[1].Message; got != `Account mismatch: expected "999999999999", got "123456789012"` {
		t.Errorf("account message = %q", got)
	}
}

func TestValidate_ScopeAppliesToDefault(t *testing.T) {
	s := schema.Schema{
		"TOPIC_ARN": {
			Type:    schema.Type(identifier.GrammarSNSTopicARN),
			Default: "arn:aws:sns:us-east-1:123456789012:alerts",
			Scope:   &identifier.Scope{Region: "eu-west-1"},
		},
	}

	_, err := Validate(s, MapSource{})
	if err == nil {
		t.Fatal("expected scope mismatch on the default value")
	}
	f := err.(*Failure)
	if len(f.Errors) != 1 || !strings.Contains(f.Errors[0].Message, "Region mismatch") {
		t.Errorf("errors = %+v", f.Errors)
	}
}

func TestValidate_ConstraintsApplyToDefault(t *testing.T) {
	s := schema.Schema{
		"RETRIES": {Type: schema.TypeNumber, Default: 10, Max: fptr(5)},
	}

	_, err := Validate(s, MapSource{})
	if err == nil {
		t.Fatal("expected constraint violation on the default value")
	}
	f := err.(*Failure)
	if f.Errors[0].Message != "must be at most 5" {
		t.Errorf("message = %q", f.Errors[0].Message)
	}
}

func TestValidate_CollectsAllConstraintViolations(t *testing.T) {
	s := schema.Schema{
		"NAME": {
			Type:      schema.TypeString,
			Required:  true,
			Pattern:   "^[a-z]+$",
			MinLength: iptr(10),
		},
	}

	_, err := Validate(s, MapSource{"NAME": "Bad1"})
	if err == nil {
		t.Fatal("expected error")
	}
	f := err.(*Failure)
	if len(f.Errors) != 2 {
		t.Fatalf("errors = %d, want 2 (pattern and min_length)", len(f.Errors))
	}
	if !strings.Contains(f.Errors[0].Message, "must match pattern") {
		t.Errorf("first = %q", f.Errors[0].Message)
	}
	if f.Errors[1].Message != "must be at least 10 characters" {
		t.Errorf("second = %q", f.Errors[1].Message)
	}
}

func TestValidate_SensitiveValuesMasked(t *testing.T) {
	const secret = "wJalrXUtnFEMIbutnotactuallyfortychars"

	s := schema.Schema{
		"SECRET_KEY": {
			Type:      schema.Type(identifier.GrammarSecretAccessKey),
			Required:  true,
			Sensitive: true,
		},
	}

	_, err := Validate(s, MapSource{"SECRET_KEY": secret})
	if err == nil {
		t.Fatal("expected error")
	}

	msg := err.Error()
	if strings.Contains(msg, secret) {
		t.Fatalf("raw sensitive value leaked into error text: %q", msg)
	}
	if !strings.Contains(msg, MaskToken) {
		t.Errorf("mask token missing: %q", msg)
	}

	f := err.(*Failure)
	if f.Errors[0].Received != MaskToken {
		t.Errorf("Received = %q, want mask token", f.Errors[0].Received)
	}
}

func TestValidate_AbsentOptionalIsNil(t *testing.T) {
	s := schema.Schema{
		"OPTIONAL": {Type: schema.TypeString},
	}

	out, err := Validate(s, MapSource{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, present := out["OPTIONAL"]
	if !present {
		t.Fatal("absent optional variable missing from output")
	}
	if v != nil {
		t.Errorf("value = %v, want nil", v)
	}
}

func TestValidate_EnumRejectsOutsider(t *testing.T) {
	s := schema.Schema{
		"ENV": {Type: schema.TypeString, Enum: []string{"dev", "prod"}, Required: true},
	}

	_, err := Validate(s, MapSource{"ENV": "qa"})
	if err == nil {
		t.Fatal("expected error")
	}
	f := err.(*Failure)
	if f.Errors[0].Message != "must be one of: dev, prod" {
		t.Errorf("message = %q", f.Errors[0].Message)
	}
	if f.Errors[0].Received != "qa" {
		t.Errorf("received = %q", f.Errors[0].Received)
	}
}

func TestValidate_ListSeparatorAndBounds(t *testing.T) {
	s := schema.Schema{
		"HOSTS": {
			Type:      schema.TypeStrings,
			Required:  true,
			Separator: "|",
			MinLength: iptr(2),
		},
	}

	out, err := Validate(s, MapSource{"HOSTS": "a | b | c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hosts := out["HOSTS"].([]string)
	if len(hosts) != 3 || hosts[0] != "a" || hosts[2] != "c" {
		t.Errorf("HOSTS = %v", hosts)
	}

	_, err = Validate(s, MapSource{"HOSTS": "only-one"})
	if err == nil {
		t.Fatal("expected min_length violation")
	}
	f := err.(*Failure)
	if f.Errors[0].Message != "must have at least 2 elements" {
		t.Errorf("message = %q", f.Errors[0].Message)
	}
}

func TestValidate_CamelKeys(t *testing.T) {
	s := schema.Schema{
		"MAX_RETRIES": {Type: schema.TypeNumber, Default: 3},
		"QUEUE_URL":   {Type: schema.TypeString},
	}

	out, err := Validate(s, MapSource{"QUEUE_URL": "x"}, WithCamelKeys())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := out["maxRetries"]; !ok {
		t.Errorf("keys = %v, want maxRetries", keysOf(out))
	}
	if _, ok := out["queueUrl"]; !ok {
		t.Errorf("keys = %v, want queueUrl", keysOf(out))
	}
	if _, ok := out["MAX_RETRIES"]; ok {
		t.Error("original key left in output")
	}
}

func TestValidate_RuntimeAttached(t *testing.T) {
	s := schema.Schema{
		"PORT": {Type: schema.TypeNumber, Default: 8080},
	}
	src := MapSource{
		"AWS_REGION":               "us-east-1",
		"AWS_LAMBDA_FUNCTION_NAME": "process-orders",
	}

	out, err := Validate(s, src, WithRuntime())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, ok := out[RuntimeKey].(Runtime)
	if !ok {
		t.Fatalf("runtime = %T, want Runtime", out[RuntimeKey])
	}
	if r.Region != "us-east-1" || r.FunctionName != "process-orders" {
		t.Errorf("runtime = %+v", r)
	}
}

func TestValidate_NoRuntimeKeyOnFailure(t *testing.T) {
	s := schema.Schema{
		"PORT": {Type: schema.TypeNumber, Required: true},
	}

	out, err := Validate(s, MapSource{}, WithRuntime())
	if err == nil {
		t.Fatal("expected error")
	}
	if out != nil {
		t.Error("partial output returned on failure")
	}
}

func keysOf(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
