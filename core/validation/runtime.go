package validation

import (
	"strconv"
	"strings"
)

// Runtime is the ambient execution record assembled from the well-known
// variable names a managed function runtime injects. It rides along as
// a side channel under RuntimeKey and is never validated: a missing or
// malformed value degrades to the zero value instead of erroring.
type Runtime struct {
	// Region is the execution region, from AWS_REGION with
	// AWS_DEFAULT_REGION as fallback.
	Region string `json:"region,omitempty"`

	FunctionName    string `json:"functionName,omitempty"`
	FunctionVersion string `json:"functionVersion,omitempty"`

	// MemoryMB is the configured memory limit. Zero when unset or
	// non-numeric.
	MemoryMB int `json:"memoryMB,omitempty"`

	LogGroup  string `json:"logGroup,omitempty"`
	LogStream string `json:"logStream,omitempty"`

	AccessKeyID     string `json:"accessKeyId,omitempty"`
	SecretAccessKey string `json:"-"`
	SessionToken    string `json:"-"`

	// RuntimeAPI is the host:port of the runtime interface endpoint.
	RuntimeAPI string `json:"runtimeApi,omitempty"`

	TaskRoot string `json:"taskRoot,omitempty"`
	Handler  string `json:"handler,omitempty"`
}

// HasCredentials reports whether a usable credential pair is present.
func (r Runtime) HasCredentials() bool {
	return r.AccessKeyID != "" && r.SecretAccessKey != ""
}

// ReadRuntime assembles the ambient runtime record from src. It never
// fails: absent or unparsable values stay at their zero value.
func ReadRuntime(src Source) Runtime {
	get := func(key string) string {
		v, _ := src.Lookup(key)
		return v
	}

	r := Runtime{
		Region:          get("AWS_REGION"),
		FunctionName:    get("AWS_LAMBDA_FUNCTION_NAME"),
		FunctionVersion: get("AWS_LAMBDA_FUNCTION_VERSION"),
		LogGroup:        get("AWS_LAMBDA_LOG_GROUP_NAME"),
		LogStream:       get("AWS_LAMBDA_LOG_STREAM_NAME"),
		AccessKeyID:     get("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: get("AWS_SECRET_ACCESS_KEY"),
		SessionToken:    get("AWS_SESSION_TOKEN"),
		RuntimeAPI:      get("AWS_LAMBDA_RUNTIME_API"),
		TaskRoot:        get("LAMBDA_TASK_ROOT"),
		Handler:         get("_HANDLER"),
	}

	if r.Region == "" {
		r.Region = get("AWS_DEFAULT_REGION")
	}

	if raw := strings.TrimSpace(get("AWS_LAMBDA_FUNCTION_MEMORY_SIZE")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			r.MemoryMB = n
		}
	}

	return r
}
