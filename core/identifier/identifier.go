// Package identifier provides format checkers and parsers for cloud
// resource naming conventions: ARNs, queue URLs, bucket names,
// EC2-style resource IDs, endpoints, and related identifiers.
//
// Every check is a closed-form pattern match. No function performs
// network or filesystem lookups, and no function panics: invalid input
// makes IsValid return false and the Parse helpers report no result.
package identifier

import "sort"

// Grammar identifies one resource naming convention from the closed
// catalog. New grammars are added by adding a constant and a registry
// entry, never by subclassing.
type Grammar string

const (
	GrammarAccountID       Grammar = "account_id"
	GrammarRegion          Grammar = "region"
	GrammarARN             Grammar = "arn"
	GrammarSQSQueueURL     Grammar = "sqs_queue_url"
	GrammarSQSQueueARN     Grammar = "sqs_queue_arn"
	GrammarSNSTopicARN     Grammar = "sns_topic_arn"
	GrammarS3BucketName    Grammar = "s3_bucket_name"
	GrammarS3BucketARN     Grammar = "s3_bucket_arn"
	GrammarDynamoTableName Grammar = "dynamodb_table_name"
	GrammarDynamoTableARN  Grammar = "dynamodb_table_arn"
	GrammarLambdaName      Grammar = "lambda_function_name"
	GrammarLambdaARN       Grammar = "lambda_arn"
	GrammarKMSKeyID        Grammar = "kms_key_id"
	GrammarKMSKeyARN       Grammar = "kms_key_arn"
	GrammarKMSAlias        Grammar = "kms_alias"
	GrammarIAMRoleARN      Grammar = "iam_role_arn"
	GrammarAccessKeyID     Grammar = "access_key_id"
	GrammarSecretAccessKey Grammar = "secret_access_key"
	GrammarInstanceID      Grammar = "ec2_instance_id"
	GrammarSecurityGroupID Grammar = "security_group_id"
	GrammarVPCID           Grammar = "vpc_id"
	GrammarSubnetID        Grammar = "subnet_id"
	GrammarImageID         Grammar = "ami_id"
	GrammarVolumeID        Grammar = "volume_id"
	GrammarSnapshotID      Grammar = "snapshot_id"
	GrammarCacheEndpoint   Grammar = "cache_endpoint"
	GrammarSecretARN       Grammar = "secretsmanager_arn"
	GrammarSSMParameter    Grammar = "ssm_parameter_name"
	GrammarKinesisARN      Grammar = "kinesis_stream_arn"
	GrammarStateMachineARN Grammar = "state_machine_arn"
	GrammarEventBusName    Grammar = "event_bus_name"
	GrammarLogGroupName    Grammar = "log_group_name"
	GrammarECRRepoURI      Grammar = "ecr_repository_uri"
)

// entry is one registered grammar: its expected-format description, its
// validity predicate, and optional region/account extractors. Extractors
// are nil for grammars that carry no such structure.
type entry struct {
	describe string
	valid    func(string) bool
	parse    func(string) (any, bool)
	region   func(string) (string, bool)
	account  func(string) (string, bool)
}

var registry = map[Grammar]entry{
	GrammarAccountID: {
		describe: "a 12-digit account ID (e.g. 123456789012)",
		valid:    IsAccountID,
	},
	GrammarRegion: {
		describe: "a region name (e.g. us-east-1)",
		valid:    IsRegion,
	},
	GrammarARN: {
		describe: "an ARN: arn:partition:service:region:account:resource",
		valid:    IsARN,
		parse:    func(s string) (any, bool) { return ParseARN(s) },
		region:   arnRegion,
		account:  arnAccount,
	},
	GrammarSQSQueueURL: {
		describe: "a queue URL: https://<service>.<region>.<domain>/<account>/<name>",
		valid:    IsQueueURL,
		parse:    func(s string) (any, bool) { return ParseQueueURL(s) },
		region:   queueURLRegion,
		account:  queueURLAccount,
	},
	GrammarSQSQueueARN: {
		describe: "a queue ARN: arn:<partition>:sqs:<region>:<account>:<name>",
		valid:    IsQueueARN,
		parse:    func(s string) (any, bool) { return ParseQueueARN(s) },
		region:   arnRegion,
		account:  arnAccount,
	},
	GrammarSNSTopicARN: {
		describe: "a topic ARN: arn:<partition>:sns:<region>:<account>:<name>",
		valid:    IsTopicARN,
		parse:    func(s string) (any, bool) { return ParseARN(s) },
		region:   arnRegion,
		account:  arnAccount,
	},
	GrammarS3BucketName: {
		describe: "a bucket name: 3-63 chars, lowercase letters, digits, dots and hyphens, no reserved prefix or suffix",
		valid:    IsBucketName,
	},
	GrammarS3BucketARN: {
		describe: "a bucket ARN: arn:<partition>:s3:::<bucket>",
		valid:    IsBucketARN,
		parse:    func(s string) (any, bool) { return ParseARN(s) },
	},
	GrammarDynamoTableName: {
		describe: "a table name: 3-255 chars of letters, digits, underscore, dot and hyphen",
		valid:    IsTableName,
	},
	GrammarDynamoTableARN: {
		describe: "a table ARN: arn:<partition>:dynamodb:<region>:<account>:table/<name>",
		valid:    IsTableARN,
		parse:    func(s string) (any, bool) { return ParseARN(s) },
		region:   arnRegion,
		account:  arnAccount,
	},
	GrammarLambdaName: {
		describe: "a function name: 1-64 chars of letters, digits, underscore and hyphen",
		valid:    IsFunctionName,
	},
	GrammarLambdaARN: {
		describe: "a function ARN: arn:<partition>:lambda:<region>:<account>:function:<name>[:qualifier]",
		valid:    IsFunctionARN,
		parse:    func(s string) (any, bool) { return ParseFunctionARN(s) },
		region:   arnRegion,
		account:  arnAccount,
	},
	GrammarKMSKeyID: {
		describe: "a key ID in UUID form (e.g. 1234abcd-12ab-34cd-56ef-1234567890ab)",
		valid:    IsKeyID,
	},
	GrammarKMSKeyARN: {
		describe: "a key ARN: arn:<partition>:kms:<region>:<account>:key/<uuid>",
		valid:    IsKeyARN,
		parse:    func(s string) (any, bool) { return ParseARN(s) },
		region:   arnRegion,
		account:  arnAccount,
	},
	GrammarKMSAlias: {
		describe: "a key alias: alias/<name>, where <name> must not use the reserved alias/aws/ prefix",
		valid:    IsKeyAlias,
	},
	GrammarIAMRoleARN: {
		describe: "a role ARN: arn:<partition>:iam::<account>:role/<path><name>",
		valid:    IsRoleARN,
		parse:    func(s string) (any, bool) { return ParseARN(s) },
		account:  arnAccount,
	},
	GrammarAccessKeyID: {
		describe: "an access key ID: 20 uppercase alphanumeric chars with a known prefix (e.g. AKIA...)",
		valid:    IsAccessKeyID,
	},
	GrammarSecretAccessKey: {
		describe: "a secret access key: 40 base64-alphabet chars",
		valid:    IsSecretAccessKey,
	},
	GrammarInstanceID: {
		describe: "an instance ID: i- followed by 8 or 17 hex chars",
		valid:    isResourceID("i"),
	},
	GrammarSecurityGroupID: {
		describe: "a security group ID: sg- followed by 8 or 17 hex chars",
		valid:    isResourceID("sg"),
	},
	GrammarVPCID: {
		describe: "a VPC ID: vpc- followed by 8 or 17 hex chars",
		valid:    isResourceID("vpc"),
	},
	GrammarSubnetID: {
		describe: "a subnet ID: subnet- followed by 8 or 17 hex chars",
		valid:    isResourceID("subnet"),
	},
	GrammarImageID: {
		describe: "an image ID: ami- followed by 8 or 17 hex chars",
		valid:    isResourceID("ami"),
	},
	GrammarVolumeID: {
		describe: "a volume ID: vol- followed by 8 or 17 hex chars",
		valid:    isResourceID("vol"),
	},
	GrammarSnapshotID: {
		describe: "a snapshot ID: snap- followed by 8 or 17 hex chars",
		valid:    isResourceID("snap"),
	},
	GrammarCacheEndpoint: {
		describe: "a cache endpoint: host[:port], default port 6379",
		valid:    IsEndpoint,
		parse:    func(s string) (any, bool) { return ParseEndpoint(s) },
	},
	GrammarSecretARN: {
		describe: "a secret ARN: arn:<partition>:secretsmanager:<region>:<account>:secret:<name>-<6 char suffix>",
		valid:    IsSecretARN,
		parse:    func(s string) (any, bool) { return ParseARN(s) },
		region:   arnRegion,
		account:  arnAccount,
	},
	GrammarSSMParameter: {
		describe: "a parameter name: /-separated path of letters, digits, dot, hyphen and underscore",
		valid:    IsParameterName,
	},
	GrammarKinesisARN: {
		describe: "a stream ARN: arn:<partition>:kinesis:<region>:<account>:stream/<name>",
		valid:    IsStreamARN,
		parse:    func(s string) (any, bool) { return ParseARN(s) },
		region:   arnRegion,
		account:  arnAccount,
	},
	GrammarStateMachineARN: {
		describe: "a state machine ARN: arn:<partition>:states:<region>:<account>:stateMachine:<name>",
		valid:    IsStateMachineARN,
		parse:    func(s string) (any, bool) { return ParseARN(s) },
		region:   arnRegion,
		account:  arnAccount,
	},
	GrammarEventBusName: {
		describe: "an event bus name: 1-256 chars of letters, digits, dot, hyphen, underscore, or slash for partner buses",
		valid:    IsEventBusName,
	},
	GrammarLogGroupName: {
		describe: "a log group name: 1-512 chars of letters, digits, underscore, hyphen, slash, dot and hash",
		valid:    IsLogGroupName,
	},
	GrammarECRRepoURI: {
		describe: "a repository URI: <account>.dkr.ecr.<region>.<domain>/<name>",
		valid:    IsRepositoryURI,
		parse:    func(s string) (any, bool) { return ParseRepositoryURI(s) },
		region:   repositoryURIRegion,
		account:  repositoryURIAccount,
	},
}

// Known reports whether g names a grammar in the catalog.
func Known(g Grammar) bool {
	_, ok := registry[g]
	return ok
}

// Grammars returns all grammar tags in the catalog, sorted by tag.
func Grammars() []Grammar {
	out := make([]Grammar, 0, len(registry))
	for g := range registry {
		out = append(out, g)
	}
	sortGrammars(out)
	return out
}

// IsValid reports whether value matches grammar g. Unknown grammars
// never match.
func IsValid(g Grammar, value string) bool {
	e, ok := registry[g]
	if !ok {
		return false
	}
	return e.valid(value)
}

// Describe returns a human-readable description of the format grammar g
// expects, suitable for error messages.
func Describe(g Grammar) string {
	e, ok := registry[g]
	if !ok {
		return "an unknown identifier format"
	}
	return e.describe
}

// Parse returns the structured form of value under grammar g. Grammars
// with extractable substructure return their typed parse result; the
// rest return the validated string unchanged. The second result is
// false when value does not match the grammar.
func Parse(g Grammar, value string) (any, bool) {
	e, ok := registry[g]
	if !ok || !e.valid(value) {
		return nil, false
	}
	if e.parse != nil {
		return e.parse(value)
	}
	return value, true
}

// ExtractRegion returns the region embedded in value according to
// grammar g. The second result is false when the grammar carries no
// region structure or value does not match the grammar.
func ExtractRegion(g Grammar, value string) (string, bool) {
	e, ok := registry[g]
	if !ok || e.region == nil || !e.valid(value) {
		return "", false
	}
	return e.region(value)
}

// ExtractAccount returns the account ID embedded in value according to
// grammar g. The second result is false when the grammar carries no
// account structure or value does not match the grammar.
func ExtractAccount(g Grammar, value string) (string, bool) {
	e, ok := registry[g]
	if !ok || e.account == nil || !e.valid(value) {
		return "", false
	}
	return e.account(value)
}

// extractsRegion reports whether grammar g registers a region extractor.
func extractsRegion(g Grammar) bool {
	e, ok := registry[g]
	return ok && e.region != nil
}

// extractsAccount reports whether grammar g registers an account extractor.
func extractsAccount(g Grammar) bool {
	e, ok := registry[g]
	return ok && e.account != nil
}

func sortGrammars(gs []Grammar) {
	sort.Slice(gs, func(i, j int) bool { return gs[i] < gs[j] })
}
