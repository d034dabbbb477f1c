/*
Package schema defines the declarative rules that environment variables
are validated against.

A schema maps variable names to items. Each item declares a type (a
primitive or an identifier grammar tag), whether the variable is
required, an optional typed default, and type-specific constraints.

# Schema Definition

A schema in Go:

	s := schema.Schema{
		"PORT":  {Type: schema.TypeNumber, Default: 3000},
		"QUEUE": {Type: "sqs_queue_url", Required: true},
		"MODE":  {Type: schema.TypeString, Enum: []string{"dev", "prod"}},
		"TOKEN": {Type: schema.TypeString, Required: true, Sensitive: true},
	}

or the same schema in YAML:

	PORT:  { type: number, default: 3000 }
	QUEUE: { type: sqs_queue_url, required: true }
	MODE:  { type: string, enum: [dev, prod] }
	TOKEN: { type: string, required: true, sensitive: true }

# Types

Primitive types:

  - string:  Text value
  - number:  Numeric value (base-10, parsed to float64)
  - bool:    Boolean (true/1/yes vs false/0/no/empty, case-insensitive)
  - strings: Delimited list of strings (separator defaults to ",")
  - numbers: Delimited list of numbers
  - json:    Arbitrary structured data (YAML or JSON)

Any grammar tag from core/identifier is also a valid type, e.g. arn,
sqs_queue_url, s3_bucket_name, ec2_instance_id, cache_endpoint. Grammar
items may declare a scope expectation:

	QUEUE:
	  type: sqs_queue_url
	  required: true
	  scope: { region: us-east-1, account: "123456789012" }

# Options

Shared options: required, default, sensitive, description. Sensitive
items have their received values masked in every error message.

Type-specific options: min/max (number), enum/pattern/min_length/
max_length (string), separator/min_length/max_length (lists),
scope (identifier grammars).

# Parsing

Load schemas from YAML:

	s, err := schema.ParseFile("schema.yaml")

Schemas are validated on parse. Unknown type tags, enums on non-string
items, and defaults that do not match their declared type return an
error.
*/
package schema
