package identifier

import "testing"

const scopedQueueARN = "arn:aws:sqs:us-east-1:123456789012:jobs"

func TestCheckScope_Match(t *testing.T) {
	got := CheckScope(GrammarSQSQueueARN, scopedQueueARN, Scope{
		Region:  "us-east-1",
		Account: "123456789012",
	})
	if len(got) != 0 {
		t.Fatalf("mismatches = %v, want none", got)
	}
}

func TestCheckScope_RegionBeforeAccount(t *testing.T) {
	got := CheckScope(GrammarSQSQueueARN, scopedQueueARN, Scope{
		Region:  "eu-west-1",
		Account: "999999999999",
	})
	if len(got) != 2 {
		t.Fatalf("mismatches = %d, want 2", len(got))
	}
	if got[0].Dimension != "Region" {
		t.Errorf("first dimension = %s, want Region", got[0].Dimension)
	}
	if got[0].Expected != "eu-west-1" || got[0].Actual != "us-east-1" {
		t.Errorf("region mismatch = %+v", got[0])
	}
	if got[1].Dimension != "Account" {
		t.Errorf("second dimension = %s, want Account", got[1].Dimension)
	}
	if got[1].Expected != "999999999999" || got[1].Actual != "123456789012" {
		t.Errorf("account mismatch = %+v", got[1])
	}
}

func TestCheckScope_SingleDimension(t *testing.T) {
	got := CheckScope(GrammarSQSQueueARN, scopedQueueARN, Scope{Region: "eu-west-1"})
	if len(got) != 1 || got[0].Dimension != "Region" {
		t.Fatalf("mismatches = %v, want one region mismatch", got)
	}

	got = CheckScope(GrammarSQSQueueARN, scopedQueueARN, Scope{Account: "999999999999"})
	if len(got) != 1 || got[0].Dimension != "Account" {
		t.Fatalf("mismatches = %v, want one account mismatch", got)
	}
}

// Region expectations on grammars that carry no region are silently
// ignored rather than reported as mismatches.
func TestCheckScope_NonExtractableDimension(t *testing.T) {
	roleARN := "arn:aws:iam::123456789012:role/deploy"

	got := CheckScope(GrammarIAMRoleARN, roleARN, Scope{Region: "us-east-1"})
	if len(got) != 0 {
		t.Fatalf("mismatches = %v, want none for region on a role ARN", got)
	}

	// The account dimension still applies.
	got = CheckScope(GrammarIAMRoleARN, roleARN, Scope{
		Region:  "us-east-1",
		Account: "999999999999",
	})
	if len(got) != 1 || got[0].Dimension != "Account" {
		t.Fatalf("mismatches = %v, want one account mismatch", got)
	}
}

func TestCheckScope_NoExtractorsAtAll(t *testing.T) {
	got := CheckScope(GrammarS3BucketName, "my-bucket", Scope{
		Region:  "us-east-1",
		Account: "123456789012",
	})
	if len(got) != 0 {
		t.Fatalf("mismatches = %v, want none", got)
	}
}

func TestScopeIsZero(t *testing.T) {
	if !(Scope{}).IsZero() {
		t.Error("empty scope should be zero")
	}
	if (Scope{Region: "us-east-1"}).IsZero() {
		t.Error("region-constrained scope should not be zero")
	}
	if (Scope{Account: "123456789012"}).IsZero() {
		t.Error("account-constrained scope should not be zero")
	}
}
