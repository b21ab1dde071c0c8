package main

import (
	"flag"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/sappo/libsimilarity/hstring"
)

func contextWithFlags(t *testing.T, g, d string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("g", g, "")
	set.String("d", d, "")
	return cli.NewContext(nil, set, nil)
}

func TestPlanFromFlagsBytes(t *testing.T) {
	c := contextWithFlags(t, "bytes", " ")
	plan, err := planFromFlags(c)
	if err != nil {
		t.Fatal(err)
	}
	if plan.Granularity != hstring.Byte {
		t.Fatalf("got %v, want Byte", plan.Granularity)
	}
}

func TestPlanFromFlagsTokens(t *testing.T) {
	c := contextWithFlags(t, "tokens", ",")
	plan, err := planFromFlags(c)
	if err != nil {
		t.Fatal(err)
	}
	if plan.Granularity != hstring.Token {
		t.Fatalf("got %v, want Token", plan.Granularity)
	}
	if plan.Delims == nil || !plan.Delims.Initialized() {
		t.Fatal("expected initialized delimiter table")
	}
	if !plan.Delims.Is(',') {
		t.Fatal("expected ',' registered as a delimiter")
	}
}

func TestPlanFromFlagsUnknownGranularity(t *testing.T) {
	c := contextWithFlags(t, "nibbles", "")
	if _, err := planFromFlags(c); err == nil {
		t.Fatal("expected error for unknown granularity")
	}
}
