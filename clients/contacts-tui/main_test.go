package main

import (
	"testing"
	"time"

	"github.com/alecthomas/kong"
)

func parse(t *testing.T, args ...string) CLI {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := parser.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return cli
}

func TestDefaults(t *testing.T) {
	cli := parse(t)
	if cli.APIURL != "http://localhost:5000/api" || cli.PageSize != 10 || cli.Timeout != 10*time.Second {
		t.Errorf("unexpected defaults: %+v", cli)
	}
	if cli.clientConfig().MTLSCertificatePaths != nil {
		t.Error("mTLS must be off without certificates")
	}
}

func TestFlags(t *testing.T) {
	cli := parse(t, "--api-url", "http://contacts:8080/v1", "--page-size", "25", "--timeout", "3s")
	if cli.APIURL != "http://contacts:8080/v1" || cli.PageSize != 25 || cli.Timeout != 3*time.Second {
		t.Errorf("unexpected flags: %+v", cli)
	}
}

func TestPageSizeMustBeOffered(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := parser.Parse([]string{"--page-size", "7"}); err == nil {
		t.Error("expected error for page size 7")
	}
}
