package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	autotranslate "github.com/goliatone/go-cms-autotranslate"
)

type stubModule struct {
	seeds   []autotranslate.SeedEntityCommand
	ensures []autotranslate.EnsureTranslationCommand
	closed  int
}

func (s *stubModule) Seed(_ context.Context, cmd autotranslate.SeedEntityCommand) error {
	s.seeds = append(s.seeds, cmd)
	return nil
}

func (s *stubModule) EnsureTranslation(_ context.Context, cmd autotranslate.EnsureTranslationCommand) error {
	s.ensures = append(s.ensures, cmd)
	if cmd.Result != nil {
		cmd.Result.Target = autotranslate.Target{Kind: autotranslate.ResourceNode, EntityID: cmd.EntityID, Locale: "de"}
		cmd.Result.Outcome = autotranslate.OutcomeCreated
	}
	return nil
}

func (s *stubModule) Close() error {
	s.closed++
	return nil
}

func withStub(t *testing.T) *stubModule {
	t.Helper()
	original := moduleBuilder
	t.Cleanup(func() { moduleBuilder = original })

	stub := &stubModule{}
	moduleBuilder = func(context.Context) (moduleRunner, error) {
		return stub, nil
	}
	return stub
}

func TestRunSeed(t *testing.T) {
	stub := withStub(t)

	err := run(context.Background(), []string{"seed", "-kind", "taxonomy_term", "-id", "7", "-bundle", "tags", "-label", "Golang"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(stub.seeds) != 1 {
		t.Fatalf("expected one seed call, got %d", len(stub.seeds))
	}
	got := stub.seeds[0]
	if got.Kind != "taxonomy_term" || got.EntityID != "7" || got.Label != "Golang" || got.Locale != "en" {
		t.Fatalf("unexpected seed command %+v", got)
	}
	if stub.closed != 1 {
		t.Fatalf("expected module closed once, got %d", stub.closed)
	}
}

func TestRunEnsurePrintsOutcome(t *testing.T) {
	stub := withStub(t)

	var out bytes.Buffer
	if err := run(context.Background(), []string{"ensure", "-id", "42", "-locale", "de"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(stub.ensures) != 1 || stub.ensures[0].Kind != "node" {
		t.Fatalf("unexpected ensure calls %+v", stub.ensures)
	}

	var payload map[string]string
	if err := json.Unmarshal(out.Bytes(), &payload); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if payload["outcome"] != "created" || payload["entity_id"] != "42" || payload["locale"] != "de" {
		t.Fatalf("unexpected output %v", payload)
	}
}

func TestRunRejectsUnknownSubcommand(t *testing.T) {
	withStub(t)
	if err := run(context.Background(), []string{"purge"}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for unknown subcommand")
	}
	if err := run(context.Background(), nil, &bytes.Buffer{}); err == nil {
		t.Fatal("expected usage error")
	}
}
