package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFAQFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "faqs.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing FAQ file: %v", err)
	}
	return path
}

func TestLoadFAQsPreservesFileOrder(t *testing.T) {
	path := writeFAQFile(t, `{"faqs":[
		{"question":"First","answer":"a1","keywords":["one"]},
		{"question":"Second","answer":"a2"}
	]}`)

	store, err := LoadFAQs(path)
	if err != nil {
		t.Fatalf("LoadFAQs() error = %v", err)
	}

	faqs := store.All()
	if len(faqs) != 2 {
		t.Fatalf("len(faqs) = %d, want 2", len(faqs))
	}
	if faqs[0].Question != "First" || faqs[1].Question != "Second" {
		t.Fatalf("order = %q, %q, want file order", faqs[0].Question, faqs[1].Question)
	}
	if len(faqs[1].Keywords) != 0 {
		t.Fatalf("record without keywords decoded %v", faqs[1].Keywords)
	}
}

func TestLoadFAQsMissingFileYieldsEmptyCorpus(t *testing.T) {
	store, err := LoadFAQs(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadFAQs(missing) error = %v, want nil", err)
	}
	if len(store.All()) != 0 {
		t.Fatalf("len = %d, want empty corpus", len(store.All()))
	}
	if store.Context() != "" {
		t.Fatalf("Context() = %q, want empty", store.Context())
	}
}

func TestLoadFAQsRejectsMalformedJSON(t *testing.T) {
	path := writeFAQFile(t, `{"faqs": [`)
	if _, err := LoadFAQs(path); err == nil {
		t.Fatal("LoadFAQs() error = nil, want parse error")
	}
}

func TestFAQStoreContext(t *testing.T) {
	path := writeFAQFile(t, `{"faqs":[
		{"question":"First","answer":"a1"},
		{"question":"Second","answer":"a2"}
	]}`)
	store, err := LoadFAQs(path)
	if err != nil {
		t.Fatalf("LoadFAQs() error = %v", err)
	}

	got := store.Context()
	want := "Q: First\nA: a1\nQ: Second\nA: a2"
	if got != want {
		t.Fatalf("Context() = %q, want %q", got, want)
	}
	if strings.Count(got, "Q: ") != 2 {
		t.Fatalf("Context() has %d questions, want 2", strings.Count(got, "Q: "))
	}
}
