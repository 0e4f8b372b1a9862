package test

import (
	"os"
	"path/filepath"
	"testing"
)

const KnowledgeFixture = `entries:
  - question: "HOW ARE YOU"
    answer: "I'M GREAT THANK YOU!"
  - question: "WHAT TIME IS IT"
    answer: "TIME TO GET A WATCH"
  - question: "WHO ARE YOU"
    answer: "I AM FOOTIX"
`

// WriteKnowledgeFile writes KnowledgeFixture to a temporary knowledge.yaml
// and returns its path.
func WriteKnowledgeFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "knowledge.yaml")
	if err := os.WriteFile(path, []byte(KnowledgeFixture), 0644); err != nil {
		t.Fatalf("failed to write knowledge fixture: %v", err)
	}
	return path
}

// RedisAddr returns the address of a test Redis server or skips the test.
func RedisAddr(t *testing.T) string {
	t.Helper()

	addr := os.Getenv("FOOTIX_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("FOOTIX_TEST_REDIS_ADDR not set")
	}
	return addr
}
