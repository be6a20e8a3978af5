package main

import (
	"os"
	"testing"

	"github.com/joho/godotenv"
)

// TestMain loads .env before the suite so local runs pick up overrides.
// A missing file is fine, CI runs without one.
func TestMain(m *testing.M) {
	_ = godotenv.Load()
	os.Exit(m.Run())
}
