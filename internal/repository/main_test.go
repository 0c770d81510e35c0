//go:build integration
// +build integration

package repository

import (
	"os"
	"testing"

	"accommodation-portal-backend/internal/testutils"
)

func TestMain(m *testing.M) {
	os.Exit(testutils.RunWithCleanup(m, "repository"))
}
