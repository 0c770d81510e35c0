package testutils

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	os.Exit(RunWithCleanup(m, "testutils"))
}
