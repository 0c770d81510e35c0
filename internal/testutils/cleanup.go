package testutils

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"
)

// RunWithCleanup runs m and purges the shared Postgres container afterwards,
// including when the run is interrupted. Use it from a package's TestMain:
//
//	func TestMain(m *testing.M) { os.Exit(testutils.RunWithCleanup(m, "repository")) }
func RunWithCleanup(m *testing.M, label string) int {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Printf("%s tests interrupted, cleaning up Docker containers", label)
		CleanupSharedContainer()
		os.Exit(1)
	}()

	log.Printf("Starting %s tests", label)
	code := m.Run()
	CleanupSharedContainer()
	return code
}
