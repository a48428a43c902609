package testutils

import (
	"os"
	"os/signal"
	"syscall"
	"testing"

	"xgrowth-backend/internal/logger"
)

// RunMain runs a package's tests and purges the shared database container
// afterwards, also when the run is interrupted.
func RunMain(m *testing.M) int {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	go func() {
		if _, ok := <-sig; ok {
			logger.New().Warn("Test run interrupted, purging containers")
			CleanupSharedContainer()
			os.Exit(1)
		}
	}()

	code := m.Run()
	CleanupSharedContainer()
	return code
}
