package worker

import (
	"os"
	"testing"

	"carmate/pkg/logger"
)

func TestMain(m *testing.M) {
	// initialize default logger to avoid nil pointer in code under test
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}
