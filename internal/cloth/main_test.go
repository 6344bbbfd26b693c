package cloth

import (
	"os"
	"testing"

	"github.com/Faultbox/clothsim/internal/logger"
)

func TestMain(m *testing.M) {
	// Quiet logger for tests
	if err := logger.InitWithFileConfig("error", logger.FileConfig{}, false); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}
