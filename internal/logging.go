package internal

import (
	"os"

	"github.com/sirupsen/logrus"
)

// InitLogging configures the process-wide logger.
func InitLogging() {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
