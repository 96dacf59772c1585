package logger

import (
	"ot-tracking-service/internal/pkg/constvars"
	"os"

	"github.com/sirupsen/logrus"
)

// InitLogrus configures the process lifecycle logger.
func InitLogrus(env string) {
	switch env {
	case constvars.AppEnvProduction:
		logrus.SetFormatter(&logrus.JSONFormatter{})
		file, err := os.OpenFile("logrus.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			logrus.SetOutput(file)
		} else {
			logrus.Info("Failed to log to file, using default stderr")
		}
	default:
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
