package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
	"go.viam.com/test"
)

func TestObservedTestLogger(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)
	logger.Infow("wrote normal map", "path", "out.png")
	logger.Debugf("stage %s", "gradient")

	test.That(t, logs.Len(), test.ShouldEqual, 2)
	entry := logs.All()[0]
	test.That(t, entry.Message, test.ShouldEqual, "wrote normal map")
	test.That(t, entry.ContextMap()["path"], test.ShouldEqual, "out.png")
	test.That(t, logs.All()[1].Message, test.ShouldEqual, "stage gradient")
}

func TestSetLevel(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)
	logger.SetLevel(zapcore.InfoLevel)
	test.That(t, logger.Level(), test.ShouldEqual, zapcore.InfoLevel)

	logger.Debug("dropped")
	logger.Warn("kept")
	test.That(t, logs.Len(), test.ShouldEqual, 1)
	test.That(t, logs.All()[0].Message, test.ShouldEqual, "kept")
}

func TestSublogger(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)
	sub := logger.Sublogger("encoder")
	sub.Info("hello")

	test.That(t, logs.Len(), test.ShouldEqual, 1)
	test.That(t, logs.All()[0].LoggerName, test.ShouldEqual, "encoder")

	sub.SetLevel(zapcore.ErrorLevel)
	test.That(t, logger.Level(), test.ShouldEqual, zapcore.ErrorLevel)
}

func TestBlankLogger(t *testing.T) {
	logger := NewBlankLogger("blank")
	logger.Error("nothing happens")
	test.That(t, logger.Sync(), test.ShouldBeNil)
}

func TestNewLoggerConfig(t *testing.T) {
	config := NewLoggerConfig()
	test.That(t, config.Encoding, test.ShouldEqual, "console")
	test.That(t, config.DisableStacktrace, test.ShouldBeTrue)
	test.That(t, config.Level.Level(), test.ShouldEqual, zapcore.InfoLevel)
}
