package signet

import "go.uber.org/zap"

// Config holds global configuration for the ECS core
var Config config = config{}

type config struct {
	log *zap.Logger
}

// SetLogger routes the core's debug logging to l. A nil logger silences it.
func (c *config) SetLogger(l *zap.Logger) {
	c.log = l
}

func (c *config) logger() *zap.Logger {
	if c.log == nil {
		return zap.NewNop()
	}
	return c.log
}
