package lqueue

import (
	"log/slog"

	"github.com/neilotoole/sq/libsq/core/lg"
)

func (c *Chain) getLog() *slog.Logger {
	if c.log == nil {
		return lg.Discard()
	}
	return c.log
}
