package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	once sync.Once
	base *zap.Logger
)

// Get returns the process-wide logger, initializing it on first use.
// APP_ENV=production switches to the JSON production config via Init.
func Get() *zap.Logger {
	once.Do(func() {
		if base == nil {
			l, err := zap.NewDevelopment()
			if err != nil {
				l = zap.NewNop()
			}
			base = l
		}
	})
	return base
}

// Init installs a preconfigured logger. Must be called before the first Get.
func Init(production bool) {
	once.Do(func() {
		var err error
		if production {
			base, err = zap.NewProduction()
		} else {
			base, err = zap.NewDevelopment()
		}
		if err != nil {
			base = zap.NewNop()
		}
	})
}
