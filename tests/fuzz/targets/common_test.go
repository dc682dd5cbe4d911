package targets

import (
	"os"
	"runtime"
)

// Cap fuzz parallelism at four workers unless GOMAXPROCS is set explicitly.
func init() {
	if _, ok := os.LookupEnv("GOMAXPROCS"); ok {
		return
	}
	if runtime.NumCPU() > 4 && runtime.GOMAXPROCS(0) > 4 {
		runtime.GOMAXPROCS(4)
	}
}
