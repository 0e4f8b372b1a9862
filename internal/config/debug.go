package config

import "os"

func IsDebug() bool {
	return os.Getenv("FOOTIX_DEBUG") == "1"
}
