package config

import "os"

func IsDebug() bool {
	return os.Getenv("MIND_DEBUG") == "1"
}
