package infra

import "os"

// OSEnv reads the environment of the current process.
type OSEnv struct{}

func (OSEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnv is a fixed environment. A key mapped to "" is set but empty.
type MapEnv map[string]string

func (x MapEnv) LookupEnv(key string) (string, bool) {
	v, ok := x[key]
	return v, ok
}
