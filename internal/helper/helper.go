package helper

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

func ResolveEnv(in string) string {
	if strings.HasPrefix(in, "ENV:") {
		return os.Getenv(in[4:])
	}
	return in
}

func ResolveEnvList(in []string) []string {
	if in == nil {
		return nil
	}

	out := make([]string, len(in))
	for i := range in {
		out[i] = ResolveEnv(in[i])
	}
	return out
}

func SetDefaultStringIfEmpty(value, defaultValue, field, section string) string {
	if len(value) == 0 {
		log.Infof("No %s specified for %s or env variable not found, assuming default %q", field, section, defaultValue)
		return defaultValue
	}
	return value
}
