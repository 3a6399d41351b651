// conf/env.go: access credential loading for the map renderer

package conf

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// MapboxTokenEnv is the environment variable holding the map access token.
const MapboxTokenEnv = "MAPBOX_TOKEN"

// MapboxToken resolves the opaque map access credential. Resolution order:
// MAPBOX_TOKEN from the environment (a .env file in the working directory is
// loaded first if present), then the configured token file. An empty result
// is not an error, the map view degrades without a token.
func (s *Settings) MapboxToken() string {
	// .env support, ignored when the file does not exist
	_ = godotenv.Load(".env")

	if token := strings.TrimSpace(os.Getenv(MapboxTokenEnv)); token != "" {
		return token
	}

	if s.Map.TokenFile != "" {
		data, err := os.ReadFile(s.Map.TokenFile)
		if err == nil {
			return strings.TrimSpace(string(data))
		}
	}

	return ""
}
