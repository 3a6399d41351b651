// conf/defaults.go default values for settings
package conf

import (
	"github.com/spf13/viper"
)

// Sets default values for the configuration.
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("main.name", "birdcount")
	viper.SetDefault("main.log.enabled", true)
	viper.SetDefault("main.log.path", "birdcount.log")
	viper.SetDefault("main.log.maxsize", 100)
	viper.SetDefault("main.log.maxbackups", 3)
	viper.SetDefault("main.log.maxage", 28)

	viper.SetDefault("dataset.csvpath", "data/count_data.csv")
	viper.SetDefault("dataset.geojsonpath", "data/areas.json")

	viper.SetDefault("stats.population", false)

	// Viewport defaults match the Squamish survey site.
	viper.SetDefault("map.center.latitude", 49.7)
	viper.SetDefault("map.center.longitude", -123.15)
	viper.SetDefault("map.zoom", 12.5)
	viper.SetDefault("map.style", "satellite-streets")
	viper.SetDefault("map.tokenfile", "")

	viper.SetDefault("webserver.enabled", true)
	viper.SetDefault("webserver.port", "8080")
	viper.SetDefault("webserver.debug", false)
	viper.SetDefault("webserver.log.enabled", true)
	viper.SetDefault("webserver.log.path", "webui.log")
	viper.SetDefault("webserver.log.maxsize", 100)
	viper.SetDefault("webserver.log.maxbackups", 3)
	viper.SetDefault("webserver.log.maxage", 28)

	viper.SetDefault("telemetry.enabled", false)
	viper.SetDefault("telemetry.listen", "0.0.0.0:8090")
}
