package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"birdcount-go/cmd/realtime"
	"birdcount-go/cmd/stats"
	"birdcount-go/internal/conf"
)

// RootCommand creates and returns the root command
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "birdcount",
		Short: "Monthly bird count dashboard and statistics",
	}

	setupFlags(rootCmd, settings)

	subcommands := []*cobra.Command{
		realtime.Command(settings),
		stats.Command(settings),
	}
	rootCmd.AddCommand(subcommands...)

	return rootCmd
}

// setupFlags defines global flags shared by all subcommands and binds them
// to the viper configuration keys so command-line arguments take precedence.
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings) {
	rootCmd.PersistentFlags().BoolVarP(&settings.Debug, "debug", "d", viper.GetBool("debug"), "Enable debug output")
	rootCmd.PersistentFlags().StringVar(&settings.Dataset.CSVPath, "csv", viper.GetString("dataset.csvpath"), "Path to the monthly count CSV file")
	rootCmd.PersistentFlags().StringVar(&settings.Dataset.GeoJSONPath, "geojson", viper.GetString("dataset.geojsonpath"), "Path to the survey area GeoJSON file")

	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		cobra.CheckErr(err)
	}
	if err := viper.BindPFlag("dataset.csvpath", rootCmd.PersistentFlags().Lookup("csv")); err != nil {
		cobra.CheckErr(err)
	}
	if err := viper.BindPFlag("dataset.geojsonpath", rootCmd.PersistentFlags().Lookup("geojson")); err != nil {
		cobra.CheckErr(err)
	}
}
