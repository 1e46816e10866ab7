// Command sunmoon computes sun and moon events from the command line: rise,
// set and twilight tables for a date, lunar phase calendars, the raw solar
// position at an instant, and an interactive month almanac.
//
// Observing sites come from --lat/--lon/--tz or from a named place in the
// TOML catalog managed by the places subcommand. Defaults live in
// .sunmoon.yaml (current directory or home) and SUNMOON_* environment
// variables.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zyo00ody/MeeusSunMoon/internal/places"
)

var rootCmd = &cobra.Command{
	Use:   "sunmoon",
	Short: "Sunrise, sunset and lunar phase calculator",
	Long: `Sunmoon computes sunrise, sunset, twilight, solar position and the
principal lunar phases with closed-form series: no ephemeris files and no
network. Event times are good to about a minute.`,
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .sunmoon.yaml)")
	rootCmd.PersistentFlags().String("catalog", "", "place catalog file (default ~/"+places.DefaultPath+")")
	rootCmd.PersistentFlags().String("place", "", "place name from the catalog")
	rootCmd.PersistentFlags().Float64("lat", 0, "latitude in degrees (north positive)")
	rootCmd.PersistentFlags().Float64("lon", 0, "longitude in degrees (east positive, west negative)")
	rootCmd.PersistentFlags().String("tz", "", "IANA zone for input and output times")
	rootCmd.PersistentFlags().Bool("round", false, "round event times to the nearest minute")
	rootCmd.PersistentFlags().Bool("placeholders", false, "show 06:00/18:00 placeholder times on polar days")

	_ = viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog"))
	_ = viper.BindPFlag("place", rootCmd.PersistentFlags().Lookup("place"))
	_ = viper.BindPFlag("lat", rootCmd.PersistentFlags().Lookup("lat"))
	_ = viper.BindPFlag("lon", rootCmd.PersistentFlags().Lookup("lon"))
	_ = viper.BindPFlag("tz", rootCmd.PersistentFlags().Lookup("tz"))
	_ = viper.BindPFlag("round", rootCmd.PersistentFlags().Lookup("round"))
	_ = viper.BindPFlag("placeholders", rootCmd.PersistentFlags().Lookup("placeholders"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".sunmoon")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("SUNMOON")
	viper.AutomaticEnv()

	viper.SetDefault("midnight_sun_marker", "‡")
	viper.SetDefault("polar_night_marker", "†")

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// catalogPath resolves the place catalog location from the flag, the config
// file, or the home-directory default.
func catalogPath() (string, error) {
	if p := viper.GetString("catalog"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, places.DefaultPath), nil
}

func loadCatalog() (*places.Catalog, string, error) {
	path, err := catalogPath()
	if err != nil {
		return nil, "", err
	}
	c, err := places.Load(path)
	if err != nil {
		return nil, "", err
	}
	return c, path, nil
}
