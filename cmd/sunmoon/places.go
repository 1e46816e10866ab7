package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zyo00ody/MeeusSunMoon/internal/places"
)

var placesCmd = &cobra.Command{
	Use:   "places",
	Short: "Manage the named place catalog",
	Long: `The places command group maintains the TOML catalog of named observing
sites that --place and the almanac read from. The catalog file is plain
TOML and safe to edit by hand; the almanac picks up edits live.`,
}

func init() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the catalog's places",
		RunE:  runPlacesList,
	}

	addCmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add or update a place",
		Long: `Adds a place under the given name, replacing any existing entry with
that name. Coordinates come from --lat/--lon and the optional zone
from --tz:

  sunmoon places add Berlin --lat 52.52 --lon 13.405 --tz Europe/Berlin`,
		Args: cobra.ExactArgs(1),
		RunE: runPlacesAdd,
	}

	removeCmd := &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a place",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlacesRemove,
	}

	placesCmd.AddCommand(listCmd)
	placesCmd.AddCommand(addCmd)
	placesCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(placesCmd)
}

func runPlacesList(cmd *cobra.Command, args []string) error {
	catalog, path, err := loadCatalog()
	if err != nil {
		return err
	}
	if len(catalog.Places) == 0 {
		fmt.Println(dimStyle.Render("no places in " + path))
		return nil
	}

	fmt.Println(titleStyle.Render("Places in " + path))
	for _, name := range catalog.Names() {
		p, _ := catalog.Find(name)
		zone := p.Zone
		if zone == "" {
			zone = "UTC"
		}
		fmt.Printf("  %-16s %9.4f %10.4f  %s\n", p.Name, p.Lat, p.Lon, dimStyle.Render(zone))
	}
	return nil
}

func runPlacesAdd(cmd *cobra.Command, args []string) error {
	catalog, path, err := loadCatalog()
	if err != nil {
		return err
	}

	p := places.Place{
		Name: args[0],
		Lat:  viper.GetFloat64("lat"),
		Lon:  viper.GetFloat64("lon"),
		Zone: viper.GetString("tz"),
	}
	if err := p.Validate(); err != nil {
		return err
	}

	catalog.Add(p)
	if err := places.Save(path, catalog); err != nil {
		return err
	}
	fmt.Printf("added %s (%.4f, %.4f) to %s\n", p.Name, p.Lat, p.Lon, path)
	return nil
}

func runPlacesRemove(cmd *cobra.Command, args []string) error {
	catalog, path, err := loadCatalog()
	if err != nil {
		return err
	}
	if !catalog.Remove(args[0]) {
		return fmt.Errorf("place %q is not in the catalog %s", args[0], path)
	}
	if err := places.Save(path, catalog); err != nil {
		return err
	}
	fmt.Printf("removed %s from %s\n", args[0], path)
	return nil
}
