package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
	"github.com/spf13/cobra"

	meeussunmoon "github.com/zyo00ody/MeeusSunMoon"
)

var positionCmd = &cobra.Command{
	Use:   "position",
	Short: "Solar position quantities at an instant",
	Long: `Prints the solar pipeline at one instant: Julian day, ΔT, apparent
longitude, equatorial coordinates, obliquity, nutation and apparent
sidereal time at Greenwich. Useful for checking the numbers behind an
event time.`,
	RunE: runPosition,
}

func init() {
	positionCmd.Flags().String("time", "", "instant (RFC3339 or YYYY-MM-DDTHH:MM, default now)")
	positionCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(positionCmd)
}

type positionJSON struct {
	Time                time.Time `json:"time"`
	JulianDay           float64   `json:"julian_day"`
	DeltaTSeconds       float64   `json:"delta_t_seconds"`
	ApparentLongitude   float64   `json:"apparent_longitude_degrees"`
	RightAscension      float64   `json:"right_ascension_degrees"`
	Declination         float64   `json:"declination_degrees"`
	TrueObliquity       float64   `json:"true_obliquity_degrees"`
	NutationInLongitude float64   `json:"nutation_in_longitude_degrees"`
	NutationInObliquity float64   `json:"nutation_in_obliquity_degrees"`
	SiderealTime        float64   `json:"sidereal_time_degrees"`
}

func runPosition(cmd *cobra.Command, args []string) error {
	zone, err := resolveZone()
	if err != nil {
		return err
	}
	at, err := parseInstant(cmd, zone)
	if err != nil {
		return err
	}

	pos, err := meeussunmoon.SunPositionAt(at)
	if err != nil {
		return err
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(positionJSON{
			Time:                at,
			JulianDay:           pos.JulianDay,
			DeltaTSeconds:       pos.DeltaT,
			ApparentLongitude:   pos.ApparentLongitude,
			RightAscension:      pos.RightAscension,
			Declination:         pos.Declination,
			TrueObliquity:       pos.TrueObliquity,
			NutationInLongitude: pos.NutationInLongitude,
			NutationInObliquity: pos.NutationInObliquity,
			SiderealTime:        pos.SiderealTime,
		}); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	}

	fmt.Println(titleStyle.Render("Sun at " + at.Format(time.RFC3339)))
	fmt.Println()

	row := func(label, value string) {
		fmt.Printf("  %s %s\n", labelStyle.Render(fmt.Sprintf("%-22s", label)), value)
	}
	row("Julian day", fmt.Sprintf("%.5f", pos.JulianDay))
	row("ΔT", fmt.Sprintf("%.1f s", pos.DeltaT))
	row("Apparent longitude", fmt.Sprintf("%.5f°", pos.ApparentLongitude))
	row("Right ascension", fmt.Sprintf("%v", sexa.FmtRA(unit.RAFromDeg(pos.RightAscension))))
	row("Declination", fmt.Sprintf("%v", sexa.FmtAngle(unit.AngleFromDeg(pos.Declination))))
	row("True obliquity", fmt.Sprintf("%v", sexa.FmtAngle(unit.AngleFromDeg(pos.TrueObliquity))))
	row("Nutation in longitude", fmt.Sprintf("%+.3f″", pos.NutationInLongitude*3600))
	row("Nutation in obliquity", fmt.Sprintf("%+.3f″", pos.NutationInObliquity*3600))
	row("Sidereal time", fmt.Sprintf("%v (%.5f°)",
		sexa.FmtRA(unit.RAFromDeg(pos.SiderealTime)), pos.SiderealTime))
	return nil
}
