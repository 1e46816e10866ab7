package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	meeussunmoon "github.com/zyo00ody/MeeusSunMoon"
)

var moonCmd = &cobra.Command{
	Use:   "moon",
	Short: "Lunar phase calendar and illumination",
	Long: `Lists the principal lunar phases of a year in the chosen zone, or, with
--illumination, reports the moon's illuminated fraction at an instant.`,
	RunE: runMoon,
}

func init() {
	moonCmd.Flags().Int("year", 0, "calendar year (default this year)")
	moonCmd.Flags().String("phase", "all", "phase: new, first, full, last or all")
	moonCmd.Flags().Bool("illumination", false, "print the moon's illumination instead of the calendar")
	moonCmd.Flags().String("time", "", "instant for --illumination (default now)")
	moonCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(moonCmd)
}

type phaseJSON struct {
	Time  time.Time `json:"time"`
	Phase string    `json:"phase"`
}

type illuminationJSON struct {
	Time       time.Time `json:"time"`
	Fraction   float64   `json:"fraction"`
	Elongation float64   `json:"elongation_degrees"`
	Waxing     bool      `json:"waxing"`
	Name       string    `json:"name"`
}

func runMoon(cmd *cobra.Command, args []string) error {
	zone, err := resolveZone()
	if err != nil {
		return err
	}
	jsonOut, _ := cmd.Flags().GetBool("json")

	if ill, _ := cmd.Flags().GetBool("illumination"); ill {
		at, err := parseInstant(cmd, zone)
		if err != nil {
			return err
		}
		return printIllumination(at, jsonOut)
	}

	year, _ := cmd.Flags().GetInt("year")
	if year == 0 {
		year = time.Now().In(zone).Year()
	}
	cfg := engineConfig()

	phaseName, _ := cmd.Flags().GetString("phase")
	var events []meeussunmoon.PhaseEvent
	if strings.EqualFold(phaseName, "all") {
		events, err = meeussunmoon.AllMoonPhases(year, zone, cfg)
		if err != nil {
			return err
		}
	} else {
		phase, err := parsePhase(phaseName)
		if err != nil {
			return err
		}
		times, err := meeussunmoon.MoonPhases(year, phase, zone, cfg)
		if err != nil {
			return err
		}
		for _, t := range times {
			events = append(events, meeussunmoon.PhaseEvent{Time: t, Phase: phase})
		}
	}

	if jsonOut {
		out := make([]phaseJSON, 0, len(events))
		for _, ev := range events {
			out = append(out, phaseJSON{Time: ev.Time, Phase: ev.Phase.String()})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Moon phases %d", year)))
	fmt.Println(dimStyle.Render("zone " + zone.String()))
	fmt.Println()
	for _, ev := range events {
		fmt.Printf("  %s  %s %s\n",
			ev.Time.Format("2006-01-02 15:04"),
			moonStyle.Render(phaseGlyph(ev.Phase)),
			ev.Phase)
	}
	return nil
}

func parsePhase(s string) (meeussunmoon.MoonPhase, error) {
	switch strings.ToLower(s) {
	case "new":
		return meeussunmoon.NewMoon, nil
	case "first":
		return meeussunmoon.FirstQuarter, nil
	case "full":
		return meeussunmoon.FullMoon, nil
	case "last":
		return meeussunmoon.LastQuarter, nil
	}
	return 0, fmt.Errorf("unknown phase %q (use new, first, full, last or all)", s)
}

func phaseGlyph(p meeussunmoon.MoonPhase) string {
	switch p {
	case meeussunmoon.NewMoon:
		return "●"
	case meeussunmoon.FirstQuarter:
		return "◐"
	case meeussunmoon.FullMoon:
		return "○"
	case meeussunmoon.LastQuarter:
		return "◑"
	}
	return "?"
}

func printIllumination(at time.Time, jsonOut bool) error {
	ill := meeussunmoon.MoonIlluminationAt(at)

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(illuminationJSON{
			Time:       ill.Time,
			Fraction:   ill.Fraction,
			Elongation: ill.Elongation,
			Waxing:     ill.Waxing,
			Name:       ill.Name,
		}); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	}

	fmt.Println(titleStyle.Render("Moon illumination at " + ill.Time.Format(time.RFC3339)))
	fmt.Printf("  Name       : %s\n", ill.Name)
	fmt.Printf("  Fraction   : %.3f (%.1f%% illuminated)\n", ill.Fraction, ill.Fraction*100)
	fmt.Printf("  Elongation : %.2f°\n", ill.Elongation)
	if ill.Waxing {
		fmt.Println("  Trend      : waxing (illumination increasing)")
	} else {
		fmt.Println("  Trend      : waning (illumination decreasing)")
	}
	return nil
}
