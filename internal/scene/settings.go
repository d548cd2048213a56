package scene

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Lighting is the light setup of the scene.
type Lighting string

const (
	LightingWarm     Lighting = "warm"
	LightingCool     Lighting = "cool"
	LightingDramatic Lighting = "dramatic"
	LightingNatural  Lighting = "natural"
)

// Background is the surface and backdrop behind the plate.
type Background string

const (
	BackgroundKitchen     Background = "kitchen"
	BackgroundWoodenTable Background = "wooden-table"
	BackgroundMarble      Background = "marble"
	BackgroundRustic      Background = "rustic"
)

// Sauce is the dip served next to the samosa.
type Sauce string

const (
	SauceTomato      Sauce = "tomato"
	SauceMintChutney Sauce = "mint-chutney"
	SauceTamarind    Sauce = "tamarind"
	SauceSpicyRed    Sauce = "spicy-red"
)

// Plate is the dish the samosa is served on.
type Plate string

const (
	PlateWoodenRustic    Plate = "wooden-rustic"
	PlateCeramicHandmade Plate = "ceramic-handmade"
	PlateModernWhite     Plate = "modern-white"
	PlateTraditional     Plate = "traditional"
)

// Angle is the camera position.
type Angle string

const (
	AngleTopDown      Angle = "top-down"
	AngleSideView     Angle = "side-view"
	AngleThreeQuarter Angle = "three-quarter"
	AngleCloseUp      Angle = "close-up"
)

var (
	Lightings   = []Lighting{LightingWarm, LightingCool, LightingDramatic, LightingNatural}
	Backgrounds = []Background{BackgroundKitchen, BackgroundWoodenTable, BackgroundMarble, BackgroundRustic}
	Sauces      = []Sauce{SauceTomato, SauceMintChutney, SauceTamarind, SauceSpicyRed}
	Plates      = []Plate{PlateWoodenRustic, PlateCeramicHandmade, PlateModernWhite, PlateTraditional}
	Angles      = []Angle{AngleTopDown, AngleSideView, AngleThreeQuarter, AngleCloseUp}
)

// Settings is the full set of scene choices a prompt is composed from.
type Settings struct {
	Lighting   Lighting   `json:"lighting" yaml:"lighting" parquet:"lighting"`
	Background Background `json:"background" yaml:"background" parquet:"background"`
	Sauce      Sauce      `json:"sauce" yaml:"sauce" parquet:"sauce"`
	Plate      Plate      `json:"plate" yaml:"plate" parquet:"plate"`
	Angle      Angle      `json:"angle" yaml:"angle" parquet:"angle"`
}

// DefaultSettings returns the scene the base template describes.
func DefaultSettings() Settings {
	return Settings{
		Lighting:   LightingWarm,
		Background: BackgroundKitchen,
		Sauce:      SauceTomato,
		Plate:      PlateWoodenRustic,
		Angle:      AngleThreeQuarter,
	}
}

// InvalidValueError reports a settings field that is missing or outside its enum.
type InvalidValueError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidValueError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s is required", e.Field)
	}
	return fmt.Sprintf("%s: %q is not one of %s", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

func check[T ~string](field string, v T, allowed []T) error {
	if lo.Contains(allowed, v) {
		return nil
	}
	return &InvalidValueError{
		Field: field,
		Value: string(v),
		Allowed: lo.Map(allowed, func(a T, _ int) string {
			return string(a)
		}),
	}
}

func decode[T ~string](field string, text []byte, allowed []T, dst *T) error {
	v := T(text)
	if err := check(field, v, allowed); err != nil {
		return err
	}
	*dst = v
	return nil
}

func (l *Lighting) UnmarshalText(text []byte) error {
	return decode("lighting", text, Lightings, l)
}

func (b *Background) UnmarshalText(text []byte) error {
	return decode("background", text, Backgrounds, b)
}

func (s *Sauce) UnmarshalText(text []byte) error {
	return decode("sauce", text, Sauces, s)
}

func (p *Plate) UnmarshalText(text []byte) error {
	return decode("plate", text, Plates, p)
}

func (a *Angle) UnmarshalText(text []byte) error {
	return decode("angle", text, Angles, a)
}

// Validate reports the first field that is missing or not one of its literals.
func (s Settings) Validate() error {
	checks := []func() error{
		func() error { return check("lighting", s.Lighting, Lightings) },
		func() error { return check("background", s.Background, Backgrounds) },
		func() error { return check("sauce", s.Sauce, Sauces) },
		func() error { return check("plate", s.Plate, Plates) },
		func() error { return check("angle", s.Angle, Angles) },
	}
	for _, c := range checks {
		if err := c(); err != nil {
			return err
		}
	}
	return nil
}

// Options lists the accepted literals per category, keyed by JSON field name.
func Options() map[string][]string {
	return map[string][]string{
		"lighting":   toStrings(Lightings),
		"background": toStrings(Backgrounds),
		"sauce":      toStrings(Sauces),
		"plate":      toStrings(Plates),
		"angle":      toStrings(Angles),
	}
}

func toStrings[T ~string](values []T) []string {
	return lo.Map(values, func(v T, _ int) string {
		return string(v)
	})
}

// All enumerates every valid settings combination in a stable order.
func All() []Settings {
	all := make([]Settings, 0, len(Lightings)*len(Backgrounds)*len(Sauces)*len(Plates)*len(Angles))
	for _, l := range Lightings {
		for _, b := range Backgrounds {
			for _, s := range Sauces {
				for _, p := range Plates {
					for _, a := range Angles {
						all = append(all, Settings{l, b, s, p, a})
					}
				}
			}
		}
	}
	return all
}
