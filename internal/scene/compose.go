package scene

import (
	"fmt"
	"strings"
)

// BaseTemplate describes the default scene: warm light, kitchen backdrop,
// tomato sauce and a rustic wooden plate.
const BaseTemplate = `Create a hyper-realistic 3D scene featuring a freshly fried samosa placed on a rustic wooden plate. The samosa should have a golden-brown, crispy, flaky texture with visible layers of pastry and slight bubbling on the surface indicating perfect frying. The samosa is triangular in shape, with slightly crimped edges and a few tiny cracks revealing a warm, spiced potato and pea filling inside.

Next to the samosa, place a small ceramic bowl filled with vibrant red tomato sauce. The sauce should have a smooth, glossy texture with a few visible specks of herbs like basil and oregano floating on top. The bowl has a subtle handmade look with a matte finish and slight imperfections for realism.

Add a stainless steel fork resting beside the plate, with slight reflections and a clean polished look. The overall mood is inviting and appetizing, evoking the feeling of a cozy homemade snack. The scene is lit with warm, natural light coming from the left side, casting soft shadows and highlighting the textures of the samosa and sauce. The background is a blurred kitchen countertop with hints of fresh ingredients like tomatoes, green chilies, and coriander leaves scattered softly in the background to add context.`

// Phrases of BaseTemplate that get swapped for the chosen settings.
const (
	DefaultLightingPhrase   = "The scene is lit with warm, natural light coming from the left side, casting soft shadows and highlighting the textures of the samosa and sauce."
	DefaultBackgroundPhrase = "The background is a blurred kitchen countertop with hints of fresh ingredients like tomatoes, green chilies, and coriander leaves scattered softly in the background to add context."
	DefaultSaucePhrase      = "vibrant red tomato sauce"
	DefaultPlatePhrase      = "rustic wooden plate"
)

// ClosingSentence is appended to every prompt.
const ClosingSentence = "Render in photorealistic 3D with high detail, professional food photography lighting, and restaurant-quality presentation. The image should be sharp, well-composed, and visually appetizing with perfect depth of field."

var lightingText = map[Lighting]string{
	LightingWarm:     "The scene is lit with warm, golden natural light coming from the left side, casting soft shadows and highlighting the textures of the samosa and sauce.",
	LightingCool:     "The scene is illuminated with cool, crisp daylight that creates sharp contrasts and brings out the vibrant colors of the food.",
	LightingDramatic: "Dramatic lighting with strong directional light creates deep shadows and highlights, giving the scene a professional photography look.",
	LightingNatural:  "Soft, diffused natural lighting evenly illuminates the scene, creating a gentle and appetizing atmosphere.",
}

var backgroundText = map[Background]string{
	BackgroundKitchen:     "The background is a blurred modern kitchen countertop with hints of fresh ingredients like tomatoes, green chilies, and coriander leaves scattered softly in the background to add context.",
	BackgroundWoodenTable: "Set on a beautiful rustic wooden table with natural wood grain visible, scattered flour dusting, and kitchen utensils in the soft-focused background.",
	BackgroundMarble:      "Placed on an elegant marble surface with subtle veining, creating a luxurious and clean backdrop for the food photography.",
	BackgroundRustic:      "The setting features a weathered wooden surface with vintage kitchen implements and traditional Indian spices visible in the artistic background blur.",
}

var sauceText = map[Sauce]string{
	SauceTomato:      "vibrant red tomato sauce with smooth, glossy texture and herb specks",
	SauceMintChutney: "fresh green mint chutney with a vibrant emerald color and small mint leaf pieces visible",
	SauceTamarind:    "rich brown tamarind sauce with a glossy, thick consistency and golden-brown color",
	SauceSpicyRed:    "fiery red chili sauce with visible red chili flakes and a slightly thick, glossy texture",
}

var plateText = map[Plate]string{
	PlateWoodenRustic:    "rustic wooden plate with natural wood grain and slight imperfections",
	PlateCeramicHandmade: "handmade ceramic plate with artisanal glazing and subtle color variations",
	PlateModernWhite:     "clean, modern white ceramic plate with smooth finish and minimalist design",
	PlateTraditional:     "traditional brass or copper plate with intricate patterns and aged patina",
}

var angleText = map[Angle]string{
	AngleThreeQuarter: "Shot from a three-quarter angle view that shows depth and dimension of the food arrangement",
	AngleTopDown:      "Captured from directly above in a flat lay style, showing the complete arrangement from bird's eye view",
	AngleSideView:     "Photographed from the side to showcase the samosa's triangular profile and filling glimpses",
	AngleCloseUp:      "Intimate close-up shot focusing on the texture details of the crispy samosa surface and steam",
}

// AngleSentence returns the camera sentence appended for a.
func AngleSentence(a Angle) string {
	return angleText[a]
}

// Composer turns Settings into a generation prompt. It is safe for concurrent use.
type Composer struct {
	template string
}

var defaultComposer = mustComposer(BaseTemplate)

// NewComposer returns a Composer over template. Every default phrase must
// appear in template, otherwise the substitutions would silently do nothing.
func NewComposer(template string) (*Composer, error) {
	for _, phrase := range []string{DefaultLightingPhrase, DefaultBackgroundPhrase, DefaultSaucePhrase, DefaultPlatePhrase} {
		if !strings.Contains(template, phrase) {
			return nil, fmt.Errorf("template is missing default phrase %q", phrase)
		}
	}
	return &Composer{template: template}, nil
}

func mustComposer(template string) *Composer {
	c, err := NewComposer(template)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultComposer returns the Composer over BaseTemplate.
func DefaultComposer() *Composer {
	return defaultComposer
}

// Compose builds the prompt for s using BaseTemplate.
func Compose(s Settings) (string, error) {
	return defaultComposer.Compose(s)
}

// Compose swaps each default phrase for the chosen one, then appends the
// camera sentence and the closing sentence.
func (c *Composer) Compose(s Settings) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}

	prompt := c.template
	prompt = strings.Replace(prompt, DefaultLightingPhrase, lightingText[s.Lighting], 1)
	prompt = strings.Replace(prompt, DefaultBackgroundPhrase, backgroundText[s.Background], 1)
	prompt = strings.Replace(prompt, DefaultSaucePhrase, sauceText[s.Sauce], 1)
	prompt = strings.Replace(prompt, DefaultPlatePhrase, plateText[s.Plate], 1)

	return prompt + " " + angleText[s.Angle] + " " + ClosingSentence, nil
}
