package domain

// VisionProfileID names a color-vision deficiency category used by the
// simulation view. The set is closed; unknown values are a caller bug, not a
// runtime concern.
type VisionProfileID string

const (
	VisionNormal        VisionProfileID = "normal"
	VisionProtanopia    VisionProfileID = "protanopia"
	VisionDeuteranopia  VisionProfileID = "deuteranopia"
	VisionTritanopia    VisionProfileID = "tritanopia"
	VisionProtanomaly   VisionProfileID = "protanomaly"
	VisionDeuteranomaly VisionProfileID = "deuteranomaly"
	VisionTritanomaly   VisionProfileID = "tritanomaly"
	VisionAchromatopsia VisionProfileID = "achromatopsia"
)

// VisionProfile pairs a profile ID with its static label and description.
// Profiles are immutable and loaded at process start.
type VisionProfile struct {
	ID          VisionProfileID `json:"id"`
	Label       string          `json:"label"`
	Description string          `json:"description"`
}

// visionProfiles is the fixed catalog served to the simulation view.
var visionProfiles = []VisionProfile{ //nolint: gochecknoglobals
	{ID: VisionNormal, Label: "Normal Vision", Description: "Standard color vision"},
	{ID: VisionProtanopia, Label: "Protanopia", Description: "Red-blind (1% of men)"},
	{ID: VisionDeuteranopia, Label: "Deuteranopia", Description: "Green-blind (1% of men)"},
	{ID: VisionTritanopia, Label: "Tritanopia", Description: "Blue-blind (very rare)"},
	{ID: VisionProtanomaly, Label: "Protanomaly", Description: "Red-weak (1% of men)"},
	{ID: VisionDeuteranomaly, Label: "Deuteranomaly", Description: "Green-weak (5% of men)"},
	{ID: VisionTritanomaly, Label: "Tritanomaly", Description: "Blue-weak (rare)"},
	{ID: VisionAchromatopsia, Label: "Achromatopsia", Description: "Complete color blindness"},
}

// VisionProfiles returns the full catalog. The returned slice is a copy, so
// callers cannot mutate the catalog.
func VisionProfiles() []VisionProfile {
	out := make([]VisionProfile, len(visionProfiles))
	copy(out, visionProfiles)

	return out
}

// VisionProfileByID looks up a profile by its ID. Returns nil when the ID is
// not part of the catalog.
func VisionProfileByID(id VisionProfileID) *VisionProfile {
	for i := range visionProfiles {
		if visionProfiles[i].ID == id {
			p := visionProfiles[i]

			return &p
		}
	}

	return nil
}
