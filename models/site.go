package models

// Feature is one card of the feature grid.
type Feature struct {
	Title       string
	Description string
	Accent      string // tailwind text colour class
	IconPath    string // SVG path data, 24x24 viewBox
}

// Features are shown in order on the home page.
var Features = []Feature{
	{
		Title:       "Linear RAW → Rec.2020",
		Description: "Our engine unlocks hidden detail using cinema-grade color science, converting linear data to the wide PQ Rec.2020 gamut.",
		Accent:      "text-purple-400",
		IconPath:    "M19.428 15.428a2 2 0 00-1.022-.547l-2.384-.477a6 6 0 00-3.86.517l-.318.158a6 6 0 01-3.86.517L6.05 15.21a2 2 0 00-1.806.547M8 4h8l-1 1v5.172a2 2 0 00.586 1.414l5 5c1.26 1.26.367 3.414-1.415 3.414H4.828c-1.782 0-2.674-2.154-1.414-3.414l5-5A2 2 0 009 10.172V5L8 4z",
	},
	{
		Title:       "10-bit HEIC Export",
		Description: "Generate files that iPhone and modern XDR displays understand natively. No banding, just smooth gradients.",
		Accent:      "text-cyan-400",
		IconPath:    "M4 16l4.586-4.586a2 2 0 012.828 0L16 16m-2-2l1.586-1.586a2 2 0 012.828 0L20 14m-6-6h.01M6 20h12a2 2 0 002-2V6a2 2 0 00-2-2H6a2 2 0 00-2 2v12a2 2 0 002 2z",
	},
	{
		Title:       "Smart Nit Control",
		Description: "Target 1600 nits for iPhone 16 Pro, or push to 2000 nits for maximum headroom. You control the brightness ceiling.",
		Accent:      "text-yellow-400",
		IconPath:    "M12 3v1m0 16v1m9-9h-1M4 12H3m15.364 6.364l-.707-.707M6.343 6.343l-.707-.707m12.728 0l-.707.707M6.343 17.657l-.707.707M16 12a4 4 0 11-8 0 4 4 0 018 0z",
	},
	{
		Title:       "Non-Destructive Tools",
		Description: "Essential controls like Exposure, White Balance, and Highlight Control designed specifically for the HDR pipeline.",
		Accent:      "text-green-400",
		IconPath:    "M12 6V4m0 2a2 2 0 100 4m0-4a2 2 0 110 4m-6 8a2 2 0 100-4m0 4a2 2 0 110-4m0 4v2m0-6V4m6 6v10m6-2a2 2 0 100-4m0 4a2 2 0 110-4m0 4v2m0-6V4",
	},
}

// ScienceStep is one numbered point of the colour-science section.
type ScienceStep struct {
	Title string
	Body  string
}

var ScienceSteps = []ScienceStep{
	{"Linear Processing", "We process the RAW data linearly to preserve physical light accuracy before tone mapping."},
	{"10-Bit Precision", "8-bit has 16 million colors. 10-bit has over 1 billion. This eliminates banding in skies and gradients."},
	{"Display Adaptability", "Export a single HEIC that looks correct on your MacBook, brilliant on your iPhone, and standard on older screens."},
}

// BetaNote is one limitation of the current beta.
type BetaNote struct {
	Label string
	Body  string
}

var BetaNotes = []BetaNote{
	{"Resolution", "The beta outputs at 25% of the original RAW resolution. This is free for exploration while we optimize the engine."},
	{"No LUT Support Yet", "Most LUTs are 8-bit SDR (Rec.709). Applying them would destroy the 10-bit HDR data we work so hard to preserve. We are building custom HDR-grade creative tools for future releases."},
	{"Preview Color", "Your web browser cannot display the full Rec.2020 HDR gamut. The preview is an approximation; the final exported HEIC will look significantly more vivid on a supported device."},
}

// NavLink is an in-page anchor in the header.
type NavLink struct {
	Href  string
	Label string
}

var NavLinks = []NavLink{
	{"/#features", "Features"},
	{"/#science", "Science"},
	{"/#beta", "Beta"},
	{"/explainer", "Pipeline"},
	{"/deep-dive", "Bit Depth"},
}

// DownloadRequirements is the small print under the download button.
const DownloadRequirements = "Requires macOS 13.0 or later. Apple Silicon recommended for real-time preview."
