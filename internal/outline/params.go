package outline

// Params holds every threshold the heuristics use. The zero value is not
// useful; start from DefaultParams.
type Params struct {
	Repeating  RepeatingParams  `yaml:"repeating"`
	TOC        TOCParams        `yaml:"toc"`
	Classifier ClassifierParams `yaml:"classifier"`
	Visual     VisualParams     `yaml:"visual"`
	Hybrid     HybridParams     `yaml:"hybrid"`
	Title      TitleParams      `yaml:"title"`

	// DefaultBaseline is used when a document has no measurable text.
	DefaultBaseline int `yaml:"default_baseline"`
}

type RepeatingParams struct {
	ZoneFraction float64 `yaml:"zone_fraction"` // height of the header and footer bands
	MaxWords     int     `yaml:"max_words"`     // candidates must have fewer words
	MinPages     int     `yaml:"min_pages"`     // documents shorter than this are not analysed
	MinRepeats   int     `yaml:"min_repeats"`   // floor of the recurrence quorum
	QuorumDiv    int     `yaml:"quorum_divisor"`
}

type TOCParams struct {
	Keywords       []string `yaml:"keywords"`
	LeadBlocks     int      `yaml:"lead_blocks"`
	MinBlocks      int      `yaml:"min_blocks"`
	DotLeaderRatio float64  `yaml:"dot_leader_ratio"`
}

type ClassifierParams struct {
	FormMaxMeanWords   float64  `yaml:"form_max_mean_words"`
	FlyerMinSizeStdDev float64  `yaml:"flyer_min_size_stddev"`
	TechnicalPerPage   float64  `yaml:"technical_numbered_per_page"`
	RFPPhrases         []string `yaml:"rfp_phrases"`
}

type VisualParams struct {
	Eps         float64  `yaml:"eps"`
	MinSamples  int      `yaml:"min_samples"`
	MaxWords    int      `yaml:"max_words"`
	Boilerplate []string `yaml:"boilerplate"`
}

type HybridParams struct {
	NumberedGuardRatio float64 `yaml:"numbered_guard_ratio"`
	NumberedGuardWords int     `yaml:"numbered_guard_words"`
	BoldRatio          float64 `yaml:"bold_ratio"`
	H2Ratio            float64 `yaml:"h2_ratio"`
	ShortLabelWords    int     `yaml:"short_label_words"`
	FollowerWords      int     `yaml:"follower_words"`
}

type TitleParams struct {
	BandFraction float64 `yaml:"band_fraction"`
	Fallback     string  `yaml:"fallback"`
}

// DefaultParams returns the tuned defaults.
func DefaultParams() Params {
	return Params{
		Repeating: RepeatingParams{
			ZoneFraction: 0.1,
			MaxWords:     15,
			MinPages:     3,
			MinRepeats:   2,
			QuorumDiv:    3,
		},
		TOC: TOCParams{
			Keywords:       []string{"table of contents", "contents"},
			LeadBlocks:     5,
			MinBlocks:      5,
			DotLeaderRatio: 0.3,
		},
		Classifier: ClassifierParams{
			FormMaxMeanWords:   8,
			FlyerMinSizeStdDev: 4,
			TechnicalPerPage:   0.4,
			RFPPhrases:         []string{"request for proposal", "rfp"},
		},
		Visual: VisualParams{
			Eps:         0.5,
			MinSamples:  3,
			MaxWords:    30,
			Boilerplate: []string{"international software testing"},
		},
		Hybrid: HybridParams{
			NumberedGuardRatio: 1.1,
			NumberedGuardWords: 5,
			BoldRatio:          1.15,
			H2Ratio:            1.4,
			ShortLabelWords:    5,
			FollowerWords:      15,
		},
		Title: TitleParams{
			BandFraction: 0.3,
			Fallback:     "Untitled",
		},
		DefaultBaseline: 10,
	}
}
