package catalog

// Peptide is a raw compound record from the static source table.
type Peptide struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Categories        []string `json:"category"`
	Description       string   `json:"description"`
	HalfLife          string   `json:"half_life"`
	Administration    []string `json:"administration"`
	LegalStatus       string   `json:"legal_status"`
	DosageRange       string   `json:"dosage_range"`
	MechanismOfAction string   `json:"mechanism_of_action"`
	Trending          bool     `json:"trending"`
}

// Peptides returns the static compound table. The table is reference
// data: treat the returned slice as read-only.
func Peptides() []Peptide {
	return peptidesData
}

var peptidesData = []Peptide{
	{
		ID:                "bpc-157",
		Name:              "BPC-157",
		Categories:        []string{"Peptide", "Healing", "Recovery"},
		Description:       "A synthetic peptide derived from a protein found in gastric juice, studied for its healing properties and ability to accelerate recovery from injuries.",
		HalfLife:          "4-8 hours",
		Administration:    []string{"Subcutaneous", "Intramuscular", "Oral"},
		LegalStatus:       "Research Only (US/EU)",
		DosageRange:       "250-500 mcg daily",
		MechanismOfAction: "Promotes angiogenesis and modulates nitric oxide production to accelerate healing processes.",
		Trending:          true,
	},
	{
		ID:                "tb-500",
		Name:              "TB-500",
		Categories:        []string{"Peptide", "Recovery", "Anti-inflammatory"},
		Description:       "A synthetic version of thymosin beta-4 studied for healing, inflammation reduction, and tissue repair throughout the body.",
		HalfLife:          "2-3 days",
		Administration:    []string{"Subcutaneous", "Intramuscular"},
		LegalStatus:       "Research Only (US/EU)",
		DosageRange:       "2-5 mg weekly",
		MechanismOfAction: "Regulates actin polymerization and promotes cell migration and angiogenesis.",
	},
	{
		ID:                "ghk-cu",
		Name:              "GHK-Cu",
		Categories:        []string{"Peptide", "Skin", "Wound Healing", "Anti-aging"},
		Description:       "A copper-binding tripeptide investigated for skin remodeling, wound repair, and hair follicle stimulation.",
		HalfLife:          "~1 hour",
		Administration:    []string{"Topical", "Subcutaneous"},
		LegalStatus:       "Cosmetic/Research Only (US/EU)",
		DosageRange:       "1-2 mg daily",
		MechanismOfAction: "Delivers copper to tissues and modulates matrix metalloproteinases involved in remodeling.",
		Trending:          true,
	},
	{
		ID:                "semax",
		Name:              "Semax",
		Categories:        []string{"Nootropic", "Cognition", "Neuroprotective"},
		Description:       "A synthetic peptide derived from ACTH studied for cognitive function, memory, and neuroprotection under stress and hypoxia.",
		HalfLife:          "30-60 minutes",
		Administration:    []string{"Intranasal", "Subcutaneous"},
		LegalStatus:       "Prescription (Russia), Research Only (US/EU)",
		DosageRange:       "300-1200 mcg daily",
		MechanismOfAction: "Modulates BDNF expression and enhances dopaminergic and noradrenergic neurotransmission.",
	},
	{
		ID:                "selank",
		Name:              "Selank",
		Categories:        []string{"Nootropic", "Anxiolytic", "Mood"},
		Description:       "A tuftsin analog investigated for anxiolytic and mood-stabilizing effects without sedation.",
		HalfLife:          "~2 minutes (active metabolites longer)",
		Administration:    []string{"Intranasal"},
		LegalStatus:       "Prescription (Russia), Research Only (US/EU)",
		DosageRange:       "250-500 mcg daily",
		MechanismOfAction: "Modulates GABAergic transmission and enkephalin degradation.",
	},
	{
		ID:                "melanotan-2",
		Name:              "Melanotan II",
		Categories:        []string{"Cosmetic", "Tanning", "Appetite Suppressant"},
		Description:       "A synthetic analog of melanocyte-stimulating hormone studied for tanning, appetite reduction, and libido effects.",
		HalfLife:          "33 minutes",
		Administration:    []string{"Subcutaneous"},
		LegalStatus:       "Research Only (US/EU)",
		DosageRange:       "0.25-1 mg daily",
		MechanismOfAction: "Activates melanocortin receptors to stimulate melanogenesis and affect appetite regulation.",
		Trending:          true,
	},
	{
		ID:                "melanotan-1",
		Name:              "Melanotan I",
		Categories:        []string{"Cosmetic", "Tanning", "Pigmentation"},
		Description:       "An alpha-MSH analog (afamelanotide) studied for photoprotective pigmentation with a narrower receptor profile than Melanotan II.",
		HalfLife:          "~30 minutes",
		Administration:    []string{"Subcutaneous"},
		LegalStatus:       "Prescription (EU - Scenesse), Research Only (US)",
		DosageRange:       "0.5-1 mg daily",
		MechanismOfAction: "Selective melanocortin-1 receptor agonism driving eumelanin synthesis.",
	},
	{
		ID:                "pt-141",
		Name:              "PT-141",
		Categories:        []string{"Libido", "Pigmentation"},
		Description:       "A melanocortin receptor agonist studied for sexual desire and arousal through central nervous system mechanisms.",
		HalfLife:          "2-3 hours",
		Administration:    []string{"Subcutaneous", "Intranasal"},
		LegalStatus:       "Prescription (US - Vyleesi), Research Only (EU)",
		DosageRange:       "1-2 mg as needed",
		MechanismOfAction: "Activates melanocortin-4 receptors in the brain to enhance sexual motivation.",
	},
	{
		ID:                "ghrp-6",
		Name:              "GHRP-6",
		Categories:        []string{"Growth Hormone", "Recovery", "Anti-aging"},
		Description:       "A growth hormone releasing peptide that stimulates natural GH production, studied for recovery, body composition, and sleep quality.",
		HalfLife:          "15-60 minutes",
		Administration:    []string{"Subcutaneous"},
		LegalStatus:       "Research Only (US/EU)",
		DosageRange:       "100-300 mcg 2-3x daily",
		MechanismOfAction: "Binds ghrelin receptors to stimulate growth hormone release from the pituitary.",
	},
	{
		ID:                "ipamorelin",
		Name:              "Ipamorelin",
		Categories:        []string{"Growth Hormone", "Recovery"},
		Description:       "A selective GH secretagogue studied for clean growth hormone pulses without cortisol or prolactin elevation.",
		HalfLife:          "~2 hours",
		Administration:    []string{"Subcutaneous"},
		LegalStatus:       "Research Only (US/EU)",
		DosageRange:       "200-300 mcg 1-3x daily",
		MechanismOfAction: "Selective ghrelin receptor agonism stimulating pituitary GH release.",
	},
	{
		ID:                "cjc-1295",
		Name:              "CJC-1295",
		Categories:        []string{"Growth Hormone", "Muscle", "Recovery"},
		Description:       "A GHRH analog with extended half-life studied for sustained growth hormone and IGF-1 elevation.",
		HalfLife:          "~8 days (with DAC)",
		Administration:    []string{"Subcutaneous"},
		LegalStatus:       "Research Only (US/EU)",
		DosageRange:       "1-2 mg weekly",
		MechanismOfAction: "Binds GHRH receptors with drug affinity complex extending circulation time.",
	},
	{
		ID:                "igf-1-lr3",
		Name:              "IGF-1 LR3",
		Categories:        []string{"Growth Factor", "Muscle"},
		Description:       "A long-arginine IGF-1 analog with reduced binding-protein affinity, studied for growth signaling in muscle tissue.",
		HalfLife:          "20-30 hours",
		Administration:    []string{"Subcutaneous", "Intramuscular"},
		LegalStatus:       "Research Only (US/EU)",
		DosageRange:       "20-50 mcg daily",
		MechanismOfAction: "Activates IGF-1 receptors driving anabolic and anti-catabolic signaling.",
	},
	{
		ID:                "egf",
		Name:              "EGF",
		Categories:        []string{"Growth Factor", "Skin"},
		Description:       "Epidermal growth factor studied for skin renewal, barrier repair, and wound closure in topical research.",
		HalfLife:          "~1 hour",
		Administration:    []string{"Topical"},
		LegalStatus:       "Cosmetic/Research Only (US/EU)",
		DosageRange:       "Topical, product dependent",
		MechanismOfAction: "Binds EGFR stimulating keratinocyte proliferation and migration.",
	},
	{
		ID:                "fgf-1",
		Name:              "FGF-1",
		Categories:        []string{"Growth Factor", "Repair"},
		Description:       "Fibroblast growth factor 1 studied for angiogenesis and tissue repair signaling.",
		HalfLife:          "minutes (local)",
		Administration:    []string{"Topical"},
		LegalStatus:       "Research Only (US/EU)",
		DosageRange:       "Research protocols only",
		MechanismOfAction: "Activates FGFR family receptors driving fibroblast proliferation.",
	},
	{
		ID:                "aod-9604",
		Name:              "AOD-9604",
		Categories:        []string{"Fat Loss", "Metabolic"},
		Description:       "A modified fragment of human growth hormone studied for lipolysis without growth-promoting effects.",
		HalfLife:          "~30 minutes",
		Administration:    []string{"Subcutaneous", "Oral"},
		LegalStatus:       "Research Only (US/EU)",
		DosageRange:       "250-500 mcg daily",
		MechanismOfAction: "Mimics the lipolytic C-terminal region of hGH stimulating fat metabolism.",
	},
	{
		ID:                "tesamorelin",
		Name:              "Tesamorelin",
		Categories:        []string{"Growth Hormone", "Fat Loss"},
		Description:       "A stabilized GHRH analog studied for visceral fat reduction and body recomposition.",
		HalfLife:          "26-38 minutes",
		Administration:    []string{"Subcutaneous"},
		LegalStatus:       "Prescription (US - Egrifta), Research Only (EU)",
		DosageRange:       "1-2 mg daily",
		MechanismOfAction: "GHRH receptor agonism raising GH and IGF-1 with downstream lipolysis.",
	},
	{
		ID:                "semaglutide",
		Name:              "Semaglutide",
		Categories:        []string{"Fat Loss", "Appetite", "Metabolic"},
		Description:       "A GLP-1 receptor agonist studied for appetite regulation and weight management.",
		HalfLife:          "~7 days",
		Administration:    []string{"Subcutaneous", "Oral"},
		LegalStatus:       "Prescription (US/EU)",
		DosageRange:       "0.25-2.4 mg weekly",
		MechanismOfAction: "GLP-1 receptor agonism slowing gastric emptying and reducing appetite signaling.",
		Trending:          true,
	},
	{
		ID:                "mots-c",
		Name:              "MOTS-c",
		Categories:        []string{"Metabolic", "Fat Loss", "Performance"},
		Description:       "A mitochondrial-derived peptide studied for metabolic regulation and exercise-like signaling.",
		HalfLife:          "~30 minutes",
		Administration:    []string{"Subcutaneous"},
		LegalStatus:       "Research Only (US/EU)",
		DosageRange:       "5-10 mg weekly",
		MechanismOfAction: "Activates AMPK pathways influencing glucose utilization and fat oxidation.",
	},
	{
		ID:                "dsip",
		Name:              "DSIP",
		Categories:        []string{"Sleep", "Recovery"},
		Description:       "Delta sleep-inducing peptide studied for sleep architecture and stress modulation.",
		HalfLife:          "minutes",
		Administration:    []string{"Subcutaneous", "Intranasal"},
		LegalStatus:       "Research Only (US/EU)",
		DosageRange:       "100-250 mcg before sleep",
		MechanismOfAction: "Modulates sleep-regulating neurotransmission and cortisol rhythms.",
	},
	{
		ID:                "epitalon",
		Name:              "Epitalon",
		Categories:        []string{"Anti-aging", "Sleep"},
		Description:       "A synthetic pineal tetrapeptide studied for telomerase activity and circadian normalization.",
		HalfLife:          "minutes",
		Administration:    []string{"Subcutaneous", "Intranasal"},
		LegalStatus:       "Research Only (US/EU)",
		DosageRange:       "5-10 mg daily in cycles",
		MechanismOfAction: "Reported telomerase activation and melatonin rhythm modulation.",
	},
	{
		ID:                "dihexa",
		Name:              "Dihexa",
		Categories:        []string{"Nootropic", "Cognition"},
		Description:       "An angiotensin IV-derived small peptide studied for synaptogenesis and cognitive enhancement.",
		HalfLife:          "~12 days (reported)",
		Administration:    []string{"Oral", "Topical"},
		LegalStatus:       "Research Only (US/EU)",
		DosageRange:       "8-45 mg daily",
		MechanismOfAction: "Potentiates HGF/c-Met signaling linked to synapse formation.",
	},
	{
		ID:                "noopept",
		Name:              "Noopept",
		Categories:        []string{"Nootropic", "Cognition", "Neuroprotective"},
		Description:       "A proline-containing dipeptide studied for memory, focus, and neuroprotection.",
		HalfLife:          "~15 minutes (active metabolites longer)",
		Administration:    []string{"Oral", "Sublingual"},
		LegalStatus:       "Prescription (Russia), Research Only (US/EU)",
		DosageRange:       "10-30 mg daily",
		MechanismOfAction: "Increases cycloprolylglycine and modulates AMPA/NMDA receptor sensitivity.",
	},
	{
		ID:                "thymosin-alpha-1",
		Name:              "Thymosin Alpha-1",
		Categories:        []string{"Immune", "Recovery"},
		Description:       "A thymic peptide studied for immune modulation and recovery support.",
		HalfLife:          "~2 hours",
		Administration:    []string{"Subcutaneous"},
		LegalStatus:       "Prescription (various), Research Only (US)",
		DosageRange:       "1.6 mg 2x weekly",
		MechanismOfAction: "Enhances T-cell maturation and dendritic cell function.",
	},
	{
		ID:                "kpv",
		Name:              "KPV",
		Categories:        []string{"Anti-inflammatory", "Skin", "Repair"},
		Description:       "The C-terminal tripeptide of alpha-MSH studied for anti-inflammatory effects in gut and skin models.",
		HalfLife:          "~1 hour",
		Administration:    []string{"Oral", "Topical", "Subcutaneous"},
		LegalStatus:       "Research Only (US/EU)",
		DosageRange:       "200-500 mcg daily",
		MechanismOfAction: "Melanocortin-derived inhibition of NF-kB driven inflammatory signaling.",
	},
}
