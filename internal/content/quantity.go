package content

import "os"

// QuantityScreenName is the fixed name hosts use to open this screen.
const QuantityScreenName = "quantity"

// QuantityTitle is the screen header, rendered verbatim.
const QuantityTitle = "🧠 Problem 1: Quantity of Consciousness"

// BrainPhiValue is the Φ row of the brain card, rendered verbatim.
const BrainPhiValue = "Φ > 0 (High)"

// AsciiIconsEnv disables emoji icons when set (for terminals without
// emoji fonts). Any non-empty value enables the ASCII set.
const AsciiIconsEnv = "PHIVIEW_ASCII"

// PhiPseudocode is the conceptual Φ sketch shown in the code panel. It is
// documentation text, not an algorithm: the values are placeholders and
// nothing is computed. Displayed byte for byte.
const PhiPseudocode = `// Conceptual sketch only — this is not a runnable algorithm.
calculatePhi(system) {
    // 1. Consider every way of partitioning the system
    //    into independent parts.
    partitions = allPossiblePartitions(system)

    // 2. Compare the information generated by the whole
    //    against the information generated by its parts.
    wholeInformation = 1.0  // placeholder
    partsInformation = 0.3  // placeholder

    // 3. Φ is the information the whole generates above
    //    and beyond its parts. If cutting the system in
    //    two loses nothing, Φ is zero.
    phi = wholeInformation - partsInformation

    return phi  // placeholder, nothing was computed
}`

// quantityCitations are the two attribution strings, each ending in a
// literal DOI URL.
var quantityCitations = []Citation{
	{Text: "Tononi, G. (2004). An information integration theory of consciousness. BMC Neuroscience, 5, 42. https://doi.org/10.1186/1471-2202-5-42"},
	{Text: "Oizumi, M., Albantakis, L., & Tononi, G. (2014). From the phenomenology to the mechanisms of consciousness: Integrated Information Theory 3.0. PLoS Computational Biology, 10(5), e1003588. https://doi.org/10.1371/journal.pcbi.1003588"},
}

// cardIcon returns the display icon for a card, honoring PHIVIEW_ASCII.
func cardIcon(emoji, ascii string) string {
	if os.Getenv(AsciiIconsEnv) != "" {
		return ascii
	}
	return emoji
}

// QuantityScreen builds the "how much consciousness" screen: what Φ
// claims to measure, the photodiode/camera/brain comparison, a
// conceptual pseudo-code sketch, and references.
func QuantityScreen() Screen {
	cards := []ComparisonCard{
		{
			Title:           "Photodiode",
			Icon:            cardIcon("💡", "(o)"),
			Accent:          AccentYellow,
			Differentiation: "Minimal — tells light from dark, one bit",
			Integration:     "None — a single element, nothing to bind",
			PhiValue:        "Φ ≈ 0 (None)",
		},
		{
			Title:           "Camera",
			Icon:            cardIcon("📷", "[::]"),
			Accent:          AccentBlue,
			Differentiation: "Enormous — millions of independent pixels",
			Integration:     "None — each pixel ignores all the others",
			PhiValue:        "Φ ≈ 0 (Low)",
		},
		{
			Title:           "Brain",
			Icon:            cardIcon("🧠", "{~}"),
			Accent:          AccentPurple,
			Differentiation: "Enormous — an astronomical repertoire of states",
			Integration:     "Massive — densely interconnected networks",
			PhiValue:        BrainPhiValue,
		},
	}

	return Screen{
		Name:  QuantityScreenName,
		Title: QuantityTitle,
		Elements: []Element{
			Heading{Text: QuantityTitle},
			Spacer{Lines: 1},
			Paragraph{Text: "Why is the cerebral cortex conscious while the cerebellum, with four times as many neurons, is not? Integrated Information Theory answers with a single quantity: Φ, the amount of information a system generates as a whole, above and beyond its parts."},
			Spacer{Lines: 1},
			Section{Title: "Differentiation × Integration"},
			Paragraph{Text: "Consciousness requires both a large repertoire of possible states (differentiation) and a system that cannot be divided into independent parts (integration). A system missing either has little or no Φ."},
			Spacer{Lines: 1},
			ComparisonRow{Cards: cards},
			Spacer{Lines: 1},
			Section{Title: "A conceptual sketch"},
			Paragraph{Text: "The sketch below is an explanation, not an implementation. Computing Φ exactly requires examining every partition of a system, which is intractable for anything brain-sized."},
			CodeBlock{Text: PhiPseudocode},
			Spacer{Lines: 1},
			Section{Title: "References"},
			References{Citations: quantityCitations},
		},
	}
}
